// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	List ListConfig `toml:"list"`
	Data DataConfig `toml:"data"`
	Pick PickConfig `toml:"pick"`
	Gen  GenConfig  `toml:"gen"`
}

// ListConfig maps list-building settings.
type ListConfig struct {
	Paths         []string `toml:"paths"`
	Combine       []string `toml:"combine"`
	Fallback      *string  `toml:"fallback"`
	ForceFallback *bool    `toml:"force-fallback"`
	Mutator       *string  `toml:"mutator"`
	KeepEmpty     *bool    `toml:"keep-empty"`
}

// DataConfig maps the bundled data location.
type DataConfig struct {
	Dir *string `toml:"dir"`
}

// PickConfig maps random word selection settings.
type PickConfig struct {
	Count   *int     `toml:"count"`
	CapsPct *float64 `toml:"caps"`
	Sep     *string  `toml:"sep"`
}

// GenConfig maps word-gen settings.
type GenConfig struct {
	Exclude     []string `toml:"exclude"`
	Out         *string  `toml:"out"`
	ExcludedOut *string  `toml:"excluded-out"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
