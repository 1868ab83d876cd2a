package wordlist

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

const (
	// AliasSigil prefixes every alias token.
	AliasSigil = "$"
	// DefaultAlias resolves to the bundled default dictionary.
	DefaultAlias = AliasSigil + "default"

	defaultFileName = "default.txt"
	sourcesDirName  = "words"
)

// Aliases maps alias tokens to absolute word list paths. It is built once by
// LoadAliases and never modified afterwards, so it is safe for concurrent use.
type Aliases struct {
	paths map[string]string
}

// LoadAliases builds the alias table for dataDir: DefaultAlias points at
// dataDir/default.txt and every file in dataDir/words is registered as
// "$<file name>". A missing words directory is logged and skipped.
func LoadAliases(fsys afero.Fs, dataDir string, logger *log.Logger) *Aliases {
	logger = orDiscard(logger)
	if abs, err := filepath.Abs(dataDir); err == nil {
		dataDir = abs
	}
	a := &Aliases{paths: map[string]string{
		DefaultAlias: filepath.Join(dataDir, defaultFileName),
	}}

	sourcesDir := filepath.Join(dataDir, sourcesDirName)
	entries, err := afero.ReadDir(fsys, sourcesDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Warn("could not find word sources", "dir", sourcesDir)
		} else {
			logger.Warn("failed to scan word sources", "dir", sourcesDir, "err", err)
		}
		return a
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		a.paths[AliasSigil+name] = filepath.Join(sourcesDir, name)
	}
	logger.Debug("loaded word list aliases", "count", len(a.paths))
	return a
}

// NewAliases returns an alias table holding exactly the given entries.
func NewAliases(entries map[string]string) *Aliases {
	paths := make(map[string]string, len(entries))
	for k, v := range entries {
		paths[k] = v
	}
	return &Aliases{paths: paths}
}

// Resolve returns the path registered for token, or token itself when it is
// not a known alias. A nil table resolves nothing.
func (a *Aliases) Resolve(token string) string {
	if a == nil {
		return token
	}
	if path, ok := a.paths[token]; ok {
		return path
	}
	return token
}

// Names returns the registered alias tokens in sorted order.
func (a *Aliases) Names() []string {
	if a == nil {
		return nil
	}
	names := make([]string, 0, len(a.paths))
	for name := range a.paths {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func orDiscard(logger *log.Logger) *log.Logger {
	if logger != nil {
		return logger
	}
	return log.New(io.Discard)
}
