package wordlist

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
)

// PathInfo describes the file chosen for a single-path build.
type PathInfo struct {
	Path       string
	IsFallback bool
}

// SelectPath returns the first entry of paths that exists, after alias
// resolution. An existing entry that is not a regular file is an error
// wrapping ErrInvalidPath. When force is set, or nothing exists, the resolved
// fallback is returned with IsFallback set; an empty fallback yields
// ErrNoFileFound instead.
func SelectPath(fsys afero.Fs, aliases *Aliases, paths []string, fallback string, force bool) (PathInfo, error) {
	if !force {
		for _, candidate := range paths {
			path := aliases.Resolve(candidate)
			regular, err := statFile(fsys, path)
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			if err != nil {
				return PathInfo{}, fmt.Errorf("failed to stat %s: %w", path, err)
			}
			if !regular {
				return PathInfo{}, invalidPathError(path)
			}
			return PathInfo{Path: path}, nil
		}
	}
	if fallback == "" {
		return PathInfo{}, ErrNoFileFound
	}
	return PathInfo{Path: aliases.Resolve(fallback), IsFallback: true}, nil
}

// SelectAll resolves every entry of paths and keeps those that are regular
// files, preserving order. Directories and missing entries are dropped.
func SelectAll(fsys afero.Fs, aliases *Aliases, paths []string) []string {
	files := make([]string, 0, len(paths))
	for _, candidate := range paths {
		path := aliases.Resolve(candidate)
		if IsFile(fsys, path) {
			files = append(files, path)
		}
	}
	return files
}
