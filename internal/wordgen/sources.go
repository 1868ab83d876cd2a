// Package wordgen generates a deduplicated word list from free-form text
// sources, dropping words that fail the accept filter or match an exclusion
// rule.
package wordgen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/mattn/go-zglob"
	"github.com/spf13/afero"
)

// ResolvePaths expands files, directories (recursively) and glob patterns into
// a list of file paths, in argument order. Missing entries are skipped. Globs
// support "**" and are matched against the OS filesystem. Entries that fail
// for other reasons are reported together once every entry has been tried.
func ResolvePaths(fsys afero.Fs, names []string) ([]string, error) {
	var (
		files []string
		merr  *multierror.Error
	)
	for _, name := range names {
		if hasGlobMeta(name) {
			matches, err := zglob.Glob(name)
			if err != nil && !errors.Is(err, os.ErrNotExist) {
				merr = multierror.Append(merr, fmt.Errorf("failed to expand %s: %w", name, err))
				continue
			}
			for _, match := range matches {
				resolved, err := resolvePath(fsys, match)
				if err != nil {
					merr = multierror.Append(merr, err)
				}
				files = append(files, resolved...)
			}
			continue
		}
		resolved, err := resolvePath(fsys, name)
		if err != nil {
			merr = multierror.Append(merr, err)
		}
		files = append(files, resolved...)
	}
	return files, merr.ErrorOrNil()
}

func resolvePath(fsys afero.Fs, name string) ([]string, error) {
	info, err := fsys.Stat(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to stat %s: %w", name, err)
	}
	if !info.IsDir() {
		return []string{name}, nil
	}

	entries, err := afero.ReadDir(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", name, err)
	}
	var (
		files []string
		merr  *multierror.Error
	)
	for _, entry := range entries {
		resolved, err := resolvePath(fsys, filepath.Join(name, entry.Name()))
		if err != nil {
			merr = multierror.Append(merr, err)
		}
		files = append(files, resolved...)
	}
	return files, merr.ErrorOrNil()
}

func hasGlobMeta(name string) bool {
	return strings.ContainsAny(name, "*?[{")
}
