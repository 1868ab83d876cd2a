package wordlist

import (
	"errors"
	"os"

	"github.com/spf13/afero"
)

// IsFile reports whether path exists and is a regular file. Missing paths,
// directories and special files all report false; stat failures other than
// non-existence are treated the same way.
func IsFile(fsys afero.Fs, path string) bool {
	ok, err := statFile(fsys, path)
	return err == nil && ok
}

// statFile returns (isRegular, nil) for an existing entry, os.ErrNotExist for a
// missing one and the raw stat error otherwise.
func statFile(fsys afero.Fs, path string) (bool, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, os.ErrNotExist
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}
