package wordlist

import (
	"bufio"
	"context"
	"strings"
	"sync"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

const maxLineSize = 1024 * 1024

// LineFunc receives one line read from paths[index].
type LineFunc func(index int, line string)

// ReadLines reads every file in paths concurrently and calls onLine for each
// line. Calls are serialized, so onLine needs no locking of its own. Lines of
// one file arrive in file order; lines of different files may interleave.
// ReadLines returns once every file has been read, or with the first error;
// lines already delivered stay delivered.
func ReadLines(ctx context.Context, fsys afero.Fs, paths []string, onLine LineFunc) error {
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			return scanFile(gctx, fsys, path, func(line string) {
				mu.Lock()
				defer mu.Unlock()
				onLine(i, line)
			})
		})
	}
	return g.Wait()
}

func scanFile(ctx context.Context, fsys afero.Fs, path string, onLine func(string)) error {
	file, err := fsys.Open(path)
	if err != nil {
		return &StreamError{Path: path, Err: err}
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		onLine(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return &StreamError{Path: path, Err: err}
	}
	return nil
}

// ReadAllLines reads the whole file at path and splits it into lines. A single
// trailing empty line left by a final line terminator is dropped.
func ReadAllLines(fsys afero.Fs, path string) ([]string, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, &StreamError{Path: path, Err: err}
	}
	if len(data) == 0 {
		return nil, nil
	}
	lines := strings.Split(string(data), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines, nil
}
