package wordlist

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

// WordFunc receives each word produced by a streamed build.
type WordFunc func(word string)

// Info reports which files a build read.
type Info struct {
	Paths      []string
	IsFallback bool
}

// List is the result of a batch build.
type List struct {
	Info
	Words []string
}

// Builder assembles word lists from files on fsys.
type Builder struct {
	fs      afero.Fs
	aliases *Aliases
	logger  *log.Logger
}

// NewBuilder returns a Builder resolving aliases through aliases.
func NewBuilder(fsys afero.Fs, aliases *Aliases, logger *log.Logger) *Builder {
	return &Builder{fs: fsys, aliases: aliases, logger: orDiscard(logger)}
}

// Plan decides which files a build with opts reads, without reading them.
func (b *Builder) Plan(opts Options) (Info, error) {
	if len(opts.Combine) > 0 {
		files := SelectAll(b.fs, b.aliases, opts.Combine)
		if len(files) == 0 {
			return Info{}, ErrNoFilesFound
		}
		return Info{Paths: files}, nil
	}
	if len(opts.Paths) > 0 {
		info, err := SelectPath(b.fs, b.aliases, opts.Paths, opts.Fallback, opts.ForceFallback)
		if err != nil {
			return Info{}, err
		}
		return Info{Paths: []string{info.Path}, IsFallback: info.IsFallback}, nil
	}
	return Info{}, ErrNoPathsSpecified
}

// WillUseFallback reports whether building with opts would read the fallback.
func (b *Builder) WillUseFallback(opts Options) (bool, error) {
	info, err := b.Plan(opts)
	if err != nil {
		return false, err
	}
	return info.IsFallback, nil
}

// Build reads the planned files concurrently and returns their words. Words
// keep file order, then line order within each file.
func (b *Builder) Build(ctx context.Context, opts Options) (List, error) {
	info, err := b.Plan(opts)
	if err != nil {
		return List{}, err
	}
	b.logger.Debug("building word list", "paths", info.Paths, "fallback", info.IsFallback)

	perFile := make([][]string, len(info.Paths))
	err = ReadLines(ctx, b.fs, info.Paths, func(i int, line string) {
		perFile[i] = append(perFile[i], opts.Mutator.Apply(line, opts.KeepEmpty)...)
	})
	if err != nil {
		return List{}, err
	}
	return List{Info: info, Words: concat(perFile)}, nil
}

// Stream is Build without the accumulator: every word goes to onWord as soon
// as it is produced. Words from different files may interleave.
func (b *Builder) Stream(ctx context.Context, opts Options, onWord WordFunc) (Info, error) {
	info, err := b.Plan(opts)
	if err != nil {
		return Info{}, err
	}
	b.logger.Debug("streaming word list", "paths", info.Paths, "fallback", info.IsFallback)

	err = ReadLines(ctx, b.fs, info.Paths, func(_ int, line string) {
		for _, word := range opts.Mutator.Apply(line, opts.KeepEmpty) {
			onWord(word)
		}
	})
	if err != nil {
		return Info{}, err
	}
	return info, nil
}

// BuildSync reads the planned files one after another, each in a single read.
func (b *Builder) BuildSync(opts Options) (List, error) {
	info, err := b.Plan(opts)
	if err != nil {
		return List{}, err
	}
	var words []string
	for _, path := range info.Paths {
		lines, err := ReadAllLines(b.fs, path)
		if err != nil {
			return List{}, err
		}
		for _, line := range lines {
			words = append(words, opts.Mutator.Apply(line, opts.KeepEmpty)...)
		}
	}
	return List{Info: info, Words: words}, nil
}

func concat(parts [][]string) []string {
	total := 0
	for _, p := range parts {
		total += len(p)
	}
	out := make([]string, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
