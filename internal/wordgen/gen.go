package wordgen

import (
	"context"
	"io"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/verte-zerg/wordlist/internal/model"
	"github.com/verte-zerg/wordlist/internal/wordlist"
)

// Result holds a generated word list.
type Result struct {
	// Words are the accepted words, lower-cased, unique and sorted.
	Words []string
	// Excluded are the lower-cased words that were dropped, unique and sorted.
	Excluded []string
	// Sources reports per-file line counts and accepted word occurrences.
	Sources []model.SourceCount
}

// Generator turns text sources into a word list.
type Generator struct {
	fs     afero.Fs
	reject *Rejecter
	logger *log.Logger
}

// New returns a Generator. A nil reject excludes nothing.
func New(fsys afero.Fs, reject *Rejecter, logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Generator{fs: fsys, reject: reject, logger: logger}
}

// Generate reads every file in sources concurrently. Each line is split into
// words; a word is kept when it passes Accept and no exclusion rule matches.
func (g *Generator) Generate(ctx context.Context, sources []string) (Result, error) {
	kept := map[string]struct{}{}
	excluded := map[string]struct{}{}
	counts := make([]model.SourceCount, len(sources))
	for i, path := range sources {
		counts[i].Path = path
	}

	err := wordlist.ReadLines(ctx, g.fs, sources, func(i int, line string) {
		counts[i].Lines++
		EachWord(line, func(word string) {
			word = PreTransform(word)
			if Accept(word) && !g.reject.Reject(word) {
				kept[PostTransform(word)] = struct{}{}
				counts[i].Words++
				return
			}
			excluded[PostTransform(word)] = struct{}{}
		})
	})
	if err != nil {
		return Result{}, err
	}
	delete(excluded, "")

	g.logger.Debug("generated word list", "sources", len(sources), "words", len(kept), "excluded", len(excluded))
	return Result{
		Words:    sortedKeys(kept),
		Excluded: sortedKeys(excluded),
		Sources:  counts,
	}, nil
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
