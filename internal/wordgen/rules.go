package wordgen

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"

	"github.com/verte-zerg/wordlist/internal/wordlist"
)

var (
	reComment = regexp.MustCompile(`(?: |^)#.+$`)
	rePattern = regexp.MustCompile(`^/(.+)/([a-z]*)$`)
)

// Rejecter decides whether a word is excluded. Literal words match
// case-insensitively; patterns are regular expressions.
type Rejecter struct {
	words    map[string]struct{}
	patterns []*regexp.Regexp
}

// NewRejecter returns a Rejecter with no rules.
func NewRejecter() *Rejecter {
	return &Rejecter{words: map[string]struct{}{}}
}

// LoadRejections reads exclusion rules from the given files and directories.
// Each line holds one rule; text after " #" or a leading "#" is a comment.
// "/expr/flags" lines become patterns, anything else is a literal word. All
// invalid patterns are reported together.
func LoadRejections(ctx context.Context, fsys afero.Fs, paths []string) (*Rejecter, error) {
	r := NewRejecter()
	files, err := ResolvePaths(fsys, paths)
	if err != nil {
		return nil, err
	}

	var merr *multierror.Error
	err = wordlist.ReadLines(ctx, fsys, files, func(i int, line string) {
		if perr := r.AddRule(line); perr != nil {
			merr = multierror.Append(merr, fmt.Errorf("%s: %w", files[i], perr))
		}
	})
	if err != nil {
		return nil, err
	}
	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}
	return r, nil
}

// AddRule parses one rule line. Blank and comment-only lines are ignored.
func (r *Rejecter) AddRule(line string) error {
	rule := strings.TrimSpace(reComment.ReplaceAllString(line, ""))
	if rule == "" {
		return nil
	}
	if m := rePattern.FindStringSubmatch(rule); m != nil {
		re, err := compilePattern(m[1], m[2])
		if err != nil {
			return err
		}
		r.patterns = append(r.patterns, re)
		return nil
	}
	r.words[strings.ToLower(rule)] = struct{}{}
	return nil
}

// Reject reports whether word matches any rule. A nil Rejecter rejects nothing.
func (r *Rejecter) Reject(word string) bool {
	if r == nil {
		return false
	}
	if _, ok := r.words[strings.ToLower(word)]; ok {
		return true
	}
	for _, re := range r.patterns {
		if re.MatchString(word) {
			return true
		}
	}
	return false
}

// Len returns the number of rules.
func (r *Rejecter) Len() int {
	if r == nil {
		return 0
	}
	return len(r.words) + len(r.patterns)
}

func compilePattern(expr, flags string) (*regexp.Regexp, error) {
	var goFlags strings.Builder
	for _, f := range flags {
		switch f {
		case 'i', 'm', 's':
			if !strings.ContainsRune(goFlags.String(), f) {
				goFlags.WriteRune(f)
			}
		case 'g', 'u', 'y':
			// No Go equivalent; matching is unaffected.
		default:
			return nil, fmt.Errorf("invalid pattern flag %q in /%s/%s", f, expr, flags)
		}
	}
	if goFlags.Len() > 0 {
		expr = "(?" + goFlags.String() + ")" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern /%s/: %w", expr, err)
	}
	return re, nil
}
