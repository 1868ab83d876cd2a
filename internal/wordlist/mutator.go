package wordlist

import "strings"

type mutatorKind int

const (
	mutateIdentity mutatorKind = iota
	mutateOnlyLowerAlpha
	mutateToLower
	mutateCustom
)

// MutatorFunc is a user-supplied word transformation.
type MutatorFunc func(word string) Result

// Mutator is the per-word filter/transform policy applied while building a
// list. The zero value is Identity.
type Mutator struct {
	kind mutatorKind
	fn   MutatorFunc
}

// Identity passes words through unchanged.
func Identity() Mutator { return Mutator{kind: mutateIdentity} }

// OnlyLowerAlpha keeps only words made entirely of ASCII letters, in either
// case. The name follows the historical option name.
func OnlyLowerAlpha() Mutator { return Mutator{kind: mutateOnlyLowerAlpha} }

// ToLower lower-cases every non-empty word.
func ToLower() Mutator { return Mutator{kind: mutateToLower} }

// Custom applies fn to every word and emits whatever its Result holds.
// A nil fn behaves like Identity.
func Custom(fn MutatorFunc) Mutator {
	if fn == nil {
		return Identity()
	}
	return Mutator{kind: mutateCustom, fn: fn}
}

type resultKind int

const (
	resultNone resultKind = iota
	resultKeep
	resultOne
	resultMany
)

// Result is what a MutatorFunc returns for one input word. The zero value
// drops the word.
type Result struct {
	kind  resultKind
	words []string
}

// None drops the word.
func None() Result { return Result{} }

// Keep emits the input word unchanged.
func Keep() Result { return Result{kind: resultKeep} }

// Bool is Keep when keep is true and None otherwise.
func Bool(keep bool) Result {
	if keep {
		return Keep()
	}
	return None()
}

// One emits word. An empty word is dropped.
func One(word string) Result {
	return Result{kind: resultOne, words: []string{word}}
}

// Many emits each non-empty word in order.
func Many(words ...string) Result {
	return Result{kind: resultMany, words: words}
}

// Apply runs m over a raw line and returns the words to emit. When keepEmpty
// is set, Identity passes empty lines through; every other policy drops them.
// Apply holds no state between calls.
func (m Mutator) Apply(word string, keepEmpty bool) []string {
	switch m.kind {
	case mutateOnlyLowerAlpha:
		if isAlpha(word) {
			return []string{word}
		}
		return nil
	case mutateToLower:
		if word == "" {
			return nil
		}
		return []string{strings.ToLower(word)}
	case mutateCustom:
		return m.fn(word).emit(word)
	default:
		if word == "" && !keepEmpty {
			return nil
		}
		return []string{word}
	}
}

func (r Result) emit(word string) []string {
	switch r.kind {
	case resultKeep:
		return []string{word}
	case resultOne, resultMany:
		out := make([]string, 0, len(r.words))
		for _, w := range r.words {
			if w != "" {
				out = append(out, w)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	default:
		return nil
	}
}
