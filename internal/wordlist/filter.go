package wordlist

import (
	"fmt"
	"strings"
)

// ParseMutator maps a configured mutator name to a built-in Mutator.
func ParseMutator(name string) (Mutator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return Identity(), nil
	case "only-lowercase-alpha", "only-lower":
		return OnlyLowerAlpha(), nil
	case "to-lowercase", "to-lower":
		return ToLower(), nil
	default:
		return Mutator{}, fmt.Errorf("unknown mutator %q", name)
	}
}

// isAlpha reports whether word is non-empty and made only of ASCII letters.
func isAlpha(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if (ch < 'a' || ch > 'z') && (ch < 'A' || ch > 'Z') {
			return false
		}
	}
	return true
}
