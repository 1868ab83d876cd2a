// Package generator picks random words from a built word list.
package generator

import (
	"fmt"
	"math/rand"
	"time"
	"unicode"
)

// Generator produces random word sequences.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Generator with a fixed seed.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Pick selects count words uniformly, capitalizing the first letter of each
// with probability capsPct.
func (g *Generator) Pick(words []string, count int, capsPct float64) ([]string, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	if count < 0 {
		return nil, fmt.Errorf("count must be >= 0")
	}
	result := make([]string, 0, count)
	for i := 0; i < count; i++ {
		word := words[g.rnd.Intn(len(words))]
		result = append(result, applyCaps(g.rnd, word, capsPct))
	}
	return result, nil
}

func applyCaps(rnd *rand.Rand, word string, capsPct float64) string {
	if capsPct <= 0 {
		return word
	}
	if rnd.Float64() > capsPct {
		return word
	}
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
