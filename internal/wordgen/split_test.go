package wordgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func collectWords(line string) []string {
	var words []string
	EachWord(line, func(w string) { words = append(words, w) })
	return words
}

func TestEachWord(t *testing.T) {
	testCases := []struct {
		line     string
		expected []string
	}{
		{line: "The quick, brown fox.", expected: []string{"The", "quick", "brown", "fox"}},
		{line: "well-known (example) [x]", expected: []string{"well", "known", "example", "x"}},
		{line: "one—two–three…four", expected: []string{"one", "two", "three", "four"}},
		{line: "zero\u200bwidth", expected: []string{"zerowidth"}},
		{line: `"quoted" ‘single’`, expected: []string{"quoted", "single"}},
		{line: "the dog's bone", expected: []string{"the", "dog", "bone"}},
		{line: "don't stop", expected: []string{"don't", "stop"}},
		{line: "   ", expected: nil},
		{line: "'' --", expected: nil},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, collectWords(tc.line), "line %q", tc.line)
	}
}

func TestTransforms(t *testing.T) {
	assert.Equal(t, "don't", PreTransform("donâ€™t"))
	assert.Equal(t, "cat", PreTransform("cat's"))
	assert.Equal(t, "abc", PostTransform("AbC"))

	assert.True(t, Accept("Hello"))
	assert.False(t, Accept("don't"))
	assert.False(t, Accept("naïve"))
	assert.False(t, Accept(""))
}
