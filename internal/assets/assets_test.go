package assets

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWords(t *testing.T) {
	words := DefaultWords()

	require.NotEmpty(t, words)
	assert.True(t, sort.StringsAreSorted(words))
	assert.Contains(t, words, "dictionary")
}
