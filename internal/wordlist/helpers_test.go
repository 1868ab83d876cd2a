package wordlist

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, fsys afero.Fs, path string, lines ...string) {
	t.Helper()
	content := ""
	if len(lines) > 0 {
		content = strings.Join(lines, "\n") + "\n"
	}
	require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0o644))
}

func numberedWords(prefix string, n int) []string {
	words := make([]string, 0, n)
	for i := 0; i < n; i++ {
		words = append(words, prefix+strings.Repeat("x", i+1))
	}
	return words
}
