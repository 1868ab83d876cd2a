package wordlist

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAliasesScansSources(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeTestFile(t, fsys, "/data/default.txt", "alpha")
	writeTestFile(t, fsys, "/data/words/special-hacker.50", "leet")
	writeTestFile(t, fsys, "/data/words/english-words.10", "the")
	require.NoError(t, fsys.MkdirAll("/data/words/nested", 0o755))

	aliases := LoadAliases(fsys, "/data", nil)

	assert.Equal(t, "/data/default.txt", aliases.Resolve(DefaultAlias))
	assert.Equal(t, "/data/words/special-hacker.50", aliases.Resolve("$special-hacker.50"))
	assert.Equal(t, []string{"$default", "$english-words.10", "$special-hacker.50"}, aliases.Names())
}

func TestLoadAliasesMissingSourcesDir(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	aliases := LoadAliases(afero.NewMemMapFs(), "/nowhere", logger)

	assert.Equal(t, []string{DefaultAlias}, aliases.Names())
	assert.Contains(t, buf.String(), "could not find word sources")
}

func TestResolveUnknownTokenIsLiteral(t *testing.T) {
	aliases := NewAliases(map[string]string{"$a": "/lists/a.txt"})

	assert.Equal(t, "/lists/a.txt", aliases.Resolve("$a"))
	assert.Equal(t, "$b", aliases.Resolve("$b"))
	assert.Equal(t, "/usr/share/dict/words", aliases.Resolve("/usr/share/dict/words"))

	var none *Aliases
	assert.Equal(t, "$a", none.Resolve("$a"))
}
