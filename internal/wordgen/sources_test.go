package wordgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePathsRecursesDirectories(t *testing.T) {
	fsys := afero.NewMemMapFs()
	for _, path := range []string{"/src/a.txt", "/src/sub/b.txt", "/src/sub/deeper/c.txt", "/single.txt"} {
		require.NoError(t, afero.WriteFile(fsys, path, []byte("x\n"), 0o644))
	}

	files, err := ResolvePaths(fsys, []string{"/single.txt", "/missing", "/src"})

	require.NoError(t, err)
	assert.Equal(t, []string{"/single.txt", "/src/a.txt", "/src/sub/b.txt", "/src/sub/deeper/c.txt"}, files)
}

func TestResolvePathsGlob(t *testing.T) {
	dir := t.TempDir()
	for _, rel := range []string{"one.txt", "two.md", filepath.Join("nested", "three.txt")} {
		path := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("x\n"), 0o644))
	}

	files, err := ResolvePaths(afero.NewOsFs(), []string{filepath.Join(dir, "**", "*.txt")})

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "one.txt"),
		filepath.Join(dir, "nested", "three.txt"),
	}, files)
}
