package wordlist

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testWords = []string{"ABC", "Def", "ghi", "jkl-mno", "PQR", "stu", "vwx", "YZ"}

func newBuilderFixture(t *testing.T) *Builder {
	t.Helper()
	fsys := afero.NewMemMapFs()
	writeTestFile(t, fsys, "/data/default.txt", numberedWords("d", 10)...)
	writeTestFile(t, fsys, "/data/words/a.txt", "a1", "a2", "a3")
	writeTestFile(t, fsys, "/data/words/b.txt", "b1", "b2")
	writeTestFile(t, fsys, "/test/words.txt", testWords...)
	require.NoError(t, fsys.MkdirAll("/test/dir", 0o755))
	return NewBuilder(fsys, LoadAliases(fsys, "/data", nil), nil)
}

func TestBuildCombineConcatenatesInOrder(t *testing.T) {
	b := newBuilderFixture(t)
	opts := DefaultOptions()
	opts.Combine = []string{"$a.txt", "/missing", "/test/dir", "$b.txt"}

	list, err := b.Build(context.Background(), opts)

	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "a2", "a3", "b1", "b2"}, list.Words)
	assert.Equal(t, []string{"/data/words/a.txt", "/data/words/b.txt"}, list.Paths)
	assert.False(t, list.IsFallback)
}

func TestBuildFirstPathIgnoresLaterEntries(t *testing.T) {
	b := newBuilderFixture(t)
	opts := DefaultOptions()
	opts.Paths = []string{"$b.txt", "$a.txt"}

	list, err := b.Build(context.Background(), opts)

	require.NoError(t, err)
	assert.Equal(t, []string{"b1", "b2"}, list.Words)
	assert.False(t, list.IsFallback)
}

func TestBuildFallsBack(t *testing.T) {
	b := newBuilderFixture(t)
	opts := DefaultOptions()
	opts.Paths = []string{"/does/not/exist"}

	list, err := b.Build(context.Background(), opts)

	require.NoError(t, err)
	assert.Len(t, list.Words, 10)
	assert.True(t, list.IsFallback)
	assert.Equal(t, []string{"/data/default.txt"}, list.Paths)
}

func TestBuildForceFallback(t *testing.T) {
	b := newBuilderFixture(t)
	opts := DefaultOptions()
	opts.Paths = []string{"$a.txt"}
	opts.ForceFallback = true

	list, err := b.Build(context.Background(), opts)

	require.NoError(t, err)
	assert.Len(t, list.Words, 10)
	assert.True(t, list.IsFallback)
}

func TestBuildErrors(t *testing.T) {
	b := newBuilderFixture(t)

	_, err := b.Build(context.Background(), Options{})
	assert.True(t, errors.Is(err, ErrNoPathsSpecified))

	_, err = b.Build(context.Background(), Options{Combine: []string{"/missing", "/test/dir"}})
	assert.True(t, errors.Is(err, ErrNoFilesFound))

	_, err = b.Build(context.Background(), Options{Paths: []string{"/test/dir"}, Fallback: DefaultAlias})
	assert.True(t, errors.Is(err, ErrInvalidPath))

	_, err = b.Build(context.Background(), Options{Paths: []string{"/missing"}})
	assert.True(t, errors.Is(err, ErrNoFileFound))

	_, err = b.Build(context.Background(), Options{Paths: []string{"/missing"}, Fallback: "/also/missing"})
	var streamErr *StreamError
	assert.True(t, errors.As(err, &streamErr))
}

func TestBuildMutators(t *testing.T) {
	b := newBuilderFixture(t)

	testCases := []struct {
		name    string
		mutator Mutator
		count   int
		has     []string
	}{
		{name: "to-lower", mutator: ToLower(), count: 8, has: []string{"abc", "jkl-mno"}},
		{name: "only-lower", mutator: OnlyLowerAlpha(), count: 7, has: []string{"ABC", "YZ"}},
		{
			name: "upper only",
			mutator: Custom(func(w string) Result {
				return Bool(w == "ABC" || w == "PQR" || w == "YZ")
			}),
			count: 3,
			has:   []string{"ABC", "PQR", "YZ"},
		},
		{
			name:    "possessive",
			mutator: Custom(func(w string) Result { return One(w + "'s") }),
			count:   8,
			has:     []string{"ABC's", "Def's"},
		},
		{
			name: "split",
			mutator: Custom(func(w string) Result {
				return Many(strings.Split(w, "-")...)
			}),
			count: 9,
			has:   []string{"jkl", "mno"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for _, opts := range []Options{
				{Combine: []string{"/test/words.txt"}, Mutator: tc.mutator},
				{Paths: []string{"/test/words.txt"}, Mutator: tc.mutator},
			} {
				list, err := b.Build(context.Background(), opts)
				require.NoError(t, err)
				assert.Len(t, list.Words, tc.count)
				for _, w := range tc.has {
					assert.Contains(t, list.Words, w)
				}

				syncList, err := b.BuildSync(opts)
				require.NoError(t, err)
				assert.Equal(t, list.Words, syncList.Words)
			}
		})
	}
}

func TestStreamMatchesBuild(t *testing.T) {
	b := newBuilderFixture(t)
	opts := Options{Combine: []string{"$a.txt", "$b.txt"}, Mutator: ToLower()}

	var streamed []string
	info, err := b.Stream(context.Background(), opts, func(word string) {
		streamed = append(streamed, word)
	})
	require.NoError(t, err)
	assert.Len(t, info.Paths, 2)

	list, err := b.Build(context.Background(), opts)
	require.NoError(t, err)

	sort.Strings(streamed)
	expected := append([]string(nil), list.Words...)
	sort.Strings(expected)
	assert.Equal(t, expected, streamed)
}

func TestStreamReportsFallback(t *testing.T) {
	b := newBuilderFixture(t)
	opts := DefaultOptions()
	opts.Paths = []string{"/nope"}

	count := 0
	info, err := b.Stream(context.Background(), opts, func(string) { count++ })

	require.NoError(t, err)
	assert.True(t, info.IsFallback)
	assert.Equal(t, 10, count)
}

func TestKeepEmptyIsConsistent(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeTestFile(t, fsys, "/gaps.txt", "a", "", "b")
	b := NewBuilder(fsys, nil, nil)

	for _, keep := range []bool{false, true} {
		opts := Options{Paths: []string{"/gaps.txt"}, KeepEmpty: keep}
		expected := 2
		if keep {
			expected = 3
		}

		list, err := b.Build(context.Background(), opts)
		require.NoError(t, err)
		assert.Len(t, list.Words, expected)

		count := 0
		_, err = b.Stream(context.Background(), opts, func(string) { count++ })
		require.NoError(t, err)
		assert.Equal(t, expected, count)

		syncList, err := b.BuildSync(opts)
		require.NoError(t, err)
		assert.Len(t, syncList.Words, expected)
	}
}

func TestWillUseFallback(t *testing.T) {
	b := newBuilderFixture(t)

	used, err := b.WillUseFallback(Options{Paths: []string{"/nope"}, Fallback: DefaultAlias})
	require.NoError(t, err)
	assert.True(t, used)

	used, err = b.WillUseFallback(Options{Paths: []string{"$a.txt"}, Fallback: DefaultAlias})
	require.NoError(t, err)
	assert.False(t, used)
}
