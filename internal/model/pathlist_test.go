package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	return path
}

func TestPathList_AddClassifies(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := writeFile(t, dir, "f.txt")

	var l PathList
	require.NoError(t, l.Add(dir))
	require.NoError(t, l.Add(file))

	require.Equal(t, 2, l.Size())

	// Files come first, directories after, regardless of insertion order.
	got, err := l.At(0)
	require.NoError(t, err)
	assert.Equal(t, file, got)

	got, err = l.At(1)
	require.NoError(t, err)
	assert.Equal(t, dir, got)
}

func TestPathList_AtOutOfRange(t *testing.T) {
	t.Parallel()

	var l PathList
	require.NoError(t, l.Add("somewhere"))

	_, err := l.At(l.Size())
	assert.Error(t, err)
	_, err = l.At(-1)
	assert.Error(t, err)
}

func TestPathList_AddEmpty(t *testing.T) {
	t.Parallel()

	var l PathList
	assert.Error(t, l.Add(""))
}

func TestPathList_Sort(t *testing.T) {
	t.Parallel()

	// Nonexistent paths classify as directories, so they land in one group.
	var l PathList
	for _, p := range []string{"e", "c", "d", "a", "b"} {
		require.NoError(t, l.Add(p))
	}
	l.Sort()

	var prev string
	for i := 0; i < l.Size(); i++ {
		got, err := l.At(i)
		require.NoError(t, err)
		if i > 0 {
			assert.LessOrEqual(t, prev, got)
		}
		prev = got
	}
}

func TestPathList_SortIdempotent(t *testing.T) {
	t.Parallel()

	var l PathList
	for _, p := range []string{"c", "a", "b"} {
		require.NoError(t, l.Add(p))
	}
	l.Sort()

	first := make([]string, 0, l.Size())
	for i := 0; i < l.Size(); i++ {
		got, err := l.At(i)
		require.NoError(t, err)
		first = append(first, got)
	}

	l.Sort()
	for i, want := range first {
		got, err := l.At(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestPathList_DuplicatesKept(t *testing.T) {
	t.Parallel()

	var l PathList
	require.NoError(t, l.Add("same"))
	require.NoError(t, l.Add("same"))
	assert.Equal(t, 2, l.Size())
}
