package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrimDotSlash(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a/b", TrimDotSlash("./a/b"))
	assert.Equal(t, "a/b", TrimDotSlash(TrimDotSlash("./a/b")), "must be idempotent")
	assert.Equal(t, "a/b", TrimDotSlash("a/b"))
	assert.Equal(t, "", TrimDotSlash(""))
	// Only one "./" prefix comes off
	assert.Equal(t, "./a", TrimDotSlash("././a"))
}

func TestTrimTrailingSlashes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/hello/world", TrimTrailingSlashes("/hello/world/"))
	assert.Equal(t, "a", TrimTrailingSlashes("a///"))
	assert.Equal(t, "a", TrimTrailingSlashes("a"))
}

// The single-character root must survive any number of trailing slashes.
func TestTrimTrailingSlashes_Root(t *testing.T) {
	t.Parallel()

	s := "/"
	for i := 0; i < 64; i++ {
		s += "/"
		assert.Equal(t, "/", TrimTrailingSlashes(s))
	}
}

func TestNewPathQuery(t *testing.T) {
	t.Parallel()

	q, err := NewPathQuery("x/")
	require.NoError(t, err)
	assert.Equal(t, "x", q.Path())
	assert.Equal(t, 0, q.Level())

	_, err = NewPathQuery("")
	assert.Error(t, err)
}

func TestPathQuery_Child(t *testing.T) {
	t.Parallel()

	root, err := NewPathQuery("x")
	require.NoError(t, err)

	child, err := root.Child("./y/")
	require.NoError(t, err)
	assert.Equal(t, 1, child.Level())
	assert.Equal(t, "x/y", child.Path())

	_, err = root.Child("")
	assert.Error(t, err)
}

func TestPathQuery_PathReconstruction(t *testing.T) {
	t.Parallel()

	root, err := NewPathQuery("x")
	require.NoError(t, err)
	y, err := root.Child("y")
	require.NoError(t, err)
	z, err := y.Child("z")
	require.NoError(t, err)

	assert.Equal(t, "x/y/z", z.Path())
	assert.Equal(t, 2, z.Level())
	// Parents are untouched by child construction
	assert.Equal(t, "x", root.Path())
	assert.Equal(t, "x/y", y.Path())
}
