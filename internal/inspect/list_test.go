package inspect

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirinfo/internal/model"
)

// fixtureDir builds a directory holding b.txt, a.txt and a subdirectory sub.
func fixtureDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("bb"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	return dir
}

func runLister(t *testing.T, recursive bool, paths ...string) string {
	t.Helper()
	var list model.PathList
	for _, p := range paths {
		require.NoError(t, list.Add(p))
	}
	list.Sort()

	var out bytes.Buffer
	NewLister(&list, recursive, &out).Run()
	return out.String()
}

func TestLister_SingleDirectory(t *testing.T) {
	t.Parallel()

	dir := fixtureDir(t)
	out := runLister(t, false, dir)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)

	// Alphabetical, as the directory-read primitive returns them
	assert.Contains(t, lines[0], "a.txt")
	assert.Contains(t, lines[1], "b.txt")
	assert.Contains(t, lines[2], "sub")
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "| "), "directory children render brief: %q", line)
	}

	// A single-path query gets no directory label
	assert.NotContains(t, out, dir+":")
}

func TestLister_MultiRootLabels(t *testing.T) {
	t.Parallel()

	dir1 := fixtureDir(t)
	dir2 := t.TempDir()
	out := runLister(t, false, dir1, dir2)

	assert.Contains(t, out, "\n"+dir1+":\n")
	assert.Contains(t, out, "\n"+dir2+":\n")
}

func TestLister_SingleFileDetail(t *testing.T) {
	t.Parallel()

	dir := fixtureDir(t)
	out := runLister(t, false, filepath.Join(dir, "a.txt"))

	assert.Contains(t, out, "Information for ")
	assert.Contains(t, out, "Type: Regular File")
}

func TestLister_TwoFilesNeverDetail(t *testing.T) {
	t.Parallel()

	dir := fixtureDir(t)
	out := runLister(t, false, filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt"))

	assert.NotContains(t, out, "Information for ")
	assert.Contains(t, out, "a.txt")
	assert.Contains(t, out, "b.txt")
}

func TestLister_MissingRootReported(t *testing.T) {
	t.Parallel()

	dir := fixtureDir(t)
	out := runLister(t, false, filepath.Join(dir, "nope"), dir)

	// The bad root is reported and the good one still lists
	assert.Contains(t, out, "error: ")
	assert.Contains(t, out, "a.txt")
}

// The recursive flag is accepted but intentionally inert: subdirectories are
// neither listed in place nor descended into.
func TestLister_RecursiveFlagInert(t *testing.T) {
	t.Parallel()

	dir := fixtureDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "nested.txt"), []byte("n"), 0o644))

	out := runLister(t, true, dir)
	assert.Contains(t, out, "a.txt")
	assert.NotContains(t, out, "nested.txt")
	assert.NotContains(t, out, "sub")
}

func TestLister_FilesListedBeforeDirectories(t *testing.T) {
	t.Parallel()

	dir := fixtureDir(t)
	file := filepath.Join(dir, "a.txt")

	// Directory first on the command line, file still renders first
	out := runLister(t, false, dir, file)
	fileIdx := strings.Index(out, "a.txt")
	labelIdx := strings.Index(out, dir+":")
	require.GreaterOrEqual(t, fileIdx, 0)
	require.GreaterOrEqual(t, labelIdx, 0)
	assert.Less(t, fileIdx, labelIdx)
}
