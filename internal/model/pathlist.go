package model

import (
	"errors"
	"fmt"
	"sort"
)

// PathList holds the input paths split into files and directories. The two
// groups are kept apart so files can be reported before directory listings;
// each group is sorted on its own. Duplicate inputs are kept as given.
type PathList struct {
	files []string
	dirs  []string
}

// Add classifies path as file or directory and appends it to the matching
// group. The list keeps its own copy of the string.
func (l *PathList) Add(path string) error {
	if path == "" {
		return errors.New("empty path")
	}
	if IsFilePath(path) {
		l.files = append(l.files, path)
	} else {
		l.dirs = append(l.dirs, path)
	}
	return nil
}

// Size returns the total number of paths across both groups.
func (l *PathList) Size() int {
	return len(l.files) + len(l.dirs)
}

// At returns the path at index, addressing files first and directories after,
// offset by the number of files.
func (l *PathList) At(index int) (string, error) {
	if index < 0 || index >= l.Size() {
		return "", fmt.Errorf("path index %d out of range", index)
	}
	if index < len(l.files) {
		return l.files[index], nil
	}
	return l.dirs[index-len(l.files)], nil
}

// Sort orders both groups ascending. Call it once, after all Add calls and
// before any At use.
func (l *PathList) Sort() {
	sort.Strings(l.files)
	sort.Strings(l.dirs)
}
