package model

import (
	"errors"
	"strings"
)

// PathQuery represents one path the tool is asked about. The path the user
// supplies sits at level 0; every directory entry discovered below it gets a
// child query at level+1 holding only its own leaf name. The full path is
// always reconstructed from the chain, never stored redundantly.
type PathQuery struct {
	segment string

	// parent is a non-owning back-reference. A parent always outlives its
	// children within a single traversal step; children are transient and
	// discarded once their entry has been rendered.
	parent *PathQuery

	level int
}

// TrimDotSlash removes a leading "./" from s. Applying it twice is a no-op.
func TrimDotSlash(s string) string {
	if strings.HasPrefix(s, "./") {
		return s[2:]
	}
	return s
}

// TrimTrailingSlashes removes every trailing "/" from s, leaving the
// single-character root "/" untouched.
func TrimTrailingSlashes(s string) string {
	for len(s) > 1 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}

// NewPathQuery creates a root-level query for a user-supplied path.
func NewPathQuery(path string) (*PathQuery, error) {
	if path == "" {
		return nil, errors.New("empty path")
	}
	return &PathQuery{segment: TrimTrailingSlashes(path)}, nil
}

// Child creates a query for a directory entry found under q. leaf is the
// entry's name only; Path will join it with the ancestor chain.
func (q *PathQuery) Child(leaf string) (*PathQuery, error) {
	if q == nil || leaf == "" {
		return nil, errors.New("empty parent or leaf")
	}
	return &PathQuery{
		segment: TrimDotSlash(TrimTrailingSlashes(leaf)),
		parent:  q,
		level:   q.level + 1,
	}, nil
}

// Path reconstructs the full path by walking the ancestor chain and joining
// segments root-to-leaf.
func (q *PathQuery) Path() string {
	var segments []string
	for n := q; n != nil; n = n.parent {
		segments = append(segments, n.segment)
	}
	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}
	return TrimTrailingSlashes(strings.Join(segments, "/"))
}

// Level returns the depth of q: 0 for user-supplied paths.
func (q *PathQuery) Level() int {
	return q.level
}
