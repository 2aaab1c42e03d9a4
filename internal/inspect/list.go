package inspect

import (
	"fmt"
	"io"
	"os"

	"dirinfo/internal/model"
)

// Lister walks the sorted input paths and prints each one: files directly,
// directories entry by entry. Everything runs sequentially in iteration
// order; a failing entry is reported and skipped, never retried.
type Lister struct {
	paths     *model.PathList
	recursive bool
	out       io.Writer
	renderer  *Renderer
}

// NewLister builds a lister over paths. paths must already be sorted.
func NewLister(paths *model.PathList, recursive bool, out io.Writer) *Lister {
	return &Lister{
		paths:     paths,
		recursive: recursive,
		out:       out,
		renderer:  NewRenderer(out, paths.Size()),
	}
}

// Run processes every input path in order. Errors are contained per path and
// reported on the output stream.
func (l *Lister) Run() {
	for i := 0; i < l.paths.Size(); i++ {
		p, err := l.paths.At(i)
		if err != nil {
			fmt.Fprintf(l.out, "error: couldn't get path at index %d\n", i)
			continue
		}

		q, err := model.NewPathQuery(p)
		if err != nil {
			fmt.Fprintf(l.out, "error: couldn't create path query for %s\n", p)
			continue
		}

		if model.IsFilePath(p) {
			if err := l.renderer.Print(q); err != nil {
				fmt.Fprintf(l.out, "error: %v\n", err)
			}
		} else {
			l.listDir(q)
		}
	}
}

// listDir prints the entries of one directory in the order the OS returns
// them (alphabetical), skipping "." and "..". With more than one input path
// the listing is prefixed with the directory's own path as a label.
func (l *Lister) listDir(dir *model.PathQuery) {
	p := dir.Path()
	entries, err := os.ReadDir(p)
	if err != nil {
		fmt.Fprintf(l.out, "error: couldn't scan dir %s\n", p)
		return
	}

	if l.paths.Size() > 1 {
		fmt.Fprintf(l.out, "\n%s:\n", p)
	}

	for _, entry := range entries {
		name := entry.Name()
		if name == "." || name == ".." {
			continue
		}

		child, err := dir.Child(name)
		if err != nil {
			fmt.Fprintf(l.out, "error: couldn't create path query for %s\n", name)
			continue
		}

		if l.recursive && entry.IsDir() {
			// TODO: descend into subdirectories
		} else {
			if err := l.renderer.Print(child); err != nil {
				fmt.Fprintf(l.out, "error: %v\n", err)
			}
		}
	}
}
