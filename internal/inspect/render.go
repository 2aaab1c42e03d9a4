package inspect

import (
	"fmt"
	"io"
	"os/user"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"dirinfo/internal/model"
)

// timeLayout renders timestamps as MM/DD/YYYY - HH:MM:SS in local time.
const timeLayout = "01/02/2006 - 15:04:05"

var (
	styleDirectory = lipgloss.NewStyle().Foreground(lipgloss.Color("5")) // magenta
	styleSymlink   = lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // cyan
	styleFile      = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // green
	styleDevice    = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // red
)

// TypeStyle maps an entry type to its display style. Directories are magenta,
// symlinks cyan, regular and unknown entries green, and everything
// device-like (block, char, fifo, socket) red. The mapping is resolved to
// escape sequences only here, at the render boundary.
func TypeStyle(t model.EntryType) lipgloss.Style {
	switch t {
	case model.EntryTypeDirectory:
		return styleDirectory
	case model.EntryTypeSymlink:
		return styleSymlink
	case model.EntryTypeFile, model.EntryTypeUnknown:
		return styleFile
	default:
		return styleDevice
	}
}

// FormatTime renders t in the fixed local-time layout used everywhere.
func FormatTime(t time.Time) string {
	return t.Local().Format(timeLayout)
}

// FormatSize renders a byte count in human-readable form.
func FormatSize(size int64) string {
	if size < 0 {
		return strconv.FormatInt(size, 10)
	}
	return humanize.IBytes(uint64(size))
}

// PermWords describes a 3-bit permission group as words, testing the
// execute, write and read bits independently.
func PermWords(bits uint32) string {
	words := []string{"Executable", "Writable", "Readable"}
	var present []string
	for i, w := range words {
		if bits&(1<<i) != 0 {
			present = append(present, w)
		}
	}
	return strings.Join(present, ", ")
}

// DisplayPath derives the name shown for a query: traversal-discovered
// children show only their base name, user-supplied roots show the whole
// path with any leading "./" stripped.
func DisplayPath(q *model.PathQuery) string {
	p := q.Path()
	if q.Level() > 0 {
		return filepath.Base(p)
	}
	return model.TrimDotSlash(p)
}

func lookupOwnerName(uid uint32) string {
	id := strconv.FormatUint(uint64(uid), 10)
	if u, err := user.LookupId(id); err == nil {
		return u.Username
	}
	return id
}

func lookupGroupName(gid uint32) string {
	id := strconv.FormatUint(uint64(gid), 10)
	if g, err := user.LookupGroupId(id); err == nil {
		return g.Name
	}
	return id
}

// Renderer prints entries in brief or detail form. The choice depends on the
// whole query, not the entry at hand: detail is reserved for a query of
// exactly one root path that is itself a file.
type Renderer struct {
	out       io.Writer
	querySize int
}

func NewRenderer(out io.Writer, querySize int) *Renderer {
	return &Renderer{out: out, querySize: querySize}
}

// Print resolves q and renders it. Directory children always come out brief;
// a lone root-level file gets the detail block.
func (r *Renderer) Print(q *model.PathQuery) error {
	md, err := Resolve(q.Path())
	if err != nil {
		return err
	}

	name := DisplayPath(q)
	if r.querySize == 1 && q.Level() == 0 {
		fmt.Fprint(r.out, DetailText(name, q.Path(), md))
	} else {
		r.printBrief(name, md)
	}
	return nil
}

func (r *Renderer) printBrief(name string, md model.Metadata) {
	fmt.Fprintf(r.out, "| %c-%03o %-21s %10s %s%s\n",
		byte(md.Type), md.Perm,
		FormatTime(md.ModTime),
		FormatSize(md.Size),
		TypeStyle(md.Type).Render(name),
		md.LinkSuffix())
}

// DetailText builds the multi-field block for a single entry. The absolute
// path is symlink-resolved when possible, so a link argument reports where
// it really lives.
func DetailText(name, path string, md model.Metadata) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Information for '%s'\n", name)
	b.WriteString("-----------------------------\n")
	fmt.Fprintf(&b, "Owner: %s\n", lookupOwnerName(md.UID))
	fmt.Fprintf(&b, "Group: %s\n", lookupGroupName(md.GID))
	fmt.Fprintf(&b, "Type: %s\n", md.Type.Description())
	fmt.Fprintf(&b, "Full path: %s\n", TypeStyle(md.Type).Render(abs))
	if md.IsSymlink() {
		fmt.Fprintf(&b, "Link:%s\n", md.LinkSuffix())
	}
	fmt.Fprintf(&b, "Size: %s\n", FormatSize(md.Size))
	fmt.Fprintf(&b, "Date Modified: %s\n", FormatTime(md.ModTime))
	fmt.Fprintf(&b, "Date Access: %s\n", FormatTime(md.AccessTime))
	fmt.Fprintf(&b, "Date Metadata Changed: %s\n", FormatTime(md.ChangeTime))
	b.WriteString("Permissions:\n")
	fmt.Fprintf(&b, "  Owner: %s\n", PermWords(md.Perm>>6))
	fmt.Fprintf(&b, "  Group: %s\n", PermWords(md.Perm>>3&0o7))
	fmt.Fprintf(&b, "  Other: %s\n", PermWords(md.Perm&0o7))
	return b.String()
}
