package inspect

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/unix"

	"dirinfo/internal/model"
)

// Resolve stats path and returns its normalized metadata record.
//
// The first stat is link-aware. When it reports a symlink, the link target is
// read best-effort ("?" when unreadable) and a second, following stat is
// attempted: if it succeeds the permission, size and timestamp fields are
// taken from the target, while the entry type stays symlink so the type and
// color columns still describe the link. A failed follow keeps the link's own
// fields and is not an error; dangling links resolve fine.
func Resolve(path string) (model.Metadata, error) {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return model.Metadata{}, fmt.Errorf("lstat %s: %w", path, err)
	}

	var md model.Metadata
	isLink := st.Mode&unix.S_IFMT == unix.S_IFLNK
	if isLink {
		target, err := os.Readlink(path)
		if err != nil {
			target = "?"
		}
		md.LinkTarget = target

		var followed unix.Stat_t
		if err := unix.Stat(path, &followed); err == nil {
			st = followed
		}
	}

	md.Type = entryTypeFromMode(st.Mode)
	if isLink {
		md.Type = model.EntryTypeSymlink
	}
	md.Perm = uint32(st.Mode) & 0o777
	md.Size = st.Size
	md.ModTime = time.Unix(st.Mtim.Unix())
	md.AccessTime = time.Unix(st.Atim.Unix())
	md.ChangeTime = time.Unix(st.Ctim.Unix())
	md.UID = st.Uid
	md.GID = st.Gid
	return md, nil
}

func entryTypeFromMode(mode uint32) model.EntryType {
	switch mode & unix.S_IFMT {
	case unix.S_IFBLK:
		return model.EntryTypeBlockDevice
	case unix.S_IFCHR:
		return model.EntryTypeCharDevice
	case unix.S_IFDIR:
		return model.EntryTypeDirectory
	case unix.S_IFIFO:
		return model.EntryTypeFifo
	case unix.S_IFLNK:
		return model.EntryTypeSymlink
	case unix.S_IFREG:
		return model.EntryTypeFile
	case unix.S_IFSOCK:
		return model.EntryTypeSocket
	default:
		return model.EntryTypeUnknown
	}
}
