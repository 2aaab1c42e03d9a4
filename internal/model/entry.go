package model

import "time"

// EntryType is the single-character classification of a filesystem entry,
// matching the type column of the brief output.
type EntryType byte

const (
	EntryTypeBlockDevice EntryType = 'b'
	EntryTypeCharDevice  EntryType = 'c'
	EntryTypeDirectory   EntryType = 'd'
	EntryTypeFifo        EntryType = 'p'
	EntryTypeSymlink     EntryType = 'l'
	EntryTypeFile        EntryType = 'f'
	EntryTypeSocket      EntryType = 's'
	EntryTypeUnknown     EntryType = '?'
)

func (t EntryType) String() string {
	return string(t)
}

// Description returns the human-readable name of the entry type, used by the
// detail view.
func (t EntryType) Description() string {
	switch t {
	case EntryTypeBlockDevice:
		return "Block Device"
	case EntryTypeCharDevice:
		return "Character Device"
	case EntryTypeDirectory:
		return "Directory"
	case EntryTypeFifo:
		return "Fifo Pipe File"
	case EntryTypeSymlink:
		return "Symlink File"
	case EntryTypeFile:
		return "Regular File"
	case EntryTypeSocket:
		return "Socket"
	default:
		return "Unknown"
	}
}

// MarshalJSON emits the type as its single-character string form.
func (t EntryType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// Metadata is the normalized record for one filesystem entry.
//
// For symlinks the permission, size and timestamp fields describe the link
// target when the target could be followed, and the link itself otherwise;
// Type stays EntryTypeSymlink either way.
type Metadata struct {
	Type       EntryType `json:"type"`
	Perm       uint32    `json:"perm"`
	Size       int64     `json:"size"`
	ModTime    time.Time `json:"mod_time"`
	AccessTime time.Time `json:"access_time"`
	ChangeTime time.Time `json:"change_time"`
	UID        uint32    `json:"uid"`
	GID        uint32    `json:"gid"`
	LinkTarget string    `json:"link_target,omitempty"`
}

// IsSymlink reports whether the entry itself is a symbolic link.
func (m Metadata) IsSymlink() bool {
	return m.Type == EntryTypeSymlink
}

// LinkSuffix returns the " -> target" suffix appended to symlink names, or ""
// for non-links.
func (m Metadata) LinkSuffix() string {
	if !m.IsSymlink() {
		return ""
	}
	return " -> " + m.LinkTarget
}
