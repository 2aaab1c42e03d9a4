package model

import "os"

// IsFilePath reports whether path resolves to a non-directory filesystem
// object. Symlinks are followed; unreadable paths count as directories so the
// directory listing path reports the error.
func IsFilePath(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
