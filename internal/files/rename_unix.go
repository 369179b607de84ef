//go:build !windows

package files

import "os"

// rename(2) is atomic within a filesystem on POSIX systems.
func renameAtomic(oldPath, newPath string) error {
	return os.Rename(oldPath, newPath)
}
