//go:build windows

package files

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// os.Rename maps to MoveFileEx without MOVEFILE_WRITE_THROUGH, which
// can reorder the rename past the data write. The collage must never
// appear truncated after a crash, so the write-through flag is set
// explicitly.
func renameAtomic(oldPath, newPath string) error {
	src, err := windows.UTF16PtrFromString(oldPath)
	if err != nil {
		return fmt.Errorf("invalid source path: %w", err)
	}
	dst, err := windows.UTF16PtrFromString(newPath)
	if err != nil {
		return fmt.Errorf("invalid destination path: %w", err)
	}
	return windows.MoveFileEx(src, dst,
		windows.MOVEFILE_REPLACE_EXISTING|windows.MOVEFILE_WRITE_THROUGH)
}
