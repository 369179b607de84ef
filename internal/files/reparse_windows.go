//go:build windows

package files

import "golang.org/x/sys/windows"

// isReparsePoint catches junctions and mount points, which Lstat does
// not report as symlinks on Windows.
func isReparsePoint(path string) (bool, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return false, err
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return false, err
	}
	return attrs&windows.FILE_ATTRIBUTE_REPARSE_POINT != 0, nil
}
