// Package pictures resolves the OS standard pictures directory used for
// default folder and output suggestions.
package pictures

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Dir returns the user's pictures directory, falling back to
// ~/Pictures and finally the working directory when nothing better is
// known.
func Dir() string {
	if xdg.UserDirs.Pictures != "" {
		return xdg.UserDirs.Pictures
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, "Pictures")
	}
	return "."
}

// DefaultFolder is the suggested source folder when none is given.
func DefaultFolder() string {
	return filepath.Join(Dir(), "images")
}

// DefaultOutput is the suggested collage destination when none is given.
func DefaultOutput() string {
	return filepath.Join(Dir(), "collage.jpg")
}
