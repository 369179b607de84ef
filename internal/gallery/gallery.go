// Package gallery discovers image files in a folder and validates that
// their count forms a perfect square grid.
package gallery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/oukeidos/picsq/internal/apperrors"
)

// Recognized image extensions, matched case-insensitively.
var recognizedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".bmp":  {},
	".webp": {},
}

const RecognizedExtensionsLabel = ".jpg, .jpeg, .png, .gif, .bmp, .webp"

// Recognized reports whether name carries an image extension picsq accepts.
func Recognized(name string) bool {
	_, ok := recognizedExtensions[strings.ToLower(filepath.Ext(name))]
	return ok
}

// Scan lists the recognized image files in dir, sorted lexicographically
// by filename so tile placement is deterministic across platforms.
func Scan(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read folder %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if Recognized(entry.Name()) {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// Validate scans dir and returns the grid dimension d with d*d images.
// A folder with no recognized images fails with a no_images error before
// the perfect-square check runs.
func Validate(dir string) (int, error) {
	paths, err := Scan(dir)
	if err != nil {
		return 0, err
	}
	return Dimension(len(paths), dir)
}

// Dimension converts an image count into a grid side length.
func Dimension(count int, dir string) (int, error) {
	if count == 0 {
		return 0, apperrors.NoImages(dir)
	}
	d := isqrt(count)
	if d*d != count {
		return 0, apperrors.NotSquare(count)
	}
	return d, nil
}

// isqrt returns floor(sqrt(n)) for n >= 0 without float rounding hazards.
func isqrt(n int) int {
	if n < 2 {
		return n
	}
	d := n
	next := (d + n/d) / 2
	for next < d {
		d = next
		next = (d + n/d) / 2
	}
	return d
}
