package io

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/matzehuels/collage/pkg/errors"
)

// SupportedExtensions lists the file extensions Scan accepts, lower-case.
var SupportedExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tif", ".tiff", ".webp"}

// IsSupported reports whether name has a supported image extension.
func IsSupported(name string) bool {
	return slices.Contains(SupportedExtensions, strings.ToLower(filepath.Ext(name)))
}

// Scan returns the paths of all supported image files directly inside dir,
// sorted by filename. Subdirectories and hidden files are skipped.
// An empty result is not an error.
func Scan(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfiguration, err, "--folder: cannot read %s", dir)
	}

	var paths []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") || !IsSupported(name) {
			continue
		}
		// Follow symlinks so linked photos are included.
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		paths = append(paths, filepath.Join(dir, name))
	}
	return paths, nil
}
