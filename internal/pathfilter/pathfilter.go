// Package pathfilter classifies file paths as images by extension.
package pathfilter

import (
	"path/filepath"
	"slices"
	"strings"
)

// ImageExtensions is the fixed set of recognized image extensions, lower-cased.
var ImageExtensions = []string{
	"jpg",
	"jpeg",
	"png",
	"gif",
	"bmp",
	"tiff",
	"webp",
	"svg",
}

// PathFilter matches paths against a set of allowed extensions.
type PathFilter struct {
	allowedExtensions []string
}

// New creates a new PathFilter for the image extension set.
func New() *PathFilter {
	return &PathFilter{
		allowedExtensions: ImageExtensions,
	}
}

// IsAllowed reports whether the path has one of the allowed extensions.
// Comparison is ASCII case-insensitive.
func (pf *PathFilter) IsAllowed(path string) bool {
	ext, ok := extension(path)
	if !ok {
		return false
	}

	return slices.Contains(pf.allowedExtensions, asciiLower(ext))
}

// asciiLower lower-cases A-Z only; other bytes are kept as is.
func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// extension returns the text after the last dot of the base name.
// A name whose only dot is the leading one (".png") has no extension.
func extension(path string) (string, bool) {
	name := filepath.Base(path)
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return "", false
	}

	lastDotIndex := strings.LastIndex(name, ".")
	if lastDotIndex <= 0 {
		return "", false
	}

	return name[lastDotIndex+1:], true
}
