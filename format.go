package main

import (
	"path/filepath"
	"strings"
)

// supportedTypes lists the markers a file name must contain to be treated as a picture.
var supportedTypes = []string{".jpg", ".bmp", ".tga", ".gif", ".psd", ".pic", ".hdr"}

// FormatFilter decides whether a file name denotes a supported picture
type FormatFilter interface {
	Supported(name string) bool
}

// substringFilter matches a supported type anywhere in the name, so
// "holiday.jpg.d/readme" qualifies as well as "a.JPG".
type substringFilter struct {
	foldCase bool
}

func (f substringFilter) Supported(name string) bool {
	if f.foldCase {
		name = strings.ToLower(name)
	}
	for _, t := range supportedTypes {
		if strings.Contains(name, t) {
			return true
		}
	}
	return false
}

// extensionFilter only accepts names whose final extension is a supported type.
type extensionFilter struct{}

func (extensionFilter) Supported(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, t := range supportedTypes {
		if ext == t {
			return true
		}
	}
	return false
}

// isSupported reports whether name contains a supported type, ignoring case.
func isSupported(name string) bool {
	return substringFilter{foldCase: true}.Supported(name)
}

// newFormatFilter returns the filter used for directory and archive scans.
func newFormatFilter(strict bool) FormatFilter {
	if strict {
		return extensionFilter{}
	}
	return substringFilter{foldCase: true}
}

func isArchiveExt(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".zip", ".rar", ".7z":
		return true
	default:
		return false
	}
}
