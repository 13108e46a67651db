package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

var (
	ErrDirectoryNotFound = errors.New("directory not found")
	ErrDirectoryAccess   = errors.New("directory access error")
	ErrNoSupportedImages = errors.New("no supported images")
	ErrDecodeFailed      = errors.New("picture could not be decoded")
)

// SkippedEntry records a directory or archive entry left out of the store
type SkippedEntry struct {
	Path   string
	Reason error
}

// LoadReport summarises a scan. Entries that could not be read or decoded
// are collected here instead of aborting the scan.
type LoadReport struct {
	Scanned int // Entries looked at
	Matched int // Entries accepted by the format filter
	Skipped []SkippedEntry
}

func (r *LoadReport) skip(path string, reason error) {
	r.Skipped = append(r.Skipped, SkippedEntry{Path: path, Reason: reason})
}

// Loader builds a PictureStore from a directory, an archive or a single file.
type Loader struct {
	fs     afero.Fs
	filter FormatFilter
	order  SortStrategy
}

// NewLoader creates a Loader reading from fsys.
func NewLoader(fsys afero.Fs, filter FormatFilter, order SortStrategy) *Loader {
	if filter == nil {
		filter = newFormatFilter(false)
	}
	if order == nil {
		order = &EntryOrderSortStrategy{}
	}
	return &Loader{fs: fsys, filter: filter, order: order}
}

// checkReadable reports whether path may be opened for reading.
func (l *Loader) checkReadable(path string) error {
	if _, ok := l.fs.(*afero.OsFs); ok {
		return accessReadable(path)
	}
	info, err := l.fs.Stat(path)
	if err != nil {
		return err
	}
	if info.Mode().Perm()&0o444 == 0 {
		return fs.ErrPermission
	}
	return nil
}

// LoadDirectory scans one level of dir and decodes every supported entry.
func (l *Loader) LoadDirectory(dir string) (*PictureStore, LoadReport, error) {
	var report LoadReport

	info, err := l.fs.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, report, fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
		}
		return nil, report, fmt.Errorf("%w: %s: %v", ErrDirectoryAccess, dir, err)
	}
	if !info.IsDir() {
		return nil, report, fmt.Errorf("%w: %s is not a directory", ErrDirectoryAccess, dir)
	}

	d, err := l.fs.Open(dir)
	if err != nil {
		return nil, report, fmt.Errorf("%w: %s: %v", ErrDirectoryAccess, dir, err)
	}
	names, err := d.Readdirnames(-1)
	d.Close()
	if err != nil {
		return nil, report, fmt.Errorf("%w: %s: %v", ErrDirectoryAccess, dir, err)
	}

	store := NewPictureStore()
	for _, name := range l.order.Sort(names) {
		path := filepath.Join(dir, name)
		report.Scanned++

		if err := l.checkReadable(path); err != nil {
			if errors.Is(err, fs.ErrPermission) {
				log.Printf("%s: permission denied", path)
			} else {
				log.Printf("Warning: %s: %v", path, err)
			}
			report.skip(path, err)
			continue
		}

		// Match on a lowercase copy, load and display the original path
		if !l.filter.Supported(strings.ToLower(path)) {
			continue
		}
		report.Matched++

		pic, err := loadPictureFile(l.fs, path)
		if err != nil {
			debugLog("Skipping %s: %v", path, err)
			report.skip(path, err)
			continue
		}
		store.Append(pic)
	}

	if store.IsEmpty() {
		return nil, report, fmt.Errorf("%w: %s", ErrNoSupportedImages, dir)
	}
	return store, report, nil
}

// LoadArchive treats a zip, rar or 7z archive like a directory.
func (l *Loader) LoadArchive(archivePath string) (*PictureStore, LoadReport, error) {
	var report LoadReport

	if _, err := l.fs.Stat(archivePath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, report, fmt.Errorf("%w: %s", ErrDirectoryNotFound, archivePath)
		}
		return nil, report, fmt.Errorf("%w: %s: %v", ErrDirectoryAccess, archivePath, err)
	}
	if err := l.checkReadable(archivePath); err != nil {
		return nil, report, fmt.Errorf("%w: %s: %v", ErrDirectoryAccess, archivePath, err)
	}

	members, err := readArchiveMembers(l.fs, archivePath, l.filter)
	if err != nil {
		return nil, report, fmt.Errorf("%w: %s: %v", ErrDirectoryAccess, archivePath, err)
	}

	byName := make(map[string][]archiveMember, len(members))
	names := make([]string, 0, len(members))
	for _, m := range members {
		if _, seen := byName[m.Name]; !seen {
			names = append(names, m.Name)
		}
		byName[m.Name] = append(byName[m.Name], m)
	}

	store := NewPictureStore()
	for _, name := range l.order.Sort(names) {
		for _, m := range byName[name] {
			report.Scanned++
			report.Matched++
			fullName := archivePath + ":" + m.Name
			pic, err := decodePicture(m.Data, fullName)
			if err != nil {
				debugLog("Skipping %s: %v", fullName, err)
				report.skip(fullName, err)
				continue
			}
			store.Append(pic)
		}
	}

	if store.IsEmpty() {
		return nil, report, fmt.Errorf("%w: %s", ErrNoSupportedImages, archivePath)
	}
	return store, report, nil
}

// LoadFile builds a one-picture store. Unlike a scan, a decode failure is fatal.
func (l *Loader) LoadFile(path string) (*PictureStore, error) {
	pic, err := loadPictureFile(l.fs, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}
	store := NewPictureStore()
	store.Append(pic)
	return store, nil
}
