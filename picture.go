package main

import (
	"errors"
	"fmt"
	"image"
)

// ErrOutOfRange is returned by PictureStore.Get for an index past the end.
var ErrOutOfRange = errors.New("picture index out of range")

// Picture is one decoded image together with the path it was loaded from.
type Picture struct {
	Name   string      // Originating path, case preserved (archive:entry for archive members)
	Image  image.Image // Decoded bitmap
	Format string      // Name of the decoder that read it: jpeg, gif, bmp, tga or psd
	Camera string      // EXIF camera model, empty when unknown
}

// Size returns the native width and height of the picture.
func (p Picture) Size() (int, int) {
	if p.Image == nil {
		return 0, 0
	}
	b := p.Image.Bounds()
	return b.Dx(), b.Dy()
}

// PictureStore is the ordered collection of every picture loaded for this run.
// It is appended to during loading only and read-only afterwards.
type PictureStore struct {
	pictures []Picture
}

// NewPictureStore creates an empty store
func NewPictureStore() *PictureStore {
	return &PictureStore{}
}

// Append adds a picture at the end of the store.
func (s *PictureStore) Append(p Picture) {
	s.pictures = append(s.pictures, p)
}

// Len returns the number of pictures.
func (s *PictureStore) Len() int {
	return len(s.pictures)
}

// IsEmpty reports whether no picture was loaded.
func (s *PictureStore) IsEmpty() bool {
	return len(s.pictures) == 0
}

// Get returns the picture at idx.
func (s *PictureStore) Get(idx int) (Picture, error) {
	if idx < 0 || idx >= len(s.pictures) {
		return Picture{}, fmt.Errorf("%w: %d (have %d)", ErrOutOfRange, idx, len(s.pictures))
	}
	return s.pictures[idx], nil
}

// Names returns the picture names in store order.
func (s *PictureStore) Names() []string {
	names := make([]string, len(s.pictures))
	for i, p := range s.pictures {
		names[i] = p.Name
	}
	return names
}
