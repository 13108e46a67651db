package main

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"io"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/ftrvxmtrx/tga"
	"github.com/nwaples/rardecode"
	"github.com/oov/psd"
	"github.com/rwcarlsen/goexif/exif"
	"github.com/spf13/afero"
	"golang.org/x/image/bmp"
)

// archiveMember is a supported entry read out of an archive
type archiveMember struct {
	Name string // Path within the archive
	Data []byte
}

// pictureDecoder decodes one format recognised by its leading bytes
type pictureDecoder struct {
	format string
	magic  string
	decode func(io.Reader) (image.Image, error)
}

var pictureDecoders = []pictureDecoder{
	{"jpeg", "\xff\xd8", jpeg.Decode},
	{"gif", "GIF8", gif.Decode},
	{"bmp", "BM", bmp.Decode},
	{"psd", "8BPS", decodePSD},
}

// decodePSD returns the merged image of a Photoshop document.
func decodePSD(r io.Reader) (image.Image, error) {
	doc, _, err := psd.Decode(r, &psd.DecodeOptions{})
	if err != nil {
		return nil, err
	}
	if doc.Picker == nil {
		return nil, errors.New("psd: no merged image")
	}
	return doc.Picker, nil
}

// findDecoder picks the decoder for data. TGA has no signature, so it is
// only tried when the name says so.
func findDecoder(data []byte, name string) (string, func(io.Reader) (image.Image, error)) {
	for _, d := range pictureDecoders {
		if bytes.HasPrefix(data, []byte(d.magic)) {
			return d.format, d.decode
		}
	}
	if strings.Contains(strings.ToLower(name), ".tga") {
		return "tga", tga.Decode
	}
	return "", nil
}

// decodePicture decodes raw file contents into a Picture named name.
func decodePicture(data []byte, name string) (Picture, error) {
	format, decode := findDecoder(data, name)
	if decode == nil {
		return Picture{}, fmt.Errorf("decoding %s: %w", name, image.ErrFormat)
	}
	img, err := decode(bytes.NewReader(data))
	if err != nil {
		return Picture{}, fmt.Errorf("decoding %s: %w", name, err)
	}
	pic := Picture{Name: name, Image: img, Format: format}
	if format == "jpeg" {
		pic.Camera = readCameraModel(data)
	}
	return pic, nil
}

// readCameraModel returns the EXIF camera model, or "" if there is none.
func readCameraModel(data []byte) string {
	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return ""
	}
	tag, err := x.Get(exif.Model)
	if err != nil {
		return ""
	}
	model, err := tag.StringVal()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(model)
}

// loadPictureFile reads and decodes a regular file.
func loadPictureFile(fsys afero.Fs, path string) (Picture, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return Picture{}, err
	}
	return decodePicture(data, path)
}

// Archive reading

func readZipMembers(fsys afero.Fs, archivePath string, filter FormatFilter) ([]archiveMember, error) {
	f, err := fsys.Open(archivePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	r, err := zip.NewReader(f, info.Size())
	if err != nil {
		return nil, err
	}

	var members []archiveMember
	for _, zf := range r.File {
		if zf.FileInfo().IsDir() || !filter.Supported(strings.ToLower(zf.Name)) {
			continue
		}
		rc, err := zf.Open()
		if err != nil {
			debugLog("zip entry %s in %s: %v", zf.Name, archivePath, err)
			continue
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			debugLog("zip entry %s in %s: %v", zf.Name, archivePath, err)
			continue
		}
		members = append(members, archiveMember{Name: zf.Name, Data: data})
	}
	return members, nil
}

func readRarMembers(fsys afero.Fs, archivePath string, filter FormatFilter) ([]archiveMember, error) {
	f, err := fsys.Open(archivePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := rardecode.NewReader(f, "")
	if err != nil {
		return nil, err
	}

	var members []archiveMember
	for {
		header, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if header.IsDir || !filter.Supported(strings.ToLower(header.Name)) {
			continue
		}
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		members = append(members, archiveMember{Name: header.Name, Data: data})
	}
	return members, nil
}

func read7zMembers(fsys afero.Fs, archivePath string, filter FormatFilter) ([]archiveMember, error) {
	f, err := fsys.Open(archivePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	r, err := sevenzip.NewReader(f, info.Size())
	if err != nil {
		return nil, err
	}

	var members []archiveMember
	for _, sf := range r.File {
		if sf.FileInfo().IsDir() || !filter.Supported(strings.ToLower(sf.Name)) {
			continue
		}
		rc, err := sf.Open()
		if err != nil {
			debugLog("7z entry %s in %s: %v", sf.Name, archivePath, err)
			continue
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			debugLog("7z entry %s in %s: %v", sf.Name, archivePath, err)
			continue
		}
		members = append(members, archiveMember{Name: sf.Name, Data: data})
	}
	return members, nil
}

// readArchiveMembers returns the supported entries of a zip, rar or 7z archive in archive order.
func readArchiveMembers(fsys afero.Fs, archivePath string, filter FormatFilter) ([]archiveMember, error) {
	ext := strings.ToLower(filepath.Ext(archivePath))
	switch ext {
	case ".zip":
		return readZipMembers(fsys, archivePath, filter)
	case ".rar":
		return readRarMembers(fsys, archivePath, filter)
	case ".7z":
		return read7zMembers(fsys, archivePath, filter)
	default:
		return nil, fmt.Errorf("unsupported archive format: %s", ext)
	}
}
