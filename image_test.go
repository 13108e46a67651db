package main

import (
	"errors"
	"image"
	"testing"
)

func TestFindDecoder(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		data     []byte
		expected string
	}{
		{"JPEG by signature", "a.jpg", []byte("\xff\xd8\xff\xe0"), "jpeg"},
		{"GIF named as JPEG", "a.jpg", []byte("GIF89a"), "gif"},
		{"BMP", "a.bmp", []byte("BM\x00\x00"), "bmp"},
		{"PSD", "a.psd", []byte("8BPS\x00\x01"), "psd"},
		{"TGA by name", "a.tga", []byte{0, 0, 2}, "tga"},
		{"TGA uppercase name", "scans/A.TGA", []byte{0, 0, 2}, "tga"},
		{"HDR has no decoder", "a.hdr", []byte("#?RADIANCE"), ""},
		{"PIC has no decoder", "a.pic", []byte{0x53, 0x80, 0xf6, 0x34}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, decode := findDecoder(tt.data, tt.file)
			if format != tt.expected {
				t.Errorf("Expected format %q, got %q", tt.expected, format)
			}
			if (decode == nil) != (tt.expected == "") {
				t.Errorf("Decoder presence mismatch for %s", tt.file)
			}
		})
	}
}

func TestDecodePictureUnknownFormat(t *testing.T) {
	_, err := decodePicture([]byte("#?RADIANCE\n"), "sky.hdr")
	if !errors.Is(err, image.ErrFormat) {
		t.Errorf("Expected image.ErrFormat, got %v", err)
	}
}
