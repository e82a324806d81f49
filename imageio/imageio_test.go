package imageio

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/BeatGlow/ybt/pixel"
)

func TestFormatByExt(t *testing.T) {
	testCases := []struct {
		ext    string
		format Format
		ok     bool
	}{
		{".png", PNG, true},
		{"png", PNG, true},
		{".JPG", JPEG, true},
		{"jpeg", JPEG, true},
		{".gif", GIF, true},
		{".bmp", BMP, true},
		{".tif", TIFF, true},
		{".tiff", TIFF, true},
		{".webp", WebP, true},
		{"", None, false},
		{".txt", None, false},
	}
	for _, test := range testCases {
		t.Run(test.ext, func(it *testing.T) {
			format, ok := FormatByExt(test.ext)
			if ok != test.ok {
				it.Fatalf("expected ok to be %v, got %v", test.ok, ok)
			}
			if format != test.format {
				it.Errorf("expected %s, got %s", test.format, format)
			}
		})
	}
}

func TestSaveOpen(t *testing.T) {
	img := pixel.NewRGBImage(3, 2)
	colors := []pixel.RGB{
		{R: 0, G: 0, B: 0},
		{R: 32.0 / 256, G: 64.0 / 256, B: 128.0 / 256},
		{R: 0.5, G: 0.25, B: 0.125},
		{R: 100.0 / 256, G: 0, B: 1.0 / 256},
		{R: 0.5, G: 0.5, B: 0.5},
		{R: 16.0 / 256, G: 8.0 / 256, B: 4.0 / 256},
	}
	for i, c := range colors {
		img.SetRGB(i%3, i/3, c)
	}

	// Lossless formats only; samples are chosen to survive the 8-bit
	// quantization exactly.
	for _, ext := range []string{"png", "bmp", "tiff"} {
		t.Run(ext, func(it *testing.T) {
			name := filepath.Join(it.TempDir(), "test."+ext)
			if err := Save(name, img); err != nil {
				it.Fatalf("expected no error, got %v", err)
			}

			in, err := Open(name)
			if err != nil {
				it.Fatalf("expected no error, got %v", err)
			}
			if v := in.Bounds(); v != img.Bounds() {
				it.Fatalf("expected bounds %s, got %s", img.Bounds(), v)
			}
			for y := 0; y < 2; y++ {
				for x := 0; x < 3; x++ {
					if v, want := in.RGBAt(x, y), img.RGBAt(x, y); v != want {
						it.Errorf("pixel (%d,%d) is %#+v, expected %#+v", x, y, v, want)
					}
				}
			}
		})
	}
}

func TestSaveErrors(t *testing.T) {
	img := pixel.NewRGBImage(1, 1)

	if err := Save(filepath.Join(t.TempDir(), "test.txt"), img); err == nil {
		t.Error("expected an error for an unknown extension")
	}
	if err := Save(filepath.Join(t.TempDir(), "missing", "test.png"), img); err == nil {
		t.Error("expected an error for an unwritable path")
	}

	var buf bytes.Buffer
	if err := Encode(&buf, img, WebP); err == nil {
		t.Error("expected an error encoding webp")
	}
}

func TestReadInvalid(t *testing.T) {
	if _, err := Read(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Error("expected an error for junk input")
	}
}

func TestOpenMissing(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
