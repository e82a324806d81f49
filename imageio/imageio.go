// Package imageio decodes still images into pixel images and encodes
// pixel images and frame sequences back to files.
package imageio

import (
	"bufio"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register decoder

	"github.com/BeatGlow/ybt/pixel"
)

// Format of an encoded image.
type Format uint8

// Supported image formats.
const (
	None Format = iota
	PNG
	JPEG
	GIF
	BMP
	TIFF
	WebP
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case JPEG:
		return "jpeg"
	case GIF:
		return "gif"
	case BMP:
		return "bmp"
	case TIFF:
		return "tiff"
	case WebP:
		return "webp"
	default:
		return "unknown"
	}
}

// FormatByExt resolves a file extension, with or without the leading dot,
// to a Format.
func FormatByExt(ext string) (Format, bool) {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "png":
		return PNG, true
	case "jpg", "jpeg":
		return JPEG, true
	case "gif":
		return GIF, true
	case "bmp":
		return BMP, true
	case "tif", "tiff":
		return TIFF, true
	case "webp":
		return WebP, true
	}
	return None, false
}

// Open decodes the image file at filename.
func Open(filename string) (*pixel.RGBImage, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(bufio.NewReader(f))
}

// Read decodes an image from r and normalizes it to a floating point RGB
// image.
func Read(r io.Reader) (*pixel.RGBImage, error) {
	m, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return pixel.FromImage(m), nil
}

// Save encodes the image to filename, in the format implied by the file
// extension.
func Save(filename string, m image.Image) error {
	format, ok := FormatByExt(filepath.Ext(filename))
	if !ok {
		return fmt.Errorf("imageio: no encoder for %q", filename)
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err = Encode(w, m, format); err != nil {
		return err
	}
	return w.Flush()
}

// Encode writes the image to w in the given format. Floating point images
// are quantized to 8 bits per channel first.
func Encode(w io.Writer, m image.Image, format Format) error {
	if p, ok := m.(*pixel.RGBImage); ok {
		m = p.ToNRGBA()
	}

	switch format {
	case PNG:
		return png.Encode(w, m)
	case JPEG:
		return jpeg.Encode(w, m, &jpeg.Options{Quality: 90})
	case GIF:
		return gif.Encode(w, m, nil)
	case BMP:
		return bmp.Encode(w, m)
	case TIFF:
		return tiff.Encode(w, m, nil)
	default:
		return fmt.Errorf("imageio: no encoder for %s images", format)
	}
}
