package pixel

import (
	"image"
	"image/color"

	"github.com/BeatGlow/ybt/draw"
)

type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// Buffer holds the pixel values and is the container used by the image types
// in this package.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image samples.
	Pix []float32

	// Stride is the Pix stride (in samples) between vertically adjacent pixels.
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Buffer) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0
	}
}

func makeBuffer(w, h, stride, size int) Buffer {
	return Buffer{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]float32, size),
		Stride: stride,
	}
}

// RGBImage is a floating point image with three samples per pixel.
type RGBImage struct {
	Buffer
}

func NewRGBImage(w, h int) *RGBImage {
	return &RGBImage{
		Buffer: makeBuffer(w, h, w*3, w*3*h),
	}
}

func (p *RGBImage) ColorModel() color.Model {
	return RGBModel
}

func (p *RGBImage) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*3
}

func (p *RGBImage) At(x, y int) color.Color {
	if !(image.Point{x, y}).In(p.Rect) {
		return color.Transparent
	}
	return p.RGBAt(x, y)
}

func (p *RGBImage) RGBAt(x, y int) RGB {
	if !(image.Point{x, y}).In(p.Rect) {
		return RGB{}
	}

	i := p.PixOffset(x, y)
	return RGB{p.Pix[i], p.Pix[i+1], p.Pix[i+2]}
}

func (p *RGBImage) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}).In(p.Rect) {
		return
	}
	p.setRGB(x, y, rgbModel(c).(RGB))
}

func (p *RGBImage) SetRGB(x, y int, c RGB) {
	if !(image.Point{x, y}).In(p.Rect) {
		return
	}
	p.setRGB(x, y, c)
}

func (p *RGBImage) setRGB(x, y int, c RGB) {
	i := p.PixOffset(x, y)
	p.Pix[i+0] = c.R
	p.Pix[i+1] = c.G
	p.Pix[i+2] = c.B
}

func (p *RGBImage) Fill(c color.Color) {
	v := rgbModel(c).(RGB)
	for i, l := 0, len(p.Pix); i < l; i += 3 {
		p.Pix[i+0] = v.R
		p.Pix[i+1] = v.G
		p.Pix[i+2] = v.B
	}
}

// FromImage converts any image to an RGBImage with the origin at (0, 0).
// Channels are normalized to floating point by dividing their 8-bit value
// by 256, so a fully saturated channel maps to 255/256.
func FromImage(m image.Image) *RGBImage {
	b := m.Bounds()
	p := NewRGBImage(b.Dx(), b.Dy())

	switch m := m.(type) {
	case *image.NRGBA:
		for y := 0; y < b.Dy(); y++ {
			si := m.PixOffset(b.Min.X, b.Min.Y+y)
			di := y * p.Stride
			for x := 0; x < b.Dx(); x++ {
				p.Pix[di+0] = float32(m.Pix[si+0]) / 256
				p.Pix[di+1] = float32(m.Pix[si+1]) / 256
				p.Pix[di+2] = float32(m.Pix[si+2]) / 256
				si += 4
				di += 3
			}
		}

	default:
		di := 0
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				r, g, bl, _ := m.At(x, y).RGBA()
				p.Pix[di+0] = float32(r>>8) / 256
				p.Pix[di+1] = float32(g>>8) / 256
				p.Pix[di+2] = float32(bl>>8) / 256
				di += 3
			}
		}
	}

	return p
}

// ToNRGBA quantizes the image to 8 bits per channel. Samples are clamped
// to [0, 1], so out of range values produced by colorspace transforms
// saturate here.
func (p *RGBImage) ToNRGBA() *image.NRGBA {
	b := p.Rect
	m := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		si := p.PixOffset(b.Min.X, b.Min.Y+y)
		di := m.PixOffset(0, y)
		for x := 0; x < b.Dx(); x++ {
			m.Pix[di+0] = uint8(clamp(p.Pix[si+0])*255 + 0.5)
			m.Pix[di+1] = uint8(clamp(p.Pix[si+1])*255 + 0.5)
			m.Pix[di+2] = uint8(clamp(p.Pix[si+2])*255 + 0.5)
			m.Pix[di+3] = 0xff
			si += 3
			di += 4
		}
	}
	return m
}

// Interface checks.
var (
	_ Image = (*RGBImage)(nil)
)
