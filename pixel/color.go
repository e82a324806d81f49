package pixel

import "image/color"

// Model for the colors in this package.
var (
	RGBModel color.Model = color.ModelFunc(rgbModel)
)

var (
	Black = RGB{0, 0, 0}
	White = RGB{1, 1, 1}
)

// RGB represents a color with three floating point channels in the
// nominal range [0, 1]. Channel values outside that range are legal;
// linear colorspace transforms produce them and they are only clamped
// when the color is quantized for encoding or display.
type RGB struct {
	R, G, B float32
}

func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(clamp(c.R)*0xffff + 0.5)
	g = uint32(clamp(c.G)*0xffff + 0.5)
	b = uint32(clamp(c.B)*0xffff + 0.5)
	return r, g, b, 0xffff
}

// NRGBA returns the color quantized to 8 bits per channel, fully opaque.
func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp(c.R)*255 + 0.5),
		G: uint8(clamp(c.G)*255 + 0.5),
		B: uint8(clamp(c.B)*255 + 0.5),
		A: 0xff,
	}
}

func rgbModel(c color.Color) color.Color {
	if _, ok := c.(RGB); ok {
		return c
	}
	r, g, b, _ := c.RGBA()

	// Channels are normalized against 256 rather than 255, matching
	// FromImage: an 8-bit 0xff maps to 255/256, not 1.0.
	return RGB{
		R: float32(r>>8) / 256,
		G: float32(g>>8) / 256,
		B: float32(b>>8) / 256,
	}
}

func clamp(v float32) float32 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
