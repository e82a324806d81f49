package ybt

import "github.com/BeatGlow/ybt/pixel"

// ColorMatrix is a linear map between three-channel color representations.
// Row i holds the coefficients of output channel i, so that
//
//	out[i] = m[i][0]·r + m[i][1]·g + m[i][2]·b
//
// Matrices are plain linear maps; they do not clamp, and applying one to
// colors in [0,1] may produce values outside that range.
type ColorMatrix [3][3]float32

// The color matrices used by the yellow-blue-time pipeline.
var (
	// YellowBlue projects a color onto the yellow-blue axis by replacing
	// red and green with their average. This is the part of the image a
	// red-green color blind viewer perceives.
	YellowBlue = ColorMatrix{
		{0.5, 0.5, 0},
		{0.5, 0.5, 0},
		{0, 0, 1},
	}

	// RedGreen isolates the red-green axis, folding half the blue channel
	// into both red and green so the projection remains visible on its own.
	RedGreen = ColorMatrix{
		{1, 0, 0.5},
		{0, 1, 0.5},
		{0, 0, 0},
	}

	// RedGreenToYellowBlue re-encodes the red-green axis in yellow-blue
	// terms: reds come out yellow, greens come out blue. Like YellowBlue,
	// every output lies on the yellow-blue axis (equal red and green).
	RedGreenToYellowBlue = ColorMatrix{
		{0.75, 0.25, 0},
		{0.75, 0.25, 0},
		{0, 1, 0},
	}
)

// Named returns a built-in matrix by name.
func Named(name string) (ColorMatrix, bool) {
	switch name {
	case "yb", "yellow-blue":
		return YellowBlue, true
	case "rg", "red-green":
		return RedGreen, true
	case "rgyb", "red-green-yellow-blue":
		return RedGreenToYellowBlue, true
	}
	return ColorMatrix{}, false
}

// ApplyRGB returns the matrix applied to a single color.
func (m ColorMatrix) ApplyRGB(c pixel.RGB) pixel.RGB {
	return pixel.RGB{
		R: m[0][0]*c.R + m[0][1]*c.G + m[0][2]*c.B,
		G: m[1][0]*c.R + m[1][1]*c.G + m[1][2]*c.B,
		B: m[2][0]*c.R + m[2][1]*c.G + m[2][2]*c.B,
	}
}

// Apply returns a new image with the matrix applied to every pixel. The
// source image is left untouched.
func (m ColorMatrix) Apply(img *pixel.RGBImage) *pixel.RGBImage {
	b := img.Bounds()
	out := pixel.NewRGBImage(b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		si := img.PixOffset(b.Min.X, b.Min.Y+y)
		di := y * out.Stride
		for x := 0; x < b.Dx(); x++ {
			v := m.ApplyRGB(pixel.RGB{
				R: img.Pix[si+0],
				G: img.Pix[si+1],
				B: img.Pix[si+2],
			})
			out.Pix[di+0] = v.R
			out.Pix[di+1] = v.G
			out.Pix[di+2] = v.B
			si += 3
			di += 3
		}
	}
	return out
}
