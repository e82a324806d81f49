package ybt

import "github.com/BeatGlow/ybt/pixel"

// Blend returns the per-channel convex combination of two images of equal
// dimensions:
//
//	out = (1-w)·a + w·b
//
// The weight is clamped to [0,1].
func Blend(a, b *pixel.RGBImage, w float32) (*pixel.RGBImage, error) {
	ab, bb := a.Bounds(), b.Bounds()
	if ab.Dx() != bb.Dx() || ab.Dy() != bb.Dy() {
		return nil, ErrImageSize
	}
	return blend(a, b, w), nil
}

func blend(a, b *pixel.RGBImage, w float32) *pixel.RGBImage {
	switch {
	case w < 0:
		w = 0
	case w > 1:
		w = 1
	}

	var (
		ab  = a.Bounds()
		bb  = b.Bounds()
		out = pixel.NewRGBImage(ab.Dx(), ab.Dy())
		u   = 1 - w
	)
	for y := 0; y < ab.Dy(); y++ {
		var (
			ai = a.PixOffset(ab.Min.X, ab.Min.Y+y)
			bi = b.PixOffset(bb.Min.X, bb.Min.Y+y)
			oi = y * out.Stride
		)
		for i := 0; i < ab.Dx()*3; i++ {
			out.Pix[oi+i] = u*a.Pix[ai+i] + w*b.Pix[bi+i]
		}
	}
	return out
}
