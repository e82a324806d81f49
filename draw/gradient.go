package draw

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// GradientX fills rect with a left to right gradient, blended in Lab space
// so the ramp is perceptually even.
func GradientX(dst Image, rect image.Rectangle, from, to color.Color) {
	if rect.Empty() {
		return
	}

	a, aok := colorful.MakeColor(from)
	b, bok := colorful.MakeColor(to)
	if !aok || !bok {
		return
	}

	w := rect.Dx()
	for x := rect.Min.X; x < rect.Max.X; x++ {
		var t float64
		if w > 1 {
			t = float64(x-rect.Min.X) / float64(w-1)
		}
		VerticalLine(dst, x, rect.Min.Y, rect.Dy(), a.BlendLab(b, t).Clamped())
	}
}
