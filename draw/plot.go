package draw

import (
	"image"
	"image/color"
)

// Plot draws the graph of f over rect, mapping t in [t0,t1] to the
// horizontal axis and f(t) in [0,1] to the vertical axis, 1 at the top.
// Values outside [0,1] are pinned to the rect edge.
func Plot(dst Image, rect image.Rectangle, t0, t1 float64, f func(float64) float64, c color.Color) {
	w, h := rect.Dx(), rect.Dy()
	if w < 2 || h < 2 {
		return
	}

	var prev image.Point
	for i := 0; i < w; i++ {
		t := t0 + (t1-t0)*float64(i)/float64(w-1)
		v := f(t)
		switch {
		case v < 0:
			v = 0
		case v > 1:
			v = 1
		}

		pt := image.Pt(rect.Min.X+i, rect.Max.Y-1-int(v*float64(h-1)+0.5))
		if i > 0 {
			Line(dst, prev, pt, c)
		}
		prev = pt
	}
}
