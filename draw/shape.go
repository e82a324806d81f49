package draw

import (
	"image"
	"image/color"
)

// Line draws a line between two points.
func Line(dst Image, a, b image.Point, c color.Color) {
	bresenham(dst, a.X, a.Y, b.X, b.Y, c)
}

// HorizontalLine draws a line between (x,y) and (x+w-1,y).
func HorizontalLine(dst Image, x, y, w int, c color.Color) {
	bresenham(dst, x, y, x+w-1, y, c)
}

// VerticalLine draws a line between (x,y) and (x,y+h-1).
func VerticalLine(dst Image, x, y, h int, c color.Color) {
	bresenham(dst, x, y, x, y+h-1, c)
}

// Rectangle draws a rectangle outline.
func Rectangle(dst Image, rect image.Rectangle, c color.Color) {
	if rect.Empty() {
		return
	}
	var (
		x = rect.Min.X
		y = rect.Min.Y
		w = rect.Dx()
		h = rect.Dy()
	)
	HorizontalLine(dst, x, y, w, c)
	HorizontalLine(dst, x, y+h-1, w, c)
	VerticalLine(dst, x, y, h, c)
	VerticalLine(dst, x+w-1, y, h, c)
}

// Box draws a filled rectangle.
func Box(dst Image, rect image.Rectangle, c color.Color) {
	var (
		y = rect.Min.Y
		h = rect.Dy()
	)
	for x := rect.Min.X; x < rect.Max.X; x++ {
		VerticalLine(dst, x, y, h, c)
	}
}

// Generalized with integer
func bresenham(dst Image, x1, y1, x2, y2 int, c color.Color) {
	var (
		dx = abs(x2 - x1)
		dy = -abs(y2 - y1)
		sx = 1
		sy = 1
	)
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	for e := dx + dy; ; {
		dst.Set(x1, y1, c)

		e2 := 2 * e
		if e2 >= dy {
			if x1 == x2 {
				return
			}
			e += dy
			x1 += sx
		}
		if e2 <= dx {
			if y1 == y2 {
				return
			}
			e += dx
			y1 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
