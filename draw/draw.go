package draw

import (
	"image/draw"
)

// Image is an alias for [image/draw.Image].
type Image = draw.Image
