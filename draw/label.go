package draw

import (
	"image"
	"image/color"
	"sync"

	"github.com/go-fonts/latin-modern/lmsans10regular"
	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
)

var (
	labelFontOnce sync.Once
	labelFont     *truetype.Font
	labelFontErr  error
)

func loadLabelFont() (*truetype.Font, error) {
	labelFontOnce.Do(func() {
		labelFont, labelFontErr = truetype.Parse(lmsans10regular.TTF)
	})
	return labelFont, labelFontErr
}

// Label draws text with its baseline starting at (x,y), using the bundled
// Latin Modern sans face at the given point size.
func Label(dst Image, x, y int, size float64, c color.Color, text string) error {
	font, err := loadLabelFont()
	if err != nil {
		return err
	}

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(font)
	ctx.SetFontSize(size)
	ctx.SetClip(dst.Bounds())
	ctx.SetDst(dst)
	ctx.SetSrc(image.NewUniform(c))
	_, err = ctx.DrawString(text, freetype.Pt(x, y))
	return err
}
