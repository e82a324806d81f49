package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/BeatGlow/ybt"
	"github.com/BeatGlow/ybt/draw"
	"github.com/BeatGlow/ybt/imageio"
	"github.com/BeatGlow/ybt/pixel"
)

func main() {
	var (
		width  = flag.Int("width", 640, "Card width in pixels")
		height = flag.Int("height", 400, "Card height in pixels")
		output = flag.String("o", "ybt-testcard.png", "Output path")
	)
	flag.Parse()

	if *width < 320 || *height < 240 {
		fatal(errors.New("card must be at least 320x240"))
	}

	card, err := testCard(*width, *height)
	if err != nil {
		fatal(err)
	}

	fmt.Printf("writing %dx%d test card to %s\n", *width, *height, *output)
	if err = imageio.Save(*output, card); err != nil {
		fatal(err)
	}
}

func testCard(w, h int) (*pixel.RGBImage, error) {
	card := pixel.NewRGBImage(w, h)
	card.Fill(pixel.RGB{R: 0.05, G: 0.05, B: 0.07})
	draw.Rectangle(card, card.Bounds().Inset(4), pixel.RGB{R: 0.4, G: 0.4, B: 0.4})

	const margin = 16
	if err := draw.Label(card, margin, margin+14, 16, pixel.White, "yellow-blue-time test card"); err != nil {
		return nil, err
	}

	// The red-green gradient is the axis the conversion re-encodes, the
	// yellow-blue gradient is the axis it keeps.
	var (
		gradTop = margin + 28
		gradH   = h / 10
		red     = color.NRGBA{R: 0xff, A: 0xff}
		green   = color.NRGBA{G: 0xff, A: 0xff}
		yellow  = color.NRGBA{R: 0xff, G: 0xff, A: 0xff}
		blue    = color.NRGBA{B: 0xff, A: 0xff}
	)
	draw.GradientX(card, image.Rect(margin, gradTop, w-margin, gradTop+gradH), red, green)
	if err := draw.Label(card, margin, gradTop+gradH+14, 12, pixel.White, "red to green"); err != nil {
		return nil, err
	}

	gradTop += gradH + 24
	draw.GradientX(card, image.Rect(margin, gradTop, w-margin, gradTop+gradH), yellow, blue)
	if err := draw.Label(card, margin, gradTop+gradH+14, 12, pixel.White, "yellow to blue"); err != nil {
		return nil, err
	}

	// Swatches of the primaries and what each color matrix makes of them.
	var (
		swTop  = gradTop + gradH + 32
		sw     = h / 12
		inputs = []pixel.RGB{
			{R: 1},
			{G: 1},
			{B: 1},
		}
	)
	if err := draw.Label(card, margin, swTop-6, 10, pixel.White, "input / yellow-blue / re-encoded"); err != nil {
		return nil, err
	}
	for i, in := range inputs {
		y := swTop + i*(sw+8)
		draw.Box(card, image.Rect(margin, y, margin+sw, y+sw), in)
		draw.Box(card, image.Rect(margin+sw+8, y, margin+2*sw+8, y+sw), ybt.YellowBlue.ApplyRGB(in))
		draw.Box(card, image.Rect(margin+2*(sw+8), y, margin+3*sw+16, y+sw), ybt.RedGreenToYellowBlue.ApplyRGB(in))
	}

	// Two periods of the mixing weight, with a tick at the period boundary.
	plot := image.Rect(w/2, swTop-8, w-margin, h-margin-18)
	draw.Rectangle(card, plot, pixel.RGB{R: 0.4, G: 0.4, B: 0.4})
	draw.HorizontalLine(card, plot.Min.X+1, (plot.Min.Y+plot.Max.Y)/2, plot.Dx()-2, pixel.RGB{R: 0.2, G: 0.2, B: 0.25})
	draw.Plot(card, plot.Inset(1), 0, 2, ybt.SinFourth(1), pixel.RGB{R: 1, G: 0.8, B: 0.2})
	draw.VerticalLine(card, (plot.Min.X+plot.Max.X)/2, plot.Max.Y, 4, pixel.RGB{R: 0.4, G: 0.4, B: 0.4})
	if err := draw.Label(card, plot.Min.X, h-margin, 12, pixel.White, "mixing weight, two periods"); err != nil {
		return nil, err
	}

	return card, nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
