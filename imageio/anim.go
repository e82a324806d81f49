package imageio

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/BeatGlow/ybt"
)

// Errors.
var (
	ErrEmptySequence = errors.New("imageio: empty frame sequence")
)

// EncodeGIF writes the sequence as an animated GIF, quantizing frames to
// the Plan 9 palette with Floyd-Steinberg dithering. Frame delays are
// accumulated in GIF centisecond ticks, so the total duration stays true
// to the frame rate even when it does not divide 100. loops is the number
// of times the animation plays; zero plays forever.
func EncodeGIF(w io.Writer, seq *ybt.Sequence, loops int) error {
	if seq == nil || seq.Len() == 0 {
		return ErrEmptySequence
	}
	if !(seq.Rate > 0) {
		return ybt.ErrRate
	}

	g := &gif.GIF{
		Image:     make([]*image.Paletted, 0, seq.Len()),
		Delay:     make([]int, 0, seq.Len()),
		LoopCount: gifLoopCount(loops),
	}

	var elapsed int
	for k, frame := range seq.Frames {
		p := image.NewPaletted(frame.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(p, frame.Bounds(), frame.ToNRGBA(), image.Point{})

		total := int(math.Round(float64(k+1) / seq.Rate * 100))
		g.Image = append(g.Image, p)
		g.Delay = append(g.Delay, total-elapsed)
		elapsed = total
	}
	return gif.EncodeAll(w, g)
}

// gifLoopCount maps a number of plays to GIF loop count semantics, where
// 0 loops forever, -1 plays once and n plays n+1 times.
func gifLoopCount(loops int) int {
	switch {
	case loops <= 0:
		return 0
	case loops == 1:
		return -1
	default:
		return loops - 1
	}
}

// SaveGIF writes the sequence as an animated GIF file.
func SaveGIF(filename string, seq *ybt.Sequence, loops int) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err = EncodeGIF(w, seq, loops); err != nil {
		return err
	}
	return w.Flush()
}

// SaveFrames writes every frame of the sequence as a numbered PNG file
// under dir, creating it if needed, and returns the paths written.
func SaveFrames(dir, base string, seq *ybt.Sequence) ([]string, error) {
	if seq == nil || seq.Len() == 0 {
		return nil, ErrEmptySequence
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	names := make([]string, 0, seq.Len())
	for k, frame := range seq.Frames {
		name := filepath.Join(dir, fmt.Sprintf("%s-%04d.png", base, k))
		if err := Save(name, frame); err != nil {
			return names, err
		}
		names = append(names, name)
	}
	return names, nil
}
