package ybt

import (
	"image"
	"math"
	"time"

	"github.com/BeatGlow/ybt/pixel"
)

// Sequence is an ordered run of animation frames, sampled at Rate frames
// per second. Frames keep the order they were produced in; encoders and
// sinks must preserve it.
type Sequence struct {
	Frames []*pixel.RGBImage
	Rate   float64
}

// Len returns the number of frames.
func (s *Sequence) Len() int {
	return len(s.Frames)
}

// Bounds returns the bounding box shared by all frames.
func (s *Sequence) Bounds() image.Rectangle {
	if len(s.Frames) == 0 {
		return image.Rectangle{}
	}
	return s.Frames[0].Bounds()
}

// Duration returns the play time of a single pass over the frames.
func (s *Sequence) Duration() time.Duration {
	if s.Rate <= 0 {
		return 0
	}
	return time.Duration(float64(len(s.Frames)) / s.Rate * float64(time.Second))
}

// Compose blends the overlay image b over the base image a along one period
// of the mixing function h, producing one frame per sample: at weight 0 a
// frame is the base, at weight 1 it is the overlay. Frames sample the
// half-open interval [0,period) at t = k/rate, so a sequence holds
// ⌈period·rate⌉ frames and never duplicates the h(period) = h(0) sample.
//
// The images must have equal dimensions, and both period and rate must be
// positive and finite.
func Compose(a, b *pixel.RGBImage, h MixFunc, period, rate float64) (*Sequence, error) {
	if !(period > 0) || math.IsInf(period, 1) {
		return nil, ErrPeriod
	}
	if !(rate > 0) || math.IsInf(rate, 1) {
		return nil, ErrRate
	}
	ab, bb := a.Bounds(), b.Bounds()
	if ab.Dx() != bb.Dx() || ab.Dy() != bb.Dy() {
		return nil, ErrImageSize
	}

	n := int(math.Ceil(period * rate))
	seq := &Sequence{
		Frames: make([]*pixel.RGBImage, 0, n),
		Rate:   rate,
	}
	for k := 0; k < n; k++ {
		w := h(float64(k) / rate)
		seq.Frames = append(seq.Frames, blend(a, b, float32(w)))
	}
	return seq, nil
}
