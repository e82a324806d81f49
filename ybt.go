// Package ybt turns still images into yellow-blue-time animations.
//
// A red-green color blind viewer perceives only the yellow-blue axis of an
// image; whatever the red-green axis carried is lost. This package re-encodes
// that lost axis in time: the image's own yellow-blue content is blended with
// a yellow-blue rendition of its red-green content, using a periodic mixing
// function, so that reds and greens become regions that pulse at a different
// phase than the colors they were confused with.
//
// The pipeline has three stages. [YellowBlue] projects the source image onto
// the yellow-blue axis, [RedGreenToYellowBlue] re-expresses the red-green
// axis in yellow-blue terms, and [Compose] samples one period of a mixing
// function such as [SinFourth] to blend the two projections into a frame
// [Sequence]. Encoding and playback of sequences live in the imageio and
// fadecandy packages.
package ybt

import (
	"errors"

	"github.com/BeatGlow/ybt/pixel"
)

// Errors.
var (
	ErrImageSize = errors.New("ybt: image dimensions differ")
	ErrPeriod    = errors.New("ybt: period must be a positive number of seconds")
	ErrRate      = errors.New("ybt: frame rate must be positive")
)

// Convert runs the full pipeline on a decoded image: it derives the
// yellow-blue projection and the red-green-as-yellow-blue projection, and
// composes them over one period of the sin⁴ mixing function at the given
// frame rate.
func Convert(img *pixel.RGBImage, period, rate float64) (*Sequence, error) {
	var (
		yb   = YellowBlue.Apply(img)
		rgyb = RedGreenToYellowBlue.Apply(img)
	)
	return Compose(yb, rgyb, SinFourth(period), period, rate)
}
