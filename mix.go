package ybt

import "math"

// MixFunc maps a time in seconds to a blend weight in [0,1]. Mixing
// functions are periodic; [Compose] samples one full period.
type MixFunc func(t float64) float64

// SinFourth returns the sin⁴ mixing function for the given period:
//
//	h(t) = sin⁴(π·t/period)
//
// h(0) = 0 and h(period/2) = 1, so a sequence composed with it starts on
// the base image and peaks on the overlay halfway through the period.
// Unlike sin², the curve is not a time-shifted copy of its own complement:
// the sequence rests near the base image most of the period and pulses
// through the overlay, which keeps the two visually distinguishable.
func SinFourth(period float64) MixFunc {
	return func(t float64) float64 {
		s := math.Sin(math.Pi * t / period)
		s *= s
		return s * s
	}
}
