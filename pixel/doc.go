// Package pixel implements a floating point color and image library for
// linear colorspace arithmetic.
//
// This module provides an additional color model, compatible with Go's native
// [color.Color] and [image.Image] / [draw.Image] interfaces. Unlike the fixed
// point images in the standard library, samples are kept as float32 and may
// leave the [0, 1] range; values are only clamped on quantization.
package pixel
