// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

const epsilon = 2.220446049250313e-16 // float64 machine epsilon

// Rescale16To8 maps a signed 16-bit PCM sample onto the unsigned 8-bit range.
// The sample is shifted by -MinInt16 and scaled by MaxUint8/MaxUint16.
func Rescale16To8(s int16) uint8 {
	shifted := int32(s) - math.MinInt16
	return uint8(math.Round(float64(shifted) / math.MaxUint16 * math.MaxUint8))
}

// Normalize linearly maps src onto [0,255] so that the minimum becomes 0 and
// the maximum 255, rounding to the nearest integer. A range narrower than
// machine epsilon is widened to 1, so constant input yields all zeros.
// src is used as scratch space and is overwritten.
func Normalize(dst []uint8, src []float64) []uint8 {
	if len(src) == 0 {
		if dst == nil {
			return []uint8{}
		}
		return dst[:0]
	}

	lo := floats.Min(src)
	hi := floats.Max(src)
	if hi-lo < epsilon {
		hi = lo + 1
	}

	floats.AddConst(-lo, src)
	floats.Scale(math.MaxUint8/(hi-lo), src)

	if cap(dst) < len(src) {
		dst = make([]uint8, len(src))
	}
	dst = dst[:len(src)]
	for i, v := range src {
		dst[i] = uint8(math.Round(math.Min(math.Max(v, 0), math.MaxUint8)))
	}
	return dst
}
