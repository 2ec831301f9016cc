// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"

	"github.com/ik5/audmod/utils"
	"github.com/tphakala/simd/f64"
)

// Upsample converts samples from srcFreq to cfg.SamplingFreq by zero-stuffing,
// filtering with a 31-tap sinc low-pass and renormalizing into [0,255].
//
// The output length is len(samples)*ratio truncated, clamped to
// cfg.BufferCapacity. The low-pass is applied centered with circular
// indexing over the whole output, so the first and last samples see each
// other as neighbours.
func Upsample(samples []uint8, srcFreq float64, cfg Configuration) []uint8 {
	if len(samples) == 0 || srcFreq <= 0 || cfg.Validate() != nil {
		return []uint8{}
	}

	ratio := float64(cfg.SamplingFreq) / srcFreq
	size := min(int(float64(len(samples))*ratio), int(cfg.BufferCapacity))
	if size <= 0 {
		return []uint8{}
	}

	// zero-stuff: keep the original sample only in the slot it lands on
	stuffed := make([]float64, size)
	last := len(samples) - 1
	for i := range stuffed {
		v := float64(i) / ratio
		if _, frac := math.Modf(v); frac < 1/ratio {
			stuffed[i] = float64(samples[min(int(v), last)])
		}
	}

	taps := utils.LowPass(srcFreq / 2 / float64(cfg.SamplingFreq))
	filtered := convolveCircular(stuffed, taps)

	return utils.Normalize(make([]uint8, size), filtered)
}

// convolveCircular filters x with a symmetric odd-length kernel centered on
// each output index, wrapping around the ends of x.
func convolveCircular(x, taps []float64) []float64 {
	n := len(x)
	half := len(taps) / 2

	// padded[m] = x[(m-half) mod n], so each window is a plain slice
	padded := make([]float64, n+len(taps)-1)
	for m := range padded {
		padded[m] = x[((m-half)%n+n)%n]
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = f64.DotProduct(padded[i:i+len(taps)], taps)
	}
	return out
}

// Downsample decimates samples from srcFreq to cfg.SamplingFreq by picking
// the source sample at floor(i/ratio) for every output index i. No filter is
// applied. The output length is len(samples)*ratio truncated, clamped to
// cfg.BufferCapacity.
func Downsample(samples []uint8, srcFreq float64, cfg Configuration) []uint8 {
	if len(samples) == 0 || srcFreq <= 0 || cfg.Validate() != nil {
		return []uint8{}
	}

	ratio := float64(cfg.SamplingFreq) / srcFreq
	size := min(int(float64(len(samples))*ratio), int(cfg.BufferCapacity))
	if size <= 0 {
		return []uint8{}
	}

	out := make([]uint8, size)
	last := len(samples) - 1
	for i := range out {
		out[i] = samples[min(int(float64(i)/ratio), last)]
	}
	return out
}
