// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// NumTaps is the length of the anti-aliasing filter used when up-sampling.
const NumTaps = 31

// Sinc is the normalized sinc function sin(pi*x)/(pi*x), with Sinc(0) = 1.
func Sinc(x float64) float64 {
	if math.Abs(x) < epsilon {
		return 1
	}
	return math.Sin(math.Pi*x) / (math.Pi * x)
}

// LowPass returns a symmetric NumTaps-tap sinc low-pass filter. cutoff is a
// fraction of the sampling rate; tap j is Sinc(2*cutoff*(j-NumTaps/2)).
// The taps are not normalized to unit gain.
func LowPass(cutoff float64) []float64 {
	taps := make([]float64, NumTaps)
	for j := range taps {
		t := j - NumTaps/2
		taps[j] = Sinc(2 * cutoff * float64(t))
	}
	return taps
}
