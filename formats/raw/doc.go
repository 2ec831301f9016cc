// SPDX-License-Identifier: EPL-2.0

// Package raw loads headerless unsigned 8-bit PCM files.
//
// Every byte of the input is one sample, in file order. The caller declares
// the sampling frequency of the recording; a frequency of 0 tells the build
// step to treat the data as already being at the device modulation rate:
//
//	src, err := raw.Load("sin150.dat", 4000)
//	if errors.Is(err, audio.ErrFileOpen) {
//	    // path not readable
//	}
package raw
