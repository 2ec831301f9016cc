// SPDX-License-Identifier: EPL-2.0

// Package aiff loads uncompressed AIFF recordings as modulation sources.
//
// This package uses github.com/go-audio/aiff to parse the container. Only
// mono 8-bit and 16-bit PCM is accepted; samples are reduced to unsigned
// 8-bit the same way the wav package does it:
//
//	src, err := aiff.Load("tone.aiff")
//	if errors.Is(err, audio.ErrUnsupportedFormat) {
//	    // stereo or unsupported bit depth
//	}
//
// Inputs that are not io.ReadSeekers are buffered in memory first, since
// go-audio needs to seek within the file.
package aiff
