// SPDX-License-Identifier: EPL-2.0

// Package audio holds the data model and conversion core for modulation
// buffers.
//
// This package contains:
//   - Source, a loaded recording reduced to unsigned 8-bit mono samples
//   - Configuration, the device sampling rate and buffer capacity
//   - Reader and Read, typed fixed-width field extraction from a stream
//   - Upsample, Downsample and Build, which turn a Source into a buffer
//   - Registry, mapping file extensions to decoders
//
// # Building
//
// Build is a pure function of a Source and a Configuration:
//
//	buf := audio.Build(src, audio.Configuration{SamplingFreq: 4000, BufferCapacity: 4000})
//
// PolicyFor reports which conversion Build will apply.
//
// # Errors
//
// Loaders return errors wrapping one of ErrFileOpen, ErrTruncatedData,
// ErrInvalidContainer or ErrUnsupportedFormat. Header problems come as a
// *FormatError naming the field:
//
//	var fe *audio.FormatError
//	if errors.As(err, &fe) {
//	    fmt.Println(fe.Field)
//	}
//
// Build itself does not fail.
package audio
