// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes the WAV subset used for modulation data.
//
// # Supported Formats
//
// The decoder accepts exactly one layout:
//   - RIFF/WAVE with a 16-byte "fmt " chunk directly followed by "data"
//   - linear PCM (format code 1)
//   - mono
//   - 8-bit unsigned or 16-bit signed samples
//
// 16-bit samples are reduced to unsigned 8-bit on load, so every decoded
// audio.Source carries one byte per sample.
//
// # Decoding
//
//	src, err := wav.Load("sin150.wav")
//	if err != nil {
//	    var fe *audio.FormatError
//	    if errors.As(err, &fe) {
//	        fmt.Println("bad field:", fe.Field)
//	    }
//	}
//
// Header fields are checked in file order and decoding stops at the first
// bad one. Mismatched chunk IDs wrap audio.ErrInvalidContainer; a valid
// container outside the supported subset wraps audio.ErrUnsupportedFormat;
// a short file wraps audio.ErrTruncatedData.
//
// # Encoding
//
// Encode writes a finished modulation buffer as mono 8-bit PCM through
// github.com/go-audio/wav:
//
//	f, _ := os.Create("modulation.wav")
//	err := wav.Encode(f, 4000, buffer)
package wav
