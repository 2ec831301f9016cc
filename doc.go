// SPDX-License-Identifier: EPL-2.0

// Package audmod turns audio recordings into fixed-rate 8-bit modulation
// buffers for ultrasound devices.
//
// A device plays a modulation buffer back at its own clock and accepts a
// limited number of samples. Recordings rarely match that clock, so the
// buffer is computed in two phases: loading parses the file once, and
// building converts the samples for a given device configuration.
//
// # Supported Formats
//
//   - raw unsigned 8-bit PCM via formats/raw (sampling rate declared by the caller)
//   - mono 8/16-bit linear PCM WAV via formats/wav
//   - mono 8/16-bit uncompressed AIFF via formats/aiff
//
// # Quick Start
//
//	m, err := audmod.FromWAV("sin150.wav")
//	if err != nil {
//	    return err
//	}
//	buf := m.Build(audio.DefaultConfiguration())
//	// buf holds at most 65536 samples for a 4 kHz device
//
// Raw PCM needs its sampling rate; 0 means the data is already at the
// device rate:
//
//	m, err := audmod.FromRawPCM("sin150.dat", 4000)
//
// Open picks the loader from the file extension:
//
//	m, err := audmod.Open("tone.aiff", audmod.Options{})
//
// # Conversion
//
// Sources slower than the device are zero-stuffed, filtered with a 31-tap
// sinc low-pass and renormalized to span [0,255]. Faster sources are
// decimated by nearest-neighbor selection without filtering. Either way the
// result never exceeds the configured buffer capacity.
//
// Build can be called again with another configuration; the loaded source
// is kept and never modified. The pure form is audio.Build(src, cfg).
//
// # Export
//
// A built modulation can be written as an 8-bit mono WAV at the device rate
// for inspection:
//
//	f, _ := os.Create("modulation.wav")
//	err := m.WriteWAV(f)
package audmod
