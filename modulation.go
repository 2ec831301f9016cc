// SPDX-License-Identifier: EPL-2.0

package audmod

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ik5/audmod/audio"
	"github.com/ik5/audmod/formats/aiff"
	"github.com/ik5/audmod/formats/raw"
	"github.com/ik5/audmod/formats/wav"
)

var ErrNotBuilt = errors.New("modulation has not been built")

// State of a Modulation.
type State uint8

const (
	// Loaded means the source is parsed and no buffer exists yet.
	Loaded State = iota
	// Built means Buffer holds the result of the last Build.
	Built
)

func (s State) String() string {
	if s == Built {
		return "built"
	}
	return "loaded"
}

// Modulation owns one loaded audio source and, once built, the modulation
// buffer derived from it for a particular device configuration.
//
// A Modulation is not safe for concurrent use; the caller builds it before
// handing it to whatever sends the buffer.
type Modulation struct {
	src   audio.Source
	buf   []uint8
	cfg   audio.Configuration
	state State
}

// New wraps an already loaded source.
func New(src audio.Source) *Modulation {
	return &Modulation{src: src}
}

// FromRawPCM loads headerless 8-bit PCM recorded at samplingFreq. Pass 0 to
// play the data at the device rate.
func FromRawPCM(path string, samplingFreq float64) (*Modulation, error) {
	src, err := raw.Load(path, samplingFreq)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return New(src), nil
}

// FromWAV loads a mono 8-bit or 16-bit PCM WAV file.
func FromWAV(path string) (*Modulation, error) {
	src, err := wav.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return New(src), nil
}

// FromAIFF loads a mono 8-bit or 16-bit uncompressed AIFF file.
func FromAIFF(path string) (*Modulation, error) {
	src, err := aiff.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return New(src), nil
}

// Source returns the loaded source. It is never modified by Build.
func (m *Modulation) Source() audio.Source { return m.src }

func (m *Modulation) State() State { return m.state }

// Build computes the modulation buffer for cfg from the original source,
// replacing any buffer from an earlier Build.
func (m *Modulation) Build(cfg audio.Configuration) []uint8 {
	m.buf = audio.Build(m.src, cfg)
	m.cfg = cfg
	m.state = Built
	return m.buf
}

// Buffer returns the buffer of the last Build, or nil before the first one.
// The slice is shared with the Modulation and replaced by the next Build.
func (m *Modulation) Buffer() []uint8 { return m.buf }

// Configuration returns the configuration of the last Build.
func (m *Modulation) Configuration() (audio.Configuration, bool) {
	return m.cfg, m.state == Built
}

// WriteWAV exports the built buffer as an 8-bit mono WAV at the device rate.
func (m *Modulation) WriteWAV(w io.WriteSeeker) error {
	if m.state != Built {
		return ErrNotBuilt
	}
	return wav.Encode(w, int(m.cfg.SamplingFreq), m.buf)
}

// Options for Open.
type Options struct {
	// RawSamplingFreq is the declared rate of raw PCM files (0 = device rate).
	RawSamplingFreq float64
}

// DefaultRegistry maps file extensions to the decoders of this module.
func DefaultRegistry(opts Options) *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	for _, ext := range []string{"pcm", "raw", "dat"} {
		reg.Register(ext, raw.Decoder{SamplingFreq: opts.RawSamplingFreq})
	}
	return reg
}

// Open loads path with the decoder registered for its extension.
func Open(path string, opts Options) (*Modulation, error) {
	return OpenWith(DefaultRegistry(opts), path)
}

// OpenWith is Open with a caller supplied registry.
func OpenWith(reg *audio.Registry, path string) (*Modulation, error) {
	ext := filepath.Ext(path)
	dec, ok := reg.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", audio.ErrUnknownFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", audio.ErrFileOpen, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return New(src), nil
}
