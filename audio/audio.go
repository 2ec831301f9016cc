// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"strings"
	"sync"
)

// Kind tells which container a Source was loaded from.
type Kind uint8

const (
	KindRaw Kind = iota + 1
	KindWAV
	KindAIFF
)

func (k Kind) String() string {
	switch k {
	case KindRaw:
		return "raw"
	case KindWAV:
		return "wav"
	case KindAIFF:
		return "aiff"
	default:
		return "unknown"
	}
}

// Source is an immutable, fully loaded recording reduced to unsigned 8-bit
// mono samples.
type Source struct {
	Kind Kind
	// SamplingFreq of Samples in Hz. For KindRaw a value of 0 means
	// "same as the device modulation rate" and is resolved by Build.
	SamplingFreq float64
	// BitsPerSample of the container before reduction to 8 bits.
	BitsPerSample int
	Samples       []uint8
}

// Len returns the number of samples.
func (s Source) Len() int { return len(s.Samples) }

// EffectiveFreq resolves the sampling frequency against the device rate.
// Only raw sources treat 0 as the device rate; a container that declares 0
// resolves to 0 and is never built.
func (s Source) EffectiveFreq(cfg Configuration) float64 {
	if s.Kind == KindRaw && s.SamplingFreq == 0 {
		return float64(cfg.SamplingFreq)
	}
	return s.SamplingFreq
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry for decoders by file extension (e.g., "wav", "aiff", "pcm").
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

// Register binds d to format. Keys are case-insensitive and a leading dot is
// ignored, so ".WAV" and "wav" are the same key.
func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[normalizeFormat(format)] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[normalizeFormat(format)]
	return d, ok
}

func normalizeFormat(format string) string {
	return strings.ToLower(strings.TrimPrefix(format, "."))
}
