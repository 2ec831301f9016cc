// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ik5/audmod/audio"
	"github.com/ik5/audmod/utils"
)

// Chunk IDs as little-endian uint32.
const (
	riffID = 0x46464952 // "RIFF"
	waveID = 0x45564157 // "WAVE"
	fmtID  = 0x20746d66 // "fmt "
	dataID = 0x61746164 // "data"

	pcmFmtChunkSize = 16
	formatPCM       = 1
)

func formatErr(field, detail string, err error) error {
	return &audio.FormatError{Container: "wav", Field: field, Detail: detail, Err: err}
}

// Header is the canonical 44-byte RIFF/WAVE/fmt/data header.
type Header struct {
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	DataSize      uint32
}

// NumSamples is the number of whole samples the data chunk declares.
func (h Header) NumSamples() int {
	return int(h.DataSize) / (int(h.BitsPerSample) / 8)
}

// ReadHeader validates the header field by field and stops at the first
// mismatch; nothing past the offending field is consumed.
func ReadHeader(r *audio.Reader) (Header, error) {
	var h Header

	id, err := audio.Read[uint32](r)
	if err != nil {
		return h, err
	}
	if id != riffID {
		return h, formatErr("riff chunk id", "", audio.ErrInvalidContainer)
	}

	// chunk size is not validated
	if _, err := audio.Read[uint32](r); err != nil {
		return h, err
	}

	if id, err = audio.Read[uint32](r); err != nil {
		return h, err
	}
	if id != waveID {
		return h, formatErr("wave form type", "", audio.ErrInvalidContainer)
	}

	if id, err = audio.Read[uint32](r); err != nil {
		return h, err
	}
	if id != fmtID {
		return h, formatErr("fmt chunk id", "", audio.ErrInvalidContainer)
	}

	size, err := audio.Read[uint32](r)
	if err != nil {
		return h, err
	}
	if size != pcmFmtChunkSize {
		return h, formatErr("fmt chunk size", fmt.Sprintf("got %d, want %d", size, pcmFmtChunkSize), audio.ErrUnsupportedFormat)
	}

	format, err := audio.Read[uint16](r)
	if err != nil {
		return h, err
	}
	if format != formatPCM {
		return h, formatErr("audio format", "only uncompressed linear PCM", audio.ErrUnsupportedFormat)
	}

	channels, err := audio.Read[uint16](r)
	if err != nil {
		return h, err
	}
	if channels != 1 {
		return h, formatErr("channels", "only monaural audio", audio.ErrUnsupportedFormat)
	}

	if h.SampleRate, err = audio.Read[uint32](r); err != nil {
		return h, err
	}
	if h.SampleRate == 0 {
		return h, formatErr("sample rate", "must be non-zero", audio.ErrUnsupportedFormat)
	}
	if h.ByteRate, err = audio.Read[uint32](r); err != nil {
		return h, err
	}
	if h.BlockAlign, err = audio.Read[uint16](r); err != nil {
		return h, err
	}

	if h.BitsPerSample, err = audio.Read[uint16](r); err != nil {
		return h, err
	}
	if h.BitsPerSample != 8 && h.BitsPerSample != 16 {
		return h, formatErr("bits per sample", fmt.Sprintf("got %d, want 8 or 16", h.BitsPerSample), audio.ErrUnsupportedFormat)
	}

	if id, err = audio.Read[uint32](r); err != nil {
		return h, err
	}
	if id != dataID {
		return h, formatErr("data chunk id", "", audio.ErrInvalidContainer)
	}

	if h.DataSize, err = audio.Read[uint32](r); err != nil {
		return h, err
	}

	return h, nil
}

// Decoder parses mono 8-bit or 16-bit linear PCM WAV data.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	br := audio.NewReader(r)

	h, err := ReadHeader(br)
	if err != nil {
		return audio.Source{}, err
	}

	count := h.NumSamples()
	if count == 0 {
		return audio.Source{}, audio.ErrEmptySource
	}

	var samples []uint8
	switch h.BitsPerSample {
	case 8:
		if samples, err = br.Bytes(count); err != nil {
			return audio.Source{}, err
		}
	case 16:
		raw, err := br.Bytes(count * 2)
		if err != nil {
			return audio.Source{}, err
		}
		samples = make([]uint8, count)
		for i := range samples {
			s := int16(binary.LittleEndian.Uint16(raw[2*i:]))
			samples[i] = utils.Rescale16To8(s)
		}
	}

	return audio.Source{
		Kind:          audio.KindWAV,
		SamplingFreq:  float64(h.SampleRate),
		BitsPerSample: int(h.BitsPerSample),
		Samples:       samples,
	}, nil
}

// Load opens and decodes the WAV file at path.
func Load(path string) (audio.Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return audio.Source{}, fmt.Errorf("%w: %w", audio.ErrFileOpen, err)
	}
	defer f.Close()

	src, err := Decoder{}.Decode(bufio.NewReader(f))
	if err != nil {
		return audio.Source{}, fmt.Errorf("%s: %w", path, err)
	}

	slog.Debug("wav loaded",
		"path", path,
		"sampling_freq", src.SamplingFreq,
		"bits_per_sample", src.BitsPerSample,
		"samples", src.Len())
	return src, nil
}
