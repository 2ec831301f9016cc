// SPDX-License-Identifier: EPL-2.0

// Package audiotest builds audio fixtures for tests, including deliberately
// malformed ones.
package audiotest

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
)

// WAV describes a canonical 44-byte header WAV file field by field so a test
// can break any single field.
type WAV struct {
	RiffID      string
	ChunkSize   uint32
	WaveID      string
	FmtID       string
	FmtSize     uint32
	AudioFormat uint16
	Channels    uint16
	SampleRate  uint32
	ByteRate    uint32
	BlockAlign  uint16
	Bits        uint16
	DataID      string
	// DataSize overrides the data chunk size when non-zero.
	DataSize uint32
	Data     []byte
}

// NewWAV returns a valid mono PCM WAV holding data.
func NewWAV(sampleRate uint32, bits uint16, data []byte) WAV {
	return WAV{
		RiffID:      "RIFF",
		WaveID:      "WAVE",
		FmtID:       "fmt ",
		FmtSize:     16,
		AudioFormat: 1,
		Channels:    1,
		SampleRate:  sampleRate,
		ByteRate:    sampleRate * uint32(bits/8),
		BlockAlign:  bits / 8,
		Bits:        bits,
		DataID:      "data",
		Data:        data,
	}
}

// NewWAV8 returns a valid 8-bit WAV of samples.
func NewWAV8(sampleRate uint32, samples []uint8) WAV {
	return NewWAV(sampleRate, 8, samples)
}

// NewWAV16 returns a valid 16-bit WAV of samples.
func NewWAV16(sampleRate uint32, samples []int16) WAV {
	return NewWAV(sampleRate, 16, PCM16(samples...))
}

// Bytes serializes the file.
func (w WAV) Bytes() []byte {
	buf := new(bytes.Buffer)

	dataSize := w.DataSize
	if dataSize == 0 {
		dataSize = uint32(len(w.Data))
	}
	chunkSize := w.ChunkSize
	if chunkSize == 0 {
		chunkSize = 36 + dataSize
	}

	buf.WriteString(w.RiffID)
	binary.Write(buf, binary.LittleEndian, chunkSize)
	buf.WriteString(w.WaveID)

	buf.WriteString(w.FmtID)
	binary.Write(buf, binary.LittleEndian, w.FmtSize)
	binary.Write(buf, binary.LittleEndian, w.AudioFormat)
	binary.Write(buf, binary.LittleEndian, w.Channels)
	binary.Write(buf, binary.LittleEndian, w.SampleRate)
	binary.Write(buf, binary.LittleEndian, w.ByteRate)
	binary.Write(buf, binary.LittleEndian, w.BlockAlign)
	binary.Write(buf, binary.LittleEndian, w.Bits)

	buf.WriteString(w.DataID)
	binary.Write(buf, binary.LittleEndian, dataSize)
	buf.Write(w.Data)

	return buf.Bytes()
}

// PCM16 encodes samples as little-endian signed 16-bit PCM.
func PCM16(samples ...int16) []byte {
	out := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(s))
	}
	return out
}

// Constant returns n copies of v.
func Constant(n int, v uint8) []uint8 {
	out := make([]uint8, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// WriteFile stores data under a fresh temp dir and returns the path.
func WriteFile(t testing.TB, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("writing fixture %s: %v", name, err)
	}
	return path
}

// WriteAIFF encodes samples with go-audio/aiff and returns the file path.
func WriteAIFF(t testing.TB, sampleRate, bitDepth, channels int, samples []int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fixture.aiff")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating aiff fixture: %v", err)
	}
	defer f.Close()

	enc := aiff.NewEncoder(f, sampleRate, bitDepth, channels)
	err = enc.Write(&goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           samples,
		SourceBitDepth: bitDepth,
	})
	if err != nil {
		t.Fatalf("encoding aiff fixture: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("closing aiff encoder: %v", err)
	}
	return path
}
