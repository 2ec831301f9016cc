// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audmod/audio"
	"github.com/ik5/audmod/utils"
)

const readChunk = 4096

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

func formatErr(field, detail string, err error) error {
	return &audio.FormatError{Container: "aiff", Field: field, Detail: detail, Err: err}
}

// Decoder reads mono 8-bit or 16-bit uncompressed AIFF through go-audio.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return audio.Source{}, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = &readSeeker{data: data}
	}

	dec := aiff.NewDecoder(rs)
	dec.ReadInfo()
	if err := checkEncoding(dec.Encoding); err != nil {
		return audio.Source{}, err
	}
	if !dec.IsValidFile() {
		return audio.Source{}, formatErr("form type", "", audio.ErrInvalidContainer)
	}

	format := dec.Format()
	if format == nil {
		return audio.Source{}, formatErr("comm chunk", "", audio.ErrInvalidContainer)
	}

	return readSource(dec, format, int(dec.BitDepth))
}

// checkEncoding accepts plain AIFF and the uncompressed AIFF-C types.
func checkEncoding(enc [4]byte) error {
	switch string(enc[:]) {
	case "\x00\x00\x00\x00", "NONE", "sowt":
		return nil
	}
	return formatErr("compression type", fmt.Sprintf("%q is not uncompressed PCM", enc[:]), audio.ErrUnsupportedFormat)
}

func readSource(dec aiffReader, format *goaudio.Format, bitDepth int) (audio.Source, error) {
	if format.NumChannels != 1 {
		return audio.Source{}, formatErr("channels", "only monaural audio", audio.ErrUnsupportedFormat)
	}

	var convert func(int) uint8
	switch bitDepth {
	case 8:
		// AIFF 8-bit PCM is signed
		convert = func(v int) uint8 { return uint8(int8(v)) ^ 0x80 }
	case 16:
		convert = func(v int) uint8 { return utils.Rescale16To8(int16(v)) }
	default:
		return audio.Source{}, formatErr("bits per sample", fmt.Sprintf("got %d, want 8 or 16", bitDepth), audio.ErrUnsupportedFormat)
	}

	buf := &goaudio.IntBuffer{Data: make([]int, readChunk), Format: format}
	var samples []uint8
	for {
		buf.Data = buf.Data[:readChunk]
		n, err := dec.PCMBuffer(buf)
		for _, v := range buf.Data[:n] {
			samples = append(samples, convert(v))
		}

		if errors.Is(err, io.ErrUnexpectedEOF) {
			return audio.Source{}, fmt.Errorf("%w: %w", audio.ErrTruncatedData, err)
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return audio.Source{}, fmt.Errorf("%w", err)
		}
		if n == 0 || err != nil {
			break
		}
	}

	if len(samples) == 0 {
		return audio.Source{}, audio.ErrEmptySource
	}

	return audio.Source{
		Kind:          audio.KindAIFF,
		SamplingFreq:  float64(format.SampleRate),
		BitsPerSample: bitDepth,
		Samples:       samples,
	}, nil
}

// Load opens and decodes the AIFF file at path.
func Load(path string) (audio.Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return audio.Source{}, fmt.Errorf("%w: %w", audio.ErrFileOpen, err)
	}
	defer f.Close()

	src, err := Decoder{}.Decode(f)
	if err != nil {
		return audio.Source{}, fmt.Errorf("%s: %w", path, err)
	}

	slog.Debug("aiff loaded",
		"path", path,
		"sampling_freq", src.SamplingFreq,
		"bits_per_sample", src.BitsPerSample,
		"samples", src.Len())
	return src, nil
}

// readSeeker implements io.ReadSeeker for in-memory data
type readSeeker struct {
	data   []byte
	offset int64
}

func (rs *readSeeker) Read(p []byte) (n int, err error) {
	if rs.offset >= int64(len(rs.data)) {
		return 0, io.EOF
	}
	n = copy(p, rs.data[rs.offset:])
	rs.offset += int64(n)
	return n, nil
}

func (rs *readSeeker) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64
	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = rs.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(rs.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if newOffset < 0 {
		return 0, fmt.Errorf("negative position")
	}

	rs.offset = newOffset
	return newOffset, nil
}
