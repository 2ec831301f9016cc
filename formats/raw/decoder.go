// SPDX-License-Identifier: EPL-2.0

package raw

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ik5/audmod/audio"
)

// Decoder reads headerless unsigned 8-bit PCM. SamplingFreq is the rate the
// data was recorded at; 0 means the device modulation rate.
type Decoder struct {
	SamplingFreq float64
}

func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	samples, err := io.ReadAll(bufio.NewReader(r))
	if err != nil {
		return audio.Source{}, fmt.Errorf("reading raw pcm: %w", err)
	}
	if len(samples) == 0 {
		return audio.Source{}, audio.ErrEmptySource
	}

	return audio.Source{
		Kind:          audio.KindRaw,
		SamplingFreq:  d.SamplingFreq,
		BitsPerSample: 8,
		Samples:       samples,
	}, nil
}

// Load reads the whole file at path as raw PCM recorded at samplingFreq.
// The declared frequency is not validated here.
func Load(path string, samplingFreq float64) (audio.Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return audio.Source{}, fmt.Errorf("%w: %w", audio.ErrFileOpen, err)
	}
	defer f.Close()

	src, err := Decoder{SamplingFreq: samplingFreq}.Decode(f)
	if err != nil {
		return audio.Source{}, fmt.Errorf("%s: %w", path, err)
	}

	slog.Debug("raw pcm loaded", "path", path, "sampling_freq", samplingFreq, "samples", src.Len())
	return src, nil
}
