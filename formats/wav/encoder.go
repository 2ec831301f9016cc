// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// Encode writes buf as a mono 8-bit PCM WAV at sampleRate. The result is
// accepted by Decoder, so an exported modulation can be loaded back as is.
func Encode(w io.WriteSeeker, sampleRate int, buf []uint8) error {
	enc := gowav.NewEncoder(w, sampleRate, 8, 1, formatPCM)

	data := make([]int, len(buf))
	for i, v := range buf {
		data[i] = int(v)
	}

	err := enc.Write(&goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 8,
	})
	if err != nil {
		return fmt.Errorf("encoding wav: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}
	return nil
}
