// SPDX-License-Identifier: EPL-2.0

package audmod_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/audmod"
	"github.com/ik5/audmod/audio"
)

// Example_rawPCM builds a modulation from a raw PCM file recorded at the
// device rate.
func Example_rawPCM() {
	dir, _ := os.MkdirTemp("", "audmod")
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "pcm.dat")
	_ = os.WriteFile(path, []byte{0, 128, 255, 128}, 0o600)

	m, err := audmod.FromRawPCM(path, 0)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(m.State())
	buf := m.Build(audio.Configuration{SamplingFreq: 4000, BufferCapacity: 4000})
	fmt.Println(m.State(), buf)
	// Output:
	// loaded
	// built [0 128 255 128]
}

// Example_rebuild builds the same source for two devices.
func Example_rebuild() {
	samples := make([]uint8, 40000)
	m := audmod.New(audio.Source{Kind: audio.KindWAV, SamplingFreq: 40000, BitsPerSample: 8, Samples: samples})

	fmt.Println(len(m.Build(audio.DefaultConfiguration())))
	fmt.Println(len(m.Build(audio.NewConfiguration(1, 1000))))
	// Output:
	// 4000
	// 1000
}

// Example_open picks a loader by file extension.
func Example_open() {
	_, err := audmod.Open("song.mp3", audmod.Options{})
	fmt.Println(err)
	// Output: unknown audio format: ".mp3"
}
