// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockDecoder is a test decoder implementation
type mockDecoder struct {
	name string
}

func (d *mockDecoder) Decode(r io.Reader) (Source, error) {
	return Source{Kind: KindRaw, Samples: []uint8{1, 2, 3}}, nil
}

// failingDecoder always returns an error
type failingDecoder struct{}

func (d *failingDecoder) Decode(r io.Reader) (Source, error) {
	return Source{}, errors.New("decode failed")
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "wav"}

	registry.Register("wav", decoder)

	got, ok := registry.Get("wav")
	require.True(t, ok, "Registry.Get() failed to retrieve registered decoder")
	assert.Same(t, decoder, got)
}

func TestRegistry_GetNonExistent(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	_, ok := registry.Get("nonexistent")
	assert.False(t, ok)
}

func TestRegistry_ExtensionKeys(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "aiff"}
	registry.Register(".AIFF", decoder)

	for _, key := range []string{"aiff", ".aiff", "AIFF", ".Aiff"} {
		got, ok := registry.Get(key)
		require.True(t, ok, "key %q", key)
		assert.Same(t, decoder, got, "key %q", key)
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	first := &mockDecoder{name: "first"}
	second := &failingDecoder{}

	registry.Register("pcm", first)
	registry.Register("pcm", second)

	got, ok := registry.Get("pcm")
	require.True(t, ok)
	assert.Same(t, second, got)

	_, err := got.Decode(nil)
	assert.Error(t, err)
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	done := make(chan struct{})

	for i := range 10 {
		go func(i int) {
			defer func() { done <- struct{}{} }()
			registry.Register("wav", &mockDecoder{name: "wav"})
			_, _ = registry.Get("wav")
		}(i)
	}
	for range 10 {
		<-done
	}

	_, ok := registry.Get("wav")
	assert.True(t, ok)
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "raw", KindRaw.String())
	assert.Equal(t, "wav", KindWAV.String())
	assert.Equal(t, "aiff", KindAIFF.String())
	assert.Equal(t, "unknown", Kind(0).String())
}

func TestSource_EffectiveFreq(t *testing.T) {
	t.Parallel()

	cfg := Configuration{SamplingFreq: 4000, BufferCapacity: 100}

	assert.Equal(t, 4000.0, Source{Kind: KindRaw}.EffectiveFreq(cfg))
	assert.Equal(t, 8000.0, Source{Kind: KindRaw, SamplingFreq: 8000}.EffectiveFreq(cfg))
	assert.Equal(t, 44100.0, Source{Kind: KindWAV, SamplingFreq: 44100}.EffectiveFreq(cfg))
	assert.Zero(t, Source{Kind: KindWAV}.EffectiveFreq(cfg))
	assert.Zero(t, Source{Kind: KindAIFF}.EffectiveFreq(cfg))
}
