// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfiguration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		divider  uint16
		capacity uint32
		want     Configuration
	}{
		{name: "default divider", divider: 10, capacity: 4000, want: Configuration{SamplingFreq: 4000, BufferCapacity: 4000}},
		{name: "full rate", divider: 1, capacity: 65536, want: Configuration{SamplingFreq: 40000, BufferCapacity: 65536}},
		{name: "slow", divider: 40, capacity: 100, want: Configuration{SamplingFreq: 1000, BufferCapacity: 100}},
		{name: "zero divider", divider: 0, capacity: 100, want: Configuration{SamplingFreq: 0, BufferCapacity: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NewConfiguration(tt.divider, tt.capacity))
		})
	}
}

func TestDefaultConfiguration(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfiguration()
	assert.Equal(t, uint32(4000), cfg.SamplingFreq)
	assert.Equal(t, uint32(ModBufSizeMax), cfg.BufferCapacity)
	assert.NoError(t, cfg.Validate())
}

func TestConfiguration_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Configuration{SamplingFreq: 1, BufferCapacity: 1}.Validate())
	assert.ErrorIs(t, Configuration{BufferCapacity: 1}.Validate(), ErrInvalidConfiguration)
	assert.ErrorIs(t, Configuration{SamplingFreq: 1}.Validate(), ErrInvalidConfiguration)
	assert.ErrorIs(t, Configuration{}.Validate(), ErrInvalidConfiguration)
}
