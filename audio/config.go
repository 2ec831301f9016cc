// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

const (
	// ModSamplingFreqBase is the device clock the modulation rate is divided from.
	ModSamplingFreqBase = 40000
	// ModSamplingFreqDivDefault gives the 4 kHz nominal modulation rate.
	ModSamplingFreqDivDefault = 10
	// ModBufSizeMax is the largest modulation buffer the device accepts.
	ModBufSizeMax = 65536
)

// Configuration describes the device a modulation buffer is built for. It is
// owned by the controller and passed by value at build time.
type Configuration struct {
	// SamplingFreq is the playback clock of the buffer in Hz.
	SamplingFreq uint32
	// BufferCapacity is the hard upper bound on the buffer length.
	BufferCapacity uint32
}

// NewConfiguration derives the modulation rate from ModSamplingFreqBase and
// a frequency divider. A zero divider yields an invalid configuration.
func NewConfiguration(divider uint16, capacity uint32) Configuration {
	var freq uint32
	if divider != 0 {
		freq = ModSamplingFreqBase / uint32(divider)
	}
	return Configuration{SamplingFreq: freq, BufferCapacity: capacity}
}

// DefaultConfiguration is the nominal 4 kHz / 65536 sample device.
func DefaultConfiguration() Configuration {
	return NewConfiguration(ModSamplingFreqDivDefault, ModBufSizeMax)
}

func (c Configuration) Validate() error {
	if c.SamplingFreq == 0 {
		return fmt.Errorf("%w: sampling frequency must be positive", ErrInvalidConfiguration)
	}
	if c.BufferCapacity == 0 {
		return fmt.Errorf("%w: buffer capacity must be positive", ErrInvalidConfiguration)
	}
	return nil
}
