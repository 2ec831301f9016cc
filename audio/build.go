// SPDX-License-Identifier: EPL-2.0

package audio

import "log/slog"

// Policy is the frequency conversion Build applies to a Source.
type Policy uint8

const (
	PolicyNone Policy = iota
	PolicyUpsample
	PolicyDownsample
)

func (p Policy) String() string {
	switch p {
	case PolicyUpsample:
		return "upsample"
	case PolicyDownsample:
		return "downsample"
	default:
		return "none"
	}
}

// PolicyFor selects the conversion for src on the device described by cfg.
//
// Sources faster than the device are decimated and slower ones are
// up-sampled through the sinc filter. At equal rates raw PCM still goes
// through the filter (ratio 1, cutoff 0.5) while WAV and AIFF data is
// copied by the decimator unchanged.
func PolicyFor(src Source, cfg Configuration) Policy {
	if src.Len() == 0 || cfg.Validate() != nil {
		return PolicyNone
	}

	srcFreq := src.EffectiveFreq(cfg)
	devFreq := float64(cfg.SamplingFreq)
	switch {
	case srcFreq <= 0:
		return PolicyNone
	case srcFreq > devFreq:
		return PolicyDownsample
	case srcFreq < devFreq:
		return PolicyUpsample
	case src.Kind == KindRaw:
		return PolicyUpsample
	default:
		return PolicyDownsample
	}
}

// Build converts src into a modulation buffer for cfg. It never fails: an
// invalid configuration or an empty source produce an empty buffer.
func Build(src Source, cfg Configuration) []uint8 {
	if err := cfg.Validate(); err != nil {
		slog.Warn("modulation not built", "error", err)
		return []uint8{}
	}

	policy := PolicyFor(src, cfg)
	srcFreq := src.EffectiveFreq(cfg)

	var buf []uint8
	switch policy {
	case PolicyUpsample:
		buf = Upsample(src.Samples, srcFreq, cfg)
	case PolicyDownsample:
		buf = Downsample(src.Samples, srcFreq, cfg)
	default:
		buf = []uint8{}
	}

	if policy != PolicyNone {
		ratio := float64(cfg.SamplingFreq) / srcFreq
		if want := int(float64(src.Len()) * ratio); want > len(buf) {
			slog.Warn("modulation truncated to buffer capacity",
				"kind", src.Kind, "want", want, "capacity", cfg.BufferCapacity)
		}
	}

	slog.Debug("modulation built",
		"kind", src.Kind,
		"policy", policy,
		"source_freq", srcFreq,
		"device_freq", cfg.SamplingFreq,
		"samples", src.Len(),
		"length", len(buf))

	return buf
}
