// Package audio provides the PCM data model and raw sample file I/O.
package audio

import "fmt"

// Quality selects a fixed capture preset. The preset values are a contract
// with downstream storage and duration-estimation logic and must not change.
type Quality int

const (
	// HighQuality records 48kHz stereo for archival-grade captures.
	HighQuality Quality = iota
	// Standard records 44.1kHz mono, the default for call audio.
	Standard
	// SpaceSaving records 22.05kHz mono for long sessions on tight storage.
	SpaceSaving
)

// preset holds the fixed parameters for one quality level.
type preset struct {
	sampleRate int
	bitRate    int
	channels   int
}

var presets = map[Quality]preset{
	HighQuality: {sampleRate: 48000, bitRate: 128000, channels: 2},
	Standard:    {sampleRate: 44100, bitRate: 64000, channels: 1},
	SpaceSaving: {sampleRate: 22050, bitRate: 32000, channels: 1},
}

// SampleRate returns the preset sample rate in Hz.
func (q Quality) SampleRate() int {
	return presets[q].sampleRate
}

// BitRate returns the preset bit rate in bits per second.
func (q Quality) BitRate() int {
	return presets[q].bitRate
}

// Channels returns the preset channel count.
func (q Quality) Channels() int {
	return presets[q].channels
}

// BytesPerSecond returns the raw PCM data rate for the preset
// (16-bit samples, so 2 bytes per sample per channel).
func (q Quality) BytesPerSecond() int {
	p := presets[q]
	return p.sampleRate * p.channels * 2
}

func (q Quality) String() string {
	switch q {
	case HighQuality:
		return "high"
	case Standard:
		return "standard"
	case SpaceSaving:
		return "space-saving"
	default:
		return "unknown"
	}
}

// ParseQuality maps a CLI flag value to a Quality preset.
func ParseQuality(s string) (Quality, error) {
	switch s {
	case "high":
		return HighQuality, nil
	case "standard":
		return Standard, nil
	case "space-saving", "space_saving":
		return SpaceSaving, nil
	default:
		return Standard, fmt.Errorf("unknown quality %q (want high, standard or space-saving)", s)
	}
}
