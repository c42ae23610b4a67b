// Package pipeline orchestrates the enhancement stages over recorded call
// audio and defines the typed results the capture lifecycle reports.
package pipeline

import (
	"github.com/linuxmatters/clearcall/internal/audio"
	"github.com/linuxmatters/clearcall/internal/dsp"
)

// Config selects which stages run during enhancement. It is read once per
// Enhance call and never mutated mid-pipeline.
type Config struct {
	// HumReduction high-passes the buffer above the local mains hum region
	// before any level-dependent stage sees it.
	HumReduction bool

	// NoiseReduction enables the noise gate.
	NoiseReduction bool

	// Compression enables dynamic range compression.
	Compression bool

	// TargetGainDB applies a fixed gain stage when non-zero.
	TargetGainDB float64

	// Normalization rescales the result to full-scale peak.
	Normalization bool

	// TrimSilence shortens silent stretches longer than half a second.
	TrimSilence bool

	// SampleRate is the rate of the raw input in Hz. Raw PCM carries no
	// header, so the time-based stages need to be told. Zero falls back to
	// the Standard preset rate.
	SampleRate int

	// Stage tuning. Zero values fall back to the dsp package defaults.
	GateThreshold float64
	GateReduction float64
	CompThreshold float64
	CompRatio     float64
	HumCutoffHz   float64
	TrimThreshold float64
	TrimMinMs     int
}

// DefaultConfig enables the full chain with the dsp defaults and no fixed gain
// (normalisation handles level instead).
func DefaultConfig() Config {
	return Config{
		HumReduction:   true,
		NoiseReduction: true,
		Compression:    true,
		TargetGainDB:   0,
		Normalization:  true,
		TrimSilence:    false,
		GateThreshold:  dsp.DefaultGateThreshold,
		GateReduction:  dsp.DefaultGateReduction,
		CompThreshold:  dsp.DefaultCompThreshold,
		CompRatio:      dsp.DefaultCompRatio,
		TrimThreshold:  dsp.DefaultTrimThreshold,
		TrimMinMs:      dsp.DefaultTrimMinMs,
	}
}

// withDefaults fills unset tuning values so zero-valued Configs behave.
func (c Config) withDefaults() Config {
	if c.SampleRate == 0 {
		c.SampleRate = audio.Standard.SampleRate()
	}
	if c.GateThreshold == 0 {
		c.GateThreshold = dsp.DefaultGateThreshold
	}
	if c.GateReduction == 0 {
		c.GateReduction = dsp.DefaultGateReduction
	}
	if c.CompThreshold == 0 {
		c.CompThreshold = dsp.DefaultCompThreshold
	}
	if c.CompRatio == 0 {
		c.CompRatio = dsp.DefaultCompRatio
	}
	if c.TrimThreshold == 0 {
		c.TrimThreshold = dsp.DefaultTrimThreshold
	}
	if c.TrimMinMs == 0 {
		c.TrimMinMs = dsp.DefaultTrimMinMs
	}
	return c
}
