// Package dsp implements the sample-domain transforms used by the enhancement
// pipeline: level metering, gain, gating, compression, normalisation, filtering
// and silence trimming. All functions treat their input as read-only and return
// a fresh buffer, so no stage ever observes another stage's mutations. Every
// output sample is clamped to the int16 range.
package dsp

import "math"

const (
	// fullScale is the RMS normalisation reference for 16-bit samples.
	fullScale = 32768.0
	// maxSample is the largest positive 16-bit sample, used as the reference
	// for amplitude thresholds and peak scaling.
	maxSample = 32767.0
)

// RMS returns the root-mean-square level of the buffer normalised to [0, 1].
// An empty buffer measures 0.
func RMS(samples []int16) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sumSquares float64
	for _, s := range samples {
		v := float64(s)
		sumSquares += v * v
	}
	return math.Sqrt(sumSquares/float64(len(samples))) / fullScale
}

// Peak returns the largest absolute sample value in the buffer.
func Peak(samples []int16) int16 {
	var peak int16
	for _, s := range samples {
		a := s
		if a == math.MinInt16 {
			return math.MaxInt16
		}
		if a < 0 {
			a = -a
		}
		if a > peak {
			peak = a
		}
	}
	return peak
}

// LinearToDB converts a linear amplitude to decibels. Values at or below zero
// report the silence floor rather than -Inf.
func LinearToDB(linear float64) float64 {
	if linear <= 0 {
		return -200.0
	}
	return 20.0 * math.Log10(linear)
}

// DBToLinear converts decibels to a linear amplitude factor.
func DBToLinear(db float64) float64 {
	return math.Pow(10.0, db/20.0)
}

// clamp16 hard-clips a value to the representable int16 range.
func clamp16(v float64) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}
