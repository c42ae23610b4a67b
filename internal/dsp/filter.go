package dsp

import "math"

// First-order RC filters. A single pole gives a gentle 6dB/octave slope,
// enough to tame rumble and hiss on speech without ringing. Both filters seed
// their state with the first input sample and clamp outputs to int16.

// LowPass attenuates content above cutoffHz.
func LowPass(samples []int16, cutoffHz float64, sampleRate int) []int16 {
	out := make([]int16, len(samples))
	if len(samples) == 0 {
		return out
	}

	rc := 1.0 / (2.0 * math.Pi * cutoffHz)
	dt := 1.0 / float64(sampleRate)
	alpha := dt / (rc + dt)

	out[0] = samples[0]
	prev := float64(samples[0])
	for i := 1; i < len(samples); i++ {
		prev = alpha*float64(samples[i]) + (1.0-alpha)*prev
		out[i] = clamp16(prev)
	}
	return out
}

// HighPass attenuates content below cutoffHz.
func HighPass(samples []int16, cutoffHz float64, sampleRate int) []int16 {
	out := make([]int16, len(samples))
	if len(samples) == 0 {
		return out
	}

	rc := 1.0 / (2.0 * math.Pi * cutoffHz)
	dt := 1.0 / float64(sampleRate)
	alpha := rc / (rc + dt)

	out[0] = samples[0]
	prev := float64(samples[0])
	for i := 1; i < len(samples); i++ {
		prev = alpha * (prev + float64(samples[i]) - float64(samples[i-1]))
		out[i] = clamp16(prev)
	}
	return out
}
