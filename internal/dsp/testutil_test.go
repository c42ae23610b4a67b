package dsp

import "math"

// Synthetic signal helpers shared by the stage tests.

// sineWave generates a sine tone. amplitude is linear full-scale (1.0 = max
// int16), freq in Hz.
func sineWave(freq, amplitude float64, sampleRate, samples int) []int16 {
	out := make([]int16, samples)
	for i := range out {
		t := float64(i) / float64(sampleRate)
		out[i] = int16(amplitude * math.MaxInt16 * math.Sin(2.0*math.Pi*freq*t))
	}
	return out
}

// constant fills a buffer with a fixed value.
func constant(value int16, samples int) []int16 {
	out := make([]int16, samples)
	for i := range out {
		out[i] = value
	}
	return out
}

// whiteNoise generates deterministic noise using a small LCG, so tests do not
// depend on math/rand seeding.
func whiteNoise(amplitude float64, samples int) []int16 {
	out := make([]int16, samples)
	state := uint32(12345)
	for i := range out {
		// LCG parameters from Numerical Recipes
		state = state*1664525 + 1013904223
		v := (float64(state)/float64(0xFFFFFFFF))*2.0 - 1.0
		out[i] = int16(amplitude * math.MaxInt16 * v)
	}
	return out
}

// maxAbs returns the largest absolute sample as an int, so tests can assert
// on amplitude without int16 negation overflow.
func maxAbs(samples []int16) int {
	max := 0
	for _, s := range samples {
		a := int(s)
		if a < 0 {
			a = -a
		}
		if a > max {
			max = a
		}
	}
	return max
}
