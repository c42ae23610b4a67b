package dsp

import "math"

// Default noise gate tuning: attenuate anything below 1% of full scale to 30%
// of its value. Chosen for low-level line noise on call recordings.
const (
	DefaultGateThreshold = 0.01
	DefaultGateReduction = 0.3
)

// Gate attenuates samples whose magnitude falls below thresholdRatio of full
// scale, multiplying them by reduction. Samples at or above the threshold pass
// through unchanged.
//
// This is an instantaneous gate: there is no attack/release envelope, so a
// signal hovering around the threshold can produce audible clicks as adjacent
// samples land on opposite sides of it. An exponential envelope follower could
// be substituted here without changing the external contract.
func Gate(samples []int16, thresholdRatio, reduction float64) []int16 {
	threshold := maxSample * thresholdRatio
	out := make([]int16, len(samples))
	for i, s := range samples {
		v := float64(s)
		if math.Abs(v) < threshold {
			out[i] = clamp16(v * reduction)
		} else {
			out[i] = s
		}
	}
	return out
}
