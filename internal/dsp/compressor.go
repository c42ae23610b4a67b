package dsp

import "math"

// Default compressor tuning: 4:1 reduction of everything above 70% of full
// scale. Evens out the gap between a quiet caller and a loud one without
// touching normal speech levels.
const (
	DefaultCompThreshold = 0.7
	DefaultCompRatio     = 4.0
)

// Compress reduces the excess of samples above thresholdRatio of full scale by
// the given ratio: for |s| > threshold the output magnitude is
// threshold + (|s|-threshold)/ratio, with the original sign reapplied.
//
// Like Gate this operates sample-by-sample with no attack/release envelope.
// The instantaneous form is deterministic and cheap, at the cost of potential
// artifacts right at the threshold; see the notes on Gate.
func Compress(samples []int16, thresholdRatio, ratio float64) []int16 {
	if ratio <= 0 {
		ratio = 1
	}
	threshold := maxSample * thresholdRatio
	out := make([]int16, len(samples))
	for i, s := range samples {
		v := float64(s)
		mag := math.Abs(v)
		if mag <= threshold {
			out[i] = s
			continue
		}
		compressed := threshold + (mag-threshold)/ratio
		if v < 0 {
			compressed = -compressed
		}
		out[i] = clamp16(compressed)
	}
	return out
}
