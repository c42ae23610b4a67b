package dsp

import "math"

// Default silence trimming: runs quieter than 2% of full scale are shortened
// once they exceed half a second.
const (
	DefaultTrimThreshold = 0.02
	DefaultTrimMinMs     = 500
)

// TrimSilence shortens long silent stretches. A sample counts as silent when
// its magnitude is below thresholdRatio of full scale. The first minRun
// samples of any silent run (minRun = minSilenceMs worth of samples) are kept
// so natural pauses survive verbatim; only the remainder of the run is
// dropped. A non-silent sample resets the run.
func TrimSilence(samples []int16, thresholdRatio float64, minSilenceMs, sampleRate int) []int16 {
	threshold := maxSample * thresholdRatio
	minRun := minSilenceMs * sampleRate / 1000

	out := make([]int16, 0, len(samples))
	run := 0
	for _, s := range samples {
		if math.Abs(float64(s)) < threshold {
			run++
			if run > minRun {
				continue
			}
		} else {
			run = 0
		}
		out = append(out, s)
	}
	return out
}
