package dsp

// Normalize rescales the buffer so its peak reaches full scale. The peak scan
// needs the entire buffer before any sample can be written, which is why the
// enhancement pipeline works on fully-buffered audio rather than a streaming
// pass. A silent buffer is returned unchanged.
func Normalize(samples []int16) []int16 {
	out := make([]int16, len(samples))
	peak := Peak(samples)
	if peak == 0 {
		copy(out, samples)
		return out
	}

	factor := maxSample / float64(peak)
	for i, s := range samples {
		out[i] = clamp16(float64(s) * factor)
	}
	return out
}
