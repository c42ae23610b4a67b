package dsp

// Default AGC tuning. Target level is normalised RMS; gain is bounded so a
// near-silent buffer cannot be blown up into pure noise.
const (
	DefaultAGCTarget  = 0.5
	DefaultAGCMaxGain = 20.0 // dB
)

// ApplyGain scales every sample by the linear equivalent of gainDB and
// hard-clips to the int16 range. Hard clipping is a deliberate simplification:
// there is no soft knee or look-ahead limiting, so large gains on hot material
// will truncate peaks at full scale.
func ApplyGain(samples []int16, gainDB float64) []int16 {
	linear := DBToLinear(gainDB)
	out := make([]int16, len(samples))
	for i, s := range samples {
		out[i] = clamp16(float64(s) * linear)
	}
	return out
}

// AutoGain measures the buffer and applies whatever gain is needed to bring
// its RMS level to targetLevel, bounded to ±maxGainDB. A silent buffer is
// returned unchanged; amplifying true silence only raises the noise floor,
// and the required gain would be unbounded.
func AutoGain(samples []int16, targetLevel, maxGainDB float64) []int16 {
	current := RMS(samples)
	if current <= 0 {
		out := make([]int16, len(samples))
		copy(out, samples)
		return out
	}

	requiredDB := LinearToDB(targetLevel / current)
	if requiredDB > maxGainDB {
		requiredDB = maxGainDB
	} else if requiredDB < -maxGainDB {
		requiredDB = -maxGainDB
	}

	return ApplyGain(samples, requiredDB)
}
