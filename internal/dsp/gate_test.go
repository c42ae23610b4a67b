package dsp

import "testing"

func TestGate(t *testing.T) {
	tests := []struct {
		name      string
		samples   []int16
		threshold float64
		reduction float64
		want      []int16
	}{
		{
			name:      "below threshold attenuated",
			samples:   []int16{100, -200, 300},
			threshold: 0.01, // 327.67
			reduction: 0.3,
			want:      []int16{30, -60, 90},
		},
		{
			name:      "above threshold passes",
			samples:   []int16{1000, -5000, 32767},
			threshold: 0.01,
			reduction: 0.3,
			want:      []int16{1000, -5000, 32767},
		},
		{
			name:      "at threshold passes",
			samples:   []int16{3277, -3277}, // |s| ≥ 32767*0.1 = 3276.7
			threshold: 0.1,
			reduction: 0.0,
			want:      []int16{3277, -3277},
		},
		{
			name:      "zero reduction mutes quiet samples",
			samples:   []int16{5, -5, 10000},
			threshold: 0.01,
			reduction: 0.0,
			want:      []int16{0, 0, 10000},
		},
		{
			name:      "empty buffer",
			samples:   nil,
			threshold: 0.01,
			reduction: 0.3,
			want:      []int16{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Gate(tt.samples, tt.threshold, tt.reduction)
			if len(got) != len(tt.want) {
				t.Fatalf("Gate() length = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Gate()[%d] = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestGateReducesNoiseFloor(t *testing.T) {
	noise := whiteNoise(0.005, 44100) // below the default threshold
	got := Gate(noise, DefaultGateThreshold, DefaultGateReduction)
	if RMS(got) >= RMS(noise)*0.5 {
		t.Errorf("gate barely reduced noise: RMS %v -> %v", RMS(noise), RMS(got))
	}
}

func TestGateLeavesSpeechLevels(t *testing.T) {
	speech := sineWave(200, 0.3, 44100, 4410)
	got := Gate(speech, DefaultGateThreshold, DefaultGateReduction)
	// Only near-zero crossing samples fall under the 1% threshold, so the
	// overall level should be essentially untouched.
	if RMS(got) < RMS(speech)*0.99 {
		t.Errorf("gate attenuated speech-level signal: RMS %v -> %v", RMS(speech), RMS(got))
	}
}
