package dsp

import "testing"

func TestTrimSilence(t *testing.T) {
	// 5 samples of silence allowed per run at this rate.
	const sampleRate = 1000
	const minMs = 5

	loud := func(n int) []int16 { return constant(1000, n) }
	quiet := func(n int) []int16 { return constant(10, n) }
	concat := func(parts ...[]int16) []int16 {
		var out []int16
		for _, p := range parts {
			out = append(out, p...)
		}
		return out
	}

	tests := []struct {
		name    string
		samples []int16
		wantLen int
	}{
		{
			name:    "no silence untouched",
			samples: loud(20),
			wantLen: 20,
		},
		{
			name:    "long run shortened to min",
			samples: concat(loud(3), quiet(12), loud(3)),
			wantLen: 11, // 3 + 5 + 3
		},
		{
			name:    "short run kept verbatim",
			samples: concat(loud(3), quiet(4), loud(3)),
			wantLen: 10,
		},
		{
			name:    "run at exact limit kept",
			samples: concat(loud(3), quiet(5), loud(3)),
			wantLen: 11,
		},
		{
			name:    "non-silent sample resets the run",
			samples: concat(quiet(4), loud(1), quiet(4)),
			wantLen: 9,
		},
		{
			name:    "trailing silence shortened",
			samples: concat(loud(2), quiet(20)),
			wantLen: 7,
		},
		{
			name:    "empty buffer",
			samples: nil,
			wantLen: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TrimSilence(tt.samples, 0.02, minMs, sampleRate)
			if len(got) != tt.wantLen {
				t.Errorf("TrimSilence() length = %d, want %d", len(got), tt.wantLen)
			}
		})
	}
}

func TestTrimSilencePreservesOrder(t *testing.T) {
	in := []int16{1000, 2000, 10, 10, 10, 10, 10, 10, 3000}
	got := TrimSilence(in, 0.02, 5, 1000)
	want := []int16{1000, 2000, 10, 10, 10, 10, 10, 3000}
	if len(got) != len(want) {
		t.Fatalf("TrimSilence() length = %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("TrimSilence()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}
