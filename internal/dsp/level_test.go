package dsp

import (
	"math"
	"testing"
)

func TestRMS(t *testing.T) {
	tests := []struct {
		name    string
		samples []int16
		want    float64
		wantMin float64 // used when want is 0 and wantMin > 0
	}{
		{name: "empty buffer", samples: nil, want: 0},
		{name: "digital silence", samples: []int16{0, 0, 0, 0}, want: 0},
		{name: "full scale square", samples: []int16{32767, -32768, 32767, -32768}, wantMin: 0.9},
		{name: "half scale constant", samples: constant(16384, 100), want: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RMS(tt.samples)
			if got < 0 || got > 1 {
				t.Fatalf("RMS() = %v, outside [0,1]", got)
			}
			if tt.wantMin > 0 {
				if got < tt.wantMin {
					t.Errorf("RMS() = %v, want > %v", got, tt.wantMin)
				}
				return
			}
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("RMS() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRMSSineLevel(t *testing.T) {
	// A full-scale sine has RMS 1/sqrt(2) ≈ 0.707
	sine := sineWave(440, 1.0, 44100, 44100)
	got := RMS(sine)
	if math.Abs(got-1.0/math.Sqrt2) > 0.01 {
		t.Errorf("RMS(full-scale sine) = %v, want ≈ %v", got, 1.0/math.Sqrt2)
	}
}

func TestPeak(t *testing.T) {
	tests := []struct {
		name    string
		samples []int16
		want    int16
	}{
		{name: "empty", samples: nil, want: 0},
		{name: "silence", samples: []int16{0, 0}, want: 0},
		{name: "positive peak", samples: []int16{100, -200, 50}, want: 200},
		{name: "negative full scale", samples: []int16{10, -32768}, want: 32767},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Peak(tt.samples); got != tt.want {
				t.Errorf("Peak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDBConversionRoundTrip(t *testing.T) {
	for _, db := range []float64{-40, -6, 0, 6, 20} {
		back := LinearToDB(DBToLinear(db))
		if math.Abs(back-db) > 0.0001 {
			t.Errorf("LinearToDB(DBToLinear(%v)) = %v", db, back)
		}
	}

	if LinearToDB(0) > -190 {
		t.Errorf("LinearToDB(0) = %v, want silence floor", LinearToDB(0))
	}
	if LinearToDB(-0.5) > -190 {
		t.Errorf("LinearToDB(-0.5) = %v, want silence floor", LinearToDB(-0.5))
	}
}
