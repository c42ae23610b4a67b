package pipeline

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/linuxmatters/clearcall/internal/audio"
	"github.com/linuxmatters/clearcall/internal/dsp"
)

func writeTone(t *testing.T, path string, amplitude float64, sampleRate, samples int) []int16 {
	t.Helper()
	buf := make([]int16, samples)
	for i := range buf {
		ts := float64(i) / float64(sampleRate)
		buf[i] = int16(amplitude * math.MaxInt16 * math.Sin(2.0*math.Pi*440.0*ts))
	}
	if err := audio.WriteFile(path, buf); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return buf
}

func TestEnhanceNormalizesQuietRecording(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "call.pcm")
	out := filepath.Join(dir, "call-enhanced.pcm")
	original := writeTone(t, in, 0.05, 44100, 44100)

	cfg := DefaultConfig()
	cfg.SampleRate = 44100
	report, err := Enhance(in, out, cfg)
	if err != nil {
		t.Fatalf("Enhance() error: %v", err)
	}

	enhanced, err := audio.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if p := dsp.Peak(enhanced); p < 32700 {
		t.Errorf("peak after normalization = %d, want near full scale", p)
	}
	if report.OutputPeak < 32700 {
		t.Errorf("report.OutputPeak = %d, want near full scale", report.OutputPeak)
	}
	if report.InputSamples != len(original) {
		t.Errorf("report.InputSamples = %d, want %d", report.InputSamples, len(original))
	}
	if report.OutputRMSDB <= report.InputRMSDB {
		t.Errorf("output level %v dB not above input level %v dB", report.OutputRMSDB, report.InputRMSDB)
	}

	// The source recording must be untouched.
	after, err := audio.ReadFile(in)
	if err != nil {
		t.Fatalf("re-reading input: %v", err)
	}
	if len(after) != len(original) {
		t.Fatalf("input length changed: %d -> %d", len(original), len(after))
	}
	for i := range after {
		if after[i] != original[i] {
			t.Fatalf("input sample %d changed: %d -> %d", i, original[i], after[i])
		}
	}
}

func TestEnhanceStageSelection(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "call.pcm")
	writeTone(t, in, 0.3, 44100, 4410)

	tests := []struct {
		name string
		cfg  Config
		want []string
	}{
		{
			name: "all stages",
			cfg: Config{
				HumReduction:   true,
				NoiseReduction: true,
				Compression:    true,
				TargetGainDB:   3,
				Normalization:  true,
				TrimSilence:    true,
				SampleRate:     44100,
			},
			want: []string{"hum-filter", "noise-gate", "compressor", "gain", "normalize", "trim-silence"},
		},
		{
			name: "normalize only",
			cfg:  Config{Normalization: true, SampleRate: 44100},
			want: []string{"normalize"},
		},
		{
			name: "nothing enabled",
			cfg:  Config{SampleRate: 44100},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(dir, tt.name+".pcm")
			report, err := Enhance(in, out, tt.cfg)
			if err != nil {
				t.Fatalf("Enhance() error: %v", err)
			}
			if len(report.StagesApplied) != len(tt.want) {
				t.Fatalf("StagesApplied = %v, want %v", report.StagesApplied, tt.want)
			}
			for i := range tt.want {
				if report.StagesApplied[i] != tt.want[i] {
					t.Errorf("StagesApplied[%d] = %q, want %q", i, report.StagesApplied[i], tt.want[i])
				}
			}
		})
	}
}

func TestEnhanceMissingInput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.pcm")

	_, err := Enhance(filepath.Join(dir, "missing.pcm"), out, DefaultConfig())
	if err == nil {
		t.Fatal("Enhance() succeeded on missing input")
	}
	if kind := KindOf(err); kind != ErrAudioProcessingFailed {
		t.Errorf("KindOf() = %v, want %v", kind, ErrAudioProcessingFailed)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Errorf("output file created despite failure")
	}
}

func TestEnhanceEmptyInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "empty.pcm")
	if err := os.WriteFile(in, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "out.pcm")
	_, err := Enhance(in, out, DefaultConfig())
	if kind := KindOf(err); kind != ErrAudioProcessingFailed {
		t.Errorf("KindOf() = %v, want %v", kind, ErrAudioProcessingFailed)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Errorf("output file created despite failure")
	}
}

func TestNormalizeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quiet.pcm")
	writeTone(t, path, 0.1, 44100, 4410)

	if err := NormalizeFile(path); err != nil {
		t.Fatalf("NormalizeFile() error: %v", err)
	}
	samples, err := audio.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if p := dsp.Peak(samples); p < 32700 {
		t.Errorf("peak after NormalizeFile = %d, want near full scale", p)
	}
}

func TestNormalizeFileMissing(t *testing.T) {
	err := NormalizeFile(filepath.Join(t.TempDir(), "missing.pcm"))
	if kind := KindOf(err); kind != ErrAudioProcessingFailed {
		t.Errorf("KindOf() = %v, want %v", kind, ErrAudioProcessingFailed)
	}
}

func TestErrorKindRoundTrip(t *testing.T) {
	err := Errorf(ErrFileCreationFailed, os.ErrPermission, "cannot write %s", "x.pcm")
	if kind := KindOf(err); kind != ErrFileCreationFailed {
		t.Errorf("KindOf() = %v, want %v", kind, ErrFileCreationFailed)
	}
	if KindOf(os.ErrNotExist) != ErrUnknown {
		t.Errorf("untyped error should map to ErrUnknown")
	}
	if err.Error() == "" {
		t.Error("empty error string")
	}
}
