package audio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSampleByteConversion(t *testing.T) {
	tests := []struct {
		name    string
		samples []int16
		bytes   []byte
	}{
		{
			name:    "empty",
			samples: []int16{},
			bytes:   []byte{},
		},
		{
			name:    "little endian layout",
			samples: []int16{1, 256, -1},
			bytes:   []byte{0x01, 0x00, 0x00, 0x01, 0xFF, 0xFF},
		},
		{
			name:    "extremes",
			samples: []int16{32767, -32768},
			bytes:   []byte{0xFF, 0x7F, 0x00, 0x80},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotBytes := SamplesToBytes(tt.samples)
			if len(gotBytes) != len(tt.bytes) {
				t.Fatalf("SamplesToBytes() length = %d, want %d", len(gotBytes), len(tt.bytes))
			}
			for i := range gotBytes {
				if gotBytes[i] != tt.bytes[i] {
					t.Errorf("byte %d = %#x, want %#x", i, gotBytes[i], tt.bytes[i])
				}
			}

			gotSamples := BytesToSamples(tt.bytes)
			if len(gotSamples) != len(tt.samples) {
				t.Fatalf("BytesToSamples() length = %d, want %d", len(gotSamples), len(tt.samples))
			}
			for i := range gotSamples {
				if gotSamples[i] != tt.samples[i] {
					t.Errorf("sample %d = %d, want %d", i, gotSamples[i], tt.samples[i])
				}
			}
		})
	}
}

func TestBytesToSamplesOddTrailingByte(t *testing.T) {
	got := BytesToSamples([]byte{0x01, 0x00, 0x7F})
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("BytesToSamples(odd) = %v, want [1]", got)
	}
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "take.pcm")
	want := []int16{0, 100, -100, 32767, -32768}

	if err := WriteFile(path, want); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("round trip length = %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("sample %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestWriteFileLeavesNoTempOnSuccess(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "take.pcm")
	if err := WriteFile(path, []int16{1, 2, 3}); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp-") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestWriteFileMissingDirectory(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "nope", "take.pcm"), []int16{1})
	if err == nil {
		t.Fatal("WriteFile() into missing directory succeeded")
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.pcm")); err == nil {
		t.Fatal("ReadFile() on missing file succeeded")
	}
}
