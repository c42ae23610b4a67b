package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Raw PCM files are headerless signed 16-bit little-endian samples, interleaved
// for stereo. Container and codec packaging belong to external tooling.

// BytesToSamples converts s16le bytes to samples. A trailing odd byte is dropped.
func BytesToSamples(data []byte) []int16 {
	samples := make([]int16, len(data)/2)
	for i := range samples {
		samples[i] = int16(data[i*2]) | int16(data[i*2+1])<<8
	}
	return samples
}

// SamplesToBytes converts samples to s16le bytes.
func SamplesToBytes(samples []int16) []byte {
	data := make([]byte, len(samples)*2)
	for i, s := range samples {
		data[i*2] = byte(s)
		data[i*2+1] = byte(s >> 8)
	}
	return data
}

// ReadFile reads an entire raw PCM file into a sample buffer.
func ReadFile(path string) ([]int16, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read PCM file: %w", err)
	}
	return BytesToSamples(data), nil
}

// WriteFile writes a sample buffer to path as raw PCM. The data is written to a
// temporary file in the same directory and renamed into place, so a failure
// mid-write never leaves a partial file at path.
func WriteFile(path string, samples []int16) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(SamplesToBytes(samples)); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write samples: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to finalise output file: %w", err)
	}
	return nil
}

// Duration returns the playback time of a sample count at the given quality.
func Duration(sampleCount int, q Quality) time.Duration {
	framesPerSec := q.SampleRate() * q.Channels()
	if framesPerSec == 0 {
		return 0
	}
	return time.Duration(float64(sampleCount) / float64(framesPerSec) * float64(time.Second))
}

// EstimateSize returns the raw PCM file size for a capture of the given length.
func EstimateSize(d time.Duration, q Quality) int64 {
	return int64(d.Seconds() * float64(q.BytesPerSecond()))
}
