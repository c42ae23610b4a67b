// Package capture owns the recording lifecycle: device access, the session
// state machine, live metering and handoff to the enhancement pipeline.
package capture

// Device identifies an audio input device.
type Device struct {
	ID        int
	Name      string
	IsDefault bool
}

// DeviceConfig configures a capture stream.
type DeviceConfig struct {
	DeviceID       int // -1 selects the default input device
	SampleRate     int
	Channels       int
	FramesPerChunk int
}

// DefaultFramesPerChunk keeps chunk latency around 23ms at 44.1kHz, short
// enough for a responsive level meter.
const DefaultFramesPerChunk = 1024

// Driver abstracts the capture hardware so the controller can be exercised
// against a fake in tests and swapped to another backend later.
type Driver interface {
	// Initialize opens the device described by cfg. Must fail fast rather
	// than block waiting for hardware.
	Initialize(cfg DeviceConfig) error

	// Start begins streaming. Each captured chunk of interleaved samples is
	// handed to onChunk from the driver's own goroutine; onChunk must not
	// block longer than the chunk interval.
	Start(onChunk func([]int16)) error

	// Stop halts streaming but keeps the device open for a later Start.
	Stop() error

	// Close releases the device and all driver resources.
	Close() error
}
