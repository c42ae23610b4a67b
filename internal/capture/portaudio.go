package capture

import (
	"fmt"
	"sync"
	"time"

	"github.com/gordonklaus/portaudio"
)

// PortAudioDriver implements Driver on top of PortAudio.
type PortAudioDriver struct {
	mu          sync.Mutex
	stream      *portaudio.Stream
	onChunk     func([]int16)
	running     bool
	initialized bool
}

// NewPortAudioDriver initialises the PortAudio runtime. The caller must
// Close the driver to terminate it again.
func NewPortAudioDriver() (*PortAudioDriver, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize PortAudio: %w", err)
	}
	return &PortAudioDriver{}, nil
}

// ListDevices returns the available input devices.
func (d *PortAudioDriver) ListDevices() ([]Device, error) {
	devices, err := portaudio.Devices()
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}

	defaultInput, err := portaudio.DefaultInputDevice()
	if err != nil {
		defaultInput = nil
	}

	var result []Device
	for i, dev := range devices {
		if dev.MaxInputChannels <= 0 {
			continue
		}
		result = append(result, Device{
			ID:        i,
			Name:      dev.Name,
			IsDefault: defaultInput != nil && dev.Name == defaultInput.Name,
		})
	}
	return result, nil
}

// Initialize opens a stream on the configured device.
func (d *PortAudioDriver) Initialize(cfg DeviceConfig) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.running {
		return fmt.Errorf("cannot initialize while streaming")
	}
	if d.stream != nil {
		if err := d.stream.Close(); err != nil {
			return fmt.Errorf("failed to close existing stream: %w", err)
		}
		d.stream = nil
	}

	var device *portaudio.DeviceInfo
	var err error
	if cfg.DeviceID == -1 {
		device, err = portaudio.DefaultInputDevice()
		if err != nil {
			return fmt.Errorf("failed to get default input device: %w", err)
		}
	} else {
		devices, err := portaudio.Devices()
		if err != nil {
			return fmt.Errorf("failed to list devices: %w", err)
		}
		if cfg.DeviceID < 0 || cfg.DeviceID >= len(devices) {
			return fmt.Errorf("invalid device ID: %d", cfg.DeviceID)
		}
		device = devices[cfg.DeviceID]
	}

	if device.MaxInputChannels < cfg.Channels {
		return fmt.Errorf("device %q has %d input channel(s), need %d",
			device.Name, device.MaxInputChannels, cfg.Channels)
	}

	frames := cfg.FramesPerChunk
	if frames == 0 {
		frames = DefaultFramesPerChunk
	}

	var latency time.Duration = device.DefaultHighInputLatency

	params := portaudio.StreamParameters{
		Input: portaudio.StreamDeviceParameters{
			Device:   device,
			Channels: cfg.Channels,
			Latency:  latency,
		},
		SampleRate:      float64(cfg.SampleRate),
		FramesPerBuffer: frames,
	}

	stream, err := portaudio.OpenStream(params, d.callback)
	if err != nil {
		return fmt.Errorf("failed to open stream: %w", err)
	}

	d.stream = stream
	d.initialized = true
	return nil
}

// callback runs on PortAudio's capture goroutine. The chunk is copied before
// handoff because PortAudio reuses the buffer between invocations.
func (d *PortAudioDriver) callback(in []int16) {
	d.mu.Lock()
	onChunk := d.onChunk
	running := d.running
	d.mu.Unlock()

	if running && onChunk != nil {
		chunk := make([]int16, len(in))
		copy(chunk, in)
		onChunk(chunk)
	}
}

// Start begins delivering chunks to onChunk.
func (d *PortAudioDriver) Start(onChunk func([]int16)) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.initialized {
		return fmt.Errorf("driver not initialized")
	}
	if d.running {
		return fmt.Errorf("already streaming")
	}

	d.onChunk = onChunk
	if err := d.stream.Start(); err != nil {
		d.onChunk = nil
		return fmt.Errorf("failed to start stream: %w", err)
	}
	d.running = true
	return nil
}

// Stop halts streaming; the stream stays open for another Start.
func (d *PortAudioDriver) Stop() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.running {
		return nil
	}
	if err := d.stream.Stop(); err != nil {
		return fmt.Errorf("failed to stop stream: %w", err)
	}
	d.running = false
	d.onChunk = nil
	return nil
}

// Close releases the stream and terminates PortAudio.
func (d *PortAudioDriver) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.running {
		if err := d.stream.Stop(); err != nil {
			return fmt.Errorf("failed to stop stream: %w", err)
		}
		d.running = false
	}
	if d.stream != nil {
		if err := d.stream.Close(); err != nil {
			return fmt.Errorf("failed to close stream: %w", err)
		}
		d.stream = nil
	}
	if err := portaudio.Terminate(); err != nil {
		return fmt.Errorf("failed to terminate PortAudio: %w", err)
	}
	d.initialized = false
	return nil
}
