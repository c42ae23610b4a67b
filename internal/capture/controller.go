package capture

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/linuxmatters/clearcall/internal/audio"
	"github.com/linuxmatters/clearcall/internal/dsp"
	"github.com/linuxmatters/clearcall/internal/pipeline"
)

// Session identifies one recording attempt. It exists from Start until the
// controller returns to idle (or fails into the error state).
type Session struct {
	ID         uuid.UUID
	TargetPath string
	Quality    audio.Quality
	StartedAt  time.Time
}

// Options tunes a Controller beyond the enhancement config.
type Options struct {
	// AutoGain runs AGC on each live chunk before it is written, lifting
	// quiet callers toward the target level during capture rather than
	// waiting for enhancement.
	AutoGain bool

	// Device selects the input device; -1 means the system default.
	Device int
}

// Controller owns the capture lifecycle for one device. It is an explicit
// instance: callers create one per service and inject it where needed, and
// its lifetime is the session's, not the process's. At most one session is
// active at a time.
type Controller struct {
	mu      sync.Mutex
	driver  Driver
	enhance pipeline.Config
	opts    Options

	state       State
	initialized bool
	quality     audio.Quality
	session     *Session

	// live capture plumbing, valid only while a session exists
	file     *os.File
	writer   *bufio.Writer
	writeErr error
	duration time.Duration
	level    float64
	gainDB   float64
}

// New creates a controller around the given driver. enhance configures the
// pipeline applied to finalising sessions.
func New(driver Driver, enhance pipeline.Config, opts Options) *Controller {
	return &Controller{
		driver:  driver,
		enhance: enhance,
		opts:    opts,
		state:   StateIdle,
	}
}

// Initialize prepares the device for the given quality. Valid from idle or
// error; any other state is an active session and the call is rejected
// without touching it.
func (c *Controller) Initialize(quality audio.Quality) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateIdle && c.state != StateError {
		return pipeline.Errorf(pipeline.ErrInitializationFailed, nil,
			"cannot initialize while %s", c.state)
	}

	c.state = StateInitializing
	err := c.driver.Initialize(DeviceConfig{
		DeviceID:   c.opts.Device,
		SampleRate: quality.SampleRate(),
		Channels:   quality.Channels(),
	})
	if err != nil {
		c.state = StateError
		return pipeline.Errorf(pipeline.ErrHardwareError, err, "device initialization failed")
	}

	c.quality = quality
	c.initialized = true
	c.state = StateIdle
	return nil
}

// Start opens the target file and begins streaming into it. Rejected unless
// the controller is initialized and idle, so a second Start cannot disturb a
// running session.
func (c *Controller) Start(target string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateIdle || !c.initialized {
		return pipeline.Errorf(pipeline.ErrInitializationFailed, nil,
			"cannot start capture while %s (initialized=%v)", c.state, c.initialized)
	}

	file, err := os.Create(target)
	if err != nil {
		c.state = StateError
		kind := pipeline.ErrFileCreationFailed
		if errors.Is(err, os.ErrPermission) {
			kind = pipeline.ErrPermissionDenied
		}
		return pipeline.Errorf(kind, err, "cannot create target %s", target)
	}

	c.file = file
	c.writer = bufio.NewWriter(file)
	c.writeErr = nil
	c.duration = 0
	c.level = 0
	c.session = &Session{
		ID:         uuid.New(),
		TargetPath: target,
		Quality:    c.quality,
		StartedAt:  time.Now(),
	}

	if err := c.driver.Start(c.consumeChunk); err != nil {
		file.Close()
		os.Remove(target)
		c.clearSession()
		c.state = StateError
		return pipeline.Errorf(pipeline.ErrHardwareError, err, "capture start failed")
	}

	c.state = StateCapturing
	return nil
}

// consumeChunk runs per captured chunk on the driver's goroutine. It meters,
// optionally gains, and appends; the bufio layer keeps the common case free
// of syscalls so the callback returns well within the chunk interval.
func (c *Controller) consumeChunk(chunk []int16) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateCapturing || c.writer == nil {
		return
	}

	if c.gainDB != 0 {
		chunk = dsp.ApplyGain(chunk, c.gainDB)
	} else if c.opts.AutoGain {
		chunk = dsp.AutoGain(chunk, dsp.DefaultAGCTarget, dsp.DefaultAGCMaxGain)
	}

	c.level = dsp.RMS(chunk)
	c.duration += audio.Duration(len(chunk), c.quality)

	if _, err := c.writer.Write(audio.SamplesToBytes(chunk)); err != nil && c.writeErr == nil {
		c.writeErr = err
	}
}

// Pause suspends capture. Reports false instead of erroring when the
// controller is not capturing.
func (c *Controller) Pause() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateCapturing {
		return false
	}
	c.state = StatePaused
	return true
}

// Resume continues a paused capture. Reports false when not paused.
func (c *Controller) Resume() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StatePaused {
		return false
	}
	c.state = StateCapturing
	return true
}

// Stop finalises the session: releases the capture stream, runs the recorded
// buffer through the enhancement pipeline and reports the enhanced file. On
// any failure the controller moves to the error state and the capture stream
// is still released; the raw target file is left for inspection but no
// partial enhanced output is produced.
func (c *Controller) Stop() (*pipeline.Result, error) {
	c.mu.Lock()
	if c.state != StateCapturing && c.state != StatePaused {
		state := c.state
		c.mu.Unlock()
		return nil, pipeline.Errorf(pipeline.ErrUnknown, nil,
			"cannot stop while %s", state)
	}
	c.state = StateProcessing
	c.mu.Unlock()

	// Release the stream before touching the file so the device is never
	// left dangling, whatever happens below. The mutex is dropped here:
	// driver.Stop waits out any in-flight chunk callback, and that callback
	// takes the same lock.
	stopErr := c.driver.Stop()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Release may have run while the stream was draining; it closes the file
	// and clears the session, so there is nothing left to finalise.
	if c.session == nil || c.writer == nil || c.file == nil {
		return nil, pipeline.Errorf(pipeline.ErrUnknown, stopErr,
			"capture released before stop could finalise")
	}

	session := c.session
	duration := c.duration
	flushErr := c.writer.Flush()
	closeErr := c.file.Close()
	c.file = nil
	c.writer = nil

	fail := func(kind pipeline.ErrorKind, cause error, msg string) (*pipeline.Result, error) {
		c.clearSession()
		c.state = StateError
		return nil, pipeline.Errorf(kind, cause, "%s", msg)
	}

	if stopErr != nil {
		return fail(pipeline.ErrHardwareError, stopErr, "capture stream stop failed")
	}
	if c.writeErr != nil {
		return fail(writeErrorKind(c.writeErr), c.writeErr, "sample write failed during capture")
	}
	if flushErr != nil {
		return fail(writeErrorKind(flushErr), flushErr, "flushing capture buffer failed")
	}
	if closeErr != nil {
		return fail(pipeline.ErrFileCreationFailed, closeErr, "closing target file failed")
	}

	c.state = StateEnhancing

	cfg := c.enhance
	cfg.SampleRate = session.Quality.SampleRate()
	outputPath := enhancedPath(session.TargetPath)
	if _, err := pipeline.Enhance(session.TargetPath, outputPath, cfg); err != nil {
		c.clearSession()
		c.state = StateError
		return nil, err
	}

	c.state = StateFinalizing

	info, err := os.Stat(outputPath)
	if err != nil {
		return fail(pipeline.ErrFileCreationFailed, err, "enhanced output missing")
	}

	result := &pipeline.Result{
		OutputPath: outputPath,
		Duration:   duration,
		FileSize:   info.Size(),
		Quality:    session.Quality,
	}

	c.clearSession()
	c.state = StateIdle
	return result, nil
}

// SetRealtimeGain applies a fixed gain to live chunks before they are
// written. Reports false once the controller has failed.
func (c *Controller) SetRealtimeGain(gainDB float64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateError {
		return false
	}
	c.gainDB = gainDB
	return true
}

// Level returns the RMS level of the most recent chunk, normalised to [0,1].
// The second return is false when no capture is running.
func (c *Controller) Level() (float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateCapturing && c.state != StatePaused {
		return 0, false
	}
	return c.level, true
}

// Duration returns the accumulated capture time of the current session.
func (c *Controller) Duration() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.duration
}

// IsCapturing reports whether samples are currently being recorded.
func (c *Controller) IsCapturing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == StateCapturing
}

// Status returns the lifecycle state.
func (c *Controller) Status() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Session returns the active session, or nil outside one.
func (c *Controller) Session() *Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// Release tears down any held capture resources. Safe to call from any
// state, including after errors; it is the scoped cleanup path for callers
// that abandon a controller mid-session.
func (c *Controller) Release() error {
	c.mu.Lock()
	if c.file != nil {
		c.writer.Flush()
		c.file.Close()
		c.file = nil
		c.writer = nil
	}
	c.clearSession()
	c.initialized = false
	c.state = StateIdle
	c.mu.Unlock()

	// Same lock discipline as Stop: Close may wait on the chunk callback.
	return c.driver.Close()
}

// clearSession drops per-session state. Callers hold c.mu.
func (c *Controller) clearSession() {
	c.session = nil
	c.level = 0
	c.gainDB = 0
}

// writeErrorKind classifies a capture write failure. A full disk is its own
// kind so callers can tell the user to free space rather than blame hardware.
func writeErrorKind(err error) pipeline.ErrorKind {
	if errors.Is(err, syscall.ENOSPC) {
		return pipeline.ErrInsufficientStorage
	}
	return pipeline.ErrEncodingFailed
}

// enhancedPath derives the enhanced output name from the capture target:
// call.pcm becomes call-enhanced.pcm.
func enhancedPath(target string) string {
	ext := filepath.Ext(target)
	base := strings.TrimSuffix(target, ext)
	return base + "-enhanced" + ext
}
