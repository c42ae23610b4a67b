package ui

import (
	"time"

	"github.com/linuxmatters/clearcall/internal/capture"
	"github.com/linuxmatters/clearcall/internal/pipeline"
)

// LevelMsg carries a live metering sample from the capture controller.
type LevelMsg struct {
	Level    float64 // normalised RMS, 0.0 to 1.0
	Duration time.Duration
	State    capture.State
}

// RecordDoneMsg signals the capture session has finalised.
type RecordDoneMsg struct {
	Result *pipeline.Result
	Err    error
}

// FileStartMsg indicates enhancement of a file has started.
type FileStartMsg struct {
	FileIndex int
	FileName  string
}

// FileCompleteMsg indicates a file has finished enhancing.
type FileCompleteMsg struct {
	FileIndex  int
	Report     *pipeline.Report
	OutputPath string
	Err        error
}

// AllCompleteMsg indicates the whole batch is done.
type AllCompleteMsg struct{}
