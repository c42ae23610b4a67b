// Package ui provides the Bubbletea terminal interface for clearcall.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/linuxmatters/clearcall/internal/capture"
	"github.com/linuxmatters/clearcall/internal/pipeline"
)

// RecordModel is the Bubbletea model for a live capture session. Key
// bindings: space pauses/resumes, enter (or q) stops and finalises.
type RecordModel struct {
	Target  string
	Quality string

	// live state, fed by LevelMsg from the session goroutine
	State    capture.State
	Level    float64
	Peak     float64
	Duration time.Duration

	// session control handed in by the caller
	Controller *capture.Controller
	StopFunc   func() // asked to finalise; result arrives via RecordDoneMsg

	Result *pipeline.Result
	Err    error
	Done   bool

	Width  int
	Height int
}

// NewRecordModel creates the capture UI for a target path.
func NewRecordModel(ctrl *capture.Controller, target, quality string, stop func()) RecordModel {
	return RecordModel{
		Target:     target,
		Quality:    quality,
		State:      capture.StateCapturing,
		Controller: ctrl,
		StopFunc:   stop,
	}
}

func (m RecordModel) Init() tea.Cmd {
	return nil
}

func (m RecordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case " ":
			if !m.Done {
				if m.State == capture.StatePaused {
					m.Controller.Resume()
				} else {
					m.Controller.Pause()
				}
			}
		case "enter", "q":
			if !m.Done && m.StopFunc != nil {
				m.StopFunc()
				m.StopFunc = nil // stop once
			}
			if m.Done {
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case LevelMsg:
		m.State = msg.State
		m.Level = msg.Level
		m.Duration = msg.Duration
		if msg.Level > m.Peak {
			m.Peak = msg.Level
		}

	case RecordDoneMsg:
		m.Done = true
		m.Result = msg.Result
		m.Err = msg.Err
	}

	return m, nil
}

func (m RecordModel) View() string {
	return renderRecordView(m)
}
