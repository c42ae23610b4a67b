package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/linuxmatters/clearcall/internal/pipeline"
)

// FileStatus represents the enhancement state of a single file.
type FileStatus int

const (
	StatusQueued FileStatus = iota
	StatusEnhancing
	StatusComplete
	StatusError
)

// FileProgress tracks enhancement of one audio file.
type FileProgress struct {
	InputPath  string
	OutputPath string
	Status     FileStatus
	StartTime  time.Time

	Report *pipeline.Report
	Error  error
}

// EnhanceModel is the Bubbletea model for batch enhancement.
type EnhanceModel struct {
	Files          []FileProgress
	CurrentIndex   int
	TotalFiles     int
	CompletedFiles int
	FailedFiles    int

	StartTime time.Time
	Done      bool

	Width  int
	Height int
}

// NewEnhanceModel creates a batch UI model for the given input files.
func NewEnhanceModel(inputFiles []string) EnhanceModel {
	files := make([]FileProgress, len(inputFiles))
	for i, path := range inputFiles {
		files[i] = FileProgress{InputPath: path, Status: StatusQueued}
	}
	return EnhanceModel{
		Files:        files,
		CurrentIndex: -1,
		TotalFiles:   len(inputFiles),
		StartTime:    time.Now(),
	}
}

func (m EnhanceModel) Init() tea.Cmd {
	return nil
}

func (m EnhanceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case FileStartMsg:
		m.CurrentIndex = msg.FileIndex
		if m.CurrentIndex >= 0 && m.CurrentIndex < len(m.Files) {
			m.Files[m.CurrentIndex].Status = StatusEnhancing
			m.Files[m.CurrentIndex].StartTime = time.Now()
		}

	case FileCompleteMsg:
		if msg.FileIndex >= 0 && msg.FileIndex < len(m.Files) {
			f := &m.Files[msg.FileIndex]
			if msg.Err != nil {
				f.Status = StatusError
				f.Error = msg.Err
				m.FailedFiles++
			} else {
				f.Status = StatusComplete
				f.Report = msg.Report
				f.OutputPath = msg.OutputPath
				m.CompletedFiles++
			}
		}

	case AllCompleteMsg:
		m.Done = true
		return m, tea.Quit
	}

	return m, nil
}

func (m EnhanceModel) View() string {
	return renderEnhanceView(m)
}
