package ui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/linuxmatters/clearcall/internal/capture"
	"github.com/linuxmatters/clearcall/internal/dsp"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#005FAF"))

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#005FAF")).
			Padding(0, 1).
			Width(60)

	okIcon   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00")).Render("✓")
	busyIcon = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Render("⚙")
	failIcon = lipgloss.NewStyle().Foreground(lipgloss.Color("#A40000")).Render("✗")
	waitIcon = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Render("○")
)

// renderRecordView renders the live capture screen.
func renderRecordView(m RecordModel) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Clearcall ☎ - Call Recorder"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Recording to %s (%s quality)", m.Target, m.Quality)))
	b.WriteString("\n\n")

	if m.Done {
		b.WriteString(renderRecordSummary(m))
		return b.String()
	}

	var content strings.Builder
	content.WriteString(fmt.Sprintf("State: %s\n", stateLabel(m.State)))
	content.WriteString(fmt.Sprintf("⏱  %s\n\n", formatDuration(m.Duration)))
	content.WriteString("Level ")
	content.WriteString(renderLevelMeter(m.Level, 40))
	content.WriteString(fmt.Sprintf("\nPeak  %.1f dB", dsp.LinearToDB(m.Peak)))
	b.WriteString(boxStyle.Render(content.String()))

	b.WriteString("\n\n")
	b.WriteString(subtitleStyle.Render("space pause/resume · enter stop and enhance · ctrl+c abort"))
	return b.String()
}

// renderRecordSummary renders the post-session result or failure.
func renderRecordSummary(m RecordModel) string {
	if m.Err != nil {
		return fmt.Sprintf(" %s Recording failed\n   %v\n\n%s",
			failIcon, m.Err, subtitleStyle.Render("press enter to exit"))
	}

	r := m.Result
	return fmt.Sprintf(" %s Recording complete\n   Output: %s\n   Duration: %s | Size: %d bytes | Quality: %s\n\n%s",
		okIcon, r.OutputPath, formatDuration(r.Duration), r.FileSize, r.Quality,
		subtitleStyle.Render("press enter to exit"))
}

// renderLevelMeter renders a VU-style bar for a normalised RMS level. RMS of
// full-scale speech rarely passes 0.7, so the bar saturates there to keep the
// useful range visible.
func renderLevelMeter(level float64, width int) string {
	scaled := level / 0.7
	if scaled > 1.0 {
		scaled = 1.0
	}
	filled := int(scaled * float64(width))

	green := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00"))
	amber := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))

	var b strings.Builder
	for i := 0; i < width; i++ {
		if i >= filled {
			b.WriteString("░")
		} else if float64(i)/float64(width) > 0.75 {
			b.WriteString(amber.Render("█"))
		} else {
			b.WriteString(green.Render("█"))
		}
	}
	b.WriteString(fmt.Sprintf(" %5.1f dB", dsp.LinearToDB(level)))
	return b.String()
}

func stateLabel(s capture.State) string {
	switch s {
	case capture.StateCapturing:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#A40000")).Bold(true).Render("● recording")
	case capture.StatePaused:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Render("‖ paused")
	default:
		return s.String()
	}
}

// renderEnhanceView renders the batch enhancement screen.
func renderEnhanceView(m EnhanceModel) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Clearcall ☎ - Enhancement"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Enhancing %d file(s)", m.TotalFiles)))
	b.WriteString("\n\n")

	for _, file := range m.Files {
		b.WriteString(renderFileEntry(file))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%d/%d complete, %d failed", m.CompletedFiles, m.TotalFiles, m.FailedFiles))
	return b.String()
}

// renderFileEntry renders one file's line in the enhancement queue.
func renderFileEntry(file FileProgress) string {
	fileName := filepath.Base(file.InputPath)

	switch file.Status {
	case StatusComplete:
		rep := file.Report
		delta := rep.OutputRMSDB - rep.InputRMSDB
		return fmt.Sprintf(" %s %s → %s\n   RMS: %.1f → %.1f dB (Δ %+.1f) | Stages: %s",
			okIcon, fileName, filepath.Base(file.OutputPath),
			rep.InputRMSDB, rep.OutputRMSDB, delta,
			strings.Join(rep.StagesApplied, ", "))

	case StatusEnhancing:
		return fmt.Sprintf(" %s %s\n   Enhancing...", busyIcon, fileName)

	case StatusError:
		return fmt.Sprintf(" %s %s\n   Error: %v", failIcon, fileName, file.Error)

	default:
		return fmt.Sprintf(" %s %s\n   Queued...", waitIcon, fileName)
	}
}

// formatDuration renders a session length as m:ss.t
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := d.Seconds() - float64(minutes)*60
	return fmt.Sprintf("%d:%04.1f", minutes, seconds)
}
