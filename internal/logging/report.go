package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/linuxmatters/clearcall/internal/dsp"
	"github.com/linuxmatters/clearcall/internal/pipeline"
)

// ReportData carries everything the report generator needs about one
// enhancement run.
type ReportData struct {
	InputPath  string
	OutputPath string
	StartTime  time.Time
	EndTime    time.Time
	Report     *pipeline.Report
	Config     pipeline.Config
	SampleRate int
}

// GenerateReport writes a plain-text analysis report next to the output file
// (<output>.log). The report is append-only diagnostics; failures here never
// affect the enhanced audio.
func GenerateReport(data ReportData) error {
	path := data.OutputPath + ".log"

	var sb strings.Builder

	sb.WriteString("Clearcall Enhancement Report\n")
	sb.WriteString(strings.Repeat("=", 60))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Input:      %s\n", data.InputPath))
	sb.WriteString(fmt.Sprintf("Output:     %s\n", data.OutputPath))
	sb.WriteString(fmt.Sprintf("Generated:  %s\n", data.EndTime.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Elapsed:    %s\n", data.EndTime.Sub(data.StartTime).Round(time.Millisecond)))
	sb.WriteString(fmt.Sprintf("Sample rate: %d Hz\n\n", data.SampleRate))

	sb.WriteString("Measurements\n")
	sb.WriteString(strings.Repeat("-", 60))
	sb.WriteString("\n")
	sb.WriteString(metricsTable(data).String())
	sb.WriteString("\n")

	sb.WriteString("Stages applied: ")
	if len(data.Report.StagesApplied) == 0 {
		sb.WriteString("none")
	} else {
		sb.WriteString(strings.Join(data.Report.StagesApplied, " → "))
	}
	sb.WriteString("\n\n")

	if tips := GenerateRecordingTips(data.Report); len(tips) > 0 {
		sb.WriteString("Recording Tips\n")
		sb.WriteString(strings.Repeat("-", 60))
		sb.WriteString("\n")
		for i, tip := range tips {
			sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, wrapText(tip.Message, 70, "   ")))
		}
		sb.WriteString("\n")
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("failed to write report %s: %w", filepath.Base(path), err)
	}
	return nil
}

// metricsTable builds the Input → Output comparison table.
func metricsTable(data ReportData) *MetricTable {
	rep := data.Report

	inDur := samplesToSeconds(rep.InputSamples, data.SampleRate)
	outDur := samplesToSeconds(rep.OutputSamples, data.SampleRate)

	return &MetricTable{
		Headers: []string{"Input", "Output"},
		Rows: []MetricRow{
			{
				Label:          "RMS Level",
				Values:         []string{formatMetricDB(rep.InputRMSDB, 1), formatMetricDB(rep.OutputRMSDB, 1)},
				Unit:           "dB",
				Interpretation: interpretRMSDelta(rep.OutputRMSDB - rep.InputRMSDB),
			},
			{
				Label:          "Peak",
				Values:         []string{formatMetricDB(peakDB(rep.InputPeak), 1), formatMetricDB(peakDB(rep.OutputPeak), 1)},
				Unit:           "dB",
				Interpretation: interpretPeak(rep.OutputPeak),
			},
			{
				Label:  "Duration",
				Values: []string{formatMetric(inDur, 2), formatMetric(outDur, 2)},
				Unit:   "s",
			},
			{
				Label:  "Samples",
				Values: []string{fmt.Sprintf("%d", rep.InputSamples), fmt.Sprintf("%d", rep.OutputSamples)},
			},
		},
	}
}

func peakDB(peak int16) float64 {
	return dsp.LinearToDB(float64(peak) / 32768.0)
}

func samplesToSeconds(n, sampleRate int) float64 {
	if sampleRate == 0 {
		return 0
	}
	return float64(n) / float64(sampleRate)
}

// interpretRMSDelta describes what the level change did.
func interpretRMSDelta(delta float64) string {
	switch {
	case delta > 12:
		return "large lift; source was very quiet"
	case delta > 3:
		return "level raised"
	case delta > -3:
		return "level roughly preserved"
	default:
		return "level reduced"
	}
}

// interpretPeak describes headroom on the output.
func interpretPeak(peak int16) string {
	switch {
	case peak >= 32767:
		return "full scale (normalised)"
	case peak > 29000:
		return "near full scale"
	default:
		return "headroom remaining"
	}
}
