// Package logging generates the analysis report written alongside enhanced
// recordings. This file holds the reusable table formatter for Input → Output
// metric comparisons.
package logging

import (
	"fmt"
	"math"
	"strings"
)

// MetricRow represents a single row in a comparison table. Values are
// pre-formatted strings so rows can mix decimal and scientific notation.
type MetricRow struct {
	Label          string   // Row label, e.g. "RMS Level"
	Values         []string // One value per column (Input, Output)
	Unit           string   // Unit suffix, e.g. "dB", "" for unitless
	Interpretation string   // Optional interpretation text
}

// MetricTable formats aligned columns for metric comparison. Handles variable
// column widths, missing values, and an optional interpretation column.
type MetricTable struct {
	Headers []string // Column headers, e.g. ["Input", "Output"]
	Rows    []MetricRow
}

// String renders the table with aligned columns: labels left-aligned, values
// right-aligned, units after the last value column, interpretation column
// only when some row carries one.
func (t *MetricTable) String() string {
	if len(t.Rows) == 0 {
		return ""
	}

	hasInterpretation := false
	for _, row := range t.Rows {
		if row.Interpretation != "" {
			hasInterpretation = true
			break
		}
	}

	labelWidth := 0
	for _, row := range t.Rows {
		if len(row.Label) > labelWidth {
			labelWidth = len(row.Label)
		}
	}

	valueWidths := make([]int, len(t.Headers))
	for i, header := range t.Headers {
		valueWidths[i] = len(header)
	}
	for _, row := range t.Rows {
		for i, val := range row.Values {
			if i < len(valueWidths) && len(val) > valueWidths[i] {
				valueWidths[i] = len(val)
			}
		}
	}

	unitWidth := 0
	for _, row := range t.Rows {
		if len(row.Unit) > unitWidth {
			unitWidth = len(row.Unit)
		}
	}

	var sb strings.Builder

	// Header row
	sb.WriteString(strings.Repeat(" ", labelWidth+2))
	for i, header := range t.Headers {
		sb.WriteString(fmt.Sprintf("%*s  ", valueWidths[i], header))
	}
	if unitWidth > 0 {
		sb.WriteString(strings.Repeat(" ", unitWidth+1))
	}
	if hasInterpretation {
		sb.WriteString("Interpretation")
	}
	sb.WriteString("\n")

	// Data rows
	for _, row := range t.Rows {
		sb.WriteString(fmt.Sprintf("%-*s  ", labelWidth, row.Label))

		for i := 0; i < len(t.Headers); i++ {
			val := MissingValue
			if i < len(row.Values) && row.Values[i] != "" {
				val = row.Values[i]
			}
			sb.WriteString(fmt.Sprintf("%*s  ", valueWidths[i], val))
		}

		if unitWidth > 0 {
			sb.WriteString(fmt.Sprintf("%-*s ", unitWidth, row.Unit))
		}
		if hasInterpretation {
			sb.WriteString(row.Interpretation)
		}

		sb.WriteString("\n")
	}

	return sb.String()
}

// MissingValue is the placeholder for unavailable measurements.
const MissingValue = "-"

// SilenceFloorDB is the dB level below which a measurement is effectively
// digital silence and rendered as a floor instead of a huge negative number.
const SilenceFloorDB = -120.0

// formatMetric formats a numeric value to the given decimal places, falling
// back to scientific notation for very small non-zero values and the missing
// placeholder for NaN/Inf.
func formatMetric(value float64, decimals int) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return MissingValue
	}
	if value != 0 && math.Abs(value) < 0.0001 {
		return fmt.Sprintf("%.2e", value)
	}
	return fmt.Sprintf(fmt.Sprintf("%%.%df", decimals), value)
}

// formatMetricDB formats a dB value, clamping digital silence to "< -120".
func formatMetricDB(value float64, decimals int) string {
	if math.IsNaN(value) || math.IsInf(value, 1) {
		return MissingValue
	}
	if math.IsInf(value, -1) || value <= SilenceFloorDB {
		return "< -120"
	}
	return fmt.Sprintf(fmt.Sprintf("%%.%df", decimals), value)
}
