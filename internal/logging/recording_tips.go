package logging

import (
	"sort"
	"strings"

	"github.com/linuxmatters/clearcall/internal/pipeline"
)

// RecordingTip is a single piece of actionable recording advice derived from
// the enhancement measurements.
type RecordingTip struct {
	Priority int    // Higher = more important (1-10)
	Message  string // Human-readable advice (1-2 sentences)
	RuleID   string // Identifier for testing/logging (e.g. "level_too_quiet")
}

// MaxRecordingTips is the maximum number of tips to return.
const MaxRecordingTips = 3

// GenerateRecordingTips inspects the enhancement report and returns
// prioritised suggestions for the next capture.
func GenerateRecordingTips(rep *pipeline.Report) []RecordingTip {
	if rep == nil {
		return nil
	}

	var tips []RecordingTip
	fired := make(map[string]bool)

	rules := []func(*pipeline.Report) *RecordingTip{
		tipInputClipping,
		tipLevelTooQuiet,
		tipLevelQuiet,
		tipHeavyTrim,
	}

	for _, rule := range rules {
		if tip := rule(rep); tip != nil {
			tips = append(tips, *tip)
			fired[tip.RuleID] = true
		}
	}

	// level_quiet is implied by level_too_quiet; keep the stronger one
	if fired["level_too_quiet"] {
		filtered := tips[:0]
		for _, tip := range tips {
			if tip.RuleID != "level_quiet" {
				filtered = append(filtered, tip)
			}
		}
		tips = filtered
	}

	sort.Slice(tips, func(i, j int) bool {
		return tips[i].Priority > tips[j].Priority
	})

	if len(tips) > MaxRecordingTips {
		tips = tips[:MaxRecordingTips]
	}
	return tips
}

// tipInputClipping fires when the raw capture already touched full scale;
// enhancement cannot undo truncated peaks.
func tipInputClipping(rep *pipeline.Report) *RecordingTip {
	if rep.InputPeak < 32767 {
		return nil
	}
	return &RecordingTip{
		Priority: 9,
		RuleID:   "level_clipping",
		Message: "The raw capture hit full scale, so some peaks were clipped before " +
			"enhancement. Lower the input gain or move the microphone further from the source.",
	}
}

// tipLevelTooQuiet fires when speech RMS sits below -42 dBFS.
func tipLevelTooQuiet(rep *pipeline.Report) *RecordingTip {
	if rep.InputRMSDB >= -42 {
		return nil
	}
	return &RecordingTip{
		Priority: 8,
		RuleID:   "level_too_quiet",
		Message: "The capture was very quiet; normalisation had to boost it heavily, " +
			"amplifying line noise along with the voice. Raise the input gain or enable " +
			"realtime gain for the next call.",
	}
}

// tipLevelQuiet fires for mildly low levels (-42 to -30 dBFS RMS).
func tipLevelQuiet(rep *pipeline.Report) *RecordingTip {
	if rep.InputRMSDB < -42 || rep.InputRMSDB >= -30 {
		return nil
	}
	return &RecordingTip{
		Priority: 5,
		RuleID:   "level_quiet",
		Message: "The capture level was on the low side. A few dB more input gain " +
			"would improve the signal-to-noise ratio of future recordings.",
	}
}

// tipHeavyTrim fires when silence trimming removed more than a quarter of the
// recording.
func tipHeavyTrim(rep *pipeline.Report) *RecordingTip {
	if rep.InputSamples == 0 {
		return nil
	}
	trimmed := rep.InputSamples - rep.OutputSamples
	if !strings.Contains(strings.Join(rep.StagesApplied, ","), "trim-silence") ||
		float64(trimmed)/float64(rep.InputSamples) < 0.25 {
		return nil
	}
	return &RecordingTip{
		Priority: 3,
		RuleID:   "heavy_trim",
		Message: "More than a quarter of the recording was silence. If that is " +
			"unexpected, check that the call audio was actually routed to the capture device.",
	}
}

// wrapText wraps text at word boundaries to fit within maxWidth columns.
// Continuation lines are prefixed with indent.
func wrapText(text string, maxWidth int, indent string) string {
	words := strings.Fields(text)
	var lines []string
	currentLine := ""

	for _, word := range words {
		if currentLine == "" {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= maxWidth {
			currentLine += " " + word
		} else {
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n"+indent)
}
