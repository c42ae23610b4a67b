package pipeline

import (
	"github.com/linuxmatters/clearcall/internal/audio"
	"github.com/linuxmatters/clearcall/internal/dsp"
	"github.com/linuxmatters/clearcall/internal/mains"
)

// Report captures before/after measurements from one Enhance call, for the
// session report and the UI completion summary.
type Report struct {
	InputRMSDB    float64
	OutputRMSDB   float64
	InputPeak     int16
	OutputPeak    int16
	InputSamples  int
	OutputSamples int
	StagesApplied []string
}

// Enhance reads the whole input buffer, runs the enabled stages in fixed
// order and writes the result to outputPath. The input file is never mutated.
// Stage order matters: the hum filter runs first so mains rumble cannot skew
// the gate and compressor thresholds, and normalisation runs after the gain
// stage so the final peak lands exactly at full scale.
//
// On any failure the error is typed ErrAudioProcessingFailed (or
// ErrFileCreationFailed for output I/O) and no partial output file is left
// behind; audio.WriteFile renames a temp file into place only on full success.
func Enhance(inputPath, outputPath string, cfg Config) (*Report, error) {
	cfg = cfg.withDefaults()

	samples, err := audio.ReadFile(inputPath)
	if err != nil {
		return nil, Errorf(ErrAudioProcessingFailed, err, "cannot read input %s", inputPath)
	}
	if len(samples) == 0 {
		return nil, Errorf(ErrAudioProcessingFailed, nil, "input %s contains no samples", inputPath)
	}

	report := &Report{
		InputRMSDB:   dsp.LinearToDB(dsp.RMS(samples)),
		InputPeak:    dsp.Peak(samples),
		InputSamples: len(samples),
	}

	sampleRate := cfg.SampleRate

	if cfg.HumReduction {
		cutoff := cfg.HumCutoffHz
		if cutoff == 0 {
			cutoff = mains.HumCutoffHz()
		}
		samples = dsp.HighPass(samples, cutoff, sampleRate)
		report.StagesApplied = append(report.StagesApplied, "hum-filter")
	}
	if cfg.NoiseReduction {
		samples = dsp.Gate(samples, cfg.GateThreshold, cfg.GateReduction)
		report.StagesApplied = append(report.StagesApplied, "noise-gate")
	}
	if cfg.Compression {
		samples = dsp.Compress(samples, cfg.CompThreshold, cfg.CompRatio)
		report.StagesApplied = append(report.StagesApplied, "compressor")
	}
	if cfg.TargetGainDB != 0 {
		samples = dsp.ApplyGain(samples, cfg.TargetGainDB)
		report.StagesApplied = append(report.StagesApplied, "gain")
	}
	if cfg.Normalization {
		samples = dsp.Normalize(samples)
		report.StagesApplied = append(report.StagesApplied, "normalize")
	}
	if cfg.TrimSilence {
		samples = dsp.TrimSilence(samples, cfg.TrimThreshold, cfg.TrimMinMs, sampleRate)
		report.StagesApplied = append(report.StagesApplied, "trim-silence")
	}

	if err := audio.WriteFile(outputPath, samples); err != nil {
		return nil, Errorf(ErrFileCreationFailed, err, "cannot write output %s", outputPath)
	}

	report.OutputRMSDB = dsp.LinearToDB(dsp.RMS(samples))
	report.OutputPeak = dsp.Peak(samples)
	report.OutputSamples = len(samples)
	return report, nil
}

// NormalizeFile rescales a recorded file in place to full-scale peak. The
// rewrite goes through a temp file, so an interrupted run leaves the original
// intact.
func NormalizeFile(path string) error {
	samples, err := audio.ReadFile(path)
	if err != nil {
		return Errorf(ErrAudioProcessingFailed, err, "cannot read %s", path)
	}
	if len(samples) == 0 {
		return Errorf(ErrAudioProcessingFailed, nil, "%s contains no samples", path)
	}
	if err := audio.WriteFile(path, dsp.Normalize(samples)); err != nil {
		return Errorf(ErrFileCreationFailed, err, "cannot rewrite %s", path)
	}
	return nil
}
