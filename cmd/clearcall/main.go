package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/linuxmatters/clearcall/internal/audio"
	"github.com/linuxmatters/clearcall/internal/capture"
	"github.com/linuxmatters/clearcall/internal/cli"
	"github.com/linuxmatters/clearcall/internal/logging"
	"github.com/linuxmatters/clearcall/internal/pipeline"
	"github.com/linuxmatters/clearcall/internal/ui"
)

var (
	version = "0.0.1"
)

// CLI defines the command-line interface
type CLI struct {
	Version VersionCmd   `cmd:"" help:"Show version information"`
	Record  RecordCmd    `cmd:"" help:"Capture call audio to a raw PCM file"`
	Enhance EnhanceCmd   `cmd:"" help:"Run the enhancement pipeline over recordings"`
	Fix     NormalizeCmd `cmd:"" name:"normalize" help:"Peak-normalise a recording in place"`
	Devices DevicesCmd   `cmd:"" help:"List audio input devices"`
}

func main() {
	cliArgs := &CLI{}
	ctx := kong.Parse(cliArgs,
		kong.Name("clearcall"),
		kong.Description("Call audio capture and enhancement"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	if err := ctx.Run(); err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
}

// VersionCmd prints version information
type VersionCmd struct{}

func (v *VersionCmd) Run() error {
	cli.PrintVersion(version)
	return nil
}

// RecordCmd captures a session to a raw PCM file and enhances it on stop
type RecordCmd struct {
	Output      string        `arg:"" name:"output" help:"Target PCM file" type:"path"`
	Quality     string        `short:"q" default:"standard" help:"Capture quality: high, standard or space-saving"`
	Device      int           `short:"d" default:"-1" help:"Input device ID (-1 for system default)"`
	Gain        float64       `help:"Fixed realtime gain in dB applied to live chunks"`
	AutoGain    bool          `help:"Run automatic gain control on live chunks"`
	MaxDuration time.Duration `default:"2h" help:"Stop automatically after this long"`
	NoEnhance   bool          `help:"Disable all enhancement stages (output is an untouched copy)"`
	TrimSilence bool          `help:"Shorten long silent stretches during enhancement"`
}

func (r *RecordCmd) Run() error {
	quality, err := audio.ParseQuality(r.Quality)
	if err != nil {
		return err
	}

	driver, err := capture.NewPortAudioDriver()
	if err != nil {
		return err
	}

	cfg := pipeline.DefaultConfig()
	cfg.TrimSilence = r.TrimSilence
	if r.NoEnhance {
		cfg = pipeline.Config{Normalization: false}
	}

	ctrl := capture.New(driver, cfg, capture.Options{
		AutoGain: r.AutoGain,
		Device:   r.Device,
	})
	defer ctrl.Release()

	if err := ctrl.Initialize(quality); err != nil {
		return err
	}
	if err := ctrl.Start(r.Output); err != nil {
		return err
	}
	if r.Gain != 0 {
		ctrl.SetRealtimeGain(r.Gain)
	}

	var p *tea.Program

	// stop finalises the session off the UI goroutine; Stop runs the whole
	// pipeline and must not stall rendering. Both the enter key and the
	// max-duration timer can race to call it, hence the Once.
	var stopOnce sync.Once
	stop := func() {
		stopOnce.Do(func() {
			go func() {
				result, err := ctrl.Stop()
				p.Send(ui.RecordDoneMsg{Result: result, Err: err})
			}()
		})
	}

	model := ui.NewRecordModel(ctrl, r.Output, quality.String(), stop)
	p = tea.NewProgram(model, tea.WithAltScreen())

	// Live meter feed
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		deadline := time.After(r.MaxDuration)
		for {
			select {
			case <-ticker.C:
				level, _ := ctrl.Level()
				p.Send(ui.LevelMsg{
					Level:    level,
					Duration: ctrl.Duration(),
					State:    ctrl.Status(),
				})
			case <-deadline:
				stop()
			case <-done:
				return
			}
		}
	}()

	_, err = p.Run()
	close(done)
	return err
}

// EnhanceCmd runs the pipeline over existing recordings
type EnhanceCmd struct {
	Files       []string `arg:"" name:"files" help:"Raw PCM files to enhance" type:"existingfile"`
	SampleRate  int      `default:"44100" help:"Sample rate of the raw input in Hz"`
	Gain        float64  `help:"Fixed gain stage in dB (0 disables)"`
	NoGate      bool     `help:"Disable the noise gate"`
	NoCompress  bool     `help:"Disable dynamic range compression"`
	NoNormalize bool     `help:"Disable peak normalisation"`
	NoHumFilter bool     `help:"Disable the mains hum high-pass"`
	TrimSilence bool     `help:"Shorten long silent stretches"`
	Logs        bool     `help:"Write an analysis report next to each output"`
}

func (e *EnhanceCmd) Run() error {
	cfg := pipeline.DefaultConfig()
	cfg.SampleRate = e.SampleRate
	cfg.TargetGainDB = e.Gain
	cfg.NoiseReduction = !e.NoGate
	cfg.Compression = !e.NoCompress
	cfg.Normalization = !e.NoNormalize
	cfg.HumReduction = !e.NoHumFilter
	cfg.TrimSilence = e.TrimSilence

	model := ui.NewEnhanceModel(e.Files)
	p := tea.NewProgram(model, tea.WithAltScreen())

	go func() {
		for i, inputPath := range e.Files {
			startTime := time.Now()
			p.Send(ui.FileStartMsg{FileIndex: i, FileName: inputPath})

			outputPath := enhancedName(inputPath)
			report, err := pipeline.Enhance(inputPath, outputPath, cfg)
			if err != nil {
				p.Send(ui.FileCompleteMsg{FileIndex: i, Err: err})
				continue
			}

			if e.Logs {
				reportData := logging.ReportData{
					InputPath:  inputPath,
					OutputPath: outputPath,
					StartTime:  startTime,
					EndTime:    time.Now(),
					Report:     report,
					Config:     cfg,
					SampleRate: e.SampleRate,
				}
				if err := logging.GenerateReport(reportData); err != nil {
					fmt.Fprintf(os.Stderr, "warning: %v\n", err)
				}
			}

			p.Send(ui.FileCompleteMsg{
				FileIndex:  i,
				Report:     report,
				OutputPath: outputPath,
			})
		}
		p.Send(ui.AllCompleteMsg{})
	}()

	_, err := p.Run()
	return err
}

// NormalizeCmd rescales a recording to full-scale peak in place
type NormalizeCmd struct {
	File string `arg:"" name:"file" help:"Raw PCM file to normalise" type:"existingfile"`
}

func (n *NormalizeCmd) Run() error {
	if err := pipeline.NormalizeFile(n.File); err != nil {
		return err
	}
	fmt.Printf("%s %s\n", cli.KeyStyle.Render("Normalised:"), cli.ValueStyle.Render(n.File))
	return nil
}

// DevicesCmd lists the available input devices
type DevicesCmd struct{}

func (d *DevicesCmd) Run() error {
	driver, err := capture.NewPortAudioDriver()
	if err != nil {
		return err
	}
	defer driver.Close()

	devices, err := driver.ListDevices()
	if err != nil {
		return err
	}

	fmt.Println(cli.TitleStyle.Render("Input devices"))
	for _, dev := range devices {
		marker := " "
		if dev.IsDefault {
			marker = "*"
		}
		fmt.Printf(" %s [%d] %s\n", marker, dev.ID, dev.Name)
	}
	return nil
}

// enhancedName derives the output filename: call.pcm → call-enhanced.pcm
func enhancedName(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + "-enhanced" + ext
}
