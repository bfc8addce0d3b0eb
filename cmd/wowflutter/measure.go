package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/log"

	"github.com/cwbudde/wowflutter/internal/wavreader"
	"github.com/cwbudde/wowflutter/wowflutter"
)

// MeasureCmd runs the measurement core over a WAV file, reporting
// once per [wowflutter.Session.Process] call — the core advances in
// fixed 10-second increments, so that is this report's cadence too.
type MeasureCmd struct {
	File       string  `arg:"" help:"Path to a mono (or stereo, first channel used) 16-bit PCM WAV file."`
	TestFreqHz float64 `name:"test-freq" default:"3150" help:"Test tone frequency in Hz."`
	Filter     string  `default:"unweighted" help:"Weighting filter: unweighted, din, wow, or flutter."`
	Profile    string  `help:"Path to a YAML session-profile file."`
	Name       string  `help:"Profile name to apply from --profile."`
}

func (c *MeasureCmd) Run(logger *log.Logger) error {
	testFreqHz := c.TestFreqHz
	filterName := c.Filter

	if p, ok := loadProfile(logger, c.Profile, c.Name); ok {
		testFreqHz = p.TestFrequencyHz
		filterName = p.Filter
	}

	logger.Info("decoding WAV file", "path", c.File)

	wav, err := wavreader.ReadFile(c.File)
	if err != nil {
		return err
	}

	session := wowflutter.NewSession(wav.SampleRateHz, testFreqHz)
	filterType := wowflutter.FilterType(filterByName(logger, filterName))

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Window\tRMS %\tQuasi-Peak\tFrequency Hz")

	samplesPerCall := session.Config().SamplesPer100ms * 100

	window := 0
	for offset := 0; offset+samplesPerCall <= len(wav.Samples); offset += samplesPerCall {
		if err := session.Process(wav.Samples[offset:offset+samplesPerCall], filterType); err != nil {
			logger.Warn("process call failed", "window", window, "error", err)

			break
		}

		window++

		r := session.GetResults()
		fmt.Fprintf(tw, "%d\t%.4f\t%.4f\t%.2f\n", window, r.RMSPercent, r.QuasiPeak, r.FrequencyHz)
	}

	return tw.Flush()
}
