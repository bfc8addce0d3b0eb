package main

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/log"

	"github.com/cwbudde/wowflutter/dsp/filter/biquad"
	"github.com/cwbudde/wowflutter/wowflutter"
)

// FiltersCmd dumps the magnitude response of every filter in the bank
// at a handful of representative frequencies, a debugging aid the
// reference instrument's front panel would have shown as a plot. Each
// figure is the response of the filter's biquad sections alone; the
// input scale that normalizes the filter to 0 dB at its reference
// frequency is not included.
type FiltersCmd struct {
	SampleRateHz int     `name:"sample-rate" default:"48000" help:"Sample rate in Hz."`
	TestFreqHz   float64 `name:"test-freq" default:"3150" help:"Test tone frequency in Hz."`
}

// probeFreqs spans the bands the five filters care about: sub-Hz wow,
// the flutter band, and the test-tone passband.
var probeFreqs = []float64{0.5, 1, 2, 4, 6, 10, 30, 100, 200, 1000, 3150}

func (c *FiltersCmd) Run(logger *log.Logger) error {
	responses := wowflutter.InspectFilters(c.SampleRateHz, c.TestFreqHz)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	header := "Freq Hz"
	for _, r := range responses {
		header += "\t" + r.Name + " dB"
	}
	fmt.Fprintln(tw, header)

	for _, f := range probeFreqs {
		line := fmt.Sprintf("%.1f", f)
		for _, r := range responses {
			if f >= r.RateHz/2 {
				line += "\t-"

				continue
			}

			line += fmt.Sprintf("\t%.2f", cascadeMagnitudeDB(r.Coefficients, f, r.RateHz))
		}
		fmt.Fprintln(tw, line)
	}

	logger.Info("filter response dumped", "sample_rate_hz", c.SampleRateHz, "test_freq_hz", c.TestFreqHz)

	return tw.Flush()
}

// cascadeMagnitudeDB composes each section's complex response at
// freqHz into the cascade's overall magnitude.
func cascadeMagnitudeDB(coeffs []biquad.Coefficients, freqHz, rate float64) float64 {
	total := complex(1, 0)
	for _, c := range coeffs {
		total *= c.Response(freqHz, rate)
	}

	mag := math.Hypot(real(total), imag(total))
	if mag == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(mag)
}
