package wowflutter

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/wowflutter/dsp/filter/biquad"
	"github.com/cwbudde/wowflutter/dsp/filter/design"
	"github.com/cwbudde/wowflutter/dsp/filter/design/pass"
)

// FilterType selects which weighting filter the timing-error sequence
// is run through before envelope and RMS accumulation. An out-of-range
// value defaults to Unweighted.
type FilterType int

const (
	Unweighted FilterType = 0
	DIN        FilterType = 1
	Wow        FilterType = 2
	Flutter    FilterType = 3
)

// weighting band edges (Hz).
const (
	unweightedLowHz, unweightedHighHz = 0.3, 200.0
	wowLowHz, wowHighHz               = 0.3, 6.0
	flutterLowHz, flutterHighHz       = 6.0, 200.0
	dinLowHz, dinHighHz               = 0.2, 200.0
	dinEmphasisHz                     = 4.0 // DIN 45507 weighting peak, 0 dB by definition
)

// filterBank owns the five fixed-coefficient filters: the bandpass
// isolator used ahead of the crossing detector, plus the four
// selectable weighting filters applied to the timing-error sequence.
type filterBank struct {
	isolator   *stageChain
	din        *stageChain
	unweighted *stageChain
	wow        *stageChain
	flutter    *stageChain
}

// newFilterBank builds the five filters for the given session
// configuration. The isolator runs at the audio sample rate; the four
// weighters run on the timing-error sequence, which arrives once per
// half-period of the tone, so they are designed at 2x the test
// frequency instead.
//
// Each cascade is normalized to 0 dB at its reference frequency — the
// test tone for the isolator, the 4 Hz DIN peak for DIN, and the
// geometric band center for the three Bessel bandpasses.
func newFilterBank(cfg Config) *filterBank {
	sr := float64(cfg.SampleRateHz)
	errRate := 2 * cfg.TestFrequencyHz

	iso := isolatorCoefficients(cfg.TestFrequencyHz, sr)
	din := dinCoefficients(errRate)
	unw := bandpassCoefficients(unweightedLowHz, unweightedHighHz, errRate)
	wow := bandpassCoefficients(wowLowHz, wowHighHz, errRate)
	flt := bandpassCoefficients(flutterLowHz, flutterHighHz, errRate)

	return &filterBank{
		isolator:   newStageChain(iso, normalizationGain(iso, cfg.TestFrequencyHz, sr)),
		din:        newStageChain(din, normalizationGain(din, dinEmphasisHz, errRate)),
		unweighted: newStageChain(unw, normalizationGain(unw, bandCenter(unweightedLowHz, unweightedHighHz), errRate)),
		wow:        newStageChain(wow, normalizationGain(wow, bandCenter(wowLowHz, wowHighHz), errRate)),
		flutter:    newStageChain(flt, normalizationGain(flt, bandCenter(flutterLowHz, flutterHighHz), errRate)),
	}
}

// isolatorCoefficients builds the 2-section bandpass cascade around
// the test tone. A single resonant RBJ constant-skirt-gain bandpass
// section, cascaded with itself, tightens the -3 dB bandwidth without
// needing a second distinct design.
func isolatorCoefficients(testFreqHz, sampleRate float64) []biquad.Coefficients {
	const isolatorQ = 8.0

	section := design.Bandpass(testFreqHz, isolatorQ, sampleRate)

	return []biquad.Coefficients{section, section}
}

// bandpassCoefficients builds a 4th-order-per-skirt Bessel bandpass
// (4 sections) from cascaded highpass and lowpass halves.
func bandpassCoefficients(lowHz, highHz, rate float64) []biquad.Coefficients {
	const skirtOrder = 4

	coeffs := make([]biquad.Coefficients, 0, 4)
	coeffs = append(coeffs, pass.BesselHP(lowHz, skirtOrder, rate)...)
	coeffs = append(coeffs, pass.BesselLP(highHz, skirtOrder, rate)...)

	return coeffs
}

// dinCoefficients builds the DIN 45507 weighting cascade: a 2nd-order
// highpass skirt, a 2nd-order lowpass skirt, and a resonant emphasis
// pair centered at the curve's characteristic 4 Hz peak — 4 sections
// total.
func dinCoefficients(rate float64) []biquad.Coefficients {
	const skirtOrder = 2
	const emphasisQ = 1.5

	emphasis := design.Bandpass(dinEmphasisHz, emphasisQ, rate)

	coeffs := make([]biquad.Coefficients, 0, 4)
	coeffs = append(coeffs, pass.BesselHP(dinLowHz, skirtOrder, rate)...)
	coeffs = append(coeffs, emphasis, emphasis)
	coeffs = append(coeffs, pass.BesselLP(dinHighHz, skirtOrder, rate)...)

	return coeffs
}

// bandCenter is the geometric mean of a bandpass's edges, where its
// response is flattest.
func bandCenter(lowHz, highHz float64) float64 {
	return math.Sqrt(lowHz * highHz)
}

// normalizationGain computes the input scale needed to make the
// cascade magnitude equal to 1 (0 dB) at refHz.
func normalizationGain(coeffs []biquad.Coefficients, refHz, rate float64) float64 {
	h := complex(1, 0)
	for i := range coeffs {
		h *= coeffs[i].Response(refHz, rate)
	}

	return 1 / cmplx.Abs(h)
}

// reset zeroes every filter's delay lines. Idempotent; invoked on
// every session init.
func (b *filterBank) reset() {
	b.isolator.reset()
	b.din.reset()
	b.unweighted.reset()
	b.wow.reset()
	b.flutter.reset()
}

// FilterResponse names one filter in the bank alongside its cascade
// coefficients and the rate the cascade was designed at, for
// frequency-response introspection tooling (cmd/wowflutter's
// `filters` subcommand).
type FilterResponse struct {
	Name         string
	RateHz       float64
	Coefficients []biquad.Coefficients
}

// InspectFilters builds a filter bank for the given configuration and
// returns each filter's name, design rate, and coefficient cascade
// without retaining any session state — a debugging aid, not part of
// the measurement core's runtime path.
func InspectFilters(sampleRateHz int, testFrequencyHz float64) []FilterResponse {
	cfg := newConfig(sampleRateHz, testFrequencyHz)
	b := newFilterBank(cfg)

	sr := float64(cfg.SampleRateHz)
	errRate := 2 * cfg.TestFrequencyHz

	return []FilterResponse{
		{"isolator", sr, b.isolator.coefficients()},
		{"din", errRate, b.din.coefficients()},
		{"unweighted", errRate, b.unweighted.coefficients()},
		{"wow", errRate, b.wow.coefficients()},
		{"flutter", errRate, b.flutter.coefficients()},
	}
}

// weighter returns the filter chain for the selected weighting type,
// defaulting to Unweighted for any value outside the known range.
func (b *filterBank) weighter(t FilterType) *stageChain {
	switch t {
	case DIN:
		return b.din
	case Wow:
		return b.wow
	case Flutter:
		return b.flutter
	default:
		return b.unweighted
	}
}
