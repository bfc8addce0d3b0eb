package pass

import (
	"math"

	"github.com/cwbudde/wowflutter/dsp/filter/biquad"
)

// LowpassRBJ designs a second-order lowpass biquad at freq (Hz) with
// quality factor q, using the RBJ Audio EQ Cookbook formula.
// Returns a zero Coefficients value for invalid parameters.
func LowpassRBJ(freq, q, sampleRate float64) biquad.Coefficients {
	w0, ok := rbjW0(freq, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}

	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		q = 1 / math.Sqrt2
	}

	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)

	b0 := (1 - cw) / 2
	b1 := 1 - cw
	b2 := (1 - cw) / 2
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return biquad.Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}

// HighpassRBJ designs a second-order highpass biquad at freq (Hz) with
// quality factor q, using the RBJ Audio EQ Cookbook formula.
// Returns a zero Coefficients value for invalid parameters.
func HighpassRBJ(freq, q, sampleRate float64) biquad.Coefficients {
	w0, ok := rbjW0(freq, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}

	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		q = 1 / math.Sqrt2
	}

	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)

	b0 := (1 + cw) / 2
	b1 := -(1 + cw)
	b2 := (1 + cw) / 2
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return biquad.Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}

func rbjW0(freq, sampleRate float64) (float64, bool) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return 0, false
	}

	if freq <= 0 || freq >= sampleRate/2 || math.IsNaN(freq) || math.IsInf(freq, 0) {
		return 0, false
	}

	return 2 * math.Pi * freq / sampleRate, true
}
