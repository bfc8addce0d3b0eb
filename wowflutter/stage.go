package wowflutter

import "github.com/cwbudde/wowflutter/dsp/filter/biquad"

// stage is a single second-order section processed with the flat
// two-element delay line the measurement core requires: the front
// element is captured as tmp before the shift, the recursion is formed
// from tmp and the trailing element, and the front element receives the
// freshly computed feedback value on the way out.
//
// This is a Direct Form II realization of [biquad.Coefficients],
// a sibling of [biquad.Section]'s Direct-Form-II-Transposed layout
// (buf[0], buf[1] replace Section's d0, d1). The order — capture,
// shift, then write — fixes the exact rounding sequence; downstream
// truncation to integer makes the output sensitive to it.
type stage struct {
	biquad.Coefficients
	buf [2]float64
}

// process filters one sample through the section, returning the
// cascade's next input (the fir combination).
func (s *stage) process(x float64) float64 {
	tmp := s.buf[0]
	old := s.buf[1]

	iir := x - s.A1*tmp - s.A2*old
	fir := s.B1*tmp + s.B2*old + s.B0*iir

	s.buf[1] = tmp
	s.buf[0] = iir

	return fir
}

func (s *stage) reset() {
	s.buf[0] = 0
	s.buf[1] = 0
}

// stageChain cascades fixed stages in series with an input scale factor
// applied before the first section, mirroring [biquad.Chain] but built
// from [stage] instead of [biquad.Section] so the buffer discipline
// above holds for every section.
type stageChain struct {
	stages     []stage
	inputScale float64
}

func newStageChain(coeffs []biquad.Coefficients, inputScale float64) *stageChain {
	c := &stageChain{
		stages:     make([]stage, len(coeffs)),
		inputScale: inputScale,
	}
	for i := range coeffs {
		c.stages[i].Coefficients = coeffs[i]
	}

	return c
}

func (c *stageChain) process(x float64) float64 {
	x *= c.inputScale
	for i := range c.stages {
		x = c.stages[i].process(x)
	}

	return x
}

func (c *stageChain) reset() {
	for i := range c.stages {
		c.stages[i].reset()
	}
}

// coefficients returns the cascade's per-section coefficients, for
// response introspection (see [InspectFilters]).
func (c *stageChain) coefficients() []biquad.Coefficients {
	out := make([]biquad.Coefficients, len(c.stages))
	for i := range c.stages {
		out[i] = c.stages[i].Coefficients
	}

	return out
}
