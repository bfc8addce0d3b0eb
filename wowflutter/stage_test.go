package wowflutter

import (
	"math"
	"testing"

	"github.com/cwbudde/wowflutter/dsp/filter/biquad"
)

const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestStageProcess_Passthrough(t *testing.T) {
	s := stage{Coefficients: biquad.Coefficients{B0: 1}}

	for i, x := range []float64{1, 0, -1, 0.5, 0.25} {
		y := s.process(x)
		if !almostEqual(y, x, eps) {
			t.Errorf("sample %d: got %v, want %v", i, y, x)
		}
	}
}

func TestStageReset(t *testing.T) {
	s := stage{Coefficients: biquad.Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}}
	s.process(1)
	s.process(0)
	s.reset()

	if s.buf != [2]float64{0, 0} {
		t.Fatalf("reset did not zero buffer: %v", s.buf)
	}
}

func TestStageChainInputScale(t *testing.T) {
	c := newStageChain([]biquad.Coefficients{{B0: 1}}, 2.0)

	if y := c.process(3); !almostEqual(y, 6, eps) {
		t.Fatalf("got %v, want 6", y)
	}
}

func TestStageChainReset(t *testing.T) {
	coeffs := []biquad.Coefficients{
		{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04},
		{B0: 0.1, B1: 0.2, B2: 0.1, A1: -0.3, A2: 0.05},
	}
	c := newStageChain(coeffs, 1.0)
	c.process(1)
	c.process(1)
	c.reset()

	for i, s := range c.stages {
		if s.buf != [2]float64{0, 0} {
			t.Fatalf("stage %d not reset: %v", i, s.buf)
		}
	}
}
