package wowflutter

import "math"

// denominatorFloor is the minimum magnitude a crossing-interpolation
// denominator may have before it is clamped. A degenerate denominator
// is recovered locally, never surfaced.
const denominatorFloor = 1e-9

// crossingState is the sub-sample-accurate zero-crossing detector's
// running state: samples in, interval events out, with at most one
// partial interval buffered between calls.
type crossingState struct {
	previousFiltered int
	accumulatingNs   float64
	carryRemainderNs float64
	warmup           bool
}

// newCrossingState returns a detector with warmup armed, so the very
// first crossing of a session — the filter transient — is discarded.
func newCrossingState() crossingState {
	return crossingState{warmup: true}
}

// crossingResult is what advance reports for one filtered sample: an
// emitted interval (valid only if emitted is true), or a warmup
// discard that the caller must use to reset its valid-count
// accumulator.
type crossingResult struct {
	emitted       bool
	intervalNs    float64
	warmupDiscard bool
}

// advance feeds one isolator output sample through the detector.
// nsPerSample is the session's nanoseconds-per-sample constant.
func (c *crossingState) advance(isolated, nsPerSample float64) crossingResult {
	current := int(isolated) // truncation toward zero

	isCrossing := false

	switch {
	case current > 0 && c.previousFiltered < 0, current < 0 && c.previousFiltered > 0:
		denom := float64(current - c.previousFiltered)
		if math.Abs(denom) < denominatorFloor {
			if denom < 0 {
				denom = -denominatorFloor
			} else {
				denom = denominatorFloor
			}
		}

		offsetNs := -float64(c.previousFiltered) * nsPerSample / denom
		c.accumulatingNs += offsetNs
		c.carryRemainderNs = nsPerSample - offsetNs
		isCrossing = true
	default:
		c.accumulatingNs += nsPerSample
	}

	if current == 0 {
		c.carryRemainderNs = 0
		isCrossing = true
	}

	c.previousFiltered = current

	if !isCrossing {
		return crossingResult{}
	}

	if c.warmup {
		c.warmup = false

		return crossingResult{warmupDiscard: true}
	}

	interval := c.accumulatingNs
	c.accumulatingNs = c.carryRemainderNs

	return crossingResult{emitted: true, intervalNs: interval}
}
