package wowflutter

import "errors"

// ErrInsufficientSamples is returned by [Session.Process] when fewer
// than 100 full 100ms blocks are available in the supplied sample
// slice. It is the only error this package surfaces; degenerate
// interpolation denominators, gate-rejected blocks, and out-of-range
// filter selectors are all recovered silently.
var ErrInsufficientSamples = errors.New("wowflutter: insufficient samples for a 10s process call")

// validate reports ErrInsufficientSamples without mutating any
// session state.
func (cfg Config) validate(sampleCount int) error {
	required := cfg.SamplesPer100ms * 100
	if sampleCount < required {
		return ErrInsufficientSamples
	}

	return nil
}
