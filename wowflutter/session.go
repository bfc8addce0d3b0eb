package wowflutter

import "math"

// flutterCalibration is the empirical constant mapping a fractional
// timing error onto the percent-flutter scale of DIN 45507 class
// instruments. Do not retune.
const flutterCalibration = 10000.0 / 85.0

// Results is the last published measurement snapshot. It is zero
// until the first 1-second boundary inside a [Session.Process] call.
type Results struct {
	RMSPercent  float64
	QuasiPeak   float64
	FrequencyHz float64
}

// Session owns every piece of state the measurement core needs: the
// filter bank, the crossing detector, the envelope, the error
// accumulator, and the window ring. A Session is single-threaded and
// synchronous: concurrent Process calls on the same Session are
// undefined behavior; distinct Sessions are fully independent.
type Session struct {
	cfg Config

	filters  *filterBank
	gate     gate
	crossing crossingState
	env      envelope
	acc      errorAccumulator
	ring     *windowRing

	results Results
}

// NewSession builds a session ready for [Session.Process].
func NewSession(sampleRateHz int, testFrequencyHz float64) *Session {
	s := &Session{}
	s.Init(sampleRateHz, testFrequencyHz)

	return s
}

// Init (re)computes derived configuration and resets every piece of
// state: filters, crossing detector, envelope, accumulators, window
// ring, and published results. It is idempotent: calling it twice in
// a row is equivalent to calling it once.
func (s *Session) Init(sampleRateHz int, testFrequencyHz float64) {
	s.cfg = newConfig(sampleRateHz, testFrequencyHz)
	s.filters = newFilterBank(s.cfg)
	s.gate = gate{}
	s.crossing = newCrossingState()
	s.env = envelope{}
	s.acc = errorAccumulator{}
	s.ring = newWindowRing()
	s.results = Results{}
}

// Process advances the measurement by exactly 10 seconds — 100 blocks
// of 100ms each — consuming samples from the front of the supplied
// slice. Samples are 32-bit signed integers carrying 16-bit PCM
// values; they are truncated to 16-bit signed before reaching the
// gate or the isolator.
//
// Returns [ErrInsufficientSamples] without mutating any state if
// fewer than 100*SamplesPer100ms samples are supplied; the count is
// validated up front so a failed call leaves the session pristine.
func (s *Session) Process(samples []int32, filterType FilterType) error {
	if err := s.cfg.validate(len(samples)); err != nil {
		return err
	}

	weighter := s.filters.weighter(filterType)

	// The frequency average is scoped to the whole call: its sums
	// reset here, not at each 1-second publication, so the published
	// figure drifts toward the call-wide mean as the call progresses.
	var freqSum float64
	var freqCount int

	blockLen := s.cfg.SamplesPer100ms
	raw16 := make([]int16, blockLen)

	const blocksPerCall = 100

	for w := 0; w < blocksPerCall; w++ {
		block := samples[w*blockLen : (w+1)*blockLen]
		for i, v := range block {
			raw16[i] = int16(v)
		}

		stats := s.gate.scan(raw16)
		if !s.cfg.valid(stats) {
			// Block skipped entirely: window ring index is NOT
			// advanced, RMS slot NOT written, filter/crossing/
			// weighter state untouched.
			continue
		}

		for _, raw := range raw16 {
			isolated := s.filters.isolator.process(float64(raw))

			result := s.crossing.advance(isolated, s.cfg.NanosecondsPerSamp)
			if result.warmupDiscard {
				s.acc.validCount = 0
				continue
			}

			if !result.emitted {
				continue
			}

			errVal := (s.cfg.ExpectedHalfPeriod - result.intervalNs) / s.cfg.ExpectedHalfPeriod
			weightedErr := weighter.process(errVal)
			measurement := math.Abs(weightedErr) * flutterCalibration

			s.env.update(measurement)

			freqHz := s.acc.recordCrossing(weightedErr, result.intervalNs)
			freqSum += freqHz
			freqCount++
		}

		s.ring.closeBlock(&s.acc, s.env.qp, &s.results, &freqSum, &freqCount)
	}

	return nil
}

// GetResults returns the last published measurement snapshot. It
// returns zeros before the first 1-second boundary of the session's
// first Process call.
func (s *Session) GetResults() Results {
	return s.results
}

// Config returns the session's derived, immutable configuration.
func (s *Session) Config() Config {
	return s.cfg
}
