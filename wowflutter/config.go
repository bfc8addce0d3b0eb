package wowflutter

// Config holds the immutable, derived parameters for a measurement
// session. It is computed once at [NewSession] and never mutated.
type Config struct {
	SampleRateHz       int
	TestFrequencyHz    float64
	NanosecondsPerSamp float64
	ExpectedHalfPeriod float64 // ns
	SamplesPer100ms    int
	MinCrossings100ms  int
	MaxCrossings100ms  int
}

// newConfig derives the fixed per-session parameters from the sample
// rate and test-tone frequency: samples per 100ms block, nanoseconds
// per sample, the expected half-period of the tone, and the gate's
// crossing-count band at +/-5% of the expected count (the tone
// crosses zero testFrequency/5 times per 100ms).
func newConfig(sampleRateHz int, testFrequencyHz float64) Config {
	samplesPer100ms := sampleRateHz / 10
	expectedCrossings := testFrequencyHz / 5

	return Config{
		SampleRateHz:       sampleRateHz,
		TestFrequencyHz:    testFrequencyHz,
		NanosecondsPerSamp: 1e9 / float64(sampleRateHz),
		ExpectedHalfPeriod: 0.5e9 / testFrequencyHz,
		SamplesPer100ms:    samplesPer100ms,
		MinCrossings100ms:  int(expectedCrossings * 0.95),
		MaxCrossings100ms:  int(expectedCrossings * 1.05),
	}
}
