package wowflutter

import (
	"math"

	"github.com/cwbudde/wowflutter/dsp/buffer"
)

// errorAccumulator holds the crossing-scoped running sums the
// per-second RMS and per-call frequency average build on. sumOfSquares
// is scoped to the current 100ms block (appended to the window ring
// and zeroed every block); validCount and intervalSumNs are scoped to
// the current 1-second window (zeroed every ten blocks).
type errorAccumulator struct {
	validCount    int
	sumOfSquares  float64
	intervalSumNs float64
}

// windowRing is the rolling 5-second history: ten per-100ms
// sum-of-squares slots feeding each 1-second RMS figure, and fifty
// slots each for per-second RMS maxima and per-100ms quasi-peak
// maxima. Backed by [buffer.Buffer] in place of three hand-rolled
// slice/index pairs.
type windowRing struct {
	rms1SecSums *buffer.Buffer // len 10
	maxRMSSlots *buffer.Buffer // len 50
	peakSlots   *buffer.Buffer // len 50

	idx100ms int
	idx5sec  int
}

func newWindowRing() *windowRing {
	return &windowRing{
		rms1SecSums: buffer.New(10),
		maxRMSSlots: buffer.New(50),
		peakSlots:   buffer.New(50),
	}
}

// recordCrossing folds one valid crossing's weighted error and
// emitted interval into the accumulators, and returns the measured
// instantaneous frequency for this crossing so the caller can roll it
// into the call-scoped frequency average.
func (a *errorAccumulator) recordCrossing(weightedError, intervalNs float64) (measuredFreqHz float64) {
	a.sumOfSquares += weightedError * weightedError
	a.validCount++
	a.intervalSumNs += intervalNs

	return 1e9 / (a.intervalSumNs / float64(a.validCount)) / 2
}

// closeBlock appends this block's accumulated sum-of-squares and the
// envelope's final value into the ring, advances idx_5sec unconditionally,
// and — every tenth block — publishes a new RMS figure, writing it at
// the post-increment idx5sec. The per-second RMS writes and the
// per-100ms peak writes deliberately share that one index; bit-exact
// output depends on this interleaving, so keep it.
func (r *windowRing) closeBlock(acc *errorAccumulator, qp float64, results *Results, freqSum *float64, freqCount *int) {
	rms := r.rms1SecSums.Samples()
	peaks := r.peakSlots.Samples()
	maxRMS := r.maxRMSSlots.Samples()

	rms[r.idx100ms] = acc.sumOfSquares
	acc.sumOfSquares = 0

	peaks[r.idx5sec] = qp

	r.idx5sec = (r.idx5sec + 1) % len(maxRMS)
	r.idx100ms++

	if r.idx100ms != len(rms) {
		return
	}

	var totalSS float64
	for _, v := range rms {
		totalSS += v
	}

	var rmsPercent float64
	if acc.validCount > 0 {
		rmsPercent = math.Sqrt(totalSS/float64(acc.validCount)) * 100
	}

	maxRMS[r.idx5sec] = rmsPercent

	results.RMSPercent = maxOf(maxRMS)
	results.QuasiPeak = maxOf(peaks)

	if *freqCount > 0 {
		results.FrequencyHz = *freqSum / float64(*freqCount)
	}

	acc.validCount = 0
	acc.intervalSumNs = 0
	r.idx100ms = 0
}

func maxOf(slots []float64) float64 {
	var m float64
	for _, v := range slots {
		if v > m {
			m = v
		}
	}

	return m
}
