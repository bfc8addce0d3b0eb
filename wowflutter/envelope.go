package wowflutter

// envelope is the dual-rate quasi-peak detector: a single scalar
// that attacks fast toward a rising measurement and decays
// slowly otherwise. It updates once per crossing event, never per
// audio sample.
type envelope struct {
	qp float64
}

const (
	attackDivisor = 500
	decayDivisor  = 6000
)

// update feeds one weighted measurement through the detector and
// returns the new quasi-peak value.
func (e *envelope) update(m float64) float64 {
	if m > e.qp {
		e.qp += (m - e.qp) / attackDivisor
	} else {
		e.qp += (m - e.qp) / decayDivisor
	}

	return e.qp
}

func (e *envelope) reset() {
	e.qp = 0
}
