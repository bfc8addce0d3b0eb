//go:build arm64 && !purego

package neon

// processBlockNEON is a 2x-unrolled scalar kernel selected for
// NEON-capable CPUs. The biquad recurrence carries d0/d1 across every
// sample, so lanes cannot be processed independently; the unroll buys
// ILP within the dependency chain instead.
// TODO: replace with explicit NEON asm kernel.
func processBlockNEON(
	buf []float64,
	b0, b1, b2 float64,
	a1, a2 float64,
	d0, d1 float64,
) (newD0, newD1 float64) {
	i := 0
	n := len(buf)
	for ; i+1 < n; i += 2 {
		x0 := buf[i]
		y0 := b0*x0 + d0
		d0n := b1*x0 - a1*y0 + d1
		d1n := b2*x0 - a2*y0

		x1 := buf[i+1]
		y1 := b0*x1 + d0n
		d0 = b1*x1 - a1*y1 + d1n
		d1 = b2*x1 - a2*y1

		buf[i] = y0
		buf[i+1] = y1
	}

	if i < n {
		x := buf[i]
		y := b0*x + d0
		d0 = b1*x - a1*y + d1
		d1 = b2*x - a2*y
		buf[i] = y
	}

	return d0, d1
}
