// Package wowflutter implements a wow-and-flutter measurement core: a
// signal-processing pipeline that quantifies short-term speed variation
// in recorded audio by timing the zero-crossings of a known test tone.
//
// A [Session] owns a bank of five fixed-coefficient biquad-cascade
// filters, a sub-sample-accurate zero-crossing detector, a timing-error
// generator, a quasi-peak envelope detector, and a windowed RMS/peak
// aggregator. It is single-threaded and synchronous: Process runs to
// completion or returns an error without partial publication.
//
// The hot path allocates nothing and calls nothing outside math and
// the in-module filter primitives; all measurement state is fixed-size
// and owned by its Session.
package wowflutter
