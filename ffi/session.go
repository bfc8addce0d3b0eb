// Package ffi holds the single hidden session both foreign-function
// adapters (cshared, wasm) share, preserving a single-session ABI for
// hosts that expect one global measurement engine.
package ffi

import "github.com/cwbudde/wowflutter/wowflutter"

var session *wowflutter.Session

// Init creates or replaces the hidden session.
func Init(sampleRateHz int, testFrequencyHz float64) {
	session = wowflutter.NewSession(sampleRateHz, testFrequencyHz)
}

// Process advances the hidden session by 10s. Returns -1 if no
// session has been created yet or if the underlying call fails.
func Process(samples []int32, filterType wowflutter.FilterType) int {
	if session == nil {
		return -1
	}

	if err := session.Process(samples, filterType); err != nil {
		return -1
	}

	return 0
}

// GetResults returns the hidden session's last published snapshot,
// or the zero value if no session has been created yet.
func GetResults() wowflutter.Results {
	if session == nil {
		return wowflutter.Results{}
	}

	return session.GetResults()
}

// Destroy releases the hidden session.
func Destroy() {
	session = nil
}
