// Command cshared builds a C-compatible shared library exposing the
// measurement core's three stable operations with C linkage, against
// the hidden session in [ffi]. Build with:
//
//	go build -buildmode=c-shared -o libwowflutter.so ./ffi/cshared
package main

import "C"

import (
	"unsafe"

	"github.com/cwbudde/wowflutter/ffi"
	"github.com/cwbudde/wowflutter/wowflutter"
)

//export wf_init
func wf_init(sampleRateHz C.int, testFrequencyHz C.double) { //nolint:revive
	ffi.Init(int(sampleRateHz), float64(testFrequencyHz))
}

//export wf_process
func wf_process(samples *C.int, count C.int, filterType C.int) C.int { //nolint:revive
	n := int(count)
	slice := unsafe.Slice((*int32)(unsafe.Pointer(samples)), n)

	buf := make([]int32, n)
	copy(buf, slice)

	return C.int(ffi.Process(buf, wowflutter.FilterType(filterType)))
}

//export wf_get_results
func wf_get_results(quasiPeak, rmsPercent, frequencyHz *C.double) { //nolint:revive
	r := ffi.GetResults()
	*quasiPeak = C.double(r.QuasiPeak)
	*rmsPercent = C.double(r.RMSPercent)
	*frequencyHz = C.double(r.FrequencyHz)
}

//export wf_destroy
func wf_destroy() { //nolint:revive
	ffi.Destroy()
}

func main() {}
