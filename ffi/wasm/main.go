//go:build js && wasm

// Command wasm exposes the measurement core's three stable operations
// to a browser host via syscall/js.
package main

import (
	"syscall/js"

	"github.com/cwbudde/wowflutter/ffi"
	"github.com/cwbudde/wowflutter/wowflutter"
)

var funcs []js.Func

func main() {
	api := js.Global().Get("Object").New()

	api.Set("init", export(func(args []js.Value) any {
		sampleRate := 48000
		testFreq := 3150.0
		if len(args) > 0 {
			sampleRate = args[0].Int()
		}
		if len(args) > 1 {
			testFreq = args[1].Float()
		}
		ffi.Init(sampleRate, testFreq)

		return js.Null()
	}))

	api.Set("process", export(func(args []js.Value) any {
		if len(args) < 1 {
			return -1
		}

		in := args[0]
		samples := make([]int32, in.Length())
		for i := range samples {
			samples[i] = int32(in.Index(i).Int())
		}

		filterType := wowflutter.Unweighted
		if len(args) > 1 {
			filterType = wowflutter.FilterType(args[1].Int())
		}

		return ffi.Process(samples, filterType)
	}))

	api.Set("getResults", export(func(_ []js.Value) any {
		r := ffi.GetResults()

		result := js.Global().Get("Object").New()
		result.Set("rmsPercent", r.RMSPercent)
		result.Set("quasiPeak", r.QuasiPeak)
		result.Set("frequencyHz", r.FrequencyHz)

		return result
	}))

	api.Set("destroy", export(func(_ []js.Value) any {
		ffi.Destroy()

		return js.Null()
	}))

	js.Global().Set("WowFlutter", api)
	select {}
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)

	return f
}
