// Package wavreader parses RIFF/WAVE files into mono 16-bit PCM
// samples for the measurement core. Plumbing, not measurement: it
// handles only the canonical chunk layout the test rigs produce.
package wavreader

import (
	"encoding/binary"
	"fmt"
	"os"
)

// Result is a fully decoded WAVE file: mono 16-bit PCM samples (the
// first channel only, if the source was stereo) and the file's
// declared sample rate.
type Result struct {
	SampleRateHz int
	Samples      []int32
}

// ReadFile reads and decodes path as a canonical RIFF/WAVE file with
// a "fmt " chunk carrying PCM format 1 and a "data" chunk of 16-bit
// samples.
func ReadFile(path string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("wavreader: %w", err)
	}

	return Decode(data)
}

// Decode parses a RIFF/WAVE byte stream already in memory.
func Decode(data []byte) (Result, error) {
	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return Result{}, fmt.Errorf("wavreader: not a RIFF/WAVE file")
	}

	var (
		sampleRateHz  int
		channels      int
		bitsPerSample int
		pcm           []byte
		haveFmt       bool
		haveData      bool
	)

	offset := 12
	for offset+8 <= len(data) {
		id := string(data[offset : offset+4])
		size := int(binary.LittleEndian.Uint32(data[offset+4 : offset+8]))
		body := offset + 8

		if body+size > len(data) {
			return Result{}, fmt.Errorf("wavreader: chunk %q overruns file", id)
		}

		switch id {
		case "fmt ":
			if size < 16 {
				return Result{}, fmt.Errorf("wavreader: fmt chunk too short")
			}

			format := binary.LittleEndian.Uint16(data[body : body+2])
			if format != 1 {
				return Result{}, fmt.Errorf("wavreader: unsupported format tag %d (only PCM is supported)", format)
			}

			channels = int(binary.LittleEndian.Uint16(data[body+2 : body+4]))
			sampleRateHz = int(binary.LittleEndian.Uint32(data[body+4 : body+8]))
			bitsPerSample = int(binary.LittleEndian.Uint16(data[body+14 : body+16]))
			haveFmt = true
		case "data":
			pcm = data[body : body+size]
			haveData = true
		}

		// Chunks are padded to even length.
		offset = body + size
		if size%2 == 1 {
			offset++
		}
	}

	if !haveFmt || !haveData {
		return Result{}, fmt.Errorf("wavreader: missing fmt or data chunk")
	}

	if bitsPerSample != 16 {
		return Result{}, fmt.Errorf("wavreader: unsupported bit depth %d (only 16-bit PCM is supported)", bitsPerSample)
	}

	if channels < 1 {
		return Result{}, fmt.Errorf("wavreader: invalid channel count %d", channels)
	}

	frameBytes := 2 * channels
	frameCount := len(pcm) / frameBytes

	samples := make([]int32, frameCount)
	for i := range samples {
		start := i * frameBytes // first channel only
		samples[i] = int32(int16(binary.LittleEndian.Uint16(pcm[start : start+2])))
	}

	return Result{SampleRateHz: sampleRateHz, Samples: samples}, nil
}
