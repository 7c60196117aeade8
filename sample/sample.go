// Package sample bundles the recorded textures played by the noise engine.
package sample

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/cwbudde/wav"
)

//go:embed rain_loop.wav
var rainWAV []byte

// Rain decodes the embedded rain loop into mono float32 frames and returns
// them together with the recording's native sample rate. The slice is
// freshly allocated on each call; callers own it for their lifetime.
func Rain() ([]float32, int, error) {
	return DecodeMono(rainWAV)
}

// DecodeMono decodes WAV bytes to a mono float32 buffer, averaging channels
// for multi-channel sources.
func DecodeMono(raw []byte) ([]float32, int, error) {
	dec := wav.NewDecoder(bytes.NewReader(raw))
	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("sample: invalid wav data")
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("sample: decode: %w", err)
	}
	if buf == nil || buf.Format == nil || buf.Format.NumChannels < 1 {
		return nil, 0, fmt.Errorf("sample: invalid wav buffer")
	}
	ch := buf.Format.NumChannels
	rate := buf.Format.SampleRate
	if rate <= 0 {
		return nil, 0, fmt.Errorf("sample: invalid sample rate %d", rate)
	}
	frames := len(buf.Data) / ch
	if frames == 0 {
		return nil, 0, fmt.Errorf("sample: empty wav data")
	}

	mono := make([]float32, frames)
	if ch == 1 {
		copy(mono, buf.Data[:frames])
	} else {
		for i := range frames {
			var sum float32
			for c := 0; c < ch; c++ {
				sum += buf.Data[i*ch+c]
			}
			mono[i] = sum / float32(ch)
		}
	}
	return mono, rate, nil
}
