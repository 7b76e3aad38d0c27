package audio

import (
	"bytes"
	"errors"
	"io"

	"github.com/go-audio/wav"
)

// DecodeWAV decodes a WAV blob into float32 samples and reports the
// source sample rate. Multi-channel audio is mixed down to mono so the
// result can be fed to the engines after resampling.
func DecodeWAV(b []byte) ([]float32, int, error) {
	dec := wav.NewDecoder(bytes.NewReader(b))
	if !dec.IsValidFile() {
		return nil, 0, errors.New("invalid wav file")
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil && err != io.EOF {
		return nil, 0, err
	}
	if buf == nil || len(buf.Data) == 0 {
		return nil, 0, errors.New("empty wav buffer")
	}

	bitDepth := buf.SourceBitDepth
	if bitDepth <= 0 {
		bitDepth = 16
	}
	scale := float32(int(1) << (bitDepth - 1))

	channels := 1
	if buf.Format != nil && buf.Format.NumChannels > 1 {
		channels = buf.Format.NumChannels
	}
	frames := len(buf.Data) / channels
	out := make([]float32, frames)
	for i := 0; i < frames; i++ {
		var sum float32
		for c := 0; c < channels; c++ {
			sum += float32(buf.Data[i*channels+c]) / scale
		}
		out[i] = sum / float32(channels)
	}

	rate := int(dec.SampleRate)
	if rate == 0 && buf.Format != nil {
		rate = buf.Format.SampleRate
	}
	if rate == 0 {
		rate = SampleRate
	}
	return out, rate, nil
}

// ResampleLinear resamples from inRate to outRate using linear
// interpolation. Sufficient quality for speech fed to a 16 kHz model.
func ResampleLinear(samples []float32, inRate, outRate int) []float32 {
	if inRate == outRate {
		return append([]float32(nil), samples...)
	}
	if inRate <= 0 || outRate <= 0 || len(samples) == 0 {
		return samples
	}
	ratio := float64(outRate) / float64(inRate)
	n := int(float64(len(samples)) * ratio)
	if n < 1 {
		n = 1
	}
	out := make([]float32, n)
	for i := range out {
		pos := float64(i) / ratio
		j := int(pos)
		if j >= len(samples)-1 {
			out[i] = samples[len(samples)-1]
			continue
		}
		frac := float32(pos - float64(j))
		out[i] = samples[j] + (samples[j+1]-samples[j])*frac
	}
	return out
}
