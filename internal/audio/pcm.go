package audio

import (
	"encoding/binary"
	"errors"
)

const (
	// SampleRate is the only rate the engines accept.
	SampleRate = 16000
	// ChunkSeconds sizes the warm-up buffer.
	ChunkSeconds = 10
	// SamplesPerChunk is one warm-up chunk at SampleRate.
	SamplesPerChunk = SampleRate * ChunkSeconds
	// BytesPerSample is the width of one PCM16 sample on the wire.
	BytesPerSample = 2
)

var (
	ErrEmptyInput = errors.New("empty audio payload")
	ErrOddLength  = errors.New("pcm16 byte length must be even")
)

// DecodePCM16LE converts raw little-endian signed 16-bit mono PCM bytes
// into float32 samples. Samples are divided by 32767; existing clients
// depend on that exact divisor, so it must not be changed to 32768.
func DecodePCM16LE(b []byte) ([]float32, error) {
	if len(b) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b)%BytesPerSample != 0 {
		return nil, ErrOddLength
	}
	out := make([]float32, len(b)/BytesPerSample)
	for i := range out {
		v := int16(binary.LittleEndian.Uint16(b[i*BytesPerSample:]))
		out[i] = float32(v) / 32767.0
	}
	return out, nil
}

// SilentChunk returns one chunk of zero samples. Used only to warm the
// engine up before it starts serving jobs.
func SilentChunk() []float32 {
	return make([]float32, SamplesPerChunk)
}
