package audio

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodePCM16LEEmptyInput(t *testing.T) {
	t.Parallel()

	_, err := DecodePCM16LE(nil)
	require.ErrorIs(t, err, ErrEmptyInput)

	_, err = DecodePCM16LE([]byte{})
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestDecodePCM16LEOddLength(t *testing.T) {
	t.Parallel()

	_, err := DecodePCM16LE([]byte{0x01})
	require.ErrorIs(t, err, ErrOddLength)

	_, err = DecodePCM16LE(make([]byte, 32001))
	require.ErrorIs(t, err, ErrOddLength)
}

func TestDecodePCM16LEZeroBytes(t *testing.T) {
	t.Parallel()

	samples, err := DecodePCM16LE(make([]byte, 32000))
	require.NoError(t, err)
	require.Len(t, samples, 16000)
	for _, s := range samples {
		require.Zero(t, s)
	}
}

func TestDecodePCM16LEKnownValues(t *testing.T) {
	t.Parallel()

	b := make([]byte, 8)
	neg := int16(-32767)
	binary.LittleEndian.PutUint16(b[0:], uint16(int16(32767)))
	binary.LittleEndian.PutUint16(b[2:], uint16(neg))
	binary.LittleEndian.PutUint16(b[4:], uint16(int16(16384)))
	binary.LittleEndian.PutUint16(b[6:], 0)

	samples, err := DecodePCM16LE(b)
	require.NoError(t, err)
	require.Len(t, samples, 4)
	require.Equal(t, float32(1.0), samples[0])
	require.Equal(t, float32(-1.0), samples[1])
	require.InDelta(t, 0.5, samples[2], 1e-4)
	require.Zero(t, samples[3])
}

// The divisor is 32767, not 32768, so the most negative sample maps
// just below -1.0. That asymmetry is a wire compatibility contract;
// this test pins it down so nobody "fixes" it.
func TestDecodePCM16LEMaxNegativeExceedsMinusOne(t *testing.T) {
	t.Parallel()

	b := make([]byte, 2)
	most := int16(-32768)
	binary.LittleEndian.PutUint16(b, uint16(most))

	samples, err := DecodePCM16LE(b)
	require.NoError(t, err)
	require.Len(t, samples, 1)
	require.Less(t, samples[0], float32(-1.0))
	require.InDelta(t, -1.0, samples[0], 1e-4)
}

func TestDecodePCM16LESampleCountAndRange(t *testing.T) {
	t.Parallel()

	b := make([]byte, 2048)
	for i := range b {
		b[i] = byte(i * 31)
	}
	samples, err := DecodePCM16LE(b)
	require.NoError(t, err)
	require.Len(t, samples, len(b)/BytesPerSample)
	for _, s := range samples {
		require.GreaterOrEqual(t, s, float32(-32768.0/32767.0))
		require.LessOrEqual(t, s, float32(1.0))
	}
}

func TestSilentChunk(t *testing.T) {
	t.Parallel()

	chunk := SilentChunk()
	require.Len(t, chunk, SamplesPerChunk)
	require.Equal(t, SampleRate*ChunkSeconds, SamplesPerChunk)
	for _, s := range chunk {
		require.Zero(t, s)
	}
}
