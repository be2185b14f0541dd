package bits

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHexEmptyCell(t *testing.T) {
	b := New(0)
	require.Equal(t, "", b.ToHex())
}

func TestHexOneBit(t *testing.T) {
	b := New(8)
	require.NoError(t, b.WriteBit(true))
	require.Equal(t, "C_", b.ToHex())
}

func TestHexFourBits(t *testing.T) {
	b := New(8)
	require.NoError(t, b.WriteUint64(0b1010, 4))
	require.Equal(t, "A", b.ToHex())
}

func TestHexScenarioS2(t *testing.T) {
	b := New(8)
	require.NoError(t, b.WriteBit(true))
	require.NoError(t, b.WriteBit(false))
	require.NoError(t, b.WriteBit(true))
	require.NoError(t, b.WriteBit(true))
	require.Equal(t, "B", b.ToHex())

	require.NoError(t, b.WriteBit(true))
	require.Equal(t, "BC_", b.ToHex())
}

func TestTopUppedRoundTrip(t *testing.T) {
	for k := 0; k <= 23; k++ {
		k := k
		t.Run("", func(t *testing.T) {
			b := New(24)
			for i := 0; i < k; i++ {
				require.NoError(t, b.WriteBit(i%3 == 0))
			}
			top := b.TopUppedBytes()
			filled := k%8 == 0
			restored, err := SetTopUppedArray(top, filled)
			require.NoError(t, err)
			require.Equal(t, k, restored.Cursor())
			for i := 0; i < k; i++ {
				require.Equal(t, GetBit(b.Bytes(), i), GetBit(restored.Bytes(), i))
			}
		})
	}
}

func TestSetTopUppedArrayEmpty(t *testing.T) {
	b, err := SetTopUppedArray(nil, false)
	require.NoError(t, err)
	require.Equal(t, 0, b.Cursor())
}

func TestSetTopUppedArrayNoSentinel(t *testing.T) {
	_, err := SetTopUppedArray([]byte{0x00}, false)
	require.ErrorIs(t, err, ErrSentinelNotFound)
}
