package bits

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteBitOverflow(t *testing.T) {
	b := New(1)
	require.NoError(t, b.WriteBit(true))
	require.ErrorIs(t, b.WriteBit(false), ErrCapacity)
}

func TestWriteUintNoOpZeroWidth(t *testing.T) {
	b := New(8)
	require.NoError(t, b.WriteUint64(0, 0))
	require.Equal(t, 0, b.Cursor())

	require.ErrorIs(t, b.WriteUint64(1, 0), ErrValueRange)
}

func TestWriteUintTooWide(t *testing.T) {
	b := New(8)
	require.ErrorIs(t, b.WriteUint64(256, 8), ErrValueRange)
	require.NoError(t, b.WriteUint64(255, 8))
}

func TestUnsignedRoundTrip(t *testing.T) {
	for w := 1; w <= 16; w++ {
		w := w
		t.Run("", func(t *testing.T) {
			max := new(big.Int).Lsh(big.NewInt(1), uint(w))
			for _, n := range []int64{0, 1, int64(w)} {
				if int64(n) >= max.Int64() {
					continue
				}
				b := New(w)
				require.NoError(t, b.WriteUint64(uint64(n), w))
				got := ReadUint(b.Bytes(), 0, w)
				require.Equal(t, n, got.Int64())
			}
		})
	}
}

func TestSignedRoundTripWidth1(t *testing.T) {
	b := New(1)
	require.NoError(t, b.WriteInt64(0, 1))
	require.Equal(t, int64(0), ReadInt(b.Bytes(), 0, 1).Int64())

	b = New(1)
	require.NoError(t, b.WriteInt64(-1, 1))
	require.Equal(t, int64(-1), ReadInt(b.Bytes(), 0, 1).Int64())

	b = New(1)
	require.ErrorIs(t, b.WriteInt64(1, 1), ErrValueRange)
}

func TestSignedRoundTripWideWidths(t *testing.T) {
	for w := 2; w <= 17; w++ {
		w := w
		t.Run("", func(t *testing.T) {
			lo := -(int64(1) << uint(w-1))
			hi := (int64(1) << uint(w-1)) - 1
			for _, n := range []int64{lo, lo + 1, -1, 0, 1, hi - 1, hi} {
				b := New(w)
				require.NoError(t, b.WriteInt64(n, w))
				got := ReadInt(b.Bytes(), 0, w)
				require.Equal(t, n, got.Int64(), "width %d value %d", w, n)
			}
		})
	}
}

func TestWriteBytesAndString(t *testing.T) {
	b := New(64)
	require.NoError(t, b.WriteString("AB"))
	require.Equal(t, []byte("AB"), b.Bytes())
}

func TestWriteGramsZero(t *testing.T) {
	b := New(4)
	require.NoError(t, b.WriteGrams(big.NewInt(0)))
	require.Equal(t, 4, b.Cursor())
	require.Equal(t, byte(0x00), b.Bytes()[0]&0xF0)
}

func TestWriteGramsNonZero(t *testing.T) {
	b := New(4 + 2*8)
	require.NoError(t, b.WriteGrams(big.NewInt(0x1234)))
	// L = 2 bytes.
	require.Equal(t, 4+16, b.Cursor())
	data := b.Bytes()
	require.Equal(t, byte(2), data[0]>>4)
}

func TestWriteBitStringCopiesPrefixOnly(t *testing.T) {
	src := New(8)
	require.NoError(t, src.WriteUint64(0b1011, 4))

	dst := New(4)
	require.NoError(t, dst.WriteBitString(src))
	require.Equal(t, 4, dst.Cursor())
	require.Equal(t, "B", dst.ToHex())
}

func TestCloneIsIndependent(t *testing.T) {
	b := New(16)
	require.NoError(t, b.WriteUint64(0xAB, 8))
	c := b.Clone()
	require.NoError(t, c.WriteBit(true))

	require.Equal(t, 8, b.Cursor())
	require.Equal(t, byte(0xAB), b.Bytes()[0])
}

func TestWriteAddressStd(t *testing.T) {
	b := New(2 + 1 + 8 + 256)
	hash := make([]byte, 32)
	require.NoError(t, b.WriteAddressStd(0, hash))
	require.Equal(t, 2+1+8+256, b.Cursor())
	// tag(2)=10, anycast(1)=0, workchain(8)=00000000 -> first byte 1000 0000 = 0x80
	require.Equal(t, byte(0x80), b.Bytes()[0])
}

func TestWriteAddressNone(t *testing.T) {
	b := New(2)
	require.NoError(t, b.WriteAddressNone())
	require.Equal(t, 2, b.Cursor())
	require.Equal(t, byte(0), b.Bytes()[0]>>6)
}
