package cell

import (
	"crypto/sha256"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmptyCellHash(t *testing.T) {
	c := New()
	want := sha256.Sum256([]byte{0x00, 0x00})
	require.Equal(t, want[:], c.Hash())
}

func TestMaxDepthLeaf(t *testing.T) {
	c := New()
	require.Equal(t, 0, c.GetMaxDepth())
}

func TestMaxDepthNested(t *testing.T) {
	leaf := New()
	mid := New()
	require.NoError(t, mid.AddRef(leaf))
	root := New()
	require.NoError(t, root.AddRef(mid))

	require.Equal(t, 0, leaf.GetMaxDepth())
	require.Equal(t, 1, mid.GetMaxDepth())
	require.Equal(t, 2, root.GetMaxDepth())
}

func TestTooManyRefs(t *testing.T) {
	root := New()
	for i := 0; i < MaxRefs; i++ {
		require.NoError(t, root.AddRef(New()))
	}
	require.ErrorIs(t, root.AddRef(New()), ErrTooManyRefs)
}

func TestHashChangesWithContent(t *testing.T) {
	a := New()
	require.NoError(t, a.WriteBit(true))
	b := New()
	require.NoError(t, b.WriteBit(false))
	require.NotEqual(t, a.Hash(), b.Hash())
}

func TestHashInvalidatedOnMutation(t *testing.T) {
	c := New()
	h1 := append([]byte{}, c.Hash()...)
	require.NoError(t, c.WriteBit(true))
	h2 := c.Hash()
	require.NotEqual(t, h1, h2)
}

func TestSharedChildDeduplicatesByHash(t *testing.T) {
	shared := New()
	require.NoError(t, shared.WriteUint64(7, 8))

	root := New()
	require.NoError(t, root.AddRef(shared))
	require.NoError(t, root.AddRef(shared))
	require.Equal(t, 2, root.RefsNum())
	require.Equal(t, root.Refs()[0].Hash(), root.Refs()[1].Hash())
}

func TestBeginParseRoundTripsBits(t *testing.T) {
	c := New()
	require.NoError(t, c.WriteUint64(0xABCD, 16))
	child := New()
	require.NoError(t, child.WriteBit(true))
	require.NoError(t, c.AddRef(child))

	s := c.BeginParse()
	v, err := s.LoadUint64(16)
	require.NoError(t, err)
	require.Equal(t, uint64(0xABCD), v)

	ref, err := s.LoadRef()
	require.NoError(t, err)
	bit, err := ref.LoadBit()
	require.NoError(t, err)
	require.True(t, bit)
}

func TestWriteCellConcatenatesDataAndRefs(t *testing.T) {
	a := New()
	require.NoError(t, a.WriteUint64(0b101, 3))
	require.NoError(t, a.AddRef(New()))

	b := New()
	require.NoError(t, b.WriteUint64(0b11, 2))
	require.NoError(t, b.AddRef(New()))

	require.NoError(t, a.WriteCell(b))
	require.Equal(t, 5, a.BitsSize())
	require.Equal(t, 2, a.RefsNum())
}

func TestAddressRoundTrip(t *testing.T) {
	addr := &Address{Workchain: -1, Hash: [32]byte{1, 2, 3}}
	c := New()
	require.NoError(t, c.WriteAddress(addr))

	got, err := c.BeginParse().LoadAddress()
	require.NoError(t, err)
	require.Equal(t, addr, got)
}

func TestAddressNoneRoundTrip(t *testing.T) {
	c := New()
	require.NoError(t, c.WriteAddress(nil))
	got, err := c.BeginParse().LoadAddress()
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestCoinsRoundTripZero(t *testing.T) {
	c := New()
	require.NoError(t, c.WriteCoins(big.NewInt(0)))
	got, err := c.BeginParse().LoadCoins()
	require.NoError(t, err)
	require.Equal(t, int64(0), got.Int64())
}

func TestCoinsRoundTripNonZero(t *testing.T) {
	c := New()
	amt := big.NewInt(123456789)
	require.NoError(t, c.WriteCoins(amt))
	got, err := c.BeginParse().LoadCoins()
	require.NoError(t, err)
	require.Equal(t, amt.Int64(), got.Int64())
}

func TestInternalMessageHeaderLeadingBits(t *testing.T) {
	// ihr_disabled=1, bounce=0, bounced=0, src=None, dest=(0, 32x00),
	// value=0 coins, ... matches scenario S5's leading bits.
	c := New()
	require.NoError(t, c.WriteBit(false)) // msg tag bit (int_msg_info$0)
	require.NoError(t, c.WriteBit(true))  // ihr_disabled
	require.NoError(t, c.WriteBit(false)) // bounce
	require.NoError(t, c.WriteBit(false)) // bounced
	require.NoError(t, c.WriteAddress(nil))
	require.NoError(t, c.WriteAddress(&Address{Workchain: 0}))
	require.NoError(t, c.WriteCoins(big.NewInt(0)))

	s := c.BeginParse()
	bit, _ := s.LoadBit()
	require.False(t, bit)
	bit, _ = s.LoadBit()
	require.True(t, bit)
	bit, _ = s.LoadBit()
	require.False(t, bit)
	bit, _ = s.LoadBit()
	require.False(t, bit)
	src, err := s.LoadAddress()
	require.NoError(t, err)
	require.Nil(t, src)
	dest, err := s.LoadAddress()
	require.NoError(t, err)
	require.Equal(t, int8(0), dest.Workchain)
	coins, err := s.LoadCoins()
	require.NoError(t, err)
	require.Equal(t, int64(0), coins.Int64())
}
