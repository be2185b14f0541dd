package cell

import (
	"math/big"
	mathbits "math/bits"

	"github.com/tonkit-dev/tonkit/internal/bits"
)

// Slice is an immutable, read-only snapshot of a Cell taken at parse time:
// a copy of its data bits, an ordered list of child slices, and independent
// read/ref cursors that only ever advance.
type Slice struct {
	buf        []byte
	bitLen     int
	refs       []*Slice
	readCursor int
	refCursor  int
}

// BitsLeft returns the number of unread data bits.
func (s *Slice) BitsLeft() int { return s.bitLen - s.readCursor }

// RefsLeft returns the number of unconsumed child slices.
func (s *Slice) RefsLeft() int { return len(s.refs) - s.refCursor }

func (s *Slice) need(w int) error {
	if w < 0 || s.readCursor+w > s.bitLen {
		return ErrSliceUnderflow
	}
	return nil
}

// LoadBit reads and consumes a single bit.
func (s *Slice) LoadBit() (bool, error) {
	if err := s.need(1); err != nil {
		return false, err
	}
	v := bits.GetBit(s.buf, s.readCursor)
	s.readCursor++
	return v, nil
}

// LoadBits reads w bits and returns them as a fresh bit container.
func (s *Slice) LoadBits(w int) (*bits.BitString, error) {
	if err := s.need(w); err != nil {
		return nil, err
	}
	out := bits.New(w)
	for i := 0; i < w; i++ {
		if err := out.WriteBit(bits.GetBit(s.buf, s.readCursor+i)); err != nil {
			return nil, err
		}
	}
	s.readCursor += w
	return out, nil
}

// LoadUint reads w bits as an unsigned big-endian integer.
func (s *Slice) LoadUint(w int) (*big.Int, error) {
	if err := s.need(w); err != nil {
		return nil, err
	}
	n := bits.ReadUint(s.buf, s.readCursor, w)
	s.readCursor += w
	return n, nil
}

// LoadUint64 reads w bits as an unsigned integer that fits a uint64.
func (s *Slice) LoadUint64(w int) (uint64, error) {
	n, err := s.LoadUint(w)
	if err != nil {
		return 0, err
	}
	return n.Uint64(), nil
}

// LoadInt reads w bits as a signed integer, the inverse of
// BitString.WriteInt.
func (s *Slice) LoadInt(w int) (*big.Int, error) {
	if err := s.need(w); err != nil {
		return nil, err
	}
	n := bits.ReadInt(s.buf, s.readCursor, w)
	s.readCursor += w
	return n, nil
}

// LoadInt64 reads w bits as a signed integer that fits an int64.
func (s *Slice) LoadInt64(w int) (int64, error) {
	n, err := s.LoadInt(w)
	if err != nil {
		return 0, err
	}
	return n.Int64(), nil
}

// LoadBytes reads n bytes (8n bits) and returns them as a plain byte slice.
func (s *Slice) LoadBytes(n int) ([]byte, error) {
	w := n * 8
	if err := s.need(w); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		b, err := s.LoadUint64(8)
		if err != nil {
			return nil, err
		}
		out[i] = byte(b)
	}
	return out, nil
}

// LoadVarUint reads a length-prefixed unsigned integer: a
// floor(log2(w))-bit byte-count prefix L, followed by L*8 bits of
// big-endian magnitude. w must be a power of two (e.g. 16 for LoadCoins).
func (s *Slice) LoadVarUint(w int) (*big.Int, error) {
	prefixBits := mathbits.Len(uint(w)) - 1
	l, err := s.LoadUint64(prefixBits)
	if err != nil {
		return nil, err
	}
	if l == 0 {
		return big.NewInt(0), nil
	}
	return s.LoadUint(int(l) * 8)
}

// LoadCoins reads a variable-length currency amount, i.e. LoadVarUint(16).
func (s *Slice) LoadCoins() (*big.Int, error) { return s.LoadVarUint(16) }

// LoadRef consumes and returns the next unread child slice.
func (s *Slice) LoadRef() (*Slice, error) {
	if s.refCursor >= len(s.refs) {
		return nil, ErrNoMoreRefs
	}
	r := s.refs[s.refCursor]
	s.refCursor++
	return r, nil
}
