package cell

// Address is the single on-chain address encoding this codec knows how to
// write and read: addr_std$10 with anycast=0, a signed 8-bit workchain, and
// a 256-bit account hash. General address parsing (human-readable forms,
// checksums, other tags) is out of scope; a nil *Address represents
// addr_none$00.
type Address struct {
	Workchain int8
	Hash      [32]byte
}

const (
	addrTagNone = 0
	addrTagStd  = 2
)

// LoadAddress reads an on-chain address: addr_none$00 (returns nil, nil) or
// addr_std$10 with anycast=0. Any other tag, or a set anycast bit, fails
// with ErrUnsupportedAddress.
func (s *Slice) LoadAddress() (*Address, error) {
	tag, err := s.LoadUint64(2)
	if err != nil {
		return nil, err
	}
	switch tag {
	case addrTagNone:
		return nil, nil
	case addrTagStd:
		anycast, err := s.LoadBit()
		if err != nil {
			return nil, err
		}
		if anycast {
			return nil, ErrUnsupportedAddress
		}
		wc, err := s.LoadInt64(8)
		if err != nil {
			return nil, err
		}
		hashBytes, err := s.LoadBytes(32)
		if err != nil {
			return nil, err
		}
		addr := &Address{Workchain: int8(wc)}
		copy(addr.Hash[:], hashBytes)
		return addr, nil
	default:
		return nil, ErrUnsupportedAddress
	}
}
