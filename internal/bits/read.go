package bits

import "math/big"

// GetBit reads the bit at absolute index i from buf (MSB-first numbering).
func GetBit(buf []byte, i int) bool { return getBit(buf, i) }

// ReadUint decodes w big-endian bits starting at bit offset start in buf as
// an unsigned value.
func ReadUint(buf []byte, start, w int) *big.Int {
	n := new(big.Int)
	for i := 0; i < w; i++ {
		n.Lsh(n, 1)
		if getBit(buf, start+i) {
			n.SetBit(n, 0, 1)
		}
	}
	return n
}

// ReadInt decodes a signed value written by BitString.WriteInt: for w == 1,
// the single bit is 0 or -1; for w > 1, a sign bit followed by a biased
// (w-1)-bit magnitude.
func ReadInt(buf []byte, start, w int) *big.Int {
	if w == 1 {
		if getBit(buf, start) {
			return big.NewInt(-1)
		}
		return big.NewInt(0)
	}
	neg := getBit(buf, start)
	mag := ReadUint(buf, start+1, w-1)
	if !neg {
		return mag
	}
	bias := new(big.Int).Lsh(big.NewInt(1), uint(w-1))
	return new(big.Int).Sub(mag, bias)
}
