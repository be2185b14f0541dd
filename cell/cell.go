// Package cell implements the TON cell data model: a node in a directed
// acyclic graph holding up to 1023 bits of data and up to four child
// references, plus the read-only Slice view used to parse a cell's content.
package cell

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/tonkit-dev/tonkit/internal/bits"
)

// MaxDataBits is the maximum number of data bits a single cell may hold.
const MaxDataBits = 1023

// MaxRefs is the maximum number of child references a single cell may hold.
const MaxRefs = 4

// Cell is a node in a cell DAG: up to 1023 bits of data, up to 4 ordered
// child references, and an is-exotic flag. A Cell is treated as immutable
// once handed to the BoC serializer.
type Cell struct {
	data   *bits.BitString
	refs   []*Cell
	exotic bool

	hash []byte // memoized; nil until first Hash() call
}

// New returns an empty cell with the standard 1023-bit data capacity.
func New() *Cell {
	return &Cell{data: bits.New(MaxDataBits)}
}

// FromBits wraps an existing bit buffer as a (still ref-less) cell, for use
// by the BoC deserializer once a cell's data bits have been decoded from its
// top-upped on-wire form. exotic carries the descriptor's special bit.
func FromBits(data *bits.BitString, exotic bool) *Cell {
	return &Cell{data: data, exotic: exotic}
}

// IsExotic reports whether the exotic flag is set. This codec preserves the
// bit but does not interpret exotic cell bodies (pruned branches, Merkle
// proofs, library cells).
func (c *Cell) IsExotic() bool { return c.exotic }

// SetExotic sets the is-exotic flag on a cell under construction.
func (c *Cell) SetExotic(v bool) {
	c.exotic = v
	c.invalidateHash()
}

// BitsSize returns the number of data bits written to the cell.
func (c *Cell) BitsSize() int { return c.data.Cursor() }

// Refs returns the cell's child references, in order. The returned slice
// must not be mutated.
func (c *Cell) Refs() []*Cell { return c.refs }

// RefsNum returns the number of child references.
func (c *Cell) RefsNum() int { return len(c.refs) }

func (c *Cell) invalidateHash() { c.hash = nil }

// AddRef appends a child reference. It fails once the cell already holds
// MaxRefs references.
func (c *Cell) AddRef(ref *Cell) error {
	if len(c.refs) >= MaxRefs {
		return ErrTooManyRefs
	}
	c.refs = append(c.refs, ref)
	c.invalidateHash()
	return nil
}

// WriteCell appends other's data bits and concatenates other's references
// onto this cell. The caller is responsible for not exceeding 1023 data
// bits or 4 total references; both are still enforced by the underlying
// writes.
func (c *Cell) WriteCell(other *Cell) error {
	if err := c.data.WriteBitString(other.data); err != nil {
		return toDataErr(err)
	}
	for _, r := range other.refs {
		if err := c.AddRef(r); err != nil {
			return err
		}
	}
	c.invalidateHash()
	return nil
}

func toDataErr(err error) error {
	if err == bits.ErrCapacity {
		return ErrDataTooLarge
	}
	return err
}

// WriteBit writes a single bit.
func (c *Cell) WriteBit(v bool) error {
	c.invalidateHash()
	return toDataErr(c.data.WriteBit(v))
}

// WriteUint writes the w-bit unsigned big-endian encoding of n.
func (c *Cell) WriteUint(n *big.Int, w int) error {
	c.invalidateHash()
	return toDataErr(c.data.WriteUint(n, w))
}

// WriteUint64 writes the w-bit unsigned big-endian encoding of n.
func (c *Cell) WriteUint64(n uint64, w int) error {
	c.invalidateHash()
	return toDataErr(c.data.WriteUint64(n, w))
}

// WriteInt writes the w-bit signed encoding of n.
func (c *Cell) WriteInt(n *big.Int, w int) error {
	c.invalidateHash()
	return toDataErr(c.data.WriteInt(n, w))
}

// WriteInt64 writes the w-bit signed encoding of n.
func (c *Cell) WriteInt64(n int64, w int) error {
	c.invalidateHash()
	return toDataErr(c.data.WriteInt64(n, w))
}

// WriteBytes writes each byte of data as an unsigned 8-bit value.
func (c *Cell) WriteBytes(data []byte) error {
	c.invalidateHash()
	return toDataErr(c.data.WriteBytes(data))
}

// WriteString UTF-8 encodes and writes s.
func (c *Cell) WriteString(s string) error {
	c.invalidateHash()
	return toDataErr(c.data.WriteString(s))
}

// WriteCoins writes a variable-length currency amount: a 4-bit byte-length
// prefix L followed by L*8 bits of big-endian magnitude (zero is a bare
// 4-bit zero).
func (c *Cell) WriteCoins(amount *big.Int) error {
	c.invalidateHash()
	return toDataErr(c.data.WriteGrams(amount))
}

// WriteAddress writes addr, or the addr_none tag when addr is nil.
func (c *Cell) WriteAddress(addr *Address) error {
	c.invalidateHash()
	if addr == nil {
		return toDataErr(c.data.WriteAddressNone())
	}
	return toDataErr(c.data.WriteAddressStd(addr.Workchain, addr.Hash[:]))
}

// GetMaxDepth returns 0 for a leaf cell, or 1 + the maximum depth among
// children otherwise.
func (c *Cell) GetMaxDepth() int {
	depth := 0
	for _, r := range c.refs {
		if d := r.GetMaxDepth() + 1; d > depth {
			depth = d
		}
	}
	return depth
}

// GetMaxLevel returns the maximum level among children, or 0 for a leaf.
// Real exotic-cell level computation is out of scope; this codec always
// reports level 0 for a cell's own contribution.
func (c *Cell) GetMaxLevel() int {
	level := 0
	for _, r := range c.refs {
		if l := r.GetMaxLevel(); l > level {
			level = l
		}
	}
	return level
}

// descriptors returns the (d1, d2) descriptor bytes for this cell, per the
// BoC wire format: d1 = refCount + 8*isExotic + 32*level, d2 =
// floor(bits/8) + ceil(bits/8) (its parity flags whether the last byte is
// fully used).
func (c *Cell) descriptors() (byte, byte) {
	n := c.BitsSize()
	d2 := n/8 + (n+7)/8
	d1 := byte(len(c.refs))
	if c.exotic {
		d1 += 8
	}
	d1 += byte(32 * c.GetMaxLevel())
	return d1, byte(d2)
}

// DataWithDescriptors returns d1 ++ d2 ++ top-upped data bytes.
func (c *Cell) DataWithDescriptors() []byte {
	d1, d2 := c.descriptors()
	body := c.data.TopUppedBytes()
	out := make([]byte, 0, 2+len(body))
	out = append(out, d1, d2)
	return append(out, body...)
}

// Repr returns the pre-image hashed to produce the cell's identity:
// DataWithDescriptors() followed by each child's max depth (big-endian
// uint16) and then each child's hash.
func (c *Cell) Repr() []byte {
	out := c.DataWithDescriptors()
	for _, r := range c.refs {
		var d [2]byte
		binary.BigEndian.PutUint16(d[:], uint16(r.GetMaxDepth()))
		out = append(out, d[:]...)
	}
	for _, r := range c.refs {
		out = append(out, r.Hash()...)
	}
	return out
}

// Hash returns the SHA-256 content hash of the cell, memoized after first
// computation. Hash is a pure function of the cell's content, so the cache
// is invalidated whenever the cell is mutated.
func (c *Cell) Hash() []byte {
	if c.hash != nil {
		return c.hash
	}
	sum := sha256.Sum256(c.Repr())
	c.hash = sum[:]
	return c.hash
}

// BeginParse returns a Slice snapshotting this cell's data and children for
// reading. The snapshot is independent of later mutation of the cell.
func (c *Cell) BeginParse() *Slice {
	data := c.data.Bytes()
	buf := make([]byte, len(data))
	copy(buf, data)

	refs := make([]*Slice, len(c.refs))
	for i, r := range c.refs {
		refs[i] = r.BeginParse()
	}

	return &Slice{
		buf:    buf,
		bitLen: c.BitsSize(),
		refs:   refs,
	}
}

// Dump returns a recursive, human-readable hex dump of the cell tree.
func (c *Cell) Dump() string { return c.dump(0, false) }

// DumpBits is Dump, but rendering the cell's own data bits in binary.
func (c *Cell) DumpBits() string { return c.dump(0, true) }

func (c *Cell) dump(depth int, bin bool) string {
	n := c.BitsSize()
	data := c.data.Bytes()

	var val string
	if bin {
		for _, by := range data {
			val += fmt.Sprintf("%08b", by)
		}
		if n%8 != 0 {
			val = val[:n]
		}
	} else {
		val = strings.ToUpper(hex.EncodeToString(data))
	}

	str := strings.Repeat("  ", depth) + fmt.Sprint(n) + "[" + val + "]"
	if len(c.refs) == 0 {
		return str
	}
	str += " -> {"
	for i, r := range c.refs {
		str += "\n" + r.dump(depth+1, bin)
		if i == len(c.refs)-1 {
			str += "\n"
		} else {
			str += ","
		}
	}
	return str + strings.Repeat("  ", depth) + "}"
}
