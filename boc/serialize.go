package boc

import (
	mathbits "math/bits"

	"github.com/tonkit-dev/tonkit/cell"
	"github.com/tonkit-dev/tonkit/internal/bits"
)

// Options controls how Serialize/SerializeRoots build the envelope.
type Options struct {
	// HasIdx requests the optional per-cell offset index.
	HasIdx bool
	// HasCRC32C requests the CRC32-C trailer.
	HasCRC32C bool
}

// Serialize encodes a single root cell as a BoC byte stream.
func Serialize(root *cell.Cell, opts Options) ([]byte, error) {
	return SerializeRoots([]*cell.Cell{root}, opts)
}

// SerializeRoots encodes one or more root cells as a single BoC byte
// stream. The envelope format admits multiple roots even though most
// callers only ever need one.
func SerializeRoots(roots []*cell.Cell, opts Options) ([]byte, error) {
	if len(roots) == 0 {
		return nil, ErrNoRoots
	}

	order, indexOf := treeWalk(roots)
	cellsNum := len(order)
	sBytes := sizeBytesForCellsNum(cellsNum)

	bodies := make([][]byte, cellsNum)
	for i, c := range order {
		bodies[i] = serializeCellForBoc(c, sBytes, indexOf)
	}

	offsets := make([]int, cellsNum)
	running := 0
	for i, b := range bodies {
		offsets[i] = running
		running += len(b)
	}
	fullSize := running

	offsetBytes := offsetBytesForSize(fullSize)

	rootIdx := make([]int, len(roots))
	for i, r := range roots {
		rootIdx[i] = indexOf[string(r.Hash())]
	}

	headerBits := 32 + 3 + 2 + 3 + 8 +
		sBytes*8 + sBytes*8 + sBytes*8 +
		offsetBytes*8 +
		len(roots)*sBytes*8
	if opts.HasIdx {
		headerBits += cellsNum * offsetBytes * 8
	}

	hb := bits.New(headerBits)
	if err := hb.WriteBytes(magicStandard[:]); err != nil {
		return nil, err
	}
	if err := hb.WriteBit(opts.HasIdx); err != nil {
		return nil, err
	}
	if err := hb.WriteBit(opts.HasCRC32C); err != nil {
		return nil, err
	}
	if err := hb.WriteBit(false); err != nil { // has_cache_bits: always off
		return nil, err
	}
	if err := hb.WriteUint64(0, 2); err != nil { // reserved flags
		return nil, err
	}
	if err := hb.WriteUint64(uint64(sBytes), 3); err != nil {
		return nil, err
	}
	if err := hb.WriteUint64(uint64(offsetBytes), 8); err != nil {
		return nil, err
	}
	if err := hb.WriteUint64(uint64(cellsNum), sBytes*8); err != nil {
		return nil, err
	}
	if err := hb.WriteUint64(uint64(len(roots)), sBytes*8); err != nil {
		return nil, err
	}
	if err := hb.WriteUint64(0, sBytes*8); err != nil { // absent_num
		return nil, err
	}
	if err := hb.WriteUint64(uint64(fullSize), offsetBytes*8); err != nil {
		return nil, err
	}
	for _, ri := range rootIdx {
		if err := hb.WriteUint64(uint64(ri), sBytes*8); err != nil {
			return nil, err
		}
	}
	if opts.HasIdx {
		for _, off := range offsets {
			if err := hb.WriteUint64(uint64(off), offsetBytes*8); err != nil {
				return nil, err
			}
		}
	}

	out := hb.TopUppedBytes()
	for _, b := range bodies {
		out = append(out, b...)
	}
	if opts.HasCRC32C {
		out = appendCRC32C(out)
	}
	return out, nil
}

// serializeCellForBoc returns DataWithDescriptors() followed by each child's
// index in the topological order, encoded as sBytes-byte big-endian
// integers.
func serializeCellForBoc(c *cell.Cell, sBytes int, indexOf map[string]int) []byte {
	out := c.DataWithDescriptors()
	for _, r := range c.Refs() {
		out = append(out, dynamicIntBytes(uint64(indexOf[string(r.Hash())]), sBytes)...)
	}
	return out
}

// dynamicIntBytes returns val as a width-byte big-endian integer.
func dynamicIntBytes(val uint64, width int) []byte {
	out := make([]byte, 8)
	for i := 7; i >= 0; i-- {
		out[i] = byte(val)
		val >>= 8
	}
	return out[8-width:]
}

func bitLen(n int) int {
	if n <= 0 {
		return 0
	}
	return mathbits.Len(uint(n))
}

// sizeBytesForCellsNum computes s_bytes = min(ceil(bits(cellsNum)/8), 1).
// This literal formula is preserved from the reference implementation's
// documented behavior: since cellsNum is always >= 1 (a root cell always
// exists), ceil(bits(cellsNum)/8) is always >= 1, so this is always exactly
// 1. See DESIGN.md for the rationale for preserving rather than "fixing"
// this with max(..., 1).
func sizeBytesForCellsNum(cellsNum int) int {
	sb := (bitLen(cellsNum) + 7) / 8
	if sb > 1 {
		sb = 1
	}
	return sb
}

// offsetBytesForSize computes offset_bytes = max(ceil(bits(n)/8), 1).
func offsetBytesForSize(n int) int {
	sb := (bitLen(n) + 7) / 8
	if sb < 1 {
		sb = 1
	}
	return sb
}

// treeWalk performs the hash-keyed depth-first walk of §4.4 step 1: cells
// are visited in the order first reached, but whenever a reference points
// to an already-visited cell that sits before the referencing cell's own
// position, the referenced cell (and everything reachable from it) is
// relocated to the end of the order so every reference in the final order
// points strictly forward.
func treeWalk(roots []*cell.Cell) ([]*cell.Cell, map[string]int) {
	var order []*cell.Cell
	indexOf := map[string]int{}

	var visit func(c *cell.Cell)
	visit = func(c *cell.Cell) {
		h := string(c.Hash())
		if _, ok := indexOf[h]; ok {
			return
		}
		idx := len(order)
		order = append(order, c)
		indexOf[h] = idx

		for _, r := range c.Refs() {
			rh := string(r.Hash())
			if ridx, ok := indexOf[rh]; ok {
				if indexOf[h] > ridx {
					relocateToEnd(&order, indexOf, ridx)
				}
				continue
			}
			visit(r)
		}
	}

	for _, root := range roots {
		visit(root)
	}
	return order, indexOf
}

// relocateToEnd removes the cell at oldIdx from order, appends it (and,
// recursively, every already-visited descendant of it) to the end, and
// keeps indexOf consistent throughout.
func relocateToEnd(order *[]*cell.Cell, indexOf map[string]int, oldIdx int) {
	c := (*order)[oldIdx]

	*order = append((*order)[:oldIdx], (*order)[oldIdx+1:]...)
	for h, i := range indexOf {
		if i > oldIdx {
			indexOf[h] = i - 1
		}
	}

	newIdx := len(*order)
	*order = append(*order, c)
	indexOf[string(c.Hash())] = newIdx

	for _, r := range c.Refs() {
		if ridx, ok := indexOf[string(r.Hash())]; ok {
			relocateToEnd(order, indexOf, ridx)
		}
	}
}
