package boc

import (
	"encoding/binary"
	"fmt"

	"github.com/tonkit-dev/tonkit/cell"
	"github.com/tonkit-dev/tonkit/internal/bits"
)

// byteReader is a minimal forward-only cursor over a byte slice, used to
// parse the (always byte-aligned) envelope header and cell table.
type byteReader struct {
	buf []byte
	pos int
}

func (r *byteReader) take(n int) ([]byte, error) {
	if n < 0 || r.pos+n > len(r.buf) {
		return nil, fmt.Errorf("boc: %w: need %d bytes at offset %d, have %d", ErrMalformed, n, r.pos, len(r.buf))
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *byteReader) takeUint(n int) (uint64, error) {
	b, err := r.take(n)
	if err != nil {
		return 0, err
	}
	var v uint64
	for _, by := range b {
		v = v<<8 | uint64(by)
	}
	return v, nil
}

// Deserialize parses a BoC byte stream and returns its root cells.
func Deserialize(data []byte) ([]*cell.Cell, error) {
	r := &byteReader{buf: data}

	h, err := parseHeader(r)
	if err != nil {
		return nil, err
	}

	cellData, err := r.take(h.fullSize)
	if err != nil {
		return nil, fmt.Errorf("boc: %w: cell data section: %v", ErrMalformed, err)
	}

	raw, err := parseCells(cellData, h)
	if err != nil {
		return nil, err
	}

	if h.hasCRC32C {
		trailer, err := r.take(4)
		if err != nil {
			return nil, fmt.Errorf("boc: %w: missing CRC32C trailer", ErrMalformed)
		}
		want := binary.LittleEndian.Uint32(trailer)
		got := crc32c(data[:r.pos-4])
		if want != got {
			return nil, ErrCRCMismatch
		}
	}

	if r.pos != len(data) {
		return nil, ErrTrailingBytes
	}

	cells, err := resolveRefs(raw)
	if err != nil {
		return nil, err
	}

	roots := make([]*cell.Cell, len(h.rootIdx))
	for i, idx := range h.rootIdx {
		if idx < 0 || idx >= len(cells) {
			return nil, fmt.Errorf("boc: %w: root index %d out of range", ErrMalformed, idx)
		}
		roots[i] = cells[idx]
	}
	return roots, nil
}

func parseHeader(r *byteReader) (*header, error) {
	magic, err := r.take(4)
	if err != nil {
		return nil, err
	}

	h := &header{}
	switch {
	case matches(magic, magicStandard):
		flagsByte, err := r.take(1)
		if err != nil {
			return nil, err
		}
		fb := flagsByte[0]
		h.hasIdx = fb&0x80 != 0
		h.hasCRC32C = fb&0x40 != 0
		h.hasCacheBits = fb&0x20 != 0
		h.flags = (fb >> 3) & 0x3
		h.sizeBytes = int(fb & 0x7)
	case matches(magic, magicLean):
		h.hasIdx = true
		sb, err := r.take(1)
		if err != nil {
			return nil, err
		}
		h.sizeBytes = int(sb[0])
	case matches(magic, magicLeanCRC):
		h.hasIdx = true
		h.hasCRC32C = true
		sb, err := r.take(1)
		if err != nil {
			return nil, err
		}
		h.sizeBytes = int(sb[0])
	default:
		return nil, ErrBadMagic
	}

	if h.sizeBytes <= 0 {
		return nil, fmt.Errorf("boc: %w: invalid size_bytes %d", ErrMalformed, h.sizeBytes)
	}

	offsetBytes, err := r.takeUint(1)
	if err != nil {
		return nil, err
	}
	h.offsetBytes = int(offsetBytes)
	if h.offsetBytes <= 0 {
		return nil, fmt.Errorf("boc: %w: invalid offset_bytes", ErrMalformed)
	}

	cellsNum, err := r.takeUint(h.sizeBytes)
	if err != nil {
		return nil, err
	}
	h.cellsNum = int(cellsNum)

	rootsNum, err := r.takeUint(h.sizeBytes)
	if err != nil {
		return nil, err
	}
	h.rootsNum = int(rootsNum)

	absentNum, err := r.takeUint(h.sizeBytes)
	if err != nil {
		return nil, err
	}
	h.absentNum = int(absentNum)

	fullSize, err := r.takeUint(h.offsetBytes)
	if err != nil {
		return nil, err
	}
	h.fullSize = int(fullSize)

	// Every root index takes sizeBytes bytes and every cell at least its two
	// descriptor bytes, so larger declared counts cannot fit the input.
	remaining := len(r.buf) - r.pos
	if h.rootsNum < 0 || h.rootsNum > remaining/h.sizeBytes || h.cellsNum < 0 || h.cellsNum > remaining/2 {
		return nil, fmt.Errorf("boc: %w: declared cell or root count exceeds input size", ErrMalformed)
	}

	h.rootIdx = make([]int, h.rootsNum)
	for i := range h.rootIdx {
		idx, err := r.takeUint(h.sizeBytes)
		if err != nil {
			return nil, err
		}
		h.rootIdx[i] = int(idx)
	}

	if h.hasIdx {
		if _, err := r.take(h.cellsNum * h.offsetBytes); err != nil {
			return nil, fmt.Errorf("boc: %w: offset index: %v", ErrMalformed, err)
		}
	}

	return h, nil
}

func matches(got []byte, want [4]byte) bool {
	return got[0] == want[0] && got[1] == want[1] && got[2] == want[2] && got[3] == want[3]
}

// rawCell holds a cell's decoded bit content and its still-unresolved,
// transient reference indices, before the forward-reference resolution
// pass turns them into owned *cell.Cell pointers.
type rawCell struct {
	data   *bits.BitString
	exotic bool
	refIdx []int
}

func parseCells(data []byte, h *header) ([]rawCell, error) {
	raw := make([]rawCell, h.cellsNum)
	r := &byteReader{buf: data}

	for i := 0; i < h.cellsNum; i++ {
		desc, err := r.take(2)
		if err != nil {
			return nil, fmt.Errorf("boc: %w: cell %d descriptors: %v", ErrMalformed, i, err)
		}
		d1, d2 := desc[0], desc[1]
		refCount := int(d1 & 7)
		if refCount > cell.MaxRefs {
			return nil, fmt.Errorf("boc: %w: cell %d has %d refs", ErrMalformed, i, refCount)
		}
		exotic := d1&8 != 0

		dataBytes := (int(d2) + 1) / 2
		fullyFilled := d2&1 == 0

		body, err := r.take(dataBytes)
		if err != nil {
			return nil, fmt.Errorf("boc: %w: cell %d body: %v", ErrMalformed, i, err)
		}
		bs, err := bits.SetTopUppedArray(body, fullyFilled)
		if err != nil {
			return nil, fmt.Errorf("boc: %w: cell %d: %v", ErrMalformed, i, err)
		}

		refIdx := make([]int, refCount)
		for j := 0; j < refCount; j++ {
			idx, err := r.takeUint(h.sizeBytes)
			if err != nil {
				return nil, fmt.Errorf("boc: %w: cell %d ref %d: %v", ErrMalformed, i, j, err)
			}
			refIdx[j] = int(idx)
		}

		raw[i] = rawCell{data: bs, exotic: exotic, refIdx: refIdx}
	}

	if r.pos != len(data) {
		return nil, ErrTrailingBytes
	}
	return raw, nil
}

// resolveRefs walks raw cells in reverse order (highest index first), so
// every reference index it needs (which must point forward, to a higher
// index) has already been resolved into a *cell.Cell.
func resolveRefs(raw []rawCell) ([]*cell.Cell, error) {
	n := len(raw)
	cells := make([]*cell.Cell, n)
	for i := n - 1; i >= 0; i-- {
		c := cell.FromBits(raw[i].data, raw[i].exotic)
		for _, r := range raw[i].refIdx {
			if r <= i {
				return nil, fmt.Errorf("boc: %w: cell %d references %d", ErrForwardRef, i, r)
			}
			if r >= n {
				return nil, fmt.Errorf("boc: %w: cell %d references out-of-range %d", ErrMalformed, i, r)
			}
			if err := c.AddRef(cells[r]); err != nil {
				return nil, fmt.Errorf("boc: %w: cell %d: %v", ErrMalformed, i, err)
			}
		}
		cells[i] = c
	}
	return cells, nil
}
