package cell

import "errors"

// Failure kinds surfaced by the cell/slice data model.
var (
	// ErrTooManyRefs is returned when a fifth child reference is pushed
	// onto a cell.
	ErrTooManyRefs = errors.New("cell: cannot hold more than 4 references")

	// ErrDataTooLarge is returned when a write would exceed a cell's
	// 1023-bit data capacity.
	ErrDataTooLarge = errors.New("cell: data exceeds 1023 bits")

	// ErrSliceUnderflow is returned when a Slice read runs past the end
	// of its bit buffer.
	ErrSliceUnderflow = errors.New("cell: slice read past end of data")

	// ErrNoMoreRefs is returned when LoadRef is called with no
	// unconsumed child slices left.
	ErrNoMoreRefs = errors.New("cell: no more references")

	// ErrUnsupportedAddress is returned for address tags this codec does
	// not interpret (anycast, or any tag other than addr_none/addr_std).
	ErrUnsupportedAddress = errors.New("cell: unsupported address encoding")
)
