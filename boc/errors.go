package boc

import "errors"

// Failure kinds for the BoC envelope codec.
var (
	// ErrBadMagic is returned when the input starts with none of the
	// three recognized magic prefixes.
	ErrBadMagic = errors.New("boc: unrecognized magic prefix")

	// ErrMalformed is returned for structurally invalid input: too few
	// bytes for a declared field, a bad top-upped sentinel, more than 4
	// refs on a cell, or any other decode-time inconsistency.
	ErrMalformed = errors.New("boc: malformed input")

	// ErrCRCMismatch is returned when the trailing CRC32-C does not match
	// the recomputed checksum of the preceding bytes.
	ErrCRCMismatch = errors.New("boc: CRC32-C mismatch")

	// ErrForwardRef is returned when a cell's reference index does not
	// point strictly forward in the cell list.
	ErrForwardRef = errors.New("boc: reference does not point forward")

	// ErrTrailingBytes is returned when bytes remain in the input after a
	// complete envelope (and its optional CRC trailer) have been parsed.
	ErrTrailingBytes = errors.New("boc: unexpected trailing bytes")

	// ErrNoRoots is returned when Serialize is asked to encode zero root
	// cells.
	ErrNoRoots = errors.New("boc: no root cells given")
)
