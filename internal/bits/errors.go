package bits

import "errors"

// Failure kinds for BitString operations, per the codec's error taxonomy.
var (
	// ErrCapacity is returned when a write would advance the cursor past
	// the buffer's declared capacity.
	ErrCapacity = errors.New("bits: capacity exceeded")

	// ErrValueRange is returned when a value does not fit the requested
	// bit width (write_uint/write_int) or falls outside a width's
	// supported domain (write_int with width 1).
	ErrValueRange = errors.New("bits: value out of range for width")

	// ErrSentinelNotFound is returned by SetTopUppedArray when the
	// trailing-one sentinel cannot be located within the last 7 bits.
	ErrSentinelNotFound = errors.New("bits: top-upped sentinel not found")
)
