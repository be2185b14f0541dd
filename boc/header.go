// Package boc implements the Bag-of-Cells envelope codec: the serializer
// that flattens a cell DAG into a topologically ordered, indexed,
// optionally CRC32-C-protected byte stream, and the matching deserializer.
package boc

// Magic prefixes recognized by the deserializer. magicStandard is the only
// form Serialize produces; the other two are accepted for compatibility
// with the reference tooling's "lean" variants.
var (
	magicStandard = [4]byte{0xB5, 0xEE, 0x9C, 0x72}
	magicLean     = [4]byte{0x68, 0xFF, 0x65, 0xF3}
	magicLeanCRC  = [4]byte{0xAC, 0xC3, 0xA7, 0x28}
)

// header carries the fields of a parsed (or about-to-be-written) BoC
// envelope header, per §4.4/§4.5 of the wire format.
type header struct {
	hasIdx       bool
	hasCRC32C    bool
	hasCacheBits bool
	flags        byte // 2-bit reserved field
	sizeBytes    int  // s_bytes: width of cell-count-domain integers
	offsetBytes  int  // width of the total-size-domain integers
	cellsNum     int
	rootsNum     int
	absentNum    int
	fullSize     int
	rootIdx      []int
}
