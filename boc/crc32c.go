package boc

import (
	"encoding/binary"
	"hash/crc32"
)

var castagnoliTable = crc32.MakeTable(crc32.Castagnoli)

// crc32c returns the reflected Castagnoli CRC32 of data (initial 0xFFFFFFFF,
// final XOR 0xFFFFFFFF — exactly what crc32.Checksum computes against
// castagnoliTable).
func crc32c(data []byte) uint32 {
	return crc32.Checksum(data, castagnoliTable)
}

// appendCRC32C appends the little-endian CRC32-C trailer of data to data.
func appendCRC32C(data []byte) []byte {
	var trailer [4]byte
	binary.LittleEndian.PutUint32(trailer[:], crc32c(data))
	return append(data, trailer[:]...)
}
