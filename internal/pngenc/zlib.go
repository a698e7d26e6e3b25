package pngenc

import (
	"encoding/binary"

	"github.com/Nishu0/xicon-cli/internal/checksum"
)

// maxStoredBlock is the stored-block payload limit: LEN is 16 bits.
const maxStoredBlock = 65535

// zlibOverhead returns the container bytes wrapped around n payload
// bytes: 2-byte header, 5 bytes per stored block, 4-byte trailer.
func zlibOverhead(n int) int {
	nblocks := (n + maxStoredBlock - 1) / maxStoredBlock
	if nblocks == 0 {
		nblocks = 1 // empty input still carries one final block
	}
	return 2 + 5*nblocks + 4
}

// DeflateStored wraps data in a zlib stream of stored (BTYPE=00)
// deflate blocks.  Any inflate implementation decodes it back to data.
// Block layout: 1 control byte (BFINAL on the last), little-endian
// LEN, little-endian ^LEN, then LEN raw bytes.  The trailer is the
// big-endian Adler-32 of the whole uncompressed input.
func DeflateStored(data []byte) []byte {
	out := make([]byte, 0, len(data)+zlibOverhead(len(data)))

	// CMF/FLG: deflate with 32 KB window, check bits, no preset dict.
	out = append(out, 0x78, 0x01)

	rest := data
	for {
		block := rest
		if len(block) > maxStoredBlock {
			block = block[:maxStoredBlock]
		}
		rest = rest[len(block):]

		var hdr [5]byte
		if len(rest) == 0 {
			hdr[0] = 1 // BFINAL
		}
		binary.LittleEndian.PutUint16(hdr[1:3], uint16(len(block)))
		binary.LittleEndian.PutUint16(hdr[3:5], ^uint16(len(block)))
		out = append(out, hdr[:]...)
		out = append(out, block...)

		if len(rest) == 0 {
			break
		}
	}

	return binary.BigEndian.AppendUint32(out, checksum.Adler32(data))
}
