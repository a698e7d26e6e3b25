package pngenc

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/Nishu0/xicon-cli/internal/checksum"
)

// ErrInvalidChunkType reports a chunk type that is not exactly four
// ASCII bytes.
var ErrInvalidChunkType = errors.New("pngenc: chunk type must be 4 ASCII bytes")

// MakeChunk frames one chunk: big-endian payload length, the 4-byte
// type, the payload, and a CRC-32 over type+payload.  A nil payload is
// a valid zero-length chunk (IEND).
func MakeChunk(typ string, data []byte) ([]byte, error) {
	if !validChunkType(typ) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidChunkType, typ)
	}
	out := make([]byte, 0, 12+len(data))
	out = binary.BigEndian.AppendUint32(out, uint32(len(data)))
	out = append(out, typ...)
	out = append(out, data...)
	// The CRC input (type+payload) is already contiguous in out.
	return binary.BigEndian.AppendUint32(out, checksum.CRC32(out[4:])), nil
}

func validChunkType(typ string) bool {
	if len(typ) != 4 {
		return false
	}
	for i := 0; i < 4; i++ {
		if typ[i] >= 0x80 {
			return false
		}
	}
	return true
}

// Chunk is one parsed chunk as it appears in the file.
type Chunk struct {
	Type string
	Data []byte
	CRC  uint32 // stored value, not recomputed
}

// ComputedCRC recomputes the checksum over type+data; compare against
// CRC to detect corruption.
func (c Chunk) ComputedCRC() uint32 {
	return checksum.Update(checksum.CRC32([]byte(c.Type)), c.Data)
}

// ParseChunks walks the chunk sequence of a PNG file.  Chunks parsed
// before an error are returned alongside it, so a truncated file still
// yields its leading chunks.  Data slices alias b.
func ParseChunks(b []byte) ([]Chunk, error) {
	if !HasSignature(b) {
		return nil, errors.New("pngenc: missing PNG signature")
	}
	rest := b[8:]
	var chunks []Chunk
	for len(rest) > 0 {
		if len(rest) < 8 {
			return chunks, fmt.Errorf("pngenc: %d stray bytes after chunk %d", len(rest), len(chunks))
		}
		length := binary.BigEndian.Uint32(rest[:4])
		if uint64(len(rest)) < 12+uint64(length) {
			return chunks, fmt.Errorf("pngenc: chunk %d (%q) truncated: need %d bytes, have %d",
				len(chunks), string(rest[4:8]), 12+length, len(rest))
		}
		chunks = append(chunks, Chunk{
			Type: string(rest[4:8]),
			Data: rest[8 : 8+length],
			CRC:  binary.BigEndian.Uint32(rest[8+length : 12+length]),
		})
		rest = rest[12+length:]
	}
	return chunks, nil
}
