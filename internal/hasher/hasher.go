package hasher

import (
	"encoding/binary"
	"encoding/hex"
	"io"

	"github.com/cespare/xxhash/v2"
)

// HashLen is the hex length of every hash this package produces:
// 16 chars covers the full 64-bit digest.
const HashLen = 16

// ContentHash computes the xxHash64 of data as a 16-char hex string.
// The build manifest records it so consumers can verify icon files
// without re-reading pixel data.
func ContentHash(data []byte) string {
	return formatHash(xxhash.Sum64(data))
}

// ContentHashReader computes the same hash from a reader, streaming.
func ContentHashReader(r io.Reader) (string, error) {
	h := xxhash.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return formatHash(h.Sum64()), nil
}

func formatHash(v uint64) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return hex.EncodeToString(b[:])
}
