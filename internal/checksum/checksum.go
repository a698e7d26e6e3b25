// Package checksum implements the two checksums PNG needs: CRC-32 for
// chunk framing and Adler-32 for the zlib trailer.  Both are written
// out here rather than pulled from hash/crc32 and hash/adler32 so the
// whole output path of the encoder is self-contained; the stdlib
// implementations serve as reference oracles in the tests.
//
// All functions are pure and safe for concurrent use.
package checksum

// crcTable is the byte-indexed table for the reflected IEEE polynomial
// 0xEDB88320, built once at init.  1 KB.
var crcTable [256]uint32

func init() {
	for i := range crcTable {
		c := uint32(i)
		for k := 0; k < 8; k++ {
			if c&1 == 1 {
				c = 0xEDB88320 ^ (c >> 1)
			} else {
				c >>= 1
			}
		}
		crcTable[i] = c
	}
}

// CRC32 returns the IEEE CRC-32 of p.  CRC32(nil) == 0.
func CRC32(p []byte) uint32 {
	return Update(0, p)
}

// Update extends crc with the bytes of p.  Chaining matches hash/crc32:
// Update(Update(0, a), b) == CRC32(a+b).  The pre- and post-inversion
// (init 0xFFFFFFFF, final XOR) happen inside, so callers only ever see
// finalized values.
func Update(crc uint32, p []byte) uint32 {
	c := ^crc
	for _, b := range p {
		c = crcTable[byte(c)^b] ^ (c >> 8)
	}
	return ^c
}

const (
	// adlerMod is the largest prime below 2^16.
	adlerMod = 65521
	// adlerNMax is the largest n such that 255*n*(n+1)/2 + (n+1)*(adlerMod-1)
	// fits in 32 bits, letting the inner loop defer the modulo.
	adlerNMax = 5552
)

// Adler32 returns the Adler-32 checksum of p: two running sums a and b
// mod 65521, packed as b<<16 | a.  Adler32(nil) == 1.
func Adler32(p []byte) uint32 {
	a, b := uint32(1), uint32(0)
	for len(p) > 0 {
		n := len(p)
		if n > adlerNMax {
			n = adlerNMax
		}
		for _, c := range p[:n] {
			a += uint32(c)
			b += a
		}
		a %= adlerMod
		b %= adlerMod
		p = p[n:]
	}
	return b<<16 | a
}
