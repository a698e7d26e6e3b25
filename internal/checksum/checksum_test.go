package checksum

import (
	"hash/adler32"
	"hash/crc32"
	"testing"
)

// patterned returns deterministic non-trivial data of length n.
func patterned(n int) []byte {
	p := make([]byte, n)
	for i := range p {
		p[i] = byte(i*251 + (i>>3)*113)
	}
	return p
}

func TestCRC32_KnownVectors(t *testing.T) {
	cases := []struct {
		in   string
		want uint32
	}{
		{"", 0x00000000},
		{"123456789", 0xCBF43926}, // classic check value
		{"IEND", 0xAE426082},      // CRC of the empty IEND chunk
		{"a", 0xE8B7BE43},
	}
	for _, c := range cases {
		if got := CRC32([]byte(c.in)); got != c.want {
			t.Errorf("CRC32(%q) = %08x, want %08x", c.in, got, c.want)
		}
	}
}

func TestCRC32_MatchesStdlib(t *testing.T) {
	for _, n := range []int{0, 1, 2, 255, 256, 257, 4096, 65536} {
		data := patterned(n)
		got := CRC32(data)
		want := crc32.ChecksumIEEE(data)
		if got != want {
			t.Fatalf("n=%d: CRC32 = %08x, stdlib = %08x", n, got, want)
		}
	}
}

func TestCRC32_UpdateChaining(t *testing.T) {
	data := patterned(10000)
	for _, split := range []int{0, 1, 9, 4096, 9999, 10000} {
		got := Update(Update(0, data[:split]), data[split:])
		if want := CRC32(data); got != want {
			t.Errorf("split=%d: chained = %08x, whole = %08x", split, got, want)
		}
	}
}

func TestAdler32_KnownVectors(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
		want uint32
	}{
		{"empty", nil, 0x00000001},
		{"single zero byte", []byte{0}, 0x00010001},
		{"wikipedia", []byte("Wikipedia"), 0x11E60398},
	}
	for _, c := range cases {
		if got := Adler32(c.in); got != c.want {
			t.Errorf("%s: Adler32 = %08x, want %08x", c.name, got, c.want)
		}
	}
}

func TestAdler32_MatchesStdlib(t *testing.T) {
	// Sizes straddle the deferred-modulo batch boundary (5552).
	for _, n := range []int{0, 1, 5551, 5552, 5553, 11104, 65536, 200000} {
		data := patterned(n)
		got := Adler32(data)
		want := adler32.Checksum(data)
		if got != want {
			t.Fatalf("n=%d: Adler32 = %08x, stdlib = %08x", n, got, want)
		}
	}
}

func TestAdler32_AllMaxBytes(t *testing.T) {
	// Worst case for overflow: every byte 0xFF across many batches.
	data := make([]byte, 3*adlerNMax+17)
	for i := range data {
		data[i] = 0xFF
	}
	got := Adler32(data)
	want := adler32.Checksum(data)
	if got != want {
		t.Fatalf("Adler32 = %08x, stdlib = %08x", got, want)
	}
}

func BenchmarkCRC32_64K(b *testing.B) {
	data := patterned(64 * 1024)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = CRC32(data)
	}
}

func BenchmarkAdler32_64K(b *testing.B) {
	data := patterned(64 * 1024)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Adler32(data)
	}
}
