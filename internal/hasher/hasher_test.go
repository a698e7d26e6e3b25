package hasher

import (
	"bytes"
	"strings"
	"testing"
)

func TestContentHash(t *testing.T) {
	data := []byte("xicon test payload")
	h := ContentHash(data)
	if len(h) != HashLen {
		t.Errorf("hash length: got %d, want %d", len(h), HashLen)
	}
	if h != ContentHash(data) {
		t.Error("hash not deterministic")
	}
	if h == ContentHash([]byte("xicon test payloaD")) {
		t.Error("different content produced the same hash")
	}
	for _, c := range h {
		if !strings.ContainsRune("0123456789abcdef", c) {
			t.Fatalf("non-hex char %q in %q", c, h)
		}
	}
}

func TestContentHashReader(t *testing.T) {
	// Big enough to exercise multiple io.Copy chunks.
	data := bytes.Repeat([]byte{0xA7, 0x14, 0x3C}, 40000)
	want := ContentHash(data)

	got, err := ContentHashReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reader hash: %v", err)
	}
	if got != want {
		t.Errorf("reader hash: got %s, want %s", got, want)
	}
}
