package draw

import (
	"bytes"
	"testing"
)

func TestDecodeRLEScenario(t *testing.T) {
	// §8 scenario 5.
	in := []byte{0x02, 0x7F, 0x81, 0xAB, 0xCD}
	want := []byte{0x7F, 0x7F, 0x7F, 0xAB, 0xCD}
	got := decodeRLE(in, len(want))
	if !bytes.Equal(got, want) {
		t.Errorf("decodeRLE() = %v, want %v", got, want)
	}
}

func TestRLERoundtrip(t *testing.T) {
	tests := [][]byte{
		{},
		{1},
		{1, 1, 1, 1, 1},
		{1, 2, 3, 4, 5},
		bytes.Repeat([]byte{0xAB}, 300),
		append([]byte{1, 2, 3}, bytes.Repeat([]byte{9}, 10)...),
	}
	for _, src := range tests {
		enc := encodeRLE(src)
		got := decodeRLE(enc, len(src))
		if !bytes.Equal(got, src) {
			t.Errorf("roundtrip(%v): got %v", src, got)
		}
	}
}
