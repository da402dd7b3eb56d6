package termbox

import "testing"

func TestUTF8EncodeDecodeRoundTrip(t *testing.T) {
	scalars := []rune{
		0, 1, 0x20, 0x7F,
		0x80, 0x7FF,
		0x800, 0xFFFF,
		0x10000, 0x1FFFFF,
		0x200000, 0x3FFFFFF,
		0x4000000, 0x7FFFFFFF,
		'A', '日', '🙂',
	}

	for _, c := range scalars {
		enc := encodeUTF8(c)
		length := utf8SeqLength(enc[0])
		if length != len(enc) {
			t.Errorf("scalar %#x: utf8SeqLength(lead)=%d, encodeUTF8 produced %d bytes", c, length, len(enc))
			continue
		}
		got := decodeUTF8(enc)
		if rune(uint32(got)) != rune(uint32(c)) {
			t.Errorf("round trip for %#x: got %#x", c, got)
		}
	}
}

func TestUTF8EncodedLengths(t *testing.T) {
	cases := []struct {
		c    rune
		want int
	}{
		{0x00, 1},
		{0x7F, 1},
		{0x80, 2},
		{0x7FF, 2},
		{0x800, 3},
		{0xFFFF, 3},
		{0x10000, 4},
		{0x1FFFFF, 4},
		{0x200000, 5},
		{0x3FFFFFF, 5},
		{0x4000000, 6},
		{0x7FFFFFFF, 6},
	}
	for _, tc := range cases {
		enc := encodeUTF8(tc.c)
		if len(enc) != tc.want {
			t.Errorf("encodeUTF8(%#x) length = %d, want %d", tc.c, len(enc), tc.want)
		}
	}
}
