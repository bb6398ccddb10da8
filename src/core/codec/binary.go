package codec

import (
	"strconv"
	"strings"
)

// DefaultBits is the token width used when a caller passes a non-positive width.
const DefaultBits = 8

// EncodeBinary formats every rune of the trimmed text as an unsigned base-2
// number left-padded with zeros to bits digits, joined by single spaces.
//
// Code points that need more than bits digits are written in full; they are
// never truncated.
func EncodeBinary(text string, bits int) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	if bits <= 0 {
		bits = DefaultBits
	}

	var b strings.Builder
	b.Grow(len(text) * (bits + 1))
	for i, r := range []rune(text) {
		if i > 0 {
			b.WriteByte(' ')
		}
		digits := strconv.FormatUint(uint64(r), 2)
		for pad := bits - len(digits); pad > 0; pad-- {
			b.WriteByte('0')
		}
		b.WriteString(digits)
	}
	return b.String()
}
