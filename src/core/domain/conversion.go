package domain

import "strings"

// Conversion is the result of encoding one input text. It lives for a
// single request and is never stored.
type Conversion struct {
	// Input is the caller's text with surrounding whitespace removed.
	Input string

	// Binary is the space-separated binary encoding of Input.
	Binary string

	// Bits is the token width Binary was rendered with.
	Bits int

	// Morse is the space-separated Morse encoding of Input.
	Morse string

	// Dropped counts runes of Input that have no Morse symbol.
	Dropped int
}

// NormalizeInput trims text and reports ErrEmptyInput when nothing is left.
func NormalizeInput(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", NewEmptyInputError("text")
	}
	return trimmed, nil
}

// Runes returns the number of characters in Input.
func (c *Conversion) Runes() int {
	return len([]rune(c.Input))
}
