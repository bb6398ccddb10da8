package codec

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// morseTable maps an uppercase character to its Morse code. It is filled at
// package init and only read afterwards.
var morseTable = map[rune]string{
	'A': ".-", 'B': "-...", 'C': "-.-.", 'D': "-..", 'E': ".", 'F': "..-.",
	'G': "--.", 'H': "....", 'I': "..", 'J': ".---", 'K': "-.-", 'L': ".-..",
	'M': "--", 'N': "-.", 'O': "---", 'P': ".--.", 'Q': "--.-", 'R': ".-.",
	'S': "...", 'T': "-", 'U': "..-", 'V': "...-", 'W': ".--", 'X': "-..-",
	'Y': "-.--", 'Z': "--..",

	'0': "-----", '1': ".----", '2': "..---", '3': "...--", '4': "....-",
	'5': ".....", '6': "-....", '7': "--...", '8': "---..", '9': "----.",

	' ': "/",

	',': "--..--", '.': ".-.-.-", '?': "..--..", '\'': ".----.", '!': "-.-.--",
	'/': "-..-.", '(': "-.--.", ')': "-.--.-", '&': ".-...", ':': "---...",
	';': "-.-.-.", '=': "-...-", '+': ".-.-.", '-': "-....-", '_': "..--.-",
	'"': ".-..-.", '$': "...-..-", '@': ".--.-.",
}

// MorseSymbol returns the Morse code for r. Lowercase letters are not folded;
// callers pass uppercase runes.
func MorseSymbol(r rune) (string, bool) {
	sym, ok := morseTable[r]
	return sym, ok
}

// EncodeMorse uppercases the trimmed text and joins the Morse code of every
// known rune with single spaces. Unknown runes are skipped.
func EncodeMorse(text string) string {
	syms, _ := morseSymbols(text)
	return strings.Join(syms, " ")
}

// EncodeMorseCount is EncodeMorse that also reports how many runes were
// skipped because the table has no entry for them.
func EncodeMorseCount(text string) (string, int) {
	syms, dropped := morseSymbols(text)
	return strings.Join(syms, " "), dropped
}

// upper applies full Unicode case mapping, so one rune may expand to several
// (ß becomes SS). A Caser is not safe for concurrent use; build one per call.
func upper(text string) string {
	return cases.Upper(language.Und).String(text)
}

func morseSymbols(text string) ([]string, int) {
	text = upper(strings.TrimSpace(text))
	if text == "" {
		return nil, 0
	}

	syms := make([]string, 0, len(text))
	dropped := 0
	for _, r := range text {
		if sym, ok := MorseSymbol(r); ok {
			syms = append(syms, sym)
			continue
		}
		dropped++
	}
	return syms, dropped
}
