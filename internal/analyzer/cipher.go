package analyzer

import (
	"strings"
	"unicode"
)

const (
	// CipherKeys are the ten distinct letters of "murciélago" (accent dropped)
	// in order of first appearance.
	CipherKeys = "murcielago"
	// CipherDigits are the substitutes for CipherKeys, position by position.
	CipherDigits = "0123456789"
)

// murcielagoMap maps each key letter to its digit. Built once, never written.
var murcielagoMap = newMurcielagoMap()

func newMurcielagoMap() map[rune]rune {
	keys := []rune(CipherKeys)
	digits := []rune(CipherDigits)

	m := make(map[rune]rune, len(keys))
	for i, k := range keys {
		m[k] = digits[i]
	}
	return m
}

// Lookup returns the digit for a lowercase key letter.
func Lookup(r rune) (rune, bool) {
	d, ok := murcielagoMap[r]
	return d, ok
}

// Transliterate applies the Murciélago cipher to text. Each rune is
// lowercased and replaced by its digit when it is a key letter; any other
// rune is kept as written, case included. The output has exactly as many
// runes as the input.
func Transliterate(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		if d, ok := murcielagoMap[unicode.ToLower(r)]; ok {
			b.WriteRune(d)
		} else {
			b.WriteRune(r)
		}
	}

	return b.String()
}
