package analyzer

import "regexp"

// charClass is a fixed set of characters counted by a regexp scan.
type charClass struct {
	re *regexp.Regexp
}

func newClass(expr string) charClass {
	return charClass{re: regexp.MustCompile(expr)}
}

func (c charClass) count(text string) int {
	return len(c.re.FindAllStringIndex(text, -1))
}

// Only the enumerated Latin letters match; other scripts count as neither
// vowel nor consonant.
var (
	vowelClass     = newClass(`[aeiouáéíóúüAEIOUÁÉÍÓÚÜ]`)
	consonantClass = newClass(`[bcdfghjklmnpqrstvwxyzñBCDFGHJKLMNPQRSTVWXYZÑ]`)
	sentenceClass  = newClass(`[.!?]`)

	vowelAClass = newClass(`[aáAÁ]`)
	vowelEClass = newClass(`[eéEÉ]`)
	vowelIClass = newClass(`[iíIÍ]`)
	vowelOClass = newClass(`[oóOÓ]`)
	vowelUClass = newClass(`[uúUÚ]`)
)

var (
	// \R: CRLF or any single vertical break.
	lineBreak = regexp.MustCompile(`\r\n|[\n\x{0B}\x{0C}\r\x{85}\x{2028}\x{2029}]`)
	// \W is ASCII-only in RE2.
	nonWord = regexp.MustCompile(`\W`)
)
