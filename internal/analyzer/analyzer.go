// Package analyzer computes text statistics and the Murciélago cipher
// transliteration of a piece of text.
package analyzer

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Placeholder is shown for positional values and the most frequent word when
// the text has none.
const Placeholder = "-"

// VowelCounts holds per-vowel occurrences. Each count includes both cases and
// the acute-accented form of the letter.
type VowelCounts struct {
	A int `yaml:"a" json:"a"`
	E int `yaml:"e" json:"e"`
	I int `yaml:"i" json:"i"`
	O int `yaml:"o" json:"o"`
	U int `yaml:"u" json:"u"`
}

// Result is the outcome of a single analysis. Positional fields are empty
// strings when the text is blank.
type Result struct {
	Characters int `yaml:"characters" json:"characters"`
	Lines      int `yaml:"lines" json:"lines"`
	Words      int `yaml:"words" json:"words"`
	Vowels     int `yaml:"vowels" json:"vowels"`
	Consonants int `yaml:"consonants" json:"consonants"`
	Sentences  int `yaml:"sentences" json:"sentences"`

	MostFrequentWord  string  `yaml:"most_frequent_word" json:"most_frequent_word"`
	AverageWordLength float64 `yaml:"average_word_length" json:"average_word_length"`

	FirstChar  string `yaml:"first_char,omitempty" json:"first_char,omitempty"`
	MiddleChar string `yaml:"middle_char,omitempty" json:"middle_char,omitempty"`
	LastChar   string `yaml:"last_char,omitempty" json:"last_char,omitempty"`
	FirstWord  string `yaml:"first_word,omitempty" json:"first_word,omitempty"`
	MiddleWord string `yaml:"middle_word,omitempty" json:"middle_word,omitempty"`
	LastWord   string `yaml:"last_word,omitempty" json:"last_word,omitempty"`

	PerVowel  VowelCounts `yaml:"per_vowel" json:"per_vowel"`
	EvenWords int         `yaml:"even_length_words" json:"even_length_words"`
	OddWords  int         `yaml:"odd_length_words" json:"odd_length_words"`

	Translit string `yaml:"translit" json:"translit"`

	// Blank reports whether the text was empty or whitespace only.
	Blank bool `yaml:"blank" json:"blank"`
}

// Options tunes an Analyzer.
type Options struct {
	// NormalizeNFC composes decomposed accents (e + U+0301) before analysis.
	NormalizeNFC bool
	Logger       *slog.Logger
}

// Analyzer runs Analyze with a fixed set of options.
type Analyzer struct {
	opts   Options
	logger *slog.Logger
}

// New creates an Analyzer.
func New(opts Options) *Analyzer {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{opts: opts, logger: logger}
}

// Analyze computes the statistics for text.
func (a *Analyzer) Analyze(text string) Result {
	if a.opts.NormalizeNFC && !norm.NFC.IsNormalString(text) {
		text = norm.NFC.String(text)
	}

	res := Analyze(text)
	a.logger.Debug("text analyzed",
		slog.Int("characters", res.Characters),
		slog.Int("words", res.Words),
		slog.Int("lines", res.Lines),
		slog.Bool("nfc", a.opts.NormalizeNFC),
	)
	return res
}

// Analyze computes the statistics for text. It never fails: blank input
// yields zero counts and placeholder values.
func Analyze(text string) Result {
	blank := IsBlank(text)
	words := Words(text)

	res := Result{
		Characters:        utf8.RuneCountInString(text),
		Lines:             CountLines(text),
		Words:             len(words),
		Vowels:            vowelClass.count(text),
		Consonants:        consonantClass.count(text),
		Sentences:         sentenceClass.count(text),
		MostFrequentWord:  MostFrequentWord(words),
		AverageWordLength: AverageWordLength(words),
		PerVowel: VowelCounts{
			A: vowelAClass.count(text),
			E: vowelEClass.count(text),
			I: vowelIClass.count(text),
			O: vowelOClass.count(text),
			U: vowelUClass.count(text),
		},
		Translit: Transliterate(text),
		Blank:    blank,
	}

	if !blank {
		runes := []rune(text)
		res.FirstChar = string(runes[0])
		res.LastChar = string(runes[len(runes)-1])
		res.MiddleChar = string(runes[len(runes)/2])

		res.FirstWord = words[0]
		res.LastWord = words[len(words)-1]
		res.MiddleWord = words[len(words)/2]
	}

	res.EvenWords, res.OddWords = WordParity(words)

	return res
}

// IsBlank reports whether text is empty or consists only of whitespace.
// Whitespace is Unicode White_Space here and in Words, so blank text never
// has words.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}

// CountLines returns the number of line segments in text, splitting on any
// line-break sequence. Trailing empty segments are not counted. Blank text
// has no lines.
func CountLines(text string) int {
	if IsBlank(text) {
		return 0
	}
	segments := lineBreak.Split(text, -1)
	n := len(segments)
	for n > 0 && segments[n-1] == "" {
		n--
	}
	return n
}

// Words splits text into raw tokens separated by Unicode whitespace,
// U+00A0 and U+0085 included.
func Words(text string) []string {
	return strings.Fields(text)
}

// NormalizeWord strips every character outside [0-9A-Za-z_].
func NormalizeWord(word string) string {
	return nonWord.ReplaceAllString(word, "")
}

// MostFrequentWord returns the lowercased normalized word with the highest
// count. Among tied words the one seen first in words wins. Returns
// Placeholder when no word survives normalization.
func MostFrequentWord(words []string) string {
	counts := make(map[string]int)
	var order []string

	for _, w := range words {
		w = strings.ToLower(NormalizeWord(w))
		if w == "" {
			continue
		}
		if _, seen := counts[w]; !seen {
			order = append(order, w)
		}
		counts[w]++
	}

	best, bestCount := Placeholder, 0
	for _, w := range order {
		if counts[w] > bestCount {
			best, bestCount = w, counts[w]
		}
	}
	return best
}

// AverageWordLength returns the mean length of the normalized, non-empty
// words, or 0 when there are none.
func AverageWordLength(words []string) float64 {
	var total, n int
	for _, w := range words {
		w = NormalizeWord(w)
		if w == "" {
			continue
		}
		total += utf8.RuneCountInString(w)
		n++
	}
	if n == 0 {
		return 0
	}
	return float64(total) / float64(n)
}

// WordParity counts raw tokens of even and odd rune length.
func WordParity(words []string) (even, odd int) {
	for _, w := range words {
		if utf8.RuneCountInString(w)%2 == 0 {
			even++
		}
	}
	return even, len(words) - even
}
