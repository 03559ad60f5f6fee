package textops

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindAll(t *testing.T) {
	tests := []struct {
		name string
		text string
		term string
		want []Match
	}{
		{"case insensitive", "Sol sol SOL", "sol", []Match{{0, 3}, {4, 7}, {8, 11}}},
		{"no overlap", "aaaa", "aa", []Match{{0, 2}, {2, 4}}},
		{"odd overlap", "aaa", "aa", []Match{{0, 2}}},
		{"rune offsets", "canción Canción", "CIÓN", []Match{{3, 7}, {11, 15}}},
		{"empty term", "abc", "", nil},
		{"term longer than text", "ab", "abc", nil},
		{"absent", "murcielago", "xyz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FindAll(tt.text, tt.term))
		})
	}
}

func TestReplace(t *testing.T) {
	got, n := Replace("gato Gato gato", "gato", "perro")
	assert.Equal(t, "perro Gato perro", got)
	assert.Equal(t, 2, n)

	got, n = Replace("a.b.c", ".", "")
	assert.Equal(t, "abc", got)
	assert.Equal(t, 2, n)

	got, n = Replace("abc", "", "x")
	assert.Equal(t, "abc", got)
	assert.Zero(t, n)

	got, n = Replace("abc", "z", "x")
	assert.Equal(t, "abc", got)
	assert.Zero(t, n)
}

func TestPosition(t *testing.T) {
	text := "uno\ndós\r\ntres"

	line, col := Position(text, 0)
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)

	line, col = Position(text, 5)
	assert.Equal(t, 2, line)
	assert.Equal(t, 2, col)

	line, col = Position(text, 9)
	assert.Equal(t, 3, line)
	assert.Equal(t, 1, col)
}

func TestHighlight(t *testing.T) {
	text := "Hola hola"
	matches := FindAll(text, "hola")
	upper := func(s string) string { return "[" + strings.ToUpper(s) + "]" }

	assert.Equal(t, "[HOLA] [HOLA]", Highlight(text, matches, upper))
	assert.Equal(t, text, Highlight(text, nil, upper))
}
