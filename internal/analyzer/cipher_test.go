package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransliterate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"murcielago MURCIELAGO", "0123456789 0123456789"},
		{"", ""},
		{"xyz", "xyz"},
		{"Hola", "H967"},
		{"BEBÉ", "B5BÉ"},
		{"ñoño", "ñ9ñ9"},
		{"1, 2, 3", "1, 2, 3"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Transliterate(tt.in))
		})
	}
}

func TestLookup(t *testing.T) {
	for i, k := range CipherKeys {
		d, ok := Lookup(k)
		assert.True(t, ok)
		assert.Equal(t, rune('0'+i), d)
	}

	_, ok := Lookup('M')
	assert.False(t, ok, "keys are lowercase only")
	_, ok = Lookup('z')
	assert.False(t, ok)
}
