package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/f3rmion/murcielago/internal/analyzer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"text": FormatText, "TXT": FormatText, "md": FormatMarkdown,
		"table": FormatTable, "yml": FormatYAML, "json": FormatJSON,
	} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestRenderText(t *testing.T) {
	out, err := NewRenderer().Render(FormatText, "hola.txt", analyzer.Analyze("Hola, mundo!"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "== hola.txt =="))
	assert.Contains(t, out, "Characters         12")
	assert.Contains(t, out, "Average word       4.50")
	assert.Contains(t, out, "Most frequent      hola")
	assert.Contains(t, out, "H967, 01nd9!")
}

func TestRenderBlankUsesPlaceholders(t *testing.T) {
	out, err := NewRenderer().Render(FormatText, "", analyzer.Analyze("   "))
	require.NoError(t, err)

	assert.Contains(t, out, "First letter       -")
	assert.Contains(t, out, "Last word          -")
	assert.Contains(t, out, "Average word       0.00")
}

func TestRenderMarkdown(t *testing.T) {
	out, err := NewRenderer().Render(FormatMarkdown, "x", analyzer.Analyze("abc ab"))
	require.NoError(t, err)

	assert.Contains(t, out, "# Text analysis: x")
	assert.Contains(t, out, "| Even-length words | 1 |")
	assert.Contains(t, out, "| Odd-length words | 1 |")
}

func TestRenderTable(t *testing.T) {
	out, err := NewRenderer().Render(FormatTable, "", analyzer.Analyze("murcielago"))
	require.NoError(t, err)

	assert.Contains(t, out, "STATISTIC")
	assert.Contains(t, out, "Consonants")
	assert.Contains(t, out, "0123456789")
}

func TestRenderStructured(t *testing.T) {
	res := analyzer.Analyze("abc ab")
	r := NewRenderer()

	out, err := r.Render(FormatJSON, "", res)
	require.NoError(t, err)
	var fromJSON analyzer.Result
	require.NoError(t, json.Unmarshal([]byte(out), &fromJSON))
	assert.Equal(t, res, fromJSON)

	out, err = r.Render(FormatYAML, "", res)
	require.NoError(t, err)
	var fromYAML analyzer.Result
	require.NoError(t, yaml.Unmarshal([]byte(out), &fromYAML))
	assert.Equal(t, res, fromYAML)
}

func TestSetTemplate(t *testing.T) {
	r := NewRenderer()
	require.NoError(t, r.SetTemplate("{{.Result.Words}} words, {{len .Vowels}} vowel rows"))

	out, err := r.Render(FormatText, "", analyzer.Analyze("uno dos tres"))
	require.NoError(t, err)
	assert.Equal(t, "3 words, 7 vowel rows", out)

	err = r.SetTemplate("{{.Broken")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing template")
}
