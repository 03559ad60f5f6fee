// Package report renders analysis results as text, markdown, tables, YAML or JSON.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/f3rmion/murcielago/internal/analyzer"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// Format names an output format.
type Format string

// Supported output formats.
const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatTable    Format = "table"
	FormatYAML     Format = "yaml"
	FormatJSON     Format = "json"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatMarkdown, FormatTable, FormatYAML, FormatJSON}

// ParseFormat validates a format name. "md" and "yml" are accepted aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "txt":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "table":
		return FormatTable, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unknown format %q (want one of %v)", s, Formats)
}

// Row is one labelled statistic.
type Row struct {
	Label string
	Value string
}

// Data is what templates see.
type Data struct {
	Source string
	Result analyzer.Result
	Stats  []Row // counts, metrics and positional facts
	Vowels []Row // per-vowel counts and word parity
}

// Renderer turns a Result into one of the supported formats.
type Renderer struct {
	template *template.Template
	markdown *template.Template
}

// NewRenderer creates a renderer with the built-in templates.
func NewRenderer() *Renderer {
	return &Renderer{
		template: template.Must(template.New("text").Parse(textTemplate)),
		markdown: template.Must(template.New("markdown").Parse(markdownTemplate)),
	}
}

// SetTemplate replaces the text template.
func (r *Renderer) SetTemplate(tmpl string) error {
	t, err := template.New("custom").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("parsing template: %w", err)
	}
	r.template = t
	return nil
}

// Render formats res. source names the input (file path or "stdin").
func (r *Renderer) Render(format Format, source string, res analyzer.Result) (string, error) {
	data := NewData(source, res)

	switch format {
	case FormatText, "":
		return execute(r.template, data)
	case FormatMarkdown:
		return execute(r.markdown, data)
	case FormatTable:
		return renderTable(data), nil
	case FormatYAML:
		out, err := yaml.Marshal(res)
		if err != nil {
			return "", fmt.Errorf("marshaling yaml: %w", err)
		}
		return string(out), nil
	case FormatJSON:
		out, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshaling json: %w", err)
		}
		return string(out) + "\n", nil
	}
	return "", fmt.Errorf("unknown format %q", format)
}

// NewData builds the labelled rows for res.
func NewData(source string, res analyzer.Result) Data {
	return Data{
		Source: source,
		Result: res,
		Stats:  StatRows(res),
		Vowels: VowelRows(res),
	}
}

// StatRows returns counts, metrics and positional facts in display order.
func StatRows(res analyzer.Result) []Row {
	return []Row{
		{"Characters", itoa(res.Characters)},
		{"Words", itoa(res.Words)},
		{"Lines", itoa(res.Lines)},
		{"Vowels", itoa(res.Vowels)},
		{"Consonants", itoa(res.Consonants)},
		{"Sentences", itoa(res.Sentences)},
		{"Most frequent", orPlaceholder(res.MostFrequentWord)},
		{"Average word", fmt.Sprintf("%.2f", res.AverageWordLength)},
		{"First letter", orPlaceholder(res.FirstChar)},
		{"Middle letter", orPlaceholder(res.MiddleChar)},
		{"Last letter", orPlaceholder(res.LastChar)},
		{"First word", orPlaceholder(res.FirstWord)},
		{"Middle word", orPlaceholder(res.MiddleWord)},
		{"Last word", orPlaceholder(res.LastWord)},
	}
}

// VowelRows returns the per-vowel counts and the word parity split.
func VowelRows(res analyzer.Result) []Row {
	return []Row{
		{"A/a/á", itoa(res.PerVowel.A)},
		{"E/e/é", itoa(res.PerVowel.E)},
		{"I/i/í", itoa(res.PerVowel.I)},
		{"O/o/ó", itoa(res.PerVowel.O)},
		{"U/u/ú", itoa(res.PerVowel.U)},
		{"Even-length words", itoa(res.EvenWords)},
		{"Odd-length words", itoa(res.OddWords)},
	}
}

func renderTable(data Data) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	if data.Source != "" {
		tw.SetTitle(data.Source)
	}
	tw.AppendHeader(table.Row{"Statistic", "Value"})

	for _, row := range data.Stats {
		tw.AppendRow(table.Row{row.Label, row.Value})
	}
	tw.AppendSeparator()
	for _, row := range data.Vowels {
		tw.AppendRow(table.Row{row.Label, row.Value})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render() + "\n\nMurciélago:\n" + data.Result.Translit + "\n"
}

func execute(t *template.Template, data Data) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}
	return buf.String(), nil
}

func itoa(n int) string {
	return fmt.Sprintf("%d", n)
}

func orPlaceholder(s string) string {
	if s == "" {
		return analyzer.Placeholder
	}
	return s
}

const textTemplate = `{{if .Source}}== {{.Source}} ==
{{end}}{{range .Stats}}{{printf "%-18s" .Label}} {{.Value}}
{{end}}
{{range .Vowels}}{{printf "%-18s" .Label}} {{.Value}}
{{end}}
Murciélago:
{{.Result.Translit}}
`

const markdownTemplate = `# Text analysis{{if .Source}}: {{.Source}}{{end}}

| Statistic | Value |
|---|---|
{{range .Stats}}| {{.Label}} | {{.Value}} |
{{end}}
| Vowel / parity | Count |
|---|---|
{{range .Vowels}}| {{.Label}} | {{.Value}} |
{{end}}
## Murciélago

` + "```" + `
{{.Result.Translit}}
` + "```" + `
`
