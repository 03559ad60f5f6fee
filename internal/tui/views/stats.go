package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/murcielago/internal/analyzer"
	"github.com/f3rmion/murcielago/internal/clipboard"
	"github.com/f3rmion/murcielago/internal/report"
	"github.com/f3rmion/murcielago/internal/tui/bigchar"
)

const (
	glyphCols = 12
	glyphRows = 6
)

// StatsModel shows the last analysis: the statistics, the first, middle and
// last letters as big glyphs, and the transliteration.
type StatsModel struct {
	result *analyzer.Result
	source string

	translit viewport.Model
	status   string

	width  int
	height int
}

// NewStatsModel creates the statistics view.
func NewStatsModel() StatsModel {
	return StatsModel{translit: viewport.New(40, 4)}
}

// SetSize updates the view dimensions.
func (m *StatsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.translit.Width = maxInt(width-6, 10)
	m.translit.Height = maxInt(height-30, 3)
	m.refresh()
}

// SetResult shows res. source names where the text came from.
func (m *StatsModel) SetResult(res analyzer.Result, source string) {
	m.result = &res
	m.source = source
	m.status = ""
	m.refresh()
}

// Clear forgets the last result.
func (m *StatsModel) Clear() {
	m.result = nil
	m.source = ""
	m.status = ""
	m.refresh()
}

// HasResult reports whether a result is shown.
func (m StatsModel) HasResult() bool {
	return m.result != nil
}

func (m *StatsModel) refresh() {
	if m.result == nil {
		m.translit.SetContent("")
		return
	}
	wrap := lipgloss.NewStyle().Width(maxInt(m.translit.Width, 1))
	m.translit.SetContent(wrap.Render(renderTranslit(m.result.Translit)))
	m.translit.GotoTop()
}

// Update handles messages.
func (m StatsModel) Update(msg tea.Msg) (StatsModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "y" && m.result != nil {
		if !clipboardAvailable() {
			m.status = errNoClipboard
		} else if err := clipboard.Write(m.result.Translit); err != nil {
			m.status = "Error: " + err.Error()
		} else {
			m.status = "Copied transliteration"
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.translit, cmd = m.translit.Update(msg)
	return m, cmd
}

// View renders the statistics view.
func (m StatsModel) View() string {
	var b strings.Builder

	title := "Statistics"
	if m.source != "" {
		title += " - " + m.source
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	if m.result == nil {
		b.WriteString(helpStyle.Render("Nothing processed yet. Press ctrl+p in the editor."))
		return b.String()
	}

	left := renderRows(report.StatRows(*m.result))
	right := renderRows(report.VowelRows(*m.result))
	columns := lipgloss.JoinHorizontal(lipgloss.Top,
		boxStyle.Render(left),
		"  ",
		boxStyle.Render(right),
	)
	b.WriteString(columns)
	b.WriteString("\n\n")

	if !m.result.Blank && bigchar.IsAvailable() {
		b.WriteString(m.renderGlyphs())
		b.WriteString("\n\n")
	}

	b.WriteString(subtitleStyle.Render("Murciélago"))
	b.WriteString("\n")
	b.WriteString(outputBoxStyle.Render(m.translit.View()))
	b.WriteString("\n")

	if m.status != "" {
		style := successStyle
		if strings.HasPrefix(m.status, "Error") {
			style = errorStyle
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("y: copy transliteration • j/k: scroll"))

	return b.String()
}

func (m StatsModel) renderGlyphs() string {
	cells := []struct{ caption, char string }{
		{"first", m.result.FirstChar},
		{"middle", m.result.MiddleChar},
		{"last", m.result.LastChar},
	}

	var glyphs []string
	for _, c := range cells {
		art := bigchar.GetCached(c.char, glyphCols, glyphRows)
		block := lipgloss.JoinVertical(lipgloss.Center,
			bigCharStyle.Render(art),
			bigCharCaptionStyle.Width(glyphCols+2).Render(c.caption+" "+quoteChar(c.char)),
		)
		glyphs = append(glyphs, block, "  ")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, glyphs...)
}

func renderRows(rows []report.Row) string {
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(labelStyle.Render(row.Label))
		b.WriteString(valueStyle.Render(row.Value))
	}
	return b.String()
}

func quoteChar(s string) string {
	switch s {
	case "":
		return analyzer.Placeholder
	case " ":
		return "(space)"
	case "\n", "\r":
		return "(newline)"
	case "\t":
		return "(tab)"
	}
	return "'" + s + "'"
}
