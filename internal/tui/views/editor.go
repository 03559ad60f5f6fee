package views

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/murcielago/internal/analyzer"
	"github.com/f3rmion/murcielago/internal/clipboard"
	"github.com/f3rmion/murcielago/internal/document"
	"github.com/f3rmion/murcielago/internal/textops"
	"github.com/mattn/go-runewidth"
)

type editorMode int

const (
	modeEdit editorMode = iota
	modeFind
	modeReplaceFind
	modeReplaceWith
	modeSaveAs
)

const statusTimeout = 4 * time.Second

const errNoClipboard = "Error: no clipboard available (install xclip, xsel or wl-clipboard)"

// replaced in tests
var clipboardAvailable = clipboard.Available

// EditorModel is the text editing view: the text area, find/replace and
// save-as prompts, and the transliteration output.
type EditorModel struct {
	textarea     textarea.Model
	input        textinput.Model
	replaceInput textinput.Model
	output       viewport.Model
	mode         editorMode

	doc      *document.Document
	analyzer *analyzer.Analyzer
	logger   *slog.Logger

	result  *analyzer.Result
	term    string
	matches []textops.Match

	status    string
	statusErr bool
	statusSeq int

	width  int
	height int
}

// NewEditorModel creates the editor view.
func NewEditorModel(a *analyzer.Analyzer, logger *slog.Logger, lineNumbers bool) EditorModel {
	ta := textarea.New()
	ta.Placeholder = "Type or open some text, then press ctrl+p to process..."
	ta.ShowLineNumbers = lineNumbers
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Focus()

	in := textinput.New()
	in.Width = 40
	in.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ecdc4"))
	in.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffe66d"))

	rep := textinput.New()
	rep.Width = 40
	rep.Prompt = "Replace with: "
	rep.PromptStyle = in.PromptStyle
	rep.TextStyle = in.TextStyle

	if logger == nil {
		logger = slog.Default()
	}

	return EditorModel{
		textarea:     ta,
		input:        in,
		replaceInput: rep,
		output:       viewport.New(40, 5),
		doc:          document.New(),
		analyzer:     a,
		logger:       logger,
	}
}

// SetSize updates the view dimensions.
func (m *EditorModel) SetSize(width, height int) {
	m.width = width
	m.height = height

	inner := maxInt(width-4, 10)
	// title, prompt/status and help lines plus two box borders
	free := maxInt(height-9, 6)
	areaHeight := free * 3 / 5
	outHeight := free - areaHeight

	m.textarea.SetWidth(inner)
	m.textarea.SetHeight(areaHeight)
	m.output.Width = inner
	m.output.Height = outHeight
	m.input.Width = minInt(inner-20, 60)
	m.replaceInput.Width = m.input.Width
	m.refreshOutput()
}

// Document returns the document being edited.
func (m EditorModel) Document() *document.Document {
	return m.doc
}

// Value returns the current editor text.
func (m EditorModel) Value() string {
	return m.textarea.Value()
}

// Result returns the last analysis, or nil.
func (m EditorModel) Result() *analyzer.Result {
	return m.result
}

// Matches returns the highlighted find matches.
func (m EditorModel) Matches() []textops.Match {
	return m.matches
}

// Status returns the status line text.
func (m EditorModel) Status() string {
	return m.status
}

// ApplyConfig swaps the analyzer and the gutter setting.
func (m *EditorModel) ApplyConfig(a *analyzer.Analyzer, lineNumbers bool) {
	m.analyzer = a
	m.textarea.ShowLineNumbers = lineNumbers
}

// Capturing reports whether the editor wants esc for itself.
func (m EditorModel) Capturing() bool {
	return m.mode != modeEdit || len(m.matches) > 0
}

// SetDocument replaces the buffer with doc. The returned command clears
// the status line later.
func (m *EditorModel) SetDocument(doc *document.Document) tea.Cmd {
	m.doc = doc
	m.textarea.SetValue(doc.Content)
	m.textarea.CursorStart()
	m.result = nil
	m.clearFind()
	m.refreshOutput()
	if doc.Path == "" {
		return nil
	}
	return m.setStatus("Opened: "+doc.AbsPath(), false)
}

// Update handles messages.
func (m EditorModel) Update(msg tea.Msg) (EditorModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.mode != modeEdit {
			return m.updatePrompt(msg)
		}
		if handled, next, cmd := m.handleEditKey(msg); handled {
			return next, cmd
		}

	case savedMsg:
		if msg.err != nil {
			m.logger.Error("save failed", slog.String("path", msg.path), slog.Any("error", msg.err))
			cmd := m.setStatus("Error: "+msg.err.Error(), true)
			return m, cmd
		}
		if m.doc.Content == msg.content {
			m.doc.MarkSaved(msg.path)
		} else {
			m.doc.Path = msg.path
		}
		m.logger.Info("file saved", slog.String("path", msg.path), slog.Bool("dirty", m.doc.Dirty))
		cmd := m.setStatus("Saved: "+m.doc.AbsPath(), false)
		return m, tea.Batch(cmd, emit(DocumentSavedMsg{Path: msg.path}))

	case StatusMsg:
		cmd := m.setStatus(msg.Text, msg.Err)
		return m, cmd

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusErr = false
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	m.syncDocument()
	return m, cmd
}

func (m EditorModel) handleEditKey(msg tea.KeyMsg) (bool, EditorModel, tea.Cmd) {
	switch msg.String() {
	case "ctrl+p":
		cmd := m.process()
		return true, m, cmd
	case "ctrl+l":
		m.textarea.Reset()
		m.doc.Clear()
		m.result = nil
		m.clearFind()
		m.refreshOutput()
		cmd := m.setStatus("Cleared", false)
		return true, m, tea.Batch(emit(ClearedMsg{}), cmd)
	case "ctrl+o":
		return true, m, emit(OpenRequestMsg{})
	case "ctrl+s":
		m.syncDocument()
		if m.doc.Path == "" {
			m.startPrompt(modeSaveAs, "Save as: ", "")
			return true, m, textinput.Blink
		}
		return true, m, saveDocument(m.doc, "")
	case "ctrl+g":
		m.syncDocument()
		m.startPrompt(modeSaveAs, "Save as: ", m.doc.Path)
		return true, m, textinput.Blink
	case "ctrl+f":
		m.startPrompt(modeFind, "Find: ", m.term)
		return true, m, textinput.Blink
	case "ctrl+r":
		m.startPrompt(modeReplaceFind, "Find: ", "")
		m.replaceInput.Reset()
		return true, m, textinput.Blink
	case "ctrl+y":
		cmd := m.copyAll(false)
		return true, m, cmd
	case "ctrl+x":
		cmd := m.copyAll(true)
		return true, m, cmd
	case "esc":
		if len(m.matches) > 0 {
			m.clearFind()
			m.refreshOutput()
			return true, m, nil
		}
	}
	return false, m, nil
}

func (m EditorModel) updatePrompt(msg tea.KeyMsg) (EditorModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.endPrompt()
		return m, nil
	case "tab", "shift+tab":
		switch m.mode {
		case modeReplaceFind:
			m.mode = modeReplaceWith
			m.input.Blur()
			cmd := m.replaceInput.Focus()
			return m, cmd
		case modeReplaceWith:
			m.mode = modeReplaceFind
			m.replaceInput.Blur()
			cmd := m.input.Focus()
			return m, cmd
		}
		return m, nil
	case "enter":
		return m.confirmPrompt()
	}

	var cmd tea.Cmd
	if m.mode == modeReplaceWith {
		m.replaceInput, cmd = m.replaceInput.Update(msg)
	} else {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m EditorModel) confirmPrompt() (EditorModel, tea.Cmd) {
	mode := m.mode
	value := m.input.Value()
	m.endPrompt()

	switch mode {
	case modeFind:
		cmd := m.find(value)
		return m, cmd

	case modeReplaceFind, modeReplaceWith:
		text, n := textops.Replace(m.textarea.Value(), value, m.replaceInput.Value())
		if n > 0 {
			m.textarea.SetValue(text)
			m.syncDocument()
			m.clearFind()
			m.refreshOutput()
		}
		m.logger.Debug("replace", slog.String("find", value), slog.Int("count", n))
		cmd := m.setStatus(fmt.Sprintf("Replaced %d occurrence(s)", n), false)
		return m, cmd

	case modeSaveAs:
		path := strings.TrimSpace(value)
		if path == "" {
			return m, nil
		}
		return m, saveDocument(m.doc, expandHome(path))
	}
	return m, nil
}

func (m *EditorModel) process() tea.Cmd {
	m.syncDocument()
	res := m.analyzer.Analyze(m.textarea.Value())
	m.result = &res
	m.refreshOutput()
	return emit(AnalysisMsg{Result: res})
}

func (m *EditorModel) find(term string) tea.Cmd {
	m.term = term
	m.matches = textops.FindAll(m.textarea.Value(), term)
	m.refreshOutput()

	if term == "" {
		return nil
	}
	if len(m.matches) == 0 {
		return m.setStatus(fmt.Sprintf("No matches for %q", term), false)
	}

	text := m.textarea.Value()
	var positions []string
	for i, match := range m.matches {
		if i == 5 {
			positions = append(positions, "…")
			break
		}
		line, col := textops.Position(text, match.Start)
		positions = append(positions, fmt.Sprintf("%d:%d", line, col))
	}
	m.status = fmt.Sprintf("%d match(es): %s • esc clears", len(m.matches), strings.Join(positions, ", "))
	m.statusErr = false
	return nil
}

func (m *EditorModel) copyAll(cut bool) tea.Cmd {
	if !clipboardAvailable() {
		return m.setStatus(errNoClipboard, true)
	}
	text := m.textarea.Value()
	if err := clipboard.Write(text); err != nil {
		return m.setStatus("Error: "+err.Error(), true)
	}
	if cut {
		m.textarea.Reset()
		m.syncDocument()
		return m.setStatus(fmt.Sprintf("Cut %d characters", len([]rune(text))), false)
	}
	return m.setStatus(fmt.Sprintf("Copied %d characters", len([]rune(text))), false)
}

func (m *EditorModel) startPrompt(mode editorMode, prompt, value string) {
	m.mode = mode
	m.input.Prompt = prompt
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Focus()
	m.textarea.Blur()
}

func (m *EditorModel) endPrompt() {
	m.mode = modeEdit
	m.input.Blur()
	m.replaceInput.Blur()
	m.textarea.Focus()
}

func (m *EditorModel) clearFind() {
	m.matches = nil
}

func (m *EditorModel) syncDocument() {
	m.doc.SetContent(m.textarea.Value())
}

func (m *EditorModel) setStatus(s string, isErr bool) tea.Cmd {
	m.status = s
	m.statusErr = isErr
	m.statusSeq++
	return clearStatusAfter(statusTimeout, m.statusSeq)
}

func (m *EditorModel) refreshOutput() {
	wrap := lipgloss.NewStyle().Width(maxInt(m.output.Width, 1))

	switch {
	case len(m.matches) > 0:
		text := textops.Highlight(m.textarea.Value(), m.matches, func(s string) string {
			return highlightStyle.Render(s)
		})
		m.output.SetContent(wrap.Render(text))
	case m.result != nil:
		m.output.SetContent(wrap.Render(renderTranslit(m.result.Translit)))
	default:
		m.output.SetContent(helpStyle.Render("ctrl+p: process the text to see its Murciélago translation"))
	}
	m.output.GotoTop()
}

// View renders the editor.
func (m EditorModel) View() string {
	var b strings.Builder

	title := m.doc.Title()
	if m.doc.Dirty {
		title += " *"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	b.WriteString(boxStyle.Render(m.textarea.View()))
	b.WriteString("\n")

	switch m.mode {
	case modeFind, modeSaveAs:
		b.WriteString(m.input.View())
	case modeReplaceFind, modeReplaceWith:
		b.WriteString(m.input.View() + "  " + m.replaceInput.View())
	default:
		b.WriteString(m.renderStatus())
	}
	b.WriteString("\n")

	outTitle := "Murciélago"
	if len(m.matches) > 0 {
		outTitle = fmt.Sprintf("Find: %q", m.term)
	}
	b.WriteString(subtitleStyle.Render(outTitle))
	b.WriteString("\n")
	b.WriteString(outputBoxStyle.Render(m.output.View()))
	b.WriteString("\n")

	b.WriteString(helpStyle.Render(m.helpLine()))

	return b.String()
}

func (m EditorModel) renderStatus() string {
	if m.status == "" {
		if m.result != nil {
			return valueStyle.Render(fmt.Sprintf("%d characters • %d words • %d lines • see 2. Statistics",
				m.result.Characters, m.result.Words, m.result.Lines))
		}
		return ""
	}
	status := runewidth.Truncate(m.status, maxInt(m.width-4, 10), "…")
	if m.statusErr {
		return errorStyle.Render(status)
	}
	return successStyle.Render(status)
}

func (m EditorModel) helpLine() string {
	switch m.mode {
	case modeFind:
		return "enter: highlight • esc: cancel"
	case modeReplaceFind, modeReplaceWith:
		return "tab: switch field • enter: replace all • esc: cancel"
	case modeSaveAs:
		return "enter: save • esc: cancel"
	}
	return "ctrl+p process • ctrl+l clear • ctrl+o open • ctrl+s save • ctrl+g save as • ctrl+f find • ctrl+r replace • ctrl+y copy • ctrl+x cut • ctrl+v paste"
}

// renderTranslit colors the cipher digits that replaced key letters.
func renderTranslit(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteString(digitStyle.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
