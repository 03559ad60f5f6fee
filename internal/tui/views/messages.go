package views

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/murcielago/internal/analyzer"
	"github.com/f3rmion/murcielago/internal/document"
)

// FileSelectedMsg is sent when a file is selected in the file picker
type FileSelectedMsg struct {
	Path string
}

// OpenRequestMsg asks the app to show the file picker.
type OpenRequestMsg struct{}

// AnalysisMsg carries the result of processing the editor text.
type AnalysisMsg struct {
	Result analyzer.Result
}

// ClearedMsg is sent when the editor was cleared.
type ClearedMsg struct{}

// DocumentLoadedMsg is sent when a file finished loading.
type DocumentLoadedMsg struct {
	Doc  *document.Document
	Path string
	Err  error
}

// DocumentSavedMsg is sent after the editor wrote its document.
type DocumentSavedMsg struct {
	Path string
}

// StatusMsg sets the editor status line.
type StatusMsg struct {
	Text string
	Err  bool
}

// savedMsg reports a finished save. content is what was written, so a
// buffer edited while saving stays dirty.
type savedMsg struct {
	path    string
	content string
	err     error
}

type clearStatusMsg struct {
	seq int
}

func clearStatusAfter(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

// LoadDocument reads path in the background.
func LoadDocument(path string) tea.Cmd {
	return func() tea.Msg {
		doc, err := document.Open(path)
		return DocumentLoadedMsg{Doc: doc, Path: path, Err: err}
	}
}

// saveDocument writes a snapshot of doc, to path when given and to its own
// path otherwise. The editor's document is not touched until savedMsg arrives.
func saveDocument(doc *document.Document, path string) tea.Cmd {
	snapshot := *doc
	if path == "" {
		path = snapshot.Path
	}
	return func() tea.Msg {
		var err error
		if path == snapshot.Path {
			err = snapshot.Save()
		} else {
			err = snapshot.SaveAs(path)
		}
		return savedMsg{path: path, content: snapshot.Content, err: err}
	}
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
