package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/murcielago/internal/config"
	"github.com/f3rmion/murcielago/internal/document"
	"github.com/f3rmion/murcielago/internal/logging"
	"github.com/f3rmion/murcielago/internal/recent"
	"github.com/f3rmion/murcielago/internal/tui/views"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, opts Options) AppModel {
	t.Helper()
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	m := NewApp(opts)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(AppModel)
}

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	app, ok := next.(AppModel)
	require.True(t, ok)
	return app, cmd
}

func TestAppStartsInEditor(t *testing.T) {
	m := newTestApp(t, Options{Document: &document.Document{Path: "x.txt", Content: "Hola"}})
	assert.Equal(t, ViewEditor, m.currentView)
	assert.Equal(t, "Hola", m.editorView.Value())
	assert.Contains(t, m.View(), "murcielago - x.txt")
}

func TestAppDigitsTypeIntoEditor(t *testing.T) {
	m := newTestApp(t, Options{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")})
	assert.Equal(t, ViewEditor, m.currentView)
	assert.Equal(t, "2", m.editorView.Value())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.Equal(t, "2q", m.editorView.Value())
}

func TestAppSidebarNavigation(t *testing.T) {
	m := newTestApp(t, Options{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.True(t, m.sidebarActive)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")})
	assert.Equal(t, ViewStats, m.currentView)
	assert.False(t, m.sidebarActive)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ViewFilePicker, m.currentView)
}

func TestAppHelpOverlay(t *testing.T) {
	m := newTestApp(t, Options{})
	m, _ = update(t, m, ViewSwitchMsg{View: ViewSettings})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	require.True(t, m.showHelp)
	assert.Contains(t, m.View(), "Press any key to close")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.False(t, m.showHelp)
}

func TestAppProcessUpdatesStats(t *testing.T) {
	m := newTestApp(t, Options{Document: &document.Document{Content: "Hola, mundo!"}})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlP})
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	assert.True(t, m.statsView.HasResult())

	m, _ = update(t, m, views.ClearedMsg{})
	assert.False(t, m.statsView.HasResult())
}

func TestAppOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cuento.txt")
	require.NoError(t, os.WriteFile(path, []byte("Érase una vez"), 0o644))

	m := newTestApp(t, Options{})
	m, _ = update(t, m, views.OpenRequestMsg{})
	assert.Equal(t, ViewFilePicker, m.currentView)

	m, cmd := update(t, m, views.FileSelectedMsg{Path: path})
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	assert.Equal(t, ViewEditor, m.currentView)
	assert.Equal(t, "Érase una vez", m.editorView.Value())
	assert.Equal(t, path, m.editorView.Document().Path)
}

func TestAppOpenFileError(t *testing.T) {
	m := newTestApp(t, Options{Document: &document.Document{Content: "keep"}})

	m, cmd := update(t, m, views.FileSelectedMsg{Path: filepath.Join(t.TempDir(), "missing.txt")})
	m, _ = update(t, m, cmd())

	assert.Equal(t, "keep", m.editorView.Value())
	assert.Contains(t, m.editorView.Status(), "Error: opening file:")
}

func TestAppConfigChangeSaves(t *testing.T) {
	dir := t.TempDir()
	m := newTestApp(t, Options{ConfigDir: dir})

	cfg := config.Default()
	cfg.NormalizeNFC = true
	m, _ = update(t, m, views.ConfigChangedMsg{Config: cfg})
	assert.True(t, m.config.NormalizeNFC)

	loaded, err := config.Load(dir)
	require.NoError(t, err)
	assert.True(t, loaded.NormalizeNFC)

	// NFC now applies to processing in the editor
	m.editorView.SetDocument(&document.Document{Content: "cafe\u0301"})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlP})
	require.NotNil(t, m.editorView.Result())
	assert.Equal(t, 4, m.editorView.Result().Characters)
}

func TestAppRemembersFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := recent.Open(dir)
	require.NoError(t, err)
	defer store.Close()

	opened := filepath.Join(dir, "leido.txt")
	require.NoError(t, os.WriteFile(opened, []byte("hola"), 0o644))

	m := newTestApp(t, Options{Recent: store})
	m, cmd := update(t, m, views.FileSelectedMsg{Path: opened})
	m, _ = update(t, m, cmd())

	saved := filepath.Join(dir, "guardado.txt")
	m, _ = update(t, m, views.DocumentSavedMsg{Path: saved})

	entries, err := store.List(0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, saved, entries[0].Path)
	assert.Equal(t, opened, entries[1].Path)
}
