package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/murcielago/internal/analyzer"
	"github.com/f3rmion/murcielago/internal/config"
	"github.com/f3rmion/murcielago/internal/document"
	"github.com/f3rmion/murcielago/internal/recent"
	"github.com/f3rmion/murcielago/internal/tui/views"
)

// ViewType represents the current active view
type ViewType int

const (
	ViewEditor ViewType = iota
	ViewStats
	ViewFilePicker
	ViewSettings
)

// MenuItem represents a sidebar menu entry
type MenuItem struct {
	Label    string
	View     ViewType
	Shortcut string
}

// ViewSwitchMsg requests a view change
type ViewSwitchMsg struct {
	View ViewType
}

// Options configures a new App.
type Options struct {
	Config    *config.Config
	ConfigDir string
	Logger    *slog.Logger
	// Document is opened in the editor on start.
	Document *document.Document
	// Recent remembers opened and saved files. Optional.
	Recent *recent.Store
}

// AppModel is the root TUI model
type AppModel struct {
	config    *config.Config
	configDir string
	logger    *slog.Logger
	recent    *recent.Store

	width        int
	height       int
	sidebarWidth int
	ready        bool

	currentView   ViewType
	menuItems     []MenuItem
	selectedMenu  int
	sidebarActive bool

	editorView     views.EditorModel
	statsView      views.StatsModel
	filePickerView views.FilePickerModel
	settingsView   views.SettingsModel

	showHelp bool
}

// NewApp creates the TUI application.
func NewApp(opts Options) AppModel {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	menuItems := []MenuItem{
		{Label: "Editor", View: ViewEditor, Shortcut: "1"},
		{Label: "Statistics", View: ViewStats, Shortcut: "2"},
		{Label: "Open File", View: ViewFilePicker, Shortcut: "3"},
		{Label: "Settings", View: ViewSettings, Shortcut: "4"},
	}

	a := analyzer.New(analyzer.Options{NormalizeNFC: cfg.NormalizeNFC, Logger: logger})

	app := AppModel{
		config:       cfg,
		configDir:    opts.ConfigDir,
		logger:       logger,
		recent:       opts.Recent,
		sidebarWidth: 18,
		currentView:  ViewEditor,
		menuItems:    menuItems,

		editorView:     views.NewEditorModel(a, logger, cfg.ShowLineNumbers),
		statsView:      views.NewStatsModel(),
		filePickerView: views.NewFilePickerModel(cfg.StartDir, cfg.Extensions),
		settingsView:   views.NewSettingsModel(cfg, opts.ConfigDir),
	}

	if opts.Document != nil {
		app.editorView.SetDocument(opts.Document)
		if opts.Document.Path != "" {
			app.remember(opts.Document.Path)
		}
	}
	app.loadRecent()

	return app
}

// Init initializes the model
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, tea.SetWindowTitle(m.editorView.Document().Title()))
}

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// the editor keeps esc while a prompt or highlight is open
			if !m.sidebarActive && m.currentView == ViewEditor && m.editorView.Capturing() {
				break
			}
			m.sidebarActive = !m.sidebarActive
			return m, nil
		}

		// Letter and digit shortcuts would be typed into the editor.
		if m.sidebarActive || m.currentView != ViewEditor {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "?":
				m.showHelp = true
				return m, nil
			case "1", "2", "3", "4":
				idx := int(msg.String()[0] - '1')
				return m.switchView(m.menuItems[idx].View)
			}
		}

		if m.sidebarActive {
			switch msg.String() {
			case "j", "down":
				if m.selectedMenu < len(m.menuItems)-1 {
					m.selectedMenu++
				}
			case "k", "up":
				if m.selectedMenu > 0 {
					m.selectedMenu--
				}
			case "enter", "l", "right":
				return m.switchView(m.menuItems[m.selectedMenu].View)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		contentWidth := m.width - m.sidebarWidth - 4
		contentHeight := m.height - 2

		m.editorView.SetSize(contentWidth, contentHeight)
		m.statsView.SetSize(contentWidth, contentHeight)
		m.filePickerView.SetSize(contentWidth, contentHeight)
		m.settingsView.SetSize(contentWidth, contentHeight)
		return m, nil

	case ViewSwitchMsg:
		return m.switchView(msg.View)

	case views.OpenRequestMsg:
		m.filePickerView.Refresh()
		return m.switchView(ViewFilePicker)

	case views.FileSelectedMsg:
		m.logger.Debug("opening file", slog.String("path", msg.Path))
		return m, views.LoadDocument(msg.Path)

	case views.DocumentLoadedMsg:
		if msg.Err != nil {
			m.logger.Error("open failed", slog.String("path", msg.Path), slog.Any("error", msg.Err))
			var cmd tea.Cmd
			m.editorView, cmd = m.editorView.Update(views.StatusMsg{Text: "Error: " + msg.Err.Error(), Err: true})
			next, switchCmd := m.switchView(ViewEditor)
			return next, tea.Batch(cmd, switchCmd)
		}
		m.logger.Info("file opened", slog.String("path", msg.Path), slog.Int("bytes", len(msg.Doc.Content)))
		statusCmd := m.editorView.SetDocument(msg.Doc)
		m.remember(msg.Path)
		m.statsView.Clear()
		next, cmd := m.switchView(ViewEditor)
		return next, tea.Batch(cmd, statusCmd, tea.SetWindowTitle(msg.Doc.Title()))

	case views.DocumentSavedMsg:
		m.remember(msg.Path)
		return m, tea.SetWindowTitle(m.editorView.Document().Title())

	case views.AnalysisMsg:
		m.statsView.SetResult(msg.Result, m.editorView.Document().Name())
		return m, nil

	case views.ClearedMsg:
		m.statsView.Clear()
		return m, tea.SetWindowTitle(document.DefaultTitle)

	case views.ConfigChangedMsg:
		return m.applyConfig(msg.Config)
	}

	var cmd tea.Cmd
	if _, isKey := msg.(tea.KeyMsg); isKey && m.sidebarActive {
		return m, nil
	}
	switch m.currentView {
	case ViewEditor:
		m.editorView, cmd = m.editorView.Update(msg)
	case ViewStats:
		m.statsView, cmd = m.statsView.Update(msg)
	case ViewFilePicker:
		m.filePickerView, cmd = m.filePickerView.Update(msg)
	case ViewSettings:
		m.settingsView, cmd = m.settingsView.Update(msg)
	}

	// Save completions and status timers belong to the editor whichever
	// view is showing.
	if m.currentView != ViewEditor {
		if _, isKey := msg.(tea.KeyMsg); !isKey {
			var editorCmd tea.Cmd
			m.editorView, editorCmd = m.editorView.Update(msg)
			cmd = tea.Batch(cmd, editorCmd)
		}
	}

	return m, cmd
}

func (m AppModel) switchView(v ViewType) (AppModel, tea.Cmd) {
	m.currentView = v
	m.sidebarActive = false
	for i, item := range m.menuItems {
		if item.View == v {
			m.selectedMenu = i
			break
		}
	}
	return m, nil
}

// remember records path in the recent files store and refreshes the picker.
func (m *AppModel) remember(path string) {
	if m.recent == nil {
		return
	}
	if err := m.recent.Touch(path, time.Now()); err != nil {
		m.logger.Warn("recording recent file", slog.Any("error", err))
		return
	}
	m.loadRecent()
}

func (m *AppModel) loadRecent() {
	if m.recent == nil {
		return
	}
	entries, err := m.recent.List(recent.DefaultLimit)
	if err != nil {
		m.logger.Warn("listing recent files", slog.Any("error", err))
		return
	}
	paths := make([]string, len(entries))
	for i, e := range entries {
		paths[i] = e.Path
	}
	m.filePickerView.SetRecent(paths)
}

func (m AppModel) applyConfig(cfg *config.Config) (AppModel, tea.Cmd) {
	m.config = cfg
	m.editorView.ApplyConfig(analyzer.New(analyzer.Options{NormalizeNFC: cfg.NormalizeNFC, Logger: m.logger}), cfg.ShowLineNumbers)

	if m.configDir == "" {
		return m, nil
	}
	if err := config.EnsureConfigDir(m.configDir); err != nil {
		m.logger.Error("saving config", slog.Any("error", err))
		return m, nil
	}
	if err := config.Save(m.configDir, cfg); err != nil {
		m.logger.Error("saving config", slog.Any("error", err))
	}
	return m, nil
}

// View renders the UI
func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	sidebar := m.renderSidebar()

	var content string
	switch m.currentView {
	case ViewEditor:
		content = m.editorView.View()
	case ViewStats:
		content = m.statsView.View()
	case ViewFilePicker:
		content = m.filePickerView.View()
	case ViewSettings:
		content = m.settingsView.View()
	}

	contentWidth := m.width - m.sidebarWidth - 4
	mainContent := ContentStyle.
		Width(contentWidth).
		Height(m.height - 2).
		Render(content)

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, mainContent)
}

func (m AppModel) renderSidebar() string {
	var items []string

	items = append(items, SidebarTitleStyle.Render(" murciélago "))
	items = append(items, "")

	for i, item := range m.menuItems {
		label := item.Shortcut + ". " + item.Label

		var style lipgloss.Style
		if i == m.selectedMenu {
			if m.sidebarActive {
				style = SidebarItemActiveStyle
			} else {
				style = SidebarItemStyle.Bold(true).Foreground(ColorSecondary)
			}
		} else {
			style = SidebarItemStyle
		}

		items = append(items, style.Render(label))
	}

	usedHeight := len(items) + 4
	for i := 0; i < m.height-usedHeight-2; i++ {
		items = append(items, "")
	}

	items = append(items, SidebarHelpStyle.Render("esc Menu  ? Help"))

	content := lipgloss.JoinVertical(lipgloss.Left, items...)

	return SidebarStyle.
		Width(m.sidebarWidth).
		Height(m.height - 2).
		Render(content)
}

type helpSection struct {
	title string
	keys  [][2]string
}

var helpSections = []helpSection{
	{"Global", [][2]string{
		{"esc", "Toggle sidebar focus"},
		{"1-4", "Switch views (sidebar)"},
		{"?", "Show this help (sidebar)"},
		{"ctrl+c", "Quit"},
	}},
	{"Editor", [][2]string{
		{"ctrl+p", "Process text"},
		{"ctrl+l", "Clear"},
		{"ctrl+o", "Open file"},
		{"ctrl+s", "Save"},
		{"ctrl+g", "Save as"},
		{"ctrl+f", "Find and highlight"},
		{"ctrl+r", "Replace all"},
		{"ctrl+y/x/v", "Copy/cut/paste"},
	}},
	{"Statistics", [][2]string{
		{"y", "Copy transliteration"},
		{"j/k", "Scroll"},
	}},
	{"Open File", [][2]string{
		{"enter", "Open file/enter dir"},
		{"backspace", "Parent dir"},
		{"r", "Recent files"},
		{"a", "Toggle all files"},
	}},
}

func (m AppModel) renderHelp() string {
	helpText := HelpTitleStyle.Render("murcielago - Text statistics and cipher") + "\n"

	for _, section := range helpSections {
		helpText += HelpSectionStyle.Render(section.title) + "\n"
		for _, kv := range section.keys {
			helpText += HelpKeyStyle.Render(kv[0]) + HelpDescStyle.Render(kv[1]) + "\n"
		}
	}

	helpText += "\n" + lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true).
		Render("Press any key to close")

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, HelpBoxStyle.Render(helpText))
}
