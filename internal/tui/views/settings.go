package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/murcielago/internal/analyzer"
	"github.com/f3rmion/murcielago/internal/config"
)

var (
	settingsPathStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666")).
				Italic(true)

	settingsTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#888888")).
				Padding(0, 2)

	settingsTabActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#ffe66d")).
				Background(lipgloss.Color("#2d3436")).
				Padding(0, 2)

	settingsHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#a8dadc"))

	settingsRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#f1faee"))

	settingsCursorStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#ffe66d"))
)

var settingsTabs = []string{"General", "Cipher", "Keys"}

// ConfigChangedMsg is sent when a setting was toggled.
type ConfigChangedMsg struct {
	Config *config.Config
}

// SettingsModel shows the configuration, the cipher table and key bindings.
type SettingsModel struct {
	config    *config.Config
	configDir string

	tab    int
	cursor int

	width  int
	height int
}

type toggle struct {
	label string
	get   func(*config.Config) bool
	set   func(*config.Config, bool)
}

var toggles = []toggle{
	{
		label: "Normalize accents (NFC)",
		get:   func(c *config.Config) bool { return c.NormalizeNFC },
		set:   func(c *config.Config, v bool) { c.NormalizeNFC = v },
	},
	{
		label: "Editor line numbers",
		get:   func(c *config.Config) bool { return c.ShowLineNumbers },
		set:   func(c *config.Config, v bool) { c.ShowLineNumbers = v },
	},
}

// NewSettingsModel creates the settings view.
func NewSettingsModel(cfg *config.Config, configDir string) SettingsModel {
	if cfg == nil {
		cfg = config.Default()
	}
	return SettingsModel{
		config:    cfg,
		configDir: configDir,
	}
}

// SetSize updates the view dimensions.
func (m *SettingsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Config returns the current configuration.
func (m SettingsModel) Config() *config.Config {
	return m.config
}

// Update handles messages.
func (m SettingsModel) Update(msg tea.Msg) (SettingsModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "tab", "right", "l":
		m.tab = (m.tab + 1) % len(settingsTabs)
	case "shift+tab", "left", "h":
		m.tab = (m.tab + len(settingsTabs) - 1) % len(settingsTabs)
	case "j", "down":
		if m.tab == 0 && m.cursor < len(toggles)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.tab == 0 && m.cursor > 0 {
			m.cursor--
		}
	case " ", "space", "enter":
		if m.tab != 0 {
			return m, nil
		}
		t := toggles[m.cursor]
		next := *m.config
		t.set(&next, !t.get(m.config))
		m.config = &next
		return m, emit(ConfigChangedMsg{Config: m.config})
	}
	return m, nil
}

// View renders the settings view.
func (m SettingsModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Settings"))
	b.WriteString("\n\n")
	b.WriteString(settingsPathStyle.Render("Config: " + m.configDir))
	b.WriteString("\n\n")

	var tabViews []string
	for i, t := range settingsTabs {
		style := settingsTabStyle
		if i == m.tab {
			style = settingsTabActiveStyle
		}
		tabViews = append(tabViews, style.Render(t))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabViews...))
	b.WriteString("\n")
	b.WriteString(dividerStyle.Render(strings.Repeat("─", maxInt(minInt(m.width-4, 60), 1))))
	b.WriteString("\n\n")

	switch m.tab {
	case 0:
		b.WriteString(m.renderGeneral())
	case 1:
		b.WriteString(renderCipherTable())
	case 2:
		b.WriteString(renderKeys())
	}

	b.WriteString("\n\n")
	help := "tab/←→: switch tabs"
	if m.tab == 0 {
		help += " • j/k: move • space: toggle"
	}
	b.WriteString(helpStyle.Render(help))

	return b.String()
}

func (m SettingsModel) renderGeneral() string {
	var b strings.Builder

	for i, t := range toggles {
		mark := "[ ]"
		if t.get(m.config) {
			mark = "[x]"
		}
		prefix := "  "
		style := settingsRowStyle
		if i == m.cursor {
			prefix = "> "
			style = settingsCursorStyle
		}
		b.WriteString(prefix + style.Render(mark+" "+t.label) + "\n")
	}

	b.WriteString("\n")
	exts := "(all files)"
	if len(m.config.Extensions) > 0 {
		exts = strings.Join(m.config.Extensions, ", ")
	}
	start := m.config.StartDir
	if start == "" {
		start = "(working directory)"
	}
	format := m.config.ReportFormat
	if format == "" {
		format = "(auto)"
	}
	b.WriteString(labelStyle.Render("File extensions") + valueStyle.Render(exts) + "\n")
	b.WriteString(labelStyle.Render("Start directory") + valueStyle.Render(start) + "\n")
	b.WriteString(labelStyle.Render("Report format") + valueStyle.Render(format))

	return b.String()
}

func renderCipherTable() string {
	var b strings.Builder

	b.WriteString(settingsHeaderStyle.Render("Murciélago key"))
	b.WriteString("\n\n")

	var letters, digits []string
	for _, r := range analyzer.CipherKeys {
		d, _ := analyzer.Lookup(r)
		letters = append(letters, fmt.Sprintf(" %c ", r))
		digits = append(digits, digitStyle.Render(fmt.Sprintf(" %c ", d)))
	}
	b.WriteString(settingsRowStyle.Render(strings.Join(letters, "")))
	b.WriteString("\n")
	b.WriteString(strings.Join(digits, ""))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("Uppercase letters use the same digit. Every other character is kept."))

	return b.String()
}

var keyBindings = [][2]string{
	{"ctrl+p", "Process text"},
	{"ctrl+l", "Clear text and results"},
	{"ctrl+o", "Open file"},
	{"ctrl+s", "Save"},
	{"ctrl+g", "Save as"},
	{"ctrl+f", "Find and highlight"},
	{"ctrl+r", "Replace all"},
	{"ctrl+y / ctrl+x", "Copy / cut all"},
	{"ctrl+v", "Paste"},
	{"esc", "Toggle sidebar"},
	{"ctrl+c", "Quit"},
}

func renderKeys() string {
	var b strings.Builder
	for _, kb := range keyBindings {
		b.WriteString(labelStyle.Render(kb[0]) + valueStyle.Render(kb[1]) + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}
