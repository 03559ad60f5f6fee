package views

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	fpPathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Italic(true)

	fpDirStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ecdc4")).
			Bold(true)

	fpFileStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee"))

	fpSelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffe66d")).
			Background(lipgloss.Color("#2d3436"))
)

// FileEntry is a directory or a text file shown in the picker.
type FileEntry struct {
	Name  string
	IsDir bool
	Path  string
}

// FilePickerModel browses the filesystem for a text file to open.
type FilePickerModel struct {
	currentDir string
	entries    []FileEntry
	selected   int
	offset     int

	extensions []string
	configured []string
	showHidden bool

	recent     []string
	showRecent bool

	err error

	width  int
	height int
}

// NewFilePickerModel creates a picker rooted at startDir, listing files with
// one of extensions. An empty extension list shows every file.
func NewFilePickerModel(startDir string, extensions []string) FilePickerModel {
	dir := expandHome(startDir)
	if dir == "" {
		dir, _ = os.Getwd()
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		dir = homeDir()
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}

	m := FilePickerModel{
		currentDir: dir,
		extensions: extensions,
		configured: extensions,
	}
	m.loadDir()
	return m
}

// SetSize updates the view dimensions.
func (m *FilePickerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// CurrentDir returns the directory being listed.
func (m FilePickerModel) CurrentDir() string {
	return m.currentDir
}

// Entries returns the listed entries.
func (m FilePickerModel) Entries() []FileEntry {
	return m.entries
}

// Refresh re-reads the current directory.
func (m *FilePickerModel) Refresh() {
	m.loadDir()
}

// SetRecent sets the recently used files, most recent first.
func (m *FilePickerModel) SetRecent(paths []string) {
	m.recent = paths
	if m.showRecent {
		m.loadDir()
	}
}

// ShowingRecent reports whether the recent files list is shown.
func (m FilePickerModel) ShowingRecent() bool {
	return m.showRecent
}

func (m *FilePickerModel) loadDir() {
	m.entries = nil
	m.selected = 0
	m.offset = 0
	m.err = nil

	if m.showRecent {
		m.loadRecent()
		return
	}

	entries, err := os.ReadDir(m.currentDir)
	if err != nil {
		m.err = err
		return
	}

	if parent := filepath.Dir(m.currentDir); parent != m.currentDir {
		m.entries = append(m.entries, FileEntry{Name: "..", IsDir: true, Path: parent})
	}

	var dirs, files []FileEntry
	for _, entry := range entries {
		if !m.showHidden && strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		fe := FileEntry{
			Name:  entry.Name(),
			IsDir: entry.IsDir(),
			Path:  filepath.Join(m.currentDir, entry.Name()),
		}
		if fe.IsDir {
			dirs = append(dirs, fe)
		} else if m.matchesExtension(fe.Name) {
			files = append(files, fe)
		}
	}

	byName := func(list []FileEntry) func(i, j int) bool {
		return func(i, j int) bool {
			return strings.ToLower(list[i].Name) < strings.ToLower(list[j].Name)
		}
	}
	sort.Slice(dirs, byName(dirs))
	sort.Slice(files, byName(files))

	m.entries = append(m.entries, dirs...)
	m.entries = append(m.entries, files...)
}

func (m *FilePickerModel) loadRecent() {
	for _, path := range m.recent {
		if info, err := os.Stat(path); err != nil || info.IsDir() {
			continue
		}
		m.entries = append(m.entries, FileEntry{Name: path, Path: path})
	}
}

func (m *FilePickerModel) matchesExtension(name string) bool {
	if len(m.extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range m.extensions {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}

func (m *FilePickerModel) changeDir(dir string) {
	m.currentDir = dir
	m.showRecent = false
	m.loadDir()
}

// Update handles messages.
func (m FilePickerModel) Update(msg tea.Msg) (FilePickerModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "j", "down":
		if m.selected < len(m.entries)-1 {
			m.selected++
			m.adjustScroll()
		}
	case "k", "up":
		if m.selected > 0 {
			m.selected--
			m.adjustScroll()
		}
	case "enter", "l", "right":
		if m.selected < len(m.entries) {
			entry := m.entries[m.selected]
			if entry.IsDir {
				m.changeDir(entry.Path)
				return m, nil
			}
			return m, emit(FileSelectedMsg{Path: entry.Path})
		}
	case "r":
		m.showRecent = !m.showRecent
		m.loadDir()
	case "backspace", "h", "left":
		if m.showRecent {
			m.showRecent = false
			m.loadDir()
			return m, nil
		}
		if parent := filepath.Dir(m.currentDir); parent != m.currentDir {
			m.changeDir(parent)
		}
	case "~":
		if home := homeDir(); home != "" {
			m.changeDir(home)
		}
	case ".":
		m.showHidden = !m.showHidden
		m.loadDir()
	case "a":
		if len(m.extensions) > 0 {
			m.extensions = nil
		} else {
			m.extensions = m.configured
		}
		m.loadDir()
	case "g":
		m.selected = 0
		m.offset = 0
	case "G":
		m.selected = maxInt(len(m.entries)-1, 0)
		m.adjustScroll()
	case "ctrl+d":
		m.selected = minInt(m.selected+m.visibleHeight()/2, maxInt(len(m.entries)-1, 0))
		m.adjustScroll()
	case "ctrl+u":
		m.selected = maxInt(m.selected-m.visibleHeight()/2, 0)
		m.adjustScroll()
	}
	return m, nil
}

func (m *FilePickerModel) visibleHeight() int {
	return maxInt(m.height-8, 5)
}

func (m *FilePickerModel) adjustScroll() {
	h := m.visibleHeight()
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+h {
		m.offset = m.selected - h + 1
	}
}

// View renders the file picker.
func (m FilePickerModel) View() string {
	var b strings.Builder

	title, location := "Open Text File", m.currentDir
	if m.showRecent {
		title, location = "Recent Files", "most recent first"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(fpPathStyle.Render(location))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}

	divider := dividerStyle.Render(strings.Repeat("─", maxInt(minInt(m.width-4, 60), 1)))
	b.WriteString(divider)
	b.WriteString("\n")

	h := m.visibleHeight()
	end := minInt(m.offset+h, len(m.entries))

	switch {
	case m.showRecent && len(m.entries) == 0:
		b.WriteString(helpStyle.Render("  (no recent files)"))
		b.WriteString("\n")
	case len(m.entries) == 0 || (len(m.entries) == 1 && m.entries[0].Name == ".."):
		b.WriteString(helpStyle.Render("  (no " + m.filterLabel() + " files here)"))
		b.WriteString("\n")
	}

	for i := m.offset; i < end; i++ {
		entry := m.entries[i]

		line := "[FILE] " + entry.Name
		style := fpFileStyle
		if entry.IsDir {
			line = "[DIR]  " + entry.Name
			style = fpDirStyle
		}

		prefix := "  "
		if i == m.selected {
			prefix = "> "
			style = fpSelectedStyle
		}
		b.WriteString(prefix + style.Render(line) + "\n")
	}

	if len(m.entries) > h {
		b.WriteString(helpStyle.Render(strings.Repeat(" ", 50) + "↕ scroll"))
		b.WriteString("\n")
	}

	b.WriteString(divider)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: open • backspace: parent • ~: home • r: recent • .: hidden • a: all files • esc: menu"))

	return b.String()
}

func (m FilePickerModel) filterLabel() string {
	if len(m.extensions) == 0 {
		return "readable"
	}
	return strings.Join(m.extensions, "/")
}

func homeDir() string {
	home, _ := os.UserHomeDir()
	if home == "" {
		return "/"
	}
	return home
}

func expandHome(path string) string {
	if path == "~" {
		return homeDir()
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir(), path[2:])
	}
	return path
}
