// Package document handles loading and saving the text being edited.
package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultTitle is the window title when no file is associated.
const DefaultTitle = "murcielago - Murciélago cipher"

// ErrNoPath is returned by Save when the document has never been saved.
var ErrNoPath = errors.New("document has no file path")

// Document is the text buffer plus the file it came from.
type Document struct {
	Path    string
	Content string
	Dirty   bool
}

// New creates an empty, unsaved document.
func New() *Document {
	return &Document{}
}

// Open reads a UTF-8 text file in full.
func Open(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	return &Document{Path: path, Content: string(data)}, nil
}

// SetContent updates the buffer, marking the document dirty when it changed.
func (d *Document) SetContent(s string) {
	if s != d.Content {
		d.Content = s
		d.Dirty = true
	}
}

// Save writes the content to the current path, overwriting it.
func (d *Document) Save() error {
	if d.Path == "" {
		return ErrNoPath
	}
	if err := write(d.Path, d.Content); err != nil {
		return err
	}
	d.Dirty = false
	return nil
}

// SaveAs writes the content to path and makes it the current path. The
// previous path is kept if the write fails.
func (d *Document) SaveAs(path string) error {
	if path == "" {
		return ErrNoPath
	}
	if err := write(path, d.Content); err != nil {
		return err
	}
	d.MarkSaved(path)
	return nil
}

// MarkSaved records that content was written to path.
func (d *Document) MarkSaved(path string) {
	d.Path = path
	d.Dirty = false
}

// Clear empties the buffer and forgets the file.
func (d *Document) Clear() {
	*d = Document{}
}

// Name returns the base name of the current file, or "" when unsaved.
func (d *Document) Name() string {
	if d.Path == "" {
		return ""
	}
	return filepath.Base(d.Path)
}

// AbsPath returns the absolute form of the current path.
func (d *Document) AbsPath() string {
	if d.Path == "" {
		return ""
	}
	abs, err := filepath.Abs(d.Path)
	if err != nil {
		return d.Path
	}
	return abs
}

// Title returns the window title for the document.
func (d *Document) Title() string {
	if name := d.Name(); name != "" {
		return "murcielago - " + name
	}
	return DefaultTitle
}

// write stores content at path as UTF-8, overwriting any existing file.
func write(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("saving file: %w", err)
	}
	return nil
}
