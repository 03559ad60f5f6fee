package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAndSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "texto.txt")
	require.NoError(t, os.WriteFile(path, []byte("El murciélago\n"), 0o644))

	doc, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, "El murciélago\n", doc.Content)
	assert.Equal(t, "murcielago - texto.txt", doc.Title())
	assert.False(t, doc.Dirty)

	doc.SetContent("otro texto")
	assert.True(t, doc.Dirty)
	require.NoError(t, doc.Save())
	assert.False(t, doc.Dirty)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "otro texto", string(got))
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening file")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSaveWithoutPath(t *testing.T) {
	doc := New()
	doc.SetContent("hola")
	assert.ErrorIs(t, doc.Save(), ErrNoPath)
	assert.Equal(t, DefaultTitle, doc.Title())
}

func TestSaveAs(t *testing.T) {
	dir := t.TempDir()
	doc := New()
	doc.SetContent("hola")

	path := filepath.Join(dir, "nuevo.txt")
	require.NoError(t, doc.SaveAs(path))
	assert.Equal(t, path, doc.Path)
	assert.Equal(t, "nuevo.txt", doc.Name())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hola", string(got))
}

func TestSaveAsFailurePreservesState(t *testing.T) {
	dir := t.TempDir()
	doc := &Document{Path: filepath.Join(dir, "a.txt"), Content: "datos", Dirty: true}

	err := doc.SaveAs(filepath.Join(dir, "no-such-dir", "b.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "saving file")
	assert.Equal(t, filepath.Join(dir, "a.txt"), doc.Path)
	assert.Equal(t, "datos", doc.Content)
	assert.True(t, doc.Dirty)
}

func TestClear(t *testing.T) {
	doc := &Document{Path: "x.txt", Content: "x", Dirty: true}
	doc.Clear()
	assert.Equal(t, Document{}, *doc)
}
