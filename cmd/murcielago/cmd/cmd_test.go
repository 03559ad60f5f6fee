package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/f3rmion/murcielago/internal/analyzer"
	"github.com/f3rmion/murcielago/internal/config"
	"github.com/f3rmion/murcielago/internal/recent"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI with a private config directory.
func run(t *testing.T, configDir, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { resetFlags(rootCmd) })

	if configDir == "" {
		configDir = t.TempDir()
	}

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append(args, "--config", configDir))

	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestTranslitStdin(t *testing.T) {
	out, err := run(t, "", "Hola, mundo!", "translit")
	require.NoError(t, err)
	assert.Equal(t, "H967, 01nd9!", out)
}

func TestTranslitDash(t *testing.T) {
	out, err := run(t, "", "MURCIELAGO", "translit", "-")
	require.NoError(t, err)
	assert.Equal(t, "0123456789", out)
}

func TestAnalyzeText(t *testing.T) {
	path := writeFile(t, "hola.txt", "Hola, mundo!")

	out, err := run(t, "", "", "analyze", path)
	require.NoError(t, err)
	assert.Contains(t, out, "== "+path+" ==")
	assert.Contains(t, out, "Characters         12")
	assert.Contains(t, out, "H967, 01nd9!")
}

func TestAnalyzeJSON(t *testing.T) {
	out, err := run(t, "", "uno dos uno", "analyze", "--format", "json")
	require.NoError(t, err)

	var res analyzer.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 3, res.Words)
	assert.Equal(t, "uno", res.MostFrequentWord)
	assert.Equal(t, 1, res.Lines)
}

func TestAnalyzeTable(t *testing.T) {
	out, err := run(t, "", "abc", "analyze", "-f", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "STATISTIC")
	assert.Contains(t, out, "Murciélago:")
}

func TestAnalyzeUnknownFormat(t *testing.T) {
	_, err := run(t, "", "abc", "analyze", "--format", "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestAnalyzeTemplate(t *testing.T) {
	tmpl := writeFile(t, "report.tmpl", "{{.Result.Words}} words, {{len .Stats}} rows")

	out, err := run(t, "", "Hola, mundo!", "analyze", "--template", tmpl)
	require.NoError(t, err)
	assert.Equal(t, "2 words, 14 rows", out)
}

func TestAnalyzeNFC(t *testing.T) {
	out, err := run(t, "", "cafe\u0301", "analyze", "--nfc", "--format", "json")
	require.NoError(t, err)

	var res analyzer.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 4, res.Characters)
}

func TestAnalyzeConfiguredFormat(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.ReportFormat = "yaml"
	require.NoError(t, config.Save(dir, cfg))

	out, err := run(t, dir, "Hola", "analyze")
	require.NoError(t, err)
	assert.Contains(t, out, "characters: 4")
}

func TestAnalyzeMissingFile(t *testing.T) {
	_, err := run(t, "", "", "analyze", filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading")
}

func TestFind(t *testing.T) {
	path := writeFile(t, "saludo.txt", "Hola mundo\r\ny hola otra vez")

	out, err := run(t, "", "", "find", "HOLA", path)
	require.NoError(t, err)
	assert.Equal(t, "1:1: Hola mundo\n2:3: y hola otra vez\n2 match(es)\n", out)
}

func TestFindNoMatches(t *testing.T) {
	out, err := run(t, "", "abc", "find", "zz")
	require.NoError(t, err)
	assert.Equal(t, "0 match(es)\n", out)
}

func TestReplaceInPlace(t *testing.T) {
	path := writeFile(t, "doc.txt", "uno dos uno")

	out, err := run(t, "", "", "replace", "uno", "1", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Replaced 2 occurrence(s)")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1 dos 1", string(data))
}

func TestReplaceOutput(t *testing.T) {
	path := writeFile(t, "doc.txt", "Uno uno")
	dest := filepath.Join(t.TempDir(), "copy.txt")

	_, err := run(t, "", "", "replace", "uno", "one", path, "--output", dest)
	require.NoError(t, err)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "Uno one", string(data))

	orig, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Uno uno", string(orig))
}

func TestReplaceDryRun(t *testing.T) {
	path := writeFile(t, "doc.txt", "a-b-c")

	out, err := run(t, "", "", "replace", "-", "+", path, "--dry-run")
	require.NoError(t, err)
	assert.Equal(t, "a+b+c", out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a-b-c", string(data))
}

func TestReplaceMissingFile(t *testing.T) {
	_, err := run(t, "", "", "replace", "a", "b", filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening file:")
}

func TestInit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "murcielago")

	out, err := run(t, dir, "", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Created")

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	_, err = run(t, dir, "", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = run(t, dir, "", "init", "--force")
	require.NoError(t, err)
}

func TestOpenOrCreate(t *testing.T) {
	existing := writeFile(t, "a.txt", "hola")
	doc, err := openOrCreate(existing)
	require.NoError(t, err)
	assert.Equal(t, "hola", doc.Content)

	fresh := filepath.Join(t.TempDir(), "new.txt")
	doc, err = openOrCreate(fresh)
	require.NoError(t, err)
	assert.Equal(t, fresh, doc.Path)
	assert.Empty(t, doc.Content)

	_, err = openOrCreate(filepath.Join(t.TempDir(), "missing", "new.txt"))
	assert.Error(t, err)
}

func TestRecent(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "", "recent")
	require.NoError(t, err)
	assert.Equal(t, "No recent files\n", out)

	store, err := recent.Open(dir)
	require.NoError(t, err)
	require.NoError(t, store.Touch("/tmp/uno.txt", time.Date(2024, 5, 1, 10, 30, 0, 0, time.Local)))
	require.NoError(t, store.Close())

	out, err = run(t, dir, "", "recent")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01 10:30  /tmp/uno.txt\n", out)

	out, err = run(t, dir, "", "recent", "--clear")
	require.NoError(t, err)
	assert.Equal(t, "Recent files cleared\n", out)
}
