package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/f3rmion/murcielago/internal/analyzer"
	"github.com/f3rmion/murcielago/internal/report"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Print the statistics of a text",
	Long: `Analyze a text file, or stdin when no file or "-" is given, and print
its statistics and Murciélago transliteration.

Formats: text, markdown, table, yaml, json. The default is a table on a
terminal and plain text otherwise. --template replaces the text format with
a Go text/template; it sees .Source, .Result, .Stats and .Vowels.

Examples:
  murcielago analyze cuento.txt
  echo "Hola, mundo!" | murcielago analyze --format json
  murcielago analyze notes.txt --template report.tmpl`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

var (
	analyzeFormat   string
	analyzeTemplate string
	analyzeNFC      bool
)

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", "", "output format: text, markdown, table, yaml, json")
	analyzeCmd.Flags().StringVarP(&analyzeTemplate, "template", "t", "", "text/template file used instead of the text format")
	analyzeCmd.Flags().BoolVar(&analyzeNFC, "nfc", false, "compose decomposed accents before analysis")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	cfg := loadUserConfig(logger)

	text, source, err := readInput(cmd, args, 0)
	if err != nil {
		return err
	}

	renderer := report.NewRenderer()
	format, err := resolveFormat(cmd.OutOrStdout(), cfg.ReportFormat)
	if err != nil {
		return err
	}

	if analyzeTemplate != "" {
		tmpl, err := os.ReadFile(analyzeTemplate)
		if err != nil {
			return fmt.Errorf("reading template: %w", err)
		}
		if err := renderer.SetTemplate(string(tmpl)); err != nil {
			return err
		}
		format = report.FormatText
	}

	a := analyzer.New(analyzer.Options{
		NormalizeNFC: analyzeNFC || cfg.NormalizeNFC,
		Logger:       logger,
	})
	res := a.Analyze(text)

	out, err := renderer.Render(format, source, res)
	if err != nil {
		return err
	}
	logger.Debug("rendered report", slog.String("format", string(format)), slog.String("source", source))

	_, err = io.WriteString(cmd.OutOrStdout(), out)
	return err
}

// resolveFormat picks --format, then the configured default, then table on a
// terminal and text otherwise.
func resolveFormat(out io.Writer, configured string) (report.Format, error) {
	if analyzeFormat != "" {
		return report.ParseFormat(analyzeFormat)
	}
	if configured != "" {
		return report.ParseFormat(configured)
	}
	if isTerminal(out) {
		return report.FormatTable, nil
	}
	return report.FormatText, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
