package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/f3rmion/murcielago/internal/document"
	"github.com/f3rmion/murcielago/internal/textops"
	"github.com/spf13/cobra"
)

var replaceCmd = &cobra.Command{
	Use:   "replace <find> <replace> <file>",
	Short: "Replace every occurrence of a string in a file",
	Long: `Replace every literal, case-sensitive occurrence of find with replace.

The file is rewritten in place unless --output names another file.
--dry-run prints the result instead of writing it.

Examples:
  murcielago replace hola adiós cuento.txt
  murcielago replace hola adiós cuento.txt --output copia.txt`,
	Args: cobra.ExactArgs(3),
	RunE: runReplace,
}

var (
	replaceOutput string
	replaceDryRun bool
)

func init() {
	rootCmd.AddCommand(replaceCmd)
	replaceCmd.Flags().StringVarP(&replaceOutput, "output", "o", "", "write the result to this file instead")
	replaceCmd.Flags().BoolVarP(&replaceDryRun, "dry-run", "n", false, "print the result instead of writing it")
}

func runReplace(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	find, repl, path := args[0], args[1], args[2]

	doc, err := document.Open(path)
	if err != nil {
		return err
	}

	text, n := textops.Replace(doc.Content, find, repl)
	logger.Debug("replace", slog.String("file", path), slog.Int("count", n))

	if replaceDryRun {
		_, err := io.WriteString(cmd.OutOrStdout(), text)
		return err
	}

	doc.SetContent(text)
	dest := path
	if replaceOutput != "" {
		dest = replaceOutput
	}
	if err := doc.SaveAs(dest); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Replaced %d occurrence(s) in %s\n", n, doc.AbsPath())
	return nil
}
