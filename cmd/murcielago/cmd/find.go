package cmd

import (
	"fmt"
	"strings"

	"github.com/f3rmion/murcielago/internal/textops"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

const contextWidth = 60

var findCmd = &cobra.Command{
	Use:   "find <term> [file]",
	Short: "List the positions of a term",
	Long: `Find every case-insensitive occurrence of term and print its line and
column with the surrounding line.

Example:
  murcielago find hola cuento.txt`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	term := args[0]
	text, _, err := readInput(cmd, args, 1)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	lines := strings.Split(text, "\n")
	matches := textops.FindAll(text, term)

	for _, m := range matches {
		line, col := textops.Position(text, m.Start)
		context := strings.TrimRight(lines[line-1], "\r")
		context = runewidth.Truncate(strings.TrimSpace(context), contextWidth, "…")
		fmt.Fprintf(out, "%d:%d: %s\n", line, col, context)
	}

	fmt.Fprintf(out, "%d match(es)\n", len(matches))
	return nil
}
