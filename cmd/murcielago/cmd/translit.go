package cmd

import (
	"fmt"

	"github.com/f3rmion/murcielago/internal/analyzer"
	"github.com/spf13/cobra"
)

var translitCmd = &cobra.Command{
	Use:   "translit [file]",
	Short: "Print the Murciélago transliteration of a text",
	Long: `Replace every letter of "murcielago" with its position in the word,
case-insensitively. Every other character is kept.

Example:
  echo "Hola, mundo!" | murcielago translit
  H967, 01nd9!`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTranslit,
}

func init() {
	rootCmd.AddCommand(translitCmd)
}

func runTranslit(cmd *cobra.Command, args []string) error {
	text, _, err := readInput(cmd, args, 0)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), analyzer.Transliterate(text))
	return err
}
