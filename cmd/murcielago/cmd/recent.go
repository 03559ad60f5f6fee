package cmd

import (
	"fmt"

	"github.com/f3rmion/murcielago/internal/config"
	"github.com/f3rmion/murcielago/internal/recent"
	"github.com/spf13/cobra"
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently opened and saved files",
	Long: `List the files most recently opened or saved in the editor, newest
first. The same list is available in the editor's file picker with 'r'.`,
	Args: cobra.NoArgs,
	RunE: runRecent,
}

var (
	recentLimit int
	recentClear bool
)

func init() {
	rootCmd.AddCommand(recentCmd)
	recentCmd.Flags().IntVarP(&recentLimit, "limit", "l", recent.DefaultLimit, "number of files to show")
	recentCmd.Flags().BoolVar(&recentClear, "clear", false, "forget every recent file")
}

func runRecent(cmd *cobra.Command, args []string) error {
	configDir := getConfigDir()
	if err := config.EnsureConfigDir(configDir); err != nil {
		return err
	}

	store, err := recent.Open(configDir)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if recentClear {
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Fprintln(out, "Recent files cleared")
		return nil
	}

	entries, err := store.List(recentLimit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, "No recent files")
		return nil
	}

	for _, e := range entries {
		fmt.Fprintf(out, "%s  %s\n", e.UsedAt.Format("2006-01-02 15:04"), e.Path)
	}
	return nil
}
