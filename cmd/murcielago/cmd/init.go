package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/murcielago/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize murcielago configuration",
	Long: `Write a commented config.yaml with the default settings to your config
directory. Edit it to change the file picker filter, the default report
format or accent normalization.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()
	path := filepath.Join(configDir, config.FileName)

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", path)
	}

	if err := config.EnsureConfigDir(configDir); err != nil {
		return err
	}
	if err := config.WriteTemplate(configDir); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n\n", path)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Edit config.yaml to taste")
	fmt.Fprintln(out, "  2. Run 'murcielago' to open the editor")
	fmt.Fprintln(out, "  3. Run 'murcielago analyze <file>' for a report")

	return nil
}
