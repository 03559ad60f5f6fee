package cmd

import (
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:     "edit [file]",
	Aliases: []string{"ui", "i"},
	Short:   "Launch the interactive editor",
	Long: `Launch the terminal editor, optionally opening a text file.

A file that does not exist yet is created on the first save.

Controls:
  ctrl+p  Process the text
  ctrl+o  Open a file
  ctrl+s  Save
  ctrl+f  Find
  ctrl+r  Replace
  esc     Sidebar
  ctrl+c  Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEditor,
}

func init() {
	rootCmd.AddCommand(editCmd)
}
