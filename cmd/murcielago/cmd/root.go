// Package cmd contains all CLI commands for murcielago.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/murcielago/internal/config"
	"github.com/f3rmion/murcielago/internal/document"
	"github.com/f3rmion/murcielago/internal/logging"
	"github.com/f3rmion/murcielago/internal/recent"
	"github.com/f3rmion/murcielago/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "murcielago [file]",
	Short: "Text statistics and the Murciélago cipher",
	Long: `murcielago counts characters, words, lines, vowels, consonants and
sentences in a text, finds its most frequent word and average word length,
and transliterates it with the Murciélago cipher:

  m u r c i e l a g o
  0 1 2 3 4 5 6 7 8 9

Running 'murcielago' without a subcommand launches the interactive editor.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runEditor,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/murcielago)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in ENV variables and resolves the config directory.
func initConfig() {
	viper.SetEnvPrefix("MURCIELAGO")
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
		return
	}

	dir, err := config.GetConfigDir()
	if err != nil {
		// no home directory; fall back to the working directory
		dir = ".murcielago"
	}
	viper.SetDefault("config_dir", dir)
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// newLogger returns the CLI logger, writing text records to stderr.
func newLogger(cmd *cobra.Command) *slog.Logger {
	return logging.NewTextLogger(cmd.ErrOrStderr(), logging.Level(viper.GetBool("verbose")))
}

// loadUserConfig loads config.yaml, warning and using defaults when it is broken.
func loadUserConfig(logger *slog.Logger) *config.Config {
	cfg, err := config.Load(getConfigDir())
	if err != nil {
		logger.Warn("using default configuration", slog.Any("error", err))
		return config.Default()
	}
	return cfg
}

// runEditor launches the TUI, opening args[0] when given.
func runEditor(cmd *cobra.Command, args []string) error {
	configDir := getConfigDir()
	if err := config.EnsureConfigDir(configDir); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
	}

	logger, closer := logging.NewFileLogger(configDir, logging.Level(viper.GetBool("verbose")))
	defer closer.Close()

	cfg := loadUserConfig(logger)

	opts := tui.Options{
		Config:    cfg,
		ConfigDir: configDir,
		Logger:    logger,
	}

	store, err := recent.Open(configDir)
	if err != nil {
		logger.Warn("recent files disabled", slog.Any("error", err))
	} else {
		defer store.Close()
		opts.Recent = store
	}

	if len(args) == 1 {
		doc, err := openOrCreate(args[0])
		if err != nil {
			return err
		}
		opts.Document = doc
	}

	logger.Info("starting editor", slog.String("config_dir", configDir))

	p := tea.NewProgram(
		tui.NewApp(opts),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}

// openOrCreate opens path, or starts an empty document that will be saved
// there when the file does not exist yet.
func openOrCreate(path string) (*document.Document, error) {
	doc, err := document.Open(path)
	if err == nil {
		return doc, nil
	}
	if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		if _, dirErr := os.Stat(filepath.Dir(path)); dirErr == nil {
			return &document.Document{Path: path}, nil
		}
	}
	return nil, err
}

// readInput returns the text of the file named by args[idx], or stdin when
// the argument is missing or "-". The second value names the source.
func readInput(cmd *cobra.Command, args []string, idx int) (string, string, error) {
	if len(args) > idx && args[idx] != "-" {
		path := args[idx]
		data, err := os.ReadFile(path)
		if err != nil {
			return "", "", fmt.Errorf("reading %s: %w", path, err)
		}
		return string(data), path, nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), "stdin", nil
}
