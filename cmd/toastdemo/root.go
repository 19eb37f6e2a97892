package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/toastui/internal/config"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose    bool
		configPath string
		logFile    string
	}
	logger  *slog.Logger
	logSink io.Closer
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "toastdemo",
	Short: "Interactive demo of terminal toast notifications",
	Long: `toastdemo shows transient toast notifications in the terminal.

Toasts expire on their own after their lifetime. They can be drawn
overlapping at one anchor or stacked as a column, anchored to the top,
middle or bottom of the screen.

Running toastdemo without a subcommand launches the interactive demo.`,
	Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogger(); err != nil {
			return fmt.Errorf("failed to set up logging: %w", err)
		}

		var err error
		cfg, err = config.LoadConfig(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logSink != nil {
			return logSink.Close()
		}
		return nil
	},
	// Default to the demo when no subcommand is provided
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging (written to the log file)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/toastui/config.toml)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.logFile, "log-file", "",
		"Write logs to this file (default with --verbose: ~/.local/state/toastui/toastdemo.log)")

	addLayoutFlags(rootCmd)
}

// setupLogger configures the global slog logger. The demo owns the
// terminal, so anything beyond warnings goes to a file.
func setupLogger() error {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	path := globalOpts.logFile
	if path == "" && globalOpts.verbose {
		path = config.LogPath()
	}

	var w io.Writer = os.Stderr
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return err
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return err
		}
		w = f
		logSink = f
	}

	logger = slog.New(slog.NewTextHandler(w, opts))
	slog.SetDefault(logger)
	return nil
}

// loggingToFile reports whether logs are kept off the terminal.
func loggingToFile() bool {
	return logSink != nil
}

// configFilePath returns the config path in effect.
func configFilePath() string {
	if globalOpts.configPath != "" {
		return globalOpts.configPath
	}
	return config.ConfigPath()
}
