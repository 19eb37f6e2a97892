package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/toastui/internal/demo"
	"github.com/jmylchreest/toastui/internal/toast"
)

var demoOpts struct {
	alignment string
	overlap   string
	noWatch   bool
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Launch the interactive toast demo",
	Long: `Launch the interactive terminal demo.

Key bindings:
  enter       Show a toast
  s           Show a short toast
  b           Show a burst of five toasts
  a           Cycle alignment (top, middle, bottom)
  o           Toggle overlap and stack layout
  ?           Show help
  q           Quit

Edits to the config file are applied while the demo runs.`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
	addLayoutFlags(demoCmd)
}

func addLayoutFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&demoOpts.alignment, "alignment", "",
		"Toast anchor: top, middle or bottom (overrides config)")
	cmd.Flags().StringVar(&demoOpts.overlap, "overlap", "",
		"Toast layout: overlap or stack (overrides config)")
	cmd.Flags().BoolVar(&demoOpts.noWatch, "no-watch", false,
		"Do not reload the config file on change")
}

func runDemo(cmd *cobra.Command, args []string) error {
	if demoOpts.alignment != "" {
		if _, err := toast.ParseAlignment(demoOpts.alignment); err != nil {
			return fmt.Errorf("invalid --alignment: %w", err)
		}
		cfg.Container.Alignment = demoOpts.alignment
	}
	if demoOpts.overlap != "" {
		if _, err := toast.ParseOverlap(demoOpts.overlap); err != nil {
			return fmt.Errorf("invalid --overlap: %w", err)
		}
		cfg.Container.Overlap = demoOpts.overlap
	}

	runLogger := logger
	if !loggingToFile() {
		// Warnings on stderr would corrupt the alt screen.
		runLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	watchPath := configFilePath()
	if demoOpts.noWatch {
		watchPath = ""
	}

	return demo.Run(demo.RunOptions{
		Config:     cfg,
		ConfigPath: watchPath,
		Logger:     runLogger,
	})
}
