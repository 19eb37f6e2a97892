package demo

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmylchreest/toastui/internal/config"
	"github.com/jmylchreest/toastui/internal/toast"
)

// RunOptions configures the demo.
type RunOptions struct {
	Config     *config.Config
	ConfigPath string // Config file to watch for changes (empty = no watching)
	Logger     *slog.Logger
}

// Run starts the demo with the given options.
func Run(opts RunOptions) error {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ctrlOpts := cfg.ControllerOptions()
	ctrlOpts.Logger = logger
	controller := toast.NewController(ctrlOpts)
	defer controller.Close()

	m := New(cfg, controller, logger)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if opts.ConfigPath != "" {
		watcher, err := config.NewWatcher(opts.ConfigPath, func(c *config.Config) {
			p.Send(ConfigChangedMsg{Config: c})
		}, logger)
		if err != nil {
			logger.Warn("failed to create config watcher", "error", err)
		} else if err := watcher.Start(); err != nil {
			logger.Warn("failed to start config watcher", "path", opts.ConfigPath, "error", err)
			watcher.Stop()
		} else {
			defer watcher.Stop()
		}
	}

	_, err := p.Run()
	return err
}
