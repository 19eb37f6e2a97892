// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/toastui/internal/model"
	"github.com/jmylchreest/toastui/internal/toast"
)

// Default configuration values.
const (
	DefaultAlignment = "bottom"
	DefaultOverlap   = "overlap"
	DefaultBorder    = "rounded"
)

// Validation errors.
var (
	ErrInvalidAlignment = errors.New("alignment must be top, bottom or middle")
	ErrInvalidOverlap   = errors.New("overlap must be overlap or stack")
	ErrInvalidBorder    = errors.New("border must be rounded, normal or none")
	ErrInvalidDuration  = errors.New("duration must not be negative")
	ErrInvalidGeometry  = errors.New("padding and margin must not be negative")
)

// Duration is a time.Duration that can be unmarshaled from human-readable strings.
// Supports formats like "100ms", "3.5s", "1m", or integer milliseconds.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler for TOML parsing.
func (d *Duration) UnmarshalText(text []byte) error {
	s := string(text)

	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		*d = Duration(time.Duration(ms) * time.Millisecond)
		return nil
	}

	dur, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: must be like '100ms', '3.5s', '1m' or milliseconds: %w", s, err)
	}
	*d = Duration(dur)
	return nil
}

// MarshalText implements encoding.TextMarshaler for TOML output.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// MarshalYAML renders the duration as a string.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Duration returns the underlying time.Duration.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// Config represents the toastui configuration.
type Config struct {
	Toast     ToastConfig     `toml:"toast" yaml:"toast"`
	Container ContainerConfig `toml:"container" yaml:"container"`
	Cell      CellConfig      `toml:"cell" yaml:"cell"`
}

// ToastConfig holds defaults applied to new toasts.
type ToastConfig struct {
	Long          Duration `toml:"long" yaml:"long"`                     // Default lifetime
	Short         Duration `toml:"short" yaml:"short"`                   // Lifetime of short toasts
	SweepInterval Duration `toml:"sweep_interval" yaml:"sweep_interval"` // Expiry check cadence
	Background    string   `toml:"background" yaml:"background"`         // Hex or ANSI colour
	Foreground    string   `toml:"foreground" yaml:"foreground"`
}

// ContainerConfig holds layout options.
type ContainerConfig struct {
	Alignment  string   `toml:"alignment" yaml:"alignment"`   // top, bottom, middle
	Overlap    string   `toml:"overlap" yaml:"overlap"`       // overlap, stack
	Transition Duration `toml:"transition" yaml:"transition"` // 0 disables animation
	Base       string   `toml:"base" yaml:"base"`             // Colour toasts fade from
}

// CellConfig holds toast geometry.
type CellConfig struct {
	PaddingX int    `toml:"padding_x" yaml:"padding_x"`
	PaddingY int    `toml:"padding_y" yaml:"padding_y"`
	MarginX  int    `toml:"margin_x" yaml:"margin_x"`
	MarginY  int    `toml:"margin_y" yaml:"margin_y"`
	Border   string `toml:"border" yaml:"border"` // rounded, normal, none
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	cell := toast.DefaultCellStyle()
	return &Config{
		Toast: ToastConfig{
			Long:          Duration(model.LengthLong),
			Short:         Duration(model.LengthShort),
			SweepInterval: Duration(toast.DefaultSweepInterval),
			Background:    string(model.DefaultBackground),
			Foreground:    string(model.DefaultForeground),
		},
		Container: ContainerConfig{
			Alignment:  DefaultAlignment,
			Overlap:    DefaultOverlap,
			Transition: Duration(toast.DefaultTransition),
			Base:       string(toast.DefaultBase),
		},
		Cell: CellConfig{
			PaddingX: cell.PaddingX,
			PaddingY: cell.PaddingY,
			MarginX:  cell.MarginX,
			MarginY:  cell.MarginY,
			Border:   DefaultBorder,
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "toastui", "config.toml")
}

// StatePath returns the path to the state directory used for logs.
// Uses XDG_STATE_HOME if set, otherwise ~/.local/state.
func StatePath() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "toastui")
}

// LogPath returns the default log file path.
func LogPath() string {
	return filepath.Join(StatePath(), "toastdemo.log")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks enum fields and ranges.
func (c *Config) Validate() error {
	if _, err := toast.ParseAlignment(c.Container.Alignment); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAlignment, err)
	}
	if _, err := toast.ParseOverlap(c.Container.Overlap); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOverlap, err)
	}
	if _, err := toast.ParseBorder(c.Cell.Border); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBorder, err)
	}
	for name, d := range map[string]Duration{
		"toast.long":           c.Toast.Long,
		"toast.short":          c.Toast.Short,
		"toast.sweep_interval": c.Toast.SweepInterval,
		"container.transition": c.Container.Transition,
	} {
		if d < 0 {
			return fmt.Errorf("%w: %s", ErrInvalidDuration, name)
		}
	}
	if c.Cell.PaddingX < 0 || c.Cell.PaddingY < 0 || c.Cell.MarginX < 0 || c.Cell.MarginY < 0 {
		return ErrInvalidGeometry
	}
	return nil
}

// Save writes the configuration to the specified path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Encode renders the configuration as "toml" or "yaml".
func (c *Config) Encode(format string) ([]byte, error) {
	switch format {
	case "", "toml":
		return toml.Marshal(c)
	case "yaml", "yml":
		return yaml.Marshal(c)
	default:
		return nil, fmt.Errorf("unknown format %q: must be toml or yaml", format)
	}
}

// ControllerOptions converts the toast section into controller options.
func (c *Config) ControllerOptions() toast.Options {
	return toast.Options{
		Lifetime:      c.Toast.Long.Duration(),
		SweepInterval: c.Toast.SweepInterval.Duration(),
		Background:    lipgloss.Color(c.Toast.Background),
		Foreground:    lipgloss.Color(c.Toast.Foreground),
	}
}

// ContainerOptions converts the container and cell sections into container
// options. Invalid enum values fall back to defaults; call Validate first
// to reject them.
func (c *Config) ContainerOptions() toast.ContainerOptions {
	opts := toast.DefaultContainerOptions()
	if a, err := toast.ParseAlignment(c.Container.Alignment); err == nil {
		opts.Alignment = a
	}
	if o, err := toast.ParseOverlap(c.Container.Overlap); err == nil {
		opts.Overlap = o
	}
	opts.Transition = c.Container.Transition.Duration()
	if c.Container.Base != "" {
		opts.Base = lipgloss.Color(c.Container.Base)
	}

	opts.Cell = toast.CellStyle{
		PaddingX: c.Cell.PaddingX,
		PaddingY: c.Cell.PaddingY,
		MarginX:  c.Cell.MarginX,
		MarginY:  c.Cell.MarginY,
	}
	if b, err := toast.ParseBorder(c.Cell.Border); err == nil {
		opts.Cell.Border = b
	}
	return opts
}
