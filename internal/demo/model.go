// Package demo provides the BubbleTea program that showcases toasts.
package demo

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/toastui/internal/config"
	"github.com/jmylchreest/toastui/internal/model"
	"github.com/jmylchreest/toastui/internal/toast"
)

// ToastColor is the background of toasts raised with the toast key.
const ToastColor = lipgloss.Color("#1A801A")

// burstSize is how many toasts the burst key raises at once.
const burstSize = 5

// ConfigChangedMsg carries a reloaded configuration into the program.
type ConfigChangedMsg struct {
	Config *config.Config
}

type statusMsg struct {
	text string
}

type clearStatusMsg struct{}

type clockMsg time.Time

// Model is the demo TUI model.
type Model struct {
	cfg        *config.Config
	controller *toast.Controller
	logger     *slog.Logger

	toasts toast.Container
	help   help.Model
	keys   KeyMap

	width  int
	height int
	ready  bool

	statusMsg string
}

// New creates the demo model and mounts its toast container.
func New(cfg *config.Config, controller *toast.Controller, logger *slog.Logger) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}

	container := toast.NewContainer(controller, cfg.ContainerOptions())
	container.Mount()

	return Model{
		cfg:        cfg,
		controller: controller,
		logger:     logger,
		toasts:     container,
		help:       help.New(),
		keys:       DefaultKeyMap(),
	}
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.toasts.Init(),
		tickClock(),
	)
}

func tickClock() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockMsg(t)
	})
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width
		m.toasts.SetSize(msg.Width, max(msg.Height-1, 0))
		return m, nil

	case ConfigChangedMsg:
		m.applyConfig(msg.Config)
		return m, setStatus("config reloaded")

	case statusMsg:
		m.statusMsg = msg.text
		return m, tea.Tick(2*time.Second, func(time.Time) tea.Msg {
			return clearStatusMsg{}
		})

	case clearStatusMsg:
		m.statusMsg = ""
		return m, nil

	case clockMsg:
		// Redraw so the footer age stays current.
		return m, tickClock()
	}

	var cmd tea.Cmd
	m.toasts, cmd = m.toasts.Update(msg)
	return m, cmd
}

func setStatus(text string) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{text: text}
	}
}

// handleKey handles key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.toasts.Unmount()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Toast):
		m.controller.Show(
			fmt.Sprintf("Hello me !  %d", time.Now().Unix()),
			model.WithBackground(ToastColor),
			model.WithForeground(lipgloss.Color("#FFFFFF")),
		)
		return m, nil

	case key.Matches(msg, m.keys.Short):
		m.controller.Show("Short toast", model.WithLifetime(m.cfg.Toast.Short.Duration()))
		return m, nil

	case key.Matches(msg, m.keys.Burst):
		for i := 1; i <= burstSize; i++ {
			m.controller.Show(fmt.Sprintf("Toast %d of %d", i, burstSize))
		}
		return m, nil

	case key.Matches(msg, m.keys.Alignment):
		opts := m.toasts.Options()
		m.toasts.SetAlignment(opts.Alignment.Next())
		return m, setStatus("alignment: " + m.toasts.Options().Alignment.String())

	case key.Matches(msg, m.keys.Overlap):
		opts := m.toasts.Options()
		next := toast.ModeStack
		if opts.Overlap == toast.ModeStack {
			next = toast.ModeOverlap
		}
		m.toasts.SetOverlap(next)
		return m, setStatus("mode: " + next.String())
	}

	return m, nil
}

// applyConfig switches controller defaults and container layout to cfg.
func (m *Model) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	m.cfg = cfg
	m.controller.SetDefaults(
		cfg.Toast.Long.Duration(),
		lipgloss.Color(cfg.Toast.Background),
		lipgloss.Color(cfg.Toast.Foreground),
	)
	m.controller.SetSweepInterval(cfg.Toast.SweepInterval.Duration())
	m.toasts.SetOptions(cfg.ContainerOptions())
	m.logger.Debug("config applied",
		"alignment", cfg.Container.Alignment,
		"overlap", cfg.Container.Overlap,
		"sweep_interval", cfg.Toast.SweepInterval.Duration(),
	)
}

// Toasts returns the embedded toast container.
func (m Model) Toasts() toast.Container {
	return m.toasts
}

// View renders the TUI.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	bodyHeight := max(m.height-1, 0)
	body := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, m.viewBody())
	body = m.toasts.Overlay(body)

	return body + "\n" + m.viewFooter()
}

func (m Model) viewBody() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		MarginBottom(1)

	s := titleStyle.Render("toastui demo") + "\n"
	if m.help.ShowAll {
		s += m.help.View(m.keys)
	} else {
		s += "Press enter to toast"
	}
	return s
}

func (m Model) viewFooter() string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	var left string
	if m.statusMsg != "" {
		left = lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Render(m.statusMsg)
	} else {
		left = style.Render(m.activeSummary())
	}

	bar := m.help.ShortHelpView(m.keys.ShortHelp())
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(bar)
	if gap < 2 {
		return left
	}
	return left + strings.Repeat(" ", gap) + bar
}

// activeSummary describes the live toasts, e.g. "2 active, oldest 3 seconds ago".
func (m Model) activeSummary() string {
	items := m.controller.Items()
	if len(items) == 0 {
		return "no toasts"
	}
	oldest := items[0]
	return fmt.Sprintf("%d active, oldest %s", len(items), oldest.RelativeAge(m.controller.Now()))
}
