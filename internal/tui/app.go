// Package tui is the interactive terminal front end: a path prompt, a live scan view and a
// scrollable report, moved between by transition messages.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/joe/dir-insight/internal/config"
	"github.com/joe/dir-insight/internal/tui/screens"
	"github.com/joe/dir-insight/internal/tui/shared"
)

// headerHeight is the timeline line plus the blank line under it.
const headerHeight = 2

// AppModel is the top-level model. It owns the current screen and swaps it on transitions.
type AppModel struct {
	config        *config.Config
	logger        zerolog.Logger
	phase         string
	finalState    string
	currentScreen tea.Model
	width         int
	height        int
}

// NewAppModel creates the app. Without interactive mode it starts scanning cfg.Path right away.
func NewAppModel(cfg *config.Config, logger zerolog.Logger) *AppModel {
	app := &AppModel{
		config: cfg,
		logger: logger,
		phase:  shared.PhaseInput,
	}

	if cfg.InteractiveMode {
		app.currentScreen = screens.NewInputScreen(cfg)
	} else {
		app.phase = shared.PhaseScan
		app.currentScreen = screens.NewAnalysisScreen(cfg, cfg.Path, logger)
	}

	return app
}

// CurrentScreen returns the current screen (for testing)
func (a AppModel) CurrentScreen() tea.Model {
	return a.currentScreen
}

// Phase returns the timeline phase: input, scan, report or scan_error.
func (a AppModel) Phase() string {
	return a.phase
}

// FinalState returns how the last analysis ended, or "" if none has.
func (a AppModel) FinalState() string {
	return a.finalState
}

// Init implements tea.Model
func (a AppModel) Init() tea.Cmd {
	return a.currentScreen.Init()
}

// Update implements tea.Model
func (a AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Quitting mid-scan never reaches the report, so record the abort here
		if msg.String() == shared.KeyCtrlC && a.phase == shared.PhaseScan {
			a.finalState = shared.StateCancelled
		}
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		msg.Height = max(msg.Height-headerHeight, 1)

		var cmd tea.Cmd
		a.currentScreen, cmd = a.currentScreen.Update(msg)

		return a, cmd
	case shared.TransitionToAnalysisMsg:
		a.phase = shared.PhaseScan

		return a.switchTo(screens.NewAnalysisScreen(a.config, msg.Path, a.logger))
	case shared.TransitionToReportMsg:
		a.phase = shared.PhaseReport
		if msg.FinalState == shared.StateError {
			a.phase = shared.PhaseScan + "_error"
		}

		a.finalState = msg.FinalState
		a.logger.Info().Str("path", msg.Path).Str("state", msg.FinalState).Dur("elapsed", msg.Elapsed).Msg("analysis finished")

		return a.switchTo(screens.NewReportScreen(msg))
	case shared.TransitionToInputMsg:
		a.phase = shared.PhaseInput

		return a.switchTo(screens.NewInputScreen(a.config))
	case shared.EngineInitializedMsg:
		// The scan this engine was opened for was abandoned before it started
		if a.phase != shared.PhaseScan {
			if err := msg.Engine.Close(); err != nil {
				a.logger.Warn().Err(err).Msg("failed to close abandoned filesystem")
			}

			return a, nil
		}
	}

	var cmd tea.Cmd
	a.currentScreen, cmd = a.currentScreen.Update(msg)

	return a, cmd
}

// View implements tea.Model
func (a AppModel) View() string {
	return shared.RenderTimeline(a.phase) + "\n\n" + a.currentScreen.View()
}

// switchTo makes screen current, sizes it to the terminal and starts it.
func (a AppModel) switchTo(screen tea.Model) (tea.Model, tea.Cmd) {
	if a.width > 0 {
		screen, _ = screen.Update(tea.WindowSizeMsg{Width: a.width, Height: max(a.height-headerHeight, 1)})
	}

	a.currentScreen = screen

	return a, screen.Init()
}
