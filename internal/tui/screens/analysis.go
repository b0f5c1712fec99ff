package screens

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/joe/dir-insight/internal/analyzer"
	"github.com/joe/dir-insight/internal/config"
	"github.com/joe/dir-insight/internal/tui/shared"
)

// Analysis screen states.
const (
	stateConnecting = "connecting"
	stateScanning   = "scanning"
	stateCancelling = "cancelling"
)

// AnalysisScreen opens the root, runs the scan in the background and shows live counts.
type AnalysisScreen struct {
	config    *config.Config
	path      string
	logger    zerolog.Logger
	engine    *analyzer.Engine
	cancel    context.CancelFunc
	progress  analyzer.Progress
	spinner   spinner.Model
	state     string
	startedAt time.Time
	now       func() time.Time
}

// NewAnalysisScreen creates a new analysis screen for path.
func NewAnalysisScreen(cfg *config.Config, path string, logger zerolog.Logger) *AnalysisScreen {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(shared.PrimaryColor())

	return &AnalysisScreen{
		config:  cfg,
		path:    path,
		logger:  logger,
		spinner: spin,
		state:   stateConnecting,
		now:     time.Now,
	}
}

// Init implements tea.Model
func (s AnalysisScreen) Init() tea.Cmd {
	return tea.Batch(
		s.spinner.Tick,
		s.initializeEngine(),
		shared.TickCmd(),
	)
}

// Update implements tea.Model
func (s AnalysisScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return s.handleKeyMsg(msg)
	case shared.EngineInitializedMsg:
		return s.handleEngineInitialized(msg)
	case shared.AnalysisCompleteMsg:
		return s.handleAnalysisComplete(msg)
	case shared.ErrorMsg:
		return s.handleError(msg)
	case spinner.TickMsg:
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)

		return s, cmd
	case shared.TickMsg:
		return s.handleTick()
	}

	return s, nil
}

// View implements tea.Model
func (s AnalysisScreen) View() string {
	var builder strings.Builder

	builder.WriteString(shared.RenderTitle("🔍 Analyzing Directory"))
	builder.WriteString("\n\n")
	builder.WriteString(s.spinner.View())
	builder.WriteString(" ")

	switch s.state {
	case stateConnecting:
		builder.WriteString(shared.RenderLabel("Opening " + s.path + "..."))
		builder.WriteString("\n")
	case stateCancelling:
		builder.WriteString(shared.RenderWarning("Cancelling..."))
		builder.WriteString("\n")
	default:
		builder.WriteString(shared.RenderLabel("Scanning " + s.path))
		builder.WriteString("\n\n")
		s.renderProgress(&builder)
	}

	builder.WriteString("\n")
	builder.WriteString(shared.RenderDim("Press Esc to cancel • Ctrl+C to exit"))

	return shared.RenderBox(builder.String())
}

// Cancelling reports whether a cancellation has been requested.
func (s AnalysisScreen) Cancelling() bool {
	return s.state == stateCancelling
}

func (s AnalysisScreen) renderProgress(builder *strings.Builder) {
	fmt.Fprintf(builder, "Files: %s • Size: %s\n",
		shared.FormatCount(s.progress.Files),
		shared.FormatBytes(s.progress.Bytes))

	if s.startedAt.IsZero() {
		return
	}

	elapsed := s.now().Sub(s.startedAt)
	fmt.Fprintf(builder, "Elapsed: %s", shared.FormatDuration(elapsed))

	if seconds := elapsed.Seconds(); seconds >= 1 {
		fmt.Fprintf(builder, " • %s files/s", shared.FormatCount(int64(float64(s.progress.Files)/seconds)))
	}

	builder.WriteString("\n")
}

// ============================================================================
// Engine Lifecycle
// ============================================================================

func (s AnalysisScreen) initializeEngine() tea.Cmd {
	path := s.path

	return func() tea.Msg {
		engine, err := analyzer.NewEngine(path)
		if err != nil {
			return shared.ErrorMsg{Err: err}
		}

		return shared.EngineInitializedMsg{Engine: engine}
	}
}

func (s AnalysisScreen) handleEngineInitialized(msg shared.EngineInitializedMsg) (tea.Model, tea.Cmd) {
	engine := msg.Engine
	engine.Workers = s.config.Workers
	engine.TopFiles = s.config.Top
	engine.Exclude = s.config.Exclude
	engine.Logger = s.logger

	if s.config.UTC {
		engine.Location = time.UTC
	}

	ctx, cancel := context.WithCancel(context.Background())

	s.engine = engine
	s.cancel = cancel
	s.state = stateScanning
	s.startedAt = s.now()

	return s, func() tea.Msg {
		defer cancel()
		defer func() {
			if err := engine.Close(); err != nil {
				engine.Logger.Warn().Err(err).Msg("failed to close filesystem")
			}
		}()

		start := time.Now()
		result, skipped, err := engine.Scan(ctx)

		return shared.AnalysisCompleteMsg{
			Result:  result,
			Skipped: skipped,
			Err:     err,
			Elapsed: time.Since(start),
		}
	}
}

func (s AnalysisScreen) handleAnalysisComplete(msg shared.AnalysisCompleteMsg) (tea.Model, tea.Cmd) {
	report := shared.TransitionToReportMsg{
		Path:       s.path,
		FinalState: shared.StateComplete,
		Result:     msg.Result,
		Skipped:    msg.Skipped,
		Elapsed:    msg.Elapsed,
	}

	switch {
	case errors.Is(msg.Err, analyzer.ErrCancelled):
		report.FinalState = shared.StateCancelled
	case msg.Err != nil:
		report.FinalState = shared.StateError
		report.Err = msg.Err
	}

	return s, func() tea.Msg { return report }
}

func (s AnalysisScreen) handleError(msg shared.ErrorMsg) (tea.Model, tea.Cmd) {
	return s, func() tea.Msg {
		return shared.TransitionToReportMsg{
			Path:       s.path,
			FinalState: shared.StateError,
			Err:        msg.Err,
		}
	}
}

func (s AnalysisScreen) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case shared.KeyCtrlC:
		if s.cancel != nil {
			s.cancel()
		}

		return s, tea.Quit
	case shared.KeyEsc:
		if s.state == stateConnecting {
			// Nothing is running yet; the app closes the engine if it arrives later
			return s, func() tea.Msg {
				return shared.TransitionToReportMsg{Path: s.path, FinalState: shared.StateCancelled}
			}
		}

		if s.cancel != nil {
			s.cancel()
		}

		s.state = stateCancelling
	}

	return s, nil
}

func (s AnalysisScreen) handleTick() (tea.Model, tea.Cmd) {
	if s.engine != nil {
		s.progress = s.engine.Progress()
	}

	return s, shared.TickCmd()
}
