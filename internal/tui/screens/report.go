package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/dir-insight/internal/analyzer"
	"github.com/joe/dir-insight/internal/report"
	"github.com/joe/dir-insight/internal/tui/shared"
	"github.com/joe/dir-insight/pkg/errors"
)

// chromeHeight is the number of lines taken by the header and help line around the viewport.
const chromeHeight = 4

// ReportScreen shows the outcome of an analysis in a scrollable view.
type ReportScreen struct {
	outcome  shared.TransitionToReportMsg
	sections []report.Section
	bar      progress.Model
	viewport viewport.Model
	ready    bool
	width    int
}

// NewReportScreen creates a report screen for a finished, cancelled or failed analysis.
func NewReportScreen(outcome shared.TransitionToReportMsg) *ReportScreen {
	var sections []report.Section
	if outcome.FinalState == shared.StateComplete {
		sections = report.Sections(outcome.Result, len(outcome.Skipped))
	}

	return &ReportScreen{
		outcome:  outcome,
		sections: sections,
		bar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(shared.BarWidth),
			progress.WithoutPercentage(),
		),
	}
}

// Init implements tea.Model
func (s ReportScreen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (s ReportScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		height := max(msg.Height-chromeHeight, 1)

		if !s.ready {
			s.viewport = viewport.New(msg.Width, height)
			s.ready = true
		} else {
			s.viewport.Width = msg.Width
			s.viewport.Height = height
		}

		s.viewport.SetContent(s.renderBody())

		return s, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "enter", shared.KeyCtrlC:
			return s, tea.Quit
		case shared.KeyEsc:
			return s, func() tea.Msg { return shared.TransitionToInputMsg{} }
		}
	}

	if !s.ready {
		return s, nil
	}

	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)

	return s, cmd
}

// View implements tea.Model
func (s ReportScreen) View() string {
	help := shared.RenderDim("↑/↓ to scroll • Esc to analyze another directory • q to quit")

	if !s.ready {
		return s.renderBody() + "\n" + help
	}

	return s.viewport.View() + "\n\n" + help
}

// FinalState returns "complete", "cancelled" or "error".
func (s ReportScreen) FinalState() string {
	return s.outcome.FinalState
}

func (s ReportScreen) renderBody() string {
	switch s.outcome.FinalState {
	case shared.StateCancelled:
		return s.renderCancelled()
	case shared.StateError:
		return s.renderError()
	default:
		return s.renderComplete()
	}
}

func (s ReportScreen) renderCancelled() string {
	enriched := errors.NewEnricher().Enrich(analyzer.ErrCancelled, s.outcome.Path)

	return shared.RenderTitle(shared.CancelledSymbol()+" Analysis Cancelled") + "\n" +
		shared.RenderDim(s.outcome.Path) + "\n\n" +
		errors.FormatSuggestions(enriched) + "\n"
}

func (s ReportScreen) renderError() string {
	return shared.RenderTitle(shared.ErrorSymbol()+" Analysis Failed") + "\n" +
		shared.RenderDim(s.outcome.Path) + "\n\n" +
		shared.RenderFatalError(s.outcome.Err, s.outcome.Path)
}

func (s ReportScreen) renderComplete() string {
	var builder strings.Builder

	builder.WriteString(shared.RenderTitle(shared.SuccessSymbol() + " Analysis Complete"))
	builder.WriteString("\n")
	builder.WriteString(shared.RenderDim(s.outcome.Path + " • " + shared.FormatDuration(s.outcome.Elapsed)))
	builder.WriteString("\n\n")

	var left, right, below []string

	for _, section := range s.sections {
		switch section.Title {
		case "File types":
			right = append(right, s.renderSection(section, s.shareBar))
		case "Overview", "Naming conventions":
			left = append(left, s.renderSection(section, nil))
		default:
			below = append(below, s.renderSection(section, nil))
		}
	}

	if s.twoColumns() && len(right) > 0 {
		builder.WriteString(shared.RenderTwoColumnLayout(strings.Join(left, "\n"), strings.Join(right, "\n"), s.width, 0))
	} else {
		builder.WriteString(strings.Join(append(left, right...), "\n"))
	}

	builder.WriteString("\n")
	builder.WriteString(strings.Join(below, "\n"))

	if len(s.outcome.Skipped) > 0 {
		builder.WriteString("\n")
		builder.WriteString(shared.RenderWarning("Skipped entries"))
		builder.WriteString("\n")
		builder.WriteString(shared.RenderErrorList(shared.ErrorListConfig{
			Errors:           s.outcome.Skipped,
			Context:          shared.ContextComplete,
			MaxWidth:         max(s.width-shared.PathMargin, shared.PathMargin),
			TruncatePathFunc: shared.TruncatePath,
		}))
	}

	return builder.String()
}

func (s ReportScreen) renderSection(section report.Section, decorate func(report.Row) string) string {
	width := s.width
	if width == 0 {
		width = shared.TwoColumnMinWidth
	}

	// Path lists span the full width below the columns
	fullWidth := section.Title == "Largest files" || section.Title == "Probable duplicates"
	if s.twoColumns() && !fullWidth {
		width = width * 2 / 5 //nolint:mnd // Fits either column of the 60-40 split
	}

	return shared.RenderWidgetBox(section.Title, shared.RenderSectionRows(section, decorate), width)
}

func (s ReportScreen) twoColumns() bool {
	return s.width >= shared.TwoColumnMinWidth
}

// shareBar prefixes a file type's value with a bar showing its share of the total size.
func (s ReportScreen) shareBar(row report.Row) string {
	if s.outcome.Result.TotalSize <= 0 {
		return row.Value
	}

	for _, entry := range s.outcome.Result.FileTypes {
		if report.TypeLabel(entry.Extension) == row.Label {
			share := float64(entry.TotalSize) / float64(s.outcome.Result.TotalSize)

			return s.bar.ViewAs(share) + " " + row.Value
		}
	}

	return row.Value
}
