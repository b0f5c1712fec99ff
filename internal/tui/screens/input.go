package screens

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/dir-insight/internal/analyzer"
	"github.com/joe/dir-insight/internal/config"
	"github.com/joe/dir-insight/internal/tui/shared"
	"github.com/joe/dir-insight/pkg/filesystem"
)

// maxCompletionsShown is the height of the completion window.
const maxCompletionsShown = 8

// InputScreen asks for the directory to analyze, with tab completion of local directories.
type InputScreen struct {
	config          *config.Config
	pathInput       textinput.Model
	completions     []string
	completionIndex int
	showCompletions bool
	validationError string
}

// NewInputScreen creates a new input screen, pre-filled with the configured path if any.
func NewInputScreen(cfg *config.Config) *InputScreen {
	pathInput := textinput.New()
	pathInput.Placeholder = "/path/to/directory or sftp://user@host/path"
	pathInput.Prompt = shared.PromptArrow
	pathInput.SetValue(cfg.Path)
	pathInput.Focus()

	return &InputScreen{
		config:    cfg,
		pathInput: pathInput,
	}
}

// Init implements tea.Model
func (s InputScreen) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (s InputScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return s.handleWindowSize(msg)
	case tea.KeyMsg:
		return s.handleKeyMsg(msg)
	}

	var cmd tea.Cmd
	s.pathInput, cmd = s.pathInput.Update(msg)

	return s, cmd
}

// View implements tea.Model
func (s InputScreen) View() string {
	content := shared.RenderTitle("📂 Directory Insight") + "\n\n" +
		shared.RenderSubtitle("Summarize what is in a directory tree") + "\n\n" +
		shared.RenderLabel("Directory:") + "\n" +
		s.pathInput.View() + "\n"

	if s.showCompletions && len(s.completions) > 0 {
		content += formatCompletionList(s.completions, s.completionIndex) + "\n"
	}

	if s.validationError != "" {
		content += "\n" + shared.RenderError("Error: "+s.validationError) + "\n"
	}

	content += "\n" +
		shared.RenderSubtitle("Tab/Shift+Tab to cycle • → to accept & continue • Enter to analyze • Esc to clear • Ctrl+C to exit")

	return shared.RenderBox(content)
}

// Value returns the current contents of the path field.
func (s InputScreen) Value() string {
	return s.pathInput.Value()
}

func (s InputScreen) applyCompletion(completion string) InputScreen {
	s.pathInput.SetValue(completion)
	s.pathInput.CursorEnd()

	return s
}

func (s InputScreen) handleEnter() (tea.Model, tea.Cmd) {
	s.showCompletions = false

	path := strings.TrimSpace(s.pathInput.Value())
	if strings.HasPrefix(path, "~") {
		path = expandHomePath(path)
	}

	if err := validateDirectory(path); err != nil {
		s.validationError = err.Error()

		return s, nil
	}

	s.config.Path = path

	return s, func() tea.Msg {
		return shared.TransitionToAnalysisMsg{Path: path}
	}
}

func (s InputScreen) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return s, tea.Quit
	case tea.KeyEsc:
		s.pathInput.SetValue("")
		s.showCompletions = false
		s.validationError = ""

		return s, nil
	case tea.KeyTab:
		return s.handleTabCompletion(), nil
	case tea.KeyShiftTab:
		return s.handleShiftTabCompletion(), nil
	case tea.KeyRight:
		if s.showCompletions && len(s.completions) > 0 {
			return s.handleRightArrow(), nil
		}
	case tea.KeyEnter:
		return s.handleEnter()
	}

	s.showCompletions = false
	s.validationError = ""

	var cmd tea.Cmd
	s.pathInput, cmd = s.pathInput.Update(msg)

	return s, cmd
}

// handleRightArrow accepts the selected completion and opens completions one level deeper.
func (s InputScreen) handleRightArrow() InputScreen {
	current := s.completions[s.completionIndex]
	s = s.applyCompletion(current)
	s.showCompletions = false

	s.completions = getPathCompletions(current)
	if len(s.completions) > 0 {
		s.completionIndex = 0
		s.showCompletions = true
		s = s.applyCompletion(s.completions[0])
	}

	return s
}

func (s InputScreen) handleShiftTabCompletion() InputScreen {
	if s.showCompletions && len(s.completions) > 0 {
		s.completionIndex--
		if s.completionIndex < 0 {
			s.completionIndex = len(s.completions) - 1
		}

		s = s.applyCompletion(s.completions[s.completionIndex])
	}

	return s
}

func (s InputScreen) handleTabCompletion() InputScreen {
	if !s.showCompletions {
		s.completions = getPathCompletions(s.pathInput.Value())
		s.completionIndex = 0
		s.showCompletions = true

		// A single match completes immediately
		if len(s.completions) == 1 {
			s = s.applyCompletion(s.completions[0])
			s.showCompletions = false
		}
	} else if len(s.completions) > 0 {
		s.completionIndex = (s.completionIndex + 1) % len(s.completions)
		s = s.applyCompletion(s.completions[s.completionIndex])
	}

	return s
}

func (s InputScreen) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	s.pathInput.Width = max(msg.Width-shared.PathMargin, shared.PathMargin)

	return s, nil
}

// validateDirectory rejects malformed paths, and local paths that are not directories.
// Remote paths are checked when the connection is made.
func validateDirectory(path string) error {
	if err := config.ValidatePath(path); err != nil {
		return err
	}

	parsed, err := filesystem.ParsePath(path)
	if err != nil || parsed.IsRemote {
		return err //nolint:wrapcheck // Already wrapped by ValidatePath
	}

	info, err := os.Stat(parsed.LocalPath)
	if err != nil {
		return err //nolint:wrapcheck // os errors name the path
	}

	if !info.IsDir() {
		return &os.PathError{Op: "analyze", Path: parsed.LocalPath, Err: analyzer.ErrNotDirectory}
	}

	return nil
}

// ============================================================================
// Completion Rendering
// ============================================================================

func formatCompletionList(completions []string, currentIndex int) string {
	if len(completions) == 1 {
		return shared.CompletionStyle().Render("  → " + getBaseName(completions[0]))
	}

	start, end := completionWindow(currentIndex, maxCompletionsShown, len(completions))
	lines := []string{shared.CompletionStyle().Render("  " + strings.Repeat("─", shared.BarWidth*2))}

	if start > 0 {
		lines = append(lines, shared.CompletionStyle().Render("    ..."))
	}

	for i := start; i < end; i++ {
		base := getBaseName(completions[i])
		if i == currentIndex {
			lines = append(lines, shared.CompletionSelectedStyle().Render("  "+shared.PromptArrow+base))
		} else {
			lines = append(lines, shared.CompletionStyle().Render("    "+base))
		}
	}

	if end < len(completions) {
		lines = append(lines, shared.CompletionStyle().Render("    ..."))
	}

	return strings.Join(lines, "\n")
}

// completionWindow returns the slice of completions to show, keeping the current one centered.
func completionWindow(currentIndex, maxShow, totalCount int) (start, end int) {
	start = max(currentIndex-maxShow/2, 0) //nolint:mnd // Half the window above the selection

	end = start + maxShow
	if end > totalCount {
		end = totalCount
		start = max(end-maxShow, 0)
	}

	return start, end
}

// ============================================================================
// Path Completion Helpers
// ============================================================================

func expandHomePath(input string) string {
	if input == "" {
		return "."
	}

	if strings.HasPrefix(input, "~") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, input[1:])
		}
	}

	return input
}

func getBaseName(path string) string {
	trimmed := strings.TrimSuffix(path, "/")

	base := trimmed
	if idx := strings.LastIndex(trimmed, "/"); idx != -1 {
		base = trimmed[idx+1:]
	}

	if strings.HasSuffix(path, "/") {
		return base + "/"
	}

	return base
}

// getPathCompletions lists the local directories that could complete input.
// Remote URLs are never completed.
func getPathCompletions(input string) []string {
	if strings.HasPrefix(input, "sftp://") {
		return nil
	}

	input = expandHomePath(input)
	dir, prefix := parseCompletionPath(input)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	completions := make([]string, 0, len(entries))

	for _, entry := range entries {
		name := entry.Name()
		if !shouldIncludeEntry(name, prefix) {
			continue
		}

		fullPath := filepath.Join(dir, name)

		// Only directories can be analyzed; follow links to see what they point at
		info, statErr := os.Stat(fullPath)
		if statErr != nil || !info.IsDir() {
			continue
		}

		completions = append(completions, fullPath+string(filepath.Separator))
	}

	sort.Strings(completions)

	return completions
}

func parseCompletionPath(input string) (dir, prefix string) {
	if strings.HasSuffix(input, string(filepath.Separator)) {
		return input, ""
	}

	return filepath.Dir(input), filepath.Base(input)
}

func shouldIncludeEntry(name, prefix string) bool {
	// Hidden directories only show once the user types the dot
	if strings.HasPrefix(name, ".") && !strings.HasPrefix(prefix, ".") {
		return false
	}

	return prefix == "" || strings.HasPrefix(name, prefix)
}
