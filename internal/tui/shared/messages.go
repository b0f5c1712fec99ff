package shared

import (
	"time"

	"github.com/joe/dir-insight/internal/analyzer"
)

// ============================================================================
// Transition Messages
// These messages trigger screen transitions and are handled by AppModel
// ============================================================================

// TransitionToAnalysisMsg is sent by InputScreen when a path is validated
type TransitionToAnalysisMsg struct {
	Path string
}

// TransitionToReportMsg is sent by AnalysisScreen when the scan ends, however it ended
type TransitionToReportMsg struct {
	Path       string
	FinalState string // "complete", "cancelled", "error"
	Result     analyzer.AnalysisResult
	Skipped    []analyzer.EntryError
	Err        error // only set if FinalState is "error"
	Elapsed    time.Duration
}

// TransitionToInputMsg is sent by ReportScreen to start another analysis
type TransitionToInputMsg struct{}

// ============================================================================
// Internal Messages
// These messages are used within a single screen
// ============================================================================

// EngineInitializedMsg is sent once the filesystem for the root is open
type EngineInitializedMsg struct {
	Engine *analyzer.Engine
}

// AnalysisCompleteMsg carries the outcome of Engine.Scan
type AnalysisCompleteMsg struct {
	Result  analyzer.AnalysisResult
	Skipped []analyzer.EntryError
	Err     error
	Elapsed time.Duration
}

// ErrorMsg is sent when the engine cannot be created
type ErrorMsg struct {
	Err error
}
