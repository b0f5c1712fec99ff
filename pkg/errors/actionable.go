// Package errors provides actionable error handling with context-aware suggestions.
//
// This package enriches analysis failures with a category and actionable suggestions so the
// CLI and TUI can tell the user what to try next. It recognizes unreadable roots, missing
// paths, files given where a directory is expected, symlink loops, SSH/SFTP connection
// failures and cancellation.
//
// Basic Usage:
//
//	enricher := errors.NewEnricher()
//	result, err := engine.Analyze(ctx)
//	if err != nil {
//	    enriched := enricher.Enrich(err, root)
//	    fmt.Println(enriched.Error())
//	    fmt.Println(errors.FormatSuggestions(enriched))
//	}
//
// The enricher extracts a path from the error message when none is provided:
//
//	err := errors.New("stat /home/user/data: permission denied")
//	enriched := enricher.Enrich(err, "") // Path is "/home/user/data"
//
// Enriched errors unwrap to the original error, so errors.Is keeps working on them.
package errors

import "strings"

// Exported constants.
const (
	CategoryCancelled    ErrorCategory = "cancelled"
	CategoryConnection   ErrorCategory = "connection"
	CategoryNotDirectory ErrorCategory = "not_directory"
	CategoryPath         ErrorCategory = "path"
	CategoryPermission   ErrorCategory = "permission"
	CategorySymlinkLoop  ErrorCategory = "symlink_loop"
	CategoryUnknown      ErrorCategory = "unknown"
)

// ActionableError represents an error with actionable suggestions for the user.
type ActionableError interface {
	error
	OriginalError() string
	Category() ErrorCategory
	Suggestions() []string
	AffectedPath() string
}

// NewActionableError creates a new ActionableError with the given details.
func NewActionableError(
	originalError string,
	category ErrorCategory,
	suggestions []string,
	affectedPath string,
) ActionableError {
	return &actionableError{
		originalError: originalError,
		category:      category,
		suggestions:   suggestions,
		affectedPath:  affectedPath,
	}
}

// ErrorCategory represents the type of error that occurred.
type ErrorCategory string

// FormatSuggestions formats the suggestions from an ActionableError as a bulleted list
// for display in the CLI and TUI. Returns empty string if the error is nil or has no suggestions.
func FormatSuggestions(err error) string {
	if err == nil {
		return ""
	}

	actionable, ok := err.(ActionableError)
	if !ok {
		return ""
	}

	suggestions := actionable.Suggestions()
	if len(suggestions) == 0 {
		return ""
	}

	// Format as bulleted list with two-space indent
	// Use strings.Builder for efficient string concatenation
	var builder strings.Builder
	for i, suggestion := range suggestions {
		if i > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString("  • ")
		builder.WriteString(suggestion)
	}

	return builder.String()
}

// actionableError is the concrete implementation of ActionableError.
type actionableError struct {
	originalError string
	category      ErrorCategory
	suggestions   []string
	affectedPath  string
	cause         error
}

// AffectedPath returns the file path affected by this error.
func (e *actionableError) AffectedPath() string {
	return e.affectedPath
}

// Category returns the error category.
func (e *actionableError) Category() ErrorCategory {
	return e.category
}

// Error implements the error interface.
func (e *actionableError) Error() string {
	return e.originalError
}

// OriginalError returns the original error message.
func (e *actionableError) OriginalError() string {
	return e.originalError
}

// Suggestions returns the list of actionable suggestions.
func (e *actionableError) Suggestions() []string {
	return e.suggestions
}

// Unwrap returns the enriched error, or nil for errors built with NewActionableError.
func (e *actionableError) Unwrap() error {
	return e.cause
}
