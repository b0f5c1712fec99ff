package errors

import "strings"

// PatternMatcher matches error messages to categories using string patterns.
type PatternMatcher interface {
	Match(errorMsg string) ErrorCategory
}

// categoryPatterns pairs a category with the message fragments that identify it.
type categoryPatterns struct {
	category ErrorCategory
	patterns []string
}

// NewPatternMatcher creates a new PatternMatcher with predefined patterns.
// Categories are tried in order, so a cancelled scan of an unreadable root reports cancellation.
func NewPatternMatcher() PatternMatcher {
	return &patternMatcher{
		patterns: []categoryPatterns{
			{CategoryCancelled, []string{
				"analysis cancelled",
				"context canceled",
				"context deadline exceeded",
			}},
			{CategoryConnection, []string{
				"ssh connection failed",
				"sftp session creation failed",
				"no ssh authentication methods",
				"unable to authenticate",
				"handshake failed",
				"connection refused",
				"no such host",
				"i/o timeout",
				"failed to connect",
			}},
			{CategoryPermission, []string{
				"permission denied",
				"access denied",
				"access is denied",
				"operation not permitted",
			}},
			{CategorySymlinkLoop, []string{
				"too many levels of symbolic links",
				"too many links",
			}},
			{CategoryNotDirectory, []string{
				"not a directory",
			}},
			{CategoryPath, []string{
				"no such file or directory",
				"file does not exist",
				"cannot find the path",
				"cannot find the file",
				"path is required",
			}},
		},
	}
}

// patternMatcher is the concrete implementation of PatternMatcher.
type patternMatcher struct {
	patterns []categoryPatterns
}

// Match returns the error category based on pattern matching.
func (m *patternMatcher) Match(errorMsg string) ErrorCategory {
	lowerMsg := strings.ToLower(errorMsg)

	for _, entry := range m.patterns {
		for _, pattern := range entry.patterns {
			if strings.Contains(lowerMsg, pattern) {
				return entry.category
			}
		}
	}

	// No match found
	return CategoryUnknown
}
