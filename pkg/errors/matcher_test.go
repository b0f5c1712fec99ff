package errors_test

import (
	"testing"

	"github.com/joe/dir-insight/pkg/errors"
)

func TestPatternMatcher_CaseInsensitive(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		errorMsg string
		expected errors.ErrorCategory
	}{
		{
			name:     "uppercase permission denied",
			errorMsg: "PERMISSION DENIED",
			expected: errors.CategoryPermission,
		},
		{
			name:     "mixed case windows access error",
			errorMsg: "open C:\\x: Access is denied.",
			expected: errors.CategoryPermission,
		},
		{
			name:     "mixed case ssh failure",
			errorMsg: "SSH Connection Failed: i/o timeout",
			expected: errors.CategoryConnection,
		},
	}

	matcher := errors.NewPatternMatcher()

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			category := matcher.Match(testCase.errorMsg)
			if category != testCase.expected {
				t.Errorf("expected category %q, got %q for error: %q",
					testCase.expected, category, testCase.errorMsg)
			}
		})
	}
}

func TestPatternMatcher_Precedence(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		errorMsg string
		expected errors.ErrorCategory
	}{
		{
			name:     "cancellation wins over the failure it interrupted",
			errorMsg: "analysis cancelled: context canceled while reading /x: permission denied",
			expected: errors.CategoryCancelled,
		},
		{
			name:     "connection wins over a missing remote path",
			errorMsg: "failed to connect to a@b:22: no such file or directory",
			expected: errors.CategoryConnection,
		},
		{
			name:     "not a directory is not a missing path",
			errorMsg: "root unreadable: /etc/hosts: not a directory",
			expected: errors.CategoryNotDirectory,
		},
		{
			name:     "missing path",
			errorMsg: "stat /nope: no such file or directory",
			expected: errors.CategoryPath,
		},
		{
			name:     "unknown",
			errorMsg: "disk on fire",
			expected: errors.CategoryUnknown,
		},
	}

	matcher := errors.NewPatternMatcher()

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			if category := matcher.Match(testCase.errorMsg); category != testCase.expected {
				t.Errorf("expected category %q, got %q for error: %q",
					testCase.expected, category, testCase.errorMsg)
			}
		})
	}
}
