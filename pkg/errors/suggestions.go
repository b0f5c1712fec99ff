package errors

import "fmt"

// SuggestionGenerator generates actionable suggestions based on error category.
type SuggestionGenerator interface {
	Generate(category ErrorCategory, affectedPath string) []string
}

// NewSuggestionGenerator creates a new SuggestionGenerator.
func NewSuggestionGenerator() SuggestionGenerator {
	return &suggestionGenerator{}
}

// suggestionGenerator is the concrete implementation of SuggestionGenerator.
type suggestionGenerator struct{}

// Generate returns actionable suggestions based on the error category and affected path.
func (g *suggestionGenerator) Generate(category ErrorCategory, affectedPath string) []string {
	switch category {
	case CategoryCancelled:
		return g.generateCancelledSuggestions(affectedPath)
	case CategoryConnection:
		return g.generateConnectionSuggestions(affectedPath)
	case CategoryPermission:
		return g.generatePermissionSuggestions(affectedPath)
	case CategorySymlinkLoop:
		return g.generateSymlinkLoopSuggestions(affectedPath)
	case CategoryNotDirectory:
		return g.generateNotDirectorySuggestions(affectedPath)
	case CategoryPath:
		return g.generatePathSuggestions(affectedPath)
	case CategoryUnknown:
		return g.generateUnknownSuggestions(affectedPath)
	default:
		return g.generateUnknownSuggestions(affectedPath)
	}
}

func (g *suggestionGenerator) generateCancelledSuggestions(_ string) []string {
	return []string{
		"The analysis was interrupted before it finished; no partial results were produced",
		"Run the command again and let it complete",
		"Use --exclude to skip large subtrees (e.g. --exclude node_modules) for a faster scan",
	}
}

func (g *suggestionGenerator) generateConnectionSuggestions(path string) []string {
	suggestions := []string{
		"Check that the host is reachable and the SSH port is open",
		"Make sure an SSH agent is running or a key exists in ~/.ssh (id_ed25519, id_rsa, id_ecdsa)",
		"Verify the host key is in ~/.ssh/known_hosts",
	}

	if path != "" {
		suggestions = append(suggestions, fmt.Sprintf("Try connecting manually: 'sftp %s'", path))
	}

	return suggestions
}

func (g *suggestionGenerator) generateNotDirectorySuggestions(path string) []string {
	suggestions := []string{
		"Pass a directory to analyze, not a file",
	}

	if path != "" {
		suggestions = append(suggestions, "Check what the path points to with 'ls -ld "+path+"'")
	}

	return suggestions
}

func (g *suggestionGenerator) generatePathSuggestions(path string) []string {
	suggestions := []string{
		"Verify the path exists and is spelled correctly",
	}

	if path != "" {
		suggestions = append(suggestions, "Check if the path exists: "+path)
		suggestions = append(suggestions, "Ensure all parent directories exist for "+path)
	} else {
		suggestions = append(suggestions, "Ensure all parent directories exist")
	}

	return suggestions
}

func (g *suggestionGenerator) generatePermissionSuggestions(path string) []string {
	suggestions := []string{
		"Ensure you have read and execute (list) permission on the directory",
	}

	if path != "" {
		suggestions = append(suggestions, fmt.Sprintf("Check permissions with 'ls -ld %s'", path))
	} else {
		suggestions = append(suggestions, "Check permissions with 'ls -ld' on the affected path")
	}

	suggestions = append(suggestions, "Try running with appropriate permissions or as a privileged user")

	return suggestions
}

func (g *suggestionGenerator) generateSymlinkLoopSuggestions(path string) []string {
	suggestions := []string{
		"A symbolic link resolves back to itself and cannot be followed",
	}

	if path != "" {
		suggestions = append(suggestions, "Inspect the link chain with 'readlink -f "+path+"'")
	}

	suggestions = append(suggestions, "Remove or fix the looping link")

	return suggestions
}

func (g *suggestionGenerator) generateUnknownSuggestions(path string) []string {
	suggestions := []string{
		"Check the error message for more details",
		"Re-run with --log-level debug --log-file analysis.log for a detailed trace",
	}

	if path != "" {
		suggestions = append(suggestions, "Verify the path is accessible: "+path)
	}

	return suggestions
}
