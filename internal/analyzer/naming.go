package analyzer

import (
	"strings"
	"unicode"
)

// NamingConvention is the lexical style of a file name stem.
type NamingConvention int

const (
	// NamingOther matches none of the recognized styles.
	NamingOther NamingConvention = iota
	// NamingKebab is lowercase words joined by hyphens: "my-file".
	NamingKebab
	// NamingSnake is lowercase words joined by underscores: "my_file".
	NamingSnake
	// NamingCamel starts lowercase with at least one uppercase letter and no separators: "myFile".
	NamingCamel
)

// String returns the string representation of NamingConvention
func (n NamingConvention) String() string {
	switch n {
	case NamingKebab:
		return "kebab-case"
	case NamingSnake:
		return "snake_case"
	case NamingCamel:
		return "camelCase"
	case NamingOther:
		return "other"
	default:
		return "unknown"
	}
}

// ClassifyName classifies a stem (extension already removed), testing kebab, snake and camel
// in that order.
func ClassifyName(stem string) NamingConvention {
	hasHyphen := strings.ContainsRune(stem, '-')
	hasUnderscore := strings.ContainsRune(stem, '_')
	hasUpper := strings.IndexFunc(stem, unicode.IsUpper) >= 0

	switch {
	case hasHyphen && !hasUnderscore && !hasUpper:
		return NamingKebab
	case hasUnderscore && !hasHyphen && !hasUpper:
		return NamingSnake
	case !hasHyphen && !hasUnderscore && hasUpper && startsLower(stem):
		return NamingCamel
	default:
		return NamingOther
	}
}

func startsLower(s string) bool {
	for _, r := range s {
		return unicode.IsLower(r)
	}

	return false
}

// NamingStats tallies the recognized naming styles. Names in none of them are not counted.
type NamingStats struct {
	CamelCase int `json:"camel_case_count"`
	SnakeCase int `json:"snake_case_count"`
	KebabCase int `json:"kebab_case_count"`
}

// NamingClassifier counts naming styles over a record stream. It is not safe for concurrent use.
type NamingClassifier struct {
	stats NamingStats
}

// NewNamingClassifier creates an empty classifier.
func NewNamingClassifier() *NamingClassifier {
	return &NamingClassifier{}
}

// Add classifies one record's stem.
func (c *NamingClassifier) Add(rec FileRecord) {
	switch ClassifyName(rec.Stem()) {
	case NamingKebab:
		c.stats.KebabCase++
	case NamingSnake:
		c.stats.SnakeCase++
	case NamingCamel:
		c.stats.CamelCase++
	case NamingOther:
	}
}

// Stats returns the current tallies.
func (c *NamingClassifier) Stats() NamingStats {
	return c.stats
}
