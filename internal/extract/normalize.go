package extract

import (
	"regexp"
	"strings"
)

// noisePatterns are applied in order, each match replaced with a space.
// The order is part of the contract: digit runs before hex tokens, so a
// long number is gone before the hex pass sees it.
var noisePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{4,}\b`),                              // Long numbers
	regexp.MustCompile(`\b[a-f0-9]{8,}\b`),                        // Hex strings
	regexp.MustCompile(`\b(cursor|origin|main|master|develop)\b`), // Branch names
	regexp.MustCompile(`\b(update|update-|update_)\b`),            // Generic update prefixes
	regexp.MustCompile(`\s+`),                                     // Multiple spaces
}

// Normalize strips noise from text: long digit runs, hex-looking tokens,
// branch-name words, bare "update" tokens, and redundant whitespace.
// Normalize is idempotent.
func Normalize(text string) string {
	for _, pattern := range noisePatterns {
		text = pattern.ReplaceAllString(text, " ")
	}
	return strings.Join(strings.Fields(text), " ")
}
