// Package extract derives title-generation context from branch names
// and commit messages: ticket IDs, change types, descriptions, and
// noise-free commit text.
package extract

import (
	"regexp"
	"strings"

	"github.com/wahlandcase/attuned.prtitle/internal/models"
)

// ticketRegex matches issue tracker IDs like CRU-310
var ticketRegex = regexp.MustCompile(`[A-Z]+-[0-9]+`)

// branchPrefixReplacer strips remote and worktree prefixes wherever they occur
var branchPrefixReplacer = strings.NewReplacer(
	"origin/", "",
	"cursor/", "",
	"refs/heads/", "",
	"refs/remotes/", "",
)

// conventionalPrefixes are checked in order; the first match is removed
var conventionalPrefixes = []string{
	"fix:", "feat:", "feature:", "bug:", "hotfix:", "refactor:",
	"docs:", "style:", "test:", "chore:", "perf:", "ci:",
}

// genericTerms are words too vague to convey meaning on their own
var genericTerms = map[string]bool{
	"update":  true,
	"change":  true,
	"modify":  true,
	"fix":     true,
	"improve": true,
	"add":     true,
	"remove":  true,
}

// Processor extracts meaningful context from git data.
// It is immutable after construction and safe for concurrent use.
type Processor struct {
	ticketPrefixes []string
}

// NewProcessor creates a Processor accepting tickets with the given prefixes
func NewProcessor(ticketPrefixes []string) *Processor {
	return &Processor{ticketPrefixes: ticketPrefixes}
}

// ExtractBranchContext extracts ticket, change type, and description
// from a branch name
func (p *Processor) ExtractBranchContext(branchName string) models.BranchContext {
	clean := branchPrefixReplacer.Replace(branchName)

	ticket := p.extractTicket(clean)
	changeType := inferChangeType(clean)
	description := extractDescription(clean, ticket)

	return models.BranchContext{
		Ticket:      ticket,
		ChangeType:  changeType,
		Description: description,
	}
}

// extractTicket finds the first ticket-shaped token, accepting it only
// when its prefix is whitelisted
func (p *Processor) extractTicket(branchName string) *string {
	match := ticketRegex.FindString(branchName)
	if match == "" {
		return nil
	}
	for _, prefix := range p.ticketPrefixes {
		if strings.HasPrefix(match, prefix) {
			return &match
		}
	}
	return nil
}

// inferChangeType infers the change type from a branch name.
// Priority order matters: "hotfix" must win over "fix", and a name
// containing both "fix" and "feature" resolves to Fix.
func inferChangeType(branchName string) *models.ChangeType {
	lower := strings.ToLower(branchName)

	var t models.ChangeType
	switch {
	case strings.Contains(lower, "hotfix"):
		t = models.Hotfix
	case strings.Contains(lower, "fix"), strings.Contains(lower, "bug"):
		t = models.Fix
	case strings.Contains(lower, "feature"), strings.Contains(lower, "feat"):
		t = models.Feature
	case strings.Contains(lower, "refactor"):
		t = models.Refactor
	case strings.Contains(lower, "docs"), strings.Contains(lower, "doc"):
		t = models.Docs
	case strings.Contains(lower, "chore"):
		t = models.Chore
	default:
		return nil
	}
	return &t
}

// extractDescription extracts the free-text part of a branch name
func extractDescription(branchName string, ticket *string) *string {
	words := splitBranchName(branchName)

	if len(words) <= 2 {
		return nil
	}

	// Skip the change-type segment, plus the ticket segments if present
	startIdx := 1
	if ticket != nil {
		startIdx = 2
	}
	if startIdx >= len(words) {
		return nil
	}

	description := Normalize(strings.Join(words[startIdx:], " "))
	if len(description) > 3 && !allDigits(description) {
		return &description
	}
	return nil
}

// splitBranchName splits on the separators branch names are built from
func splitBranchName(branchName string) []string {
	return strings.FieldsFunc(branchName, func(r rune) bool {
		return r == '-' || r == '_' || r == '/'
	})
}

// CleanCommitMessages cleans each commit message, dropping merge, revert,
// and near-empty commits. Relative order is preserved.
func (p *Processor) CleanCommitMessages(commits []models.CommitInfo) []string {
	var cleaned []string
	for _, commit := range commits {
		if msg := cleanCommitMessage(commit.CleanMessage()); msg != nil {
			cleaned = append(cleaned, *msg)
		}
	}
	return cleaned
}

// cleanCommitMessage strips the conventional prefix and noise from a
// single commit message, returning nil when the commit should be dropped
func cleanCommitMessage(message string) *string {
	for _, prefix := range conventionalPrefixes {
		if strings.HasPrefix(strings.ToLower(message), prefix) {
			message = strings.TrimSpace(message[len(prefix):])
			break
		}
	}

	lower := strings.ToLower(message)
	if strings.Contains(lower, "merge") || strings.Contains(lower, "revert") {
		return nil
	}

	cleaned := Normalize(message)
	if len(cleaned) > 5 {
		return &cleaned
	}
	return nil
}

// Assemble filters the cleaned commits for meaningfulness and merges
// them with the branch context
func (p *Processor) Assemble(branch models.BranchContext, commits []string) models.CleanContext {
	var meaningful []string
	for _, commit := range commits {
		if !IsGeneric(commit) {
			meaningful = append(meaningful, commit)
		}
	}
	return models.NewCleanContext(branch, meaningful)
}

// IsGeneric reports whether text is too generic to be useful: two or
// fewer words, or nothing but generic terms and short words
func IsGeneric(text string) bool {
	words := strings.Fields(text)

	if len(words) <= 2 {
		return true
	}

	for _, word := range words {
		if !genericTerms[strings.ToLower(word)] && len(word) > 3 {
			return false
		}
	}
	return true
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
