package ui

import (
	"fmt"
	"strings"

	"github.com/wahlandcase/attuned.prtitle/internal/models"
)

// KV renders a labeled value line for verbose output
func KV(label, value string) string {
	return labelStyle.Render(label+":") + " " + valueStyle.Render(value)
}

// Dim renders de-emphasized text
func Dim(text string) string {
	return dimStyle.Render(text)
}

// Warning renders a warning line
func Warning(text string) string {
	return warningStyle.Render(text)
}

// RenderBranchContext renders what was extracted from the branch name
func RenderBranchContext(ctx models.BranchContext) string {
	var lines []string
	lines = append(lines, KV("Ticket", optional(ctx.Ticket)))

	changeType := "(none)"
	if ctx.ChangeType != nil {
		changeType = ctx.ChangeType.String()
	}
	lines = append(lines, KV("Type", changeType))
	lines = append(lines, KV("Description", optional(ctx.Description)))
	return strings.Join(lines, "\n")
}

// RenderCommits renders a capped commit list for verbose output
func RenderCommits(commits []models.CommitInfo, max int) string {
	var lines []string
	for i, commit := range commits {
		if i >= max {
			lines = append(lines, Dim(fmt.Sprintf("  ... and %d more", len(commits)-max)))
			break
		}
		lines = append(lines, "  "+Dim(commit.ShortHash())+" "+valueStyle.Render(commit.Subject()))
	}
	return strings.Join(lines, "\n")
}

// RenderCleaned renders the cleaned commit messages, numbered
func RenderCleaned(commits []string) string {
	var lines []string
	for i, commit := range commits {
		lines = append(lines, fmt.Sprintf("  %d: %s", i+1, valueStyle.Render(commit)))
	}
	return strings.Join(lines, "\n")
}

func optional(s *string) string {
	if s == nil {
		return "(none)"
	}
	return *s
}
