// Package github wraps the gh CLI for PR operations.
package github

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/wahlandcase/attuned.prtitle/internal/models"
)

// CheckAuth verifies gh CLI is authenticated
func CheckAuth() error {
	cmd := exec.Command("gh", "auth", "status")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("not authenticated with GitHub CLI. Run 'gh auth login' first")
	}
	return nil
}

// GetExistingPR gets an existing open PR for the given head -> base branch
func GetExistingPR(repoPath, headBranch, baseBranch string) (*models.GhPr, error) {
	cmd := exec.Command("gh", "pr", "list",
		"--head", headBranch,
		"--base", baseBranch,
		"--state", "open",
		"--json", "number,url,title,state",
	)
	cmd.Dir = repoPath

	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("gh pr list failed: %s", string(output))
	}

	var prs []models.GhPr
	if err := json.Unmarshal(output, &prs); err != nil {
		return nil, fmt.Errorf("failed to parse gh pr list output: %w", err)
	}

	if len(prs) == 0 {
		return nil, nil
	}

	return &prs[0], nil
}

// CreatePR creates a new pull request
func CreatePR(repoPath, headBranch, baseBranch, title, body string) (*models.GhPr, error) {
	cmd := exec.Command("gh", "pr", "create",
		"--head", headBranch,
		"--base", baseBranch,
		"--title", title,
		"--body", body,
	)
	cmd.Dir = repoPath

	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("gh pr create failed: %s", string(output))
	}

	// gh pr create outputs the URL
	url := strings.TrimSpace(string(output))

	// Extract PR number from URL (e.g., https://github.com/org/repo/pull/123)
	parts := strings.Split(url, "/")
	var number uint64
	if len(parts) > 0 {
		number, _ = strconv.ParseUint(parts[len(parts)-1], 10, 64)
	}

	return &models.GhPr{
		Number: number,
		URL:    url,
		Title:  title,
		State:  "open",
	}, nil
}

// UpdatePRTitle retitles an existing pull request
func UpdatePRTitle(repoPath string, number uint64, title string) error {
	cmd := exec.Command("gh", "pr", "edit",
		strconv.FormatUint(number, 10),
		"--title", title,
	)
	cmd.Dir = repoPath

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("gh pr edit failed: %s", string(output))
	}
	return nil
}

// BuildPRBody renders a PR body listing the analyzed commits
func BuildPRBody(commits []models.CommitInfo) string {
	var b strings.Builder
	b.WriteString("## Commits\n\n")
	for _, commit := range commits {
		fmt.Fprintf(&b, "- %s %s\n", commit.ShortHash(), commit.Subject())
	}
	return b.String()
}
