package git

import (
	"github.com/wahlandcase/attuned.prtitle/internal/models"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// CommitsBetween returns the commits on headBranch that are not reachable
// from baseBranch, newest first, capped at maxCommits. Merge commits are
// skipped.
func (r *Repo) CommitsBetween(baseBranch, headBranch string, maxCommits int) ([]models.CommitInfo, error) {
	baseHash, err := r.resolveRef(baseBranch)
	if err != nil {
		return nil, err
	}

	headHash, err := r.resolveRef(headBranch)
	if err != nil {
		return nil, err
	}

	// Build set of commits reachable from base
	baseCommits := make(map[plumbing.Hash]bool)
	baseIter, err := r.repo.Log(&git.LogOptions{From: *baseHash})
	if err != nil {
		return nil, err
	}
	baseIter.ForEach(func(c *object.Commit) error {
		baseCommits[c.Hash] = true
		return nil
	})

	headIter, err := r.repo.Log(&git.LogOptions{From: *headHash})
	if err != nil {
		return nil, err
	}

	var commits []models.CommitInfo
	seen := make(map[plumbing.Hash]bool)
	err = headIter.ForEach(func(c *object.Commit) error {
		if seen[c.Hash] || baseCommits[c.Hash] {
			return nil
		}
		seen[c.Hash] = true

		// Merge commits carry no useful message of their own
		if c.NumParents() > 1 {
			return nil
		}

		commits = append(commits, models.NewCommitInfo(
			c.Hash.String(),
			c.Message,
			c.Author.Name,
			c.Author.When.Unix(),
		))

		if len(commits) >= maxCommits {
			return storer.ErrStop
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(commits) == 0 {
		return nil, &NoCommitsError{Base: baseBranch, Branch: headBranch}
	}

	return commits, nil
}
