package git

import (
	"errors"
	"fmt"
)

// ErrNoBranch indicates the current branch could not be determined
// (detached HEAD or an unborn repository).
var ErrNoBranch = errors.New("could not determine current branch")

// NotGitRepositoryError indicates no git repository was found at or above a path
type NotGitRepositoryError struct {
	Path string
}

func (e *NotGitRepositoryError) Error() string {
	return "not a git repository: " + e.Path
}

// BranchNotFoundError indicates a branch could not be resolved
type BranchNotFoundError struct {
	Branch string
}

func (e *BranchNotFoundError) Error() string {
	return "branch '" + e.Branch + "' not found"
}

// NoCommitsError indicates there are no commits between two refs
type NoCommitsError struct {
	Base   string
	Branch string
}

func (e *NoCommitsError) Error() string {
	return fmt.Sprintf("no commits found between '%s' and '%s'", e.Base, e.Branch)
}
