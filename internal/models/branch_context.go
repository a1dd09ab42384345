package models

// BranchContext holds what could be extracted from a branch name.
// Fields are nil when the branch name carried no usable signal.
type BranchContext struct {
	// Ticket is the issue tracker ID (e.g., "CRU-310")
	Ticket *string
	// ChangeType inferred from the branch name
	ChangeType *ChangeType
	// Description is the free-text remainder of the branch name
	Description *string
}

// CleanContext merges branch context with cleaned commit messages,
// ready for title generation.
type CleanContext struct {
	Ticket      *string
	ChangeType  *ChangeType
	Description *string
	// Commits are cleaned commit messages, newest first
	Commits []string
}

// NewCleanContext creates a CleanContext from a branch context and commits
func NewCleanContext(branch BranchContext, commits []string) CleanContext {
	return CleanContext{
		Ticket:      branch.Ticket,
		ChangeType:  branch.ChangeType,
		Description: branch.Description,
		Commits:     commits,
	}
}
