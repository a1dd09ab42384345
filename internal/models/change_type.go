package models

// ChangeType is the coarse category of a change inferred from a branch name
type ChangeType int

const (
	Fix ChangeType = iota
	Feature
	Refactor
	Hotfix
	Chore
	Docs
)

// String returns the lowercase tag for the change type
func (t ChangeType) String() string {
	switch t {
	case Fix:
		return "fix"
	case Feature:
		return "feature"
	case Refactor:
		return "refactor"
	case Hotfix:
		return "hotfix"
	case Chore:
		return "chore"
	case Docs:
		return "docs"
	default:
		return ""
	}
}
