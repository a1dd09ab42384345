package git

import (
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Repo wraps an opened git repository
type Repo struct {
	repo *git.Repository
	root string
}

// Open opens the git repository containing path, walking up parent directories
func Open(path string) (*Repo, error) {
	dir := path
	for {
		repo, err := git.PlainOpen(dir)
		if err == nil {
			return &Repo{repo: repo, root: dir}, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, &NotGitRepositoryError{Path: path}
		}
		dir = parent
	}
}

// Root returns the root path of the repository
func (r *Repo) Root() string {
	return r.root
}

// CurrentBranch returns the short name of the branch HEAD points at
func (r *Repo) CurrentBranch() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", ErrNoBranch
	}
	if !head.Name().IsBranch() {
		return "", ErrNoBranch
	}
	return head.Name().Short(), nil
}

// HasBranch checks if a branch exists locally or on origin
func (r *Repo) HasBranch(branchName string) bool {
	// Check local ref first
	_, err := r.repo.Reference(plumbing.NewBranchReferenceName(branchName), true)
	if err == nil {
		return true
	}

	// Check remote ref
	_, err = r.repo.Reference(plumbing.NewRemoteReferenceName("origin", branchName), true)
	return err == nil
}

// DetectMainBranch determines if the repo uses "main" or "master"
func (r *Repo) DetectMainBranch() string {
	refs, err := r.repo.References()
	if err != nil {
		return "main"
	}

	hasRemoteMain := false
	hasRemoteMaster := false
	hasLocalMain := false
	hasLocalMaster := false

	refs.ForEach(func(ref *plumbing.Reference) error {
		switch ref.Name().String() {
		case "refs/remotes/origin/main":
			hasRemoteMain = true
		case "refs/remotes/origin/master":
			hasRemoteMaster = true
		case "refs/heads/main":
			hasLocalMain = true
		case "refs/heads/master":
			hasLocalMaster = true
		}
		return nil
	})

	// Prefer remote refs
	if hasRemoteMain {
		return "main"
	}
	if hasRemoteMaster {
		return "master"
	}

	if hasLocalMain {
		return "main"
	}
	if hasLocalMaster {
		return "master"
	}

	return "main"
}

// resolveRef resolves a branch name to a commit hash, trying the name as
// given, then as a local branch, then as an origin branch
func (r *Repo) resolveRef(name string) (*plumbing.Hash, error) {
	candidates := []string{
		name,
		"refs/heads/" + name,
		"refs/remotes/origin/" + name,
	}

	for _, rev := range candidates {
		hash, err := r.repo.ResolveRevision(plumbing.Revision(rev))
		if err == nil {
			return hash, nil
		}
	}

	return nil, &BranchNotFoundError{Branch: name}
}
