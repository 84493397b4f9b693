package repo

import "fmt"

// CreateBranch creates a new branch named name pointing at the current
// branch's commit. Returns ErrUnbornBranch if the current branch has no
// commits yet, and ErrBranchExists if name already has a ref.
func (r *Repo) CreateBranch(name string) error {
	if r.BranchExists(name) {
		return fmt.Errorf("create branch %q: %w", name, ErrBranchExists)
	}

	current, err := r.Head()
	if err != nil {
		return fmt.Errorf("create branch: %w", err)
	}
	commit, err := r.BranchCommit(current)
	if err != nil {
		return fmt.Errorf("create branch: %w", err)
	}
	if commit == "" {
		return fmt.Errorf("create branch %q: %w", name, ErrUnbornBranch)
	}

	if err := r.SetBranch(name, commit); err != nil {
		return fmt.Errorf("create branch %q: %w", name, err)
	}
	return nil
}

// BranchListEntry is one line of `branch`'s listing output.
type BranchListEntry struct {
	Name    string
	Current bool
}

// BranchList returns every branch, sorted by name, with the branch HEAD
// currently points at marked.
func (r *Repo) BranchList() ([]BranchListEntry, error) {
	names, err := r.ListBranches()
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	current, err := r.Head()
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}

	entries := make([]BranchListEntry, len(names))
	for i, n := range names {
		entries[i] = BranchListEntry{Name: n, Current: n == current}
	}
	return entries, nil
}
