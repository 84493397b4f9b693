package repo

import "errors"

// Sentinel error kinds. Callers branch on kind with errors.Is; every
// returned error is wrapped with context via fmt.Errorf("...: %w", ...)
// at the point it's raised.
var (
	ErrNotARepository  = errors.New("not a repository")
	ErrPathNotFound    = errors.New("path not found")
	ErrInvalidPath     = errors.New("path is neither a regular file nor a directory")
	ErrMalformedIndex  = errors.New("malformed index")
	ErrUnbornBranch    = errors.New("branch has no commits yet")
	ErrBranchNotFound  = errors.New("branch not found")
	ErrMessageRequired = errors.New("commit message is required")
	ErrBranchExists    = errors.New("branch already exists")
	ErrNothingToCommit = errors.New("nothing to commit")
)
