package repo

import (
	"fmt"

	"go.uber.org/zap"

	"pygit/pkg/object"
)

// Checkout switches HEAD and the working directory to branch. If create
// is true, a new branch ref is made pointing at the commit the current
// branch is on; if false, branch must already have a ref.
//
// Unlike a conventional git checkout, pygit performs no dirty-tree check
// before discarding the working directory's contents -- uncommitted
// changes in tracked files are silently lost.
func (r *Repo) Checkout(branch string, create bool) error {
	previousBranch, err := r.Head()
	if err != nil {
		return fmt.Errorf("checkout: %w", err)
	}
	previousCommit, err := r.BranchCommit(previousBranch)
	if err != nil {
		return fmt.Errorf("checkout: %w", err)
	}

	var toClear []TreeFileEntry
	if previousCommit != "" {
		prev, err := r.Store.ReadCommit(previousCommit)
		if err != nil {
			return fmt.Errorf("checkout: read commit %s: %w", previousCommit, err)
		}
		toClear, err = r.FlattenTree(prev.TreeHash)
		if err != nil {
			return fmt.Errorf("checkout: flatten current tree: %w", err)
		}
	}

	var targetCommit object.Hash
	if create {
		if previousCommit == "" {
			return fmt.Errorf("checkout: create branch %q: %w", branch, ErrUnbornBranch)
		}
		targetCommit = previousCommit
		if err := r.SetBranch(branch, targetCommit); err != nil {
			return fmt.Errorf("checkout: create branch %q: %w", branch, err)
		}
	} else {
		if !r.BranchExists(branch) {
			return fmt.Errorf("checkout: %w", ErrBranchNotFound)
		}
		targetCommit, err = r.BranchCommit(branch)
		if err != nil {
			return fmt.Errorf("checkout: %w", err)
		}
	}

	if err := r.SetHead(branch); err != nil {
		return fmt.Errorf("checkout: update HEAD: %w", err)
	}

	clearPaths := make([]string, len(toClear))
	for i, f := range toClear {
		clearPaths[i] = f.Path
	}
	if err := r.clearFiles(clearPaths); err != nil {
		return fmt.Errorf("checkout: %w", err)
	}
	r.logger().Debug("cleared previous branch files", zap.Int("count", len(clearPaths)))

	var targetFiles []TreeFileEntry
	if targetCommit != "" {
		targetObj, err := r.Store.ReadCommit(targetCommit)
		if err != nil {
			return fmt.Errorf("checkout: read commit %s: %w", targetCommit, err)
		}
		targetFiles, err = r.FlattenTree(targetObj.TreeHash)
		if err != nil {
			return fmt.Errorf("checkout: flatten target tree: %w", err)
		}
	}
	if err := r.writeTreeFiles(targetFiles); err != nil {
		return fmt.Errorf("checkout: %w", err)
	}

	if err := r.WriteIndex(emptyIndex()); err != nil {
		return fmt.Errorf("checkout: reset index: %w", err)
	}

	r.logger().Debug("checked out branch",
		zap.String("branch", branch),
		zap.Bool("created", create),
		zap.Int("filesWritten", len(targetFiles)),
	)

	return nil
}
