package repo

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"pygit/pkg/object"
)

// Commit creates a new commit from the current index and advances the
// current branch to it.
//
//  1. Read the index and the current branch's parent commit (if any).
//  2. Build the root tree from the index.
//  3. Skip with ErrNothingToCommit when there is nothing to record: an
//     empty index with no parent commit, or a root tree identical to the
//     parent's.
//  4. Write the commit object, stamping author and committer with the
//     same identity and timestamp.
//  5. Advance the current branch ref to the new commit.
func (r *Repo) Commit(message, author string) (object.Hash, error) {
	if message == "" {
		return "", ErrMessageRequired
	}

	idx, err := r.ReadIndex()
	if err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}

	branch, err := r.Head()
	if err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	parentHash, err := r.BranchCommit(branch)
	if err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}

	if len(idx) == 0 && parentHash == "" {
		return "", ErrNothingToCommit
	}

	treeHash, err := r.BuildTree(idx)
	if err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}

	var parents []object.Hash
	if parentHash != "" {
		parentCommit, err := r.Store.ReadCommit(parentHash)
		if err != nil {
			return "", fmt.Errorf("commit: read parent %s: %w", parentHash, err)
		}
		if parentCommit.TreeHash == treeHash {
			return "", fmt.Errorf("commit: %w", ErrNothingToCommit)
		}
		parents = append(parents, parentHash)
	}

	now := time.Now().Unix()
	commitObj := &object.CommitObj{
		TreeHash:           treeHash,
		Parents:            parents,
		Author:             author,
		AuthorTimestamp:    now,
		Committer:          author,
		CommitterTimestamp: now,
		Message:            message,
	}

	commitHash, err := r.Store.WriteCommit(commitObj)
	if err != nil {
		return "", fmt.Errorf("commit: write commit: %w", err)
	}

	if err := r.SetBranch(branch, commitHash); err != nil {
		return "", fmt.Errorf("commit: update branch %q: %w", branch, err)
	}

	r.logger().Debug("created commit",
		zap.String("hash", string(commitHash)),
		zap.String("branch", branch),
		zap.String("tree", string(treeHash)),
		zap.Int("parents", len(parents)),
	)

	return commitHash, nil
}

// Log walks the commit history starting from start, following first-parent
// links, returning up to limit commits in reverse-chronological order
// (newest first).
func (r *Repo) Log(start object.Hash, limit int) ([]*object.CommitObj, error) {
	var commits []*object.CommitObj
	current := start

	for current != "" && len(commits) < limit {
		c, err := r.Store.ReadCommit(current)
		if err != nil {
			if errors.Is(err, object.ErrObjectMissing) {
				break
			}
			return nil, fmt.Errorf("log: read commit %s: %w", current, err)
		}
		commits = append(commits, c)

		if len(c.Parents) == 0 {
			break
		}
		current = c.Parents[0]
	}

	return commits, nil
}
