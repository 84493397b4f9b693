package repo

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"pygit/pkg/object"
)

// Status summarizes how the index, HEAD, and working directory diverge.
type Status struct {
	ToBeCommitted []string // staged relative to HEAD (new or modified)
	NotStaged     []string // tracked in the index, modified on disk
	Untracked     []string // present on disk, absent from the index
	Deleted       []string // staged but missing from disk
}

// Status computes the four status categories (§4.H): files staged
// relative to HEAD, files modified on disk relative to the index, files
// on disk but never staged, and staged files missing from disk.
func (r *Repo) Status() (*Status, error) {
	idx, err := r.ReadIndex()
	if err != nil {
		return nil, fmt.Errorf("status: %w", err)
	}

	branch, err := r.Head()
	if err != nil {
		return nil, fmt.Errorf("status: %w", err)
	}
	headCommit, err := r.BranchCommit(branch)
	if err != nil {
		return nil, fmt.Errorf("status: %w", err)
	}
	headIdx := emptyIndex()
	if headCommit != "" {
		commit, err := r.Store.ReadCommit(headCommit)
		if err != nil {
			return nil, fmt.Errorf("status: read HEAD commit: %w", err)
		}
		headIdx, err = r.FlattenTreeIndex(commit.TreeHash)
		if err != nil {
			return nil, fmt.Errorf("status: flatten HEAD tree: %w", err)
		}
	}

	workFiles, err := r.workingFiles()
	if err != nil {
		return nil, fmt.Errorf("status: %w", err)
	}

	st := &Status{}

	for path, blobHash := range idx {
		if headHash, inHead := headIdx[path]; !inHead || headHash != blobHash {
			st.ToBeCommitted = append(st.ToBeCommitted, path)
		}
	}

	for path, blobHash := range idx {
		absPath := filepath.Join(r.RootDir, filepath.FromSlash(path))
		content, err := os.ReadFile(absPath)
		if err != nil {
			if os.IsNotExist(err) {
				st.Deleted = append(st.Deleted, path)
				continue
			}
			return nil, fmt.Errorf("status: read %q: %w", path, err)
		}
		if object.HashObject(object.TypeBlob, content) != blobHash {
			st.NotStaged = append(st.NotStaged, path)
		}
	}

	for path := range workFiles {
		if _, staged := idx[path]; !staged {
			st.Untracked = append(st.Untracked, path)
		}
	}

	sort.Strings(st.ToBeCommitted)
	sort.Strings(st.NotStaged)
	sort.Strings(st.Untracked)
	sort.Strings(st.Deleted)

	return st, nil
}

// workingFiles returns every regular file under the repo root, repo-relative,
// skipping the .git metadata directory.
func (r *Repo) workingFiles() (map[string]bool, error) {
	files := make(map[string]bool)
	err := filepath.WalkDir(r.RootDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if path != r.RootDir && d.Name() == metaDirName {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(r.RootDir, path)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = true
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk working tree: %w", err)
	}
	return files, nil
}
