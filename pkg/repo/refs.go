package repo

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"pygit/pkg/object"
)

const headsPrefix = "refs/heads/"

// Head reads .git/HEAD and returns the branch name it points at. pygit
// carries no detached-HEAD mode -- HEAD always holds a symbolic
// "ref: refs/heads/<branch>\n" line.
func (r *Repo) Head() (string, error) {
	data, err := os.ReadFile(filepath.Join(r.GitDir, "HEAD"))
	if err != nil {
		return "", fmt.Errorf("head: %w", err)
	}
	content := strings.TrimRight(string(data), "\n")
	if !strings.HasPrefix(content, "ref: "+headsPrefix) {
		return "", fmt.Errorf("head: malformed HEAD content %q", content)
	}
	return strings.TrimPrefix(content, "ref: "+headsPrefix), nil
}

// SetHead repoints HEAD at branch, without checking that branch exists --
// callers create the branch ref first.
func (r *Repo) SetHead(branch string) error {
	path := filepath.Join(r.GitDir, "HEAD")
	return atomicWriteFile(path, []byte("ref: "+headsPrefix+branch+"\n"))
}

func (r *Repo) branchRefPath(branch string) string {
	return filepath.Join(r.GitDir, "refs", "heads", branch)
}

// BranchCommit returns the commit id a branch ref points at, or "" if the
// branch has no commits yet (an "unborn" branch, or one that doesn't
// exist).
func (r *Repo) BranchCommit(branch string) (object.Hash, error) {
	data, err := os.ReadFile(r.branchRefPath(branch))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read branch %q: %w", branch, err)
	}
	return object.Hash(strings.TrimSpace(string(data))), nil
}

// BranchExists reports whether branch has a ref file on disk.
func (r *Repo) BranchExists(branch string) bool {
	_, err := os.Stat(r.branchRefPath(branch))
	return err == nil
}

// SetBranch overwrites branch's ref to point at id.
func (r *Repo) SetBranch(branch string, id object.Hash) error {
	if err := atomicWriteFile(r.branchRefPath(branch), []byte(string(id)+"\n")); err != nil {
		return err
	}
	r.logger().Debug("updated branch ref", zap.String("branch", branch), zap.String("commit", string(id)))
	return nil
}

// DeleteBranch removes branch's ref file, if present.
func (r *Repo) DeleteBranch(branch string) error {
	err := os.Remove(r.branchRefPath(branch))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete branch %q: %w", branch, err)
	}
	return nil
}

// ListBranches returns every branch name under refs/heads, sorted.
func (r *Repo) ListBranches() ([]string, error) {
	dir := filepath.Join(r.GitDir, "refs", "heads")
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list branches: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// atomicWriteFile writes data to path via a temp file + rename so readers
// never observe a partial write.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
