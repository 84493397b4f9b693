package repo

import (
	"fmt"
	"os"
	"path/filepath"

	"pygit/pkg/object"
)

// Init creates a new pygit repository at path: .git/, .git/objects/,
// .git/refs/heads/, HEAD pointing at defaultBranch, and an empty index.
// If a .git/ directory already exists, created is false and no error is
// returned -- a fails-soft "already exists" report, not a hard failure.
func Init(path, defaultBranch string) (r *Repo, created bool, err error) {
	gitDir := filepath.Join(path, metaDirName)

	if _, statErr := os.Stat(gitDir); statErr == nil {
		return &Repo{RootDir: path, GitDir: gitDir, Store: object.NewStore(gitDir)}, false, nil
	}

	dirs := []string{
		filepath.Join(gitDir, "objects"),
		filepath.Join(gitDir, "refs", "heads"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return nil, false, fmt.Errorf("init: mkdir %s: %w", d, err)
		}
	}

	headPath := filepath.Join(gitDir, "HEAD")
	if err := os.WriteFile(headPath, []byte("ref: refs/heads/"+defaultBranch+"\n"), 0o644); err != nil {
		return nil, false, fmt.Errorf("init: write HEAD: %w", err)
	}

	repo := &Repo{RootDir: path, GitDir: gitDir, Store: object.NewStore(gitDir)}
	if err := repo.WriteIndex(emptyIndex()); err != nil {
		return nil, false, fmt.Errorf("init: write index: %w", err)
	}

	return repo, true, nil
}

// Open opens the pygit repository rooted exactly at path. The CLI always
// runs from the repository root, so Open fails if .git/ is not directly
// present at path rather than searching upward through parent directories.
func Open(path string) (*Repo, error) {
	gitDir := filepath.Join(path, metaDirName)
	info, err := os.Stat(gitDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("open %s: %w", path, ErrNotARepository)
	}
	return &Repo{RootDir: path, GitDir: gitDir, Store: object.NewStore(gitDir)}, nil
}
