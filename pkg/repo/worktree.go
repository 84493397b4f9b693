package repo

import (
	"fmt"
	"os"
	"path/filepath"
)

// writeTreeFiles writes every entry of files to the working directory,
// creating parent directories as needed and overwriting anything already
// present.
func (r *Repo) writeTreeFiles(files []TreeFileEntry) error {
	for _, f := range files {
		absPath := filepath.Join(r.RootDir, filepath.FromSlash(f.Path))

		dir := filepath.Dir(absPath)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %q: %w", dir, err)
		}

		blob, err := r.Store.ReadBlob(f.BlobHash)
		if err != nil {
			return fmt.Errorf("read blob for %q: %w", f.Path, err)
		}

		if err := os.WriteFile(absPath, blob.Data, 0o644); err != nil {
			return fmt.Errorf("write %q: %w", f.Path, err)
		}
	}
	return nil
}

// clearFiles removes the regular file at each given repo-relative path.
// A missing file is not an error. Directories are never removed, even if
// they become empty as a result.
func (r *Repo) clearFiles(paths []string) error {
	for _, p := range paths {
		absPath := filepath.Join(r.RootDir, filepath.FromSlash(p))
		if err := os.Remove(absPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove %q: %w", p, err)
		}
	}
	return nil
}
