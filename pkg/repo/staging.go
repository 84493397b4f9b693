package repo

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"pygit/pkg/object"
)

// Index is the staging area: a flat map from repo-relative path to the
// hash of the blob staged at that path. encoding/json marshals map keys
// in sorted order, which is what gives the on-disk index file a
// deterministic byte image.
type Index map[string]object.Hash

func emptyIndex() Index {
	return Index{}
}

// indexPath returns the filesystem path to the staging index file.
func (r *Repo) indexPath() string {
	return filepath.Join(r.GitDir, "index")
}

// ReadIndex loads the staging area from .git/index. A missing file is
// not an error -- it reads as an empty index.
func (r *Repo) ReadIndex() (Index, error) {
	data, err := os.ReadFile(r.indexPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return emptyIndex(), nil
		}
		return nil, fmt.Errorf("read index: %w", err)
	}

	var idx Index
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("read index: %w: %w", ErrMalformedIndex, err)
	}
	if idx == nil {
		idx = emptyIndex()
	}
	return idx, nil
}

// WriteIndex atomically writes idx to .git/index.
func (r *Repo) WriteIndex(idx Index) error {
	data, err := json.Marshal(idx)
	if err != nil {
		return fmt.Errorf("write index: %w", err)
	}
	if err := atomicWriteFile(r.indexPath(), data); err != nil {
		return fmt.Errorf("write index: %w", err)
	}
	return nil
}

// Add stages one or more paths. A path naming a regular file stages that
// file directly; a path naming a directory recurses over every regular
// file beneath it (skipping the repository's own .git directory). Each
// file's content is hashed and written to the object store as a blob,
// and the index entry at its repo-relative path is updated to the
// resulting blob id.
func (r *Repo) Add(paths []string) error {
	idx, err := r.ReadIndex()
	if err != nil {
		return fmt.Errorf("add: %w", err)
	}

	for _, p := range paths {
		absPath, err := r.resolvePath(p)
		if err != nil {
			return fmt.Errorf("add %q: %w", p, err)
		}

		info, err := os.Stat(absPath)
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("add %q: %w", p, ErrPathNotFound)
			}
			return fmt.Errorf("add %q: %w", p, err)
		}

		switch {
		case info.Mode().IsRegular():
			if err := r.stageFile(idx, absPath); err != nil {
				return fmt.Errorf("add %q: %w", p, err)
			}
		case info.IsDir():
			if err := r.stageDir(idx, absPath); err != nil {
				return fmt.Errorf("add %q: %w", p, err)
			}
		default:
			return fmt.Errorf("add %q: %w", p, ErrInvalidPath)
		}
	}

	if err := r.WriteIndex(idx); err != nil {
		return fmt.Errorf("add: %w", err)
	}
	r.logger().Debug("staged paths", zap.Strings("paths", paths), zap.Int("entries", len(idx)))
	return nil
}

func (r *Repo) stageFile(idx Index, absPath string) error {
	content, err := os.ReadFile(absPath)
	if err != nil {
		return fmt.Errorf("read %q: %w", absPath, err)
	}
	blobHash, err := r.Store.WriteBlob(&object.Blob{Data: content})
	if err != nil {
		return fmt.Errorf("write blob %q: %w", absPath, err)
	}
	relPath, err := filepath.Rel(r.RootDir, absPath)
	if err != nil {
		return fmt.Errorf("relativize %q: %w", absPath, err)
	}
	idx[filepath.ToSlash(relPath)] = blobHash
	return nil
}

func (r *Repo) stageDir(idx Index, dirPath string) error {
	var files []string
	err := filepath.WalkDir(dirPath, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if path != r.RootDir && d.Name() == metaDirName {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk %q: %w", dirPath, err)
	}
	sort.Strings(files)
	for _, f := range files {
		if err := r.stageFile(idx, f); err != nil {
			return err
		}
	}
	return nil
}

// resolvePath turns a path argument (absolute, or relative to the
// repository root) into a path rooted within the repository.
func (r *Repo) resolvePath(p string) (string, error) {
	if filepath.IsAbs(p) {
		return filepath.Clean(p), nil
	}
	return filepath.Join(r.RootDir, p), nil
}
