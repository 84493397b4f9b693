package repo

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"pygit/pkg/object"
)

// TreeFileEntry represents a single file found while flattening a tree.
type TreeFileEntry struct {
	Path     string
	BlobHash object.Hash
}

// BuildTree converts a flat index into a hierarchical tree, writing
// TreeObj objects to the store bottom-up and returning the root hash.
// Index paths use forward slashes (e.g. "pkg/util/util.go"); BuildTree
// groups them by directory and recurses.
func (r *Repo) BuildTree(idx Index) (object.Hash, error) {
	return r.buildTreeDir(idx, "")
}

func (r *Repo) buildTreeDir(idx Index, prefix string) (object.Hash, error) {
	files := make(map[string]object.Hash)  // name -> blob hash
	subdirs := make(map[string]struct{})   // immediate child dir names

	for p, blobHash := range idx {
		var rel string
		if prefix == "" {
			rel = p
		} else {
			if !strings.HasPrefix(p, prefix+"/") {
				continue
			}
			rel = p[len(prefix)+1:]
		}

		slash := strings.IndexByte(rel, '/')
		if slash < 0 {
			files[rel] = blobHash
		} else {
			subdirs[rel[:slash]] = struct{}{}
		}
	}

	names := make([]string, 0, len(files)+len(subdirs))
	for name := range files {
		if _, isDir := subdirs[name]; isDir {
			return "", fmt.Errorf("build tree: %q is both a file and a directory: %w", joinPrefix(prefix, name), ErrMalformedIndex)
		}
		names = append(names, name)
	}
	for name := range subdirs {
		names = append(names, name)
	}
	sort.Strings(names)

	var entries []object.TreeEntry
	for _, name := range names {
		if blobHash, isFile := files[name]; isFile {
			entries = append(entries, object.TreeEntry{
				Name:     name,
				IsDir:    false,
				BlobHash: blobHash,
			})
			continue
		}

		childPrefix := joinPrefix(prefix, name)
		subHash, err := r.buildTreeDir(idx, childPrefix)
		if err != nil {
			return "", err
		}
		entries = append(entries, object.TreeEntry{
			Name:        name,
			IsDir:       true,
			SubtreeHash: subHash,
		})
	}

	treeObj := &object.TreeObj{Entries: entries}
	h, err := r.Store.WriteTree(treeObj)
	if err != nil {
		return "", fmt.Errorf("write tree (prefix=%q): %w", prefix, err)
	}
	return h, nil
}

func joinPrefix(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}

// FlattenTree walks a tree object recursively, returning every file entry
// with its full repo-relative path.
func (r *Repo) FlattenTree(h object.Hash) ([]TreeFileEntry, error) {
	return r.flattenTreeRec(h, "")
}

// FlattenTreeIndex is FlattenTree collapsed into an Index, for comparing
// a commit's tree against the working index (e.g. in status).
func (r *Repo) FlattenTreeIndex(h object.Hash) (Index, error) {
	entries, err := r.FlattenTree(h)
	if err != nil {
		return nil, err
	}
	idx := emptyIndex()
	for _, e := range entries {
		idx[e.Path] = e.BlobHash
	}
	return idx, nil
}

func (r *Repo) flattenTreeRec(h object.Hash, prefix string) ([]TreeFileEntry, error) {
	treeObj, err := r.Store.ReadTree(h)
	if err != nil {
		return nil, fmt.Errorf("flatten tree: read %s: %w", h, err)
	}

	var result []TreeFileEntry
	for _, entry := range treeObj.Entries {
		fullPath := entry.Name
		if prefix != "" {
			fullPath = path.Join(prefix, entry.Name)
		}

		if entry.IsDir {
			sub, err := r.flattenTreeRec(entry.SubtreeHash, fullPath)
			if err != nil {
				return nil, err
			}
			result = append(result, sub...)
		} else {
			result = append(result, TreeFileEntry{
				Path:     fullPath,
				BlobHash: entry.BlobHash,
			})
		}
	}
	return result, nil
}
