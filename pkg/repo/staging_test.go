package repo

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestAdd_SingleFile(t *testing.T) {
	dir := t.TempDir()
	r, _, err := Init(dir, "master")
	if err != nil {
		t.Fatalf("Init: %v", err)
	}

	content := []byte("package main\n\nfunc hello() {}\n")
	if err := os.WriteFile(filepath.Join(dir, "main.go"), content, 0o644); err != nil {
		t.Fatalf("write main.go: %v", err)
	}

	if err := r.Add([]string{"main.go"}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	idx, err := r.ReadIndex()
	if err != nil {
		t.Fatalf("ReadIndex: %v", err)
	}

	blobHash, ok := idx["main.go"]
	if !ok {
		t.Fatalf("index missing entry for main.go; entries: %v", idx)
	}

	blob, err := r.Store.ReadBlob(blobHash)
	if err != nil {
		t.Fatalf("ReadBlob: %v", err)
	}
	if string(blob.Data) != string(content) {
		t.Errorf("blob data mismatch:\ngot:  %q\nwant: %q", blob.Data, content)
	}
}

func TestAdd_RecursesIntoDirectory(t *testing.T) {
	dir := t.TempDir()
	r, _, err := Init(dir, "master")
	if err != nil {
		t.Fatalf("Init: %v", err)
	}

	mustWrite(t, dir, "pkg/a.go", "package pkg\n")
	mustWrite(t, dir, "pkg/sub/b.go", "package sub\n")

	if err := r.Add([]string{"pkg"}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	idx, err := r.ReadIndex()
	if err != nil {
		t.Fatalf("ReadIndex: %v", err)
	}
	for _, p := range []string{"pkg/a.go", "pkg/sub/b.go"} {
		if _, ok := idx[p]; !ok {
			t.Errorf("index missing entry for %q; entries: %v", p, idx)
		}
	}
}

func TestAdd_SkipsGitDir(t *testing.T) {
	dir := t.TempDir()
	r, _, err := Init(dir, "master")
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	mustWrite(t, dir, "a.txt", "hi\n")

	if err := r.Add([]string{"."}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	idx, err := r.ReadIndex()
	if err != nil {
		t.Fatalf("ReadIndex: %v", err)
	}
	for p := range idx {
		if len(p) >= 4 && p[:4] == ".git" {
			t.Errorf("index unexpectedly contains .git path: %q", p)
		}
	}
	if _, ok := idx["a.txt"]; !ok {
		t.Fatalf("index missing a.txt; entries: %v", idx)
	}
}

func TestAdd_MissingPath(t *testing.T) {
	dir := t.TempDir()
	r, _, err := Init(dir, "master")
	if err != nil {
		t.Fatalf("Init: %v", err)
	}

	err = r.Add([]string{"does-not-exist.txt"})
	if !errors.Is(err, ErrPathNotFound) {
		t.Fatalf("Add: got %v, want ErrPathNotFound", err)
	}
}

func TestAdd_OverwritesPreviousStagedVersion(t *testing.T) {
	dir := t.TempDir()
	r, _, err := Init(dir, "master")
	if err != nil {
		t.Fatalf("Init: %v", err)
	}

	path := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(path, []byte("v1\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := r.Add([]string{"a.txt"}); err != nil {
		t.Fatalf("Add v1: %v", err)
	}
	idx1, _ := r.ReadIndex()
	h1 := idx1["a.txt"]

	if err := os.WriteFile(path, []byte("v2\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := r.Add([]string{"a.txt"}); err != nil {
		t.Fatalf("Add v2: %v", err)
	}
	idx2, _ := r.ReadIndex()
	h2 := idx2["a.txt"]

	if h1 == h2 {
		t.Error("expected different blob hash after restaging modified content")
	}
}

func TestWriteIndex_ReadIndex_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	r, _, err := Init(dir, "master")
	if err != nil {
		t.Fatalf("Init: %v", err)
	}

	idx := Index{"a.txt": "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"}
	if err := r.WriteIndex(idx); err != nil {
		t.Fatalf("WriteIndex: %v", err)
	}

	got, err := r.ReadIndex()
	if err != nil {
		t.Fatalf("ReadIndex: %v", err)
	}
	if got["a.txt"] != idx["a.txt"] {
		t.Errorf("ReadIndex round-trip mismatch: got %v, want %v", got, idx)
	}
}

func TestReadIndex_MissingFileIsEmpty(t *testing.T) {
	dir := t.TempDir()
	r, _, err := Init(dir, "master")
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := os.Remove(r.indexPath()); err != nil {
		t.Fatalf("remove index: %v", err)
	}

	idx, err := r.ReadIndex()
	if err != nil {
		t.Fatalf("ReadIndex: %v", err)
	}
	if len(idx) != 0 {
		t.Errorf("expected empty index, got %v", idx)
	}
}

func mustWrite(t *testing.T, root, relPath, content string) {
	t.Helper()
	absPath := filepath.Join(root, relPath)
	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(absPath, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}
