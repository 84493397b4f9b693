package object

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func TestMarshalUnmarshalBlob(t *testing.T) {
	orig := &Blob{Data: []byte("hello world\nline two")}
	data := MarshalBlob(orig)
	got := UnmarshalBlob(data)
	if !bytes.Equal(got.Data, orig.Data) {
		t.Errorf("Blob round-trip mismatch: got %q, want %q", got.Data, orig.Data)
	}
}

func TestMarshalBlobDeterminism(t *testing.T) {
	b := &Blob{Data: []byte("deterministic")}
	d1 := MarshalBlob(b)
	d2 := MarshalBlob(b)
	if !bytes.Equal(d1, d2) {
		t.Error("Blob marshal not deterministic")
	}
}

func rawHash(b byte) Hash {
	buf := bytes.Repeat([]byte{b}, 20)
	return Hash(hex.EncodeToString(buf))
}

func TestMarshalUnmarshalTree(t *testing.T) {
	orig := &TreeObj{
		Entries: []TreeEntry{
			{Name: "README.md", IsDir: false, Mode: ModeFile, BlobHash: rawHash(0xaa)},
			{Name: "src", IsDir: true, Mode: ModeDir, SubtreeHash: rawHash(0xbb)},
		},
	}
	data := MarshalTree(orig)
	got, err := UnmarshalTree(data)
	if err != nil {
		t.Fatalf("UnmarshalTree: %v", err)
	}
	if len(got.Entries) != len(orig.Entries) {
		t.Fatalf("Entries length: got %d, want %d", len(got.Entries), len(orig.Entries))
	}
	for i, e := range got.Entries {
		o := orig.Entries[i]
		if e.Name != o.Name {
			t.Errorf("Entries[%d].Name: got %q, want %q", i, e.Name, o.Name)
		}
		if e.IsDir != o.IsDir {
			t.Errorf("Entries[%d].IsDir: got %v, want %v", i, e.IsDir, o.IsDir)
		}
		if e.ChildHash() != o.ChildHash() {
			t.Errorf("Entries[%d] child hash: got %q, want %q", i, e.ChildHash(), o.ChildHash())
		}
	}
}

func TestMarshalTreeSortsEntries(t *testing.T) {
	orig := &TreeObj{
		Entries: []TreeEntry{
			{Name: "z_file", IsDir: false, Mode: ModeFile, BlobHash: rawHash(0xaa)},
			{Name: "a_file", IsDir: false, Mode: ModeFile, BlobHash: rawHash(0xbb)},
		},
	}
	data := MarshalTree(orig)
	got, err := UnmarshalTree(data)
	if err != nil {
		t.Fatalf("UnmarshalTree: %v", err)
	}
	if got.Entries[0].Name != "a_file" || got.Entries[1].Name != "z_file" {
		t.Errorf("expected sorted entries, got %q then %q", got.Entries[0].Name, got.Entries[1].Name)
	}
}

func TestMarshalTreeDeterminism(t *testing.T) {
	tr := &TreeObj{
		Entries: []TreeEntry{
			{Name: "b", IsDir: false, Mode: ModeFile, BlobHash: rawHash(0xaa)},
			{Name: "a", IsDir: true, Mode: ModeDir, SubtreeHash: rawHash(0xbb)},
		},
	}
	d1 := MarshalTree(tr)
	d2 := MarshalTree(tr)
	if !bytes.Equal(d1, d2) {
		t.Error("Tree marshal not deterministic")
	}
}

func TestUnmarshalTreeAcceptsLeadingZeroDirMode(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("040000 src\x00")
	buf.Write(bytes.Repeat([]byte{0xbb}, 20))
	got, err := UnmarshalTree(buf.Bytes())
	if err != nil {
		t.Fatalf("UnmarshalTree: %v", err)
	}
	if len(got.Entries) != 1 || !got.Entries[0].IsDir {
		t.Fatalf("expected a single dir entry, got %+v", got.Entries)
	}
}

func TestMarshalUnmarshalCommit(t *testing.T) {
	orig := &CommitObj{
		TreeHash:           rawHash(0xaa),
		Parents:            []Hash{rawHash(0xbb)},
		Author:             "Alice <alice@example.com>",
		AuthorTimestamp:    1700000000,
		Committer:          "Alice <alice@example.com>",
		CommitterTimestamp: 1700000000,
		Message:            "initial commit\n\nWith a multi-line body.",
	}
	data := MarshalCommit(orig)
	got, err := UnmarshalCommit(data)
	if err != nil {
		t.Fatalf("UnmarshalCommit: %v", err)
	}
	if got.TreeHash != orig.TreeHash {
		t.Errorf("TreeHash: got %q, want %q", got.TreeHash, orig.TreeHash)
	}
	if len(got.Parents) != 1 || got.Parents[0] != orig.Parents[0] {
		t.Errorf("Parents: got %v, want %v", got.Parents, orig.Parents)
	}
	if got.Author != orig.Author {
		t.Errorf("Author: got %q, want %q", got.Author, orig.Author)
	}
	if got.AuthorTimestamp != orig.AuthorTimestamp {
		t.Errorf("AuthorTimestamp: got %d, want %d", got.AuthorTimestamp, orig.AuthorTimestamp)
	}
	if got.Message != orig.Message {
		t.Errorf("Message: got %q, want %q", got.Message, orig.Message)
	}
}

func TestMarshalCommitNoParents(t *testing.T) {
	orig := &CommitObj{
		TreeHash:  rawHash(0xaa),
		Author:    "Bob <bob@example.com>",
		Committer: "Bob <bob@example.com>",
		Message:   "root commit",
	}
	data := MarshalCommit(orig)
	got, err := UnmarshalCommit(data)
	if err != nil {
		t.Fatalf("UnmarshalCommit: %v", err)
	}
	if len(got.Parents) != 0 {
		t.Errorf("Parents should be empty, got %d", len(got.Parents))
	}
	if bytes.Contains(data, []byte("\nparent ")) {
		t.Error("did not expect a parent line for a root commit")
	}
}

func TestMarshalCommitMultipleParents(t *testing.T) {
	orig := &CommitObj{
		TreeHash:  rawHash(0xaa),
		Parents:   []Hash{rawHash(0xbb), rawHash(0xcc)},
		Author:    "Carol <carol@example.com>",
		Committer: "Carol <carol@example.com>",
		Message:   "merge commit",
	}
	data := MarshalCommit(orig)
	got, err := UnmarshalCommit(data)
	if err != nil {
		t.Fatalf("UnmarshalCommit: %v", err)
	}
	if len(got.Parents) != 2 {
		t.Fatalf("Parents length: got %d, want 2", len(got.Parents))
	}
}

func TestMarshalCommitTimezoneLiteral(t *testing.T) {
	c := &CommitObj{
		TreeHash:        rawHash(0xaa),
		Author:          "Test <t@t.com>",
		AuthorTimestamp: 100,
		Committer:       "Test <t@t.com>",
		Message:         "msg",
	}
	data := MarshalCommit(c)
	if !bytes.Contains(data, []byte("author Test <t@t.com> 100 +0000\n")) {
		t.Errorf("expected literal +0000 timezone in author line, got %q", data)
	}
}

func TestMarshalCommitDeterminism(t *testing.T) {
	c := &CommitObj{
		TreeHash:        rawHash(0xaa),
		Parents:         []Hash{rawHash(0xbb)},
		Author:          "Test <t@t.com>",
		AuthorTimestamp: 100,
		Committer:       "Test <t@t.com>",
		Message:         "msg",
	}
	d1 := MarshalCommit(c)
	d2 := MarshalCommit(c)
	if !bytes.Equal(d1, d2) {
		t.Error("Commit marshal not deterministic")
	}
}

func TestMarshalCommitBlankLineBeforeMessage(t *testing.T) {
	c := &CommitObj{
		TreeHash:  rawHash(0xaa),
		Author:    "A <a@a.com>",
		Committer: "A <a@a.com>",
		Message:   "first line\n\nsecond paragraph",
	}
	data := MarshalCommit(c)
	got, err := UnmarshalCommit(data)
	if err != nil {
		t.Fatalf("UnmarshalCommit: %v", err)
	}
	if got.Message != c.Message {
		t.Errorf("Message with embedded blank line: got %q, want %q", got.Message, c.Message)
	}
}
