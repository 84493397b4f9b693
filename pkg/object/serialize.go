package object

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ---------------------------------------------------------------------------
// Blob
// ---------------------------------------------------------------------------

// MarshalBlob serializes a Blob to raw bytes (identity: payload is the
// file's bytes verbatim).
func MarshalBlob(b *Blob) []byte {
	out := make([]byte, len(b.Data))
	copy(out, b.Data)
	return out
}

// UnmarshalBlob deserializes raw bytes into a Blob.
func UnmarshalBlob(data []byte) *Blob {
	out := make([]byte, len(data))
	copy(out, data)
	return &Blob{Data: out}
}

// ---------------------------------------------------------------------------
// TreeObj
// ---------------------------------------------------------------------------

// MarshalTree serializes a TreeObj to its binary payload. Entries are
// sorted by Name under byte-lexicographic order first, since sorting is the
// sole source of hash determinism for trees. Each entry contributes
// "<mode> <name>\0" followed by the 20 raw bytes of its child id.
func MarshalTree(tr *TreeObj) []byte {
	sorted := make([]TreeEntry, len(tr.Entries))
	copy(sorted, tr.Entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	var buf bytes.Buffer
	for _, e := range sorted {
		mode := modeOrDefault(e)
		fmt.Fprintf(&buf, "%s %s\x00", mode, e.Name)
		raw, err := hex.DecodeString(string(e.ChildHash()))
		if err != nil || len(raw) != 20 {
			// Malformed child id: write 20 zero bytes rather than a short
			// or garbage write, keeping the framing self-consistent.
			raw = make([]byte, 20)
		}
		buf.Write(raw)
	}
	return buf.Bytes()
}

func modeOrDefault(e TreeEntry) string {
	if e.IsDir {
		return ModeDir
	}
	if strings.TrimSpace(e.Mode) == "" {
		return ModeFile
	}
	return e.Mode
}

// UnmarshalTree parses a TreeObj from its binary payload: repeatedly find
// the next NUL, split the bytes before it at the first space into
// (mode, name), then read the following 20 raw bytes as the child id.
func UnmarshalTree(data []byte) (*TreeObj, error) {
	tr := &TreeObj{}
	for len(data) > 0 {
		nulIdx := bytes.IndexByte(data, 0)
		if nulIdx < 0 {
			return nil, fmt.Errorf("unmarshal tree: missing NUL in entry header")
		}
		header := string(data[:nulIdx])
		spaceIdx := strings.IndexByte(header, ' ')
		if spaceIdx < 0 {
			return nil, fmt.Errorf("unmarshal tree: malformed entry header %q", header)
		}
		mode := header[:spaceIdx]
		name := header[spaceIdx+1:]

		rest := data[nulIdx+1:]
		if len(rest) < 20 {
			return nil, fmt.Errorf("unmarshal tree: truncated child id for %q", name)
		}
		childHash := Hash(hex.EncodeToString(rest[:20]))
		data = rest[20:]

		isDir, err := isDirMode(mode)
		if err != nil {
			return nil, fmt.Errorf("unmarshal tree: %w", err)
		}

		entry := TreeEntry{Name: name, IsDir: isDir, Mode: mode}
		if isDir {
			entry.SubtreeHash = childHash
		} else {
			entry.BlobHash = childHash
		}
		tr.Entries = append(tr.Entries, entry)
	}
	return tr, nil
}

// isDirMode reports whether mode denotes a subdirectory entry. Readers
// accept both "40000" and "040000": any mode beginning with "400", with or
// without a single leading zero.
func isDirMode(mode string) (bool, error) {
	if strings.HasPrefix(strings.TrimPrefix(mode, "0"), "400") {
		return true, nil
	}
	if mode == ModeFile {
		return false, nil
	}
	return false, fmt.Errorf("unknown tree entry mode %q", mode)
}

// ---------------------------------------------------------------------------
// CommitObj
// ---------------------------------------------------------------------------

// MarshalCommit serializes a CommitObj:
//
//	tree <root-tree-id>
//	parent <parent-id>    (zero or more, in order)
//	author <name-and-email> <unix-seconds> +0000
//	committer <name-and-email> <unix-seconds> +0000
//	<blank line>
//	<message>
func MarshalCommit(c *CommitObj) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "tree %s\n", string(c.TreeHash))
	for _, p := range c.Parents {
		fmt.Fprintf(&buf, "parent %s\n", string(p))
	}
	fmt.Fprintf(&buf, "author %s %d +0000\n", c.Author, c.AuthorTimestamp)
	fmt.Fprintf(&buf, "committer %s %d +0000\n", c.Committer, c.CommitterTimestamp)
	buf.WriteByte('\n')
	buf.WriteString(c.Message)
	return buf.Bytes()
}

// UnmarshalCommit parses a CommitObj from its serialized form. Author and
// committer lines are split on space; the penultimate token is taken as the
// Unix timestamp and the trailing timezone token is discarded. This means
// an identity string that itself ends in " <digits> +0000" would be
// misparsed -- a known, preserved limitation (see spec's author-line note).
func UnmarshalCommit(data []byte) (*CommitObj, error) {
	idx := bytes.Index(data, []byte("\n\n"))
	if idx < 0 {
		return nil, fmt.Errorf("unmarshal commit: missing header/message separator")
	}
	header := string(data[:idx])
	message := string(data[idx+2:])

	c := &CommitObj{Message: message}
	for _, line := range strings.Split(header, "\n") {
		key, val, ok := strings.Cut(line, " ")
		if !ok {
			return nil, fmt.Errorf("unmarshal commit: malformed header line %q", line)
		}
		switch key {
		case "tree":
			c.TreeHash = Hash(val)
		case "parent":
			c.Parents = append(c.Parents, Hash(val))
		case "author":
			identity, ts, err := parseIdentityLine(val)
			if err != nil {
				return nil, fmt.Errorf("unmarshal commit: author: %w", err)
			}
			c.Author = identity
			c.AuthorTimestamp = ts
		case "committer":
			identity, ts, err := parseIdentityLine(val)
			if err != nil {
				return nil, fmt.Errorf("unmarshal commit: committer: %w", err)
			}
			c.Committer = identity
			c.CommitterTimestamp = ts
		default:
			return nil, fmt.Errorf("unmarshal commit: unknown header key %q", key)
		}
	}
	return c, nil
}

// parseIdentityLine splits "<name-and-email> <unix-seconds> <timezone>"
// into the identity string and the timestamp, discarding the timezone.
func parseIdentityLine(s string) (string, int64, error) {
	fields := strings.Split(s, " ")
	if len(fields) < 3 {
		return "", 0, fmt.Errorf("malformed identity line %q", s)
	}
	tsField := fields[len(fields)-2]
	ts, err := strconv.ParseInt(tsField, 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("bad timestamp %q: %w", tsField, err)
	}
	identity := strings.Join(fields[:len(fields)-2], " ")
	return identity, ts, nil
}
