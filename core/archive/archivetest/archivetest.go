// Package archivetest builds in-memory pk3 fixtures for tests.
package archivetest

import (
	"bytes"
	"sort"
	"testing"

	"github.com/klauspost/compress/zip"
)

// PK3 returns the bytes of a zip archive holding files. Names ending in "/" are
// written as directory entries.
func PK3(t testing.TB, files map[string][]byte) []byte {
	t.Helper()

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range names {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		if _, err := w.Write(files[name]); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

// Paths returns a PK3 whose entries are the given paths with empty content.
func Paths(t testing.TB, paths ...string) []byte {
	t.Helper()
	files := make(map[string][]byte, len(paths))
	for _, p := range paths {
		files[p] = nil
	}
	return PK3(t, files)
}
