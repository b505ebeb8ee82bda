// Package tests provides helpers for the glyphset test suites.
package tests

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/modernice/glyphset/scan"
	"github.com/spf13/afero"
)

// Must panics if err is non-nil; otherwise it returns v.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// FS builds an in-memory fs.FS from a map of file paths to file contents.
// Parent directories are created as needed.
func FS(files map[string]string) fs.FS {
	mem := afero.NewMemMapFs()
	for path, content := range files {
		if dir := filepath.Dir(path); dir != "." {
			if err := mem.MkdirAll(dir, 0755); err != nil {
				panic(err)
			}
		}
		if err := afero.WriteFile(mem, path, []byte(content), 0644); err != nil {
			panic(err)
		}
	}
	return afero.NewIOFS(mem)
}

// ExpectRunes fails the test if got does not contain exactly the runes of
// want.
func ExpectRunes(t *testing.T, want string, got scan.Runes) {
	t.Helper()

	wantSet := make(scan.Runes)
	for _, r := range want {
		wantSet.Add(r)
	}

	if !cmp.Equal(wantSet, got) {
		t.Fatalf("unexpected runes:\n%s", cmp.Diff(wantSet, got))
	}
}
