package glyphset_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/modernice/glyphset"
	"github.com/modernice/glyphset/charset"
	"github.com/modernice/glyphset/internal/tests"
	"github.com/modernice/glyphset/scan"
)

func TestInventory_Run(t *testing.T) {
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "index.html"), heredoc.Doc(`
		<html>
		<body>café © 2024</body>
		</html>
	`))
	writeFile(t, filepath.Join(root, "posts", "hello.html"), "<p>naïve</p>")
	writeFile(t, filepath.Join(root, "robots.txt"), "Disällow: /")

	inv := glyphset.New(glyphset.Sorted(true))

	out, err := inv.Run(context.Background(), root)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	// © (U+00A9) < é (U+00E9) < ï (U+00EF); robots.txt is not scanned.
	want := charset.ASCII + "©éï"
	if out != want {
		t.Fatalf("output should be %q; got %q", want, out)
	}
}

func TestInventory_Run_emptyRoot(t *testing.T) {
	inv := glyphset.New()

	out, err := inv.Run(context.Background(), t.TempDir())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if out != charset.ASCII {
		t.Fatalf("empty root should yield the bare preamble; got %q", out)
	}
}

func TestInventory_Run_missingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "does-not-exist")

	inv := glyphset.New()

	out, err := inv.Run(context.Background(), root)
	if err != nil {
		t.Fatalf("a missing root should not fail the run; got %v", err)
	}

	if out != charset.ASCII {
		t.Fatalf("missing root should yield the bare preamble; got %q", out)
	}
}

func TestInventory_Scan(t *testing.T) {
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "feed.xml"), "<title>Ærø</title>")

	inv := glyphset.New()

	runes, err := inv.Scan(context.Background(), root)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}

	tests.ExpectRunes(t, "Ærø", runes)
}

func TestInventory_Scan_decodeFailure(t *testing.T) {
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "broken.html"), "caf\xe9 latin-1")

	inv := glyphset.New()

	if _, err := inv.Scan(context.Background(), root); err == nil {
		t.Fatal("scanning invalid UTF-8 should fail")
	} else {
		var decodeErr *scan.DecodeError
		if !errors.As(err, &decodeErr) {
			t.Fatalf("error should wrap a *scan.DecodeError; got %v", err)
		}
	}
}

func TestInventory_Scan_scanOptions(t *testing.T) {
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "page.html"), "é")
	writeFile(t, filepath.Join(root, "vendor", "lib.html"), "ü")

	inv := glyphset.New(glyphset.ScanWith(scan.Exclude("vendor/**")))

	runes, err := inv.Scan(context.Background(), root)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}

	tests.ExpectRunes(t, "é", runes)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("create directory %q: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write file %q: %v", path, err)
	}
}
