package ingest

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestScanDirectoryFiltersByAllowlist(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "a.pdf"))
	touch(t, filepath.Join(root, "sub", "b.JPG"))
	touch(t, filepath.Join(root, "c.exe"))
	touch(t, filepath.Join(root, "notes.txt"))
	touch(t, filepath.Join(root, ".hidden", "d.png"))
	touch(t, filepath.Join(root, ".DS_Store"))

	paths, stats, err := ScanDirectory(root, true)
	if err != nil {
		t.Fatalf("ScanDirectory: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("matched %d paths, want 2: %v", len(paths), paths)
	}
	if stats.Matched != 2 {
		t.Fatalf("stats.Matched = %d, want 2", stats.Matched)
	}
	for _, p := range paths {
		switch filepath.Base(p) {
		case "a.pdf", "b.JPG":
		default:
			t.Fatalf("unexpected match %s", p)
		}
	}
}

func TestScanDirectoryIncludesHiddenWhenAsked(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, ".hidden", "d.png"))

	paths, _, err := ScanDirectory(root, false)
	if err != nil {
		t.Fatalf("ScanDirectory: %v", err)
	}
	if len(paths) != 1 {
		t.Fatalf("matched %d paths, want 1", len(paths))
	}
}

func TestScanDirectoryRequiresRoot(t *testing.T) {
	if _, _, err := ScanDirectory("  ", true); err == nil {
		t.Fatal("expected error for blank root")
	}
}
