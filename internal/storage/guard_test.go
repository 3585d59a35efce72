package storage

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/docstream/docstream/internal/common"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir(), 1, nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func TestAcceptStoresByContentHash(t *testing.T) {
	s := newTestStore(t)
	payload := []byte("fake invoice bytes")

	stored, err := s.Accept("invoice.pdf", "application/pdf", bytes.NewReader(payload), int64(len(payload)))
	if err != nil {
		t.Fatalf("Accept: %v", err)
	}
	if stored.Existed {
		t.Fatal("first accept reported Existed")
	}
	if stored.Size != int64(len(payload)) {
		t.Fatalf("size = %d, want %d", stored.Size, len(payload))
	}
	if !strings.HasSuffix(stored.Path, stored.HashHex+".pdf") {
		t.Fatalf("path %s not addressed by hash", stored.Path)
	}

	got, err := s.Read(stored.HashHex, stored.Ext)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatal("stored bytes differ from upload")
	}
}

func TestAcceptDetectsExistingBytes(t *testing.T) {
	s := newTestStore(t)
	payload := []byte("same bytes twice")

	first, err := s.Accept("a.png", "image/png", bytes.NewReader(payload), int64(len(payload)))
	if err != nil {
		t.Fatalf("first Accept: %v", err)
	}
	// different filename, identical bytes
	second, err := s.Accept("b.png", "image/png", bytes.NewReader(payload), int64(len(payload)))
	if err != nil {
		t.Fatalf("second Accept: %v", err)
	}
	if !second.Existed {
		t.Fatal("second accept of identical bytes did not report Existed")
	}
	if second.HashHex != first.HashHex {
		t.Fatalf("hashes differ: %s vs %s", first.HashHex, second.HashHex)
	}
}

func TestAcceptRejectsDisallowedExtension(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Accept("malware.exe", "application/pdf", strings.NewReader("x"), 1)
	if !errors.Is(err, common.ErrValidation) {
		t.Fatalf("err = %v, want validation error", err)
	}
}

func TestAcceptRejectsDisallowedMIME(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Accept("doc.pdf", "text/html", strings.NewReader("x"), 1)
	if !errors.Is(err, common.ErrValidation) {
		t.Fatalf("err = %v, want validation error", err)
	}
}

func TestAcceptRejectsOversizedUpload(t *testing.T) {
	s := newTestStore(t) // 1 MiB ceiling
	big := bytes.Repeat([]byte("a"), 1024*1024+1)

	// declared size over the cap
	if _, err := s.Accept("big.pdf", "application/pdf", bytes.NewReader(big), int64(len(big))); !errors.Is(err, common.ErrValidation) {
		t.Fatalf("declared-size check: err = %v, want validation error", err)
	}
	// lying about the size does not help
	if _, err := s.Accept("big.pdf", "application/pdf", bytes.NewReader(big), -1); !errors.Is(err, common.ErrValidation) {
		t.Fatalf("streamed-size check: err = %v, want validation error", err)
	}
}

func TestAcceptRejectsEmptyUpload(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Accept("empty.pdf", "application/pdf", strings.NewReader(""), 0); !errors.Is(err, common.ErrValidation) {
		t.Fatalf("err = %v, want validation error", err)
	}
}

func TestRemoveMissingFileIsNoError(t *testing.T) {
	s := newTestStore(t)
	if err := s.Remove(strings.Repeat("ab", 32), "pdf"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
}

func TestAcceptLeavesNoSpoolFilesOnReject(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(dir, 1, nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	big := bytes.Repeat([]byte("a"), 1024*1024+1)
	_, _ = s.Accept("big.pdf", "application/pdf", bytes.NewReader(big), -1)

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected clean dir after reject, found %d entries", len(entries))
	}
}
