package server

import (
	"context"
	"encoding/hex"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	v1 "github.com/docstream/docstream/gen/proto/docstream/v1"
	"github.com/docstream/docstream/internal/entity"
	"github.com/docstream/docstream/internal/repository"
	"github.com/docstream/docstream/internal/storage"
)

type stubDocRepo struct {
	deleted *entity.Document
	refs    int
}

func (s *stubDocRepo) GetByHash(context.Context, uuid.UUID, []byte) (*entity.Document, error) {
	return nil, errors.New("not used")
}
func (s *stubDocRepo) CreateWithUsage(context.Context, *repository.CreateDocumentRequest) (*entity.Document, bool, error) {
	return nil, false, errors.New("not used")
}
func (s *stubDocRepo) CountByHash(context.Context, []byte) (int, error) {
	return s.refs, nil
}
func (s *stubDocRepo) List(context.Context, uuid.UUID, int, int) ([]*entity.Document, int, error) {
	return nil, 0, errors.New("not used")
}
func (s *stubDocRepo) Get(context.Context, uuid.UUID, uuid.UUID) (*entity.Document, error) {
	return nil, errors.New("not used")
}
func (s *stubDocRepo) Delete(context.Context, uuid.UUID, uuid.UUID) (*entity.Document, error) {
	return s.deleted, nil
}

type stubBlob struct {
	removed []string
}

func (s *stubBlob) Accept(string, string, io.Reader, int64) (*storage.StoredFile, error) {
	return nil, errors.New("not used")
}
func (s *stubBlob) Read(string, string) ([]byte, error) {
	return nil, errors.New("not used")
}
func (s *stubBlob) Remove(hashHex, ext string) error {
	s.removed = append(s.removed, hashHex+"."+ext)
	return nil
}

func deletableDoc() *entity.Document {
	return &entity.Document{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		ContentHash: []byte{0xab, 0xcd},
		Filename:    "SCAN.JPEG",
		StoredExt:   "jpeg",
	}
}

func TestDeleteDocumentSweepsUnreferencedBlob(t *testing.T) {
	doc := deletableDoc()
	blob := &stubBlob{}
	svc := NewDocumentsService(nil, &stubDocRepo{deleted: doc, refs: 0}, blob, slog.Default())

	resp, err := svc.DeleteDocument(context.Background(), &v1.DeleteDocumentRequest{
		UserId:     doc.UserID.String(),
		DocumentId: doc.ID.String(),
	})
	if err != nil {
		t.Fatalf("DeleteDocument: %v", err)
	}
	if !resp.GetDeleted() {
		t.Fatal("response did not report deletion")
	}
	// the blob goes by the extension it was stored under, not the filename's
	want := hex.EncodeToString(doc.ContentHash) + ".jpeg"
	if len(blob.removed) != 1 || blob.removed[0] != want {
		t.Fatalf("removed = %v, want [%s]", blob.removed, want)
	}
}

func TestDeleteDocumentKeepsSharedBlob(t *testing.T) {
	doc := deletableDoc()
	blob := &stubBlob{}
	// another document (possibly another user's) still references the bytes
	svc := NewDocumentsService(nil, &stubDocRepo{deleted: doc, refs: 1}, blob, slog.Default())

	resp, err := svc.DeleteDocument(context.Background(), &v1.DeleteDocumentRequest{
		UserId:     doc.UserID.String(),
		DocumentId: doc.ID.String(),
	})
	if err != nil {
		t.Fatalf("DeleteDocument: %v", err)
	}
	if !resp.GetDeleted() {
		t.Fatal("response did not report deletion")
	}
	if len(blob.removed) != 0 {
		t.Fatalf("shared blob was swept: %v", blob.removed)
	}
}
