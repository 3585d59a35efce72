package server

import (
	"bytes"
	"context"
	"encoding/hex"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/docstream/docstream/gen/proto/docstream/v1"
	"github.com/docstream/docstream/internal/common"
	"github.com/docstream/docstream/internal/pipeline"
	"github.com/docstream/docstream/internal/repository"
)

type DocumentsService struct {
	v1.UnimplementedDocumentsServiceServer
	processor *pipeline.Processor
	documents repository.DocumentRepository
	store     pipeline.BlobStore
	logger    *slog.Logger
}

func NewDocumentsService(
	processor *pipeline.Processor,
	documents repository.DocumentRepository,
	store pipeline.BlobStore,
	logger *slog.Logger,
) *DocumentsService {
	return &DocumentsService{
		processor: processor,
		documents: documents,
		store:     store,
		logger:    logger,
	}
}

func (s *DocumentsService) UploadDocument(ctx context.Context, req *v1.UploadDocumentRequest) (*v1.UploadDocumentResponse, error) {
	userID, err := parseUserID(req.GetUserId())
	if err != nil {
		return nil, err
	}
	filename := strings.TrimSpace(req.GetFilename())
	if filename == "" {
		return nil, status.Error(codes.InvalidArgument, "filename is required")
	}
	content := req.GetContent()
	if len(content) == 0 {
		return nil, status.Error(codes.InvalidArgument, "content is required")
	}

	result, err := s.processor.Process(ctx, &pipeline.UploadRequest{
		UserID:   userID,
		Filename: filename,
		MIMEType: strings.TrimSpace(req.GetMimeType()),
		Content:  bytes.NewReader(content),
		Size:     int64(len(content)),
	})
	if err != nil {
		s.logger.Error("upload failed", "user_id", userID, "filename", filename, "error", err)
		return nil, common.GRPCStatus(err)
	}

	resp := &v1.UploadDocumentResponse{
		Status:         string(result.Status),
		MonthlyUsed:    int32(result.MonthlyUsed),
		MonthlyLimit:   int32(result.MonthlyLimit),
		FailureCode:    result.FailureCode,
		FailureMessage: result.FailureMessage,
	}
	if result.Document != nil {
		resp.Document = toProtoDocument(result.Document)
	}
	return resp, nil
}

func (s *DocumentsService) ListDocuments(ctx context.Context, req *v1.ListDocumentsRequest) (*v1.ListDocumentsResponse, error) {
	userID, err := parseUserID(req.GetUserId())
	if err != nil {
		return nil, err
	}
	limit := int(req.GetLimit())
	if limit < 0 {
		return nil, status.Error(codes.InvalidArgument, "limit must not be negative")
	}
	offset := int(req.GetOffset())
	if offset < 0 {
		return nil, status.Error(codes.InvalidArgument, "offset must not be negative")
	}

	docs, total, err := s.documents.List(ctx, userID, limit, offset)
	if err != nil {
		s.logger.Error("list documents failed", "user_id", userID, "error", err)
		return nil, status.Error(codes.Internal, "list documents failed")
	}

	out := &v1.ListDocumentsResponse{Total: int32(total)}
	for _, doc := range docs {
		out.Documents = append(out.Documents, toProtoDocument(doc))
	}
	return out, nil
}

func (s *DocumentsService) GetDocument(ctx context.Context, req *v1.GetDocumentRequest) (*v1.GetDocumentResponse, error) {
	userID, documentID, err := parseDocumentIDs(req.GetUserId(), req.GetDocumentId())
	if err != nil {
		return nil, err
	}
	doc, err := s.documents.Get(ctx, userID, documentID)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	return &v1.GetDocumentResponse{Document: toProtoDocument(doc)}, nil
}

func (s *DocumentsService) DeleteDocument(ctx context.Context, req *v1.DeleteDocumentRequest) (*v1.DeleteDocumentResponse, error) {
	userID, documentID, err := parseDocumentIDs(req.GetUserId(), req.GetDocumentId())
	if err != nil {
		return nil, err
	}
	doc, err := s.documents.Delete(ctx, userID, documentID)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}

	// blobs are shared across owners: identical bytes resolve to the same
	// content hash, so the backing file only goes once nothing references it
	refs, err := s.documents.CountByHash(ctx, doc.ContentHash)
	switch {
	case err != nil:
		s.logger.Warn("failed to count blob references", "document_id", documentID, "error", err)
	case refs == 0:
		if err := s.store.Remove(hex.EncodeToString(doc.ContentHash), doc.StoredExt); err != nil {
			s.logger.Warn("failed to remove stored bytes", "document_id", documentID, "error", err)
		}
	}

	s.logger.Info("document.deleted", "user_id", userID, "document_id", documentID)
	return &v1.DeleteDocumentResponse{Deleted: true}, nil
}

func parseDocumentIDs(rawUser, rawDoc string) (uuid.UUID, uuid.UUID, error) {
	userID, err := parseUserID(rawUser)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	rawDoc = strings.TrimSpace(rawDoc)
	if rawDoc == "" {
		return uuid.Nil, uuid.Nil, status.Error(codes.InvalidArgument, "document_id is required")
	}
	documentID, err := uuid.Parse(rawDoc)
	if err != nil {
		return uuid.Nil, uuid.Nil, status.Error(codes.InvalidArgument, "document_id must be a UUID")
	}
	return userID, documentID, nil
}
