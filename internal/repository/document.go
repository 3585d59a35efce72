package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/docstream/docstream/gen/ent"
	entdoc "github.com/docstream/docstream/gen/ent/document"
	"github.com/docstream/docstream/internal/common"
	"github.com/docstream/docstream/internal/entity"
	"github.com/docstream/docstream/internal/utils"
)

// CreateDocumentRequest wraps parameters for storing a normalized extraction.
type CreateDocumentRequest struct {
	UserID        uuid.UUID
	ContentHash   []byte
	Filename      string
	StoredExt     string
	Payload       entity.ExtractionPayload
	RawExtraction json.RawMessage
	Confidence    *float32
	Anomalies     []string
	Month         string // usage month token, "2006-01"
}

type DocumentRepository interface {
	// GetByHash returns the stored document for (user, content hash), or
	// (nil, nil) when no such document exists.
	GetByHash(ctx context.Context, userID uuid.UUID, hash []byte) (*entity.Document, error)
	// CreateWithUsage atomically creates the document and increments the
	// user's usage count for the given month. When a concurrent upload of the
	// same bytes wins the unique(user_id, content_hash) race, the winning row
	// is returned with created=false and usage is left untouched.
	CreateWithUsage(ctx context.Context, req *CreateDocumentRequest) (*entity.Document, bool, error)
	// CountByHash counts documents of ANY user referencing the content hash.
	// Stored blobs are shared across owners, so the delete path only sweeps
	// the bytes once this reaches zero.
	CountByHash(ctx context.Context, hash []byte) (int, error)
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Document, int, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*entity.Document, error)
	// Delete removes the user's document and returns the deleted row so the
	// caller can drop the backing bytes. Usage counts are never decremented.
	Delete(ctx context.Context, userID, id uuid.UUID) (*entity.Document, error)
}

type documentRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(client *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepository{
		client: client,
		logger: logger,
	}
}

func (r *documentRepository) GetByHash(ctx context.Context, userID uuid.UUID, hash []byte) (*entity.Document, error) {
	row, err := r.client.Document.Query().
		Where(
			entdoc.UserID(userID),
			entdoc.ContentHash(hash),
		).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		r.logger.Error("failed to get document by hash", "user_id", userID, "error", err)
		return nil, err
	}
	return utils.ToDocument(row), nil
}

func (r *documentRepository) CreateWithUsage(ctx context.Context, req *CreateDocumentRequest) (*entity.Document, bool, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, false, err
	}

	row, err := tx.Document.Create().
		SetUserID(req.UserID).
		SetContentHash(req.ContentHash).
		SetFilename(req.Filename).
		SetStoredExt(req.StoredExt).
		SetPayload(req.Payload).
		SetRawExtraction(req.RawExtraction).
		SetNillableConfidence(req.Confidence).
		SetAnomalies(req.Anomalies).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		if ent.IsConstraintError(err) {
			// second writer in a same-hash race: fall back to the winner
			existing, rerr := r.GetByHash(ctx, req.UserID, req.ContentHash)
			if rerr == nil && existing != nil {
				r.logger.Warn("document create lost uniqueness race, returning winner",
					"user_id", req.UserID, "document_id", existing.ID)
				return existing, false, nil
			}
		}
		r.logger.Error("failed to create document", "user_id", req.UserID, "filename", req.Filename, "error", err)
		return nil, false, err
	}

	if err := incrementUsageTx(ctx, tx, req.UserID, req.Month); err != nil {
		_ = tx.Rollback()
		r.logger.Error("failed to commit usage increment", "user_id", req.UserID, "month", req.Month, "error", err)
		return nil, false, err
	}

	if err := tx.Commit(); err != nil {
		return nil, false, err
	}
	return utils.ToDocument(row), true, nil
}

func (r *documentRepository) CountByHash(ctx context.Context, hash []byte) (int, error) {
	n, err := r.client.Document.Query().
		Where(entdoc.ContentHash(hash)).
		Count(ctx)
	if err != nil {
		r.logger.Error("failed to count documents by hash", "error", err)
		return 0, err
	}
	return n, nil
}

func (r *documentRepository) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Document, int, error) {
	q := r.client.Document.Query().Where(entdoc.UserID(userID))

	total, err := q.Clone().Count(ctx)
	if err != nil {
		r.logger.Error("failed to count documents", "user_id", userID, "error", err)
		return nil, 0, err
	}

	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	rows, err := q.Order(entdoc.ByCreatedAt(entsql.OrderDesc())).All(ctx)
	if err != nil {
		r.logger.Error("failed to list documents", "user_id", userID, "error", err)
		return nil, 0, err
	}

	result := make([]*entity.Document, len(rows))
	for i, row := range rows {
		result[i] = utils.ToDocument(row)
	}
	return result, total, nil
}

func (r *documentRepository) Get(ctx context.Context, userID, id uuid.UUID) (*entity.Document, error) {
	row, err := r.client.Document.Query().
		Where(
			entdoc.ID(id),
			entdoc.UserID(userID),
		).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("DOCUMENT_NOT_FOUND", "document does not exist", common.ErrNotFound)
		}
		return nil, err
	}
	return utils.ToDocument(row), nil
}

func (r *documentRepository) Delete(ctx context.Context, userID, id uuid.UUID) (*entity.Document, error) {
	row, err := r.client.Document.Query().
		Where(
			entdoc.ID(id),
			entdoc.UserID(userID),
		).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("DOCUMENT_NOT_FOUND", "document does not exist", common.ErrNotFound)
		}
		return nil, err
	}
	if err := r.client.Document.DeleteOneID(row.ID).Exec(ctx); err != nil {
		r.logger.Error("failed to delete document", "user_id", userID, "document_id", id, "error", err)
		return nil, err
	}
	return utils.ToDocument(row), nil
}
