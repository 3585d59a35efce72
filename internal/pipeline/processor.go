package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/docstream/docstream/constants"
	"github.com/docstream/docstream/internal/common"
	"github.com/docstream/docstream/internal/entity"
	"github.com/docstream/docstream/internal/extraction"
	"github.com/docstream/docstream/internal/repository"
	"github.com/docstream/docstream/internal/storage"
	"github.com/docstream/docstream/internal/utils"
)

// BlobStore is the slice of the upload store the pipeline needs.
type BlobStore interface {
	Accept(filename, declaredMIME string, r io.Reader, declaredSize int64) (*storage.StoredFile, error)
	Read(hashHex, ext string) ([]byte, error)
	Remove(hashHex, ext string) error
}

// Normalizer coerces raw model output into the canonical payload.
type Normalizer interface {
	Normalize(raw json.RawMessage) (entity.ExtractionPayload, []string, error)
}

// UploadRequest is a single document submitted for extraction.
type UploadRequest struct {
	UserID   uuid.UUID
	Filename string
	MIMEType string
	Content  io.Reader
	// Size is the declared byte count; negative means unknown.
	Size int64
}

// UploadResult is the terminal outcome of one upload attempt. Document is set
// for completed and duplicate outcomes; FailureCode/FailureMessage describe
// the others.
type UploadResult struct {
	Status         constants.UploadStatus
	Document       *entity.Document
	MonthlyUsed    int
	MonthlyLimit   int // 0 means unlimited
	FailureCode    string
	FailureMessage string
}

// Processor runs the ingestion pipeline: hash and store, dedup check, quota
// pre-check, one AI extraction, normalization, then an atomic store+count.
type Processor struct {
	store      BlobStore
	users      repository.UserRepository
	documents  repository.DocumentRepository
	usage      repository.UsageRepository
	extractor  extraction.Extractor
	normalizer Normalizer
	logger     *slog.Logger

	now func() time.Time
}

func NewProcessor(
	store BlobStore,
	users repository.UserRepository,
	documents repository.DocumentRepository,
	usage repository.UsageRepository,
	extractor extraction.Extractor,
	normalizer Normalizer,
	logger *slog.Logger,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		store:      store,
		users:      users,
		documents:  documents,
		usage:      usage,
		extractor:  extractor,
		normalizer: normalizer,
		logger:     logger,
		now:        time.Now,
	}
}

// Process runs one upload end to end. Domain outcomes (rejected, duplicate,
// quota_exceeded, failed) come back as a result with a nil error; a non-nil
// error means infrastructure trouble the caller should surface as internal.
func (p *Processor) Process(ctx context.Context, req *UploadRequest) (*UploadResult, error) {
	started := p.now()

	user, err := p.users.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return p.rejected("USER_NOT_FOUND", "user does not exist"), nil
		}
		return nil, err
	}

	stored, err := p.store.Accept(req.Filename, req.MIMEType, req.Content, req.Size)
	if err != nil {
		var appErr *common.AppError
		if errors.As(err, &appErr) && errors.Is(err, common.ErrValidation) {
			p.logger.Info("pipeline.rejected",
				"user_id", req.UserID, "filename", req.Filename, "code", appErr.Code)
			return p.rejected(appErr.Code, appErr.Message), nil
		}
		return nil, err
	}

	// dedup before anything costs money: identical bytes resolve to the
	// stored extraction without touching the model or the quota
	if existing, err := p.documents.GetByHash(ctx, req.UserID, stored.Hash); err != nil {
		return nil, err
	} else if existing != nil {
		p.logger.Info("pipeline.duplicate",
			"user_id", req.UserID, "document_id", existing.ID, "hash", stored.HashHex)
		return &UploadResult{
			Status:   constants.UploadStatusDuplicate,
			Document: existing,
		}, nil
	}

	month := utils.MonthKey(p.now())
	limit, bounded := constants.MonthlyLimit(user.Plan)
	used := 0
	if bounded {
		used, err = p.usage.Current(ctx, req.UserID, month)
		if err != nil {
			return nil, err
		}
		if used >= limit {
			// fresh bytes are swept so a blocked upload leaves no orphans
			if !stored.Existed {
				_ = p.store.Remove(stored.HashHex, stored.Ext)
			}
			p.logger.Info("pipeline.quota_exceeded",
				"user_id", req.UserID, "plan", user.Plan, "month", month, "used", used, "limit", limit)
			return &UploadResult{
				Status:         constants.UploadStatusQuotaExceeded,
				MonthlyUsed:    used,
				MonthlyLimit:   limit,
				FailureCode:    "QUOTA_EXCEEDED",
				FailureMessage: "monthly extraction limit reached for plan",
			}, nil
		}
	}

	fileBytes, err := p.store.Read(stored.HashHex, stored.Ext)
	if err != nil {
		return nil, err
	}

	raw, err := p.extractor.Extract(ctx, fileBytes, stored.MIME)
	if err != nil {
		return p.extractionFailed(req, stored, err)
	}

	payload, anomalies, err := p.normalizer.Normalize(raw)
	if err != nil {
		return p.extractionFailed(req, stored, common.NewAppError(
			"MALFORMED_OUTPUT", "model output could not be normalized", common.ErrExtractionMalformed))
	}

	confidence := payload.Confidence
	doc, created, err := p.documents.CreateWithUsage(ctx, &repository.CreateDocumentRequest{
		UserID:        req.UserID,
		ContentHash:   stored.Hash,
		Filename:      req.Filename,
		StoredExt:     stored.Ext,
		Payload:       payload,
		RawExtraction: raw,
		Confidence:    &confidence,
		Anomalies:     anomalies,
		Month:         month,
	})
	if err != nil {
		return nil, err
	}
	if !created {
		// a concurrent upload of the same bytes finished first
		p.logger.Info("pipeline.duplicate",
			"user_id", req.UserID, "document_id", doc.ID, "hash", stored.HashHex)
		return &UploadResult{
			Status:   constants.UploadStatusDuplicate,
			Document: doc,
		}, nil
	}

	p.logger.Info("pipeline.extract.ok",
		"user_id", req.UserID,
		"document_id", doc.ID,
		"hash", stored.HashHex,
		"confidence", confidence,
		"anomalies", len(anomalies),
		"elapsed_ms", p.now().Sub(started).Milliseconds(),
	)
	result := &UploadResult{
		Status:      constants.UploadStatusCompleted,
		Document:    doc,
		MonthlyUsed: used + 1,
	}
	if bounded {
		result.MonthlyLimit = limit
	}
	return result, nil
}

func (p *Processor) rejected(code, message string) *UploadResult {
	return &UploadResult{
		Status:         constants.UploadStatusRejected,
		FailureCode:    code,
		FailureMessage: message,
	}
}

// extractionFailed classifies an AI failure. Transient errors are surfaced as
// errors so the caller can retry the whole upload; the bytes stay on disk and
// the next attempt dedups against them only after a row exists, so a retry
// goes back through extraction.
func (p *Processor) extractionFailed(req *UploadRequest, stored *storage.StoredFile, err error) (*UploadResult, error) {
	code := "EXTRACTION_FAILED"
	switch {
	case errors.Is(err, common.ErrExtractionMalformed):
		code = "MALFORMED_OUTPUT"
	case errors.Is(err, common.ErrExtractionUnsupported):
		code = "UNREADABLE_INPUT"
	case errors.Is(err, common.ErrExtractionTransient):
		p.logger.Warn("pipeline.extract.transient",
			"user_id", req.UserID, "hash", stored.HashHex, "error", err)
		return nil, err
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return nil, err
	}
	// terminal failure stores no row, so fresh bytes would be orphaned
	if !stored.Existed {
		_ = p.store.Remove(stored.HashHex, stored.Ext)
	}
	p.logger.Error("pipeline.extract.failed",
		"user_id", req.UserID, "hash", stored.HashHex, "code", code, "error", err)
	return &UploadResult{
		Status:         constants.UploadStatusFailed,
		FailureCode:    code,
		FailureMessage: err.Error(),
	}, nil
}
