package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/docstream/docstream/gen/ent"
	entusage "github.com/docstream/docstream/gen/ent/usagerecord"
	"github.com/docstream/docstream/internal/entity"
	"github.com/docstream/docstream/internal/utils"
)

type UsageRepository interface {
	// Current returns the extraction count for (user, month); zero when no
	// record exists yet. Used as the soft pre-check before the AI call.
	Current(ctx context.Context, userID uuid.UUID, month string) (int, error)
	// Record returns the full usage row, or (nil, nil) when absent.
	Record(ctx context.Context, userID uuid.UUID, month string) (*entity.UsageRecord, error)
}

type usageRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewUsageRepository(client *ent.Client, logger *slog.Logger) UsageRepository {
	return &usageRepository{
		client: client,
		logger: logger,
	}
}

func (r *usageRepository) Current(ctx context.Context, userID uuid.UUID, month string) (int, error) {
	rec, err := r.Record(ctx, userID, month)
	if err != nil {
		return 0, err
	}
	if rec == nil {
		return 0, nil
	}
	return rec.Count, nil
}

func (r *usageRepository) Record(ctx context.Context, userID uuid.UUID, month string) (*entity.UsageRecord, error) {
	row, err := r.client.UsageRecord.Query().
		Where(
			entusage.UserID(userID),
			entusage.Month(month),
		).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		r.logger.Error("failed to get usage record", "user_id", userID, "month", month, "error", err)
		return nil, err
	}
	return utils.ToUsageRecord(row), nil
}

// incrementUsageTx bumps the (user, month) counter inside the document-create
// transaction. The row is created lazily on the first extraction of a month;
// the upsert makes the lazy create atomic, so two first extractions racing on
// unique(user_id, month) both land on one row instead of one of them failing.
func incrementUsageTx(ctx context.Context, tx *ent.Tx, userID uuid.UUID, month string) error {
	return tx.UsageRecord.Create().
		SetUserID(userID).
		SetMonth(month).
		SetCount(1).
		OnConflictColumns(entusage.FieldUserID, entusage.FieldMonth).
		AddCount(1).
		SetUpdatedAt(time.Now()).
		Exec(ctx)
}
