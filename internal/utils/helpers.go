package utils

import (
	"time"

	"github.com/docstream/docstream/constants"
	"github.com/docstream/docstream/gen/ent"
	"github.com/docstream/docstream/internal/entity"
)

func ToUser(e *ent.User) *entity.User {
	return &entity.User{
		ID:        e.ID,
		Email:     e.Email,
		Name:      e.Name,
		Plan:      constants.PlanTier(e.Plan),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToDocument(e *ent.Document) *entity.Document {
	return &entity.Document{
		ID:            e.ID,
		UserID:        e.UserID,
		ContentHash:   e.ContentHash,
		Filename:      e.Filename,
		StoredExt:     e.StoredExt,
		Payload:       e.Payload,
		RawExtraction: e.RawExtraction,
		Confidence:    e.Confidence,
		Anomalies:     e.Anomalies,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func ToUsageRecord(e *ent.UsageRecord) *entity.UsageRecord {
	return &entity.UsageRecord{
		ID:        e.ID,
		UserID:    e.UserID,
		Month:     e.Month,
		Count:     e.Count,
		UpdatedAt: e.UpdatedAt,
	}
}

// MonthKey returns the calendar-month token ("2006-01") for t in UTC.
func MonthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}

func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
