package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Document represents a stored extraction for data transfer between layers.
// (UserID, ContentHash) is unique: re-uploading identical bytes resolves to
// the same row.
type Document struct {
	ID            uuid.UUID         `json:"id"`
	UserID        uuid.UUID         `json:"user_id"`
	ContentHash   []byte            `json:"content_hash"`
	Filename      string            `json:"filename"`
	StoredExt     string            `json:"stored_ext"`
	Payload       ExtractionPayload `json:"payload"`
	RawExtraction json.RawMessage   `json:"raw_extraction,omitempty"`
	Confidence    *float32          `json:"confidence,omitempty"`
	Anomalies     []string          `json:"anomalies,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// UsageRecord tracks successful extractions per user per calendar month.
type UsageRecord struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Month     string    `json:"month"` // "2006-01", UTC
	Count     int       `json:"count"`
	UpdatedAt time.Time `json:"updated_at"`
}
