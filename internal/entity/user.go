package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/docstream/docstream/constants"
)

// User represents an account for data transfer between layers.
type User struct {
	ID        uuid.UUID          `json:"id"`
	Email     string             `json:"email"`
	Name      string             `json:"name"`
	Plan      constants.PlanTier `json:"plan"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}
