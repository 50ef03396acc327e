package models

import (
	"time"

	"github.com/google/uuid"
)

// Base carries the fields shared by every entity. IDs are opaque UUID
// strings assigned at construction and never reassigned; GORM maintains
// the timestamps on create and save.
type Base struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newBase() Base {
	return Base{ID: uuid.NewString()}
}

func (b Base) baseMap() map[string]interface{} {
	return map[string]interface{}{
		"id":         b.ID,
		"created_at": b.CreatedAt.Format(time.RFC3339),
		"updated_at": b.UpdatedAt.Format(time.RFC3339),
	}
}
