package models

import (
	"time"

	"github.com/google/uuid"
)

// User is created once at registration and never deleted. SessionID is
// the cookie token that re-resolves this identity on each request; it is
// indexed but intentionally not unique, because registering again with an
// existing cookie inserts another row carrying the same token.
type User struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	SessionID uuid.UUID `gorm:"type:uuid;index;not null" json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
