package models

import (
	"time"

	"github.com/google/uuid"
)

// Meal belongs to exactly one user; every query against it is scoped by
// UserID so meals are only visible through their owner's session.
type Meal struct {
	MealID      uuid.UUID  `gorm:"type:uuid;primaryKey" json:"meal_id"`
	UserID      uuid.UUID  `gorm:"type:uuid;index;not null" json:"user_id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `gorm:"not null" json:"description"`
	Date        DateMillis `gorm:"not null" json:"date"` // when the meal was eaten
	IsOnDiet    bool       `gorm:"not null" json:"is_on_diet"`
	CreatedAt   time.Time  `json:"created_at"`
}
