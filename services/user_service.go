package services

import (
	"context"

	"github.com/AntonioTonhao/Node-02-Desafio/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserService struct{ db *gorm.DB }

func NewUserService(db *gorm.DB) *UserService { return &UserService{db: db} }

// Register always inserts a new user row. When the caller already holds a
// session cookie its token is reused for the new row, so the same session
// id can end up on several users; lookups resolve the first match.
func (s *UserService) Register(ctx context.Context, name, email string, sessionID uuid.UUID) (*models.User, error) {
	user := &models.User{
		UserID:    uuid.New(),
		Name:      name,
		Email:     email,
		SessionID: sessionID,
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).Find(&users).Error
	return users, err
}
