package services

import (
	"context"
	"errors"

	"github.com/AntonioTonhao/Node-02-Desafio/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrMealNotFound covers both a missing meal and a meal owned by someone
// else; callers cannot tell the two apart.
var ErrMealNotFound = errors.New("meal not found")

type MealService struct {
	db *gorm.DB

	// strictOwnership scopes Update to the owning user. When false the
	// update matches by meal id alone (legacy admin-like behavior); either
	// way a miss halts the update.
	strictOwnership bool
}

func NewMealService(db *gorm.DB, strictOwnership bool) *MealService {
	return &MealService{db: db, strictOwnership: strictOwnership}
}

type MealInput struct {
	Title       string
	Description string
	Date        models.DateMillis
	IsOnDiet    bool
}

func (s *MealService) Create(ctx context.Context, userID uuid.UUID, in MealInput) (*models.Meal, error) {
	meal := &models.Meal{
		MealID:      uuid.New(),
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		Date:        in.Date,
		IsOnDiet:    in.IsOnDiet,
	}
	if err := s.db.WithContext(ctx).Create(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *MealService) List(ctx context.Context, userID uuid.UUID) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&meals).Error
	return meals, err
}

func (s *MealService) Get(ctx context.Context, userID, mealID uuid.UUID) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.WithContext(ctx).
		Where("meal_id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMealNotFound
	}
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

func (s *MealService) Update(ctx context.Context, userID, mealID uuid.UUID, in MealInput) error {
	lookup := s.db.WithContext(ctx).Where("meal_id = ?", mealID)
	if s.strictOwnership {
		lookup = lookup.Where("user_id = ?", userID)
	}
	var meal models.Meal
	if err := lookup.First(&meal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMealNotFound
		}
		return err
	}

	update := s.db.WithContext(ctx).Model(&models.Meal{}).Where("meal_id = ?", mealID)
	if s.strictOwnership {
		update = update.Where("user_id = ?", userID)
	}
	return update.Updates(map[string]interface{}{
		"title":       in.Title,
		"description": in.Description,
		"date":        int64(in.Date),
		"is_on_diet":  in.IsOnDiet,
	}).Error
}

func (s *MealService) Delete(ctx context.Context, userID, mealID uuid.UUID) error {
	res := s.db.WithContext(ctx).
		Where("meal_id = ? AND user_id = ?", mealID, userID).
		Delete(&models.Meal{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMealNotFound
	}
	return nil
}

type MealMetrics struct {
	TotalMeals        int64 `json:"totalMeals"`
	TotalMealsOnDiet  int64 `json:"totalMealsOnDiet"`
	TotalMealsOffDiet int64 `json:"totalMealsOffDiet"`
	BestSequence      int64 `json:"bestSequence"`
}

// Metrics aggregates the caller's meals. The best sequence is the longest
// run of consecutive on-diet meals with the meals ordered by date
// descending; the running streak resets on every off-diet meal.
func (s *MealService) Metrics(ctx context.Context, userID uuid.UUID) (*MealMetrics, error) {
	var onDiet int64
	if err := s.db.WithContext(ctx).Model(&models.Meal{}).
		Where("user_id = ? AND is_on_diet = ?", userID, true).
		Count(&onDiet).Error; err != nil {
		return nil, err
	}

	var offDiet int64
	if err := s.db.WithContext(ctx).Model(&models.Meal{}).
		Where("user_id = ? AND is_on_diet = ?", userID, false).
		Count(&offDiet).Error; err != nil {
		return nil, err
	}

	var meals []models.Meal
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&meals).Error; err != nil {
		return nil, err
	}

	var best, current int64
	for _, m := range meals {
		if m.IsOnDiet {
			current++
		} else {
			current = 0
		}
		if current > best {
			best = current
		}
	}

	return &MealMetrics{
		TotalMeals:        int64(len(meals)),
		TotalMealsOnDiet:  onDiet,
		TotalMealsOffDiet: offDiet,
		BestSequence:      best,
	}, nil
}
