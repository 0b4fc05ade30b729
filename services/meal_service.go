package services

import (
	"github.com/baabaablacksheep2102/Spring-boot-nm-fitness-tracker/models"
	"gorm.io/gorm"
)

type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService { return &MealService{db: db} }

func (s *MealService) Log(m *models.Meal) error {
	return s.db.Create(m).Error
}

func (s *MealService) ListByUser(userID uint) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.Where("user_id = ?", userID).Find(&meals).Error
	return meals, err
}

func (s *MealService) ListByUserAndDate(userID uint, date models.Date) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.Where("user_id = ? AND date = ?", userID, date).Find(&meals).Error
	return meals, err
}

// Delete removes the meal only when it belongs to the user.
func (s *MealService) Delete(userID, mealID uint) error {
	return deleteOwned[models.Meal](s.db, userID, mealID)
}
