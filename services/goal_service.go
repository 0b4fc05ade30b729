package services

import (
	"github.com/baabaablacksheep2102/Spring-boot-nm-fitness-tracker/models"
	"gorm.io/gorm"
)

type GoalService struct {
	db *gorm.DB
}

func NewGoalService(db *gorm.DB) *GoalService { return &GoalService{db: db} }

func (s *GoalService) Create(g *models.Goal) error {
	return s.db.Create(g).Error
}

func (s *GoalService) ListByUser(userID uint) ([]models.Goal, error) {
	var goals []models.Goal
	err := s.db.Where("user_id = ?", userID).Find(&goals).Error
	return goals, err
}

func (s *GoalService) Get(userID, goalID uint) (*models.Goal, error) {
	return firstOwned[models.Goal](s.db, userID, goalID)
}

func (s *GoalService) Save(g *models.Goal) error {
	return s.db.Save(g).Error
}

func (s *GoalService) Delete(userID, goalID uint) error {
	return deleteOwned[models.Goal](s.db, userID, goalID)
}
