package services

import (
	"errors"

	"github.com/baabaablacksheep2102/Spring-boot-nm-fitness-tracker/models"
	"gorm.io/gorm"
)

var ErrEmailTaken = errors.New("email already registered")

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService { return &UserService{db: db} }

// Register persists a new user after checking that the email is free.
// The check is not transactional with the insert; a concurrent duplicate
// loses to the unique index instead.
func (s *UserService) Register(u *models.User) error {
	var existing models.User
	err := s.db.Where("email = ?", u.Email).First(&existing).Error
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.db.Create(u).Error
}

func (s *UserService) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) Save(u *models.User) error {
	return s.db.Save(u).Error
}
