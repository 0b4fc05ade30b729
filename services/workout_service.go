package services

import (
	"math"
	"math/rand"

	"github.com/baabaablacksheep2102/Spring-boot-nm-fitness-tracker/models"
	"gorm.io/gorm"
)

type WorkoutService struct {
	db *gorm.DB
}

func NewWorkoutService(db *gorm.DB) *WorkoutService { return &WorkoutService{db: db} }

// Record stores a workout for the user. Distance, heart rate, calories
// and weather are synthesized within fixed ranges until real activity-file
// parsing lands; the uploaded file itself is only archived.
func (s *WorkoutService) Record(userID uint, date models.Date, location string) (*models.Workout, error) {
	w := &models.Workout{
		UserID:          userID,
		Date:            date,
		Location:        location,
		Distance:        math.Round((rand.Float64()*10+2)*100) / 100, // 2–12 km, 2 decimals
		AvgHeartRate:    rand.Intn(50) + 120,
		Calories:        rand.Intn(200) + 200,
		WeatherTemp:     rand.Intn(15) + 10,
		WeatherHumidity: rand.Intn(30) + 50,
	}
	if err := s.db.Create(w).Error; err != nil {
		return nil, err
	}
	return w, nil
}

func (s *WorkoutService) ListByUser(userID uint) ([]models.Workout, error) {
	var workouts []models.Workout
	err := s.db.Where("user_id = ?", userID).Find(&workouts).Error
	return workouts, err
}

func (s *WorkoutService) Get(userID, workoutID uint) (*models.Workout, error) {
	return firstOwned[models.Workout](s.db, userID, workoutID)
}

func (s *WorkoutService) Delete(userID, workoutID uint) error {
	return deleteOwned[models.Workout](s.db, userID, workoutID)
}
