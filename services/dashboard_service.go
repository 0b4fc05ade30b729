package services

import (
	"math"
	"time"

	"github.com/baabaablacksheep2102/Spring-boot-nm-fitness-tracker/models"
	"gorm.io/gorm"
)

// Steps are estimated from distance, not measured: roughly 1300 steps
// per kilometer at an average stride.
const stepsPerKm = 1300

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService { return &DashboardService{db: db} }

// DailyStats is the dashboard headline for a single day.
type DailyStats struct {
	Date         models.Date `json:"date"`
	Steps        int         `json:"steps"`
	CaloriesIn   int         `json:"caloriesIn"`
	CaloriesOut  int         `json:"caloriesOut"`
	NetCalories  int         `json:"netCalories"`
	WorkoutCount int         `json:"workoutCount"`
	MealCount    int         `json:"mealCount"`
}

// DayTrend is one point of the weekly chart.
type DayTrend struct {
	Date        models.Date `json:"date"`
	CaloriesIn  int         `json:"caloriesIn"`
	CaloriesOut int         `json:"caloriesOut"`
	Steps       int         `json:"steps"`
}

// Stats aggregates today's meals and workouts for the user.
func (s *DashboardService) Stats(userID uint) (*DailyStats, error) {
	day := models.Today()
	meals, workouts, err := s.dayRecords(userID, day)
	if err != nil {
		return nil, err
	}

	in, out, steps := dayTotals(meals, workouts)
	return &DailyStats{
		Date:         day,
		Steps:        steps,
		CaloriesIn:   in,
		CaloriesOut:  out,
		NetCalories:  in - out,
		WorkoutCount: len(workouts),
		MealCount:    len(meals),
	}, nil
}

// Weekly returns per-day totals for the 7 days ending today, oldest first.
func (s *DashboardService) Weekly(userID uint) ([]DayTrend, error) {
	now := time.Now()
	trends := make([]DayTrend, 0, 7)
	for i := 6; i >= 0; i-- {
		day := models.NewDate(now.AddDate(0, 0, -i))
		meals, workouts, err := s.dayRecords(userID, day)
		if err != nil {
			return nil, err
		}
		in, out, steps := dayTotals(meals, workouts)
		trends = append(trends, DayTrend{
			Date:        day,
			CaloriesIn:  in,
			CaloriesOut: out,
			Steps:       steps,
		})
	}
	return trends, nil
}

func (s *DashboardService) dayRecords(userID uint, day models.Date) ([]models.Meal, []models.Workout, error) {
	var meals []models.Meal
	if err := s.db.Where("user_id = ? AND date = ?", userID, day).Find(&meals).Error; err != nil {
		return nil, nil, err
	}
	var workouts []models.Workout
	if err := s.db.Where("user_id = ? AND date = ?", userID, day).Find(&workouts).Error; err != nil {
		return nil, nil, err
	}
	return meals, workouts, nil
}

func dayTotals(meals []models.Meal, workouts []models.Workout) (caloriesIn, caloriesOut, steps int) {
	for _, m := range meals {
		caloriesIn += m.Calories
	}
	for _, w := range workouts {
		caloriesOut += w.Calories
		steps += int(math.Floor(w.Distance * stepsPerKm))
	}
	return caloriesIn, caloriesOut, steps
}
