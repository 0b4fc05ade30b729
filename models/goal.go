package models

import "fmt"

type GoalType string

const (
	GoalWeight           GoalType = "WEIGHT"
	GoalCaloriesBurn     GoalType = "CALORIES_BURN"
	GoalCaloriesIntake   GoalType = "CALORIES_INTAKE"
	GoalWorkoutFrequency GoalType = "WORKOUT_FREQUENCY"
	GoalDistance         GoalType = "DISTANCE"
)

func ParseGoalType(s string) (GoalType, error) {
	switch t := GoalType(s); t {
	case GoalWeight, GoalCaloriesBurn, GoalCaloriesIntake, GoalWorkoutFrequency, GoalDistance:
		return t, nil
	}
	return "", fmt.Errorf("unknown goal type %q", s)
}

type GoalStatus string

const (
	GoalActive    GoalStatus = "ACTIVE"
	GoalCompleted GoalStatus = "COMPLETED"
	GoalPaused    GoalStatus = "PAUSED"
)

func ParseGoalStatus(s string) (GoalStatus, error) {
	switch st := GoalStatus(s); st {
	case GoalActive, GoalCompleted, GoalPaused:
		return st, nil
	}
	return "", fmt.Errorf("unknown goal status %q", s)
}

// Goal tracks progress toward a user-set target, e.g. a weight to reach
// or a weekly workout count to hold.
type Goal struct {
	GoalID       uint       `gorm:"primaryKey" json:"goalId"`
	UserID       uint       `gorm:"index;not null" json:"userId"`
	Type         GoalType   `json:"type"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	TargetValue  float64    `json:"targetValue"`
	CurrentValue float64    `json:"currentValue"`
	TargetDate   Date       `json:"targetDate"`
	Status       GoalStatus `json:"status"`
}
