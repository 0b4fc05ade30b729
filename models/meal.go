package models

// Meal is one logged meal ("Breakfast"|"Lunch"|…) with its macros.
type Meal struct {
	MealID   uint   `gorm:"primaryKey" json:"mealId"`
	UserID   uint   `gorm:"index;not null" json:"userId"`
	Type     string `json:"type"`
	Date     Date   `gorm:"index" json:"date"`
	Food     string `json:"food"`
	Calories int    `json:"calories"`
	Protein  int    `json:"protein"`
	Carbs    int    `json:"carbs"`
	Fat      int    `json:"fat"`
}
