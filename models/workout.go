package models

// Workout is one recorded session. Telemetry fields are filled in by the
// upload endpoint, not read back from the uploaded file.
type Workout struct {
	WorkoutID       uint    `gorm:"primaryKey" json:"workoutId"`
	UserID          uint    `gorm:"index;not null" json:"userId"`
	Date            Date    `gorm:"index" json:"date"`
	Distance        float64 `json:"distance"`
	AvgHeartRate    int     `json:"avgHeartRate"`
	Calories        int     `json:"calories"`
	Location        string  `json:"location"`
	WeatherTemp     int     `json:"weatherTemp"`
	WeatherHumidity int     `json:"weatherHumidity"`
}
