package models

// User is an account plus the profile fields shown on the dashboard.
// Passwords are stored as-is and compared by equality; the login flow
// makes no hardening promises.
type User struct {
	UserID            uint   `gorm:"primaryKey" json:"userId"`
	FullName          string `json:"fullName"`
	Email             string `gorm:"uniqueIndex;not null" json:"email"`
	Password          string `json:"-"`
	DateOfBirth       *Date  `json:"dateOfBirth"`
	Height            int    `json:"height"`
	Weight            int    `json:"weight"`
	ProfilePictureURL string `json:"profilePictureUrl"`
}
