package services

import "gorm.io/gorm"

// firstOwned fetches a record by primary key, additionally requiring its
// user_id column to match. A record owned by someone else is reported as
// gorm.ErrRecordNotFound, same as a missing one.
func firstOwned[T any](db *gorm.DB, userID, id uint) (*T, error) {
	var rec T
	if err := db.Where("user_id = ?", userID).First(&rec, id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// deleteOwned removes the record if it exists and belongs to the user.
func deleteOwned[T any](db *gorm.DB, userID, id uint) error {
	rec, err := firstOwned[T](db, userID, id)
	if err != nil {
		return err
	}
	return db.Delete(rec).Error
}
