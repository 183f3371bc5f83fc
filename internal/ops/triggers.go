package ops

import (
	"dbadmin/internal/model"

	"gorm.io/gorm"
)

// RecentTriggers fetches at most limit triggers, newest first.
func RecentTriggers(db *gorm.DB, limit int) ([]model.Trigger, error) {
	var triggers []model.Trigger
	err := db.Order("created_at DESC").Limit(limit).Find(&triggers).Error
	return triggers, err
}

// DeleteTrigger removes exactly one trigger by id and returns its name.
// A missing id surfaces as gorm.ErrRecordNotFound.
func DeleteTrigger(db *gorm.DB, id string) (string, error) {
	var trigger model.Trigger
	if err := db.First(&trigger, "id = ?", id).Error; err != nil {
		return "", err
	}
	if err := db.Delete(&trigger).Error; err != nil {
		return "", err
	}
	return trigger.Name, nil
}
