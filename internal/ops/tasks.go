package ops

import (
	"time"

	"dbadmin/internal/model"

	"gorm.io/gorm"
)

// RecentTasks fetches at most limit scheduled tasks, newest first.
func RecentTasks(db *gorm.DB, limit int) ([]model.ScheduledTask, error) {
	var tasks []model.ScheduledTask
	err := db.Order("created_at DESC").Limit(limit).Find(&tasks).Error
	return tasks, err
}

// MarkTasksOverdue rewinds next_run_at to asOf and re-enables every task
// whose prompt contains the given substring, so the executor picks them up
// on its next pass. Returns the number of rows updated; 0 matches is fine.
func MarkTasksOverdue(db *gorm.DB, promptSubstring string, asOf time.Time) (int64, error) {
	result := db.Model(&model.ScheduledTask{}).
		Where("prompt LIKE ?", "%"+promptSubstring+"%").
		Updates(map[string]interface{}{
			"next_run_at": asOf,
			"enabled":     true,
		})
	return result.RowsAffected, result.Error
}

// DisableTask flips enabled off for one scheduled task by id.
// Returns the number of rows updated; 0 means no such task.
func DisableTask(db *gorm.DB, id string) (int64, error) {
	result := db.Model(&model.ScheduledTask{}).
		Where("id = ?", id).
		Update("enabled", false)
	return result.RowsAffected, result.Error
}
