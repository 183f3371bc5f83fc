package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TaskType classifies what the executor does when the task fires
type TaskType string

const (
	TaskTypeReminder TaskType = "reminder"
	TaskTypeExecute  TaskType = "execute"
)

// ScheduledTask is a persisted description of work an external executor runs
// later. These scripts only read and write the rows.
type ScheduledTask struct {
	ID            string         `json:"id" gorm:"primaryKey;type:uuid"`
	Prompt        string         `json:"prompt" gorm:"type:text;not null"`
	TaskType      TaskType       `json:"task_type" gorm:"type:varchar(20);default:'reminder'"`
	OneOff        bool           `json:"one_off"`
	Enabled       bool           `json:"enabled"`
	NextRunAt     time.Time      `json:"next_run_at" gorm:"index"`
	LastRunAt     *time.Time     `json:"last_run_at"` // nil until the executor first runs it
	ExecutionPlan datatypes.JSON `json:"execution_plan"`
	CreatedAt     time.Time      `json:"created_at"`
}

// TableName overrides the default pluralization
func (ScheduledTask) TableName() string {
	return "scheduled_tasks"
}

// BeforeCreate hook will be called before creating a new ScheduledTask record
func (s *ScheduledTask) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
