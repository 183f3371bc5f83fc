package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TriggerStatus is the trigger lifecycle state
type TriggerStatus string

const (
	TriggerEnabled  TriggerStatus = "enabled"
	TriggerDisabled TriggerStatus = "disabled"
)

// Trigger is a persisted rule describing when a task should be initiated.
// Evaluation happens in the platform, not here.
type Trigger struct {
	ID              string         `json:"id" gorm:"primaryKey;type:uuid"`
	Name            string         `json:"name" gorm:"type:varchar(100);not null"`
	TriggerType     string         `json:"trigger_type" gorm:"type:varchar(50)"`
	Status          TriggerStatus  `json:"status" gorm:"type:varchar(20);default:'enabled'"`
	Autonomy        string         `json:"autonomy" gorm:"type:varchar(20)"`
	TaskPrompt      string         `json:"task_prompt" gorm:"type:text"`
	Config          datatypes.JSON `json:"config"`
	LastTriggeredAt *time.Time     `json:"last_triggered_at"`
	NextCheckAt     *time.Time     `json:"next_check_at"`
	CreatedAt       time.Time      `json:"created_at"`
}

// BeforeCreate hook will be called before creating a new Trigger record
func (t *Trigger) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
