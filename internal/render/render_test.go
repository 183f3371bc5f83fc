package render

import (
	"bytes"
	"testing"
	"time"

	"dbadmin/internal/model"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestTask_NeverRun(t *testing.T) {
	var buf bytes.Buffer
	Task(&buf, &model.ScheduledTask{
		ID:        "t-1",
		Prompt:    "send weekly report",
		TaskType:  model.TaskTypeReminder,
		Enabled:   true,
		NextRunAt: time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC),
		LastRunAt: nil,
	})

	out := buf.String()
	assert.Contains(t, out, "Last run: never")
	assert.NotContains(t, out, "Last run: \n")
}

func TestTask_WithLastRun(t *testing.T) {
	lastRun := time.Date(2026, 8, 25, 7, 30, 0, 0, time.UTC)
	var buf bytes.Buffer
	Task(&buf, &model.ScheduledTask{
		ID:        "t-2",
		Prompt:    "renew domain",
		TaskType:  model.TaskTypeExecute,
		OneOff:    true,
		NextRunAt: time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC),
		LastRunAt: &lastRun,
	})

	out := buf.String()
	assert.Contains(t, out, "Last run: 2026-08-25 07:30:00 UTC")
	assert.Contains(t, out, "execute (one-off)")
}

func TestTask_EmptyPlan(t *testing.T) {
	var buf bytes.Buffer
	Task(&buf, &model.ScheduledTask{ID: "t-3", Prompt: "ping"})

	assert.Contains(t, buf.String(), "Plan:     (none)")
}

func TestTask_PlanIndented(t *testing.T) {
	var buf bytes.Buffer
	Task(&buf, &model.ScheduledTask{
		ID:            "t-4",
		Prompt:        "ping",
		ExecutionPlan: datatypes.JSON(`{"steps":["lookup","send"]}`),
	})

	out := buf.String()
	assert.Contains(t, out, `"steps"`)
	assert.Contains(t, out, `"lookup"`)
}

func TestTrigger_NeverTriggered(t *testing.T) {
	var buf bytes.Buffer
	Trigger(&buf, &model.Trigger{
		ID:     "tr-1",
		Name:   "morning digest",
		Status: model.TriggerEnabled,
		Config: datatypes.JSON(`{"hour":7}`),
	})

	out := buf.String()
	assert.Contains(t, out, "Last triggered: never")
	assert.Contains(t, out, "Next check:     never")
	assert.Contains(t, out, `"hour"`)
}

func TestTenant(t *testing.T) {
	var buf bytes.Buffer
	Tenant(&buf, &model.Tenant{
		ID:               "te-1",
		Name:             "Acme",
		Phone:            "+15550100001",
		Channel:          model.ChannelWhatsApp,
		Status:           model.TenantActive,
		OnboardingStatus: model.OnboardingLive,
		CreatedAt:        time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	})

	out := buf.String()
	assert.Contains(t, out, "Name:       Acme")
	assert.Contains(t, out, "Phone:      +15550100001")
	assert.Contains(t, out, "Channel:    whatsapp")
	assert.Contains(t, out, "Onboarding: live")
}
