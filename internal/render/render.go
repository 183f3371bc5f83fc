// Package render formats fetched records as human-readable blocks for the
// script output. Purely presentational.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"dbadmin/internal/model"

	"gorm.io/datatypes"
)

const timeLayout = "2006-01-02 15:04:05 MST"

// Tenant writes one tenant as a multi-line block.
func Tenant(w io.Writer, t *model.Tenant) {
	fmt.Fprintf(w, "ID:         %s\n", t.ID)
	fmt.Fprintf(w, "Name:       %s\n", t.Name)
	fmt.Fprintf(w, "Phone:      %s\n", t.Phone)
	fmt.Fprintf(w, "Channel:    %s\n", t.Channel)
	fmt.Fprintf(w, "Status:     %s\n", t.Status)
	fmt.Fprintf(w, "Onboarding: %s\n", t.OnboardingStatus)
	fmt.Fprintf(w, "Created:    %s\n", t.CreatedAt.Format(timeLayout))
	fmt.Fprintln(w)
}

// Task writes one scheduled task as a multi-line block. A task that has
// never run renders "never" for its last run.
func Task(w io.Writer, t *model.ScheduledTask) {
	kind := string(t.TaskType)
	if t.OneOff {
		kind += " (one-off)"
	} else {
		kind += " (recurring)"
	}
	fmt.Fprintf(w, "ID:       %s\n", t.ID)
	fmt.Fprintf(w, "Prompt:   %s\n", t.Prompt)
	fmt.Fprintf(w, "Type:     %s\n", kind)
	fmt.Fprintf(w, "Enabled:  %t\n", t.Enabled)
	fmt.Fprintf(w, "Next run: %s\n", t.NextRunAt.Format(timeLayout))
	fmt.Fprintf(w, "Last run: %s\n", timeOrNever(t.LastRunAt))
	fmt.Fprintf(w, "Plan:     %s\n", jsonBlock(t.ExecutionPlan))
	fmt.Fprintln(w)
}

// Trigger writes one trigger as a multi-line block.
func Trigger(w io.Writer, t *model.Trigger) {
	fmt.Fprintf(w, "ID:             %s\n", t.ID)
	fmt.Fprintf(w, "Name:           %s\n", t.Name)
	fmt.Fprintf(w, "Type:           %s\n", t.TriggerType)
	fmt.Fprintf(w, "Status:         %s\n", t.Status)
	fmt.Fprintf(w, "Autonomy:       %s\n", t.Autonomy)
	fmt.Fprintf(w, "Task prompt:    %s\n", t.TaskPrompt)
	fmt.Fprintf(w, "Last triggered: %s\n", timeOrNever(t.LastTriggeredAt))
	fmt.Fprintf(w, "Next check:     %s\n", timeOrNever(t.NextCheckAt))
	fmt.Fprintf(w, "Config:         %s\n", jsonBlock(t.Config))
	fmt.Fprintln(w)
}

func timeOrNever(t *time.Time) string {
	if t == nil {
		return "never"
	}
	return t.Format(timeLayout)
}

// jsonBlock indents an opaque JSON payload for display. The payload shape is
// owned by the platform, so anything that fails to indent is shown raw.
func jsonBlock(payload datatypes.JSON) string {
	if len(payload) == 0 {
		return "(none)"
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(payload), "          ", "  "); err != nil {
		return string(payload)
	}
	return buf.String()
}
