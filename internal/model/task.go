package model

import (
	"strings"
	"time"
)

// Task is a unit of work, optionally assigned to a volunteer.
type Task struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	Date        time.Time  `json:"date"`
	AssigneeID  *string    `json:"assignee_id"`
	ReportID    *string    `json:"report_id,omitempty"`
}

// TaskStatus is the progress state of a task.
type TaskStatus string

// Task statuses.
const (
	TaskOpen       TaskStatus = "Open"
	TaskInProgress TaskStatus = "In Progress"
	TaskDone       TaskStatus = "Done"
)

// ParseTaskStatus maps s case-insensitively onto a known task status.
func ParseTaskStatus(s string) (TaskStatus, error) {
	v := strings.TrimSpace(s)
	if strings.EqualFold(v, "in-progress") {
		return TaskInProgress, nil
	}
	for _, st := range []TaskStatus{TaskOpen, TaskInProgress, TaskDone} {
		if strings.EqualFold(v, string(st)) {
			return st, nil
		}
	}
	return "", Invalid("unknown task status %q", s)
}
