package rescue

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/erazemk/zavetisce/internal/db"
	"github.com/erazemk/zavetisce/internal/model"
	"github.com/erazemk/zavetisce/internal/store"
)

func assignmentMessage(description string) string {
	return "You have been assigned a new task: " + description
}

// CreateTask records a task. Status defaults to Open and the date to now.
// A task created with an assignee notifies them.
func (s *Service) CreateTask(ctx context.Context, t model.Task) (*model.Task, error) {
	if strings.TrimSpace(t.Description) == "" {
		return nil, model.Invalid("description required")
	}
	t.ID = s.newID()
	if t.Status == "" {
		t.Status = model.TaskOpen
	}
	st, err := model.ParseTaskStatus(string(t.Status))
	if err != nil {
		return nil, err
	}
	t.Status = st
	if t.Date.IsZero() {
		t.Date = s.timestamp()
	}

	err = s.db.InTx(ctx, func(q db.Conn) error {
		if t.AssigneeID != nil {
			if _, err := store.GetUser(ctx, q, *t.AssigneeID); err != nil {
				return err
			}
		}
		if t.ReportID != nil {
			if _, err := store.GetReport(ctx, q, *t.ReportID); err != nil {
				return err
			}
		}
		return store.CreateTask(ctx, q, &t)
	})
	if err != nil {
		return nil, err
	}

	if t.AssigneeID != nil {
		s.notify(*t.AssigneeID, assignmentMessage(t.Description))
	}
	return &t, nil
}

// AssignTask gives a task to assigneeID, or unassigns it when assigneeID
// is nil. A new assignee is notified.
func (s *Service) AssignTask(ctx context.Context, taskID string, assigneeID *string) (*model.Task, error) {
	var task *model.Task

	err := s.db.InTx(ctx, func(q db.Conn) error {
		if assigneeID != nil {
			if _, err := store.GetUser(ctx, q, *assigneeID); err != nil {
				return err
			}
		}
		if err := store.AssignTask(ctx, q, taskID, assigneeID); err != nil {
			return err
		}
		var err error
		task, err = store.GetTask(ctx, q, taskID)
		return err
	})
	if err != nil {
		return nil, err
	}

	if assigneeID != nil {
		s.notify(*assigneeID, assignmentMessage(task.Description))
		s.log.Info("task assigned", zap.String("task", taskID), zap.String("assignee", *assigneeID))
	} else {
		s.log.Info("task unassigned", zap.String("task", taskID))
	}
	return task, nil
}

// SetTaskStatus moves a task to status.
func (s *Service) SetTaskStatus(ctx context.Context, id, status string) error {
	st, err := model.ParseTaskStatus(status)
	if err != nil {
		return err
	}
	return store.SetTaskStatus(ctx, s.db, id, st)
}

// ListTasks returns every task by date.
func (s *Service) ListTasks(ctx context.Context) ([]model.Task, error) {
	return store.ListTasks(ctx, s.db, "")
}

// ListTasksForAssignee returns the tasks assigned to userID.
func (s *Service) ListTasksForAssignee(ctx context.Context, userID string) ([]model.Task, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, model.Invalid("assignee required")
	}
	return store.ListTasks(ctx, s.db, userID)
}
