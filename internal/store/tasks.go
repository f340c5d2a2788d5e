package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/zavetisce/internal/db"
	"github.com/erazemk/zavetisce/internal/model"
)

const taskColumns = `id, description, status, date, assignee_id, report_id`

func scanTask(s rowScanner) (*model.Task, error) {
	t := &model.Task{}
	var assigneeID, reportID sql.NullString
	if err := s.Scan(&t.ID, &t.Description, &t.Status, &t.Date, &assigneeID, &reportID); err != nil {
		return nil, err
	}
	t.AssigneeID = nullable(assigneeID)
	t.ReportID = nullable(reportID)
	return t, nil
}

// CreateTask inserts a new task.
func CreateTask(ctx context.Context, q db.Conn, t *model.Task) error {
	_, err := q.ExecContext(ctx,
		`INSERT INTO tasks (`+taskColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		t.ID, t.Description, t.Status, t.Date, t.AssigneeID, t.ReportID,
	)
	if err != nil {
		return writeErr("creating task", err)
	}
	return nil
}

// GetTask returns a task by ID.
func GetTask(ctx context.Context, q db.Conn, id string) (*model.Task, error) {
	t, err := scanTask(q.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id,
	))
	if err != nil {
		return nil, rowErr("getting task", err)
	}
	return t, nil
}

// ListTasks returns tasks by date, optionally only those assigned to assigneeID.
func ListTasks(ctx context.Context, q db.Conn, assigneeID string) ([]model.Task, error) {
	var rows *sql.Rows
	var err error

	if assigneeID != "" {
		rows, err = q.QueryContext(ctx,
			`SELECT `+taskColumns+` FROM tasks WHERE assignee_id = ? ORDER BY date, id`, assigneeID,
		)
	} else {
		rows, err = q.QueryContext(ctx,
			`SELECT `+taskColumns+` FROM tasks ORDER BY date, id`,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

// AssignTask sets or clears a task's assignee.
func AssignTask(ctx context.Context, q db.Conn, id string, assigneeID *string) error {
	res, err := q.ExecContext(ctx,
		`UPDATE tasks SET assignee_id = ? WHERE id = ?`, assigneeID, id,
	)
	if err != nil {
		return fmt.Errorf("assigning task: %w", err)
	}
	return mustAffect("assigning task", res)
}

// SetTaskStatus changes a task's status.
func SetTaskStatus(ctx context.Context, q db.Conn, id string, status model.TaskStatus) error {
	res, err := q.ExecContext(ctx,
		`UPDATE tasks SET status = ? WHERE id = ?`, status, id,
	)
	if err != nil {
		return fmt.Errorf("setting task status: %w", err)
	}
	return mustAffect("setting task status", res)
}
