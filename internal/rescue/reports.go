package rescue

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/erazemk/zavetisce/internal/db"
	"github.com/erazemk/zavetisce/internal/model"
	"github.com/erazemk/zavetisce/internal/store"
)

const reportSummaryLen = 50

// FileReport records a new sighting as Open and tells every NGO about it.
func (s *Service) FileReport(ctx context.Context, r model.Report) (*model.Report, error) {
	r.ID = s.newID()
	r.FiledAt = s.timestamp()
	r.Status = model.ReportOpen
	if err := r.Validate(); err != nil {
		return nil, err
	}

	var ngos []string
	err := s.db.InTx(ctx, func(q db.Conn) error {
		if r.AnimalID != nil {
			if _, err := store.GetAnimal(ctx, q, *r.AnimalID); err != nil {
				return err
			}
		}
		if r.ReporterID != nil {
			if _, err := store.GetUser(ctx, q, *r.ReporterID); err != nil {
				return err
			}
		}
		if err := store.CreateReport(ctx, q, &r); err != nil {
			return err
		}
		var err error
		ngos, err = store.ListUserIDsByRole(ctx, q, model.RoleNGO)
		return err
	})
	if err != nil {
		return nil, err
	}

	msg := fmt.Sprintf("New stray animal report: %s...", r.Summary(reportSummaryLen))
	for _, id := range ngos {
		s.notify(id, msg)
	}

	s.log.Info("report filed",
		zap.String("report", r.ID),
		zap.String("urgency", string(r.Urgency)),
		zap.Int("ngos_notified", len(ngos)),
	)
	return &r, nil
}

// SetReportStatus moves a report to status.
func (s *Service) SetReportStatus(ctx context.Context, id, status string) error {
	st, err := model.ParseReportStatus(status)
	if err != nil {
		return err
	}
	return store.SetReportStatus(ctx, s.db, id, st)
}

// ListReports returns all reports, newest first.
func (s *Service) ListReports(ctx context.Context) ([]model.Report, error) {
	return store.ListReports(ctx, s.db)
}

// GetReport returns one report.
func (s *Service) GetReport(ctx context.Context, id string) (*model.Report, error) {
	return store.GetReport(ctx, s.db, id)
}

// CreateTaskFromReport turns a report into an assigned task and marks the
// report Assigned, both in one transaction.
//
// An empty description becomes "Task from report: <description> at <location>".
// With a nil candidate the task goes to the first volunteer by name, then
// id. A candidate that is not a volunteer is a validation error and having
// no volunteers at all is model.ErrNotFound.
func (s *Service) CreateTaskFromReport(ctx context.Context, reportID, description string, candidate *string) (*model.Task, error) {
	var task *model.Task

	err := s.db.InTx(ctx, func(q db.Conn) error {
		report, err := store.GetReport(ctx, q, reportID)
		if err != nil {
			return err
		}

		assignee, err := s.pickVolunteer(ctx, q, candidate)
		if err != nil {
			return err
		}

		if strings.TrimSpace(description) == "" {
			description = fmt.Sprintf("Task from report: %s at %s", report.Description, report.Location)
		}

		task = &model.Task{
			ID:          s.newID(),
			Description: description,
			Status:      model.TaskOpen,
			Date:        s.timestamp(),
			AssigneeID:  &assignee.ID,
			ReportID:    &report.ID,
		}
		if err := store.CreateTask(ctx, q, task); err != nil {
			return err
		}
		return store.SetReportStatus(ctx, q, report.ID, model.ReportAssigned)
	})
	if err != nil {
		return nil, err
	}

	s.notify(*task.AssigneeID, assignmentMessage(task.Description))
	s.log.Info("task created from report",
		zap.String("report", reportID),
		zap.String("task", task.ID),
		zap.String("assignee", *task.AssigneeID),
	)
	return task, nil
}

func (s *Service) pickVolunteer(ctx context.Context, q db.Conn, candidate *string) (*model.User, error) {
	if candidate != nil {
		u, err := store.GetUser(ctx, q, *candidate)
		if err != nil {
			return nil, err
		}
		if u.Role != model.RoleVolunteer {
			return nil, model.Invalid("user %s is a %s, not a volunteer", u.ID, u.Role)
		}
		return u, nil
	}

	volunteers, err := store.ListVolunteers(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(volunteers) == 0 {
		return nil, fmt.Errorf("no volunteer available: %w", model.ErrNotFound)
	}
	return &volunteers[0], nil
}
