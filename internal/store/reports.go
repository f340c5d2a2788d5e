package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/zavetisce/internal/db"
	"github.com/erazemk/zavetisce/internal/model"
)

const reportColumns = `id, animal_id, reporter_id, filed_at, description, location, urgency, photo_url, status`

func scanReport(s rowScanner) (*model.Report, error) {
	r := &model.Report{}
	var animalID, reporterID sql.NullString
	if err := s.Scan(&r.ID, &animalID, &reporterID, &r.FiledAt, &r.Description, &r.Location,
		&r.Urgency, &r.PhotoURL, &r.Status); err != nil {
		return nil, err
	}
	r.AnimalID = nullable(animalID)
	r.ReporterID = nullable(reporterID)
	return r, nil
}

// CreateReport inserts a new report.
func CreateReport(ctx context.Context, q db.Conn, r *model.Report) error {
	_, err := q.ExecContext(ctx,
		`INSERT INTO reports (`+reportColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.AnimalID, r.ReporterID, r.FiledAt, r.Description, r.Location, r.Urgency, r.PhotoURL, r.Status,
	)
	if err != nil {
		return writeErr("creating report", err)
	}
	return nil
}

// GetReport returns a report by ID.
func GetReport(ctx context.Context, q db.Conn, id string) (*model.Report, error) {
	r, err := scanReport(q.QueryRowContext(ctx,
		`SELECT `+reportColumns+` FROM reports WHERE id = ?`, id,
	))
	if err != nil {
		return nil, rowErr("getting report", err)
	}
	return r, nil
}

// ListReports returns all reports, newest first.
func ListReports(ctx context.Context, q db.Conn) ([]model.Report, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT `+reportColumns+` FROM reports ORDER BY filed_at DESC, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}
	defer rows.Close()

	reports := []model.Report{}
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning report: %w", err)
		}
		reports = append(reports, *r)
	}
	return reports, rows.Err()
}

// SetReportStatus changes a report's triage status.
func SetReportStatus(ctx context.Context, q db.Conn, id string, status model.ReportStatus) error {
	res, err := q.ExecContext(ctx,
		`UPDATE reports SET status = ? WHERE id = ?`, status, id,
	)
	if err != nil {
		return fmt.Errorf("setting report status: %w", err)
	}
	return mustAffect("setting report status", res)
}
