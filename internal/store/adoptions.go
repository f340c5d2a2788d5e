package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/zavetisce/internal/db"
	"github.com/erazemk/zavetisce/internal/model"
)

const adoptionColumns = `id, animal_id, requester_id, requester_name, requester_contact, requested_at, status`

func scanAdoption(s rowScanner) (*model.AdoptionRequest, error) {
	r := &model.AdoptionRequest{}
	var animalID sql.NullString
	if err := s.Scan(&r.ID, &animalID, &r.RequesterID, &r.RequesterName, &r.RequesterContact,
		&r.RequestedAt, &r.Status); err != nil {
		return nil, err
	}
	r.AnimalID = nullable(animalID)
	return r, nil
}

// CreateAdoptionRequest inserts a new adoption request.
func CreateAdoptionRequest(ctx context.Context, q db.Conn, r *model.AdoptionRequest) error {
	_, err := q.ExecContext(ctx,
		`INSERT INTO adoption_requests (`+adoptionColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.AnimalID, r.RequesterID, r.RequesterName, r.RequesterContact, r.RequestedAt, r.Status,
	)
	if err != nil {
		return writeErr("creating adoption request", err)
	}
	return nil
}

// GetAdoptionRequest returns an adoption request by ID.
func GetAdoptionRequest(ctx context.Context, q db.Conn, id string) (*model.AdoptionRequest, error) {
	r, err := scanAdoption(q.QueryRowContext(ctx,
		`SELECT `+adoptionColumns+` FROM adoption_requests WHERE id = ?`, id,
	))
	if err != nil {
		return nil, rowErr("getting adoption request", err)
	}
	return r, nil
}

// ListAdoptionRequests returns requests newest first, optionally filtered
// by status (case-insensitive).
func ListAdoptionRequests(ctx context.Context, q db.Conn, status model.AdoptionStatus) ([]model.AdoptionRequest, error) {
	query := `SELECT ` + adoptionColumns + ` FROM adoption_requests`
	var args []any
	if status != "" {
		query += ` WHERE lower(status) = lower(?)`
		args = append(args, status)
	}
	query += ` ORDER BY requested_at DESC, id`

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing adoption requests: %w", err)
	}
	defer rows.Close()

	requests := []model.AdoptionRequest{}
	for rows.Next() {
		r, err := scanAdoption(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning adoption request: %w", err)
		}
		requests = append(requests, *r)
	}
	return requests, rows.Err()
}

// DecideAdoptionRequest moves a pending request to its terminal status.
// It returns model.ErrNotPending when the request is no longer pending,
// so two concurrent decisions cannot both succeed.
func DecideAdoptionRequest(ctx context.Context, q db.Conn, id string, status model.AdoptionStatus) error {
	res, err := q.ExecContext(ctx,
		`UPDATE adoption_requests SET status = ? WHERE id = ? AND lower(status) = 'pending'`,
		status, id,
	)
	if err != nil {
		return fmt.Errorf("deciding adoption request: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deciding adoption request: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("deciding adoption request %s: %w", id, model.ErrNotPending)
	}
	return nil
}
