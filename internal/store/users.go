package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/zavetisce/internal/db"
	"github.com/erazemk/zavetisce/internal/model"
)

const userSelect = `SELECT u.id, u.name, u.email, u.contact, u.role, u.created_at,
	        v.user_id, v.availability, n.org_name
	 FROM users u
	 LEFT JOIN volunteers v ON v.user_id = u.id
	 LEFT JOIN ngos n ON n.user_id = u.id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(s rowScanner) (*model.User, error) {
	u := &model.User{}
	var volunteerID, availability, orgName sql.NullString
	if err := s.Scan(&u.ID, &u.Name, &u.Email, &u.Contact, &u.Role, &u.CreatedAt,
		&volunteerID, &availability, &orgName); err != nil {
		return nil, err
	}
	if volunteerID.Valid {
		u.Volunteer = &model.VolunteerDetails{Availability: availability.String}
	}
	if orgName.Valid {
		u.NGO = &model.NGODetails{OrgName: orgName.String}
	}
	return u, nil
}

// CreateUser inserts a user and its role details. Run it inside a
// transaction so the account and details appear together.
func CreateUser(ctx context.Context, q db.Conn, u *model.User) error {
	_, err := q.ExecContext(ctx,
		`INSERT INTO users (id, name, email, contact, role, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.Email, u.Contact, u.Role, u.CreatedAt,
	)
	if err != nil {
		return writeErr("creating user", err)
	}
	return insertUserDetails(ctx, q, u)
}

func insertUserDetails(ctx context.Context, q db.Conn, u *model.User) error {
	if u.Volunteer != nil {
		if _, err := q.ExecContext(ctx,
			`INSERT INTO volunteers (user_id, availability) VALUES (?, ?)`,
			u.ID, u.Volunteer.Availability,
		); err != nil {
			return fmt.Errorf("creating volunteer details: %w", err)
		}
	}
	if u.NGO != nil {
		if _, err := q.ExecContext(ctx,
			`INSERT INTO ngos (user_id, org_name) VALUES (?, ?)`,
			u.ID, u.NGO.OrgName,
		); err != nil {
			return fmt.Errorf("creating ngo details: %w", err)
		}
	}
	return nil
}

// GetUser returns a user by ID.
func GetUser(ctx context.Context, q db.Conn, id string) (*model.User, error) {
	u, err := scanUser(q.QueryRowContext(ctx, userSelect+` WHERE u.id = ?`, id))
	if err != nil {
		return nil, rowErr("getting user", err)
	}
	return u, nil
}

// GetUserByEmail returns a user by email, compared case-insensitively.
func GetUserByEmail(ctx context.Context, q db.Conn, email string) (*model.User, error) {
	u, err := scanUser(q.QueryRowContext(ctx, userSelect+` WHERE lower(u.email) = lower(?)`, email))
	if err != nil {
		return nil, rowErr("getting user by email", err)
	}
	return u, nil
}

// ListUsers returns all users, optionally filtered by role.
func ListUsers(ctx context.Context, q db.Conn, role model.Role) ([]model.User, error) {
	var rows *sql.Rows
	var err error

	if role != "" {
		rows, err = q.QueryContext(ctx, userSelect+` WHERE u.role = ? ORDER BY u.name, u.id`, role)
	} else {
		rows, err = q.QueryContext(ctx, userSelect+` ORDER BY u.name, u.id`)
	}
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

// ListVolunteers returns volunteers ordered by name then id.
func ListVolunteers(ctx context.Context, q db.Conn) ([]model.User, error) {
	return ListUsers(ctx, q, model.RoleVolunteer)
}

// ListUserIDsByRole returns the ids of every user holding role.
func ListUserIDsByRole(ctx context.Context, q db.Conn, role model.Role) ([]string, error) {
	rows, err := q.QueryContext(ctx, `SELECT id FROM users WHERE role = ? ORDER BY id`, role)
	if err != nil {
		return nil, fmt.Errorf("listing user ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning user id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// UpdateUser replaces a user's fields and role details. Run it inside a
// transaction.
func UpdateUser(ctx context.Context, q db.Conn, u *model.User) error {
	res, err := q.ExecContext(ctx,
		`UPDATE users SET name = ?, email = ?, contact = ?, role = ? WHERE id = ?`,
		u.Name, u.Email, u.Contact, u.Role, u.ID,
	)
	if err != nil {
		return writeErr("updating user", err)
	}
	if err := mustAffect("updating user", res); err != nil {
		return err
	}

	if _, err := q.ExecContext(ctx, `DELETE FROM volunteers WHERE user_id = ?`, u.ID); err != nil {
		return fmt.Errorf("clearing volunteer details: %w", err)
	}
	if _, err := q.ExecContext(ctx, `DELETE FROM ngos WHERE user_id = ?`, u.ID); err != nil {
		return fmt.Errorf("clearing ngo details: %w", err)
	}
	return insertUserDetails(ctx, q, u)
}

// DeleteUser removes a user. Role details and notifications cascade;
// tasks become unassigned.
func DeleteUser(ctx context.Context, q db.Conn, id string) error {
	res, err := q.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}
	return mustAffect("deleting user", res)
}

// CountUsers returns the number of accounts.
func CountUsers(ctx context.Context, q db.Conn) (int, error) {
	var n int
	if err := q.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, rowErr("counting users", err)
	}
	return n, nil
}
