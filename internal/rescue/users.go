package rescue

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/erazemk/zavetisce/internal/db"
	"github.com/erazemk/zavetisce/internal/model"
	"github.com/erazemk/zavetisce/internal/store"
)

// CreateUser creates an account together with its role details.
func (s *Service) CreateUser(ctx context.Context, u model.User) (*model.User, error) {
	u.ID = s.newID()
	u.CreatedAt = s.timestamp()
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if err := u.Validate(); err != nil {
		return nil, err
	}

	err := s.db.InTx(ctx, func(q db.Conn) error {
		return store.CreateUser(ctx, q, &u)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("user created", zap.String("user", u.ID), zap.String("role", string(u.Role)))
	return &u, nil
}

// RegisterUser creates an account for someone signing themselves up.
// Admin accounts cannot be self-registered.
func (s *Service) RegisterUser(ctx context.Context, u model.User) (*model.User, error) {
	if role, err := model.ParseRole(string(u.Role)); err == nil && role == model.RoleAdmin {
		return nil, model.Invalid("role %s cannot be self-registered", role)
	}
	return s.CreateUser(ctx, u)
}

// GetUser returns one account.
func (s *Service) GetUser(ctx context.Context, id string) (*model.User, error) {
	return store.GetUser(ctx, s.db, id)
}

// ListUsers returns accounts ordered by name, optionally only one role.
func (s *Service) ListUsers(ctx context.Context, roleFilter string) ([]model.User, error) {
	var role model.Role
	if roleFilter != "" {
		var err error
		if role, err = model.ParseRole(roleFilter); err != nil {
			return nil, err
		}
	}
	return store.ListUsers(ctx, s.db, role)
}

// ListVolunteers returns every volunteer ordered by name then id.
func (s *Service) ListVolunteers(ctx context.Context) ([]model.User, error) {
	return store.ListVolunteers(ctx, s.db)
}

// UpdateUser replaces an account's fields. Changing the role swaps the
// role details in the same transaction.
func (s *Service) UpdateUser(ctx context.Context, u model.User) (*model.User, error) {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if err := u.Validate(); err != nil {
		return nil, err
	}

	var updated *model.User
	err := s.db.InTx(ctx, func(q db.Conn) error {
		if err := store.UpdateUser(ctx, q, &u); err != nil {
			return err
		}
		var err error
		updated, err = store.GetUser(ctx, q, u.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteUser removes an account. Their tasks become unassigned and their
// adoption requests are removed.
func (s *Service) DeleteUser(ctx context.Context, id string) error {
	if err := store.DeleteUser(ctx, s.db, id); err != nil {
		return err
	}
	s.log.Info("user deleted", zap.String("user", id))
	return nil
}

// Authenticate finds the account with email whose role matches role,
// both compared case-insensitively. A mismatch is model.ErrNotFound.
func (s *Service) Authenticate(ctx context.Context, email, role string) (*model.User, error) {
	r, err := model.ParseRole(role)
	if err != nil {
		return nil, err
	}
	u, err := store.GetUserByEmail(ctx, s.db, strings.TrimSpace(email))
	if err != nil {
		return nil, err
	}
	if u.Role != r {
		return nil, fmt.Errorf("user %s does not hold role %s: %w", u.ID, r, model.ErrNotFound)
	}
	return u, nil
}

// EnsureAdmin creates an Admin account with email when the database has
// no accounts yet. It reports whether an account was created.
func (s *Service) EnsureAdmin(ctx context.Context, email string) (*model.User, bool, error) {
	n, err := store.CountUsers(ctx, s.db)
	if err != nil {
		return nil, false, err
	}
	if n > 0 {
		u, err := store.GetUserByEmail(ctx, s.db, email)
		if errors.Is(err, model.ErrNotFound) {
			return nil, false, nil
		}
		return u, false, err
	}

	u, err := s.CreateUser(ctx, model.User{Name: "Admin", Email: email, Role: model.RoleAdmin})
	if err != nil {
		return nil, false, fmt.Errorf("creating admin: %w", err)
	}
	return u, true, nil
}

// Ping checks the database connection.
func (s *Service) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}
