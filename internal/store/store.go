// Package store holds one function per statement against the rescue schema.
// Every function takes a db.Conn so it can run on the pool or inside a
// transaction opened with db.DB.InTx.
package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/erazemk/zavetisce/internal/db"
	"github.com/erazemk/zavetisce/internal/model"
)

// rowErr wraps a QueryRow scan error, mapping sql.ErrNoRows to model.ErrNotFound.
func rowErr(what string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", what, model.ErrNotFound)
	}
	return fmt.Errorf("%s: %w", what, db.Classify(err))
}

// writeErr wraps an Exec error, mapping unique violations to model.ErrConflict.
func writeErr(what string, err error) error {
	if db.IsUniqueViolation(err) {
		return fmt.Errorf("%s: %w: %w", what, model.ErrConflict, err)
	}
	return fmt.Errorf("%s: %w", what, err)
}

// mustAffect returns model.ErrNotFound when the statement matched no rows.
func mustAffect(what string, res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, model.ErrNotFound)
	}
	return nil
}

func nullable(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
