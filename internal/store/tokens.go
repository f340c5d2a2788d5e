package store

import (
	"context"
	"fmt"
	"time"

	"github.com/erazemk/zavetisce/internal/db"
)

// RevokeToken records a logged-out token id until expiresAt. Revoking the
// same id twice keeps the first record.
func RevokeToken(ctx context.Context, q db.Conn, jti string, expiresAt time.Time) error {
	_, err := q.ExecContext(ctx,
		`INSERT INTO revoked_tokens (jti, expires_at) VALUES (?, ?) ON CONFLICT (jti) DO NOTHING`,
		jti, expiresAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("revoking token %s: %w", jti, db.Classify(err))
	}
	return nil
}

// PurgeRevokedTokens forgets revocations whose token has expired by now.
// Expired tokens fail validation on their own.
func PurgeRevokedTokens(ctx context.Context, q db.Conn, now time.Time) (int64, error) {
	res, err := q.ExecContext(ctx,
		`DELETE FROM revoked_tokens WHERE expires_at < ?`, now.UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("purging revoked tokens: %w", db.Classify(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purging revoked tokens: %w", err)
	}
	return n, nil
}

// IsTokenRevoked reports whether jti was revoked.
func IsTokenRevoked(ctx context.Context, q db.Conn, jti string) (bool, error) {
	var revoked bool
	err := q.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM revoked_tokens WHERE jti = ?)`, jti,
	).Scan(&revoked)
	if err != nil {
		return false, fmt.Errorf("checking token %s: %w", jti, db.Classify(err))
	}
	return revoked, nil
}
