package store

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/erazemk/zavetisce/internal/db"
)

// GetJWTSecret retrieves the token signing secret, generating and storing
// one on first use. Insert-then-select keeps concurrent startups agreeing
// on a single value.
func GetJWTSecret(ctx context.Context, q db.Conn) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating jwt secret: %w", err)
	}
	candidate := hex.EncodeToString(buf)

	_, err := q.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES ('jwt_secret', ?) ON CONFLICT (key) DO NOTHING`,
		candidate,
	)
	if err != nil {
		return "", fmt.Errorf("storing jwt_secret: %w", err)
	}

	secret, err := GetSetting(ctx, q, "jwt_secret")
	if err != nil {
		return "", err
	}
	return secret, nil
}

// GetSetting returns a stored setting.
func GetSetting(ctx context.Context, q db.Conn, key string) (string, error) {
	var value string
	err := q.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = ?`, key,
	).Scan(&value)
	if err != nil {
		return "", rowErr("querying setting "+key, err)
	}
	return value, nil
}
