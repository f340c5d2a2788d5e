package db

import (
	"context"
	"fmt"
	"strings"
)

// schema is the full database schema, written in the SQLite dialect.
// Postgres gets the same statements with its column types substituted.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id         TEXT PRIMARY KEY,
    name       TEXT NOT NULL,
    email      TEXT NOT NULL,
    contact    TEXT NOT NULL DEFAULT '',
    role       TEXT NOT NULL CHECK (role IN ('Person', 'Volunteer', 'NGO', 'Admin')),
    created_at TIMESTAMP NOT NULL
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(email);

CREATE TABLE IF NOT EXISTS volunteers (
    user_id      TEXT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
    availability TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS ngos (
    user_id  TEXT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
    org_name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS animals (
    id             TEXT PRIMARY KEY,
    specifications TEXT NOT NULL,
    photo_url      TEXT NOT NULL DEFAULT '',
    medical_report TEXT NOT NULL DEFAULT '',
    status         TEXT NOT NULL DEFAULT 'Available'
);

CREATE TABLE IF NOT EXISTS animal_photos (
    animal_id TEXT PRIMARY KEY REFERENCES animals(id) ON DELETE CASCADE,
    data      BLOB NOT NULL,
    mime      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS adoption_requests (
    id                TEXT PRIMARY KEY,
    animal_id         TEXT REFERENCES animals(id) ON DELETE SET NULL,
    requester_id      TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    requester_name    TEXT NOT NULL,
    requester_contact TEXT NOT NULL DEFAULT '',
    requested_at      TIMESTAMP NOT NULL,
    status            TEXT NOT NULL DEFAULT 'Pending'
);

CREATE INDEX IF NOT EXISTS idx_adoption_requests_status ON adoption_requests(status);

CREATE TABLE IF NOT EXISTS reports (
    id          TEXT PRIMARY KEY,
    animal_id   TEXT REFERENCES animals(id) ON DELETE SET NULL,
    reporter_id TEXT REFERENCES users(id) ON DELETE SET NULL,
    filed_at    TIMESTAMP NOT NULL,
    description TEXT NOT NULL,
    location    TEXT NOT NULL,
    urgency     TEXT NOT NULL,
    photo_url   TEXT NOT NULL DEFAULT '',
    status      TEXT NOT NULL DEFAULT 'Open'
);

CREATE TABLE IF NOT EXISTS tasks (
    id          TEXT PRIMARY KEY,
    description TEXT NOT NULL,
    status      TEXT NOT NULL DEFAULT 'Open',
    date        TIMESTAMP NOT NULL,
    assignee_id TEXT REFERENCES users(id) ON DELETE SET NULL,
    report_id   TEXT REFERENCES reports(id) ON DELETE SET NULL
);

CREATE INDEX IF NOT EXISTS idx_tasks_assignee ON tasks(assignee_id);

CREATE TABLE IF NOT EXISTS notifications (
    id           TEXT PRIMARY KEY,
    recipient_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    message      TEXT NOT NULL,
    created_at   TIMESTAMP NOT NULL,
    state        TEXT NOT NULL DEFAULT 'Unread' CHECK (state IN ('Unread', 'Read'))
);

CREATE INDEX IF NOT EXISTS idx_notifications_recipient ON notifications(recipient_id);

CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS revoked_tokens (
    jti        TEXT PRIMARY KEY,
    expires_at TIMESTAMP NOT NULL
);
`

var postgresTypes = strings.NewReplacer(
	"BLOB", "BYTEA",
	"TIMESTAMP", "TIMESTAMPTZ",
)

// statements splits the schema into single statements for the dialect.
func statements(dialect Dialect) []string {
	src := schema
	if dialect == DialectPostgres {
		src = postgresTypes.Replace(src)
	}
	var out []string
	for _, stmt := range strings.Split(src, ";") {
		if s := strings.TrimSpace(stmt); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(ctx context.Context, d *DB) error {
	for _, stmt := range statements(d.dialect) {
		if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("creating schema: %w", Classify(err))
		}
	}
	return nil
}
