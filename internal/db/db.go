package db

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/erazemk/zavetisce/internal/model"
)

// Dialect selects the SQL flavour of the underlying database.
type Dialect string

// Supported dialects.
const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// ParseDialect accepts the configured driver name.
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sqlite", "sqlite3", "":
		return DialectSQLite, nil
	case "postgres", "postgresql", "pgx":
		return DialectPostgres, nil
	}
	return "", fmt.Errorf("unknown database driver %q", s)
}

// Conn is satisfied by both the pool and an open transaction. Store
// functions accept it so they can run either standalone or inside InTx.
type Conn interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// DB wraps a connection pool and rewrites placeholders for its dialect.
type DB struct {
	sql     *sql.DB
	dialect Dialect
}

// Open opens a database for the given driver and DSN.
func Open(driverName, dsn string) (*DB, error) {
	dialect, err := ParseDialect(driverName)
	if err != nil {
		return nil, err
	}
	switch dialect {
	case DialectPostgres:
		return openPostgres(dsn)
	default:
		return openSQLite(dsn)
	}
}

func openSQLite(path string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Pragmas are per connection and ":memory:" is a separate database per
	// connection, so the pool is pinned to a single connection.
	sqlDB.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
		"PRAGMA synchronous=NORMAL",
	}
	for _, p := range pragmas {
		if _, err := sqlDB.Exec(p); err != nil {
			sqlDB.Close()
			return nil, fmt.Errorf("setting pragma %q: %w", p, err)
		}
	}

	return &DB{sql: sqlDB, dialect: DialectSQLite}, nil
}

func openPostgres(dsn string) (*DB, error) {
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, Classify(fmt.Errorf("pinging database: %w", err))
	}

	return &DB{sql: sqlDB, dialect: DialectPostgres}, nil
}

// Wrap adopts an already opened pool.
func Wrap(sqlDB *sql.DB, dialect Dialect) *DB {
	return &DB{sql: sqlDB, dialect: dialect}
}

// Dialect returns the SQL flavour of the database.
func (d *DB) Dialect() Dialect { return d.dialect }

// Close closes the pool.
func (d *DB) Close() error { return d.sql.Close() }

// Ping checks that the database is reachable.
func (d *DB) Ping(ctx context.Context) error {
	return Classify(d.sql.PingContext(ctx))
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	res, err := d.sql.ExecContext(ctx, Rebind(d.dialect, query), args...)
	return res, Classify(err)
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	rows, err := d.sql.QueryContext(ctx, Rebind(d.dialect, query), args...)
	return rows, Classify(err)
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return d.sql.QueryRowContext(ctx, Rebind(d.dialect, query), args...)
}

// InTx runs fn inside a transaction. The transaction commits when fn
// returns nil and rolls back otherwise. fn must only use the Conn it is
// given: on SQLite the pool holds a single connection.
func (d *DB) InTx(ctx context.Context, fn func(Conn) error) error {
	sqlTx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return Classify(fmt.Errorf("beginning transaction: %w", err))
	}
	defer sqlTx.Rollback()

	if err := fn(&tx{tx: sqlTx, dialect: d.dialect}); err != nil {
		return err
	}

	if err := sqlTx.Commit(); err != nil {
		return Classify(fmt.Errorf("committing transaction: %w", err))
	}
	return nil
}

type tx struct {
	tx      *sql.Tx
	dialect Dialect
}

func (t *tx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	res, err := t.tx.ExecContext(ctx, Rebind(t.dialect, query), args...)
	return res, Classify(err)
}

func (t *tx) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	rows, err := t.tx.QueryContext(ctx, Rebind(t.dialect, query), args...)
	return rows, Classify(err)
}

func (t *tx) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return t.tx.QueryRowContext(ctx, Rebind(t.dialect, query), args...)
}

// Rebind rewrites "?" placeholders into "$1, $2, ..." for Postgres.
// Question marks inside single-quoted literals are left alone.
func Rebind(dialect Dialect, query string) string {
	if dialect != DialectPostgres || !strings.Contains(query, "?") {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	quoted := false
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '\'':
			quoted = !quoted
			b.WriteByte(c)
		case c == '?' && !quoted:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Classify marks connection-level failures as model.ErrStoreUnavailable.
// Other errors are returned unchanged.
func Classify(err error) error {
	if err == nil || errors.Is(err, model.ErrStoreUnavailable) {
		return err
	}

	var netErr net.Error
	switch {
	case errors.Is(err, sql.ErrConnDone),
		errors.Is(err, driver.ErrBadConn),
		errors.As(err, &netErr),
		strings.Contains(err.Error(), "database is closed"):
		return fmt.Errorf("%w: %w", model.ErrStoreUnavailable, err)
	}
	return err
}
