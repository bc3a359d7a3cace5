// Package sqlite provides a SQLite-backed implementation of audit.Recorder.
//
// WAL mode is enabled on Open so that readers never block writers and vice
// versa — the orchestrator writes while an operator may be querying the
// trail from the sqlite shell.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lojademo/pedidos/internal/order-service/audit"

	// Register the pure-Go SQLite driver.
	// modernc.org/sqlite avoids CGO, which keeps the Docker (Alpine) build simple.
	_ "modernc.org/sqlite"
)

// schema is the DDL executed once on startup.
// The table is append-only: each row is an immutable event in an attempt's
// lifecycle. The latest row per attempt_id gives the final outcome.
const schema = `
CREATE TABLE IF NOT EXISTS order_audit (
    -- Surrogate primary key — auto-incremented by SQLite.
    id           INTEGER PRIMARY KEY AUTOINCREMENT,

    -- One uuid per CreateOrder call. Not UNIQUE: one row per transition.
    attempt_id   TEXT    NOT NULL,

    -- STARTED / COMPLETED / FAILED at the time this row was written.
    status       TEXT    NOT NULL,

    -- The customer reference as requested (may not exist).
    customer_id  INTEGER NOT NULL,

    -- Assigned order id; 0 for attempts that never created an order.
    order_id     INTEGER NOT NULL DEFAULT 0,

    -- Failure classification; empty on STARTED/COMPLETED rows.
    detail       TEXT    NOT NULL DEFAULT '',

    -- Correlates the row with the HTTP request logs.
    request_id   TEXT    NOT NULL DEFAULT '',

    -- Wall-clock timestamp (RFC3339 stored as TEXT, SQLite idiom).
    created_at   TEXT    NOT NULL
);

-- Index for the most common query: "give me all events for attempt X in order".
CREATE INDEX IF NOT EXISTS idx_order_audit_attempt_id ON order_audit(attempt_id, created_at);
`

// Repository is the SQLite implementation of audit.Recorder.
type Repository struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite database at the given path and applies
// the schema. WAL mode is enabled for better concurrent read/write behaviour.
//
//	repo, err := sqlite.Open("./data/audit.db")
func Open(path string) (*Repository, error) {
	// The pure-Go driver uses _pragma query parameters to configure connection
	// state. busy_timeout waits for locks instead of failing immediately.
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)

	// Use "sqlite", not "sqlite3", for the modernc driver.
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", path, err)
	}

	// SQLite performs best with a single writer connection.
	db.SetMaxOpenConns(1)

	if err := applySchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Repository{db: db}, nil
}

// Close releases the database connection. Call it with defer in main().
func (r *Repository) Close() error {
	return r.db.Close()
}

// Record inserts a new audit entry. Safe to call concurrently.
func (r *Repository) Record(ctx context.Context, entry *audit.Entry) error {
	const q = `
		INSERT INTO order_audit
			(attempt_id, status, customer_id, order_id, detail, request_id, created_at)
		VALUES
			(?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, q,
		entry.AttemptID,
		string(entry.Status),
		entry.CustomerID,
		entry.OrderID,
		entry.Detail,
		entry.RequestID,
		entry.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("sqlite: record audit entry for %q: %w", entry.AttemptID, err)
	}
	return nil
}

// History returns all entries for an attempt, oldest first.
func (r *Repository) History(ctx context.Context, attemptID string) ([]audit.Entry, error) {
	const q = `
		SELECT attempt_id, status, customer_id, order_id, detail, request_id, created_at
		FROM   order_audit
		WHERE  attempt_id = ?
		ORDER  BY created_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, q, attemptID)
	if err != nil {
		return nil, fmt.Errorf("sqlite: history for %q: %w", attemptID, err)
	}
	defer rows.Close()

	var entries []audit.Entry
	for rows.Next() {
		var entry audit.Entry
		var createdAt string
		if err := rows.Scan(
			&entry.AttemptID,
			&entry.Status,
			&entry.CustomerID,
			&entry.OrderID,
			&entry.Detail,
			&entry.RequestID,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scan audit entry: %w", err)
		}
		entry.CreatedAt, err = parseRFC3339(createdAt)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// applySchema runs the DDL statements once. Idempotent due to IF NOT EXISTS.
func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("sqlite: apply schema: %w", err)
	}
	return nil
}

// parseRFC3339 parses the timestamp strings stored in SQLite.
// SQLite has no native datetime type; we store RFC3339 TEXT.
func parseRFC3339(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("sqlite: parse time %q: %w", s, err)
	}
	return t, nil
}

var _ audit.Recorder = (*Repository)(nil)
