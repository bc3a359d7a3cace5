// Package audit defines the order-creation audit trail.
//
// The trail is an append-only record of every creation attempt — started,
// completed, or failed — so operators can answer "what happened to that
// request" after the fact and correlate it with the request logs via the
// request_id column. It is a side trail only: the order store remains the
// single source of truth, and a nil Recorder disables auditing entirely.
package audit

import (
	"context"
	"time"

	"github.com/lojademo/pedidos/internal/pkg/reqmeta"
)

// Status represents the lifecycle state of a creation attempt.
type Status string

const (
	StatusStarted   Status = "STARTED"
	StatusCompleted Status = "COMPLETED"
	StatusFailed    Status = "FAILED"
)

// Entry is a single row in the audit trail. It captures a point-in-time
// snapshot of one order-creation attempt.
type Entry struct {
	// AttemptID identifies a single creation attempt across its rows.
	// Generated by the orchestrator, one per CreateOrder call.
	AttemptID string

	// Status is the attempt state at the time this row was written.
	Status Status

	// CustomerID is the requested customer reference, as supplied.
	CustomerID int

	// OrderID is the assigned order id. Zero until an order is created,
	// so failed attempts visibly never consumed one.
	OrderID int

	// Detail carries the failure classification on FAILED rows.
	Detail string

	// RequestID links the row to the HTTP request logs.
	RequestID string

	// CreatedAt is the wall-clock time of this row.
	CreatedAt time.Time
}

// Recorder is the port for persisting audit entries. The orchestrator depends
// on this abstraction, not on SQLite directly.
type Recorder interface {
	// Record persists a new entry. Each call appends a row; the trail is
	// an append-only log, not an upsert.
	Record(ctx context.Context, entry *Entry) error
}

// NewEntry builds an Entry with the request ID extracted from ctx.
func NewEntry(ctx context.Context, attemptID string, status Status, customerID, orderID int, detail string) *Entry {
	return &Entry{
		AttemptID:  attemptID,
		Status:     status,
		CustomerID: customerID,
		OrderID:    orderID,
		Detail:     detail,
		RequestID:  reqmeta.RequestID(ctx),
		CreatedAt:  time.Now().UTC(),
	}
}
