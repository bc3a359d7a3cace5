// Package service implements the order orchestrator: it turns an unvalidated
// order request into a fully priced, stored order, or fails with a classified
// error and no partial side effect.
package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lojademo/pedidos/internal/order-service/audit"
	"github.com/lojademo/pedidos/internal/order-service/domain"
	"github.com/lojademo/pedidos/internal/order-service/ports"
	"github.com/lojademo/pedidos/internal/order-service/store"
)

// Orchestrator coordinates the two collaborators and the order store.
type Orchestrator struct {
	directory ports.CustomerDirectory
	catalog   ports.ProductCatalog
	store     *store.Store
	recorder  audit.Recorder // nil-safe: auditing skipped if nil
}

// NewOrchestrator wires the orchestrator with its collaborators.
// recorder may be nil — in that case attempts are not written to the audit trail.
func NewOrchestrator(directory ports.CustomerDirectory, catalog ports.ProductCatalog, s *store.Store, recorder audit.Recorder) *Orchestrator {
	return &Orchestrator{
		directory: directory,
		catalog:   catalog,
		store:     s,
		recorder:  recorder,
	}
}

// CreateOrder resolves the customer and every requested product, prices the
// line items in request order, and appends the assembled order to the store.
//
// Any failure before the append leaves the store and the id counter
// untouched: a failed attempt never consumes an order id.
func (o *Orchestrator) CreateOrder(ctx context.Context, customerID int, items []domain.LineItemRequest) (domain.Order, error) {
	if customerID <= 0 || len(items) == 0 {
		return domain.Order{}, domain.ErrInvalidRequest
	}

	attemptID := uuid.NewString()
	o.record(ctx, audit.NewEntry(ctx, attemptID, audit.StatusStarted, customerID, 0, ""))

	customer, err := o.directory.FindByID(ctx, customerID)
	if err != nil {
		o.fail(ctx, attemptID, customerID, err)
		return domain.Order{}, err
	}

	// The product lookups are independent, so they fan out concurrently;
	// writing each result to its own slot keeps the request order intact.
	priced := make([]domain.PricedLineItem, len(items))
	g, gctx := errgroup.WithContext(ctx)
	for i, item := range items {
		g.Go(func() error {
			product, err := o.catalog.FindByID(gctx, item.ProductID)
			if err != nil {
				return err
			}
			priced[i] = domain.PriceLineItem(product, domain.NormalizeQuantity(item.Quantity))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		o.fail(ctx, attemptID, customerID, err)
		return domain.Order{}, err
	}

	// The only state-mutating step: id assignment and append happen in one
	// critical section inside the store.
	order := o.store.Append(domain.Order{
		Cliente: customer,
		Itens:   priced,
		Total:   domain.Total(priced),
	})

	o.record(ctx, audit.NewEntry(ctx, attemptID, audit.StatusCompleted, customerID, order.ID, ""))
	slog.InfoContext(ctx, "order created", "order_id", order.ID, "customer_id", customer.ID, "total", order.Total)
	return order, nil
}

// ListOrders returns a read-only snapshot of all orders in insertion order.
func (o *Orchestrator) ListOrders(_ context.Context) []domain.Order {
	return o.store.List()
}

func (o *Orchestrator) fail(ctx context.Context, attemptID string, customerID int, cause error) {
	o.record(ctx, audit.NewEntry(ctx, attemptID, audit.StatusFailed, customerID, 0, cause.Error()))
}

func (o *Orchestrator) record(ctx context.Context, entry *audit.Entry) {
	if o.recorder == nil {
		return
	}
	if err := o.recorder.Record(ctx, entry); err != nil {
		// The trail is best-effort; a write failure must not fail the order.
		slog.WarnContext(ctx, "audit record failed", "attempt_id", entry.AttemptID, "error", err)
	}
}
