// Package ports defines the collaborator contracts the orchestrator depends
// on. The orchestrator only ever needs a point lookup; how an adapter fulfils
// it (full-list scan today, a direct endpoint tomorrow) is its own business.
package ports

import (
	"context"

	"github.com/lojademo/pedidos/internal/order-service/domain"
)

// CustomerDirectory resolves customer references.
// FindByID returns *domain.NotFoundError when no record matches and
// *domain.UpstreamError when the directory cannot be reached.
type CustomerDirectory interface {
	FindByID(ctx context.Context, id int) (domain.Customer, error)
}

// ProductCatalog resolves product references, with the same error contract
// as CustomerDirectory.
type ProductCatalog interface {
	FindByID(ctx context.Context, id int) (domain.Product, error)
}
