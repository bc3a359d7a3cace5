package clients

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sony/gobreaker"

	"github.com/lojademo/pedidos/internal/order-service/domain"
	"github.com/lojademo/pedidos/internal/order-service/ports"
	"github.com/lojademo/pedidos/internal/pkg/reqmeta"
)

// ProductCatalog looks products up in the product service.
type ProductCatalog struct {
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
}

func NewProductCatalog(baseURL string) *ProductCatalog {
	return &ProductCatalog{
		baseURL: baseURL,
		http:    &http.Client{Timeout: DefaultTimeout},
		breaker: newBreaker(domain.UpstreamProducts),
	}
}

// FindByID fetches the product list and scans it for the id.
func (c *ProductCatalog) FindByID(ctx context.Context, id int) (domain.Product, error) {
	products, err := executeWithBreaker(c.breaker, func() ([]domain.Product, error) {
		return c.fetchAll(ctx)
	})
	if err != nil {
		return domain.Product{}, &domain.UpstreamError{Service: domain.UpstreamProducts, Err: err}
	}

	for _, product := range products {
		if product.ID == id {
			return product, nil
		}
	}
	return domain.Product{}, domain.NewProductNotFound(id)
}

func (c *ProductCatalog) fetchAll(ctx context.Context) ([]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/produtos", nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	reqmeta.Propagate(ctx, req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}

	var products []domain.Product
	if err := decodeList(resp, &products); err != nil {
		return nil, err
	}
	return products, nil
}

var _ ports.ProductCatalog = (*ProductCatalog)(nil)
