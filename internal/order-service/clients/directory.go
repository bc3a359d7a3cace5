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

// CustomerDirectory looks customers up in the customer service.
type CustomerDirectory struct {
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
}

func NewCustomerDirectory(baseURL string) *CustomerDirectory {
	return &CustomerDirectory{
		baseURL: baseURL,
		http:    &http.Client{Timeout: DefaultTimeout},
		breaker: newBreaker(domain.UpstreamCustomers),
	}
}

// FindByID fetches the customer list and scans it for the id.
func (d *CustomerDirectory) FindByID(ctx context.Context, id int) (domain.Customer, error) {
	customers, err := executeWithBreaker(d.breaker, func() ([]domain.Customer, error) {
		return d.fetchAll(ctx)
	})
	if err != nil {
		return domain.Customer{}, &domain.UpstreamError{Service: domain.UpstreamCustomers, Err: err}
	}

	for _, customer := range customers {
		if customer.ID == id {
			return customer, nil
		}
	}
	return domain.Customer{}, domain.NewCustomerNotFound(id)
}

func (d *CustomerDirectory) fetchAll(ctx context.Context) ([]domain.Customer, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.baseURL+"/clientes", nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	reqmeta.Propagate(ctx, req)

	resp, err := d.http.Do(req)
	if err != nil {
		return nil, err
	}

	var customers []domain.Customer
	if err := decodeList(resp, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

var _ ports.CustomerDirectory = (*CustomerDirectory)(nil)
