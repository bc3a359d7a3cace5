package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lojademo/pedidos/internal/order-service/domain"
	"github.com/lojademo/pedidos/internal/order-service/service"
	"github.com/lojademo/pedidos/internal/order-service/store"
	"github.com/lojademo/pedidos/internal/pkg/reqmeta"
)

type fakeDirectory struct {
	customers map[int]domain.Customer
	fail      error
}

func (f *fakeDirectory) FindByID(_ context.Context, id int) (domain.Customer, error) {
	if f.fail != nil {
		return domain.Customer{}, &domain.UpstreamError{Service: domain.UpstreamCustomers, Err: f.fail}
	}
	customer, ok := f.customers[id]
	if !ok {
		return domain.Customer{}, domain.NewCustomerNotFound(id)
	}
	return customer, nil
}

type fakeCatalog struct {
	products map[int]domain.Product
	fail     error
}

func (f *fakeCatalog) FindByID(_ context.Context, id int) (domain.Product, error) {
	if f.fail != nil {
		return domain.Product{}, &domain.UpstreamError{Service: domain.UpstreamProducts, Err: f.fail}
	}
	product, ok := f.products[id]
	if !ok {
		return domain.Product{}, domain.NewProductNotFound(id)
	}
	return product, nil
}

// memoryCache is an in-process cache.Cache for tests.
type memoryCache struct {
	mu     sync.Mutex
	values map[string]string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: make(map[string]string)}
}

func (m *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value.(string)
	return nil
}

func (m *memoryCache) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key], nil
}

func (m *memoryCache) GenerateKey(operation, key string) string {
	return "pedidos:" + operation + ":" + key
}

type env struct {
	directory *fakeDirectory
	catalog   *fakeCatalog
	store     *store.Store
	cache     *memoryCache
	router    http.Handler
}

func newEnv(t *testing.T) *env {
	t.Helper()
	e := &env{
		directory: &fakeDirectory{customers: map[int]domain.Customer{
			1: {ID: 1, Nome: "Alice"},
		}},
		catalog: &fakeCatalog{products: map[int]domain.Product{
			1: {ID: 1, Nome: "Teclado", Preco: 120.50},
			2: {ID: 2, Nome: "Mouse", Preco: 70.00},
		}},
		store: store.NewStore(),
		cache: newMemoryCache(),
	}
	orchestrator := service.NewOrchestrator(e.directory, e.catalog, e.store, nil)
	e.router = NewRouter(NewHandler(orchestrator, e.cache))
	return e
}

func (e *env) request(t *testing.T, method, target, body string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for key, values := range header {
		req.Header[key] = values
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func erroOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Erro string `json:"erro"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Erro
}

func TestListStartsEmpty(t *testing.T) {
	e := newEnv(t)

	rec := e.request(t, http.MethodGet, "/pedidos", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestCreateOrderHappyPath(t *testing.T) {
	e := newEnv(t)

	rec := e.request(t, http.MethodPost, "/pedidos",
		`{"clienteId":1,"itens":[{"produtoId":1,"quantidade":2},{"produtoId":2,"quantidade":1}]}`, nil)

	require.Equal(t, http.StatusCreated, rec.Code)

	var order domain.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.Equal(t, 1, order.ID)
	assert.Equal(t, "Alice", order.Cliente.Nome)
	require.Len(t, order.Itens, 2)
	assert.InDelta(t, 241.00, order.Itens[0].Subtotal, 1e-9)
	assert.InDelta(t, 70.00, order.Itens[1].Subtotal, 1e-9)
	assert.InDelta(t, 311.00, order.Total, 1e-9)

	list := e.request(t, http.MethodGet, "/pedidos", "", nil)
	var orders []domain.Order
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, order, orders[0])
}

func TestCreateOrderValidation(t *testing.T) {
	e := newEnv(t)

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"clienteId":`},
		{"missing customer", `{"itens":[{"produtoId":1}]}`},
		{"empty items", `{"clienteId":1,"itens":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := e.request(t, http.MethodPost, "/pedidos", tt.body, nil)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "clienteId e itens são obrigatórios", erroOf(t, rec))
		})
	}
	assert.Empty(t, e.store.List())
}

func TestCreateOrderUnknownCustomer(t *testing.T) {
	e := newEnv(t)

	rec := e.request(t, http.MethodPost, "/pedidos",
		`{"clienteId":999,"itens":[{"produtoId":1,"quantidade":1}]}`, nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Cliente não encontrado", erroOf(t, rec))
	assert.Empty(t, e.store.List())
}

func TestCreateOrderUnknownProduct(t *testing.T) {
	e := newEnv(t)

	rec := e.request(t, http.MethodPost, "/pedidos",
		`{"clienteId":1,"itens":[{"produtoId":999,"quantidade":1}]}`, nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Produto 999 não encontrado", erroOf(t, rec))
	assert.Empty(t, e.store.List())
}

func TestCreateOrderUpstreamUnavailable(t *testing.T) {
	e := newEnv(t)
	e.catalog.fail = errors.New("connection refused")

	rec := e.request(t, http.MethodPost, "/pedidos",
		`{"clienteId":1,"itens":[{"produtoId":1,"quantidade":1}]}`, nil)

	require.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "Serviço de produtos indisponível", erroOf(t, rec))
	assert.Empty(t, e.store.List())
}

func TestCreateOrderIdempotencyReplay(t *testing.T) {
	e := newEnv(t)
	body := `{"clienteId":1,"itens":[{"produtoId":2,"quantidade":1}]}`
	header := http.Header{reqmeta.HeaderIdempotencyKey: []string{"abc-123"}}

	first := e.request(t, http.MethodPost, "/pedidos", body, header)
	require.Equal(t, http.StatusCreated, first.Code)

	second := e.request(t, http.MethodPost, "/pedidos", body, header)
	require.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, "true", second.Header().Get("Idempotency-Replay"))
	assert.JSONEq(t, first.Body.String(), second.Body.String())

	assert.Len(t, e.store.List(), 1, "replay must not create a second order")
}

func TestUnknownRoute(t *testing.T) {
	e := newEnv(t)

	rec := e.request(t, http.MethodGet, "/nope", "", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Rota não encontrada", erroOf(t, rec))
}

func TestHealth(t *testing.T) {
	e := newEnv(t)

	rec := e.request(t, http.MethodGet, "/health", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var health struct {
		Status  string `json:"status"`
		Service string `json:"service"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "pedidos", health.Service)
}
