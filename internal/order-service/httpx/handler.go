package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/lojademo/pedidos/internal/order-service/domain"
	"github.com/lojademo/pedidos/internal/order-service/service"
	"github.com/lojademo/pedidos/internal/pkg/cache"
	"github.com/lojademo/pedidos/internal/pkg/httpx"
	"github.com/lojademo/pedidos/internal/pkg/reqmeta"
)

// idempotencyTTL bounds how long a replayed response stays available.
const idempotencyTTL = 24 * time.Hour

// Handler serves the order endpoints.
type Handler struct {
	orchestrator *service.Orchestrator
	cache        cache.Cache // nil-safe: idempotency replay disabled if nil
	started      time.Time
}

// NewHandler initializes the handler. cache may be nil — in that case the
// Idempotency-Key header is ignored and every POST creates a new order.
func NewHandler(orchestrator *service.Orchestrator, c cache.Cache) *Handler {
	return &Handler{orchestrator: orchestrator, cache: c, started: time.Now()}
}

// Health reports liveness for monitoring.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, httpx.HealthResponse{
		Status:  "ok",
		Service: "pedidos",
		Uptime:  time.Since(h.started).Seconds(),
	})
}

// List returns every stored order in insertion order.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	orders := h.orchestrator.ListOrders(r.Context())
	if orders == nil {
		orders = []domain.Order{}
	}
	httpx.WriteJSON(w, http.StatusOK, orders)
}

// Create validates the request, runs the orchestrator, and maps the outcome
// to the wire contract. With an Idempotency-Key header and a configured
// cache, a repeated request replays the original order instead of creating a
// duplicate.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "clienteId e itens são obrigatórios")
		return
	}

	idempKey := reqmeta.IdempotencyKey(r.Context())
	if cached, ok := h.replay(r.Context(), idempKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Idempotency-Replay", "true")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write(cached)
		return
	}

	items := make([]domain.LineItemRequest, len(req.Itens))
	for i, item := range req.Itens {
		items[i] = domain.LineItemRequest{ProductID: item.ProdutoID, Quantity: item.Quantidade}
	}

	// Detach from the client connection: once creation has begun it runs to
	// completion, success or terminal failure, even if the caller goes away.
	ctx := context.WithoutCancel(r.Context())

	order, err := h.orchestrator.CreateOrder(ctx, req.ClienteID, items)
	if err != nil {
		writeCreateError(r.Context(), w, err)
		return
	}

	h.remember(ctx, idempKey, order)
	httpx.WriteJSON(w, http.StatusCreated, order)
}

// replay returns the cached response body for an idempotency key, if any.
func (h *Handler) replay(ctx context.Context, key string) ([]byte, bool) {
	if h.cache == nil || key == "" {
		return nil, false
	}
	body, err := h.cache.Get(ctx, h.cache.GenerateKey("pedidos", key))
	if err != nil {
		slog.WarnContext(ctx, "idempotency lookup failed", "error", err)
		return nil, false
	}
	if body == "" {
		return nil, false
	}
	return []byte(body), true
}

// remember stores the created order under the idempotency key.
func (h *Handler) remember(ctx context.Context, key string, order domain.Order) {
	if h.cache == nil || key == "" {
		return
	}
	body, err := json.Marshal(order)
	if err != nil {
		return
	}
	if err := h.cache.Set(ctx, h.cache.GenerateKey("pedidos", key), string(body), idempotencyTTL); err != nil {
		slog.WarnContext(ctx, "idempotency store failed", "order_id", order.ID, "error", err)
	}
}

// writeCreateError translates the orchestrator's error taxonomy to the wire
// contract. Internal detail never reaches the response body.
func writeCreateError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		httpx.WriteError(w, http.StatusBadRequest, "clienteId e itens são obrigatórios")
	case isCustomerNotFound(err):
		httpx.WriteError(w, http.StatusNotFound, "Cliente não encontrado")
	case isProductNotFound(err):
		nf, _ := domain.AsNotFound(err)
		httpx.WriteError(w, http.StatusNotFound, fmt.Sprintf("Produto %d não encontrado", nf.ID))
	default:
		if ue, ok := domain.AsUpstream(err); ok {
			slog.ErrorContext(ctx, "collaborator unavailable", "upstream", ue.Service, "error", err)
			httpx.WriteError(w, http.StatusBadGateway, fmt.Sprintf("Serviço de %s indisponível", ue.Service))
			return
		}
		slog.ErrorContext(ctx, "order creation failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Erro interno ao criar pedido")
	}
}

func isCustomerNotFound(err error) bool {
	nf, ok := domain.AsNotFound(err)
	return ok && nf.Resource == domain.ResourceCustomer
}

func isProductNotFound(err error) bool {
	nf, ok := domain.AsNotFound(err)
	return ok && nf.Resource == domain.ResourceProduct
}
