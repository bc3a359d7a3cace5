package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/lojademo/pedidos/internal/customer-service/domain"
	"github.com/lojademo/pedidos/internal/customer-service/store"
	"github.com/lojademo/pedidos/internal/pkg/httpx"
)

// Handler serves the customer directory endpoints.
type Handler struct {
	store   *store.Store
	started time.Time
}

func NewHandler(s *store.Store) *Handler {
	return &Handler{store: s, started: time.Now()}
}

// Health reports liveness for monitoring.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, httpx.HealthResponse{
		Status:  "ok",
		Service: "clientes",
		Uptime:  time.Since(h.started).Seconds(),
	})
}

// List returns every customer record.
func (h *Handler) List(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, h.store.List())
}

// Create registers a new customer and returns it with its assigned id.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Nome é obrigatório")
		return
	}

	candidate := domain.Customer{Nome: req.Nome}
	if err := candidate.Validate(); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Nome é obrigatório")
		return
	}

	customer := h.store.Create(req.Nome)
	slog.InfoContext(r.Context(), "customer created", "customer_id", customer.ID)
	httpx.WriteJSON(w, http.StatusCreated, customer)
}
