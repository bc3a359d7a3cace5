package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/lojademo/pedidos/internal/pkg/httpx"
	"github.com/lojademo/pedidos/internal/product-service/domain"
	"github.com/lojademo/pedidos/internal/product-service/store"
)

// Handler serves the product catalog endpoints.
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
		Service: "produtos",
		Uptime:  time.Since(h.started).Seconds(),
	})
}

// List returns every product record.
func (h *Handler) List(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, h.store.List())
}

// Create registers a new product and returns it with its assigned id.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Nome e preco são obrigatórios")
		return
	}
	if req.Nome == "" || req.Preco == nil {
		httpx.WriteError(w, http.StatusBadRequest, "Nome e preco são obrigatórios")
		return
	}

	candidate := domain.Product{Nome: req.Nome, Preco: *req.Preco}
	if err := candidate.Validate(); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Nome e preco são obrigatórios")
		return
	}

	product := h.store.Create(req.Nome, *req.Preco)
	slog.InfoContext(r.Context(), "product created", "product_id", product.ID, "preco", product.Preco)
	httpx.WriteJSON(w, http.StatusCreated, product)
}
