package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/lojademo/pedidos/internal/pkg/httpx"
	"github.com/lojademo/pedidos/internal/pkg/reqmeta"
)

func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(reqmeta.Attach)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	// The browser frontend runs on its own origin.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", reqmeta.HeaderIdempotencyKey},
	}))

	r.Get("/api/health", handler.Health)

	r.Get("/api/clientes", handler.ListClientes)
	r.Post("/api/clientes", handler.CreateCliente)
	r.Get("/api/produtos", handler.ListProdutos)
	r.Post("/api/produtos", handler.CreateProduto)
	r.Get("/api/pedidos", handler.ListPedidos)
	r.Post("/api/pedidos", handler.CreatePedido)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httpx.WriteError(w, http.StatusNotFound, "Rota não encontrada no gateway")
	})
	return r
}
