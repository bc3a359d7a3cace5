package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/lojademo/pedidos/internal/pkg/httpx"
	"github.com/lojademo/pedidos/internal/pkg/reqmeta"
)

func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(reqmeta.Attach)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", handler.Health)
	r.Get("/clientes", handler.List)
	r.Post("/clientes", handler.Create)

	r.NotFound(httpx.NotFoundHandler)
	return r
}
