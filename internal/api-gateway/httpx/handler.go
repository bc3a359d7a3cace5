package httpx

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/lojademo/pedidos/internal/api-gateway/proxy"
	"github.com/lojademo/pedidos/internal/pkg/httpx"
)

// Handler proxies browser requests to the three backing services.
type Handler struct {
	clientes *proxy.Backend
	produtos *proxy.Backend
	pedidos  *proxy.Backend
}

func NewHandler(clientes, produtos, pedidos *proxy.Backend) *Handler {
	return &Handler{clientes: clientes, produtos: produtos, pedidos: pedidos}
}

// Health reports gateway liveness.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"status": "ok", "gateway": true})
}

func (h *Handler) ListClientes(w http.ResponseWriter, r *http.Request) {
	h.proxyList(w, r, h.clientes, "/clientes")
}

func (h *Handler) CreateCliente(w http.ResponseWriter, r *http.Request) {
	h.proxyCreate(w, r, h.clientes, "/clientes", "Falha criar cliente")
}

func (h *Handler) ListProdutos(w http.ResponseWriter, r *http.Request) {
	h.proxyList(w, r, h.produtos, "/produtos")
}

func (h *Handler) CreateProduto(w http.ResponseWriter, r *http.Request) {
	h.proxyCreate(w, r, h.produtos, "/produtos", "Falha criar produto")
}

func (h *Handler) ListPedidos(w http.ResponseWriter, r *http.Request) {
	h.proxyList(w, r, h.pedidos, "/pedidos")
}

func (h *Handler) CreatePedido(w http.ResponseWriter, r *http.Request) {
	h.proxyCreate(w, r, h.pedidos, "/pedidos", "Falha criar pedido")
}

// proxyList relays a backend GET; an unreachable backend becomes a 502 with
// a hint about which service failed.
func (h *Handler) proxyList(w http.ResponseWriter, r *http.Request, backend *proxy.Backend, path string) {
	status, body, err := backend.Get(r.Context(), path)
	if err != nil {
		slog.ErrorContext(r.Context(), "upstream list failed", "backend", backend.Name(), "error", err)
		httpx.WriteJSON(w, http.StatusBadGateway, httpx.ErrorResponse{
			Erro:    fmt.Sprintf("Falha ao obter %s", backend.Name()),
			Detalhe: err.Error(),
		})
		return
	}
	relay(w, status, body)
}

// proxyCreate relays a backend POST, forwarding the request body untouched.
func (h *Handler) proxyCreate(w http.ResponseWriter, r *http.Request, backend *proxy.Backend, path, failMsg string) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, failMsg)
		return
	}

	status, respBody, err := backend.Post(r.Context(), path, body, r.Header)
	if err != nil {
		slog.ErrorContext(r.Context(), "upstream create failed", "backend", backend.Name(), "error", err)
		httpx.WriteError(w, http.StatusBadGateway, failMsg)
		return
	}
	relay(w, status, respBody)
}

func relay(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
