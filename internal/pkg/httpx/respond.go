// Package httpx holds the JSON response helpers and error wire format shared
// by all services. Error bodies follow the frontend's contract: a Portuguese
// human-readable message under "erro", optionally a "detalhe" hint.
package httpx

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the wire shape of every non-2xx body.
type ErrorResponse struct {
	Erro    string `json:"erro"`
	Detalhe string `json:"detalhe,omitempty"`
}

// HealthResponse is the wire shape of GET /health.
type HealthResponse struct {
	Status  string  `json:"status"`
	Service string  `json:"service"`
	Uptime  float64 `json:"uptime"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, ErrorResponse{Erro: msg})
}

// NotFoundHandler is the fallback for routes no service knows about.
func NotFoundHandler(w http.ResponseWriter, _ *http.Request) {
	WriteError(w, http.StatusNotFound, "Rota não encontrada")
}
