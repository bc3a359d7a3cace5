package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	customerhttp "github.com/lojademo/pedidos/internal/customer-service/httpx"
	"github.com/lojademo/pedidos/internal/customer-service/store"
	"github.com/lojademo/pedidos/internal/pkg/telemetry"
)

func main() {
	_ = godotenv.Load()
	telemetry.InitLogger("clientes")

	addr := ":" + getEnv("PORT", "8091")

	handler := customerhttp.NewHandler(store.NewStore())
	router := customerhttp.NewRouter(handler)

	slog.Info("customer service running", "addr", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		slog.Error("http server failed", "error", err)
		os.Exit(1)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
