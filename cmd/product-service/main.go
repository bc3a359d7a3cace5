package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/lojademo/pedidos/internal/pkg/telemetry"
	producthttp "github.com/lojademo/pedidos/internal/product-service/httpx"
	"github.com/lojademo/pedidos/internal/product-service/store"
)

func main() {
	_ = godotenv.Load()
	telemetry.InitLogger("produtos")

	addr := ":" + getEnv("PORT", "8092")

	handler := producthttp.NewHandler(store.NewStore())
	router := producthttp.NewRouter(handler)

	slog.Info("product service running", "addr", addr)
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
