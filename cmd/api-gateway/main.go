package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	gatewayhttp "github.com/lojademo/pedidos/internal/api-gateway/httpx"
	"github.com/lojademo/pedidos/internal/api-gateway/proxy"
	"github.com/lojademo/pedidos/internal/pkg/telemetry"
)

func main() {
	_ = godotenv.Load()
	telemetry.InitLogger("gateway")

	addr := ":" + getEnv("GATEWAY_PORT", getEnv("PORT", "8080"))

	clientes := proxy.NewBackend("clientes", getEnv("URL_CLIENTES", "http://localhost:8091"))
	produtos := proxy.NewBackend("produtos", getEnv("URL_PRODUTOS", "http://localhost:8092"))
	pedidos := proxy.NewBackend("pedidos", getEnv("URL_PEDIDOS", "http://localhost:8093"))

	handler := gatewayhttp.NewHandler(clientes, produtos, pedidos)
	router := gatewayhttp.NewRouter(handler)

	slog.Info("api gateway running", "addr", addr)
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
