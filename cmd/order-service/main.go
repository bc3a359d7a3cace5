package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/lojademo/pedidos/internal/order-service/audit"
	auditsqlite "github.com/lojademo/pedidos/internal/order-service/audit/sqlite"
	"github.com/lojademo/pedidos/internal/order-service/clients"
	orderhttp "github.com/lojademo/pedidos/internal/order-service/httpx"
	"github.com/lojademo/pedidos/internal/order-service/service"
	"github.com/lojademo/pedidos/internal/order-service/store"
	"github.com/lojademo/pedidos/internal/pkg/cache"
	"github.com/lojademo/pedidos/internal/pkg/telemetry"
)

func main() {
	_ = godotenv.Load()
	telemetry.InitLogger("pedidos")

	addr := ":" + getEnv("PORT", "8093")
	customersURL := getEnv("URL_CLIENTES", "http://localhost:8091")
	productsURL := getEnv("URL_PRODUTOS", "http://localhost:8092")

	// Audit trail and idempotency cache are optional: an empty env var
	// disables the feature, the demo still runs with no sqlite file or redis.
	var recorder audit.Recorder
	if path := os.Getenv("AUDIT_DB_PATH"); path != "" {
		repo, err := auditsqlite.Open(path)
		if err != nil {
			slog.Error("failed to open audit db", "path", path, "error", err)
			os.Exit(1)
		}
		defer repo.Close()
		recorder = repo
	}

	var idempotencyCache cache.Cache
	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		idempotencyCache = cache.NewRedisCache(redisAddr, "pedidos")
	}

	orchestrator := service.NewOrchestrator(
		clients.NewCustomerDirectory(customersURL),
		clients.NewProductCatalog(productsURL),
		store.NewStore(),
		recorder,
	)

	handler := orderhttp.NewHandler(orchestrator, idempotencyCache)
	router := orderhttp.NewRouter(handler)

	slog.Info("order service running", "addr", addr, "clientes", customersURL, "produtos", productsURL)
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
