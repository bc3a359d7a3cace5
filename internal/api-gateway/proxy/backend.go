// Package proxy forwards gateway requests to the backing services. The
// gateway never interprets payloads; it relays status and body and only
// synthesizes a response when the backend cannot be reached at all.
package proxy

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/lojademo/pedidos/internal/pkg/reqmeta"
)

// upstreamTimeout bounds every proxied call so a slow backend cannot hang
// the browser.
const upstreamTimeout = 3 * time.Second

// Backend is one proxied service.
type Backend struct {
	name    string
	baseURL string
	http    *http.Client
}

func NewBackend(name, baseURL string) *Backend {
	return &Backend{
		name:    name,
		baseURL: baseURL,
		http:    &http.Client{Timeout: upstreamTimeout},
	}
}

// Name identifies the backend in gateway error messages.
func (b *Backend) Name() string {
	return b.name
}

// Get fetches a path from the backend and returns its status and raw body.
func (b *Backend) Get(ctx context.Context, path string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.baseURL+path, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("%s: build request: %w", b.name, err)
	}
	return b.do(ctx, req)
}

// Post forwards a JSON body to the backend and returns its status and raw body.
func (b *Backend) Post(ctx context.Context, path string, body []byte, headers http.Header) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return 0, nil, fmt.Errorf("%s: build request: %w", b.name, err)
	}
	req.Header.Set("Content-Type", "application/json")
	// The idempotency key travels with the forwarded request.
	if key := headers.Get(reqmeta.HeaderIdempotencyKey); key != "" {
		req.Header.Set(reqmeta.HeaderIdempotencyKey, key)
	}
	return b.do(ctx, req)
}

func (b *Backend) do(ctx context.Context, req *http.Request) (int, []byte, error) {
	reqmeta.Propagate(ctx, req)

	resp, err := b.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%s: %w", b.name, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("%s: read response: %w", b.name, err)
	}
	return resp.StatusCode, body, nil
}
