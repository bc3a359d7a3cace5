// Package clients implements the directory and catalog ports over plain
// HTTP. Both collaborators only expose full-list endpoints, so the lookup is
// "fetch the list, scan for the id" — fine while collaborator state is small
// and in-memory. Each client wraps its calls in a circuit breaker so a dead
// collaborator fails fast instead of burning the timeout on every order.
package clients

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

// DefaultTimeout bounds every collaborator call, matching the gateway's
// upstream budget. A timed-out lookup is reported as unavailable.
const DefaultTimeout = 3 * time.Second

func newBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    name,
		Timeout: 10 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})
}

// executeWithBreaker funnels a typed call through the non-generic breaker.
func executeWithBreaker[T any](cb *gobreaker.CircuitBreaker, fn func() (T, error)) (T, error) {
	res, err := cb.Execute(func() (interface{}, error) {
		return fn()
	})

	if err != nil {
		return *new(T), err
	}

	return res.(T), nil
}

// decodeList fetches a JSON array from resp into out, enforcing a 200.
func decodeList(resp *http.Response, out any) error {
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
