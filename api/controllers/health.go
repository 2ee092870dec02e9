package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/marketconnect/marketconnect-backend/api/responses"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health reports liveness plus a best-effort database check.
func Health(database Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload := map[string]any{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		}
		if database != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := database.Ping(ctx); err != nil {
				payload["database"] = "unreachable"
			} else {
				payload["database"] = "ok"
			}
		}
		responses.WriteSuccess(w, payload)
	}
}

// Root serves the service banner with an index of the mounted endpoints.
func Root() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{
			"message": "MarketConnect API is running",
			"endpoints": map[string]string{
				"health":        "/api/health",
				"vendors":       "/api/vendors",
				"suppliers":     "/api/suppliers",
				"products":      "/api/products",
				"productGroups": "/api/product-groups",
				"orders":        "/api/orders",
				"dashboard":     "/api/dashboard",
				"metrics":       "/metrics",
			},
		})
	}
}
