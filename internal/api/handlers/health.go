package handlers

import (
	"context"
	"log"
	"net/http"
	"time"
	"warehouse-route-service/internal/platform/obs"
)

const healthTimeout = 2 * time.Second

// HealthHandler reports liveness and, when Check is set, whether the session
// store is reachable.
type HealthHandler struct {
	Check func(ctx context.Context) error
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}

	if h.Check != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		if err := h.Check(ctx); err != nil {
			log.Printf("health check failed: req_id=%s err=%v", obs.RequestID(r.Context()), err)
			writeJSON(w, r, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
