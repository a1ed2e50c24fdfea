package handlers

import (
	"net/http"
	"warehouse-route-service/internal/api/dto"

	"github.com/google/uuid"
)

// CreateSession issues a new session id. Sessions need no server-side
// bookkeeping until the first warehouse is added.
func CreateSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.CreateSessionResponse{SessionID: uuid.NewString()})
}
