package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"warehouse-route-service/internal/api/dto"
	"warehouse-route-service/internal/domain"
	"warehouse-route-service/internal/platform/obs"

	"github.com/google/uuid"
)

const maxBodyBytes = 1 << 20

const (
	msgNotNumeric = "please enter valid numeric values for latitude and longitude"
	msgOutOfRange = "latitude must be between -90 and 90, longitude between -180 and 180"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	writeEncoded(w, r, status, "application/json", v)
}

func writeEncoded(w http.ResponseWriter, r *http.Request, status int, contentType string, v any) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: req_id=%s method=%s path=%s err=%v", obs.RequestID(r.Context()), r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
}

// writeRouteError maps core routing errors to client errors; anything else is
// logged and reported as a 500.
func writeRouteError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidCoordinate):
		writeError(w, r, http.StatusBadRequest, msgOutOfRange)
	case errors.Is(err, domain.ErrInvalidStartIndex):
		writeError(w, r, http.StatusBadRequest, "start index out of range")
	case errors.Is(err, domain.ErrEmptyInput):
		writeError(w, r, http.StatusBadRequest, "no warehouses to route")
	default:
		log.Printf("%s failed: req_id=%s err=%v", op, obs.RequestID(r.Context()), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON reads exactly one JSON object into v and writes a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}
	return true
}

// sessionID returns the {id} path value when it is a valid UUID.
func sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid session id")
		return "", false
	}
	return id.String(), true
}

// startIndex parses the optional ?start= query parameter (default 0).
func startIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	v := strings.TrimSpace(r.URL.Query().Get("start"))
	if v == "" {
		return 0, true
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "start must be an integer")
		return 0, false
	}
	return n, true
}

// parseCoordinate accepts a JSON number or a string holding a number.
func parseCoordinate(raw []byte) (float64, error) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return 0, errors.New("missing value")
	}

	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return 0, err
		}
		s = strings.TrimSpace(str)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, err)
	}
	return f, nil
}

// toWarehouse validates a data-entry row and writes a 400 on failure.
// Names are free-form labels; an empty name is stored as entered.
func toWarehouse(w http.ResponseWriter, r *http.Request, req dto.WarehouseRequest) (domain.Warehouse, bool) {
	lat, errLat := parseCoordinate(req.Latitude)
	lon, errLon := parseCoordinate(req.Longitude)
	if errLat != nil || errLon != nil {
		writeError(w, r, http.StatusBadRequest, msgNotNumeric)
		return domain.Warehouse{}, false
	}

	wh, err := domain.NewWarehouse(req.Name, lat, lon)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, msgOutOfRange)
		return domain.Warehouse{}, false
	}
	return wh, true
}
