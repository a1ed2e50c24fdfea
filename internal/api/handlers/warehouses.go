package handlers

import (
	"fmt"
	"log"
	"net/http"
	"warehouse-route-service/internal/api/dto"
	"warehouse-route-service/internal/platform/obs"
	"warehouse-route-service/internal/ports"
)

// WarehouseHandler manages the per-session working set of warehouses.
type WarehouseHandler struct {
	Store ports.WarehouseStore
}

func (h *WarehouseHandler) Warehouses(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.list(w, r, id)
	case http.MethodPost:
		h.add(w, r, id)
	case http.MethodDelete:
		h.clear(w, r, id)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPost, http.MethodDelete)
	}
}

func (h *WarehouseHandler) list(w http.ResponseWriter, r *http.Request, id string) {
	ws, err := h.Store.ListWarehouses(r.Context(), id)
	if err != nil {
		log.Printf("list warehouses failed: req_id=%s err=%v", obs.RequestID(r.Context()), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ListWarehousesResponse{
		SessionID:  id,
		Warehouses: dto.NewWarehouseResponses(ws),
	})
}

func (h *WarehouseHandler) add(w http.ResponseWriter, r *http.Request, id string) {
	var req dto.WarehouseRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	wh, ok := toWarehouse(w, r, req)
	if !ok {
		return
	}

	if err := h.Store.AddWarehouse(r.Context(), id, wh); err != nil {
		log.Printf("add warehouse failed: req_id=%s err=%v", obs.RequestID(r.Context()), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	ws, err := h.Store.ListWarehouses(r.Context(), id)
	if err != nil {
		log.Printf("list warehouses failed: req_id=%s err=%v", obs.RequestID(r.Context()), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.AddWarehouseResponse{
		Message:    fmt.Sprintf("Added: %s", wh.Name),
		SessionID:  id,
		Warehouses: dto.NewWarehouseResponses(ws),
	})
}

func (h *WarehouseHandler) clear(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.Store.ClearWarehouses(r.Context(), id); err != nil {
		log.Printf("clear warehouses failed: req_id=%s err=%v", obs.RequestID(r.Context()), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
