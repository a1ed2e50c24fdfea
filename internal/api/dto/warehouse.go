package dto

import "encoding/json"

// WarehouseRequest is a data-entry row. Latitude and longitude are accepted
// as JSON numbers or as numeric strings, the way a form submits them.
type WarehouseRequest struct {
	Name      string          `json:"name"`
	Latitude  json.RawMessage `json:"latitude"`
	Longitude json.RawMessage `json:"longitude"`
}

type WarehouseResponse struct {
	Index     int     `json:"index"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type ListWarehousesResponse struct {
	SessionID  string              `json:"session_id"`
	Warehouses []WarehouseResponse `json:"warehouses"`
}

type AddWarehouseResponse struct {
	Message    string              `json:"message"`
	SessionID  string              `json:"session_id"`
	Warehouses []WarehouseResponse `json:"warehouses"`
}

type CreateSessionResponse struct {
	SessionID string `json:"session_id"`
}
