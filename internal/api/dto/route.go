package dto

type RouteRequest struct {
	Warehouses []WarehouseRequest `json:"warehouses"`
	StartIndex int                `json:"start_index"`
}

type RouteLegResponse struct {
	FromIndex  int     `json:"from_index"`
	ToIndex    int     `json:"to_index"`
	From       string  `json:"from"`
	To         string  `json:"to"`
	DistanceKm float64 `json:"distance_km"`
}

type RouteResponse struct {
	StartIndex      int                `json:"start_index"`
	Order           []string           `json:"order"`
	Indices         []int              `json:"indices"`
	Legs            []RouteLegResponse `json:"legs"`
	TotalDistanceKm float64            `json:"total_distance_km"`
}

// SessionRouteResponse carries either a route or, below two warehouses,
// an informational message and a null route.
type SessionRouteResponse struct {
	SessionID  string              `json:"session_id"`
	Warehouses []WarehouseResponse `json:"warehouses"`
	Route      *RouteResponse      `json:"route"`
	Info       string              `json:"info,omitempty"`
}
