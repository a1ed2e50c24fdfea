package domain

// RouteLeg is one segment of a closed route between two consecutive stops.
type RouteLeg struct {
	FromIndex  int
	ToIndex    int
	From       string
	To         string
	DistanceKm float64
}

// Represents a closed nearest-neighbor tour over a set of warehouses.
// For N points, Indices and Order have length N+1 and start and end at the
// start point; Legs has length N. A single point yields one zero-length leg.
// It is immutable planning data and contains no side effects.
type Route struct {
	StartIndex      int
	Indices         []int
	Order           []string
	Legs            []RouteLeg
	TotalDistanceKm float64
}

// RoutePlan is the result of planning a route for a session working set.
// Route is nil when fewer than two warehouses are available; Info then
// carries a message for the caller to display.
type RoutePlan struct {
	SessionID  string
	Warehouses []Warehouse
	Route      *Route
	Info       string
}
