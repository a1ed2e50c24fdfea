package services

import (
	"math"
	"testing"
	"warehouse-route-service/internal/domain"
)

// referenceKm is an independent haversine on a sphere of radius 6378.137 km,
// used to check the distances reported by the graph and the route.
func referenceKm(a, b domain.Coordinates) float64 {
	const radiusKm = 6378.137
	rad := func(d float64) float64 { return d * math.Pi / 180 }

	dLat := rad(b.Lat - a.Lat)
	dLon := rad(b.Lon - a.Lon)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(a.Lat))*math.Cos(rad(b.Lat))*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * radiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

func wh(name string, lat, lon float64) domain.Warehouse {
	return domain.Warehouse{Name: name, Coordinates: domain.Coordinates{Lat: lat, Lon: lon}}
}

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// assertClosedTour checks the structural invariants every route must hold.
func assertClosedTour(t *testing.T, points []domain.Warehouse, start int, r *domain.Route) {
	t.Helper()

	n := len(points)
	if len(r.Indices) != n+1 || len(r.Order) != n+1 {
		t.Fatalf("route length = %d/%d, want %d", len(r.Indices), len(r.Order), n+1)
	}
	if r.Indices[0] != start || r.Indices[n] != start {
		t.Fatalf("route %v must start and end at %d", r.Indices, start)
	}
	if r.StartIndex != start {
		t.Fatalf("StartIndex = %d, want %d", r.StartIndex, start)
	}

	seen := make([]bool, n)
	for _, idx := range r.Indices[:n] {
		if idx < 0 || idx >= n {
			t.Fatalf("index %d out of range in %v", idx, r.Indices)
		}
		if seen[idx] {
			t.Fatalf("index %d visited twice in %v", idx, r.Indices)
		}
		seen[idx] = true
	}

	for i, idx := range r.Indices {
		if r.Order[i] != points[idx].Name {
			t.Fatalf("order[%d] = %q, want %q", i, r.Order[i], points[idx].Name)
		}
	}

	if len(r.Legs) != n {
		t.Fatalf("legs = %d, want %d", len(r.Legs), n)
	}

	sum := 0.0
	for i, leg := range r.Legs {
		if leg.FromIndex != r.Indices[i] || leg.ToIndex != r.Indices[i+1] {
			t.Fatalf("leg %d = %d->%d, want %d->%d", i, leg.FromIndex, leg.ToIndex, r.Indices[i], r.Indices[i+1])
		}

		want := referenceKm(points[leg.FromIndex].Coordinates, points[leg.ToIndex].Coordinates)
		if !approxEqual(leg.DistanceKm, want, 1e-6) {
			t.Fatalf("leg %d distance = %f, want %f", i, leg.DistanceKm, want)
		}
		sum += leg.DistanceKm
	}

	if !approxEqual(r.TotalDistanceKm, sum, 1e-9) {
		t.Fatalf("total = %f, want sum of legs %f", r.TotalDistanceKm, sum)
	}
}
