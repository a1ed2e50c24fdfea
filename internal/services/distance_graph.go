package services

import (
	"fmt"
	"math"
	"warehouse-route-service/internal/domain"
)

// DistanceGraph is a complete undirected graph over an ordered set of
// warehouses. Node i is points[i]; the weight of edge {i, j} is the
// great-circle distance between the two points in kilometers.
//
// A DistanceGraph is built fresh for every route request and never mutated.
type DistanceGraph struct {
	points  []domain.Warehouse
	weights [][]float64
}

// BuildGraph computes all pairwise distances for points.
//
// Every point must carry a latitude in [-90, 90] and a longitude in
// [-180, 180]; the first offending point is reported as a
// *domain.CoordinateError wrapping domain.ErrInvalidCoordinate.
// Zero points yield an empty graph and one point a graph without edges.
func BuildGraph(points []domain.Warehouse) (*DistanceGraph, error) {
	for i, p := range points {
		if err := p.Validate(i); err != nil {
			return nil, fmt.Errorf("build graph: %w", err)
		}
	}

	n := len(points)
	g := &DistanceGraph{
		points:  make([]domain.Warehouse, n),
		weights: make([][]float64, n),
	}
	copy(g.points, points)

	for i := range g.weights {
		g.weights[i] = make([]float64, n)
	}

	// Each pair is computed once and mirrored so weight(a,b) == weight(b,a) exactly.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := domain.GreatCircleKm(points[i].Coordinates, points[j].Coordinates)
			g.weights[i][j] = d
			g.weights[j][i] = d
		}
	}

	return g, nil
}

// Len returns the number of nodes.
func (g *DistanceGraph) Len() int {
	if g == nil {
		return 0
	}
	return len(g.points)
}

// Point returns the warehouse backing node i.
func (g *DistanceGraph) Point(i int) domain.Warehouse { return g.points[i] }

// Weight returns the edge weight between nodes i and j in kilometers.
// ok is false for self-loops, out-of-range indices and missing edges.
func (g *DistanceGraph) Weight(i, j int) (w float64, ok bool) {
	n := g.Len()
	if i == j || i < 0 || j < 0 || i >= n || j >= n {
		return 0, false
	}

	w = g.weights[i][j]
	if math.IsInf(w, 1) || math.IsNaN(w) {
		return 0, false
	}
	return w, true
}
