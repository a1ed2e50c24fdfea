package services

import (
	"fmt"
	"warehouse-route-service/internal/domain"
)

// ComputeRoute builds a closed tour over g using a greedy nearest-neighbor
// traversal that starts and ends at node start.
//
// At each step the unvisited node with the smallest edge weight from the
// current node is chosen. When several candidates share the minimum weight
// (including exact float ties such as duplicate coordinates) the lowest node
// index wins, so results are reproducible.
//
// The traversal is O(N²) with no backtracking and gives no optimality
// guarantee: it does not attempt 2-opt or any other improvement.
//
// Errors: domain.ErrEmptyInput for an empty graph, domain.ErrInvalidStartIndex
// when start is outside [0, N-1], domain.ErrDisconnectedGraph when no
// unvisited node is reachable from the current node.
func ComputeRoute(g *DistanceGraph, start int) (*domain.Route, error) {
	n := g.Len()
	if n == 0 {
		return nil, fmt.Errorf("compute route: %w", domain.ErrEmptyInput)
	}

	if start < 0 || start >= n {
		return nil, fmt.Errorf("compute route: start=%d with %d points: %w", start, n, domain.ErrInvalidStartIndex)
	}

	visited := make([]bool, n)
	indices := make([]int, 0, n+1)
	legs := make([]domain.RouteLeg, 0, n)

	visited[start] = true
	indices = append(indices, start)
	current := start

	for len(indices) < n {
		best := -1
		var bestDist float64

		// Ascending scan with strict less-than keeps the lowest index on ties.
		for cand := 0; cand < n; cand++ {
			if visited[cand] {
				continue
			}

			w, ok := g.Weight(current, cand)
			if !ok {
				continue
			}

			if best == -1 || w < bestDist {
				best = cand
				bestDist = w
			}
		}

		if best == -1 {
			return nil, fmt.Errorf(
				"compute route: no unvisited node reachable from %d (%q) after %d of %d: %w",
				current, g.Point(current).Name, len(indices), n, domain.ErrDisconnectedGraph,
			)
		}

		legs = append(legs, newLeg(g, current, best, bestDist))
		visited[best] = true
		indices = append(indices, best)
		current = best
	}

	// Close the loop back to the start.
	closing := 0.0
	if n > 1 {
		w, ok := g.Weight(current, start)
		if !ok {
			return nil, fmt.Errorf(
				"compute route: no return edge from %d (%q) to start %d: %w",
				current, g.Point(current).Name, start, domain.ErrDisconnectedGraph,
			)
		}
		closing = w
	}
	legs = append(legs, newLeg(g, current, start, closing))
	indices = append(indices, start)

	order := make([]string, len(indices))
	for i, idx := range indices {
		order[i] = g.Point(idx).Name
	}

	total := 0.0
	for _, l := range legs {
		total += l.DistanceKm
	}

	return &domain.Route{
		StartIndex:      start,
		Indices:         indices,
		Order:           order,
		Legs:            legs,
		TotalDistanceKm: total,
	}, nil
}

func newLeg(g *DistanceGraph, from, to int, km float64) domain.RouteLeg {
	return domain.RouteLeg{
		FromIndex:  from,
		ToIndex:    to,
		From:       g.Point(from).Name,
		To:         g.Point(to).Name,
		DistanceKm: km,
	}
}
