package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCoordinate reports a latitude outside [-90, 90] or a
	// longitude outside [-180, 180].
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrEmptyInput reports a route request over zero points.
	ErrEmptyInput = errors.New("empty input: no points to route")

	// ErrInvalidStartIndex reports a start index outside [0, N-1].
	ErrInvalidStartIndex = errors.New("invalid start index")

	// ErrDisconnectedGraph reports that no unvisited node is reachable from
	// the current node. A graph built from valid points is complete, so this
	// only surfaces for hand-built graphs.
	ErrDisconnectedGraph = errors.New("disconnected graph")
)

// CoordinateError describes the point that failed range validation.
type CoordinateError struct {
	Index int
	Name  string
	Lat   float64
	Lon   float64
}

func (e *CoordinateError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%v: %q lat=%v lon=%v", ErrInvalidCoordinate, e.Name, e.Lat, e.Lon)
	}
	return fmt.Sprintf("%v: point %d (%q) lat=%v lon=%v", ErrInvalidCoordinate, e.Index, e.Name, e.Lat, e.Lon)
}

func (e *CoordinateError) Unwrap() error { return ErrInvalidCoordinate }
