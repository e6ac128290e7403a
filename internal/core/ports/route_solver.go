package ports

import (
	"context"
	"errors"

	"ewaste/internal/core/domain/model/kernel"
)

// ErrRouteOptimizationFailed is returned when the external route optimization
// solver fails, times out, or returns a malformed response. Callers must treat
// the absence of a route as "no route" - the core never synthesizes a fallback
// visiting order.
var ErrRouteOptimizationFailed = errors.New("route optimization failed")

// TripMode selects how the solver closes the optimized trip.
type TripMode int

const (
	// RoundTrip optimizes a trip that returns to the first waypoint.
	RoundTrip TripMode = iota

	// OneWay optimizes an open trip that ends at the last visited stop.
	OneWay
)

// SolvedTrip is the solver's answer for one optimization call.
type SolvedTrip struct {
	// VisitOrder maps each input waypoint index to its position in the
	// optimized visiting sequence. VisitOrder[0] is always 0 because the
	// first input waypoint is the fixed trip origin.
	VisitOrder []int

	// DistanceMeters is the total trip distance.
	DistanceMeters float64

	// DurationSeconds is the total estimated travel time.
	DurationSeconds float64

	// Geometry is the solver's encoded route geometry (e.g. a polyline).
	// Passed through untouched for map rendering by upper layers.
	Geometry string
}

// RouteSolver is the pluggable contract for an external multi-stop route
// optimization service. Any compliant optimizer can back it without touching
// the callers.
type RouteSolver interface {
	// Optimize orders the given waypoints into an efficient trip.
	// The first waypoint is the fixed trip origin (the agent's start
	// location); the remaining waypoints are visited in whatever order the
	// solver decides. Implementations must honor ctx cancellation and bound
	// the call with a timeout, and must return an error wrapping
	// ErrRouteOptimizationFailed on any solver, network or decoding failure.
	//
	// At least two waypoints are required; callers are expected to
	// short-circuit trivial inputs before invoking the solver.
	Optimize(ctx context.Context, waypoints []kernel.GeoPoint, mode TripMode) (SolvedTrip, error)
}
