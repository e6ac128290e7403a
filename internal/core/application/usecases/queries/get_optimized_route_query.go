package queries

import (
	"errors"

	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/core/ports"
	"ewaste/internal/pkg/guard"
)

var (
	ErrGetOptimizedRouteQueryIsNotConstructed = errors.New(
		"GetOptimizedRouteQuery must be created via NewGetOptimizedRouteQuery constructor",
	)
	ErrTripModeIsInvalid = errors.New("trip mode must be round trip or one way")
)

// GetOptimizedRouteQuery asks for an optimized visiting order over all pickups
// the agent currently has accepted. The origin is optional: when nil the
// agent's registered home base is used as the trip start.
//
// Example:
//
//	query, err := NewGetOptimizedRouteQuery(agentID, nil, ports.RoundTrip)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOptimizedRouteQueryHandler(db, solver)
//	route, err := handler.Handle(ctx, query)
//	if errors.Is(err, ports.ErrRouteOptimizationFailed) {
//	    // solver unavailable; surface "no route" to the caller
//	}
type GetOptimizedRouteQuery struct { //nolint:recvcheck //using for validation
	agentID kernel.UUID
	origin  *kernel.GeoPoint
	mode    ports.TripMode

	guard guard.ConstructorGuard
}

// NewGetOptimizedRouteQuery creates a query for an agent's optimized route.
// Validates the agent ID, the optional origin override and the trip mode.
func NewGetOptimizedRouteQuery(
	agentID kernel.UUID,
	origin *kernel.GeoPoint,
	mode ports.TripMode,
) (GetOptimizedRouteQuery, error) {
	query := GetOptimizedRouteQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setAgentID(agentID),
		query.setOrigin(origin),
		query.setMode(mode),
	); err != nil {
		return GetOptimizedRouteQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOptimizedRouteQueryIsNotConstructed if validation fails.
func (q GetOptimizedRouteQuery) Validate() error {
	return q.guard.Validate(ErrGetOptimizedRouteQueryIsNotConstructed)
}

// AgentID returns the agent whose route is optimized.
func (q GetOptimizedRouteQuery) AgentID() kernel.UUID {
	return q.agentID
}

// Origin returns the optional trip start override, nil to use the agent's home base.
func (q GetOptimizedRouteQuery) Origin() *kernel.GeoPoint {
	return q.origin
}

// Mode returns how the solver should close the trip.
func (q GetOptimizedRouteQuery) Mode() ports.TripMode {
	return q.mode
}

func (q *GetOptimizedRouteQuery) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	q.agentID = agentID
	return nil
}

func (q *GetOptimizedRouteQuery) setOrigin(origin *kernel.GeoPoint) error {
	if origin != nil {
		if err := origin.Validate(); err != nil {
			return err
		}
	}

	q.origin = origin
	return nil
}

func (q *GetOptimizedRouteQuery) setMode(mode ports.TripMode) error {
	if mode != ports.RoundTrip && mode != ports.OneWay {
		return ErrTripModeIsInvalid
	}

	q.mode = mode
	return nil
}

// RouteStop is one pickup visit within an optimized route.
type RouteStop struct {
	RequestID kernel.UUID
	Point     kernel.GeoPoint
}

// GetOptimizedRouteQueryResponse represents the optimized trip for an agent.
// Stops appear in the solver's visiting order; Skipped lists accepted requests
// that carry no coordinates and therefore cannot be routed.
type GetOptimizedRouteQueryResponse struct {
	Origin          kernel.GeoPoint
	Stops           []RouteStop
	Skipped         []kernel.UUID
	DistanceMeters  float64
	DurationSeconds float64
	Geometry        string
}
