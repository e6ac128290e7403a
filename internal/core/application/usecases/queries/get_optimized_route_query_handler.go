package queries

import (
	"context"
	"fmt"

	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/core/ports"
)

// GetOptimizedRouteQueryHandler composes the read side with the external route
// solver. It collects the agent's accepted pickups, hands the routable ones to
// the solver and returns the stops in the solver's visiting order - the order
// is never re-sorted locally.
//
// With no routable stops the handler returns an empty route without invoking
// the solver at all.
type GetOptimizedRouteQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	solver     ports.RouteSolver
}

// NewGetOptimizedRouteQueryHandler creates a handler for route optimization queries.
// Requires a unit of work factory for repository access and a RouteSolver
// implementation.
func NewGetOptimizedRouteQueryHandler(
	uowFactory ports.UnitOfWorkFactory,
	solver ports.RouteSolver,
) GetOptimizedRouteQueryHandler {
	return GetOptimizedRouteQueryHandler{uowFactory: uowFactory, solver: solver}
}

// Handle executes the route optimization query.
// Resolves the trip origin, loads the agent's accepted pickups, splits them
// into routable stops and skipped (coordinate-less) requests, and asks the
// solver for the visiting order. Solver failures surface wrapped in
// ports.ErrRouteOptimizationFailed.
func (h GetOptimizedRouteQueryHandler) Handle(
	ctx context.Context,
	query GetOptimizedRouteQuery,
) (GetOptimizedRouteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOptimizedRouteQueryResponse{}, err
	}

	uow := h.uowFactory.Create()

	origin, err := h.resolveOrigin(ctx, uow, query)
	if err != nil {
		return GetOptimizedRouteQueryResponse{}, err
	}

	stops, skipped, err := h.loadAcceptedStops(ctx, uow, query.AgentID())
	if err != nil {
		return GetOptimizedRouteQueryResponse{}, err
	}

	response := GetOptimizedRouteQueryResponse{
		Origin:  origin,
		Stops:   stops,
		Skipped: skipped,
	}

	if len(stops) == 0 {
		return response, nil
	}

	waypoints := make([]kernel.GeoPoint, 0, len(stops)+1)
	waypoints = append(waypoints, origin)
	for _, stop := range stops {
		waypoints = append(waypoints, stop.Point)
	}

	solved, err := h.solver.Optimize(ctx, waypoints, query.Mode())
	if err != nil {
		return GetOptimizedRouteQueryResponse{}, err
	}

	ordered, err := orderByVisit(stops, solved.VisitOrder)
	if err != nil {
		return GetOptimizedRouteQueryResponse{}, err
	}

	response.Stops = ordered
	response.DistanceMeters = solved.DistanceMeters
	response.DurationSeconds = solved.DurationSeconds
	response.Geometry = solved.Geometry
	return response, nil
}

// resolveOrigin picks the trip start: the explicit override when given,
// otherwise the agent's registered home base.
func (h GetOptimizedRouteQueryHandler) resolveOrigin(
	ctx context.Context,
	uow ports.UnitOfWork,
	query GetOptimizedRouteQuery,
) (kernel.GeoPoint, error) {
	if origin := query.Origin(); origin != nil {
		return *origin, nil
	}

	worker, err := uow.AgentRepository().Get(ctx, query.AgentID())
	if err != nil {
		return kernel.GeoPoint{}, err
	}

	return worker.Home(), nil
}

// loadAcceptedStops reads the agent's accepted pickups, preferred time ascending,
// and splits them into routable stops and skipped coordinate-less request IDs.
func (h GetOptimizedRouteQueryHandler) loadAcceptedStops(
	ctx context.Context,
	uow ports.UnitOfWork,
	agentID kernel.UUID,
) ([]RouteStop, []kernel.UUID, error) {
	requests, err := uow.PickupRequestRepository().GetAllAcceptedByAgent(ctx, agentID)
	if err != nil {
		return nil, nil, err
	}

	stops := make([]RouteStop, 0, len(requests))
	skipped := make([]kernel.UUID, 0)

	for _, request := range requests {
		if !request.IsRoutable() {
			skipped = append(skipped, request.ID())
			continue
		}

		stops = append(stops, RouteStop{RequestID: request.ID(), Point: *request.Point()})
	}

	return stops, skipped, nil
}

// orderByVisit rearranges stops into the solver's visiting sequence.
// visitOrder[0] is the origin and must map the remaining waypoints 1..n onto
// visiting positions 1..n; anything else is a malformed solver answer.
func orderByVisit(stops []RouteStop, visitOrder []int) ([]RouteStop, error) {
	if len(visitOrder) != len(stops)+1 {
		return nil, fmt.Errorf("%w: solver returned %d waypoints for %d inputs",
			ports.ErrRouteOptimizationFailed, len(visitOrder), len(stops)+1)
	}

	ordered := make([]RouteStop, len(stops))
	seen := make([]bool, len(stops))
	for i, stop := range stops {
		position := visitOrder[i+1]
		if position < 1 || position > len(stops) || seen[position-1] {
			return nil, fmt.Errorf("%w: solver returned invalid visiting position %d",
				ports.ErrRouteOptimizationFailed, position)
		}

		seen[position-1] = true
		ordered[position-1] = stop
	}

	return ordered, nil
}
