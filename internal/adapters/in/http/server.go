package http

import (
	"errors"
	"net/http"

	"ewaste/internal/core/application/usecases/commands"
	"ewaste/internal/core/application/usecases/queries"
	"ewaste/internal/core/domain/model/agent"
	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/core/domain/model/pickup"
	"ewaste/internal/core/ports"
	"ewaste/internal/generated/servers"
	"ewaste/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createPickupHandler       commands.CreatePickupRequestCommandHandler
	acceptPickupHandler       commands.AcceptPickupCommandHandler
	completePickupHandler     commands.CompletePickupCommandHandler
	cancelPickupHandler       commands.CancelPickupCommandHandler
	registerAgentHandler      commands.RegisterAgentCommandHandler
	setAgentActivationHandler commands.SetAgentActivationCommandHandler

	// Query handlers
	getAvailablePickupsHandler queries.GetAvailablePickupsQueryHandler
	getAgentPickupsHandler     queries.GetAgentPickupsQueryHandler
	getOptimizedRouteHandler   queries.GetOptimizedRouteQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createPickupHandler commands.CreatePickupRequestCommandHandler,
	acceptPickupHandler commands.AcceptPickupCommandHandler,
	completePickupHandler commands.CompletePickupCommandHandler,
	cancelPickupHandler commands.CancelPickupCommandHandler,
	registerAgentHandler commands.RegisterAgentCommandHandler,
	setAgentActivationHandler commands.SetAgentActivationCommandHandler,
	getAvailablePickupsHandler queries.GetAvailablePickupsQueryHandler,
	getAgentPickupsHandler queries.GetAgentPickupsQueryHandler,
	getOptimizedRouteHandler queries.GetOptimizedRouteQueryHandler,
) *Server {
	return &Server{
		createPickupHandler:        createPickupHandler,
		acceptPickupHandler:        acceptPickupHandler,
		completePickupHandler:      completePickupHandler,
		cancelPickupHandler:        cancelPickupHandler,
		registerAgentHandler:       registerAgentHandler,
		setAgentActivationHandler:  setAgentActivationHandler,
		getAvailablePickupsHandler: getAvailablePickupsHandler,
		getAgentPickupsHandler:     getAgentPickupsHandler,
		getOptimizedRouteHandler:   getOptimizedRouteHandler,
	}
}

// CreatePickup handles POST /api/v1/pickups - submits a new pickup request.
func (s *Server) CreatePickup(ctx echo.Context) error {
	var newPickup servers.NewPickup
	if err := ctx.Bind(&newPickup); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	requesterID, err := kernel.UUIDFromBytes(newPickup.RequesterId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid requester ID")
	}

	contact, err := pickup.NewContact(
		newPickup.Contact.FullName,
		newPickup.Contact.Phone,
		newPickup.Contact.Street,
		newPickup.Contact.City,
		newPickup.Contact.PostalCode,
	)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid contact data: "+err.Error())
	}

	var point *kernel.GeoPoint
	if newPickup.Location != nil {
		p, pointErr := kernel.NewGeoPoint(newPickup.Location.Lon, newPickup.Location.Lat)
		if pointErr != nil {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid coordinates: "+pointErr.Error())
		}
		point = &p
	}

	subtype := ""
	if newPickup.Subtype != nil {
		subtype = *newPickup.Subtype
	}

	cmd, err := commands.NewCreatePickupRequestCommand(
		kernel.NewUUID(),
		requesterID,
		contact,
		point,
		newPickup.Category,
		subtype,
		newPickup.Quantity,
		newPickup.PreferredAt,
	)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid pickup data: "+err.Error())
	}

	request, err := s.createPickupHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to create pickup request")
	}

	return ctx.JSON(http.StatusCreated, pickupFromDomain(request))
}

// GetAvailablePickups handles GET /api/v1/pickups/available - lists unclaimed
// pickup requests, oldest first.
func (s *Server) GetAvailablePickups(ctx echo.Context) error {
	query := queries.NewGetAvailablePickupsQuery()

	pickups, err := s.getAvailablePickupsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve pickup requests")
	}

	response := make([]servers.Pickup, len(pickups))
	for i, p := range pickups {
		response[i] = servers.Pickup{
			Id:          p.ID.Bytes(),
			Category:    p.Category,
			Subtype:     optionalString(p.Subtype),
			Quantity:    p.Quantity,
			City:        p.City,
			Location:    geoPointFromDomain(p.Point),
			PreferredAt: p.PreferredAt,
			CreatedAt:   p.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AcceptPickup handles POST /api/v1/pickups/{pickupId}/accept - claims a
// pending pickup for an agent.
func (s *Server) AcceptPickup(ctx echo.Context, pickupId openapi_types.UUID) error {
	requestID, agentID, err := s.bindAgentAction(ctx, pickupId)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewAcceptPickupCommand(requestID, agentID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid accept data: "+err.Error())
	}

	request, err := s.acceptPickupHandler.Handle(ctx.Request().Context(), cmd)
	switch {
	case err == nil:
		return ctx.JSON(http.StatusOK, pickupFromDomain(request))
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorResponse(ctx, http.StatusNotFound, "Pickup request or agent not found")
	case errors.Is(err, errs.ErrConcurrencyConflict):
		return errorResponse(ctx, http.StatusConflict, "Pickup request is already claimed")
	case errors.Is(err, pickup.ErrStatusIsNotPending), errors.Is(err, pickup.ErrStatusIsTerminal):
		return errorResponse(ctx, http.StatusConflict, "Pickup request is not claimable")
	case errors.Is(err, agent.ErrAgentIsInactive):
		return errorResponse(ctx, http.StatusConflict, "Agent is not active")
	default:
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to accept pickup request")
	}
}

// CompletePickup handles POST /api/v1/pickups/{pickupId}/complete - marks an
// accepted pickup as completed by its assigned agent.
func (s *Server) CompletePickup(ctx echo.Context, pickupId openapi_types.UUID) error {
	requestID, agentID, err := s.bindAgentAction(ctx, pickupId)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewCompletePickupCommand(requestID, agentID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid complete data: "+err.Error())
	}

	request, err := s.completePickupHandler.Handle(ctx.Request().Context(), cmd)
	switch {
	case err == nil:
		return ctx.JSON(http.StatusOK, pickupFromDomain(request))
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorResponse(ctx, http.StatusNotFound, "Pickup request not found")
	case errors.Is(err, errs.ErrActionForbidden):
		return errorResponse(ctx, http.StatusForbidden, "Pickup request belongs to another agent")
	case errors.Is(err, pickup.ErrStatusIsNotAccepted), errors.Is(err, pickup.ErrStatusIsTerminal):
		return errorResponse(ctx, http.StatusConflict, "Pickup request is not completable")
	case errors.Is(err, errs.ErrConcurrencyConflict):
		return errorResponse(ctx, http.StatusConflict, "Pickup request changed concurrently")
	default:
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to complete pickup request")
	}
}

// CancelPickup handles POST /api/v1/pickups/{pickupId}/cancel - administratively
// cancels a pickup request.
func (s *Server) CancelPickup(ctx echo.Context, pickupId openapi_types.UUID) error {
	requestID, err := kernel.UUIDFromBytes(pickupId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid pickup ID")
	}

	cmd, err := commands.NewCancelPickupCommand(requestID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid cancel data: "+err.Error())
	}

	request, err := s.cancelPickupHandler.Handle(ctx.Request().Context(), cmd)
	switch {
	case err == nil:
		return ctx.JSON(http.StatusOK, pickupFromDomain(request))
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorResponse(ctx, http.StatusNotFound, "Pickup request not found")
	case errors.Is(err, pickup.ErrStatusIsTerminal):
		return errorResponse(ctx, http.StatusConflict, "Pickup request is already finished")
	case errors.Is(err, errs.ErrConcurrencyConflict):
		return errorResponse(ctx, http.StatusConflict, "Pickup request changed concurrently")
	default:
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to cancel pickup request")
	}
}

// RegisterAgent handles POST /api/v1/agents - registers a collection agent.
func (s *Server) RegisterAgent(ctx echo.Context) error {
	var newAgent servers.NewAgent
	if err := ctx.Bind(&newAgent); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	home, err := kernel.NewGeoPoint(newAgent.Home.Lon, newAgent.Home.Lat)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid home coordinates: "+err.Error())
	}

	cmd, err := commands.NewRegisterAgentCommand(kernel.NewUUID(), newAgent.Name, newAgent.Phone, home)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid agent data: "+err.Error())
	}

	if handleErr := s.registerAgentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to register agent")
	}

	return ctx.NoContent(http.StatusCreated)
}

// SetAgentActivation handles PUT /api/v1/agents/{agentId}/activation - flips an
// agent's activation flag.
func (s *Server) SetAgentActivation(ctx echo.Context, agentId openapi_types.UUID) error {
	agentID, err := kernel.UUIDFromBytes(agentId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid agent ID")
	}

	var activation servers.AgentActivation
	if err = ctx.Bind(&activation); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewSetAgentActivationCommand(agentID, activation.Active)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid activation data: "+err.Error())
	}

	err = s.setAgentActivationHandler.Handle(ctx.Request().Context(), cmd)
	switch {
	case err == nil:
		return ctx.NoContent(http.StatusNoContent)
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorResponse(ctx, http.StatusNotFound, "Agent not found")
	default:
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to update agent activation")
	}
}

// GetAgentPickups handles GET /api/v1/agents/{agentId}/pickups - lists an
// agent's accepted or completed pickups.
func (s *Server) GetAgentPickups(
	ctx echo.Context,
	agentId openapi_types.UUID,
	params servers.GetAgentPickupsParams,
) error {
	agentID, err := kernel.UUIDFromBytes(agentId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid agent ID")
	}

	status, err := pickup.StatusFromString(string(params.Status))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Unsupported status filter")
	}

	query, err := queries.NewGetAgentPickupsQuery(agentID, status)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Unsupported status filter")
	}

	pickups, err := s.getAgentPickupsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve pickup requests")
	}

	response := make([]servers.AgentPickup, len(pickups))
	for i, p := range pickups {
		response[i] = servers.AgentPickup{
			Id:          p.ID.Bytes(),
			Category:    p.Category,
			Subtype:     optionalString(p.Subtype),
			Quantity:    p.Quantity,
			Street:      p.Street,
			City:        p.City,
			Status:      p.Status.String(),
			Location:    geoPointFromDomain(p.Point),
			PreferredAt: p.PreferredAt,
			UpdatedAt:   p.UpdatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOptimizedRoute handles GET /api/v1/agents/{agentId}/route - optimizes the
// visiting order over the agent's accepted pickups.
func (s *Server) GetOptimizedRoute(
	ctx echo.Context,
	agentId openapi_types.UUID,
	params servers.GetOptimizedRouteParams,
) error {
	agentID, err := kernel.UUIDFromBytes(agentId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid agent ID")
	}

	mode := ports.RoundTrip
	if params.Roundtrip != nil && !*params.Roundtrip {
		mode = ports.OneWay
	}

	var origin *kernel.GeoPoint
	if params.OriginLon != nil || params.OriginLat != nil {
		if params.OriginLon == nil || params.OriginLat == nil {
			return errorResponse(ctx, http.StatusBadRequest, "Origin requires both originLon and originLat")
		}
		p, pointErr := kernel.NewGeoPoint(*params.OriginLon, *params.OriginLat)
		if pointErr != nil {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid origin coordinates: "+pointErr.Error())
		}
		origin = &p
	}

	query, err := queries.NewGetOptimizedRouteQuery(agentID, origin, mode)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid route query: "+err.Error())
	}

	route, err := s.getOptimizedRouteHandler.Handle(ctx.Request().Context(), query)
	switch {
	case err == nil:
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorResponse(ctx, http.StatusNotFound, "Agent not found")
	case errors.Is(err, ports.ErrRouteOptimizationFailed):
		return errorResponse(ctx, http.StatusBadGateway, "Route optimization is unavailable")
	default:
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to optimize route")
	}

	stops := make([]servers.RouteStop, len(route.Stops))
	for i, stop := range route.Stops {
		stops[i] = servers.RouteStop{
			PickupId: stop.RequestID.Bytes(),
			Location: servers.GeoPoint{Lon: stop.Point.Lon(), Lat: stop.Point.Lat()},
		}
	}

	skipped := make([]openapi_types.UUID, len(route.Skipped))
	for i, id := range route.Skipped {
		skipped[i] = id.Bytes()
	}

	return ctx.JSON(http.StatusOK, servers.Route{
		Origin:          servers.GeoPoint{Lon: route.Origin.Lon(), Lat: route.Origin.Lat()},
		Stops:           stops,
		Skipped:         skipped,
		DistanceMeters:  route.DistanceMeters,
		DurationSeconds: route.DurationSeconds,
		Geometry:        optionalString(route.Geometry),
	})
}

// bindAgentAction extracts the pickup ID from the path and the acting agent
// from the request body.
func (s *Server) bindAgentAction(
	ctx echo.Context,
	pickupId openapi_types.UUID,
) (kernel.UUID, kernel.UUID, error) {
	requestID, err := kernel.UUIDFromBytes(pickupId[:])
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errors.New("invalid pickup ID")
	}

	var action servers.AgentAction
	if err = ctx.Bind(&action); err != nil {
		return kernel.UUID{}, kernel.UUID{}, errors.New("invalid request body")
	}

	agentID, err := kernel.UUIDFromBytes(action.AgentId[:])
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errors.New("invalid agent ID")
	}

	return requestID, agentID, nil
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}

func pickupFromDomain(request *pickup.PickupRequest) servers.Pickup {
	return servers.Pickup{
		Id:          request.ID().Bytes(),
		Category:    request.Category(),
		Subtype:     optionalString(request.Subtype()),
		Quantity:    request.Quantity(),
		City:        request.Contact().City(),
		Location:    geoPointFromDomain(request.Point()),
		PreferredAt: request.PreferredAt(),
		CreatedAt:   request.CreatedAt(),
	}
}

func geoPointFromDomain(point *kernel.GeoPoint) *servers.GeoPoint {
	if point == nil {
		return nil
	}

	return &servers.GeoPoint{Lon: point.Lon(), Lat: point.Lat()}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
