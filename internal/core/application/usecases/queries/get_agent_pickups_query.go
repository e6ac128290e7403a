package queries

import (
	"errors"
	"time"

	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/core/domain/model/pickup"
	"ewaste/internal/pkg/guard"
)

var (
	ErrGetAgentPickupsQueryIsNotConstructed = errors.New(
		"GetAgentPickupsQuery must be created via NewGetAgentPickupsQuery constructor",
	)
	ErrStatusIsNotListable = errors.New("status must be accepted or completed")
)

// GetAgentPickupsQuery retrieves the pickup requests assigned to one agent,
// filtered by status. Accepted requests come back soonest-preferred first;
// completed requests come back most-recently-updated first.
//
// Example:
//
//	query, err := NewGetAgentPickupsQuery(agentID, pickup.Accepted)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetAgentPickupsQueryHandler(db)
//	pickups, err := handler.Handle(ctx, query)
type GetAgentPickupsQuery struct { //nolint:recvcheck //using for validation
	agentID kernel.UUID
	status  pickup.Status

	guard guard.ConstructorGuard
}

// NewGetAgentPickupsQuery creates a query for one agent's assigned pickups.
// The status must be Accepted or Completed; those are the only states in which
// a request carries an agent.
func NewGetAgentPickupsQuery(agentID kernel.UUID, status pickup.Status) (GetAgentPickupsQuery, error) {
	query := GetAgentPickupsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setAgentID(agentID),
		query.setStatus(status),
	); err != nil {
		return GetAgentPickupsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAgentPickupsQueryIsNotConstructed if validation fails.
func (q GetAgentPickupsQuery) Validate() error {
	return q.guard.Validate(ErrGetAgentPickupsQueryIsNotConstructed)
}

// AgentID returns the agent whose pickups are listed.
func (q GetAgentPickupsQuery) AgentID() kernel.UUID {
	return q.agentID
}

// Status returns the status filter, Accepted or Completed.
func (q GetAgentPickupsQuery) Status() pickup.Status {
	return q.status
}

func (q *GetAgentPickupsQuery) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	q.agentID = agentID
	return nil
}

func (q *GetAgentPickupsQuery) setStatus(status pickup.Status) error {
	if status != pickup.Accepted && status != pickup.Completed {
		return ErrStatusIsNotListable
	}

	q.status = status
	return nil
}

// GetAgentPickupsQueryResponse represents one pickup request assigned to the agent.
type GetAgentPickupsQueryResponse struct {
	ID          kernel.UUID
	Category    string
	Subtype     string
	Quantity    int
	City        string
	Street      string
	Point       *kernel.GeoPoint
	Status      pickup.Status
	PreferredAt time.Time
	UpdatedAt   time.Time
}
