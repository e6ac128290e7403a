// Package queries contains read-only operations over the persisted state.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly and return flat read models instead of domain aggregates.
package queries

import (
	"errors"
	"time"

	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/pkg/guard"
)

var (
	ErrGetAvailablePickupsQueryIsNotConstructed = errors.New(
		"GetAvailablePickupsQuery must be created via NewGetAvailablePickupsQuery constructor",
	)
)

// GetAvailablePickupsQuery retrieves all pickup requests open for claiming.
// Returns pending requests in creation order so agents see the oldest first.
//
// Example:
//
//	query := NewGetAvailablePickupsQuery()
//	handler := NewGetAvailablePickupsQueryHandler(db)
//
//	pickups, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list available pickups: %w", err)
//	}
//	fmt.Printf("%d pickups waiting for an agent\n", len(pickups))
type GetAvailablePickupsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailablePickupsQuery creates a query to retrieve claimable pickup requests.
// This is a parameterless query that fetches all pending requests.
func NewGetAvailablePickupsQuery() GetAvailablePickupsQuery {
	return GetAvailablePickupsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAvailablePickupsQueryIsNotConstructed if validation fails.
func (q GetAvailablePickupsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailablePickupsQueryIsNotConstructed)
}

// GetAvailablePickupsQueryResponse represents one claimable pickup request.
// Point is nil when the requester supplied no coordinates.
type GetAvailablePickupsQueryResponse struct {
	ID          kernel.UUID
	Category    string
	Subtype     string
	Quantity    int
	City        string
	Point       *kernel.GeoPoint
	PreferredAt time.Time
	CreatedAt   time.Time
}
