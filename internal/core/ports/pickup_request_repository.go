// Package ports defines the contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/core/domain/model/pickup"
)

// PickupRequestRepository defines the persistence contract for pickup request
// aggregates. It is the only write path to the underlying storage; status
// mutations go through UpdateWhenStatus to preserve optimistic concurrency.
type PickupRequestRepository interface {
	// Add persists a new pickup request aggregate to storage.
	// The request must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *pickup.PickupRequest) error

	// Get retrieves a pickup request aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no such record exists.
	Get(ctx context.Context, id kernel.UUID) (*pickup.PickupRequest, error)

	// UpdateWhenStatus persists changes to an existing aggregate conditionally
	// on the record still carrying the given pre-read status. When the expected
	// status is Pending the condition additionally requires a NULL agent column,
	// so two agents racing to accept the same request produce exactly one winner.
	// The loser receives a ConcurrencyConflictError and the record is untouched.
	UpdateWhenStatus(ctx context.Context, aggregate *pickup.PickupRequest, expected pickup.Status) error

	// GetAllPendingBefore retrieves all pending requests created before the
	// given cutoff. Used by the stale-request cancellation job.
	GetAllPendingBefore(ctx context.Context, cutoff time.Time) ([]*pickup.PickupRequest, error)

	// GetAllAcceptedByAgent retrieves all requests currently accepted by the
	// given agent, ordered by preferred pickup time ascending. This is the
	// input set for route optimization.
	GetAllAcceptedByAgent(ctx context.Context, agentID kernel.UUID) ([]*pickup.PickupRequest, error)
}
