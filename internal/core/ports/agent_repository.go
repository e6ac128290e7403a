package ports

import (
	"context"

	"ewaste/internal/core/domain/model/agent"
	"ewaste/internal/core/domain/model/kernel"
)

// AgentRepository defines the persistence contract for collection agent
// aggregates.
type AgentRepository interface {
	// Add persists a new agent aggregate to storage.
	// The agent must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *agent.Agent) error

	// Update persists changes to an existing agent aggregate.
	// The agent must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *agent.Agent) error

	// Get retrieves an agent aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no such record exists.
	Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error)
}
