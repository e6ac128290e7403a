// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"ewaste/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// PickupRepoFactory provides access to the pickup request repository within a transaction.
	PickupRepoFactory interface {
		PickupRequestRepository() ports.PickupRequestRepository
	}

	// AgentRepoFactory provides access to the agent repository within a transaction.
	AgentRepoFactory interface {
		AgentRepository() ports.AgentRepository
	}

	// PickupUoW manages transactions for pickup-request-only operations.
	// Used when commands only modify pickup request aggregates.
	PickupUoW interface {
		TxManager
		PickupRepoFactory
	}

	// PickupUoWFactory creates new pickup request unit of work instances.
	PickupUoWFactory interface {
		Create() PickupUoW
	}

	// AgentUoW manages transactions for agent-only operations.
	// Used when commands only modify agent aggregates.
	AgentUoW interface {
		TxManager
		AgentRepoFactory
	}

	// AgentUoWFactory creates new agent unit of work instances.
	AgentUoWFactory interface {
		Create() AgentUoW
	}

	// UoW manages transactions across both pickup request and agent aggregates.
	// Used for commands that coordinate changes between multiple aggregate types.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   pickupRepo := uow.PickupRequestRepository()
	//   agentRepo := uow.AgentRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		AgentRepoFactory
		PickupRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
