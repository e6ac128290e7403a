// Package agentrepo provides data transfer objects and mapping functions for
// collection agent persistence.
package agentrepo

import (
	"ewaste/internal/core/domain/model/agent"
	"ewaste/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AgentDTO represents the database structure for persisting agent aggregates.
type AgentDTO struct {
	ID     uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name   string
	Phone  string
	Home   GeoPointDTO `gorm:"embedded;embeddedPrefix:home_"`
	Active bool
}

// TableName specifies the database table name for agent entities.
// Overrides GORM's default naming convention to use "agents".
func (AgentDTO) TableName() string {
	return "agents"
}

// GeoPointDTO represents the embedded home base coordinates within the agent table.
type GeoPointDTO struct {
	Lon float64
	Lat float64
}

// fromDomain converts an agent domain aggregate to its database representation.
func fromDomain(aggregate *agent.Agent) AgentDTO {
	return AgentDTO{
		ID:    aggregate.ID().Bytes(),
		Name:  aggregate.Name(),
		Phone: aggregate.Phone(),
		Home: GeoPointDTO{
			Lon: aggregate.Home().Lon(),
			Lat: aggregate.Home().Lat(),
		},
		Active: aggregate.IsActive(),
	}
}

// toDomain converts a database DTO to an agent domain aggregate using RestoreAgent.
func toDomain(dto AgentDTO) (*agent.Agent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	home, err := kernel.NewGeoPoint(dto.Home.Lon, dto.Home.Lat)
	if err != nil {
		return nil, err
	}

	return agent.RestoreAgent(id, dto.Name, dto.Phone, home, dto.Active)
}
