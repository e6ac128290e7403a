// Package pickuprepo provides data transfer objects and mapping functions for
// pickup request persistence. This package implements the repository pattern for
// the pickup request aggregate, handling the conversion between domain entities
// and database representations.
package pickuprepo

import (
	"time"

	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/core/domain/model/pickup"

	"github.com/google/uuid"
)

// PickupRequestDTO represents the database structure for persisting pickup
// request aggregates. Indexed by status and agent assignment because those are
// the two access paths of the read side (available listings and agent listings).
type PickupRequestDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RequesterID uuid.UUID  `gorm:"type:uuid;index"`
	Contact     ContactDTO `gorm:"embedded;embeddedPrefix:contact_"`
	Lon         *float64
	Lat         *float64
	Category    string
	Subtype     string
	Quantity    int
	PreferredAt time.Time
	Status      int        `gorm:"index"`
	AgentID     *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time  `gorm:"index"`
	UpdatedAt   time.Time
}

// TableName specifies the database table name for pickup request entities.
// Overrides GORM's default naming convention to use "pickup_requests".
func (PickupRequestDTO) TableName() string {
	return "pickup_requests"
}

// ContactDTO represents the embedded requester contact columns within the
// pickup request table.
type ContactDTO struct {
	FullName   string
	Phone      string
	Street     string
	City       string
	PostalCode string
}

// fromDomain converts a pickup request domain aggregate to its database
// representation. Coordinates and agent assignment map to nullable columns.
func fromDomain(request *pickup.PickupRequest) PickupRequestDTO {
	var lon, lat *float64
	if point := request.Point(); point != nil {
		lonVal, latVal := point.Lon(), point.Lat()
		lon, lat = &lonVal, &latVal
	}

	var agentID *uuid.UUID
	if id := request.Agent(); id != nil {
		raw := id.Bytes()
		agentID = &raw
	}

	return PickupRequestDTO{
		ID:          request.ID().Bytes(),
		RequesterID: request.RequesterID().Bytes(),
		Contact: ContactDTO{
			FullName:   request.Contact().FullName(),
			Phone:      request.Contact().Phone(),
			Street:     request.Contact().Street(),
			City:       request.Contact().City(),
			PostalCode: request.Contact().PostalCode(),
		},
		Lon:         lon,
		Lat:         lat,
		Category:    request.Category(),
		Subtype:     request.Subtype(),
		Quantity:    request.Quantity(),
		PreferredAt: request.PreferredAt(),
		Status:      int(request.Status()),
		AgentID:     agentID,
		CreatedAt:   request.CreatedAt(),
		UpdatedAt:   request.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a pickup request domain aggregate.
// Reconstructs the complete aggregate including status and agent assignment
// using RestorePickupRequest, which re-checks the status/agent invariant.
func toDomain(dto PickupRequestDTO) (*pickup.PickupRequest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	requesterID, err := kernel.UUIDFromBytes(dto.RequesterID[:])
	if err != nil {
		return nil, err
	}

	contact, err := pickup.NewContact(
		dto.Contact.FullName,
		dto.Contact.Phone,
		dto.Contact.Street,
		dto.Contact.City,
		dto.Contact.PostalCode,
	)
	if err != nil {
		return nil, err
	}

	var point *kernel.GeoPoint
	if dto.Lon != nil && dto.Lat != nil {
		p, pointErr := kernel.NewGeoPoint(*dto.Lon, *dto.Lat)
		if pointErr != nil {
			return nil, pointErr
		}

		point = &p
	}

	var agentID *kernel.UUID
	if dto.AgentID != nil {
		aID, agentErr := kernel.UUIDFromBytes((*dto.AgentID)[:])
		if agentErr != nil {
			return nil, agentErr
		}

		agentID = &aID
	}

	return pickup.RestorePickupRequest(
		id,
		requesterID,
		contact,
		point,
		dto.Category,
		dto.Subtype,
		dto.Quantity,
		dto.PreferredAt,
		pickup.Status(dto.Status),
		agentID,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
