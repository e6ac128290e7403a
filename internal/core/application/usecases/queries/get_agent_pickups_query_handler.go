package queries

import (
	"context"
	"database/sql"
	"time"

	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/core/domain/model/pickup"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAgentPickupsQueryHandler retrieves an agent's assigned pickups from the database.
// The per-status sort order is part of the contract: accepted pickups are what
// the agent still has to drive, so the soonest preferred time comes first;
// completed pickups read like a history, newest first.
type GetAgentPickupsQueryHandler struct {
	db *gorm.DB
}

// NewGetAgentPickupsQueryHandler creates a handler for agent pickup queries.
// Requires a GORM database connection for query execution.
func NewGetAgentPickupsQueryHandler(db *gorm.DB) GetAgentPickupsQueryHandler {
	return GetAgentPickupsQueryHandler{db: db}
}

// Handle executes the query to retrieve the agent's pickups in the given status.
func (h GetAgentPickupsQueryHandler) Handle(
	ctx context.Context,
	query GetAgentPickupsQuery,
) ([]GetAgentPickupsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orderBy := "preferred_at ASC"
	if query.Status() == pickup.Completed {
		orderBy = "updated_at DESC"
	}

	pickups := make([]GetAgentPickupsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			category,
			subtype,
			quantity,
			contact_city,
			contact_street,
			lon,
			lat,
			preferred_at,
			updated_at
		FROM pickup_requests
		WHERE agent_id = ? AND status = ?
		ORDER BY `+orderBy,
		query.AgentID().Bytes(), int(query.Status())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAgentPickupsQueryResponse
		var id uuid.UUID
		var lon, lat sql.NullFloat64
		var preferredAt, updatedAt time.Time

		err = rows.Scan(
			&id,
			&resp.Category,
			&resp.Subtype,
			&resp.Quantity,
			&resp.City,
			&resp.Street,
			&lon,
			&lat,
			&preferredAt,
			&updatedAt,
		)
		if err != nil {
			return nil, err
		}

		requestID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = requestID

		if lon.Valid && lat.Valid {
			point, pointErr := kernel.NewGeoPoint(lon.Float64, lat.Float64)
			if pointErr != nil {
				return nil, pointErr
			}
			resp.Point = &point
		}

		resp.Status = query.Status()
		resp.PreferredAt = preferredAt
		resp.UpdatedAt = updatedAt
		pickups = append(pickups, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return pickups, nil
}
