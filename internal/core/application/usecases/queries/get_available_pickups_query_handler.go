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

// GetAvailablePickupsQueryHandler retrieves claimable pickup requests from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAvailablePickupsQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailablePickupsQueryHandler creates a handler for available pickup queries.
// Requires a GORM database connection for query execution.
func NewGetAvailablePickupsQueryHandler(db *gorm.DB) GetAvailablePickupsQueryHandler {
	return GetAvailablePickupsQueryHandler{db: db}
}

// Handle executes the query to retrieve all pending pickup requests.
// Results are ordered by creation time ascending: first come, first visible.
func (h GetAvailablePickupsQueryHandler) Handle(
	ctx context.Context,
	query GetAvailablePickupsQuery,
) ([]GetAvailablePickupsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pickups := make([]GetAvailablePickupsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			category,
			subtype,
			quantity,
			contact_city,
			lon,
			lat,
			preferred_at,
			created_at
		FROM pickup_requests
		WHERE status = ?
		ORDER BY created_at ASC
	`, int(pickup.Pending)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAvailablePickupsQueryResponse
		var id uuid.UUID
		var lon, lat sql.NullFloat64
		var preferredAt, createdAt time.Time

		err = rows.Scan(
			&id,
			&resp.Category,
			&resp.Subtype,
			&resp.Quantity,
			&resp.City,
			&lon,
			&lat,
			&preferredAt,
			&createdAt,
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

		resp.PreferredAt = preferredAt
		resp.CreatedAt = createdAt
		pickups = append(pickups, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return pickups, nil
}
