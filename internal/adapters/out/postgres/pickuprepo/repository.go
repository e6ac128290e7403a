package pickuprepo

import (
	"context"
	"errors"
	"time"

	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/core/domain/model/pickup"
	"ewaste/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPickupRequestRepository implements PickupRequestRepository using GORM.
type GormPickupRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPickupRequestRepository creates a new GORM pickup request repository.
func NewGormPickupRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormPickupRequestRepository {
	return &GormPickupRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new pickup request to the database.
func (r *GormPickupRequestRepository) Add(ctx context.Context, aggregate *pickup.PickupRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a pickup request by ID.
func (r *GormPickupRequestRepository) Get(ctx context.Context, id kernel.UUID) (*pickup.PickupRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PickupRequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pickupRequest", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateWhenStatus saves an existing pickup request conditionally on the stored
// row still carrying the expected pre-read status. When the expected status is
// Pending the condition additionally requires a NULL agent column, so two
// agents racing to accept the same request produce exactly one winner.
func (r *GormPickupRequestRepository) UpdateWhenStatus(
	ctx context.Context,
	aggregate *pickup.PickupRequest,
	expected pickup.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if err := expected.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	tx := r.db.WithContext(ctx).Model(&PickupRequestDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(expected))
	if expected == pickup.Pending {
		tx = tx.Where("agent_id IS NULL")
	}

	// Select("*") forces nullable columns (agent_id, lon, lat) to be written
	// even when nil, which releasing an agent on cancel depends on.
	result := tx.Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&PickupRequestDTO{}).
			Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}

		if count == 0 {
			return errs.NewObjectNotFoundError("pickupRequest", aggregate.ID().String())
		}

		return errs.NewConcurrencyConflictError("pickupRequest", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetAllPendingBefore retrieves all pending requests created before the cutoff,
// oldest first. Feeds the stale-request cancellation job.
func (r *GormPickupRequestRepository) GetAllPendingBefore(
	ctx context.Context,
	cutoff time.Time,
) ([]*pickup.PickupRequest, error) {
	var dtos []PickupRequestDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", int(pickup.Pending), cutoff).
		Order("created_at ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllAcceptedByAgent retrieves all requests currently accepted by the agent,
// ordered by preferred pickup time ascending.
func (r *GormPickupRequestRepository) GetAllAcceptedByAgent(
	ctx context.Context,
	agentID kernel.UUID,
) ([]*pickup.PickupRequest, error) {
	if err := agentID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PickupRequestDTO
	err := r.db.WithContext(ctx).
		Where("agent_id = ? AND status = ?", agentID.Bytes(), int(pickup.Accepted)).
		Order("preferred_at ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []PickupRequestDTO) ([]*pickup.PickupRequest, error) {
	requests := make([]*pickup.PickupRequest, 0, len(dtos))
	for _, dto := range dtos {
		request, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}

	return requests, nil
}
