package pickup

import (
	"errors"
	"fmt"
	"time"

	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/pkg/errs"
)

var (
	// ErrPickupRequestIsNotConstructed is returned when a PickupRequest instance was not
	// created through the NewPickupRequest or RestorePickupRequest factory methods.
	ErrPickupRequestIsNotConstructed = errors.New(
		"PickupRequest must be created via NewPickupRequest or RestorePickupRequest constructor")

	// ErrCategoryIsRequired is returned when attempting to create a request without an e-waste category.
	ErrCategoryIsRequired = errs.NewValueIsRequiredError("category")
)

// PickupRequest represents a user's request to have e-waste collected.
// It is the aggregate root that manages the request lifecycle from creation
// through agent acceptance to completion, and it is the single source of
// truth for the request's status.
//
// PickupRequest follows these invariants:
//   - Must have a valid unique identifier and requester reference
//   - Contact details must be complete (see Contact)
//   - Quantity must be positive
//   - The geographic point, when present, is a validated (lon, lat) pair
//   - It has an assigned agent if and only if status is Accepted or Completed
//   - The agent reference is written at most once and never reassigned
//   - updatedAt is refreshed on every status change
type PickupRequest struct {
	// id is the unique identifier for the request
	id kernel.UUID

	// requesterID references the user who submitted the request
	requesterID kernel.UUID

	// contact holds the requester's contact and street-address details
	contact Contact

	// point is the pickup coordinates; nil when the requester supplied none.
	// Requests without a point are excluded from route optimization.
	point *kernel.GeoPoint

	// category classifies the e-waste (e.g. "Electronics")
	category string

	// subtype optionally refines the category (e.g. "Laptop"); may be empty
	subtype string

	// quantity is the number of items to collect (must be positive)
	quantity int

	// preferredAt is the requester's preferred pickup time.
	// Informational only; it never gates status transitions.
	preferredAt time.Time

	// status represents the current state in the request lifecycle
	status Status

	// agentID is the assigned collection agent (nil while pending)
	agentID *kernel.UUID

	// createdAt is the creation timestamp
	createdAt time.Time

	// updatedAt is refreshed on every status write
	updatedAt time.Time

	// isConstructed ensures the request was created via a constructor
	isConstructed bool
}

// NewPickupRequest creates a new PickupRequest with validation. This is the only
// way to create a fresh request, ensuring all business invariants hold.
//
// The request starts in Pending status with no assigned agent and both
// timestamps set to the current time. The point is optional: pass nil when the
// requester supplied no coordinates.
//
// Parameters:
//   - id: Unique identifier for the request (must be a valid UUID)
//   - requesterID: The submitting user's identifier (must be a valid UUID)
//   - contact: Validated contact details
//   - point: Optional validated pickup coordinates (nil allowed)
//   - category: E-waste category (must be non-empty)
//   - subtype: Optional category refinement (may be empty)
//   - quantity: Number of items (must be positive)
//   - preferredAt: Preferred pickup time (informational)
func NewPickupRequest(
	id kernel.UUID,
	requesterID kernel.UUID,
	contact Contact,
	point *kernel.GeoPoint,
	category string,
	subtype string,
	quantity int,
	preferredAt time.Time,
) (*PickupRequest, error) {
	now := time.Now().UTC()

	request := &PickupRequest{
		status:        Pending,
		subtype:       subtype,
		preferredAt:   preferredAt,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		request.setID(id),
		request.setRequesterID(requesterID),
		request.setContact(contact),
		request.setPoint(point),
		request.setCategory(category),
		request.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return request, nil
}

// RestorePickupRequest reconstructs a PickupRequest aggregate from persistent storage.
// Unlike NewPickupRequest, it restores the persisted status, agent assignment and
// timestamps, and verifies the status/agent consistency invariant.
func RestorePickupRequest(
	id kernel.UUID,
	requesterID kernel.UUID,
	contact Contact,
	point *kernel.GeoPoint,
	category string,
	subtype string,
	quantity int,
	preferredAt time.Time,
	status Status,
	agentID *kernel.UUID,
	createdAt time.Time,
	updatedAt time.Time,
) (*PickupRequest, error) {
	request := &PickupRequest{
		subtype:       subtype,
		preferredAt:   preferredAt,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		request.setID(id),
		request.setRequesterID(requesterID),
		request.setContact(contact),
		request.setPoint(point),
		request.setCategory(category),
		request.setQuantity(quantity),
		request.setStatus(status, agentID),
	); err != nil {
		return nil, err
	}

	return request, nil
}

// Validate ensures the PickupRequest instance was properly constructed through
// one of the factory methods.
func (r *PickupRequest) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrPickupRequestIsNotConstructed
	}

	return nil
}

// IsEqual compares two requests by their unique identifiers.
func (r *PickupRequest) IsEqual(other *PickupRequest) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the request's unique identifier.
func (r *PickupRequest) ID() kernel.UUID {
	return r.id
}

// RequesterID returns the identifier of the user who submitted the request.
func (r *PickupRequest) RequesterID() kernel.UUID {
	return r.requesterID
}

// Contact returns the requester's contact details.
func (r *PickupRequest) Contact() Contact {
	return r.contact
}

// Point returns the pickup coordinates, or nil when none were supplied.
func (r *PickupRequest) Point() *kernel.GeoPoint {
	return r.point
}

// Category returns the e-waste category.
func (r *PickupRequest) Category() string {
	return r.category
}

// Subtype returns the optional category refinement; may be empty.
func (r *PickupRequest) Subtype() string {
	return r.subtype
}

// Quantity returns the number of items to collect.
func (r *PickupRequest) Quantity() int {
	return r.quantity
}

// PreferredAt returns the requester's preferred pickup time.
func (r *PickupRequest) PreferredAt() time.Time {
	return r.preferredAt
}

// Status returns the current status of the request.
func (r *PickupRequest) Status() Status {
	return r.status
}

// Agent returns the assigned agent's ID, or nil if no agent is assigned.
func (r *PickupRequest) Agent() *kernel.UUID {
	return r.agentID
}

// CreatedAt returns the creation timestamp.
func (r *PickupRequest) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt returns the timestamp of the last status write.
func (r *PickupRequest) UpdatedAt() time.Time {
	return r.updatedAt
}

// IsRoutable reports whether the request carries coordinates and can therefore
// participate in route optimization.
func (r *PickupRequest) IsRoutable() bool {
	return r.point != nil
}

// Accept assigns the request to a collection agent and moves it to Accepted.
//
// Business rules:
//   - The agent ID must be valid
//   - Only Pending requests can be accepted
//   - The agent reference is single-owner: once set it never changes.
//     A retry by the agent already holding the assignment is a no-op;
//     any other agent gets a ConcurrencyConflictError ("already accepted").
func (r *PickupRequest) Accept(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	if r.status == Accepted && r.agentID != nil {
		if r.agentID.IsEqual(agentID) {
			// Idempotent retry by the same agent.
			return nil
		}

		return errs.NewConcurrencyConflictErrorWithCause("pickupRequest", r.id.String(),
			errors.New("already accepted by another agent"))
	}

	newStatus, err := r.status.Accept()
	if err != nil {
		return err
	}

	r.status = newStatus
	r.agentID = &agentID
	r.touch()
	return nil
}

// Complete marks the request as collected by the acting agent.
//
// Business rules:
//   - Only Accepted requests can be completed
//   - Only the assigned agent may complete; any other agent gets an
//     ActionForbiddenError
//   - A retry by the assigned agent after completion is a no-op
func (r *PickupRequest) Complete(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	if r.status == Completed && r.agentID != nil && r.agentID.IsEqual(agentID) {
		// Idempotent retry by the assigned agent.
		return nil
	}

	newStatus, err := r.status.Complete()
	if err != nil {
		return err
	}

	if r.agentID == nil || !r.agentID.IsEqual(agentID) {
		return errs.NewActionForbiddenErrorWithCause("complete pickup",
			fmt.Errorf("agent %s is not assigned to request %s", agentID, r.id))
	}

	r.status = newStatus
	r.touch()
	return nil
}

// Cancel administratively withdraws the request before completion.
// The agent reference is cleared so that the status/agent invariant
// (agent assigned iff Accepted or Completed) keeps holding.
func (r *PickupRequest) Cancel() error {
	newStatus, err := r.status.Cancel()
	if err != nil {
		return err
	}

	r.status = newStatus
	r.agentID = nil
	r.touch()
	return nil
}

// touch refreshes the updated timestamp. Called on every status write.
func (r *PickupRequest) touch() {
	r.updatedAt = time.Now().UTC()
}

// setID validates and sets the request's unique identifier.
// This is a private method used only during construction.
func (r *PickupRequest) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

// setRequesterID validates and sets the requester reference.
// This is a private method used only during construction.
func (r *PickupRequest) setRequesterID(requesterID kernel.UUID) error {
	if err := requesterID.Validate(); err != nil {
		return err
	}
	r.requesterID = requesterID
	return nil
}

// setContact validates and sets the contact details.
// This is a private method used only during construction.
func (r *PickupRequest) setContact(contact Contact) error {
	if err := contact.Validate(); err != nil {
		return err
	}
	r.contact = contact
	return nil
}

// setPoint validates and sets the optional pickup coordinates.
// This is a private method used only during construction.
func (r *PickupRequest) setPoint(point *kernel.GeoPoint) error {
	if point == nil {
		return nil
	}

	if err := point.Validate(); err != nil {
		return err
	}
	r.point = point
	return nil
}

// setCategory validates and sets the e-waste category.
// This is a private method used only during construction.
func (r *PickupRequest) setCategory(category string) error {
	if category == "" {
		return ErrCategoryIsRequired
	}
	r.category = category
	return nil
}

// setQuantity validates and sets the item quantity.
// Quantity must be positive (at least one item).
// This is a private method used only during construction.
func (r *PickupRequest) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	r.quantity = quantity
	return nil
}

// setStatus validates and sets the persisted status and agent assignment,
// enforcing the status/agent consistency invariant.
// This is a private method used only during restoration.
func (r *PickupRequest) setStatus(status Status, agentID *kernel.UUID) error {
	if err := status.Validate(); err != nil {
		return err
	}

	if agentID != nil {
		if err := agentID.Validate(); err != nil {
			return err
		}
	}

	if err := status.ValidateCanHaveAgent(agentID != nil); err != nil {
		return err
	}

	r.status = status
	r.agentID = agentID
	return nil
}
