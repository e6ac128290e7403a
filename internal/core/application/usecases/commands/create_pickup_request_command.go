package commands

import (
	"errors"
	"time"

	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/core/domain/model/pickup"
	"ewaste/internal/pkg/guard"
)

var (
	ErrCreatePickupRequestCommandIsNotConstructed = errors.New(
		"CreatePickupRequestCommand must be created via NewCreatePickupRequestCommand constructor",
	)
	ErrCategoryIsRequired = errors.New("category is required")
	ErrQuantityIsInvalid  = errors.New("quantity must be greater than 0")
)

// CreatePickupRequestCommand represents a request to submit a new e-waste pickup.
// Encapsulates the requester identity, contact details, optional coordinates and
// the description of the e-waste to be collected.
//
// Example:
//
//	requestID := kernel.NewUUID()
//	cmd, err := NewCreatePickupRequestCommand(
//	    requestID, requesterID, contact, &point, "appliance", "refrigerator", 1, preferredAt)
//	if err != nil {
//	    return fmt.Errorf("invalid pickup data: %w", err)
//	}
//
//	handler := NewCreatePickupRequestCommandHandler(uowFactory)
//	if _, err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create pickup request: %w", err)
//	}
type CreatePickupRequestCommand struct { //nolint:recvcheck //using for validation
	requestID   kernel.UUID
	requesterID kernel.UUID
	contact     pickup.Contact
	point       *kernel.GeoPoint
	category    string
	subtype     string
	quantity    int
	preferredAt time.Time

	guard guard.ConstructorGuard
}

// NewCreatePickupRequestCommand creates a command to submit a new pickup request.
// Validates identifiers, contact details, optional coordinates, the category and
// the quantity. Subtype may be empty. Returns an error if any validation fails.
func NewCreatePickupRequestCommand(
	requestID kernel.UUID,
	requesterID kernel.UUID,
	contact pickup.Contact,
	point *kernel.GeoPoint,
	category string,
	subtype string,
	quantity int,
	preferredAt time.Time,
) (CreatePickupRequestCommand, error) {
	command := CreatePickupRequestCommand{
		subtype:     subtype,
		preferredAt: preferredAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRequestID(requestID),
		command.setRequesterID(requesterID),
		command.setContact(contact),
		command.setPoint(point),
		command.setCategory(category),
		command.setQuantity(quantity),
	); err != nil {
		return CreatePickupRequestCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreatePickupRequestCommandIsNotConstructed if validation fails.
func (c CreatePickupRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreatePickupRequestCommandIsNotConstructed)
}

// RequestID returns the unique identifier for the new pickup request.
func (c CreatePickupRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// RequesterID returns the identifier of the submitting user.
func (c CreatePickupRequestCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

// Contact returns the requester's contact details.
func (c CreatePickupRequestCommand) Contact() pickup.Contact {
	return c.contact
}

// Point returns the optional pickup coordinates, nil when not supplied.
func (c CreatePickupRequestCommand) Point() *kernel.GeoPoint {
	return c.point
}

// Category returns the e-waste category.
func (c CreatePickupRequestCommand) Category() string {
	return c.category
}

// Subtype returns the optional category refinement.
func (c CreatePickupRequestCommand) Subtype() string {
	return c.subtype
}

// Quantity returns the number of items to collect.
func (c CreatePickupRequestCommand) Quantity() int {
	return c.quantity
}

// PreferredAt returns the requester's preferred pickup time.
func (c CreatePickupRequestCommand) PreferredAt() time.Time {
	return c.preferredAt
}

func (c *CreatePickupRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *CreatePickupRequestCommand) setRequesterID(requesterID kernel.UUID) error {
	if err := requesterID.Validate(); err != nil {
		return err
	}

	c.requesterID = requesterID
	return nil
}

func (c *CreatePickupRequestCommand) setContact(contact pickup.Contact) error {
	if err := contact.Validate(); err != nil {
		return err
	}

	c.contact = contact
	return nil
}

func (c *CreatePickupRequestCommand) setPoint(point *kernel.GeoPoint) error {
	if point != nil {
		if err := point.Validate(); err != nil {
			return err
		}
	}

	c.point = point
	return nil
}

func (c *CreatePickupRequestCommand) setCategory(category string) error {
	if category == "" {
		return ErrCategoryIsRequired
	}

	c.category = category
	return nil
}

func (c *CreatePickupRequestCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
