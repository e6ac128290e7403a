package pickup

import (
	"errors"
	"strings"

	"ewaste/internal/pkg/errs"
	"ewaste/internal/pkg/guard"
)

// ErrContactIsNotConstructed is returned when attempting to use an improperly
// initialized Contact. Contacts must be created via the NewContact constructor.
var ErrContactIsNotConstructed = errs.NewValueIsRequiredError(
	"contact must be created via NewContact constructor")

// Contact is a value object holding the requester's contact and street-address
// details for a pickup. All fields are required and must be non-blank; the
// geographic point is tracked separately on the aggregate because it is
// optional (a request without coordinates stays manageable in list views but
// is excluded from route building).
type Contact struct { //nolint:recvcheck //using for validation
	fullName   string
	phone      string
	street     string
	city       string
	postalCode string

	guard guard.ConstructorGuard
}

// NewContact creates a validated Contact. Every field is required; blank or
// whitespace-only values are rejected with a ValueIsRequiredError.
func NewContact(fullName, phone, street, city, postalCode string) (Contact, error) {
	contact := Contact{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		contact.setField(&contact.fullName, fullName, "fullName"),
		contact.setField(&contact.phone, phone, "phone"),
		contact.setField(&contact.street, street, "street"),
		contact.setField(&contact.city, city, "city"),
		contact.setField(&contact.postalCode, postalCode, "postalCode"),
	); err != nil {
		return Contact{}, err
	}

	return contact, nil
}

// Validate checks if the Contact was properly constructed using the constructor.
func (c Contact) Validate() error {
	return c.guard.Validate(ErrContactIsNotConstructed)
}

// FullName returns the requester's full name.
func (c Contact) FullName() string {
	return c.fullName
}

// Phone returns the requester's phone number.
func (c Contact) Phone() string {
	return c.phone
}

// Street returns the street address of the pickup location.
func (c Contact) Street() string {
	return c.street
}

// City returns the city of the pickup location.
func (c Contact) City() string {
	return c.city
}

// PostalCode returns the postal code of the pickup location.
func (c Contact) PostalCode() string {
	return c.postalCode
}

// setField sets a required string field with validation.
// Note: We intentionally use a pointer receiver here while other methods use value receivers.
// Although mixing receiver types is generally not recommended, in this case we use pointer
// receivers for these private setters to enable self-encapsulated validation of business
// requirements during object construction.
func (c *Contact) setField(target *string, value string, paramName string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return errs.NewValueIsRequiredError(paramName)
	}

	*target = trimmed
	return nil
}
