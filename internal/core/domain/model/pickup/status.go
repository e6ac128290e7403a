package pickup

import (
	"errors"
	"fmt"
	"strings"

	"ewaste/internal/pkg/errs"
)

// Status represents the lifecycle state of a pickup request.
// It implements a state machine with defined transitions to ensure
// requests follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Accepted ──> Completed
//	   │            │
//	   └────────────┴──> Cancelled
//
// Completed and Cancelled are terminal states with no further transitions.
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a pickup request is first created.
	// Requests in this status are visible to all agents and have no assigned agent.
	Pending

	// Accepted indicates exactly one agent has taken ownership of the request.
	// The assigned agent is set on this transition and never changes afterwards.
	Accepted

	// Completed indicates the assigned agent has collected the e-waste.
	// This is a terminal state.
	Completed

	// Cancelled indicates the request was administratively withdrawn
	// before completion. This is a terminal state.
	Cancelled
)

// Transition errors returned by the state machine.
var (
	// ErrStatusIsTerminal is returned when any transition is attempted
	// from a Completed or Cancelled request.
	ErrStatusIsTerminal = errors.New("status is terminal")

	// ErrStatusIsNotPending is returned when accepting a request that is
	// not in Pending status.
	ErrStatusIsNotPending = errors.New("only pending requests can be accepted")

	// ErrStatusIsNotAccepted is returned when completing a request that is
	// not in Accepted status.
	ErrStatusIsNotAccepted = errors.New("only accepted requests can be completed")
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Accepted:  "Accepted",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Accepted:  "Accepted",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// StatusFromString parses a status from its case-insensitive string
// representation, e.g. "pending" or "Accepted". Returns an error for
// unrecognized values. Used when reading statuses from API parameters.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if strings.EqualFold(name, s) {
			return status, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Accepted, Completed, Cancelled.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid status values.
// This method implements the fmt.Stringer interface.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Accept transitions the status to Accepted.
//
// Valid transitions:
//   - Pending -> Accepted
//
// Invalid transitions:
//   - Completed/Cancelled -> Accepted (ErrStatusIsTerminal)
//   - Accepted -> Accepted (ErrStatusIsNotPending; ownership never moves)
//   - Unknown -> Accepted (ErrStatusIsNotPending)
//
// Returns the new status on a valid transition, or (0, error) otherwise.
func (s Status) Accept() (Status, error) {
	if s.IsTerminal() {
		return 0, fmt.Errorf("%w: cannot accept a %s request", ErrStatusIsTerminal, s)
	}

	if s != Pending {
		return 0, fmt.Errorf("%w: current status is %s", ErrStatusIsNotPending, s)
	}

	return Accepted, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Accepted -> Completed
//
// Invalid transitions:
//   - Completed/Cancelled -> Completed (ErrStatusIsTerminal)
//   - Pending -> Completed (ErrStatusIsNotAccepted; must be accepted first)
//
// Returns the new status on a valid transition, or (0, error) otherwise.
func (s Status) Complete() (Status, error) {
	if s.IsTerminal() {
		return 0, fmt.Errorf("%w: cannot complete a %s request", ErrStatusIsTerminal, s)
	}

	if s != Accepted {
		return 0, fmt.Errorf("%w: current status is %s", ErrStatusIsNotAccepted, s)
	}

	return Completed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Accepted -> Cancelled
//
// Invalid transitions:
//   - Completed/Cancelled -> Cancelled (ErrStatusIsTerminal)
//   - Unknown -> Cancelled (invalid status)
//
// Returns the new status on a valid transition, or (0, error) otherwise.
func (s Status) Cancel() (Status, error) {
	if s.IsTerminal() {
		return 0, fmt.Errorf("%w: cannot cancel a %s request", ErrStatusIsTerminal, s)
	}

	if err := s.Validate(); err != nil {
		return 0, err
	}

	return Cancelled, nil
}

// ValidateCanHaveAgent validates the consistency between request status and
// agent assignment. A request has an assigned agent if and only if its status
// is Accepted or Completed.
//
// Parameters:
//   - agent: whether the request has an assigned agent
//
// Returns a validation error if status and agent assignment are inconsistent.
func (s Status) ValidateCanHaveAgent(agent bool) error {
	if agent && s != Accepted && s != Completed {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to have an assigned agent", s))
	}

	if !agent && (s == Accepted || s == Completed) {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to have no assigned agent", s))
	}

	return nil
}
