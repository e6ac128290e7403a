package agent

import (
	"errors"
	"strings"

	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/pkg/errs"
	"ewaste/internal/pkg/guard"
)

// Domain errors for agent operations.
var (
	// ErrNameIsRequired is returned when attempting to create an agent without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when attempting to create an agent without a phone number.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrAgentIsNotConstructed is returned when using an improperly initialized Agent.
	ErrAgentIsNotConstructed = errors.New("Agent must be created via NewAgent or RestoreAgent constructor")
	// ErrAgentIsInactive is returned when an inactive agent attempts to take work.
	ErrAgentIsInactive = errors.New("agent is inactive")
)

// Agent represents a field collection agent who accepts and fulfills pickup
// requests. It is an aggregate root managing the agent's identity, contact
// details, home location and availability.
//
// The home location doubles as the origin and terminus of the agent's daily
// collection route.
//
// Business rules:
//   - Agent must have a valid UUID, non-empty name and phone
//   - Home location must be a valid geographic point
//   - Only active agents may accept or complete pickups
type Agent struct {
	// id uniquely identifies the agent
	id kernel.UUID
	// name is the agent's human-readable name
	name string
	// phone is the agent's contact phone number
	phone string
	// home is the agent's home location, used as route origin
	home kernel.GeoPoint
	// active indicates whether the agent may take work
	active bool
	// guard ensures the agent was properly constructed
	guard guard.ConstructorGuard
}

// NewAgent creates a new active Agent with the specified parameters.
// This is the only way to create a fresh Agent instance; all parameters are
// validated and the agent starts in the active state.
func NewAgent(id kernel.UUID, name string, phone string, home kernel.GeoPoint) (*Agent, error) {
	agent := &Agent{
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		agent.setID(id),
		agent.setName(name),
		agent.setPhone(phone),
		agent.setHome(home),
	); err != nil {
		return nil, err
	}

	return agent, nil
}

// RestoreAgent reconstructs an Agent aggregate from persistent storage,
// including its persisted activity state.
func RestoreAgent(id kernel.UUID, name string, phone string, home kernel.GeoPoint, active bool) (*Agent, error) {
	agent := &Agent{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		agent.setID(id),
		agent.setName(name),
		agent.setPhone(phone),
		agent.setHome(home),
	); err != nil {
		return nil, err
	}

	return agent, nil
}

// Validate ensures the Agent instance was properly constructed.
func (a *Agent) Validate() error {
	if a == nil {
		return ErrAgentIsNotConstructed
	}

	return a.guard.Validate(ErrAgentIsNotConstructed)
}

// IsEqual compares two agents by their unique identifiers.
func (a *Agent) IsEqual(other *Agent) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the agent's unique identifier.
func (a *Agent) ID() kernel.UUID {
	return a.id
}

// Name returns the agent's name.
func (a *Agent) Name() string {
	return a.name
}

// Phone returns the agent's phone number.
func (a *Agent) Phone() string {
	return a.phone
}

// Home returns the agent's home location, the origin of their daily route.
func (a *Agent) Home() kernel.GeoPoint {
	return a.home
}

// IsActive reports whether the agent may take work.
func (a *Agent) IsActive() bool {
	return a.active
}

// ValidateCanWork checks that the agent is allowed to accept or complete
// pickups. Returns ErrAgentIsInactive for deactivated agents.
func (a *Agent) ValidateCanWork() error {
	if err := a.Validate(); err != nil {
		return err
	}

	if !a.active {
		return ErrAgentIsInactive
	}

	return nil
}

// Deactivate marks the agent as unable to take new work.
// Existing assignments are unaffected; the agent may still complete them.
func (a *Agent) Deactivate() {
	a.active = false
}

// Activate marks the agent as able to take work again.
func (a *Agent) Activate() {
	a.active = true
}

// setID validates and sets the agent's unique identifier.
// This is a private method used only during construction.
func (a *Agent) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

// setName validates and sets the agent's name.
// This is a private method used only during construction.
func (a *Agent) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	a.name = strings.TrimSpace(name)
	return nil
}

// setPhone validates and sets the agent's phone number.
// This is a private method used only during construction.
func (a *Agent) setPhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return ErrPhoneIsRequired
	}
	a.phone = strings.TrimSpace(phone)
	return nil
}

// setHome validates and sets the agent's home location.
// This is a private method used only during construction.
func (a *Agent) setHome(home kernel.GeoPoint) error {
	if err := home.Validate(); err != nil {
		return err
	}
	a.home = home
	return nil
}
