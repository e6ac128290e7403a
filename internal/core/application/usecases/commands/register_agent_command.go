package commands

import (
	"errors"

	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/pkg/guard"
)

var (
	ErrRegisterAgentCommandIsNotConstructed = errors.New(
		"RegisterAgentCommand must be created via NewRegisterAgentCommand constructor",
	)
	ErrNameIsRequired  = errors.New("name is required")
	ErrPhoneIsRequired = errors.New("phone is required")
)

// RegisterAgentCommand represents a request to register a new collection agent.
// Encapsulates the agent's identity, contact phone and home base coordinates.
//
// Example:
//
//	home, _ := kernel.NewGeoPoint(13.405, 52.52)
//	cmd, err := NewRegisterAgentCommand(kernel.NewUUID(), "Jana Meyer", "+49301234567", home)
//	if err != nil {
//	    return fmt.Errorf("invalid agent data: %w", err)
//	}
//
//	handler := NewRegisterAgentCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register agent: %w", err)
//	}
type RegisterAgentCommand struct { //nolint:recvcheck //using for validation
	agentID kernel.UUID
	name    string
	phone   string
	home    kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewRegisterAgentCommand creates a command to register a new collection agent.
// Validates that the identifier is valid, name and phone are not empty, and the
// home base coordinates were properly constructed.
func NewRegisterAgentCommand(
	agentID kernel.UUID,
	name string,
	phone string,
	home kernel.GeoPoint,
) (RegisterAgentCommand, error) {
	command := RegisterAgentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAgentID(agentID),
		command.setName(name),
		command.setPhone(phone),
		command.setHome(home),
	); err != nil {
		return RegisterAgentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterAgentCommandIsNotConstructed if validation fails.
func (c RegisterAgentCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAgentCommandIsNotConstructed)
}

// AgentID returns the unique identifier for the new agent.
func (c RegisterAgentCommand) AgentID() kernel.UUID {
	return c.agentID
}

// Name returns the agent's display name.
func (c RegisterAgentCommand) Name() string {
	return c.name
}

// Phone returns the agent's contact phone.
func (c RegisterAgentCommand) Phone() string {
	return c.phone
}

// Home returns the agent's home base coordinates.
func (c RegisterAgentCommand) Home() kernel.GeoPoint {
	return c.home
}

func (c *RegisterAgentCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}

func (c *RegisterAgentCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterAgentCommand) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}

	c.phone = phone
	return nil
}

func (c *RegisterAgentCommand) setHome(home kernel.GeoPoint) error {
	if err := home.Validate(); err != nil {
		return err
	}

	c.home = home
	return nil
}
