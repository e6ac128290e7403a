// Package agent provides the domain entity for collection agents in the
// e-waste pickup system.
//
// The package includes:
//   - Agent: The aggregate root managing agent identity, contact details,
//     home location and availability
//
// Key business rules:
//   - Agents must have a valid unique identifier, name, phone and home location
//   - Only active agents may accept or complete pickup requests
//   - The home location is the origin and terminus of the agent's daily route
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package agent
