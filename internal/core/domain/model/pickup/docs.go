// Package pickup provides domain entities and business logic for pickup request
// management in the e-waste collection system. It implements the PickupRequest
// aggregate root with lifecycle management and state transitions.
//
// The package includes:
//   - PickupRequest: The aggregate root that manages request identity, contact
//     details, e-waste descriptor and lifecycle
//   - Status: A state machine that enforces valid request status transitions
//   - Contact: A value object holding the requester's contact details
//
// Key business rules:
//   - Requests must have a valid identifier, requester, complete contact details
//     and a positive quantity
//   - Request status follows a defined workflow: Pending -> Accepted -> Completed,
//     with Cancelled reachable from Pending and Accepted
//   - A request has an assigned agent if and only if it is Accepted or Completed
//   - The agent assignment is single-owner: written once, never reassigned
//   - The geographic point is optional; requests without one are excluded from
//     route optimization but remain manageable in list views
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package pickup
