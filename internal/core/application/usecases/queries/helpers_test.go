package queries_test

import (
	"time"

	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/core/domain/model/pickup"
)

// mockAggregateTracker is a no-op tracker for seeding test data through the
// repositories.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

func newTestContact() (pickup.Contact, error) {
	return pickup.NewContact("Erika Muster", "+49301234567", "Brunnenstr. 7", "Berlin", "10115")
}

func newTestRequest(withPoint bool, preferredAt time.Time) (*pickup.PickupRequest, error) {
	contact, err := newTestContact()
	if err != nil {
		return nil, err
	}

	var point *kernel.GeoPoint
	if withPoint {
		p, pointErr := kernel.NewGeoPoint(13.405, 52.52)
		if pointErr != nil {
			return nil, pointErr
		}
		point = &p
	}

	return pickup.NewPickupRequest(
		kernel.NewUUID(),
		kernel.NewUUID(),
		contact,
		point,
		"appliance",
		"washing machine",
		1,
		preferredAt,
	)
}
