package queries_test

import (
	"testing"

	"ewaste/internal/core/application/usecases/queries"
	"ewaste/internal/core/domain/model/kernel"
	"ewaste/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOptimizedRouteQuery_ValidInput(t *testing.T) {
	agentID := kernel.NewUUID()
	origin, err := kernel.NewGeoPoint(13.405, 52.52)
	require.NoError(t, err)

	query, err := queries.NewGetOptimizedRouteQuery(agentID, &origin, ports.RoundTrip)
	require.NoError(t, err)
	assert.Equal(t, agentID, query.AgentID())
	assert.Equal(t, &origin, query.Origin())
	assert.Equal(t, ports.RoundTrip, query.Mode())
}

func TestNewGetOptimizedRouteQuery_NilOriginAllowed(t *testing.T) {
	query, err := queries.NewGetOptimizedRouteQuery(kernel.NewUUID(), nil, ports.OneWay)
	require.NoError(t, err)
	assert.Nil(t, query.Origin())
}

func TestNewGetOptimizedRouteQuery_InvalidAgentID(t *testing.T) {
	_, err := queries.NewGetOptimizedRouteQuery(kernel.UUID{}, nil, ports.RoundTrip)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewGetOptimizedRouteQuery_InvalidMode(t *testing.T) {
	_, err := queries.NewGetOptimizedRouteQuery(kernel.NewUUID(), nil, ports.TripMode(42))
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrTripModeIsInvalid)
}

func TestNewGetOptimizedRouteQuery_UnconstructedOrigin(t *testing.T) {
	origin := kernel.GeoPoint{}
	_, err := queries.NewGetOptimizedRouteQuery(kernel.NewUUID(), &origin, ports.RoundTrip)
	require.Error(t, err)
}
