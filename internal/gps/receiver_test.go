package gps

import (
	"testing"
	"time"

	"waypoints-api/internal/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func TestSimulator_Stationary(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	sim := newSimulator(SimulatorConfig{Latitude: -33.9399, Longitude: 151.1753, Altitude: 6}, clock.now)

	assert.False(t, sim.HasFix())
	require.NoError(t, sim.Update())
	assert.True(t, sim.HasFix())

	clock.t = clock.t.Add(time.Hour)
	require.NoError(t, sim.Update())

	assert.Equal(t, -33.9399, sim.Latitude())
	assert.Equal(t, 151.1753, sim.Longitude())
	assert.Equal(t, 6.0, sim.Altitude())
}

func TestSimulator_FliesHeading(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	sim := newSimulator(SimulatorConfig{
		Latitude:    -33.8667,
		Longitude:   151.2089,
		GroundSpeed: 100,
		Heading:     45,
	}, clock.now)

	require.NoError(t, sim.Update())
	clock.t = clock.t.Add(30 * time.Minute)
	require.NoError(t, sim.Update())

	travelled := geo.Distance(-33.8667, 151.2089, sim.Latitude(), sim.Longitude())
	assert.InDelta(t, 50*kmPerNauticalMile, travelled, 1e-6)
	assert.InDelta(t, 45, geo.Bearing(-33.8667, 151.2089, sim.Latitude(), sim.Longitude()), 1e-6)
	assert.Equal(t, 100.0, sim.GroundSpeed())
	assert.Equal(t, 45.0, sim.Heading())
}

func TestSimulator_ImplementsInterfaces(t *testing.T) {
	var r Receiver = NewSimulator(SimulatorConfig{})
	_, ok := r.(FixReporter)
	assert.True(t, ok)
}
