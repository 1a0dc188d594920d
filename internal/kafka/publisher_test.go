package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"waypoints-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodePosition(t *testing.T) {
	pos := models.Position{
		Latitude:    -33.9399,
		Longitude:   151.1753,
		Altitude:    6,
		GroundSpeed: 0,
		Heading:     90,
		FixValid:    true,
		Timestamp:   time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC),
	}

	msg, err := encodePosition(pos)
	require.NoError(t, err)

	assert.Equal(t, []byte(MessageKey), msg.Key)
	assert.Equal(t, pos.Timestamp, msg.Time)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(msg.Value, &fields))
	assert.Equal(t, -33.9399, fields["latitude"])
	assert.Equal(t, true, fields["fix_valid"])
	assert.Equal(t, "2026-10-14T09:30:00Z", fields["timestamp"])
}

func TestNewPositionPublisher(t *testing.T) {
	p := NewPositionPublisher([]string{"localhost:9092"}, "ownship.positions")

	assert.Equal(t, "ownship.positions", p.w.Topic)
	assert.Equal(t, "localhost:9092", p.w.Addr.String())
	assert.NoError(t, p.Close())
}
