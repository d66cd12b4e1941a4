package kafka

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeChangeEvent(t *testing.T) {
	value := []byte(`{"entity":"airline","action":"created","entity_id":7,"payload":{"id":7,"name":"Air Serbia"},"occurred_at":"2025-06-01T12:00:00Z"}`)

	event, err := decodeChangeEvent(value)
	require.NoError(t, err)
	assert.Equal(t, "airline", event.Entity)
	assert.Equal(t, "created", event.Action)
	assert.Equal(t, int64(7), event.EntityID)
	assert.JSONEq(t, `{"id":7,"name":"Air Serbia"}`, string(event.Payload))
}

func TestDecodeChangeEvent_Garbage(t *testing.T) {
	_, err := decodeChangeEvent([]byte(`not json`))
	assert.Error(t, err)
}

func TestDecodeChangeEvent_MissingFields(t *testing.T) {
	_, err := decodeChangeEvent([]byte(`{"entity_id":7}`))
	assert.Error(t, err)
}
