package kafka

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cartPayload struct {
	SessionID string `json:"session_id"`
	ItemCount int    `json:"item_count"`
}

func TestNewEvent(t *testing.T) {
	event, err := NewEvent("storefront.cart.updated", "sess-1", "cart", "storefront", cartPayload{
		SessionID: "sess-1",
		ItemCount: 3,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, event.EventID)
	assert.Equal(t, "storefront.cart.updated", event.EventType)
	assert.Equal(t, "sess-1", event.AggregateID)
	assert.Equal(t, "cart", event.AggregateType)
	assert.Equal(t, 1, event.Version)
	assert.Equal(t, "storefront", event.Source)
	assert.False(t, event.Timestamp.IsZero())
}

func TestEvent_DataRoundTrip(t *testing.T) {
	event, err := NewEvent("storefront.cart.updated", "sess-1", "cart", "storefront", cartPayload{
		SessionID: "sess-1",
		ItemCount: 5,
	})
	require.NoError(t, err)

	data, err := event.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"item_count":5`)

	var payload cartPayload
	require.NoError(t, event.UnmarshalData(&payload))
	assert.Equal(t, 5, payload.ItemCount)
}

func TestEvent_WithCorrelationID(t *testing.T) {
	event, err := NewEvent("storefront.order.placed", "ord-1", "order", "storefront", nil)
	require.NoError(t, err)

	event.WithCorrelationID("corr-7")
	assert.Equal(t, "corr-7", event.CorrelationID)
}

func TestNewEvent_UnmarshalableData(t *testing.T) {
	_, err := NewEvent("t", "a", "agg", "src", make(chan int))
	assert.Error(t, err)
}
