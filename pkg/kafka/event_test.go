package kafka

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type postPublished struct {
	PostID string `json:"post_id"`
	Slug   string `json:"slug"`
}

func TestNewEvent_PopulatesEnvelope(t *testing.T) {
	ev, err := NewEvent("classboard.post.published", "p-1", "post", "classboard", postPublished{
		PostID: "p-1",
		Slug:   "introducao-a-programacao",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, ev.EventID)
	assert.Equal(t, "classboard.post.published", ev.EventType)
	assert.Equal(t, "p-1", ev.AggregateID)
	assert.Equal(t, "post", ev.AggregateType)
	assert.Equal(t, 1, ev.Version)
	assert.False(t, ev.Timestamp.IsZero())
}

func TestEvent_RoundTripData(t *testing.T) {
	ev, err := NewEvent("classboard.post.published", "p-1", "post", "classboard", postPublished{
		PostID: "p-1",
		Slug:   "hello-world",
	})
	require.NoError(t, err)

	raw, err := ev.Marshal()
	require.NoError(t, err)

	var decoded Event
	require.NoError(t, json.Unmarshal(raw, &decoded))

	var data postPublished
	require.NoError(t, decoded.UnmarshalData(&data))
	assert.Equal(t, "hello-world", data.Slug)
}

func TestEvent_WithCorrelationID(t *testing.T) {
	ev, err := NewEvent("classboard.user.registered", "u-1", "user", "classboard", nil)
	require.NoError(t, err)

	ev.WithCorrelationID("corr-1")
	assert.Equal(t, "corr-1", ev.CorrelationID)
}
