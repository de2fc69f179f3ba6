package events

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTestDeletedEvent(t *testing.T) {
	event := NewTestDeletedEvent("abc123", 4)

	_, err := uuid.Parse(event.ID)
	assert.NoError(t, err)
	assert.Equal(t, EventTestDeleted, event.Type)
	assert.Equal(t, "practice-quiz", event.Source)
	assert.Equal(t, "1.0", event.Version)
	assert.False(t, event.Timestamp.IsZero())

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "test.deleted", decoded["type"])
	assert.Equal(t, map[string]interface{}{"test_id": "abc123", "purged_count": float64(4)}, decoded["data"])
}

func TestEventIDsAreUnique(t *testing.T) {
	a := NewTestCreatedEvent("t1", "Math", 2)
	b := NewTestCreatedEvent("t1", "Math", 2)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestMockEventPublisher(t *testing.T) {
	publisher := NewMockEventPublisher(slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	require.NoError(t, publisher.PublishEvent(ctx, NewTestCreatedEvent("t1", "Math", 2)))
	require.NoError(t, publisher.PublishEvent(ctx, NewResultSubmittedEvent("t1", "r1", 1, 2, 50, true)))

	published := publisher.GetPublishedEvents()
	require.Len(t, published, 2)
	assert.Equal(t, EventTestCreated, published[0].Type)
	assert.Equal(t, EventResultSubmitted, published[1].Type)
	assert.Equal(t, ResultSubmittedEvent{TestID: "t1", ResultID: "r1", Correct: 1, Total: 2, Percentage: 50, Graded: true}, published[1].Data)

	publisher.ClearEvents()
	assert.Empty(t, publisher.GetPublishedEvents())
	assert.NoError(t, publisher.Close())
}
