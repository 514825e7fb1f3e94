package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showroom-hq/showroom/pkg/models"
	testdb "github.com/showroom-hq/showroom/test/database"
)

func TestEventService_CreateAndGetSince(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewEventService(client.Client)
	ctx := context.Background()

	envID := uuid.New().String()
	channel := "env:" + envID

	var ids []int
	for _, content := range []string{"one", "two", "three"} {
		evt, err := svc.CreateEvent(ctx, models.CreateEventRequest{
			EnvID:   envID,
			Channel: channel,
			Payload: map[string]any{"type": "message.appended", "content": content},
		})
		require.NoError(t, err)
		ids = append(ids, evt.ID)
	}

	events, err := svc.GetEventsSince(ctx, channel, 0, 0)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "one", events[0].Payload["content"])

	// Catchup from the middle
	events, err = svc.GetEventsSince(ctx, channel, ids[0], 0)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "two", events[0].Payload["content"])

	// Limit applies
	events, err = svc.GetEventsSince(ctx, channel, 0, 2)
	require.NoError(t, err)
	assert.Len(t, events, 2)

	// Other channels are invisible
	events, err = svc.GetEventsSince(ctx, "env:other", 0, 0)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestEventService_Cleanup(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewEventService(client.Client)
	ctx := context.Background()

	envID := uuid.New().String()
	for range 2 {
		_, err := svc.CreateEvent(ctx, models.CreateEventRequest{
			EnvID:   envID,
			Channel: "env:" + envID,
			Payload: map[string]any{"type": "notice"},
		})
		require.NoError(t, err)
	}

	n, err := svc.CleanupEnvironmentEvents(ctx, envID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// Nothing young enough to expire
	_, err = svc.CreateEvent(ctx, models.CreateEventRequest{
		EnvID:   envID,
		Channel: "env:" + envID,
		Payload: map[string]any{"type": "notice"},
	})
	require.NoError(t, err)

	n, err = svc.CleanupExpiredEvents(ctx, time.Hour)
	require.NoError(t, err)
	assert.Zero(t, n)
}
