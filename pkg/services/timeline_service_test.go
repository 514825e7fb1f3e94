package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showroom-hq/showroom/pkg/models"
	testdb "github.com/showroom-hq/showroom/test/database"
)

func TestTimelineService_AppendAndRetrieve(t *testing.T) {
	client := testdb.NewTestClient(t)
	envSvc := NewEnvironmentService(client.Client)
	tlSvc := NewTimelineService(client.Client)
	ctx := context.Background()

	envID := uuid.New().String()
	_, err := envSvc.CreateEnvironment(ctx, models.CreateEnvironmentRequest{EnvID: envID, TemplateID: "travel"})
	require.NoError(t, err)

	_, err = tlSvc.AppendTimelineEvent(ctx, models.AppendTimelineEventRequest{
		EnvID:          envID,
		SequenceNumber: 1,
		EventType:      models.TimelineAuth,
		Title:          "Signed in",
	})
	require.NoError(t, err)

	_, err = tlSvc.AppendTimelineEvent(ctx, models.AppendTimelineEventRequest{
		EnvID:              envID,
		SequenceNumber:     2,
		EventType:          models.TimelineToolCall,
		Status:             models.TimelineSuccess,
		Title:              "Search Flights",
		Detail:             "2 results",
		HighlightedFeature: "scoped-permissions",
	})
	require.NoError(t, err)

	// Newest first
	events, err := tlSvc.GetEnvironmentTimeline(ctx, envID)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Search Flights", events[0].Title)
	assert.Equal(t, "tool_call", string(events[0].EventType))
	require.NotNil(t, events[0].HighlightedFeature)
	assert.Equal(t, "scoped-permissions", *events[0].HighlightedFeature)
	assert.Equal(t, "Signed in", events[1].Title)
}

func TestTimelineService_Validation(t *testing.T) {
	client := testdb.NewTestClient(t)
	tlSvc := NewTimelineService(client.Client)
	ctx := context.Background()

	_, err := tlSvc.AppendTimelineEvent(ctx, models.AppendTimelineEventRequest{
		SequenceNumber: 1, EventType: models.TimelineAuth, Title: "x",
	})
	assert.True(t, IsValidationError(err))

	_, err = tlSvc.AppendTimelineEvent(ctx, models.AppendTimelineEventRequest{
		EnvID: "env-1", SequenceNumber: 1, EventType: "explosion", Title: "x",
	})
	assert.True(t, IsValidationError(err))

	_, err = tlSvc.AppendTimelineEvent(ctx, models.AppendTimelineEventRequest{
		EnvID: "env-1", SequenceNumber: 1, EventType: models.TimelineAuth,
	})
	assert.True(t, IsValidationError(err))
}
