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

func TestEnvironmentService_CreateAndGet(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewEnvironmentService(client.Client)
	ctx := context.Background()

	envID := uuid.New().String()
	env, err := svc.CreateEnvironment(ctx, models.CreateEnvironmentRequest{
		EnvID:      envID,
		TemplateID: "travel",
		CreatedBy:  "demo@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, envID, env.ID)
	assert.Equal(t, "travel", env.TemplateID)
	assert.Equal(t, "template", string(env.EnvType))

	got, err := svc.GetEnvironment(ctx, envID)
	require.NoError(t, err)
	assert.Equal(t, envID, got.ID)
	require.NotNil(t, got.CreatedBy)
	assert.Equal(t, "demo@example.com", *got.CreatedBy)
}

func TestEnvironmentService_Validation(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewEnvironmentService(client.Client)
	ctx := context.Background()

	_, err := svc.CreateEnvironment(ctx, models.CreateEnvironmentRequest{TemplateID: "travel"})
	assert.True(t, IsValidationError(err))

	_, err = svc.CreateEnvironment(ctx, models.CreateEnvironmentRequest{EnvID: uuid.New().String()})
	assert.True(t, IsValidationError(err))

	_, err = svc.CreateEnvironment(ctx, models.CreateEnvironmentRequest{
		EnvID:      uuid.New().String(),
		TemplateID: "travel",
		EnvType:    "bogus",
	})
	assert.True(t, IsValidationError(err))
}

func TestEnvironmentService_DuplicateCreate(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewEnvironmentService(client.Client)
	ctx := context.Background()

	envID := uuid.New().String()
	_, err := svc.CreateEnvironment(ctx, models.CreateEnvironmentRequest{EnvID: envID, TemplateID: "travel"})
	require.NoError(t, err)

	_, err = svc.CreateEnvironment(ctx, models.CreateEnvironmentRequest{EnvID: envID, TemplateID: "travel"})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestEnvironmentService_GetNotFound(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewEnvironmentService(client.Client)

	_, err := svc.GetEnvironment(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEnvironmentService_Purge(t *testing.T) {
	client := testdb.NewTestClient(t)
	envSvc := NewEnvironmentService(client.Client)
	msgSvc := NewMessageService(client.Client)
	tlSvc := NewTimelineService(client.Client)
	evtSvc := NewEventService(client.Client)
	ctx := context.Background()

	envID := uuid.New().String()
	_, err := envSvc.CreateEnvironment(ctx, models.CreateEnvironmentRequest{EnvID: envID, TemplateID: "travel"})
	require.NoError(t, err)

	_, err = msgSvc.AppendMessage(ctx, models.AppendMessageRequest{
		EnvID: envID, SequenceNumber: 1, Role: models.RoleUser, Content: "hi",
	})
	require.NoError(t, err)
	_, err = tlSvc.AppendTimelineEvent(ctx, models.AppendTimelineEventRequest{
		EnvID: envID, SequenceNumber: 1, EventType: models.TimelineAuth, Title: "Signed in",
	})
	require.NoError(t, err)
	_, err = evtSvc.CreateEvent(ctx, models.CreateEventRequest{
		EnvID: envID, Channel: "env:" + envID, Payload: map[string]any{"type": "notice"},
	})
	require.NoError(t, err)

	purged, err := envSvc.PurgeEnvironment(ctx, envID)
	require.NoError(t, err)
	assert.Equal(t, 3, purged)

	// The environment record itself survives the purge
	_, err = envSvc.GetEnvironment(ctx, envID)
	require.NoError(t, err)

	msgs, err := msgSvc.GetEnvironmentMessages(ctx, envID)
	require.NoError(t, err)
	assert.Empty(t, msgs)

	// Idempotent
	purged, err = envSvc.PurgeEnvironment(ctx, envID)
	require.NoError(t, err)
	assert.Zero(t, purged)
}
