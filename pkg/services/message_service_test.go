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

func TestMessageService_AppendAndRetrieve(t *testing.T) {
	client := testdb.NewTestClient(t)
	envSvc := NewEnvironmentService(client.Client)
	msgSvc := NewMessageService(client.Client)
	ctx := context.Background()

	envID := uuid.New().String()
	_, err := envSvc.CreateEnvironment(ctx, models.CreateEnvironmentRequest{EnvID: envID, TemplateID: "travel"})
	require.NoError(t, err)

	_, err = msgSvc.AppendMessage(ctx, models.AppendMessageRequest{
		EnvID:          envID,
		SequenceNumber: 1,
		Role:           models.RoleUser,
		Content:        "Find me a flight",
	})
	require.NoError(t, err)

	_, err = msgSvc.AppendMessage(ctx, models.AppendMessageRequest{
		EnvID:          envID,
		SequenceNumber: 2,
		Role:           models.RoleAssistant,
		Content:        "Here are some options",
		ToolCalls: []*models.ToolCallDisplay{
			{ID: "tc-1", ToolName: "Search Flights", Status: models.ToolCallCompleted, Result: `{"flights":[]}`},
		},
	})
	require.NoError(t, err)

	msgs, err := msgSvc.GetEnvironmentMessages(ctx, envID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "user", string(msgs[0].Role))
	assert.Equal(t, "Find me a flight", msgs[0].Content)
	require.Len(t, msgs[1].ToolCalls, 1)
	assert.Equal(t, "Search Flights", msgs[1].ToolCalls[0]["tool_name"])

	n, err := msgSvc.CountEnvironmentMessages(ctx, envID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestMessageService_Validation(t *testing.T) {
	client := testdb.NewTestClient(t)
	msgSvc := NewMessageService(client.Client)
	ctx := context.Background()

	_, err := msgSvc.AppendMessage(ctx, models.AppendMessageRequest{
		SequenceNumber: 1, Role: models.RoleUser, Content: "hi",
	})
	assert.True(t, IsValidationError(err))

	_, err = msgSvc.AppendMessage(ctx, models.AppendMessageRequest{
		EnvID: "env-1", Role: models.RoleUser, Content: "hi",
	})
	assert.True(t, IsValidationError(err))

	_, err = msgSvc.AppendMessage(ctx, models.AppendMessageRequest{
		EnvID: "env-1", SequenceNumber: 1, Role: "robot", Content: "hi",
	})
	assert.True(t, IsValidationError(err))
}
