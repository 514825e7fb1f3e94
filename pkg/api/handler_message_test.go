package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showroom-hq/showroom/pkg/gateway"
	"github.com/showroom-hq/showroom/pkg/models"
	"github.com/showroom-hq/showroom/pkg/orchestrator"
)

func TestSendMessageHandler(t *testing.T) {
	t.Run("plain turn", func(t *testing.T) {
		s, _, gw := newTestServer(t)
		gw.reply(&gateway.ConverseResponse{Content: "Happy to help with flights."})
		envID := createTestEnvironment(t, s, "travel")

		var turn TurnResponse
		rec := doJSON(t, s, http.MethodPost, "/api/v1/environments/"+envID+"/messages",
			`{"content":"Find me a flight"}`, &turn)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, turn.Accepted)
		assert.Equal(t, orchestrator.StateIdle, turn.State)
		assert.Nil(t, turn.PendingApproval)

		var msgs []*models.ChatMessage
		rec = doJSON(t, s, http.MethodGet, "/api/v1/environments/"+envID+"/messages", "", &msgs)
		assert.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, msgs, 2)
		assert.Equal(t, models.RoleUser, msgs[0].Role)
		assert.Equal(t, "Happy to help with flights.", msgs[1].Content)
	})

	t.Run("turn suspends on approval", func(t *testing.T) {
		s, _, gw := newTestServer(t)
		gw.reply(&gateway.ConverseResponse{
			Content: "I can book that for you.",
			ToolCalls: []gateway.ToolCallDescriptor{{
				Type:     gateway.ToolCallApprovalRequired,
				ToolID:   "book_flight",
				ToolName: "Book Flight",
				Scopes:   []string{"bookings:write"},
				Args:     json.RawMessage(`{"price":420}`),
			}},
		})
		envID := createTestEnvironment(t, s, "travel")

		var turn TurnResponse
		rec := doJSON(t, s, http.MethodPost, "/api/v1/environments/"+envID+"/messages",
			`{"content":"Book it"}`, &turn)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, orchestrator.StateAwaitingApproval, turn.State)
		require.NotNil(t, turn.PendingApproval)
		assert.Equal(t, "Book Flight", turn.PendingApproval.ToolName)

		// A second message while suspended is quietly ignored
		var second TurnResponse
		rec = doJSON(t, s, http.MethodPost, "/api/v1/environments/"+envID+"/messages",
			`{"content":"hurry up"}`, &second)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, second.Accepted)
		assert.Equal(t, orchestrator.StateAwaitingApproval, second.State)
	})

	t.Run("validation", func(t *testing.T) {
		s, _, _ := newTestServer(t)
		envID := createTestEnvironment(t, s, "travel")

		rec := doJSON(t, s, http.MethodPost, "/api/v1/environments/"+envID+"/messages", `{"content":""}`, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		long := `{"content":"` + strings.Repeat("a", maxMessageLength+1) + `"}`
		rec = doJSON(t, s, http.MethodPost, "/api/v1/environments/"+envID+"/messages", long, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = doJSON(t, s, http.MethodPost, "/api/v1/environments/missing/messages", `{"content":"hi"}`, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestGetTimelineHandler(t *testing.T) {
	s, _, gw := newTestServer(t)
	gw.reply(&gateway.ConverseResponse{Content: "Hello!"})
	envID := createTestEnvironment(t, s, "travel")

	rec := doJSON(t, s, http.MethodPost, "/api/v1/environments/"+envID+"/messages", `{"content":"Hi"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var events []*models.TimelineEvent
	rec = doJSON(t, s, http.MethodGet, "/api/v1/environments/"+envID+"/timeline", "", &events)
	assert.Equal(t, http.StatusOK, rec.Code)
	// Newest first: user message event on top of the bootstrap auth event.
	require.Len(t, events, 2)
	assert.Equal(t, models.TimelineMessage, events[0].Type)
	assert.Equal(t, models.TimelineAuth, events[1].Type)
}
