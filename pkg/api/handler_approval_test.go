package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showroom-hq/showroom/pkg/gateway"
	"github.com/showroom-hq/showroom/pkg/models"
	"github.com/showroom-hq/showroom/pkg/orchestrator"
)

// suspendOnApproval drives an environment into the awaiting-approval state
// and returns the pending request.
func suspendOnApproval(t *testing.T, s *Server, gw *scriptedGateway, envID string) *models.ApprovalRequest {
	t.Helper()
	gw.reply(&gateway.ConverseResponse{
		ToolCalls: []gateway.ToolCallDescriptor{{
			Type:     gateway.ToolCallApprovalRequired,
			ToolID:   "book_flight",
			ToolName: "Book Flight",
			Scopes:   []string{"bookings:write"},
			Args:     json.RawMessage(`{"flight":"SR-101"}`),
		}},
	})

	var turn TurnResponse
	rec := doJSON(t, s, http.MethodPost, "/api/v1/environments/"+envID+"/messages", `{"content":"Book it"}`, &turn)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, turn.PendingApproval)
	return turn.PendingApproval
}

func TestGetApprovalHandler(t *testing.T) {
	s, _, gw := newTestServer(t)
	envID := createTestEnvironment(t, s, "travel")

	rec := doJSON(t, s, http.MethodGet, "/api/v1/environments/"+envID+"/approval", "", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	pending := suspendOnApproval(t, s, gw, envID)

	var req models.ApprovalRequest
	rec = doJSON(t, s, http.MethodGet, "/api/v1/environments/"+envID+"/approval", "", &req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, pending.ID, req.ID)
	assert.Equal(t, "Book Flight", req.ToolName)
}

func TestResolveApprovalHandler(t *testing.T) {
	t.Run("approve resumes the turn", func(t *testing.T) {
		s, _, gw := newTestServer(t)
		envID := createTestEnvironment(t, s, "travel")
		pending := suspendOnApproval(t, s, gw, envID)

		gw.reply(&gateway.ConverseResponse{
			Content: "Booked! Confirmation SR-101.",
			ToolCalls: []gateway.ToolCallDescriptor{{
				Type:   gateway.ToolCallExecuted,
				ToolID: "book_flight",
				Result: json.RawMessage(`{"confirmation":"SR-101"}`),
			}},
		})

		var resp ResolveApprovalResponse
		rec := doJSON(t, s, http.MethodPost, "/api/v1/environments/"+envID+"/approval",
			`{"request_id":"`+pending.ID+`","decision":"approved"}`, &resp)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, resp.Resolved)
		assert.Equal(t, orchestrator.StateIdle, resp.State)

		var msgs []*models.ChatMessage
		doJSON(t, s, http.MethodGet, "/api/v1/environments/"+envID+"/messages", "", &msgs)
		require.NotEmpty(t, msgs)
		assert.Equal(t, "Booked! Confirmation SR-101.", msgs[len(msgs)-1].Content)
	})

	t.Run("duplicate decision is a no-op", func(t *testing.T) {
		s, _, gw := newTestServer(t)
		envID := createTestEnvironment(t, s, "travel")
		pending := suspendOnApproval(t, s, gw, envID)

		gw.reply(&gateway.ConverseResponse{Content: "Done."})
		body := `{"request_id":"` + pending.ID + `","decision":"approved"}`

		var resp ResolveApprovalResponse
		rec := doJSON(t, s, http.MethodPost, "/api/v1/environments/"+envID+"/approval", body, &resp)
		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, resp.Resolved)

		rec = doJSON(t, s, http.MethodPost, "/api/v1/environments/"+envID+"/approval", body, &resp)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, resp.Resolved)
	})

	t.Run("mismatched request id", func(t *testing.T) {
		s, _, gw := newTestServer(t)
		envID := createTestEnvironment(t, s, "travel")
		suspendOnApproval(t, s, gw, envID)

		rec := doJSON(t, s, http.MethodPost, "/api/v1/environments/"+envID+"/approval",
			`{"request_id":"wrong-id","decision":"approved"}`, nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("validation", func(t *testing.T) {
		s, _, _ := newTestServer(t)
		envID := createTestEnvironment(t, s, "travel")

		rec := doJSON(t, s, http.MethodPost, "/api/v1/environments/"+envID+"/approval",
			`{"decision":"approved"}`, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = doJSON(t, s, http.MethodPost, "/api/v1/environments/"+envID+"/approval",
			`{"request_id":"x","decision":"maybe"}`, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
