package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showroom-hq/showroom/pkg/models"
)

func TestClient_Converse(t *testing.T) {
	var gotReq ConverseRequest
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/converse", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		resp := ConverseResponse{
			Content: "Here are some options",
			ToolCalls: []ToolCallDescriptor{
				{
					Type:     ToolCallExecuted,
					ToolID:   "search_flights",
					ToolName: "Search Flights",
					Scopes:   []string{"flights:read"},
					Result:   json.RawMessage(`{"flights":[{"price":199}]}`),
				},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	resp, err := client.Converse(context.Background(), &ConverseRequest{
		Messages:   []TurnMessage{{Role: models.RoleUser, Content: "Find flights"}},
		TemplateID: "travel",
		EnvID:      "env-1",
	}, "token-abc")

	require.NoError(t, err)
	assert.Equal(t, "Here are some options", resp.Content)
	require.Len(t, resp.ToolCalls, 1)
	assert.Equal(t, ToolCallExecuted, resp.ToolCalls[0].Type)
	assert.Equal(t, "Search Flights", resp.ToolCalls[0].ToolName)

	assert.Equal(t, "Bearer token-abc", gotAuth)
	assert.Equal(t, "env-1", gotReq.EnvID)
	require.Len(t, gotReq.Messages, 1)
	assert.Equal(t, models.RoleUser, gotReq.Messages[0].Role)
}

func TestClient_Converse_PendingApprovals(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req ConverseRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.PendingApprovals, 1)
		assert.Equal(t, models.DecisionApproved, req.PendingApprovals[0].Decision)
		assert.Equal(t, "book_flight", req.PendingApprovals[0].ToolID)

		_ = json.NewEncoder(w).Encode(ConverseResponse{Content: "Booked it."})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	resp, err := client.Converse(context.Background(), &ConverseRequest{
		PendingApprovals: []PendingApproval{
			{Decision: models.DecisionApproved, ToolID: "book_flight"},
		},
	}, "")
	require.NoError(t, err)
	assert.Equal(t, "Booked it.", resp.Content)
}

func TestClient_Converse_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"rate limited", http.StatusTooManyRequests, ErrRateLimited},
		{"quota exhausted", http.StatusPaymentRequired, ErrQuotaExhausted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			client := NewClient(srv.URL, 5*time.Second)
			_, err := client.Converse(context.Background(), &ConverseRequest{}, "")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("server error is generic", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := NewClient(srv.URL, 5*time.Second)
		_, err := client.Converse(context.Background(), &ConverseRequest{}, "")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrRateLimited)
		assert.NotErrorIs(t, err, ErrQuotaExhausted)
	})

	t.Run("malformed body is generic", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, 5*time.Second)
		_, err := client.Converse(context.Background(), &ConverseRequest{}, "")
		require.Error(t, err)
	})
}
