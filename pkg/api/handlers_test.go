package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/showroom-hq/showroom/pkg/config"
	"github.com/showroom-hq/showroom/pkg/gateway"
	"github.com/showroom-hq/showroom/pkg/session"
)

// scriptedGateway pops canned replies in order.
type scriptedGateway struct {
	mu      sync.Mutex
	replies []*gateway.ConverseResponse
}

func (g *scriptedGateway) reply(resp *gateway.ConverseResponse) *scriptedGateway {
	g.replies = append(g.replies, resp)
	return g
}

func (g *scriptedGateway) Converse(context.Context, *gateway.ConverseRequest, string) (*gateway.ConverseResponse, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.replies) == 0 {
		return nil, errors.New("scripted gateway exhausted")
	}
	next := g.replies[0]
	g.replies = g.replies[1:]
	return next, nil
}

// newTestServer creates a Server backed by an in-memory session manager and
// a scripted gateway. No database.
func newTestServer(t *testing.T) (*Server, *session.Manager, *scriptedGateway) {
	t.Helper()
	cfg, err := config.Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)
	gw := &scriptedGateway{}
	mgr := session.NewManager(cfg, gw, nil, nil, nil)
	return NewServer(cfg, nil, mgr, nil), mgr, gw
}

// doJSON performs a request against the server's router and decodes the JSON
// response into out (when out is non-nil).
func doJSON(t *testing.T, s *Server, method, target string, body string, out any) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	if out != nil && rec.Code < 300 && rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec
}

// createTestEnvironment creates an environment through the API and returns its ID.
func createTestEnvironment(t *testing.T, s *Server, templateID string) string {
	t.Helper()
	var env EnvironmentResponse
	rec := doJSON(t, s, http.MethodPost, "/api/v1/environments", `{"template_id":"`+templateID+`"}`, &env)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotEmpty(t, env.EnvID)
	return env.EnvID
}
