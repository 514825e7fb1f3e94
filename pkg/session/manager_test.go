package session

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showroom-hq/showroom/pkg/config"
	"github.com/showroom-hq/showroom/pkg/gateway"
	"github.com/showroom-hq/showroom/pkg/orchestrator"
)

// fakeGateway replays one canned response for every turn.
type fakeGateway struct {
	mu    sync.Mutex
	resp  *gateway.ConverseResponse
	calls int
}

func (g *fakeGateway) Converse(context.Context, *gateway.ConverseRequest, string) (*gateway.ConverseResponse, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	return g.resp, nil
}

func newTestManager(t *testing.T) (*Manager, *fakeGateway) {
	t.Helper()
	cfg, err := config.Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)
	gw := &fakeGateway{resp: &gateway.ConverseResponse{Content: "Hello!"}}
	return NewManager(cfg, gw, nil, nil, nil), gw
}

func TestManager_CreateAndGet(t *testing.T) {
	m, _ := newTestManager(t)

	env, err := m.CreateEnvironment(context.Background(), "travel", "se@example.com", nil)
	require.NoError(t, err)
	assert.NotEmpty(t, env.ID)
	assert.Equal(t, "Travel Concierge", env.Template.Name)
	require.NotNil(t, env.Autopilot)

	got, err := m.Get(env.ID)
	require.NoError(t, err)
	assert.Same(t, env, got)

	_, err = m.Get("missing")
	assert.ErrorIs(t, err, ErrEnvNotFound)
}

func TestManager_CreateDefaultsTemplate(t *testing.T) {
	m, _ := newTestManager(t)

	env, err := m.CreateEnvironment(context.Background(), "", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "travel", env.Template.ID)
}

func TestManager_CreateUnknownTemplate(t *testing.T) {
	m, _ := newTestManager(t)

	_, err := m.CreateEnvironment(context.Background(), "aerospace", "", nil)
	assert.Error(t, err)
}

func TestManager_CreateWithOverrides(t *testing.T) {
	m, _ := newTestManager(t)

	env, err := m.CreateEnvironment(context.Background(), "travel", "", &config.TemplateOverrides{
		Name:  "Acme Travel",
		Tools: []string{"search_flights"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Travel", env.Template.Name)
	assert.Equal(t, []string{"search_flights"}, env.Template.Tools)

	// The base template is untouched
	base, err := m.cfg.GetTemplate("travel")
	require.NoError(t, err)
	assert.Equal(t, "Travel Concierge", base.Name)
	assert.Len(t, base.Tools, 3)
}

func TestManager_Reset(t *testing.T) {
	m, gw := newTestManager(t)

	env, err := m.CreateEnvironment(context.Background(), "travel", "", nil)
	require.NoError(t, err)

	require.True(t, env.Orch.SendUserMessage(context.Background(), "Hi", ""))
	require.Len(t, env.Orch.Messages(), 2)
	assert.Equal(t, 1, gw.calls)

	require.NoError(t, m.Reset(context.Background(), env.ID))
	assert.Empty(t, env.Orch.Messages())
	assert.Equal(t, orchestrator.StateIdle, env.Orch.State())

	// Still registered after reset, and reset stays idempotent
	_, err = m.Get(env.ID)
	require.NoError(t, err)
	require.NoError(t, m.Reset(context.Background(), env.ID))

	assert.ErrorIs(t, m.Reset(context.Background(), "missing"), ErrEnvNotFound)
}

func TestManager_Remove(t *testing.T) {
	m, _ := newTestManager(t)

	env, err := m.CreateEnvironment(context.Background(), "banking", "", nil)
	require.NoError(t, err)
	assert.Nil(t, env.Autopilot)

	require.NoError(t, m.Remove(context.Background(), env.ID))
	_, err = m.Get(env.ID)
	assert.ErrorIs(t, err, ErrEnvNotFound)
	assert.ErrorIs(t, m.Remove(context.Background(), env.ID), ErrEnvNotFound)
}
