package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showroom-hq/showroom/pkg/config"
	"github.com/showroom-hq/showroom/pkg/gateway"
	"github.com/showroom-hq/showroom/pkg/models"
	"github.com/showroom-hq/showroom/pkg/services"
	"github.com/showroom-hq/showroom/pkg/session"
	testdb "github.com/showroom-hq/showroom/test/database"
)

type nopGateway struct{}

func (nopGateway) Converse(context.Context, *gateway.ConverseRequest, string) (*gateway.ConverseResponse, error) {
	return &gateway.ConverseResponse{Content: "ok"}, nil
}

func newTestManager(t *testing.T) *session.Manager {
	t.Helper()
	cfg, err := config.Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)
	return session.NewManager(cfg, nopGateway{}, nil, nil, nil)
}

func TestReapIdleEnvironments(t *testing.T) {
	mgr := newTestManager(t)
	ctx := context.Background()

	env, err := mgr.CreateEnvironment(ctx, "travel", "", nil)
	require.NoError(t, err)

	// Generous TTL: nothing is idle yet.
	svc := NewService(Options{EnvironmentIdleTTL: time.Hour}, mgr, nil)
	svc.RunAll(ctx)
	_, err = mgr.Get(env.ID)
	assert.NoError(t, err)

	// A TTL shorter than the environment's age reaps it.
	time.Sleep(5 * time.Millisecond)
	svc = NewService(Options{EnvironmentIdleTTL: time.Nanosecond}, mgr, nil)
	svc.RunAll(ctx)
	_, err = mgr.Get(env.ID)
	assert.ErrorIs(t, err, session.ErrEnvNotFound)
}

func TestTouchKeepsEnvironmentAlive(t *testing.T) {
	mgr := newTestManager(t)
	ctx := context.Background()

	env, err := mgr.CreateEnvironment(ctx, "banking", "", nil)
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)
	mgr.TouchInteraction(ctx, env.ID)

	assert.Empty(t, mgr.IdleEnvironments(10*time.Millisecond))
}

func TestCleanupExpiredEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := services.NewEventService(client.Client)
	mgr := newTestManager(t)
	ctx := context.Background()

	envID := uuid.New().String()
	for range 3 {
		_, err := eventService.CreateEvent(ctx, models.CreateEventRequest{
			EnvID:   envID,
			Channel: "env:" + envID,
			Payload: map[string]any{"type": "notice"},
		})
		require.NoError(t, err)
	}

	time.Sleep(5 * time.Millisecond)
	svc := NewService(Options{EventTTL: time.Nanosecond, EnvironmentIdleTTL: time.Hour}, mgr, eventService)
	svc.RunAll(ctx)

	remaining, err := eventService.GetEventsSince(ctx, "env:"+envID, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestStartStop(t *testing.T) {
	mgr := newTestManager(t)
	svc := NewService(Options{Interval: time.Hour}, mgr, nil)

	svc.Start(context.Background())
	svc.Stop()
}
