// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/showroom-hq/showroom/pkg/services"
	"github.com/showroom-hq/showroom/pkg/session"
)

// Options configure the cleanup loop. Zero values fall back to defaults.
type Options struct {
	// How often the loop runs
	Interval time.Duration

	// Retention for persisted realtime events
	EventTTL time.Duration

	// Environments with no interaction for this long are torn down
	EnvironmentIdleTTL time.Duration
}

const (
	defaultInterval = 15 * time.Minute
	defaultEventTTL = 24 * time.Hour
	defaultIdleTTL  = 4 * time.Hour
)

// Service periodically enforces retention policies:
//   - Tears down demo environments idle past their TTL
//   - Removes persisted Event rows past their TTL
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	opts     Options
	sessions *session.Manager
	events   *services.EventService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service. events may be nil when the
// service runs without a database; only idle-environment reaping runs then.
func NewService(opts Options, sessions *session.Manager, events *services.EventService) *Service {
	if opts.Interval <= 0 {
		opts.Interval = defaultInterval
	}
	if opts.EventTTL <= 0 {
		opts.EventTTL = defaultEventTTL
	}
	if opts.EnvironmentIdleTTL <= 0 {
		opts.EnvironmentIdleTTL = defaultIdleTTL
	}
	return &Service{
		opts:     opts,
		sessions: sessions,
		events:   events,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"interval", s.opts.Interval,
		"event_ttl", s.opts.EventTTL,
		"environment_idle_ttl", s.opts.EnvironmentIdleTTL)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunAll(ctx)

	ticker := time.NewTicker(s.opts.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunAll(ctx)
		}
	}
}

// RunAll executes one retention pass. Exported so operators can trigger a
// pass out of band.
func (s *Service) RunAll(ctx context.Context) {
	s.reapIdleEnvironments(ctx)
	s.cleanupExpiredEvents(ctx)
}

func (s *Service) reapIdleEnvironments(ctx context.Context) {
	ids := s.sessions.IdleEnvironments(s.opts.EnvironmentIdleTTL)
	for _, id := range ids {
		if err := s.sessions.Remove(ctx, id); err != nil {
			slog.Error("Retention: environment teardown failed", "env_id", id, "error", err)
			continue
		}
		slog.Info("Retention: tore down idle environment", "env_id", id)
	}
}

func (s *Service) cleanupExpiredEvents(_ context.Context) {
	if s.events == nil {
		return
	}
	count, err := s.events.CleanupExpiredEvents(context.Background(), s.opts.EventTTL)
	if err != nil {
		slog.Error("Retention: event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: cleaned up expired events", "count", count)
	}
}
