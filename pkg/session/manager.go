// Package session manages live demo environments: one orchestrator per
// environment, created on bootstrap and discarded on teardown. The manager
// is the seam between the HTTP layer and the orchestrator core.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/showroom-hq/showroom/pkg/config"
	"github.com/showroom-hq/showroom/pkg/events"
	"github.com/showroom-hq/showroom/pkg/models"
	"github.com/showroom-hq/showroom/pkg/orchestrator"
	"github.com/showroom-hq/showroom/pkg/services"
)

// ErrEnvNotFound is returned when no live environment exists for an ID.
var ErrEnvNotFound = errors.New("environment not found")

// Environment is one live demo session.
type Environment struct {
	ID        string
	Template  *config.DemoTemplate
	Orch      *orchestrator.Orchestrator
	Autopilot *orchestrator.Autopilot
	CreatedAt time.Time

	lastActive time.Time // guarded by the manager's mutex
}

// Manager owns the in-memory environment registry. The registry, not the
// database, decides what exists: persistence is a best-effort mirror and a
// dead database never blocks a demo.
type Manager struct {
	mu   sync.RWMutex
	envs map[string]*Environment

	cfg          *config.Config
	client       orchestrator.AgentClient
	sink         orchestrator.Sink
	environments *services.EnvironmentService
	publisher    *events.EventPublisher
	logger       *slog.Logger
}

// NewManager creates an environment manager. environments and publisher may
// be nil in tests; persistence is skipped where they are absent.
func NewManager(cfg *config.Config, client orchestrator.AgentClient, sink orchestrator.Sink, environments *services.EnvironmentService, publisher *events.EventPublisher) *Manager {
	if sink == nil {
		sink = orchestrator.NopSink{}
	}
	return &Manager{
		envs:         make(map[string]*Environment),
		cfg:          cfg,
		client:       client,
		sink:         sink,
		environments: environments,
		publisher:    publisher,
		logger:       slog.Default().With("component", "session_manager"),
	}
}

// CreateEnvironment bootstraps a new environment from a template, with
// optional builder overrides. The environment record is persisted
// best-effort; the in-memory environment is created regardless.
func (m *Manager) CreateEnvironment(ctx context.Context, templateID, createdBy string, overrides *config.TemplateOverrides) (*Environment, error) {
	if templateID == "" {
		templateID = m.cfg.Defaults.TemplateID
	}
	base, err := m.cfg.GetTemplate(templateID)
	if err != nil {
		return nil, err
	}
	tmpl := config.ApplyOverrides(base, overrides)

	envID := uuid.New().String()
	envType := "template"
	if overrides != nil {
		envType = "custom"
	}

	if m.environments != nil {
		if _, err := m.environments.CreateEnvironment(ctx, models.CreateEnvironmentRequest{
			EnvID:      envID,
			TemplateID: templateID,
			EnvType:    envType,
			CreatedBy:  createdBy,
		}); err != nil {
			m.logger.Warn("Failed to persist environment record", "env_id", envID, "error", err)
		}
	}

	orch := orchestrator.New(orchestrator.Options{
		EnvID:    envID,
		Template: tmpl,
		Config:   m.cfg,
		Client:   m.client,
		Sink:     m.sink,
	})

	now := time.Now()
	env := &Environment{
		ID:         envID,
		Template:   tmpl,
		Orch:       orch,
		Autopilot:  orchestrator.NewAutopilot(orch),
		CreatedAt:  now,
		lastActive: now,
	}

	m.mu.Lock()
	m.envs[envID] = env
	m.mu.Unlock()

	m.logger.Info("Environment created", "env_id", envID, "template", templateID, "env_type", envType)
	return env, nil
}

// Get retrieves a live environment.
func (m *Manager) Get(envID string) (*Environment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	env, ok := m.envs[envID]
	if !ok {
		return nil, ErrEnvNotFound
	}
	return env, nil
}

// List returns all live environments.
func (m *Manager) List() []*Environment {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Environment, 0, len(m.envs))
	for _, env := range m.envs {
		out = append(out, env)
	}
	return out
}

// TouchInteraction bumps the environment's last-interaction timestamp,
// in memory and best-effort in the persisted mirror.
func (m *Manager) TouchInteraction(ctx context.Context, envID string) {
	m.mu.Lock()
	if env, ok := m.envs[envID]; ok {
		env.lastActive = time.Now()
	}
	m.mu.Unlock()

	if m.environments == nil {
		return
	}
	if err := m.environments.TouchInteraction(ctx, envID); err != nil {
		m.logger.Debug("Failed to touch environment", "env_id", envID, "error", err)
	}
}

// IdleEnvironments returns the IDs of environments with no interaction for at
// least idleFor.
func (m *Manager) IdleEnvironments(idleFor time.Duration) []string {
	cutoff := time.Now().Add(-idleFor)
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []string
	for id, env := range m.envs {
		if env.lastActive.Before(cutoff) {
			out = append(out, id)
		}
	}
	return out
}

// Reset wipes an environment back to its bootstrap state. The local wipe
// always succeeds; purging the persisted mirror is best-effort and a failure
// there never surfaces to the caller. Idempotent.
func (m *Manager) Reset(ctx context.Context, envID string) error {
	env, err := m.Get(envID)
	if err != nil {
		return err
	}

	if env.Autopilot != nil {
		env.Autopilot.Stop()
	}
	generation := env.Orch.Reset(ctx)

	if m.environments != nil {
		if _, err := m.environments.PurgeEnvironment(ctx, envID); err != nil {
			m.logger.Warn("Remote purge failed, local reset stands", "env_id", envID, "error", err)
		}
	}

	if m.publisher != nil {
		if err := m.publisher.PublishEnvironmentReset(ctx, envID, events.EnvironmentResetPayload{
			BasePayload: events.NewBase(events.EventTypeEnvironmentReset, envID),
			Generation:  generation,
		}); err != nil {
			m.logger.Warn("Failed to publish reset event", "env_id", envID, "error", err)
		}
	}

	return nil
}

// Remove discards a live environment and its persisted mirror.
func (m *Manager) Remove(ctx context.Context, envID string) error {
	m.mu.Lock()
	_, ok := m.envs[envID]
	delete(m.envs, envID)
	m.mu.Unlock()
	if !ok {
		return ErrEnvNotFound
	}

	if m.environments != nil {
		if err := m.environments.DeleteEnvironment(ctx, envID); err != nil && !errors.Is(err, services.ErrNotFound) {
			m.logger.Warn("Failed to delete environment record", "env_id", envID, "error", err)
		}
	}
	return nil
}
