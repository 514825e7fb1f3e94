package services

import (
	"context"
	"fmt"
	"time"

	"github.com/showroom-hq/showroom/ent"
	"github.com/showroom-hq/showroom/ent/chatmessage"
	"github.com/showroom-hq/showroom/ent/demoenvironment"
	"github.com/showroom-hq/showroom/ent/event"
	"github.com/showroom-hq/showroom/ent/timelineevent"
	"github.com/showroom-hq/showroom/pkg/models"
)

// EnvironmentService manages demo environment records.
type EnvironmentService struct {
	client *ent.Client
}

// NewEnvironmentService creates a new EnvironmentService.
func NewEnvironmentService(client *ent.Client) *EnvironmentService {
	return &EnvironmentService{client: client}
}

// CreateEnvironment registers a new demo environment.
func (s *EnvironmentService) CreateEnvironment(httpCtx context.Context, req models.CreateEnvironmentRequest) (*ent.DemoEnvironment, error) {
	if req.EnvID == "" {
		return nil, NewValidationError("EnvID", "required")
	}
	if req.TemplateID == "" {
		return nil, NewValidationError("TemplateID", "required")
	}

	envType := demoenvironment.EnvType(req.EnvType)
	if req.EnvType == "" {
		envType = demoenvironment.EnvTypeTemplate
	}
	if err := demoenvironment.EnvTypeValidator(envType); err != nil {
		return nil, NewValidationError("EnvType", "must be template or custom")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	create := s.client.DemoEnvironment.Create().
		SetID(req.EnvID).
		SetTemplateID(req.TemplateID).
		SetEnvType(envType).
		SetCreatedAt(time.Now())
	if req.CreatedBy != "" {
		create = create.SetCreatedBy(req.CreatedBy)
	}

	env, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create environment: %w", err)
	}
	return env, nil
}

// GetEnvironment retrieves an environment by ID.
func (s *EnvironmentService) GetEnvironment(ctx context.Context, envID string) (*ent.DemoEnvironment, error) {
	env, err := s.client.DemoEnvironment.Get(ctx, envID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get environment: %w", err)
	}
	return env, nil
}

// ListEnvironments returns environments, newest first.
func (s *EnvironmentService) ListEnvironments(ctx context.Context, limit int) ([]*ent.DemoEnvironment, error) {
	if limit <= 0 {
		limit = 50
	}
	envs, err := s.client.DemoEnvironment.Query().
		Order(ent.Desc(demoenvironment.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list environments: %w", err)
	}
	return envs, nil
}

// TouchInteraction bumps last_interaction_at. Best-effort; a missing row is
// reported as ErrNotFound so callers can lazily create the record.
func (s *EnvironmentService) TouchInteraction(ctx context.Context, envID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.DemoEnvironment.UpdateOneID(envID).
		SetLastInteractionAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to touch environment: %w", err)
	}
	return nil
}

// PurgeEnvironment deletes all persisted conversation, timeline, and event
// rows for an environment while keeping the environment record itself.
// Idempotent: purging an already-empty environment succeeds with zero counts.
func (s *EnvironmentService) PurgeEnvironment(ctx context.Context, envID string) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	total := 0
	n, err := s.client.ChatMessage.Delete().
		Where(chatmessage.EnvIDEQ(envID)).
		Exec(writeCtx)
	if err != nil {
		return total, fmt.Errorf("failed to purge messages: %w", err)
	}
	total += n

	n, err = s.client.TimelineEvent.Delete().
		Where(timelineevent.EnvIDEQ(envID)).
		Exec(writeCtx)
	if err != nil {
		return total, fmt.Errorf("failed to purge timeline events: %w", err)
	}
	total += n

	n, err = s.client.Event.Delete().
		Where(event.EnvIDEQ(envID)).
		Exec(writeCtx)
	if err != nil {
		return total, fmt.Errorf("failed to purge events: %w", err)
	}
	total += n

	return total, nil
}

// DeleteEnvironment removes the environment record and, via cascade, its
// messages and timeline events.
func (s *EnvironmentService) DeleteEnvironment(ctx context.Context, envID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.client.DemoEnvironment.DeleteOneID(envID).Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete environment: %w", err)
	}
	return nil
}
