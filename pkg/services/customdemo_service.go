package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/showroom-hq/showroom/ent"
	"github.com/showroom-hq/showroom/ent/customdemo"
	"github.com/showroom-hq/showroom/pkg/models"
)

// CustomDemoService manages user-authored demo configurations.
type CustomDemoService struct {
	client *ent.Client
}

// NewCustomDemoService creates a new CustomDemoService.
func NewCustomDemoService(client *ent.Client) *CustomDemoService {
	return &CustomDemoService{client: client}
}

// SaveCustomDemo creates or updates the custom demo bound to an environment.
// One custom demo per environment; a second save replaces the overrides.
func (s *CustomDemoService) SaveCustomDemo(httpCtx context.Context, req models.SaveCustomDemoRequest) (*ent.CustomDemo, error) {
	if req.EnvID == "" {
		return nil, NewValidationError("EnvID", "required")
	}
	if req.TemplateID == "" {
		return nil, NewValidationError("TemplateID", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	existing, err := s.client.CustomDemo.Query().
		Where(customdemo.EnvIDEQ(req.EnvID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to look up custom demo: %w", err)
	}

	if existing != nil {
		update := s.client.CustomDemo.UpdateOneID(existing.ID).
			SetTemplateID(req.TemplateID).
			SetConfigOverrides(req.ConfigOverrides).
			SetUpdatedAt(time.Now())
		demo, err := update.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update custom demo: %w", err)
		}
		return demo, nil
	}

	create := s.client.CustomDemo.Create().
		SetID(uuid.New().String()).
		SetEnvID(req.EnvID).
		SetTemplateID(req.TemplateID).
		SetEnvType(customdemo.EnvTypeCustom).
		SetConfigOverrides(req.ConfigOverrides).
		SetCreatedAt(time.Now()).
		SetUpdatedAt(time.Now())
	if req.CreatedBy != "" {
		create = create.SetCreatedBy(req.CreatedBy)
	}

	demo, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create custom demo: %w", err)
	}
	return demo, nil
}

// GetCustomDemo retrieves a custom demo by ID.
func (s *CustomDemoService) GetCustomDemo(ctx context.Context, demoID string) (*ent.CustomDemo, error) {
	demo, err := s.client.CustomDemo.Get(ctx, demoID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get custom demo: %w", err)
	}
	return demo, nil
}

// GetCustomDemoByEnv retrieves the custom demo bound to an environment.
func (s *CustomDemoService) GetCustomDemoByEnv(ctx context.Context, envID string) (*ent.CustomDemo, error) {
	demo, err := s.client.CustomDemo.Query().
		Where(customdemo.EnvIDEQ(envID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get custom demo: %w", err)
	}
	return demo, nil
}

// ListCustomDemos returns custom demos, newest first.
func (s *CustomDemoService) ListCustomDemos(ctx context.Context, limit int) ([]*ent.CustomDemo, error) {
	if limit <= 0 {
		limit = 50
	}
	demos, err := s.client.CustomDemo.Query().
		Order(ent.Desc(customdemo.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list custom demos: %w", err)
	}
	return demos, nil
}

// DeleteCustomDemo removes a custom demo.
func (s *CustomDemoService) DeleteCustomDemo(ctx context.Context, demoID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.client.CustomDemo.DeleteOneID(demoID).Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete custom demo: %w", err)
	}
	return nil
}
