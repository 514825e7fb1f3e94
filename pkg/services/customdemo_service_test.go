package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showroom-hq/showroom/pkg/models"
	testdb "github.com/showroom-hq/showroom/test/database"
)

func TestCustomDemoService_SaveIsUpsert(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewCustomDemoService(client.Client)
	ctx := context.Background()

	envID := uuid.New().String()
	demo, err := svc.SaveCustomDemo(ctx, models.SaveCustomDemoRequest{
		EnvID:      envID,
		TemplateID: "travel",
		ConfigOverrides: map[string]any{
			"name":  "Acme Travel",
			"tools": []any{"search_flights"},
		},
		CreatedBy: "se@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "custom", string(demo.EnvType))
	assert.Equal(t, "Acme Travel", demo.ConfigOverrides["name"])

	// Saving again for the same environment replaces the overrides
	updated, err := svc.SaveCustomDemo(ctx, models.SaveCustomDemoRequest{
		EnvID:           envID,
		TemplateID:      "banking",
		ConfigOverrides: map[string]any{"name": "Acme Banking"},
	})
	require.NoError(t, err)
	assert.Equal(t, demo.ID, updated.ID)
	assert.Equal(t, "banking", updated.TemplateID)
	assert.Equal(t, "Acme Banking", updated.ConfigOverrides["name"])

	byEnv, err := svc.GetCustomDemoByEnv(ctx, envID)
	require.NoError(t, err)
	assert.Equal(t, demo.ID, byEnv.ID)
}

func TestCustomDemoService_GetAndDelete(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewCustomDemoService(client.Client)
	ctx := context.Background()

	demo, err := svc.SaveCustomDemo(ctx, models.SaveCustomDemoRequest{
		EnvID:      uuid.New().String(),
		TemplateID: "healthcare",
	})
	require.NoError(t, err)

	got, err := svc.GetCustomDemo(ctx, demo.ID)
	require.NoError(t, err)
	assert.Equal(t, "healthcare", got.TemplateID)

	require.NoError(t, svc.DeleteCustomDemo(ctx, demo.ID))
	_, err = svc.GetCustomDemo(ctx, demo.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.DeleteCustomDemo(ctx, demo.ID), ErrNotFound)
}

func TestCustomDemoService_List(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewCustomDemoService(client.Client)
	ctx := context.Background()

	for range 3 {
		_, err := svc.SaveCustomDemo(ctx, models.SaveCustomDemoRequest{
			EnvID:      uuid.New().String(),
			TemplateID: "travel",
		})
		require.NoError(t, err)
	}

	demos, err := svc.ListCustomDemos(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, demos, 2)
}
