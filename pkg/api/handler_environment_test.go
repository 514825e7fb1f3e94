package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showroom-hq/showroom/pkg/gateway"
	"github.com/showroom-hq/showroom/pkg/orchestrator"
)

func TestCreateEnvironmentHandler(t *testing.T) {
	s, _, _ := newTestServer(t)

	t.Run("creates from template", func(t *testing.T) {
		var env EnvironmentResponse
		rec := doJSON(t, s, http.MethodPost, "/api/v1/environments", `{"template_id":"travel"}`, &env)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "travel", env.TemplateID)
		assert.Equal(t, "Travel Concierge", env.TemplateName)
		assert.Equal(t, orchestrator.StateIdle, env.State)
		assert.True(t, env.HasAutopilot)
	})

	t.Run("empty body falls back to default template", func(t *testing.T) {
		var env EnvironmentResponse
		rec := doJSON(t, s, http.MethodPost, "/api/v1/environments", `{}`, &env)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "travel", env.TemplateID)
	})

	t.Run("unknown template", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodPost, "/api/v1/environments", `{"template_id":"aerospace"}`, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("overrides shape the session", func(t *testing.T) {
		var env EnvironmentResponse
		rec := doJSON(t, s, http.MethodPost, "/api/v1/environments",
			`{"template_id":"travel","overrides":{"name":"Acme Travel"}}`, &env)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "Acme Travel", env.TemplateName)
	})
}

func TestGetEnvironmentHandler(t *testing.T) {
	s, _, _ := newTestServer(t)
	envID := createTestEnvironment(t, s, "banking")

	var env EnvironmentResponse
	rec := doJSON(t, s, http.MethodGet, "/api/v1/environments/"+envID, "", &env)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "banking", env.TemplateID)
	assert.False(t, env.HasAutopilot)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/environments/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListEnvironmentsHandler(t *testing.T) {
	s, _, _ := newTestServer(t)
	createTestEnvironment(t, s, "travel")
	createTestEnvironment(t, s, "banking")

	var envs []EnvironmentResponse
	rec := doJSON(t, s, http.MethodGet, "/api/v1/environments", "", &envs)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, envs, 2)
}

func TestResetEnvironmentHandler(t *testing.T) {
	s, mgr, gw := newTestServer(t)
	gw.reply(&gateway.ConverseResponse{Content: "Hello!"})
	envID := createTestEnvironment(t, s, "travel")

	rec := doJSON(t, s, http.MethodPost, "/api/v1/environments/"+envID+"/messages", `{"content":"Hi"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var reset ResetResponse
	rec = doJSON(t, s, http.MethodPost, "/api/v1/environments/"+envID+"/reset", "", &reset)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, envID, reset.EnvID)
	assert.Equal(t, 1, reset.Generation)

	env, err := mgr.Get(envID)
	require.NoError(t, err)
	assert.Empty(t, env.Orch.Messages())

	// Repeating the reset is harmless
	rec = doJSON(t, s, http.MethodPost, "/api/v1/environments/"+envID+"/reset", "", &reset)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, reset.Generation)

	rec = doJSON(t, s, http.MethodPost, "/api/v1/environments/missing/reset", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteEnvironmentHandler(t *testing.T) {
	s, _, _ := newTestServer(t)
	envID := createTestEnvironment(t, s, "travel")

	rec := doJSON(t, s, http.MethodDelete, "/api/v1/environments/"+envID, "", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/environments/"+envID, "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, s, http.MethodDelete, "/api/v1/environments/"+envID, "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
