package api

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showroom-hq/showroom/ent"
	"github.com/showroom-hq/showroom/pkg/services"
	testdb "github.com/showroom-hq/showroom/test/database"
)

func TestDemoHandlers_ServiceNotConfigured(t *testing.T) {
	s, _, _ := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/api/v1/demos", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = doJSON(t, s, http.MethodPost, "/api/v1/demos", `{"env_id":"x","template_id":"travel"}`, nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestDemoHandlers(t *testing.T) {
	client := testdb.NewTestClient(t)
	s, _, _ := newTestServer(t)
	s.SetCustomDemoService(services.NewCustomDemoService(client.Client))

	envID := uuid.New().String()

	t.Run("save validates", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodPost, "/api/v1/demos", `{"template_id":"travel"}`, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = doJSON(t, s, http.MethodPost, "/api/v1/demos", `{"env_id":"`+envID+`","template_id":"aerospace"}`, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("save get delete", func(t *testing.T) {
		var demo ent.CustomDemo
		rec := doJSON(t, s, http.MethodPost, "/api/v1/demos",
			`{"env_id":"`+envID+`","template_id":"travel","config_overrides":{"name":"Acme Travel"}}`, &demo)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Acme Travel", demo.ConfigOverrides["name"])

		var got ent.CustomDemo
		rec = doJSON(t, s, http.MethodGet, "/api/v1/demos/"+demo.ID, "", &got)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "travel", got.TemplateID)

		var demos []*ent.CustomDemo
		rec = doJSON(t, s, http.MethodGet, "/api/v1/demos", "", &demos)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, demos, 1)

		rec = doJSON(t, s, http.MethodDelete, "/api/v1/demos/"+demo.ID, "", nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = doJSON(t, s, http.MethodGet, "/api/v1/demos/"+demo.ID, "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("bad limit", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodGet, "/api/v1/demos?limit=0", "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
