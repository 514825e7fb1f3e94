package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthHandler(t *testing.T) {
	s, _, _ := newTestServer(t)
	createTestEnvironment(t, s, "travel")

	var resp HealthResponse
	rec := doJSON(t, s, http.MethodGet, "/health", "", &resp)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, healthStatusHealthy, resp.Status)
	assert.Nil(t, resp.Database)
	assert.Equal(t, 3, resp.Configuration.Templates)
	assert.NotZero(t, resp.Configuration.Tools)
	assert.Equal(t, 1, resp.Environments)
}
