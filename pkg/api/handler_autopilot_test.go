package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showroom-hq/showroom/pkg/gateway"
)

func TestAutopilotHandlers(t *testing.T) {
	t.Run("template without a script", func(t *testing.T) {
		s, _, _ := newTestServer(t)
		envID := createTestEnvironment(t, s, "banking")

		rec := doJSON(t, s, http.MethodGet, "/api/v1/environments/"+envID+"/autopilot", "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = doJSON(t, s, http.MethodPost, "/api/v1/environments/"+envID+"/autopilot/start", "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("start advance stop", func(t *testing.T) {
		s, _, gw := newTestServer(t)
		envID := createTestEnvironment(t, s, "travel")

		// Advancing before start is a conflict
		rec := doJSON(t, s, http.MethodPost, "/api/v1/environments/"+envID+"/autopilot/advance", "", nil)
		assert.Equal(t, http.StatusConflict, rec.Code)

		var ap AutopilotResponse
		rec = doJSON(t, s, http.MethodPost, "/api/v1/environments/"+envID+"/autopilot/start", "", &ap)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, ap.Active)
		assert.Equal(t, 0, ap.StepIndex)
		assert.Equal(t, 3, ap.Remaining)

		gw.reply(&gateway.ConverseResponse{Content: "Here are some options."})
		rec = doJSON(t, s, http.MethodPost, "/api/v1/environments/"+envID+"/autopilot/advance", "", &ap)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, ap.Accepted)
		require.NotNil(t, ap.Step)
		assert.Equal(t, "Search", ap.Step.Label)
		assert.Equal(t, 1, ap.StepIndex)
		assert.Equal(t, 2, ap.Remaining)

		rec = doJSON(t, s, http.MethodPost, "/api/v1/environments/"+envID+"/autopilot/stop", "", &ap)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, ap.Active)
		assert.Equal(t, 0, ap.StepIndex)
	})
}
