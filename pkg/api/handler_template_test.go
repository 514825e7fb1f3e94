package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showroom-hq/showroom/pkg/config"
)

func TestListTemplatesHandler(t *testing.T) {
	s, _, _ := newTestServer(t)

	var templates []*config.DemoTemplate
	rec := doJSON(t, s, http.MethodGet, "/api/v1/templates", "", &templates)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, templates, 3)

	ids := make([]string, 0, len(templates))
	for _, tmpl := range templates {
		ids = append(ids, tmpl.ID)
	}
	assert.Contains(t, ids, "travel")
	assert.Contains(t, ids, "banking")
	assert.Contains(t, ids, "healthcare")
}

func TestGetTemplateHandler(t *testing.T) {
	s, _, _ := newTestServer(t)

	var tmpl config.DemoTemplate
	rec := doJSON(t, s, http.MethodGet, "/api/v1/templates/travel", "", &tmpl)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Travel Concierge", tmpl.Name)
	require.NotNil(t, tmpl.Autopilot)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/templates/aerospace", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListToolsHandler(t *testing.T) {
	s, _, _ := newTestServer(t)

	var tools []*config.ToolDef
	rec := doJSON(t, s, http.MethodGet, "/api/v1/tools", "", &tools)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, tools)

	byID := make(map[string]*config.ToolDef, len(tools))
	for _, tool := range tools {
		byID[tool.ID] = tool
	}
	require.Contains(t, byID, "book_flight")
	assert.True(t, byID["book_flight"].RequiresApproval)
}
