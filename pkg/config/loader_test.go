package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "showroom.yaml"), []byte(content), 0o644)
	require.NoError(t, err)
	return dir
}

func TestInitialize_BuiltinOnly(t *testing.T) {
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Greater(t, cfg.ToolRegistry.Len(), 0)
	assert.Greater(t, cfg.TemplateRegistry.Len(), 0)

	tmpl, err := cfg.GetTemplate("travel")
	require.NoError(t, err)
	assert.Equal(t, "Travel Concierge", tmpl.Name)
	require.NotNil(t, tmpl.Autopilot)
	assert.NotEmpty(t, tmpl.Autopilot.Steps)

	// Every builtin template references only registered tools
	for _, id := range cfg.TemplateRegistry.TemplateIDs() {
		tm, err := cfg.GetTemplate(id)
		require.NoError(t, err)
		for _, toolID := range tm.Tools {
			_, err := cfg.GetTool(toolID)
			assert.NoError(t, err, "template %s references tool %s", id, toolID)
		}
	}
}

func TestInitialize_UserOverrides(t *testing.T) {
	dir := writeConfigFile(t, `
gateway:
  base_url: "http://localhost:9090"
tools:
  search_flights:
    name: "Flight Finder"
    description: "Overridden"
    scopes: ["flights:read"]
  custom_tool:
    name: "Custom Tool"
    scopes: ["custom:read"]
demo_templates:
  retail:
    name: "Retail Assistant"
    tools: ["custom_tool"]
defaults:
  message_preview_length: 40
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	// User tool overrides builtin with the same ID
	tool, err := cfg.GetTool("search_flights")
	require.NoError(t, err)
	assert.Equal(t, "Flight Finder", tool.Name)

	// New tool and template are registered alongside builtins
	_, err = cfg.GetTool("custom_tool")
	require.NoError(t, err)
	tmpl, err := cfg.GetTemplate("retail")
	require.NoError(t, err)
	assert.Equal(t, "Retail Assistant", tmpl.Name)

	// Builtins not overridden survive the merge
	_, err = cfg.GetTemplate("banking")
	assert.NoError(t, err)

	assert.Equal(t, "http://localhost:9090", cfg.Gateway.BaseURL)
	assert.Equal(t, 40, cfg.Defaults.MessagePreviewLength)
	// Unset defaults are filled
	assert.Equal(t, defaultTemplateID, cfg.Defaults.TemplateID)
	assert.Equal(t, defaultGatewayTimeout, cfg.Gateway.Timeout)
}

func TestInitialize_UnknownToolReference(t *testing.T) {
	dir := writeConfigFile(t, `
demo_templates:
  broken:
    name: "Broken"
    tools: ["does_not_exist"]
`)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestInitialize_InvalidYAML(t *testing.T) {
	dir := writeConfigFile(t, "demo_templates: [not: a: map")

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)

	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("SHOWROOM_TEST_URL", "http://gateway.test")

	out := ExpandEnv([]byte("base_url: {{.SHOWROOM_TEST_URL}}"))
	assert.Equal(t, "base_url: http://gateway.test", string(out))

	t.Run("missing variable expands to empty", func(t *testing.T) {
		out := ExpandEnv([]byte("key: {{.SHOWROOM_TEST_UNSET_VAR}}"))
		assert.Equal(t, "key: ", string(out))
	})

	t.Run("plain content passes through", func(t *testing.T) {
		in := []byte("pattern: ^secret.*$")
		assert.Equal(t, in, ExpandEnv(in))
	})
}
