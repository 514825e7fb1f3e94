package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolRegistry(t *testing.T) {
	reg := NewToolRegistry(map[string]*ToolDef{
		"a": {ID: "a", Name: "A"},
		"b": {ID: "b", Name: "B", RequiresApproval: true},
	})

	t.Run("get", func(t *testing.T) {
		tool, err := reg.Get("a")
		require.NoError(t, err)
		assert.Equal(t, "A", tool.Name)

		_, err = reg.Get("missing")
		assert.ErrorIs(t, err, ErrToolNotFound)
	})

	t.Run("filter preserves allow-list order and skips unknowns", func(t *testing.T) {
		tools := reg.Filter([]string{"b", "missing", "a"})
		require.Len(t, tools, 2)
		assert.Equal(t, "b", tools[0].ID)
		assert.Equal(t, "a", tools[1].ID)
	})

	t.Run("ids sorted", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b"}, reg.ToolIDs())
	})
}

func TestApplyOverrides(t *testing.T) {
	base := &DemoTemplate{
		ID:                "travel",
		Name:              "Travel Concierge",
		Tools:             []string{"search_flights", "book_flight"},
		SystemPromptParts: []string{"You are a travel agent."},
		KnowledgePack:     "base pack",
	}

	t.Run("nil overlay returns equivalent copy", func(t *testing.T) {
		derived := ApplyOverrides(base, nil)
		assert.Equal(t, base.Name, derived.Name)
		assert.Equal(t, base.Tools, derived.Tools)

		// Derived slices must not alias the base
		derived.Tools[0] = "mutated"
		assert.Equal(t, "search_flights", base.Tools[0])
	})

	t.Run("overlay replaces named fields only", func(t *testing.T) {
		derived := ApplyOverrides(base, &TemplateOverrides{
			Name:  "Custom Travel",
			Tools: []string{"search_flights"},
		})
		assert.Equal(t, "Custom Travel", derived.Name)
		assert.Equal(t, []string{"search_flights"}, derived.Tools)
		assert.Equal(t, "base pack", derived.KnowledgePack)
		assert.Equal(t, base.SystemPromptParts, derived.SystemPromptParts)
	})
}
