package config

import (
	"fmt"
	"sort"
	"sync"
)

// ToolRegistry stores tool definitions in memory with thread-safe access.
// Lookup is pure and synchronous; composition (filtering to a template's
// allow-list) is the caller's responsibility via Filter.
type ToolRegistry struct {
	tools map[string]*ToolDef
	mu    sync.RWMutex
}

// NewToolRegistry creates a new tool registry
func NewToolRegistry(tools map[string]*ToolDef) *ToolRegistry {
	// Defensive copy to prevent external mutation
	copied := make(map[string]*ToolDef, len(tools))
	for k, v := range tools {
		copied[k] = v
	}
	return &ToolRegistry{tools: copied}
}

// Get retrieves a tool definition by ID
func (r *ToolRegistry) Get(toolID string) (*ToolDef, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tool, ok := r.tools[toolID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, toolID)
	}
	return tool, nil
}

// Filter returns the tool definitions for an explicit allow-list, preserving
// the allow-list order. Unknown IDs are skipped — a template referencing a
// missing tool is caught at validation time, not at session start.
func (r *ToolRegistry) Filter(toolIDs []string) []*ToolDef {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*ToolDef, 0, len(toolIDs))
	for _, id := range toolIDs {
		if tool, ok := r.tools[id]; ok {
			result = append(result, tool)
		}
	}
	return result
}

// ToolIDs returns a sorted list of all registered tool IDs
func (r *ToolRegistry) ToolIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.tools))
	for id := range r.tools {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of registered tools
func (r *ToolRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tools)
}
