package config

import (
	"fmt"
	"sort"
	"sync"
)

// TemplateRegistry stores demo templates in memory with thread-safe access
type TemplateRegistry struct {
	templates map[string]*DemoTemplate
	mu        sync.RWMutex
}

// NewTemplateRegistry creates a new template registry
func NewTemplateRegistry(templates map[string]*DemoTemplate) *TemplateRegistry {
	// Defensive copy to prevent external mutation
	copied := make(map[string]*DemoTemplate, len(templates))
	for k, v := range templates {
		copied[k] = v
	}
	return &TemplateRegistry{templates: copied}
}

// Get retrieves a demo template by ID
func (r *TemplateRegistry) Get(templateID string) (*DemoTemplate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tmpl, ok := r.templates[templateID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateID)
	}
	return tmpl, nil
}

// TemplateIDs returns a sorted list of all registered template IDs
func (r *TemplateRegistry) TemplateIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.templates))
	for id := range r.templates {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of registered templates
func (r *TemplateRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.templates)
}

// TemplateOverrides is the builder overlay applied to a base template before
// a session starts. Zero-valued fields leave the base untouched.
type TemplateOverrides struct {
	Name              string          `yaml:"name,omitempty" json:"name,omitempty"`
	Description       string          `yaml:"description,omitempty" json:"description,omitempty"`
	Color             string          `yaml:"color,omitempty" json:"color,omitempty"`
	Tools             []string        `yaml:"tools,omitempty" json:"tools,omitempty"`
	Features          []FeatureDef    `yaml:"features,omitempty" json:"features,omitempty"`
	SystemPromptParts []string        `yaml:"system_prompt_parts,omitempty" json:"system_prompt_parts,omitempty"`
	KnowledgePack     string          `yaml:"knowledge_pack,omitempty" json:"knowledge_pack,omitempty"`
	Autopilot         *AutopilotScript `yaml:"autopilot,omitempty" json:"autopilot,omitempty"`
}

// ApplyOverrides returns a derived template with the overlay applied.
// The base is never mutated; the result is likewise treated as immutable
// for the duration of the session.
func ApplyOverrides(base *DemoTemplate, o *TemplateOverrides) *DemoTemplate {
	derived := *base
	derived.Tools = append([]string(nil), base.Tools...)
	derived.Features = append([]FeatureDef(nil), base.Features...)
	derived.SystemPromptParts = append([]string(nil), base.SystemPromptParts...)

	if o == nil {
		return &derived
	}
	if o.Name != "" {
		derived.Name = o.Name
	}
	if o.Description != "" {
		derived.Description = o.Description
	}
	if o.Color != "" {
		derived.Color = o.Color
	}
	if len(o.Tools) > 0 {
		derived.Tools = append([]string(nil), o.Tools...)
	}
	if len(o.Features) > 0 {
		derived.Features = append([]FeatureDef(nil), o.Features...)
	}
	if len(o.SystemPromptParts) > 0 {
		derived.SystemPromptParts = append([]string(nil), o.SystemPromptParts...)
	}
	if o.KnowledgePack != "" {
		derived.KnowledgePack = o.KnowledgePack
	}
	if o.Autopilot != nil {
		derived.Autopilot = o.Autopilot
	}
	return &derived
}
