package config

import "time"

// ToolDef describes a simulated tool the demo agent can invoke.
// Pure data: the catalog has no behavior beyond lookup and filtering.
type ToolDef struct {
	// Tool identifier (registry key, also sent to the gateway)
	ID string `yaml:"id" json:"id"`

	// Display name shown in the conversation and timeline
	Name string `yaml:"name" json:"name"`

	// Short description fed to the agent and shown on approval cards
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Permission scopes this tool requires (narrative data, not enforced)
	Scopes []string `yaml:"scopes,omitempty" json:"scopes,omitempty"`

	// Whether invoking this tool suspends the turn for human approval
	RequiresApproval bool `yaml:"requires_approval,omitempty" json:"requires_approval,omitempty"`

	// Simulated execution latency for pacing the demo
	SimulatedLatency time.Duration `yaml:"simulated_latency,omitempty" json:"simulated_latency,omitempty"`

	// Platform feature to highlight when this tool runs
	Feature string `yaml:"feature,omitempty" json:"feature,omitempty"`

	// Narrative shown alongside the approval card
	Explanation string `yaml:"explanation,omitempty" json:"explanation,omitempty"`
}

// FeatureDef is a platform capability card surfaced during a demo.
type FeatureDef struct {
	ID          string `yaml:"id" json:"id"`
	Label       string `yaml:"label" json:"label"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// AutopilotStep is one canned user turn in a guided walkthrough.
type AutopilotStep struct {
	Label            string `yaml:"label" json:"label"`
	UserMessage      string `yaml:"user_message" json:"user_message"`
	Explanation      string `yaml:"explanation,omitempty" json:"explanation,omitempty"`
	HighlightFeature string `yaml:"highlight_feature,omitempty" json:"highlight_feature,omitempty"`
}

// AutopilotScript is a per-template scripted walkthrough. Read-only during a
// run; the driver tracks only a cursor into Steps.
type AutopilotScript struct {
	Steps []AutopilotStep `yaml:"steps" json:"steps"`
}

// DemoTemplate is an industry-specific demo definition: tool set, highlighted
// features, agent persona, and optional autopilot script. Resolved once at
// environment bootstrap and treated as immutable for the session.
type DemoTemplate struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Color       string `yaml:"color,omitempty" json:"color,omitempty"`

	// Tool IDs from the tool catalog available in this demo
	Tools []string `yaml:"tools" json:"tools"`

	// Platform features narrated by this demo
	Features []FeatureDef `yaml:"features,omitempty" json:"features,omitempty"`

	// Persona/system prompt fragments sent to the gateway on every turn
	SystemPromptParts []string `yaml:"system_prompt_parts,omitempty" json:"system_prompt_parts,omitempty"`

	// Industry background text sent to the gateway on every turn
	KnowledgePack string `yaml:"knowledge_pack,omitempty" json:"knowledge_pack,omitempty"`

	// Optional guided walkthrough
	Autopilot *AutopilotScript `yaml:"autopilot,omitempty" json:"autopilot,omitempty"`
}
