package config

import "time"

// Defaults contains system-wide default configurations.
// These values are used when specific components don't specify their own values.
type Defaults struct {
	// Template used when an environment is created without one
	TemplateID string `yaml:"template_id,omitempty"`

	// Max characters of a user message echoed into the timeline preview
	MessagePreviewLength int `yaml:"message_preview_length,omitempty"`

	// How long persisted realtime events are retained before TTL cleanup
	EventTTL time.Duration `yaml:"event_ttl,omitempty"`
}

// GatewayConfig holds agent gateway client settings.
type GatewayConfig struct {
	// Base URL of the generative backend (required)
	BaseURL string `yaml:"base_url"`

	// Per-call timeout; a turn is abandoned past this
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

const (
	defaultTemplateID           = "travel"
	defaultMessagePreviewLength = 60
	defaultEventTTL             = 24 * time.Hour
	defaultGatewayTimeout       = 60 * time.Second
)

// applyDefaults fills zero-valued settings after merge.
func applyDefaults(d *Defaults, g *GatewayConfig) {
	if d.TemplateID == "" {
		d.TemplateID = defaultTemplateID
	}
	if d.MessagePreviewLength <= 0 {
		d.MessagePreviewLength = defaultMessagePreviewLength
	}
	if d.EventTTL <= 0 {
		d.EventTTL = defaultEventTTL
	}
	if g.Timeout <= 0 {
		g.Timeout = defaultGatewayTimeout
	}
}
