package config

// Config is the umbrella configuration object that encapsulates all
// registries and defaults. This is the primary object returned by
// Initialize() and used throughout the application.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// System-wide defaults
	Defaults *Defaults

	// Agent gateway client settings
	Gateway *GatewayConfig

	// Component registries
	ToolRegistry     *ToolRegistry
	TemplateRegistry *TemplateRegistry
}

// Stats contains statistics about loaded configuration
type Stats struct {
	Tools     int
	Templates int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.ToolRegistry != nil {
		s.Tools = c.ToolRegistry.Len()
	}
	if c.TemplateRegistry != nil {
		s.Templates = c.TemplateRegistry.Len()
	}
	return s
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetTool retrieves a tool definition by ID.
// This is a convenience method that wraps ToolRegistry.Get().
func (c *Config) GetTool(toolID string) (*ToolDef, error) {
	return c.ToolRegistry.Get(toolID)
}

// GetTemplate retrieves a demo template by ID.
// This is a convenience method that wraps TemplateRegistry.Get().
func (c *Config) GetTemplate(templateID string) (*DemoTemplate, error) {
	return c.TemplateRegistry.Get(templateID)
}

// TemplateTools resolves a template's tool allow-list against the catalog.
func (c *Config) TemplateTools(tmpl *DemoTemplate) []*ToolDef {
	return c.ToolRegistry.Filter(tmpl.Tools)
}
