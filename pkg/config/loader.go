package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// ShowroomYAMLConfig represents the complete showroom.yaml file structure
type ShowroomYAMLConfig struct {
	Gateway   *GatewayConfig          `yaml:"gateway"`
	Tools     map[string]ToolDef      `yaml:"tools"`
	Templates map[string]DemoTemplate `yaml:"demo_templates"`
	Defaults  *Defaults               `yaml:"defaults"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load showroom.yaml from configDir (optional — built-ins alone are valid)
//  2. Expand environment variables
//  3. Merge built-in + user-defined tools and templates
//  4. Build in-memory registries
//  5. Apply default values
//  6. Validate all configuration
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	userCfg, err := load(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	builtin := GetBuiltinConfig()

	tools := mergeTools(builtin.Tools, userCfg.Tools)
	templates := mergeTemplates(builtin.Templates, userCfg.Templates)

	defaults := &Defaults{}
	if userCfg.Defaults != nil {
		if err := mergo.Merge(defaults, userCfg.Defaults, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge defaults: %w", err)
		}
	}

	gateway := &GatewayConfig{}
	if userCfg.Gateway != nil {
		if err := mergo.Merge(gateway, userCfg.Gateway, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge gateway config: %w", err)
		}
	}
	applyDefaults(defaults, gateway)

	cfg := &Config{
		configDir:        configDir,
		Defaults:         defaults,
		Gateway:          gateway,
		ToolRegistry:     NewToolRegistry(tools),
		TemplateRegistry: NewTemplateRegistry(templates),
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized",
		"tools", stats.Tools,
		"templates", stats.Templates)
	return cfg, nil
}

// load reads and parses showroom.yaml. A missing file is not an error:
// built-in tools and templates are a complete working configuration.
func load(configDir string) (*ShowroomYAMLConfig, error) {
	path := filepath.Join(configDir, "showroom.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("No showroom.yaml found, using built-in configuration", "path", path)
			return &ShowroomYAMLConfig{}, nil
		}
		return nil, NewLoadError(path, err)
	}

	expanded := ExpandEnv(data)

	var cfg ShowroomYAMLConfig
	if err := yaml.Unmarshal(expanded, &cfg); err != nil {
		return nil, NewLoadError(path, fmt.Errorf("%w: %v", ErrInvalidYAML, err))
	}
	return &cfg, nil
}

// mergeTools merges built-in and user-defined tool definitions.
// User-defined tools override built-in tools with the same ID.
func mergeTools(builtinTools map[string]ToolDef, userTools map[string]ToolDef) map[string]*ToolDef {
	result := make(map[string]*ToolDef)
	for id, tool := range builtinTools {
		toolCopy := tool
		toolCopy.ID = id
		result[id] = &toolCopy
	}
	for id, tool := range userTools {
		toolCopy := tool
		toolCopy.ID = id
		result[id] = &toolCopy
	}
	return result
}

// mergeTemplates merges built-in and user-defined demo templates.
// User-defined templates override built-in templates with the same ID.
func mergeTemplates(builtinTemplates map[string]DemoTemplate, userTemplates map[string]DemoTemplate) map[string]*DemoTemplate {
	result := make(map[string]*DemoTemplate)
	for id, tmpl := range builtinTemplates {
		tmplCopy := tmpl
		tmplCopy.ID = id
		result[id] = &tmplCopy
	}
	for id, tmpl := range userTemplates {
		tmplCopy := tmpl
		tmplCopy.ID = id
		result[id] = &tmplCopy
	}
	return result
}

// validate checks cross-references and required fields across the merged
// configuration.
func validate(cfg *Config) error {
	for _, id := range cfg.TemplateRegistry.TemplateIDs() {
		tmpl, _ := cfg.TemplateRegistry.Get(id)
		if tmpl.Name == "" {
			return NewValidationError("template", id, "name", ErrMissingRequiredField)
		}
		if len(tmpl.Tools) == 0 {
			return NewValidationError("template", id, "tools", ErrMissingRequiredField)
		}
		for _, toolID := range tmpl.Tools {
			if _, err := cfg.ToolRegistry.Get(toolID); err != nil {
				return NewValidationError("template", id, "tools",
					fmt.Errorf("%w: references unknown tool %q", ErrInvalidReference, toolID))
			}
		}
		if tmpl.Autopilot != nil {
			for i, step := range tmpl.Autopilot.Steps {
				if step.UserMessage == "" {
					return NewValidationError("template", id,
						fmt.Sprintf("autopilot.steps[%d].user_message", i), ErrMissingRequiredField)
				}
			}
		}
	}

	for _, id := range cfg.ToolRegistry.ToolIDs() {
		tool, _ := cfg.ToolRegistry.Get(id)
		if tool.Name == "" {
			return NewValidationError("tool", id, "name", ErrMissingRequiredField)
		}
	}

	if _, err := cfg.TemplateRegistry.Get(cfg.Defaults.TemplateID); err != nil {
		return NewValidationError("defaults", cfg.Defaults.TemplateID, "template_id",
			fmt.Errorf("%w: default template not registered", ErrInvalidReference))
	}
	return nil
}
