package api

import (
	"github.com/showroom-hq/showroom/pkg/config"
	"github.com/showroom-hq/showroom/pkg/models"
)

// CreateEnvironmentRequest is the HTTP request body for POST /api/v1/environments.
type CreateEnvironmentRequest struct {
	TemplateID string                    `json:"template_id,omitempty"`
	Overrides  *config.TemplateOverrides `json:"overrides,omitempty"`
}

// SendMessageRequest is the HTTP request body for POST /environments/:id/messages.
type SendMessageRequest struct {
	Content string `json:"content"`
}

// ResolveApprovalRequest is the HTTP request body for POST /environments/:id/approval.
type ResolveApprovalRequest struct {
	RequestID string          `json:"request_id"`
	Decision  models.Decision `json:"decision"`
}

// SaveDemoRequest is the HTTP request body for POST /api/v1/demos.
type SaveDemoRequest struct {
	EnvID           string         `json:"env_id"`
	TemplateID      string         `json:"template_id"`
	ConfigOverrides map[string]any `json:"config_overrides,omitempty"`
}
