package api

import (
	"time"

	"github.com/showroom-hq/showroom/pkg/config"
	"github.com/showroom-hq/showroom/pkg/database"
	"github.com/showroom-hq/showroom/pkg/models"
	"github.com/showroom-hq/showroom/pkg/orchestrator"
)

// EnvironmentResponse describes a live environment.
type EnvironmentResponse struct {
	EnvID           string                  `json:"env_id"`
	TemplateID      string                  `json:"template_id"`
	TemplateName    string                  `json:"template_name"`
	State           orchestrator.State      `json:"state"`
	HasAutopilot    bool                    `json:"has_autopilot"`
	PendingApproval *models.ApprovalRequest `json:"pending_approval,omitempty"`
	CreatedAt       time.Time               `json:"created_at"`
}

// TurnResponse is returned by POST /environments/:id/messages once the turn
// settles (completed or suspended on an approval). A message sent while a
// turn is already in flight is ignored and comes back with accepted=false.
type TurnResponse struct {
	Accepted        bool                      `json:"accepted"`
	State           orchestrator.State        `json:"state"`
	ToolCalls       []*models.ToolCallDisplay `json:"tool_calls,omitempty"`
	PendingApproval *models.ApprovalRequest   `json:"pending_approval,omitempty"`
}

// ResolveApprovalResponse is returned by POST /environments/:id/approval.
type ResolveApprovalResponse struct {
	Resolved bool               `json:"resolved"`
	State    orchestrator.State `json:"state"`
}

// ResetResponse is returned by POST /environments/:id/reset.
type ResetResponse struct {
	EnvID      string `json:"env_id"`
	Generation int    `json:"generation"`
}

// AutopilotResponse describes the guided walkthrough's position.
type AutopilotResponse struct {
	Active    bool                  `json:"active"`
	Waiting   bool                  `json:"waiting"`
	StepIndex int                   `json:"step_index"`
	Remaining int                   `json:"remaining"`
	Step      *config.AutopilotStep `json:"step,omitempty"`
	Accepted  bool                  `json:"accepted,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status        string                 `json:"status"`
	Version       string                 `json:"version"`
	Database      *database.HealthStatus `json:"database,omitempty"`
	Configuration ConfigurationStats     `json:"configuration"`
	Environments  int                    `json:"environments"`
}

// ConfigurationStats contains counts of loaded configuration items.
type ConfigurationStats struct {
	Tools     int `json:"tools"`
	Templates int `json:"templates"`
}
