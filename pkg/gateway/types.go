// Package gateway implements the HTTP client for the generative agent
// backend. The gateway is stateless per invocation: the entire conversation
// history is resent on every turn, and approval decisions are folded into the
// next turn via pending_approvals.
package gateway

import (
	"encoding/json"

	"github.com/showroom-hq/showroom/pkg/config"
	"github.com/showroom-hq/showroom/pkg/models"
)

// TurnMessage is one conversation turn as sent to the gateway.
type TurnMessage struct {
	Role    models.Role `json:"role"`
	Content string      `json:"content"`
}

// PendingApproval carries a recorded human decision back to the gateway so it
// can fold the outcome into its next turn.
type PendingApproval struct {
	Decision models.Decision `json:"decision"`
	ToolID   string          `json:"tool_id"`
	Args     json.RawMessage `json:"args,omitempty"`
}

// ConverseRequest is the request body for POST /converse.
type ConverseRequest struct {
	Messages          []TurnMessage     `json:"messages"`
	TemplateID        string            `json:"template_id"`
	EnvID             string            `json:"env_id"`
	SystemPromptParts []string          `json:"system_prompt_parts,omitempty"`
	KnowledgePack     string            `json:"knowledge_pack,omitempty"`
	Tools             []*config.ToolDef `json:"tools"`
	PendingApprovals  []PendingApproval `json:"pending_approvals,omitempty"`
}

// Tool call descriptor types.
const (
	ToolCallExecuted         = "executed"
	ToolCallApprovalRequired = "approval_required"
)

// ToolCallDescriptor is a tagged tool invocation reported by the gateway:
// either already executed (read-only tools) or suspended pending approval.
type ToolCallDescriptor struct {
	Type            string          `json:"type"`
	ToolID          string          `json:"tool_id"`
	ToolName        string          `json:"tool_name"`
	ToolDescription string          `json:"tool_description,omitempty"`
	Scopes          []string        `json:"scopes,omitempty"`
	Result          json.RawMessage `json:"result,omitempty"`
	Args            json.RawMessage `json:"args,omitempty"`
}

// ConverseResponse is the gateway's reply for one turn.
type ConverseResponse struct {
	Content   string               `json:"content"`
	ToolCalls []ToolCallDescriptor `json:"tool_calls,omitempty"`
}
