// Package models contains request/response models and business domain types.
package models

import "time"

// Role identifies the author of a chat message.
type Role string

// Message roles.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// ToolCallStatus is the lifecycle state of a displayed tool call.
type ToolCallStatus string

// Tool call statuses. Only the approval transition mutates a tool call in
// place (pending → approved/denied → completed); everything else is terminal
// at creation.
const (
	ToolCallPending   ToolCallStatus = "pending"
	ToolCallRunning   ToolCallStatus = "running"
	ToolCallApproved  ToolCallStatus = "approved"
	ToolCallDenied    ToolCallStatus = "denied"
	ToolCallCompleted ToolCallStatus = "completed"
)

// ToolCallDisplay is a tool invocation as shown in the conversation.
// Created when the gateway reports a tool call; never deleted.
type ToolCallDisplay struct {
	ID               string         `json:"id"`
	ToolName         string         `json:"tool_name"`
	ToolDescription  string         `json:"tool_description,omitempty"`
	Scopes           []string       `json:"scopes,omitempty"`
	Status           ToolCallStatus `json:"status"`
	RequiresApproval bool           `json:"requires_approval"`
	Result           string         `json:"result,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
}

// ChatMessage is one turn in the conversation log. Immutable once appended;
// the ordered sequence is the sole source of truth replayed to the agent
// gateway on every turn.
type ChatMessage struct {
	ID        string             `json:"id"`
	Role      Role               `json:"role"`
	Content   string             `json:"content"`
	ToolCalls []*ToolCallDisplay `json:"tool_calls,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
}
