package models

// CreateEnvironmentRequest contains fields for bootstrapping a demo environment.
type CreateEnvironmentRequest struct {
	EnvID      string `json:"env_id"`
	TemplateID string `json:"template_id"`
	EnvType    string `json:"env_type"`
	CreatedBy  string `json:"created_by"`
}

// AppendMessageRequest contains fields for persisting a conversation message.
type AppendMessageRequest struct {
	EnvID          string          `json:"env_id"`
	MessageID      string          `json:"message_id"`
	SequenceNumber int             `json:"sequence_number"`
	Role           Role            `json:"role"`
	Content        string          `json:"content"`
	ToolCalls      []*ToolCallDisplay `json:"tool_calls,omitempty"`
}

// AppendTimelineEventRequest contains fields for persisting a timeline event.
type AppendTimelineEventRequest struct {
	EnvID              string            `json:"env_id"`
	EventID            string            `json:"event_id"`
	SequenceNumber     int               `json:"sequence_number"`
	EventType          TimelineEventType `json:"event_type"`
	Status             TimelineStatus    `json:"status"`
	Title              string            `json:"title"`
	Detail             string            `json:"detail,omitempty"`
	HighlightedFeature string            `json:"highlighted_feature,omitempty"`
}

// SaveCustomDemoRequest contains fields for creating or updating a custom demo.
type SaveCustomDemoRequest struct {
	EnvID           string         `json:"env_id"`
	TemplateID      string         `json:"template_id"`
	EnvType         string         `json:"env_type"`
	ConfigOverrides map[string]any `json:"config_overrides,omitempty"`
	CreatedBy       string         `json:"created_by"`
}

// CreateEventRequest contains fields for persisting a realtime event.
type CreateEventRequest struct {
	EnvID   string         `json:"env_id"`
	Channel string         `json:"channel"`
	Payload map[string]any `json:"payload"`
}
