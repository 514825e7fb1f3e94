package events

import (
	"github.com/showroom-hq/showroom/pkg/models"
	"github.com/showroom-hq/showroom/pkg/orchestrator"
)

// BasePayload carries the routing fields shared by every event payload.
type BasePayload struct {
	Type      string `json:"type"`
	EnvID     string `json:"env_id"`
	Timestamp string `json:"timestamp"` // RFC3339Nano
}

// MessageAppendedPayload is the payload for message.appended events.
type MessageAppendedPayload struct {
	BasePayload
	MessageID      string                    `json:"message_id"`
	SequenceNumber int                       `json:"sequence_number"`
	Role           models.Role               `json:"role"`
	Content        string                    `json:"content"`
	ToolCalls      []*models.ToolCallDisplay `json:"tool_calls,omitempty"`
}

// TimelineRecordedPayload is the payload for timeline_event.recorded events.
type TimelineRecordedPayload struct {
	BasePayload
	EventID            string                   `json:"event_id"`
	SequenceNumber     int                      `json:"sequence_number"`
	EventType          models.TimelineEventType `json:"event_type"`
	Status             models.TimelineStatus    `json:"status"`
	Title              string                   `json:"title"`
	Detail             string                   `json:"detail,omitempty"`
	HighlightedFeature string                   `json:"highlighted_feature,omitempty"`
}

// ApprovalRequestedPayload is the payload for approval.requested events.
// Carries the full request so the approval card renders without a REST
// round trip.
type ApprovalRequestedPayload struct {
	BasePayload
	Request *models.ApprovalRequest `json:"request"`
}

// ApprovalResolvedPayload is the payload for approval.resolved events.
type ApprovalResolvedPayload struct {
	BasePayload
	RequestID string          `json:"request_id"`
	Decision  models.Decision `json:"decision"`
}

// EnvironmentResetPayload is the payload for environment.reset events.
// Generation lets clients discard any event from before the wipe.
type EnvironmentResetPayload struct {
	BasePayload
	Generation int `json:"generation"`
}

// EnvironmentStatePayload is the payload for environment.state transient
// events.
type EnvironmentStatePayload struct {
	BasePayload
	State orchestrator.State `json:"state"`
}

// NoticePayload is the payload for notice transient events.
type NoticePayload struct {
	BasePayload
	Text string `json:"text"`
}
