package models

import "time"

// TimelineEventType classifies a narrated timeline event.
type TimelineEventType string

// Timeline event types.
const (
	TimelineAuth          TimelineEventType = "auth"
	TimelineToolCall      TimelineEventType = "tool_call"
	TimelineApproval      TimelineEventType = "approval"
	TimelineTokenExchange TimelineEventType = "token_exchange"
	TimelineMessage       TimelineEventType = "message"
)

// TimelineStatus is the display status of a timeline event.
type TimelineStatus string

// Timeline statuses.
const (
	TimelineSuccess TimelineStatus = "success"
	TimelineDenied  TimelineStatus = "denied"
	TimelinePending TimelineStatus = "pending"
)

// TimelineEvent is one entry in the audit-style session narration.
// Purely observational: never consulted for control flow.
type TimelineEvent struct {
	ID                 string            `json:"id"`
	Type               TimelineEventType `json:"type"`
	Title              string            `json:"title"`
	Detail             string            `json:"detail,omitempty"`
	Status             TimelineStatus    `json:"status"`
	HighlightedFeature string            `json:"highlighted_feature,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
}
