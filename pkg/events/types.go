// Package events provides real-time event delivery via WebSocket and
// PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// Persistent events are written to the events table and broadcast via
// NOTIFY in the same transaction; clients that reconnect replay what they
// missed through the catchup mechanism. Transient events (notices, state
// blips) ride NOTIFY only and are lost on disconnect.
package events

// Persistent event types (stored in DB + NOTIFY).
const (
	// EventTypeMessageAppended fires for every conversation message.
	EventTypeMessageAppended = "message.appended"

	// EventTypeTimelineRecorded fires for every timeline narration entry.
	EventTypeTimelineRecorded = "timeline_event.recorded"

	// Approval lifecycle: requested when a turn suspends, resolved when the
	// human decision lands.
	EventTypeApprovalRequested = "approval.requested"
	EventTypeApprovalResolved  = "approval.resolved"

	// EventTypeEnvironmentReset fires after an environment wipe.
	EventTypeEnvironmentReset = "environment.reset"
)

// Transient event types (NOTIFY only, no DB persistence).
const (
	// EventTypeEnvironmentState announces orchestrator state transitions
	// (idle, awaiting_agent, awaiting_approval) for typing indicators.
	EventTypeEnvironmentState = "environment.state"

	// EventTypeNotice carries one-shot toast notifications (rate limits,
	// quota exhaustion, degraded follow-ups).
	EventTypeNotice = "notice"
)

// GlobalEnvironmentsChannel carries environment lifecycle events for the
// demo picker page.
const GlobalEnvironmentsChannel = "environments"

// EnvChannel returns the channel name for one environment's events.
// Format: "env:{env_id}"
func EnvChannel(envID string) string {
	return "env:" + envID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // Channel name (e.g., "env:abc-123")
	LastEventID *int   `json:"last_event_id,omitempty"` // For catchup
}
