package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// notifyLimit keeps NOTIFY payloads under PostgreSQL's 8000-byte cap, with
// headroom for the injected db_event_id.
const notifyLimit = 7900

// EventPublisher publishes events for WebSocket delivery.
// Persistent events are stored in the events table then broadcast via NOTIFY
// in the same transaction; transient events are broadcast via NOTIFY only.
type EventPublisher struct {
	db *sql.DB
}

// NewEventPublisher creates a new EventPublisher.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewEventPublisher(db *sql.DB) *EventPublisher {
	return &EventPublisher{db: db}
}

// NewBase fills the routing fields for a payload.
func NewBase(eventType, envID string) BasePayload {
	return BasePayload{
		Type:      eventType,
		EnvID:     envID,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	}
}

// PublishMessageAppended persists and broadcasts a message.appended event.
func (p *EventPublisher) PublishMessageAppended(ctx context.Context, envID string, payload MessageAppendedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal MessageAppendedPayload: %w", err)
	}
	return p.persistAndNotify(ctx, envID, EnvChannel(envID), payloadJSON)
}

// PublishTimelineRecorded persists and broadcasts a timeline_event.recorded event.
func (p *EventPublisher) PublishTimelineRecorded(ctx context.Context, envID string, payload TimelineRecordedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal TimelineRecordedPayload: %w", err)
	}
	return p.persistAndNotify(ctx, envID, EnvChannel(envID), payloadJSON)
}

// PublishApprovalRequested persists and broadcasts an approval.requested event.
func (p *EventPublisher) PublishApprovalRequested(ctx context.Context, envID string, payload ApprovalRequestedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal ApprovalRequestedPayload: %w", err)
	}
	return p.persistAndNotify(ctx, envID, EnvChannel(envID), payloadJSON)
}

// PublishApprovalResolved persists and broadcasts an approval.resolved event.
func (p *EventPublisher) PublishApprovalResolved(ctx context.Context, envID string, payload ApprovalResolvedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal ApprovalResolvedPayload: %w", err)
	}
	return p.persistAndNotify(ctx, envID, EnvChannel(envID), payloadJSON)
}

// PublishEnvironmentReset persists a reset event to the environment channel
// and broadcasts a transient copy to the global environments channel. Both
// publishes are best-effort; the first error wins.
func (p *EventPublisher) PublishEnvironmentReset(ctx context.Context, envID string, payload EnvironmentResetPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal EnvironmentResetPayload: %w", err)
	}

	var firstErr error
	if err := p.persistAndNotify(ctx, envID, EnvChannel(envID), payloadJSON); err != nil {
		slog.Warn("Failed to publish reset to environment channel",
			"env_id", envID, "error", err)
		firstErr = err
	}
	if err := p.notifyOnly(ctx, GlobalEnvironmentsChannel, payloadJSON); err != nil {
		slog.Warn("Failed to publish reset to global channel",
			"env_id", envID, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// PublishEnvironmentState broadcasts an environment.state transient event
// (no DB persistence). State blips are high-frequency and worthless after
// the fact.
func (p *EventPublisher) PublishEnvironmentState(ctx context.Context, envID string, payload EnvironmentStatePayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal EnvironmentStatePayload: %w", err)
	}
	return p.notifyOnly(ctx, EnvChannel(envID), payloadJSON)
}

// PublishNotice broadcasts a notice transient event (no DB persistence).
func (p *EventPublisher) PublishNotice(ctx context.Context, envID string, payload NoticePayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal NoticePayload: %w", err)
	}
	return p.notifyOnly(ctx, EnvChannel(envID), payloadJSON)
}

// persistAndNotify persists a pre-marshaled event to the database and
// broadcasts via NOTIFY in a single transaction (pg_notify is transactional,
// held until COMMIT).
func (p *EventPublisher) persistAndNotify(ctx context.Context, envID, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (env_id, channel, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		envID, channel, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	// NOTIFY payload carries db_event_id so clients can track catchup position.
	notifyPayload, err := injectDBEventIDAndTruncate(payloadJSON, eventID)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}
	return nil
}

// notifyOnly broadcasts a pre-marshaled event via NOTIFY without persisting.
func (p *EventPublisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// injectDBEventIDAndTruncate adds db_event_id to the JSON payload for NOTIFY
// delivery and applies truncation if the result exceeds the NOTIFY limit.
func injectDBEventIDAndTruncate(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID

	enriched, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}
	return truncateIfNeeded(string(enriched))
}

// truncateIfNeeded returns the payload as-is when it fits under the NOTIFY
// limit, otherwise a minimal envelope with only routing fields. Truncated
// events are re-fetched from the database by the client.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= notifyLimit {
		return payloadStr, nil
	}

	var routing struct {
		Type      string `json:"type"`
		EnvID     string `json:"env_id"`
		EventID   string `json:"event_id"`
		DBEventID *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal([]byte(payloadStr), &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":      routing.Type,
		"env_id":    routing.EnvID,
		"event_id":  routing.EventID,
		"truncated": true,
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	out, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(out), nil
}
