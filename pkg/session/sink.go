package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/showroom-hq/showroom/pkg/events"
	"github.com/showroom-hq/showroom/pkg/models"
	"github.com/showroom-hq/showroom/pkg/orchestrator"
	"github.com/showroom-hq/showroom/pkg/services"
)

// sinkTimeout bounds each persistence write. The orchestrator's in-memory
// state is authoritative; a slow database must not stall a turn.
const sinkTimeout = 5 * time.Second

// PersistenceSink implements orchestrator.Sink over the database services
// and the event publisher. Every write is best-effort: failures are logged
// and swallowed so the demo keeps running on memory alone.
type PersistenceSink struct {
	messages  *services.MessageService
	timeline  *services.TimelineService
	publisher *events.EventPublisher
	logger    *slog.Logger
}

// NewPersistenceSink creates a sink over the given services and publisher.
func NewPersistenceSink(messages *services.MessageService, timeline *services.TimelineService, publisher *events.EventPublisher) *PersistenceSink {
	return &PersistenceSink{
		messages:  messages,
		timeline:  timeline,
		publisher: publisher,
		logger:    slog.Default().With("component", "persistence_sink"),
	}
}

// MessageAppended persists the message and broadcasts it.
func (s *PersistenceSink) MessageAppended(_ context.Context, envID string, seq int, msg *models.ChatMessage) {
	ctx, cancel := context.WithTimeout(context.Background(), sinkTimeout)
	defer cancel()

	if _, err := s.messages.AppendMessage(ctx, models.AppendMessageRequest{
		EnvID:          envID,
		MessageID:      msg.ID,
		SequenceNumber: seq,
		Role:           msg.Role,
		Content:        msg.Content,
		ToolCalls:      msg.ToolCalls,
	}); err != nil {
		s.logger.Warn("Failed to persist message", "env_id", envID, "message_id", msg.ID, "error", err)
	}

	if err := s.publisher.PublishMessageAppended(ctx, envID, events.MessageAppendedPayload{
		BasePayload:    events.NewBase(events.EventTypeMessageAppended, envID),
		MessageID:      msg.ID,
		SequenceNumber: seq,
		Role:           msg.Role,
		Content:        msg.Content,
		ToolCalls:      msg.ToolCalls,
	}); err != nil {
		s.logger.Warn("Failed to publish message event", "env_id", envID, "error", err)
	}
}

// TimelineEventRecorded persists the timeline event and broadcasts it.
func (s *PersistenceSink) TimelineEventRecorded(_ context.Context, envID string, seq int, ev *models.TimelineEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), sinkTimeout)
	defer cancel()

	if _, err := s.timeline.AppendTimelineEvent(ctx, models.AppendTimelineEventRequest{
		EnvID:              envID,
		EventID:            ev.ID,
		SequenceNumber:     seq,
		EventType:          ev.Type,
		Status:             ev.Status,
		Title:              ev.Title,
		Detail:             ev.Detail,
		HighlightedFeature: ev.HighlightedFeature,
	}); err != nil {
		s.logger.Warn("Failed to persist timeline event", "env_id", envID, "event_id", ev.ID, "error", err)
	}

	if err := s.publisher.PublishTimelineRecorded(ctx, envID, events.TimelineRecordedPayload{
		BasePayload:        events.NewBase(events.EventTypeTimelineRecorded, envID),
		EventID:            ev.ID,
		SequenceNumber:     seq,
		EventType:          ev.Type,
		Status:             ev.Status,
		Title:              ev.Title,
		Detail:             ev.Detail,
		HighlightedFeature: ev.HighlightedFeature,
	}); err != nil {
		s.logger.Warn("Failed to publish timeline event", "env_id", envID, "error", err)
	}
}

// ApprovalRequested broadcasts the approval card.
func (s *PersistenceSink) ApprovalRequested(_ context.Context, envID string, req *models.ApprovalRequest) {
	ctx, cancel := context.WithTimeout(context.Background(), sinkTimeout)
	defer cancel()

	if err := s.publisher.PublishApprovalRequested(ctx, envID, events.ApprovalRequestedPayload{
		BasePayload: events.NewBase(events.EventTypeApprovalRequested, envID),
		Request:     req,
	}); err != nil {
		s.logger.Warn("Failed to publish approval request", "env_id", envID, "error", err)
	}
}

// ApprovalResolved broadcasts the decision.
func (s *PersistenceSink) ApprovalResolved(_ context.Context, envID string, requestID string, decision models.Decision) {
	ctx, cancel := context.WithTimeout(context.Background(), sinkTimeout)
	defer cancel()

	if err := s.publisher.PublishApprovalResolved(ctx, envID, events.ApprovalResolvedPayload{
		BasePayload: events.NewBase(events.EventTypeApprovalResolved, envID),
		RequestID:   requestID,
		Decision:    decision,
	}); err != nil {
		s.logger.Warn("Failed to publish approval resolution", "env_id", envID, "error", err)
	}
}

// StateChanged broadcasts the orchestrator state transition.
func (s *PersistenceSink) StateChanged(_ context.Context, envID string, state orchestrator.State) {
	ctx, cancel := context.WithTimeout(context.Background(), sinkTimeout)
	defer cancel()

	if err := s.publisher.PublishEnvironmentState(ctx, envID, events.EnvironmentStatePayload{
		BasePayload: events.NewBase(events.EventTypeEnvironmentState, envID),
		State:       state,
	}); err != nil {
		s.logger.Warn("Failed to publish state change", "env_id", envID, "error", err)
	}
}

// Notice broadcasts a transient toast.
func (s *PersistenceSink) Notice(_ context.Context, envID string, text string) {
	ctx, cancel := context.WithTimeout(context.Background(), sinkTimeout)
	defer cancel()

	if err := s.publisher.PublishNotice(ctx, envID, events.NoticePayload{
		BasePayload: events.NewBase(events.EventTypeNotice, envID),
		Text:        text,
	}); err != nil {
		s.logger.Warn("Failed to publish notice", "env_id", envID, "error", err)
	}
}
