package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/showroom-hq/showroom/ent"
	"github.com/showroom-hq/showroom/ent/timelineevent"
	"github.com/showroom-hq/showroom/pkg/models"
)

// TimelineService persists the session narration timeline.
type TimelineService struct {
	client *ent.Client
}

// NewTimelineService creates a new TimelineService.
func NewTimelineService(client *ent.Client) *TimelineService {
	return &TimelineService{client: client}
}

// AppendTimelineEvent persists one timeline event.
func (s *TimelineService) AppendTimelineEvent(httpCtx context.Context, req models.AppendTimelineEventRequest) (*ent.TimelineEvent, error) {
	if req.EnvID == "" {
		return nil, NewValidationError("EnvID", "required")
	}
	if req.SequenceNumber <= 0 {
		return nil, NewValidationError("SequenceNumber", "must be positive")
	}
	if req.Title == "" {
		return nil, NewValidationError("Title", "required")
	}
	eventType := timelineevent.EventType(req.EventType)
	if err := timelineevent.EventTypeValidator(eventType); err != nil {
		return nil, NewValidationError("EventType", "unknown event type")
	}
	status := timelineevent.Status(req.Status)
	if req.Status == "" {
		status = timelineevent.StatusSuccess
	}
	if err := timelineevent.StatusValidator(status); err != nil {
		return nil, NewValidationError("Status", "must be success, denied, or pending")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	eventID := req.EventID
	if eventID == "" {
		eventID = uuid.New().String()
	}

	create := s.client.TimelineEvent.Create().
		SetID(eventID).
		SetEnvID(req.EnvID).
		SetSequenceNumber(req.SequenceNumber).
		SetEventType(eventType).
		SetStatus(status).
		SetTitle(req.Title).
		SetDetail(req.Detail).
		SetCreatedAt(time.Now())
	if req.HighlightedFeature != "" {
		create = create.SetHighlightedFeature(req.HighlightedFeature)
	}

	ev, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append timeline event: %w", err)
	}
	return ev, nil
}

// GetEnvironmentTimeline retrieves an environment's timeline, newest first.
func (s *TimelineService) GetEnvironmentTimeline(ctx context.Context, envID string) ([]*ent.TimelineEvent, error) {
	events, err := s.client.TimelineEvent.Query().
		Where(timelineevent.EnvIDEQ(envID)).
		Order(ent.Desc(timelineevent.FieldSequenceNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get timeline: %w", err)
	}
	return events, nil
}
