package orchestrator

import (
	"time"

	"github.com/google/uuid"

	"github.com/showroom-hq/showroom/pkg/models"
)

// TimelineRecorder is the append-only, newest-first log of narrated session
// events. Purely observational — never consulted for control flow.
type TimelineRecorder struct {
	events []*models.TimelineEvent // newest first
	seq    int
}

// NewTimelineRecorder creates an empty timeline.
func NewTimelineRecorder() *TimelineRecorder {
	return &TimelineRecorder{}
}

// Record prepends an event and returns it with its assigned sequence number.
func (r *TimelineRecorder) Record(eventType models.TimelineEventType, title, detail string, status models.TimelineStatus, feature string) (*models.TimelineEvent, int) {
	ev := &models.TimelineEvent{
		ID:                 uuid.New().String(),
		Type:               eventType,
		Title:              title,
		Detail:             detail,
		Status:             status,
		HighlightedFeature: feature,
		CreatedAt:          time.Now(),
	}
	r.events = append([]*models.TimelineEvent{ev}, r.events...)
	r.seq++
	return ev, r.seq
}

// Events returns a copy of the timeline, newest first.
func (r *TimelineRecorder) Events() []*models.TimelineEvent {
	out := make([]*models.TimelineEvent, len(r.events))
	copy(out, r.events)
	return out
}

// Len returns the number of recorded events.
func (r *TimelineRecorder) Len() int {
	return len(r.events)
}

// Clear drops all events and resets the sequence counter.
func (r *TimelineRecorder) Clear() {
	r.events = nil
	r.seq = 0
}
