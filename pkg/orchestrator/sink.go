package orchestrator

import (
	"context"

	"github.com/showroom-hq/showroom/pkg/models"
)

// Sink receives state-change callbacks from an Orchestrator so the hosting
// layer can persist and broadcast them. All methods are best-effort: the
// orchestrator's in-memory state is the source of truth and a failing sink
// must never stall a turn. Implementations log their own failures.
type Sink interface {
	MessageAppended(ctx context.Context, envID string, seq int, msg *models.ChatMessage)
	TimelineEventRecorded(ctx context.Context, envID string, seq int, ev *models.TimelineEvent)
	ApprovalRequested(ctx context.Context, envID string, req *models.ApprovalRequest)
	ApprovalResolved(ctx context.Context, envID string, requestID string, decision models.Decision)
	StateChanged(ctx context.Context, envID string, state State)

	// Notice surfaces a transient, non-fatal notification (rate limit,
	// quota, follow-up failure). Nothing is persisted for these.
	Notice(ctx context.Context, envID string, text string)
}

// NopSink discards all callbacks. Used in tests and as the default when no
// sink is configured.
type NopSink struct{}

func (NopSink) MessageAppended(context.Context, string, int, *models.ChatMessage)       {}
func (NopSink) TimelineEventRecorded(context.Context, string, int, *models.TimelineEvent) {}
func (NopSink) ApprovalRequested(context.Context, string, *models.ApprovalRequest)      {}
func (NopSink) ApprovalResolved(context.Context, string, string, models.Decision)       {}
func (NopSink) StateChanged(context.Context, string, State)                             {}
func (NopSink) Notice(context.Context, string, string)                                  {}
