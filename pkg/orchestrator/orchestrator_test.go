package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showroom-hq/showroom/pkg/config"
	"github.com/showroom-hq/showroom/pkg/gateway"
	"github.com/showroom-hq/showroom/pkg/models"
)

// scriptedGateway pops canned replies in order and records every request.
type scriptedGateway struct {
	mu       sync.Mutex
	replies  []scriptedReply
	requests []gateway.ConverseRequest
}

type scriptedReply struct {
	resp *gateway.ConverseResponse
	err  error
}

func (g *scriptedGateway) reply(resp *gateway.ConverseResponse) *scriptedGateway {
	g.replies = append(g.replies, scriptedReply{resp: resp})
	return g
}

func (g *scriptedGateway) fail(err error) *scriptedGateway {
	g.replies = append(g.replies, scriptedReply{err: err})
	return g
}

func (g *scriptedGateway) Converse(_ context.Context, req *gateway.ConverseRequest, _ string) (*gateway.ConverseResponse, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.requests = append(g.requests, *req)
	if len(g.replies) == 0 {
		return nil, errors.New("scripted gateway exhausted")
	}
	next := g.replies[0]
	g.replies = g.replies[1:]
	return next.resp, next.err
}

func (g *scriptedGateway) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.requests)
}

func (g *scriptedGateway) request(i int) gateway.ConverseRequest {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.requests[i]
}

// recordingSink captures transient notices.
type recordingSink struct {
	NopSink
	mu      sync.Mutex
	notices []string
}

func (s *recordingSink) Notice(_ context.Context, _ string, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notices = append(s.notices, text)
}

func (s *recordingSink) noticeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.notices)
}

func newTestOrchestrator(t *testing.T, client AgentClient, sink Sink) *Orchestrator {
	t.Helper()
	cfg, err := config.Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)
	tmpl, err := cfg.GetTemplate("travel")
	require.NoError(t, err)
	return New(Options{
		EnvID:    "env-test",
		Template: tmpl,
		Config:   cfg,
		Client:   client,
		Sink:     sink,
	})
}

func executedCall(toolID, toolName, result string) gateway.ToolCallDescriptor {
	return gateway.ToolCallDescriptor{
		Type:     gateway.ToolCallExecuted,
		ToolID:   toolID,
		ToolName: toolName,
		Result:   json.RawMessage(result),
	}
}

func approvalCall(toolID, toolName string, args string) gateway.ToolCallDescriptor {
	return gateway.ToolCallDescriptor{
		Type:     gateway.ToolCallApprovalRequired,
		ToolID:   toolID,
		ToolName: toolName,
		Scopes:   []string{"flights:write", "payments:charge"},
		Args:     json.RawMessage(args),
	}
}

func TestSendUserMessage_PlainReply(t *testing.T) {
	gw := (&scriptedGateway{}).reply(&gateway.ConverseResponse{Content: "Hello! How can I help?"})
	o := newTestOrchestrator(t, gw, nil)

	require.True(t, o.SendUserMessage(context.Background(), "Hi", ""))

	assert.Equal(t, StateIdle, o.State())
	msgs := o.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, models.RoleUser, msgs[0].Role)
	assert.Equal(t, "Hi", msgs[0].Content)
	assert.Equal(t, models.RoleAssistant, msgs[1].Role)
	assert.Equal(t, "Hello! How can I help?", msgs[1].Content)
	assert.Equal(t, 1, gw.callCount())

	// Full context rides along on every turn
	req := gw.request(0)
	assert.Equal(t, "travel", req.TemplateID)
	assert.Equal(t, "env-test", req.EnvID)
	assert.NotEmpty(t, req.Tools)
}

func TestSendUserMessage_ExecutedToolCall(t *testing.T) {
	gw := (&scriptedGateway{}).
		reply(&gateway.ConverseResponse{
			Content:   "Let me search.",
			ToolCalls: []gateway.ToolCallDescriptor{executedCall("search_flights", "Search Flights", `{"flights":[]}`)},
		}).
		reply(&gateway.ConverseResponse{Content: "No direct flights, but I found connections."})
	o := newTestOrchestrator(t, gw, nil)

	require.True(t, o.SendUserMessage(context.Background(), "Flights to Lisbon?", ""))

	assert.Equal(t, StateIdle, o.State())
	msgs := o.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "Let me search.\n\nNo direct flights, but I found connections.", msgs[1].Content)
	require.Len(t, msgs[1].ToolCalls, 1)
	assert.Equal(t, models.ToolCallCompleted, msgs[1].ToolCalls[0].Status)
	assert.Equal(t, "Search Flights", msgs[1].ToolCalls[0].ToolName)
	assert.Equal(t, "Search Flights", o.LastToolName())

	// Synthetic follow-up resends the history with a placeholder assistant
	// turn and the executed call folded in as an approved decision
	require.Equal(t, 2, gw.callCount())
	follow := gw.request(1)
	last := follow.Messages[len(follow.Messages)-1]
	assert.Equal(t, models.RoleAssistant, last.Role)
	assert.Contains(t, last.Content, "Search Flights")
	require.Len(t, follow.PendingApprovals, 1)
	assert.Equal(t, models.DecisionApproved, follow.PendingApprovals[0].Decision)
	assert.Equal(t, "search_flights", follow.PendingApprovals[0].ToolID)

	// Timeline narrates the call, newest first
	events := o.TimelineEvents()
	var types []models.TimelineEventType
	for _, ev := range events {
		types = append(types, ev.Type)
	}
	assert.Contains(t, types, models.TimelineToolCall)
	assert.Equal(t, models.TimelineAuth, events[len(events)-1].Type)
}

func TestSendUserMessage_SuspendsOnApproval(t *testing.T) {
	gw := (&scriptedGateway{}).reply(&gateway.ConverseResponse{
		Content: "I found a flight for $420.",
		ToolCalls: []gateway.ToolCallDescriptor{
			executedCall("search_flights", "Search Flights", `{"flights":[{"price":420}]}`),
			approvalCall("book_flight", "Book Flight", `{"flight":"TP123","price":420}`),
		},
	})
	o := newTestOrchestrator(t, gw, nil)

	require.True(t, o.SendUserMessage(context.Background(), "Book the cheapest to Lisbon", ""))

	assert.Equal(t, StateAwaitingApproval, o.State())
	req := o.PendingApproval()
	require.NotNil(t, req)
	assert.Equal(t, "Book Flight", req.ToolName)
	assert.Equal(t, "async-authorization", req.Feature)
	assert.NotEmpty(t, req.Explanation)
	assert.Equal(t, "420", req.DataSummary["price"])

	// Partial assistant message holds the preceding text only
	msgs := o.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "I found a flight for $420.", msgs[1].Content)
	assert.Empty(t, msgs[1].ToolCalls)

	// One completed and one pending display are tracked for the turn
	displays := o.TurnToolCalls()
	require.Len(t, displays, 2)
	assert.Equal(t, models.ToolCallCompleted, displays[0].Status)
	assert.Equal(t, models.ToolCallPending, displays[1].Status)
	assert.True(t, displays[1].RequiresApproval)

	// No follow-up while suspended
	assert.Equal(t, 1, gw.callCount())

	events := o.TimelineEvents()
	assert.Equal(t, models.TimelineApproval, events[0].Type)
	assert.Equal(t, models.TimelinePending, events[0].Status)
}

func TestSendUserMessage_RejectedWhileBusy(t *testing.T) {
	gw := (&scriptedGateway{}).reply(&gateway.ConverseResponse{
		ToolCalls: []gateway.ToolCallDescriptor{approvalCall("book_flight", "Book Flight", `{}`)},
	})
	o := newTestOrchestrator(t, gw, nil)

	require.True(t, o.SendUserMessage(context.Background(), "Book it", ""))
	require.Equal(t, StateAwaitingApproval, o.State())

	before := len(o.Messages())
	assert.False(t, o.SendUserMessage(context.Background(), "Are you there?", ""))
	assert.Len(t, o.Messages(), before)
	assert.Equal(t, 1, gw.callCount())
}

func TestSendUserMessage_EmptyTextRejected(t *testing.T) {
	gw := &scriptedGateway{}
	o := newTestOrchestrator(t, gw, nil)

	assert.False(t, o.SendUserMessage(context.Background(), "   ", ""))
	assert.Equal(t, 0, gw.callCount())
	assert.Empty(t, o.Messages())
}

func TestResolveApproval_Approved(t *testing.T) {
	gw := (&scriptedGateway{}).
		reply(&gateway.ConverseResponse{
			ToolCalls: []gateway.ToolCallDescriptor{approvalCall("book_flight", "Book Flight", `{"flight":"TP123"}`)},
		}).
		reply(&gateway.ConverseResponse{
			Content:   "Booked! Confirmation ABC123.",
			ToolCalls: []gateway.ToolCallDescriptor{executedCall("book_flight", "Book Flight", `{"confirmation":"ABC123"}`)},
		})
	o := newTestOrchestrator(t, gw, nil)

	require.True(t, o.SendUserMessage(context.Background(), "Book flight TP123", ""))
	req := o.PendingApproval()
	require.NotNil(t, req)

	resolved, err := o.ResolveApproval(context.Background(), req.ID, models.DecisionApproved, "")
	require.NoError(t, err)
	assert.True(t, resolved)
	assert.Equal(t, StateIdle, o.State())
	assert.Nil(t, o.PendingApproval())

	msgs := o.Messages()
	final := msgs[len(msgs)-1]
	assert.Equal(t, "Booked! Confirmation ABC123.", final.Content)
	require.Len(t, final.ToolCalls, 1)
	assert.Equal(t, models.ToolCallCompleted, final.ToolCalls[0].Status)
	assert.Contains(t, final.ToolCalls[0].Result, "ABC123")

	// Decision rides back to the gateway as a pending approval
	require.Equal(t, 2, gw.callCount())
	follow := gw.request(1)
	require.Len(t, follow.PendingApprovals, 1)
	assert.Equal(t, models.DecisionApproved, follow.PendingApprovals[0].Decision)
	assert.Equal(t, "book_flight", follow.PendingApprovals[0].ToolID)

	// Approval narration includes the token exchange
	var types []models.TimelineEventType
	for _, ev := range o.TimelineEvents() {
		types = append(types, ev.Type)
	}
	assert.Contains(t, types, models.TimelineTokenExchange)
}

func TestResolveApproval_Denied(t *testing.T) {
	gw := (&scriptedGateway{}).
		reply(&gateway.ConverseResponse{
			ToolCalls: []gateway.ToolCallDescriptor{approvalCall("book_flight", "Book Flight", `{}`)},
		}).
		reply(&gateway.ConverseResponse{})
	o := newTestOrchestrator(t, gw, nil)

	require.True(t, o.SendUserMessage(context.Background(), "Book it", ""))
	req := o.PendingApproval()
	require.NotNil(t, req)

	resolved, err := o.ResolveApproval(context.Background(), req.ID, models.DecisionDenied, "")
	require.NoError(t, err)
	assert.True(t, resolved)
	assert.Equal(t, StateIdle, o.State())

	msgs := o.Messages()
	final := msgs[len(msgs)-1]
	assert.Equal(t, "Action was denied.", final.Content)
	require.Len(t, final.ToolCalls, 1)
	assert.Equal(t, models.ToolCallDenied, final.ToolCalls[0].Status)

	events := o.TimelineEvents()
	var sawDenied, sawToken bool
	for _, ev := range events {
		if ev.Type == models.TimelineApproval && ev.Status == models.TimelineDenied {
			sawDenied = true
		}
		if ev.Type == models.TimelineTokenExchange {
			sawToken = true
		}
	}
	assert.True(t, sawDenied)
	assert.False(t, sawToken)
}

func TestResolveApproval_DuplicateIsNoOp(t *testing.T) {
	gw := (&scriptedGateway{}).
		reply(&gateway.ConverseResponse{
			ToolCalls: []gateway.ToolCallDescriptor{approvalCall("book_flight", "Book Flight", `{}`)},
		}).
		reply(&gateway.ConverseResponse{Content: "Done."})
	o := newTestOrchestrator(t, gw, nil)

	require.True(t, o.SendUserMessage(context.Background(), "Book it", ""))
	req := o.PendingApproval()
	require.NotNil(t, req)

	resolved, err := o.ResolveApproval(context.Background(), req.ID, models.DecisionApproved, "")
	require.NoError(t, err)
	require.True(t, resolved)

	before := len(o.Messages())
	resolved, err = o.ResolveApproval(context.Background(), req.ID, models.DecisionApproved, "")
	require.NoError(t, err)
	assert.False(t, resolved)
	assert.Len(t, o.Messages(), before)
	assert.Equal(t, 2, gw.callCount())
}

func TestResolveApproval_MismatchedRequestID(t *testing.T) {
	gw := (&scriptedGateway{}).reply(&gateway.ConverseResponse{
		ToolCalls: []gateway.ToolCallDescriptor{approvalCall("book_flight", "Book Flight", `{}`)},
	})
	o := newTestOrchestrator(t, gw, nil)

	require.True(t, o.SendUserMessage(context.Background(), "Book it", ""))

	_, err := o.ResolveApproval(context.Background(), "wrong-id", models.DecisionApproved, "")
	assert.ErrorIs(t, err, ErrDecisionMismatch)
	assert.Equal(t, StateAwaitingApproval, o.State())
	assert.NotNil(t, o.PendingApproval())
}

func TestResolveApproval_FollowUpFailureStillResolves(t *testing.T) {
	gw := (&scriptedGateway{}).
		reply(&gateway.ConverseResponse{
			ToolCalls: []gateway.ToolCallDescriptor{approvalCall("book_flight", "Book Flight", `{}`)},
		}).
		fail(errors.New("gateway returned HTTP 500"))
	sink := &recordingSink{}
	o := newTestOrchestrator(t, gw, sink)

	require.True(t, o.SendUserMessage(context.Background(), "Book it", ""))
	req := o.PendingApproval()
	require.NotNil(t, req)

	resolved, err := o.ResolveApproval(context.Background(), req.ID, models.DecisionApproved, "")
	require.NoError(t, err)
	assert.True(t, resolved)
	assert.Equal(t, StateIdle, o.State())
	assert.Nil(t, o.PendingApproval())

	final := o.Messages()[len(o.Messages())-1]
	assert.Equal(t, "Action completed.", final.Content)
	require.Len(t, final.ToolCalls, 1)
	assert.Equal(t, models.ToolCallCompleted, final.ToolCalls[0].Status)
	assert.Equal(t, 1, sink.noticeCount())
}

func TestSendUserMessage_RateLimited(t *testing.T) {
	gw := (&scriptedGateway{}).fail(gateway.ErrRateLimited)
	sink := &recordingSink{}
	o := newTestOrchestrator(t, gw, sink)

	require.True(t, o.SendUserMessage(context.Background(), "Hello", ""))

	// Transient: user message stays, no assistant reply, back to Idle
	assert.Equal(t, StateIdle, o.State())
	msgs := o.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, models.RoleUser, msgs[0].Role)
	assert.Equal(t, 1, sink.noticeCount())
}

func TestSendUserMessage_QuotaExhausted(t *testing.T) {
	gw := (&scriptedGateway{}).fail(gateway.ErrQuotaExhausted)
	sink := &recordingSink{}
	o := newTestOrchestrator(t, gw, sink)

	require.True(t, o.SendUserMessage(context.Background(), "Hello", ""))
	assert.Equal(t, StateIdle, o.State())
	require.Len(t, o.Messages(), 1)
	assert.Equal(t, 1, sink.noticeCount())
}

func TestSendUserMessage_GenericFailureApologizes(t *testing.T) {
	gw := (&scriptedGateway{}).fail(errors.New("gateway returned HTTP 502"))
	o := newTestOrchestrator(t, gw, nil)

	require.True(t, o.SendUserMessage(context.Background(), "Hello", ""))
	assert.Equal(t, StateIdle, o.State())
	msgs := o.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, models.RoleAssistant, msgs[1].Role)
	assert.True(t, strings.HasPrefix(msgs[1].Content, "Sorry"))
}

func TestReset_Idempotent(t *testing.T) {
	gw := (&scriptedGateway{}).reply(&gateway.ConverseResponse{
		ToolCalls: []gateway.ToolCallDescriptor{approvalCall("book_flight", "Book Flight", `{}`)},
	})
	o := newTestOrchestrator(t, gw, nil)

	require.True(t, o.SendUserMessage(context.Background(), "Book it", ""))
	require.Equal(t, StateAwaitingApproval, o.State())

	gen1 := o.Reset(context.Background())
	assert.Equal(t, StateIdle, o.State())
	assert.Nil(t, o.PendingApproval())
	assert.Empty(t, o.Messages())

	// Post-bootstrap shape: only the auth event remains
	events := o.TimelineEvents()
	require.Len(t, events, 1)
	assert.Equal(t, models.TimelineAuth, events[0].Type)

	gen2 := o.Reset(context.Background())
	assert.Equal(t, gen1+1, gen2)
	assert.Equal(t, StateIdle, o.State())
	require.Len(t, o.TimelineEvents(), 1)
}

// blockingGateway parks Converse until released so a reset can race it.
type blockingGateway struct {
	entered  chan struct{}
	release  chan struct{}
	response *gateway.ConverseResponse
}

func (g *blockingGateway) Converse(context.Context, *gateway.ConverseRequest, string) (*gateway.ConverseResponse, error) {
	close(g.entered)
	<-g.release
	return g.response, nil
}

func TestReset_DiscardsInFlightResponse(t *testing.T) {
	gw := &blockingGateway{
		entered:  make(chan struct{}),
		release:  make(chan struct{}),
		response: &gateway.ConverseResponse{Content: "Too late."},
	}
	o := newTestOrchestrator(t, gw, nil)

	done := make(chan struct{})
	go func() {
		o.SendUserMessage(context.Background(), "Hello", "")
		close(done)
	}()

	<-gw.entered
	o.Reset(context.Background())
	close(gw.release)
	<-done

	// The stale reply must not reappear in the fresh environment
	assert.Equal(t, StateIdle, o.State())
	assert.Empty(t, o.Messages())
	require.Len(t, o.TimelineEvents(), 1)
	assert.Equal(t, models.TimelineAuth, o.TimelineEvents()[0].Type)
}

func TestApprovalGate(t *testing.T) {
	t.Run("single slot", func(t *testing.T) {
		g := NewApprovalGate()
		require.NoError(t, g.Request(&models.ApprovalRequest{ID: "a"}))
		err := g.Request(&models.ApprovalRequest{ID: "b"})
		assert.ErrorIs(t, err, ErrGateOccupied)
		assert.Equal(t, "a", g.Pending().ID)
	})

	t.Run("decide empties the gate", func(t *testing.T) {
		g := NewApprovalGate()
		require.NoError(t, g.Request(&models.ApprovalRequest{ID: "a"}))
		req, ok, err := g.Decide("a", models.DecisionApproved)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "a", req.ID)
		assert.Nil(t, g.Pending())
	})

	t.Run("decide on empty gate is a no-op", func(t *testing.T) {
		g := NewApprovalGate()
		req, ok, err := g.Decide("a", models.DecisionApproved)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, req)
	})

	t.Run("mismatched id", func(t *testing.T) {
		g := NewApprovalGate()
		require.NoError(t, g.Request(&models.ApprovalRequest{ID: "a"}))
		_, _, err := g.Decide("b", models.DecisionApproved)
		assert.ErrorIs(t, err, ErrDecisionMismatch)
		assert.NotNil(t, g.Pending())
	})
}

func TestTimelineRecorder_NewestFirst(t *testing.T) {
	r := NewTimelineRecorder()
	r.Record(models.TimelineAuth, "first", "", models.TimelineSuccess, "")
	r.Record(models.TimelineMessage, "second", "", models.TimelineSuccess, "")
	r.Record(models.TimelineToolCall, "third", "", models.TimelineSuccess, "")

	events := r.Events()
	require.Len(t, events, 3)
	assert.Equal(t, "third", events[0].Title)
	assert.Equal(t, "first", events[2].Title)
}

func TestTruncate_RuneBoundary(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))

	// 10 bytes lands in the middle of the fourth character; the cut backs up
	// to the previous boundary instead of emitting a broken rune.
	out := truncate(strings.Repeat("日", 20), 10)
	assert.True(t, utf8.ValidString(out))
	assert.Equal(t, "日日日...", out)

	out = truncate("café au lait, s'il vous plaît", 4)
	assert.True(t, utf8.ValidString(out))
	assert.Equal(t, "caf...", out)
}
