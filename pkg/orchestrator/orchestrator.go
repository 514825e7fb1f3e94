// Package orchestrator implements the per-environment conversation state
// machine: it owns the conversation log, the timeline, and the single-slot
// approval gate, and drives turns against the agent gateway.
package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/showroom-hq/showroom/pkg/config"
	"github.com/showroom-hq/showroom/pkg/gateway"
	"github.com/showroom-hq/showroom/pkg/models"
)

// State is the orchestrator turn state. Exactly one turn is in flight at a
// time; sendUserMessage is a silent no-op outside Idle.
type State string

// Orchestrator states.
const (
	StateIdle             State = "idle"
	StateAwaitingAgent    State = "awaiting_agent"
	StateAwaitingApproval State = "awaiting_approval"
)

// Canned fallback text when the post-approval follow-up yields no narration.
const (
	approvedFallbackText = "Action completed."
	deniedFallbackText   = "Action was denied."
	executedFallbackText = "Done."
)

// AgentClient is the gateway surface the orchestrator needs. Satisfied by
// *gateway.Client; tests substitute a scripted fake.
type AgentClient interface {
	Converse(ctx context.Context, req *gateway.ConverseRequest, bearerToken string) (*gateway.ConverseResponse, error)
}

// Options configures a new Orchestrator.
type Options struct {
	EnvID    string
	Template *config.DemoTemplate
	Config   *config.Config
	Client   AgentClient
	Sink     Sink
	Logger   *slog.Logger
}

// pendingTurn is the snapshot held while a turn is suspended on approval:
// the suspending descriptor plus every tool-call display produced so far.
// The displays attach to the assistant message appended when the turn
// resolves.
type pendingTurn struct {
	requestID  string
	descriptor gateway.ToolCallDescriptor
	display    *models.ToolCallDisplay
	displays   []*models.ToolCallDisplay
}

// Orchestrator coordinates one demo environment's conversation. All exported
// methods are safe for concurrent use; the mutex is released across gateway
// calls and a generation counter discards responses that arrive after a
// reset.
type Orchestrator struct {
	mu sync.Mutex

	envID      string
	tmpl       *config.DemoTemplate
	tools      []*config.ToolDef
	previewLen int

	client AgentClient
	sink   Sink
	logger *slog.Logger

	conv     *ConversationStore
	timeline *TimelineRecorder
	gate     *ApprovalGate

	state      State
	pending    *pendingTurn
	generation int
	lastTool   string
}

// New creates an orchestrator for one environment and records the bootstrap
// auth event on its timeline.
func New(opts Options) *Orchestrator {
	sink := opts.Sink
	if sink == nil {
		sink = NopSink{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	previewLen := 60
	if opts.Config.Defaults != nil && opts.Config.Defaults.MessagePreviewLength > 0 {
		previewLen = opts.Config.Defaults.MessagePreviewLength
	}

	o := &Orchestrator{
		envID:      opts.EnvID,
		tmpl:       opts.Template,
		tools:      opts.Config.TemplateTools(opts.Template),
		previewLen: previewLen,
		client:     opts.Client,
		sink:       sink,
		logger:     logger.With("env_id", opts.EnvID, "template", opts.Template.ID),
		conv:       NewConversationStore(),
		timeline:   NewTimelineRecorder(),
		gate:       NewApprovalGate(),
		state:      StateIdle,
	}

	o.mu.Lock()
	o.bootstrapLocked(context.Background())
	o.mu.Unlock()
	return o
}

// bootstrapLocked records the session-start narration. Also invoked after a
// reset so the environment returns to its exact post-bootstrap shape.
func (o *Orchestrator) bootstrapLocked(ctx context.Context) {
	o.recordEventLocked(ctx, models.TimelineAuth, "Signed in",
		fmt.Sprintf("Authenticated for %s demo", o.tmpl.Name), models.TimelineSuccess, "")
}

// EnvID returns the environment identifier.
func (o *Orchestrator) EnvID() string {
	return o.envID
}

// Template returns the immutable demo template this environment runs.
func (o *Orchestrator) Template() *config.DemoTemplate {
	return o.tmpl
}

// State returns the current turn state.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Generation returns the reset generation counter. Incremented once per
// reset; callers holding an older value know their environment was wiped.
func (o *Orchestrator) Generation() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.generation
}

// Messages returns the conversation log in append order.
func (o *Orchestrator) Messages() []*models.ChatMessage {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.conv.Messages()
}

// TimelineEvents returns the timeline, newest first.
func (o *Orchestrator) TimelineEvents() []*models.TimelineEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.timeline.Events()
}

// PendingApproval returns the outstanding approval request, or nil.
func (o *Orchestrator) PendingApproval() *models.ApprovalRequest {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.gate.Pending()
}

// TurnToolCalls returns the tool-call displays of the suspended turn, or nil
// when no turn is awaiting approval.
func (o *Orchestrator) TurnToolCalls() []*models.ToolCallDisplay {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.pending == nil {
		return nil
	}
	out := make([]*models.ToolCallDisplay, len(o.pending.displays))
	copy(out, o.pending.displays)
	return out
}

// LastToolName returns the display name of the most recently reported tool.
func (o *Orchestrator) LastToolName() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.lastTool
}

// SendUserMessage runs one conversation turn. Returns false when the message
// was not accepted (empty text, or a turn already in flight); acceptance does
// not imply the agent succeeded. On gateway overload (rate limit or quota)
// the turn is rolled back to Idle with only a transient notice; on any other
// gateway failure an apology assistant message is appended.
func (o *Orchestrator) SendUserMessage(ctx context.Context, text, bearerToken string) bool {
	text = strings.TrimSpace(text)

	o.mu.Lock()
	if o.state != StateIdle || text == "" {
		o.mu.Unlock()
		return false
	}
	gen := o.generation
	o.appendMessageLocked(ctx, models.RoleUser, text, nil)
	o.recordEventLocked(ctx, models.TimelineMessage, "User message",
		truncate(text, o.previewLen), models.TimelineSuccess, "")
	o.setStateLocked(ctx, StateAwaitingAgent)
	history := o.conv.History()
	o.mu.Unlock()

	resp, err := o.converse(ctx, history, nil, bearerToken)

	o.mu.Lock()
	if o.generation != gen {
		// Environment was reset while the call was in flight.
		o.mu.Unlock()
		return true
	}
	if err != nil {
		o.failTurnLocked(ctx, err)
		o.mu.Unlock()
		return true
	}

	executed, pendingDesc := splitToolCalls(resp.ToolCalls)
	displays := make([]*models.ToolCallDisplay, 0, len(executed)+1)
	for _, tc := range executed {
		displays = append(displays, o.recordExecutedLocked(ctx, tc))
	}

	if pendingDesc != nil {
		o.suspendForApprovalLocked(ctx, resp.Content, *pendingDesc, displays)
		o.mu.Unlock()
		return true
	}

	if len(executed) == 0 {
		o.appendMessageLocked(ctx, models.RoleAssistant, resp.Content, nil)
		o.setStateLocked(ctx, StateIdle)
		o.mu.Unlock()
		return true
	}

	// Executed-only turn: issue a synthetic follow-up so the agent narrates
	// the results, then land everything in a single assistant message. The
	// resent history gains a placeholder assistant turn naming the tools, and
	// the executed calls ride along as already-approved decisions, the same
	// way resolved approvals travel.
	followHistory := append(o.conv.History(), gateway.TurnMessage{
		Role:    models.RoleAssistant,
		Content: toolUseSummary(executed),
	})
	o.mu.Unlock()

	followUp, followErr := o.converse(ctx, followHistory, executedDecisions(executed), bearerToken)

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.generation != gen {
		return true
	}

	content := resp.Content
	if followErr != nil {
		o.logger.Warn("Follow-up turn failed, keeping initial content", "error", followErr)
		o.sink.Notice(ctx, o.envID, "The assistant could not narrate the tool results.")
	} else if followUp.Content != "" {
		if content != "" {
			content = content + "\n\n" + followUp.Content
		} else {
			content = followUp.Content
		}
	}
	if content == "" {
		content = executedFallbackText
	}
	o.appendMessageLocked(ctx, models.RoleAssistant, content, displays)
	o.setStateLocked(ctx, StateIdle)
	return true
}

// ResolveApproval records a human decision for the outstanding approval
// request and resumes the suspended turn. Returns (false, nil) when there is
// nothing to resolve, which makes duplicate submissions harmless. A request
// ID that does not match the outstanding request is an error.
func (o *Orchestrator) ResolveApproval(ctx context.Context, requestID string, decision models.Decision, bearerToken string) (bool, error) {
	if !decision.Valid() {
		return false, fmt.Errorf("invalid decision %q", decision)
	}

	o.mu.Lock()
	if o.state != StateAwaitingApproval || o.pending == nil {
		o.mu.Unlock()
		return false, nil
	}
	req, ok, err := o.gate.Decide(requestID, decision)
	if err != nil {
		o.mu.Unlock()
		return false, err
	}
	if !ok {
		o.mu.Unlock()
		return false, nil
	}

	gen := o.generation
	pt := o.pending
	o.pending = nil
	approved := decision == models.DecisionApproved
	toolName := pt.display.ToolName
	feature := o.featureForTool(pt.descriptor.ToolID)

	if approved {
		pt.display.Status = models.ToolCallApproved
		o.recordEventLocked(ctx, models.TimelineApproval, "Approved: "+toolName,
			req.Explanation, models.TimelineSuccess, feature)
		o.recordEventLocked(ctx, models.TimelineTokenExchange, "Scoped token issued",
			"Scopes: "+strings.Join(pt.display.Scopes, ", "), models.TimelineSuccess, feature)
	} else {
		pt.display.Status = models.ToolCallDenied
		o.recordEventLocked(ctx, models.TimelineApproval, "Denied: "+toolName,
			req.Explanation, models.TimelineDenied, feature)
	}
	o.sink.ApprovalResolved(ctx, o.envID, requestID, decision)
	o.setStateLocked(ctx, StateAwaitingAgent)
	history := o.conv.History()
	o.mu.Unlock()

	pending := []gateway.PendingApproval{{
		Decision: decision,
		ToolID:   pt.descriptor.ToolID,
		Args:     pt.descriptor.Args,
	}}
	resp, convErr := o.converse(ctx, history, pending, bearerToken)

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.generation != gen {
		return true, nil
	}

	content := ""
	if convErr != nil {
		// Non-fatal: the decision is already recorded, so the turn still
		// resolves with canned text.
		o.logger.Warn("Approval follow-up failed", "error", convErr)
		o.sink.Notice(ctx, o.envID, "The assistant could not narrate the outcome.")
	} else {
		content = resp.Content
		for _, tc := range resp.ToolCalls {
			if tc.Type != gateway.ToolCallExecuted {
				o.logger.Warn("Ignoring nested approval request in follow-up", "tool_id", tc.ToolID)
				continue
			}
			if tc.ToolID == pt.descriptor.ToolID && approved {
				pt.display.Result = string(tc.Result)
				continue
			}
			pt.displays = append(pt.displays, o.recordExecutedLocked(ctx, tc))
		}
	}

	if approved {
		pt.display.Status = models.ToolCallCompleted
		o.recordEventLocked(ctx, models.TimelineToolCall, toolName,
			truncate(pt.display.Result, o.previewLen), models.TimelineSuccess, feature)
	}
	if content == "" {
		if approved {
			content = approvedFallbackText
		} else {
			content = deniedFallbackText
		}
	}
	o.appendMessageLocked(ctx, models.RoleAssistant, content, pt.displays)
	o.setStateLocked(ctx, StateIdle)
	return true, nil
}

// Reset wipes the conversation, timeline, approval gate, and any suspended
// turn, returning the environment to its post-bootstrap shape. Idempotent.
// In-flight gateway responses from before the reset are discarded via the
// generation counter. Remote purging is the hosting layer's concern.
func (o *Orchestrator) Reset(ctx context.Context) int {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.generation++
	o.conv.Clear()
	o.timeline.Clear()
	o.gate.Clear()
	o.pending = nil
	o.lastTool = ""
	o.state = StateIdle
	o.bootstrapLocked(ctx)
	o.sink.StateChanged(ctx, o.envID, o.state)
	o.logger.Info("Environment reset", "generation", o.generation)
	return o.generation
}

// suspendForApprovalLocked parks the turn on the first approval-required
// descriptor. Any text the agent produced before the tool call lands as a
// partial assistant message; the tool-call displays attach to the final
// message once the decision resolves.
func (o *Orchestrator) suspendForApprovalLocked(ctx context.Context, content string, desc gateway.ToolCallDescriptor, displays []*models.ToolCallDisplay) {
	display := &models.ToolCallDisplay{
		ID:               uuid.New().String(),
		ToolName:         desc.ToolName,
		ToolDescription:  desc.ToolDescription,
		Scopes:           desc.Scopes,
		Status:           models.ToolCallPending,
		RequiresApproval: true,
		CreatedAt:        time.Now(),
	}
	o.lastTool = desc.ToolName
	displays = append(displays, display)

	req := o.buildApprovalRequest(desc)
	if err := o.gate.Request(req); err != nil {
		// Unreachable while the state machine holds: the gate empties before
		// the turn leaves AwaitingApproval.
		o.logger.Error("Approval gate violation", "error", err)
		return
	}

	feature := o.featureForTool(desc.ToolID)
	o.recordEventLocked(ctx, models.TimelineApproval, "Approval required: "+desc.ToolName,
		req.Explanation, models.TimelinePending, feature)

	if content != "" {
		o.appendMessageLocked(ctx, models.RoleAssistant, content, nil)
	}

	o.pending = &pendingTurn{
		requestID:  req.ID,
		descriptor: desc,
		display:    display,
		displays:   displays,
	}
	o.setStateLocked(ctx, StateAwaitingApproval)
	o.sink.ApprovalRequested(ctx, o.envID, req)
}

// failTurnLocked maps a gateway error onto the conversation. Overload errors
// roll the turn back to Idle with only a transient notice; anything else gets
// an apology message so the conversation stays coherent.
func (o *Orchestrator) failTurnLocked(ctx context.Context, err error) {
	switch {
	case isOverload(err):
		o.logger.Warn("Gateway overloaded, turn rolled back", "error", err)
		o.sink.Notice(ctx, o.envID, "The assistant is busy right now. Please try again in a moment.")
	default:
		o.logger.Error("Gateway turn failed", "error", err)
		o.appendMessageLocked(ctx, models.RoleAssistant,
			"Sorry, something went wrong while processing that. Please try again.", nil)
	}
	o.setStateLocked(ctx, StateIdle)
}

func isOverload(err error) bool {
	return errors.Is(err, gateway.ErrRateLimited) || errors.Is(err, gateway.ErrQuotaExhausted)
}

// recordExecutedLocked turns an executed descriptor into a display and
// narrates it on the timeline.
func (o *Orchestrator) recordExecutedLocked(ctx context.Context, desc gateway.ToolCallDescriptor) *models.ToolCallDisplay {
	display := &models.ToolCallDisplay{
		ID:              uuid.New().String(),
		ToolName:        desc.ToolName,
		ToolDescription: desc.ToolDescription,
		Scopes:          desc.Scopes,
		Status:          models.ToolCallCompleted,
		Result:          string(desc.Result),
		CreatedAt:       time.Now(),
	}
	o.lastTool = desc.ToolName
	o.recordEventLocked(ctx, models.TimelineToolCall, desc.ToolName,
		truncate(string(desc.Result), o.previewLen), models.TimelineSuccess, o.featureForTool(desc.ToolID))
	return display
}

// buildApprovalRequest assembles the approval card from the descriptor and
// the catalog entry behind it.
func (o *Orchestrator) buildApprovalRequest(desc gateway.ToolCallDescriptor) *models.ApprovalRequest {
	req := &models.ApprovalRequest{
		ID:              uuid.New().String(),
		ToolName:        desc.ToolName,
		ToolDescription: desc.ToolDescription,
		Scopes:          desc.Scopes,
		DataSummary:     summarizeArgs(desc.Args),
	}
	if def := o.toolByID(desc.ToolID); def != nil {
		req.Feature = def.Feature
		req.Explanation = def.Explanation
		if req.ToolDescription == "" {
			req.ToolDescription = def.Description
		}
	}
	return req
}

func (o *Orchestrator) toolByID(id string) *config.ToolDef {
	for _, def := range o.tools {
		if def.ID == id {
			return def
		}
	}
	return nil
}

func (o *Orchestrator) featureForTool(id string) string {
	if def := o.toolByID(id); def != nil {
		return def.Feature
	}
	return ""
}

func (o *Orchestrator) appendMessageLocked(ctx context.Context, role models.Role, content string, toolCalls []*models.ToolCallDisplay) *models.ChatMessage {
	msg, seq := o.conv.Append(role, content, toolCalls)
	o.sink.MessageAppended(ctx, o.envID, seq, msg)
	return msg
}

func (o *Orchestrator) recordEventLocked(ctx context.Context, eventType models.TimelineEventType, title, detail string, status models.TimelineStatus, feature string) {
	ev, seq := o.timeline.Record(eventType, title, detail, status, feature)
	o.sink.TimelineEventRecorded(ctx, o.envID, seq, ev)
}

func (o *Orchestrator) setStateLocked(ctx context.Context, state State) {
	if o.state == state {
		return
	}
	o.state = state
	o.sink.StateChanged(ctx, o.envID, state)
}

// converse builds the full gateway request for one turn. The template's
// persona, knowledge pack, and resolved tool list ride along every time; the
// gateway keeps no per-environment state.
func (o *Orchestrator) converse(ctx context.Context, history []gateway.TurnMessage, pending []gateway.PendingApproval, bearerToken string) (*gateway.ConverseResponse, error) {
	return o.client.Converse(ctx, &gateway.ConverseRequest{
		Messages:          history,
		TemplateID:        o.tmpl.ID,
		EnvID:             o.envID,
		SystemPromptParts: o.tmpl.SystemPromptParts,
		KnowledgePack:     o.tmpl.KnowledgePack,
		Tools:             o.tools,
		PendingApprovals:  pending,
	}, bearerToken)
}

// splitToolCalls partitions descriptors into executed calls and the first
// approval-required call. Descriptors after the first approval request are
// dropped: the turn suspends there and the agent replans after the decision.
func splitToolCalls(calls []gateway.ToolCallDescriptor) ([]gateway.ToolCallDescriptor, *gateway.ToolCallDescriptor) {
	var executed []gateway.ToolCallDescriptor
	for i, tc := range calls {
		switch tc.Type {
		case gateway.ToolCallExecuted:
			executed = append(executed, tc)
		case gateway.ToolCallApprovalRequired:
			pending := calls[i]
			return executed, &pending
		}
	}
	return executed, nil
}

// toolUseSummary renders the placeholder assistant turn that stands in for
// the tool use on the resent history.
func toolUseSummary(executed []gateway.ToolCallDescriptor) string {
	names := make([]string, 0, len(executed))
	for _, tc := range executed {
		names = append(names, tc.ToolName)
	}
	return "Used tools: " + strings.Join(names, ", ") + "."
}

// executedDecisions folds executed calls into pending_approvals entries as
// already-approved decisions.
func executedDecisions(executed []gateway.ToolCallDescriptor) []gateway.PendingApproval {
	out := make([]gateway.PendingApproval, 0, len(executed))
	for _, tc := range executed {
		out = append(out, gateway.PendingApproval{
			Decision: models.DecisionApproved,
			ToolID:   tc.ToolID,
			Args:     tc.Args,
		})
	}
	return out
}

// summarizeArgs flattens the tool arguments into the label/value pairs shown
// on the approval card.
func summarizeArgs(raw json.RawMessage) map[string]string {
	if len(raw) == 0 {
		return nil
	}
	var args map[string]any
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil
	}
	summary := make(map[string]string, len(args))
	for k, v := range args {
		summary[k] = fmt.Sprintf("%v", v)
	}
	return summary
}

// truncate clips s to at most n bytes for a preview, backing up to a rune
// boundary so a multi-byte character is never split.
func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
