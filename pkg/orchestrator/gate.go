package orchestrator

import (
	"errors"
	"fmt"

	"github.com/showroom-hq/showroom/pkg/models"
)

// Gate errors.
var (
	// ErrGateOccupied indicates Request was called while a request is already
	// awaiting a decision. A correct Orchestrator never triggers this: the
	// whole turn suspends while awaiting a decision.
	ErrGateOccupied = errors.New("approval gate already awaiting a decision")

	// ErrDecisionMismatch indicates Decide was called with a request ID that
	// does not match the outstanding request.
	ErrDecisionMismatch = errors.New("decision does not match pending approval request")
)

// ApprovalGate holds at most one outstanding approval request and suspends
// the orchestration until a human decision arrives.
//
// Two states: Empty and AwaitingDecision. A duplicate decision after the
// gate has emptied is a no-op, not an error — UI double-submission must be
// safe.
type ApprovalGate struct {
	pending *models.ApprovalRequest
}

// NewApprovalGate creates an empty gate.
func NewApprovalGate() *ApprovalGate {
	return &ApprovalGate{}
}

// Request places an approval request in the gate. Returns ErrGateOccupied if
// a request is already awaiting a decision — a precondition violation, never
// a silent overwrite.
func (g *ApprovalGate) Request(req *models.ApprovalRequest) error {
	if g.pending != nil {
		return fmt.Errorf("%w: %s", ErrGateOccupied, g.pending.ID)
	}
	g.pending = req
	return nil
}

// Decide records a decision and empties the gate. Returns (request, true)
// when the decision resolved the outstanding request. An empty gate returns
// (nil, false) with no error; a mismatched request ID returns
// ErrDecisionMismatch.
func (g *ApprovalGate) Decide(requestID string, decision models.Decision) (*models.ApprovalRequest, bool, error) {
	if g.pending == nil {
		return nil, false, nil
	}
	if g.pending.ID != requestID {
		return nil, false, fmt.Errorf("%w: have %s, got %s", ErrDecisionMismatch, g.pending.ID, requestID)
	}
	req := g.pending
	g.pending = nil
	return req, true, nil
}

// Pending returns the outstanding request, or nil when the gate is empty.
func (g *ApprovalGate) Pending() *models.ApprovalRequest {
	return g.pending
}

// Clear empties the gate unconditionally (environment reset).
func (g *ApprovalGate) Clear() {
	g.pending = nil
}
