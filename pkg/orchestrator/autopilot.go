package orchestrator

import (
	"context"
	"sync"

	"github.com/showroom-hq/showroom/pkg/config"
)

// Autopilot walks a template's scripted demo one step at a time. It is a
// thin driver over the orchestrator: each advance feeds the next canned user
// message through SendUserMessage and everything downstream (tool calls,
// approvals, timeline) behaves exactly as if a human had typed it.
type Autopilot struct {
	mu      sync.Mutex
	orch    *Orchestrator
	script  *config.AutopilotScript
	cursor  int
	active  bool
	waiting bool
}

// NewAutopilot creates a driver for the orchestrator's template script.
// Returns nil when the template has no script.
func NewAutopilot(orch *Orchestrator) *Autopilot {
	if orch.Template().Autopilot == nil || len(orch.Template().Autopilot.Steps) == 0 {
		return nil
	}
	return &Autopilot{orch: orch, script: orch.Template().Autopilot}
}

// Start activates the script from the beginning. Starting an already active
// run rewinds it.
func (a *Autopilot) Start() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.active = true
	a.cursor = 0
}

// Stop deactivates the run and rewinds it to the first step, so a later
// Start replays the script from the top. The conversation so far is
// untouched.
func (a *Autopilot) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.active = false
	a.waiting = false
	a.cursor = 0
}

// Active reports whether a run is in progress.
func (a *Autopilot) Active() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.active
}

// Waiting reports whether an advanced step is still being processed.
func (a *Autopilot) Waiting() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.waiting
}

// StepIndex returns the cursor position (the next step to play).
func (a *Autopilot) StepIndex() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cursor
}

// Remaining returns how many steps are left to play.
func (a *Autopilot) Remaining() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.active {
		return 0
	}
	return len(a.script.Steps) - a.cursor
}

// Advance plays the next step. Returns the step and true when it was
// dispatched. The step is not consumed when the orchestrator is busy (a turn
// in flight or an approval pending), so a later advance retries it. Past the
// last step the run deactivates and Advance returns (nil, false).
func (a *Autopilot) Advance(ctx context.Context, bearerToken string) (*config.AutopilotStep, bool) {
	a.mu.Lock()
	if !a.active || a.waiting {
		a.mu.Unlock()
		return nil, false
	}
	if a.cursor >= len(a.script.Steps) {
		a.active = false
		a.mu.Unlock()
		return nil, false
	}
	step := a.script.Steps[a.cursor]
	a.cursor++
	a.waiting = true
	a.mu.Unlock()

	accepted := a.orch.SendUserMessage(ctx, step.UserMessage, bearerToken)

	a.mu.Lock()
	a.waiting = false
	if !accepted {
		a.cursor--
	}
	if a.cursor >= len(a.script.Steps) {
		a.active = false
	}
	a.mu.Unlock()

	if !accepted {
		return &step, false
	}
	return &step, true
}
