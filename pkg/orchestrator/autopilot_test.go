package orchestrator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showroom-hq/showroom/pkg/config"
	"github.com/showroom-hq/showroom/pkg/gateway"
	"github.com/showroom-hq/showroom/pkg/models"
)

func TestAutopilot_FullRun(t *testing.T) {
	gw := (&scriptedGateway{}).
		// Step 1: search, executed tool plus narration follow-up
		reply(&gateway.ConverseResponse{
			ToolCalls: []gateway.ToolCallDescriptor{executedCall("search_flights", "Search Flights", `{"flights":[{"price":199}]}`)},
		}).
		reply(&gateway.ConverseResponse{Content: "I found a $199 flight."}).
		// Step 2: booking suspends on approval
		reply(&gateway.ConverseResponse{
			ToolCalls: []gateway.ToolCallDescriptor{approvalCall("book_flight", "Book Flight", `{"price":199}`)},
		}).
		// Approval follow-up
		reply(&gateway.ConverseResponse{Content: "Booked!"}).
		// Step 3: itinerary
		reply(&gateway.ConverseResponse{
			ToolCalls: []gateway.ToolCallDescriptor{executedCall("view_itinerary", "View Itinerary", `{"trips":1}`)},
		}).
		reply(&gateway.ConverseResponse{Content: "Your trip is on the itinerary."})
	o := newTestOrchestrator(t, gw, nil)

	ap := NewAutopilot(o)
	require.NotNil(t, ap)
	ap.Start()
	require.True(t, ap.Active())
	assert.Equal(t, 3, ap.Remaining())

	step, ok := ap.Advance(context.Background(), "")
	require.True(t, ok)
	assert.Equal(t, "Search", step.Label)
	assert.Equal(t, StateIdle, o.State())

	step, ok = ap.Advance(context.Background(), "")
	require.True(t, ok)
	assert.Equal(t, "Book", step.Label)
	require.Equal(t, StateAwaitingApproval, o.State())

	// While suspended, advancing does not consume the next step
	_, ok = ap.Advance(context.Background(), "")
	assert.False(t, ok)
	assert.Equal(t, 2, ap.StepIndex())

	req := o.PendingApproval()
	require.NotNil(t, req)
	resolved, err := o.ResolveApproval(context.Background(), req.ID, models.DecisionApproved, "")
	require.NoError(t, err)
	require.True(t, resolved)

	step, ok = ap.Advance(context.Background(), "")
	require.True(t, ok)
	assert.Equal(t, "Confirm", step.Label)

	// Script exhausted: the run deactivates itself
	assert.False(t, ap.Active())
	_, ok = ap.Advance(context.Background(), "")
	assert.False(t, ok)
}

func TestAutopilot_StopMidRun(t *testing.T) {
	gw := (&scriptedGateway{}).
		reply(&gateway.ConverseResponse{Content: "Sure."})
	o := newTestOrchestrator(t, gw, nil)

	ap := NewAutopilot(o)
	require.NotNil(t, ap)
	ap.Start()
	_, ok := ap.Advance(context.Background(), "")
	require.True(t, ok)

	ap.Stop()
	assert.False(t, ap.Active())
	// Stopping rewinds to the first step
	assert.Equal(t, 0, ap.StepIndex())
	_, ok = ap.Advance(context.Background(), "")
	assert.False(t, ok)

	// The conversation so far survives the stop
	assert.Len(t, o.Messages(), 2)
}

func TestAutopilot_StartRewinds(t *testing.T) {
	gw := (&scriptedGateway{}).
		reply(&gateway.ConverseResponse{Content: "First pass."}).
		reply(&gateway.ConverseResponse{Content: "Second pass."})
	o := newTestOrchestrator(t, gw, nil)

	ap := NewAutopilot(o)
	require.NotNil(t, ap)
	ap.Start()
	_, ok := ap.Advance(context.Background(), "")
	require.True(t, ok)
	assert.Equal(t, 1, ap.StepIndex())

	ap.Start()
	assert.Equal(t, 0, ap.StepIndex())
	step, ok := ap.Advance(context.Background(), "")
	require.True(t, ok)
	assert.Equal(t, "Search", step.Label)
}

func TestNewAutopilot_NoScript(t *testing.T) {
	cfg, err := config.Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)
	// The banking template ships without a script
	tmpl, err := cfg.GetTemplate("banking")
	require.NoError(t, err)

	o := New(Options{
		EnvID:    "env-banking",
		Template: tmpl,
		Config:   cfg,
		Client:   &scriptedGateway{},
	})
	assert.Nil(t, NewAutopilot(o))
}
