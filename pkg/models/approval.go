package models

// Decision is a human approval decision.
type Decision string

// Approval decisions.
const (
	DecisionApproved Decision = "approved"
	DecisionDenied   Decision = "denied"
)

// Valid reports whether d is a recognized decision value.
func (d Decision) Valid() bool {
	return d == DecisionApproved || d == DecisionDenied
}

// ApprovalRequest is a pending human-in-the-loop approval. At most one exists
// per environment at a time (the approval gate is single-slot); it is
// destroyed the instant a decision is recorded.
type ApprovalRequest struct {
	ID              string            `json:"id"`
	ToolName        string            `json:"tool_name"`
	ToolDescription string            `json:"tool_description,omitempty"`
	Scopes          []string          `json:"scopes,omitempty"`
	DataSummary     map[string]string `json:"data_summary,omitempty"`
	Feature         string            `json:"feature,omitempty"`
	Explanation     string            `json:"explanation,omitempty"`
}
