package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvChannel(t *testing.T) {
	tests := []struct {
		name  string
		envID string
		want  string
	}{
		{
			name:  "formats environment channel",
			envID: "abc-123",
			want:  "env:abc-123",
		},
		{
			name:  "handles UUID format",
			envID: "550e8400-e29b-41d4-a716-446655440000",
			want:  "env:550e8400-e29b-41d4-a716-446655440000",
		},
		{
			name:  "handles empty string",
			envID: "",
			want:  "env:",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EnvChannel(tt.envID))
		})
	}
}

func TestEventTypeConstants(t *testing.T) {
	types := []string{
		EventTypeMessageAppended,
		EventTypeTimelineRecorded,
		EventTypeApprovalRequested,
		EventTypeApprovalResolved,
		EventTypeEnvironmentReset,
		EventTypeEnvironmentState,
		EventTypeNotice,
	}

	seen := make(map[string]bool)
	for _, typ := range types {
		assert.NotEmpty(t, typ, "event type should not be empty")
		assert.False(t, seen[typ], "duplicate event type: %s", typ)
		seen[typ] = true
	}
}
