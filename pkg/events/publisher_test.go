package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(TimelineRecordedPayload{
			BasePayload: NewBase(EventTypeTimelineRecorded, "env-123"),
			EventID:     "evt-1",
			Title:       "Search Flights",
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeTimelineRecorded)
		assert.Contains(t, result, "env-123")
		assert.NotContains(t, result, "truncated")
	})

	t.Run("truncates oversized payload", func(t *testing.T) {
		payload, _ := json.Marshal(MessageAppendedPayload{
			BasePayload: NewBase(EventTypeMessageAppended, "env-456"),
			MessageID:   "msg-9",
			Content:     strings.Repeat("a", 8000),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, EventTypeMessageAppended)
		assert.Contains(t, result, "env-456")
		assert.Less(t, len(result), notifyLimit)
	})
}

func TestInjectDBEventIDAndTruncate(t *testing.T) {
	payload, _ := json.Marshal(TimelineRecordedPayload{
		BasePayload: NewBase(EventTypeTimelineRecorded, "env-123"),
		EventID:     "evt-7",
	})

	result, err := injectDBEventIDAndTruncate(payload, 42)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(result), &m))
	assert.Equal(t, float64(42), m["db_event_id"])
	assert.Equal(t, "evt-7", m["event_id"])
}
