package orchestrator

import (
	"time"

	"github.com/google/uuid"

	"github.com/showroom-hq/showroom/pkg/gateway"
	"github.com/showroom-hq/showroom/pkg/models"
)

// ConversationStore is the ordered log of chat turns. Owned exclusively by
// the Orchestrator; messages are immutable once appended and the sequence is
// the sole source of truth replayed to the gateway on every turn.
type ConversationStore struct {
	messages []*models.ChatMessage
	seq      int
}

// NewConversationStore creates an empty conversation log.
func NewConversationStore() *ConversationStore {
	return &ConversationStore{}
}

// Append adds a message to the log and returns it with its assigned
// sequence number.
func (s *ConversationStore) Append(role models.Role, content string, toolCalls []*models.ToolCallDisplay) (*models.ChatMessage, int) {
	msg := &models.ChatMessage{
		ID:        uuid.New().String(),
		Role:      role,
		Content:   content,
		ToolCalls: toolCalls,
		CreatedAt: time.Now(),
	}
	s.messages = append(s.messages, msg)
	s.seq++
	return msg, s.seq
}

// Messages returns a copy of the log in append order.
func (s *ConversationStore) Messages() []*models.ChatMessage {
	out := make([]*models.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Len returns the number of messages in the log.
func (s *ConversationStore) Len() int {
	return len(s.messages)
}

// History renders the log as gateway turn messages, in order.
func (s *ConversationStore) History() []gateway.TurnMessage {
	history := make([]gateway.TurnMessage, 0, len(s.messages))
	for _, msg := range s.messages {
		history = append(history, gateway.TurnMessage{Role: msg.Role, Content: msg.Content})
	}
	return history
}

// Clear drops all messages and resets the sequence counter.
func (s *ConversationStore) Clear() {
	s.messages = nil
	s.seq = 0
}
