package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/showroom-hq/showroom/ent"
	"github.com/showroom-hq/showroom/ent/chatmessage"
	"github.com/showroom-hq/showroom/pkg/models"
)

// MessageService persists the conversation log. The orchestrator's in-memory
// store is authoritative; these rows exist for audit and page reloads.
type MessageService struct {
	client *ent.Client
}

// NewMessageService creates a new MessageService.
func NewMessageService(client *ent.Client) *MessageService {
	return &MessageService{client: client}
}

// AppendMessage persists one conversation message.
func (s *MessageService) AppendMessage(httpCtx context.Context, req models.AppendMessageRequest) (*ent.ChatMessage, error) {
	if req.EnvID == "" {
		return nil, NewValidationError("EnvID", "required")
	}
	if req.SequenceNumber <= 0 {
		return nil, NewValidationError("SequenceNumber", "must be positive")
	}
	role := chatmessage.Role(req.Role)
	if err := chatmessage.RoleValidator(role); err != nil {
		return nil, NewValidationError("Role", "must be user, assistant, or system")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	messageID := req.MessageID
	if messageID == "" {
		messageID = uuid.New().String()
	}

	create := s.client.ChatMessage.Create().
		SetID(messageID).
		SetEnvID(req.EnvID).
		SetSequenceNumber(req.SequenceNumber).
		SetRole(role).
		SetContent(req.Content).
		SetCreatedAt(time.Now())
	if len(req.ToolCalls) > 0 {
		toolCalls, err := toolCallsToJSON(req.ToolCalls)
		if err != nil {
			return nil, fmt.Errorf("failed to encode tool calls: %w", err)
		}
		create = create.SetToolCalls(toolCalls)
	}

	msg, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append message: %w", err)
	}
	return msg, nil
}

// GetEnvironmentMessages retrieves an environment's conversation in order.
func (s *MessageService) GetEnvironmentMessages(ctx context.Context, envID string) ([]*ent.ChatMessage, error) {
	msgs, err := s.client.ChatMessage.Query().
		Where(chatmessage.EnvIDEQ(envID)).
		Order(ent.Asc(chatmessage.FieldSequenceNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}
	return msgs, nil
}

// CountEnvironmentMessages returns the number of persisted messages.
func (s *MessageService) CountEnvironmentMessages(ctx context.Context, envID string) (int, error) {
	n, err := s.client.ChatMessage.Query().
		Where(chatmessage.EnvIDEQ(envID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}
	return n, nil
}

// toolCallsToJSON converts displays into the generic JSON shape the schema
// stores.
func toolCallsToJSON(calls []*models.ToolCallDisplay) ([]map[string]interface{}, error) {
	raw, err := json.Marshal(calls)
	if err != nil {
		return nil, err
	}
	var out []map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
