package request

import "fiscalai/internal/domain/entities"

type ChatMessageRequest struct {
	Role    string `json:"role" binding:"required,oneof=user assistant"`
	Content string `json:"content" binding:"required"`
}

// AssistantCommandRequest is one natural-language command plus the recent
// conversation turns the model should see.
type AssistantCommandRequest struct {
	Message string               `json:"message" binding:"required"`
	History []ChatMessageRequest `json:"history"`
}

func (r AssistantCommandRequest) HistoryEntities() []entities.ChatMessage {
	if len(r.History) == 0 {
		return nil
	}
	history := make([]entities.ChatMessage, 0, len(r.History))
	for _, m := range r.History {
		history = append(history, entities.ChatMessage{Role: m.Role, Content: m.Content})
	}
	return history
}
