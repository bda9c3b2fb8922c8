package interfaces

import (
	"context"

	"fiscalai/internal/domain/entities"
)

// IAssistantGateway abstracts the LLM provider that turns natural-language
// requests into structured invoice commands.
type IAssistantGateway interface {
	InterpretCommand(ctx context.Context, message string, history []entities.ChatMessage) (entities.AssistantInterpretation, error)
}
