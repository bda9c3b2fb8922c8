package usecase

import (
	"context"
	"log"
	"strings"

	"fiscalai/internal/domain/entities"
	"fiscalai/internal/usecase/interfaces"
)

// IAssistantUseCase turns natural-language messages into structured fiscal
// commands.
type IAssistantUseCase interface {
	Interpret(ctx context.Context, message string, history []entities.ChatMessage) (entities.AssistantInterpretation, error)
}

type AssistantUseCase struct {
	gateway interfaces.IAssistantGateway
}

var _ IAssistantUseCase = (*AssistantUseCase)(nil)

// NewAssistantUseCase accepts a nil gateway: the feature degrades to a
// configuration error at call time instead of failing startup.
func NewAssistantUseCase(gateway interfaces.IAssistantGateway) *AssistantUseCase {
	return &AssistantUseCase{gateway: gateway}
}

func (u *AssistantUseCase) Interpret(ctx context.Context, message string, history []entities.ChatMessage) (entities.AssistantInterpretation, error) {
	if strings.TrimSpace(message) == "" {
		return entities.AssistantInterpretation{}, ErrMessageRequired
	}
	if u.gateway == nil {
		return entities.AssistantInterpretation{}, ErrAssistantNotConfigured
	}

	interpretation, err := u.gateway.InterpretCommand(ctx, message, history)
	if err != nil {
		log.Printf("[assistant][usecase] interpretation failed err=%v", err)
		return entities.AssistantInterpretation{}, err
	}
	if interpretation.Action != nil {
		log.Printf("[assistant][usecase] interpreted action=%s confirm=%t", interpretation.Action.Type, interpretation.RequiresConfirmation)
	}
	return interpretation, nil
}
