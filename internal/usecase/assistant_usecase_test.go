package usecase

import (
	"context"
	"errors"
	"testing"

	"fiscalai/internal/domain/entities"
	mock_interfaces "fiscalai/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAssistantUseCase_Interpret(t *testing.T) {
	t.Run("blank message", func(t *testing.T) {
		uc := NewAssistantUseCase(nil)
		_, err := uc.Interpret(context.Background(), "   ", nil)
		if !errors.Is(err, ErrMessageRequired) {
			t.Fatalf("expected ErrMessageRequired, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewAssistantUseCase(nil)
		_, err := uc.Interpret(context.Background(), "emitir nota de 1500", nil)
		if !errors.Is(err, ErrAssistantNotConfigured) {
			t.Fatalf("expected ErrAssistantNotConfigured, got %v", err)
		}
	})

	t.Run("gateway error passthrough", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIAssistantGateway(ctrl)
		uc := NewAssistantUseCase(gateway)

		gateway.EXPECT().InterpretCommand(gomock.Any(), "oi", gomock.Nil()).Return(entities.AssistantInterpretation{}, errors.New("llm down"))

		_, err := uc.Interpret(context.Background(), "oi", nil)
		if err == nil || err.Error() != "llm down" {
			t.Fatalf("expected gateway error, got %v", err)
		}
	})

	t.Run("success with history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIAssistantGateway(ctrl)
		uc := NewAssistantUseCase(gateway)

		history := []entities.ChatMessage{{Role: "user", Content: "quero emitir uma nota"}}
		want := entities.AssistantInterpretation{
			Action: &entities.AssistantAction{
				Type: entities.ActionEmitirNFSe,
				Data: entities.AssistantActionData{ClienteNome: "Maria", Valor: 1500},
			},
			Explanation:          "Vou emitir uma NFS-e de R$ 1500,00 para Maria.",
			RequiresConfirmation: true,
		}
		gateway.EXPECT().InterpretCommand(gomock.Any(), "emitir nota de 1500 para Maria", history).Return(want, nil)

		res, err := uc.Interpret(context.Background(), "emitir nota de 1500 para Maria", history)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Action == nil || res.Action.Type != entities.ActionEmitirNFSe || !res.RequiresConfirmation {
			t.Fatalf("unexpected interpretation: %+v", res)
		}
	})
}
