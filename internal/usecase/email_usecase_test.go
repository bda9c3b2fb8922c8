package usecase

import (
	"context"
	"errors"
	"testing"

	mock_interfaces "fiscalai/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validEmailInput() SendEmailInput {
	return SendEmailInput{
		To:      "cliente@example.com",
		Subject: "Nota fiscal emitida",
		Message: "Sua nota fiscal 42 foi autorizada.",
	}
}

func TestEmailUseCase_Send(t *testing.T) {
	t.Run("missing to", func(t *testing.T) {
		uc := NewEmailUseCase(nil)
		in := validEmailInput()
		in.To = " "

		err := uc.Send(context.Background(), in)
		var missing *MissingFieldError
		if !errors.As(err, &missing) || missing.Field != "to" {
			t.Fatalf("expected missing to, got %v", err)
		}
	})

	t.Run("invalid address", func(t *testing.T) {
		uc := NewEmailUseCase(nil)
		in := validEmailInput()
		in.To = "not-an-email"

		if err := uc.Send(context.Background(), in); !errors.Is(err, ErrInvalidEmailAddress) {
			t.Fatalf("expected ErrInvalidEmailAddress, got %v", err)
		}
	})

	t.Run("sender not configured", func(t *testing.T) {
		uc := NewEmailUseCase(nil)
		if err := uc.Send(context.Background(), validEmailInput()); !errors.Is(err, ErrEmailSenderNotConfigured) {
			t.Fatalf("expected ErrEmailSenderNotConfigured, got %v", err)
		}
	})

	t.Run("default message type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sender := mock_interfaces.NewMockIEmailSender(ctrl)
		uc := NewEmailUseCase(sender)

		sender.EXPECT().Send(gomock.Any(), "cliente@example.com", "Nota fiscal emitida", gomock.Any(), "info").Return(nil)

		if err := uc.Send(context.Background(), validEmailInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("sender failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sender := mock_interfaces.NewMockIEmailSender(ctrl)
		uc := NewEmailUseCase(sender)

		sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp relay down"))

		in := validEmailInput()
		in.MessageType = "sucesso"
		if err := uc.Send(context.Background(), in); err == nil {
			t.Fatal("expected error")
		}
	})
}
