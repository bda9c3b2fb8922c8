package usecase

import (
	"context"
	"log"
	"regexp"
	"strings"

	"fiscalai/internal/usecase/interfaces"
)

var emailAddressRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// SendEmailInput is one outbound notification email request.
type SendEmailInput struct {
	To          string
	Subject     string
	Message     string
	MessageType string
}

// IEmailUseCase sends transactional notification emails.
type IEmailUseCase interface {
	Send(ctx context.Context, in SendEmailInput) error
}

type EmailUseCase struct {
	sender interfaces.IEmailSender
}

var _ IEmailUseCase = (*EmailUseCase)(nil)

// NewEmailUseCase accepts a nil sender: the feature degrades to a
// configuration error at call time instead of failing startup.
func NewEmailUseCase(sender interfaces.IEmailSender) *EmailUseCase {
	return &EmailUseCase{sender: sender}
}

func (u *EmailUseCase) Send(ctx context.Context, in SendEmailInput) error {
	required := []struct {
		value, field, label string
	}{
		{in.To, "to", "Destinatário"},
		{in.Subject, "subject", "Assunto"},
		{in.Message, "message", "Mensagem"},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return missingField(f.field, f.label)
		}
	}
	if !emailAddressRe.MatchString(strings.TrimSpace(in.To)) {
		return ErrInvalidEmailAddress
	}
	if u.sender == nil {
		return ErrEmailSenderNotConfigured
	}

	messageType := in.MessageType
	if messageType == "" {
		messageType = "info"
	}
	if err := u.sender.Send(ctx, strings.TrimSpace(in.To), in.Subject, in.Message, messageType); err != nil {
		log.Printf("[email][usecase] send failed to=%s err=%v", in.To, err)
		return err
	}
	log.Printf("[email][usecase] send success to=%s", in.To)
	return nil
}
