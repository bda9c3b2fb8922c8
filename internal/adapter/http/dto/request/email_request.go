package request

import "fiscalai/internal/usecase"

// SendEmailRequest is the payload accepted by the email notification
// endpoint.
type SendEmailRequest struct {
	To      string `json:"to" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
	Type    string `json:"type" binding:"omitempty,oneof=sucesso erro alerta info"`
}

func (r SendEmailRequest) ToInput() usecase.SendEmailInput {
	return usecase.SendEmailInput{
		To:          r.To,
		Subject:     r.Subject,
		Message:     r.Message,
		MessageType: r.Type,
	}
}
