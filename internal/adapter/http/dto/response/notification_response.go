package response

import (
	"time"

	"fiscalai/internal/domain/entities"
)

type NotificationResponse struct {
	ID        string    `json:"id"`
	Titulo    string    `json:"titulo"`
	Mensagem  string    `json:"mensagem"`
	Tipo      string    `json:"tipo"`
	InvoiceID string    `json:"invoice_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromNotification(n entities.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Titulo:    n.Titulo,
		Mensagem:  n.Mensagem,
		Tipo:      string(n.Tipo),
		InvoiceID: n.InvoiceID,
		CreatedAt: n.CreatedAt,
	}
}

func FromNotifications(list []entities.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, FromNotification(n))
	}
	return out
}
