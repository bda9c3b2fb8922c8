package entities

import "time"

// NotificationType classifies the severity of a user-facing event record.
type NotificationType string

const (
	NotificationTipoSucesso NotificationType = "sucesso"
	NotificationTipoErro    NotificationType = "erro"
	NotificationTipoAlerta  NotificationType = "alerta"
	NotificationTipoInfo    NotificationType = "info"
)

// Notification is an append-only user-facing event record, created as a side
// effect of invoice-status changes and webhook events.
//
// Storage model (DynamoDB):
//   - PK: id
type Notification struct {
	ID        string           `json:"id"`
	Titulo    string           `json:"titulo"`
	Mensagem  string           `json:"mensagem"`
	Tipo      NotificationType `json:"tipo"`
	InvoiceID string           `json:"invoice_id,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}
