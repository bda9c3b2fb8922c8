package entities

import "time"

// ConnectionStatus is the last known connectivity outcome against the fiscal
// provider.
type ConnectionStatus string

const (
	ConnectionStatusConectado ConnectionStatus = "conectado"
	ConnectionStatusFalha     ConnectionStatus = "falha"
)

// FiscalIntegrationStatus records one row per company with the latest
// connectivity check result.
//
// Storage model (DynamoDB):
//   - PK: company_id
//
// The "at most one row per company" invariant is enforced by the primary key
// itself: the repository writes it with a single atomic UpdateItem, so two
// concurrent checks can never create duplicates.
type FiscalIntegrationStatus struct {
	CompanyID         string           `json:"company_id"`
	Status            ConnectionStatus `json:"status"`
	Mensagem          string           `json:"mensagem"`
	UltimaVerificacao time.Time        `json:"ultima_verificacao"`
}
