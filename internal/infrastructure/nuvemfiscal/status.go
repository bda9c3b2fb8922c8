package nuvemfiscal

import "fiscalai/internal/domain/entities"

// MapStatus normalizes the provider status vocabulary into the internal
// invoice status. The provider may report the outcome under either "status"
// or "status_sefaz"; "status" wins when it carries a known value. The
// function is total: anything unrecognized maps to pendente_confirmacao.
func MapStatus(status, statusSefaz string) entities.InvoiceStatus {
	if mapped, ok := mapOne(status); ok {
		return mapped
	}
	if mapped, ok := mapOne(statusSefaz); ok {
		return mapped
	}
	return entities.InvoiceStatusPendenteConfirmacao
}

func mapOne(s string) (entities.InvoiceStatus, bool) {
	switch s {
	case "autorizada", "aprovada", "autorizado":
		return entities.InvoiceStatusAutorizada, true
	case "rejeitada", "rejeitado":
		return entities.InvoiceStatusRejeitada, true
	case "cancelada", "cancelado":
		return entities.InvoiceStatusCancelada, true
	}
	return "", false
}
