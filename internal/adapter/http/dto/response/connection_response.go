package response

import (
	"time"

	"fiscalai/internal/domain/entities"
)

type ConnectionStatusResponse struct {
	CompanyID         string    `json:"company_id"`
	Status            string    `json:"status"`
	Mensagem          string    `json:"mensagem"`
	UltimaVerificacao time.Time `json:"ultima_verificacao"`
}

func FromIntegrationStatus(st entities.FiscalIntegrationStatus) ConnectionStatusResponse {
	return ConnectionStatusResponse{
		CompanyID:         st.CompanyID,
		Status:            string(st.Status),
		Mensagem:          st.Mensagem,
		UltimaVerificacao: st.UltimaVerificacao,
	}
}
