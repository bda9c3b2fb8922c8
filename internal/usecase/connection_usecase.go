package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"fiscalai/internal/domain/entities"
	"fiscalai/internal/infrastructure/nuvemfiscal"
	"fiscalai/internal/usecase/interfaces"
)

// IConnectionUseCase exposes the fiscal-provider connectivity check.
type IConnectionUseCase interface {
	CheckConnection(ctx context.Context, companyID string) (entities.FiscalIntegrationStatus, error)
	GetStatus(ctx context.Context, companyID string) (entities.FiscalIntegrationStatus, error)
}

type ConnectionUseCase struct {
	statusRepo  interfaces.IIntegrationStatusRepository
	companyRepo interfaces.ICompanyRepository
	gateway     interfaces.IFiscalGateway
}

var _ IConnectionUseCase = (*ConnectionUseCase)(nil)

func NewConnectionUseCase(
	statusRepo interfaces.IIntegrationStatusRepository,
	companyRepo interfaces.ICompanyRepository,
	gateway interfaces.IFiscalGateway,
) *ConnectionUseCase {
	return &ConnectionUseCase{
		statusRepo:  statusRepo,
		companyRepo: companyRepo,
		gateway:     gateway,
	}
}

// CheckConnection probes the fiscal provider and records the outcome for the
// company. A misconfigured integration (missing credentials) is reported to
// the caller without recording a check: no probe actually happened.
func (u *ConnectionUseCase) CheckConnection(ctx context.Context, companyID string) (entities.FiscalIntegrationStatus, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return entities.FiscalIntegrationStatus{}, ErrInvalidCompanyID
	}

	company, err := u.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return entities.FiscalIntegrationStatus{}, err
	}
	if company.ID == "" {
		return entities.FiscalIntegrationStatus{}, ErrCompanyNotFound
	}

	log.Printf("[connection][usecase] check start company_id=%s", companyID)

	st := entities.FiscalIntegrationStatus{
		CompanyID:         companyID,
		Status:            entities.ConnectionStatusConectado,
		Mensagem:          "Conexão estabelecida",
		UltimaVerificacao: time.Now().UTC(),
	}

	if err := u.gateway.HealthCheck(ctx); err != nil {
		kind := nuvemfiscal.KindOf(err)
		if kind == nuvemfiscal.KindConfiguration {
			log.Printf("[connection][usecase] check skipped company_id=%s err=%v", companyID, err)
			return entities.FiscalIntegrationStatus{}, err
		}
		st.Status = entities.ConnectionStatusFalha
		st.Mensagem = failureMessage(kind)
		log.Printf("[connection][usecase] check failed company_id=%s kind=%s", companyID, kind)
	}

	recorded, err := u.statusRepo.Upsert(ctx, st)
	if err != nil {
		return entities.FiscalIntegrationStatus{}, err
	}
	log.Printf("[connection][usecase] check recorded company_id=%s status=%s", companyID, recorded.Status)
	return recorded, nil
}

// GetStatus returns the last recorded check for the company, if any.
func (u *ConnectionUseCase) GetStatus(ctx context.Context, companyID string) (entities.FiscalIntegrationStatus, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return entities.FiscalIntegrationStatus{}, ErrInvalidCompanyID
	}
	return u.statusRepo.GetByCompanyID(ctx, companyID)
}

func failureMessage(kind nuvemfiscal.ErrorKind) string {
	switch kind {
	case nuvemfiscal.KindAuth:
		return "Erro de autenticação"
	case nuvemfiscal.KindTimeout:
		return "Tempo de conexão esgotado"
	default:
		return "Falha na conexão com a prefeitura"
	}
}
