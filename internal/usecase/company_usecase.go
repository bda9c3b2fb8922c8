package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"fiscalai/internal/domain/entities"
	"fiscalai/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// ICompanyUseCase exposes company management and the fiscal-provider
// registration flow.
type ICompanyUseCase interface {
	Create(ctx context.Context, c entities.Company) (entities.Company, error)
	GetByID(ctx context.Context, id string) (entities.Company, error)
	RegisterFiscal(ctx context.Context, companyID string) (entities.Company, error)
}

type CompanyUseCase struct {
	repo    interfaces.ICompanyRepository
	gateway interfaces.IFiscalGateway
}

var _ ICompanyUseCase = (*CompanyUseCase)(nil)

func NewCompanyUseCase(repo interfaces.ICompanyRepository, gateway interfaces.IFiscalGateway) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, gateway: gateway}
}

func (u *CompanyUseCase) Create(ctx context.Context, c entities.Company) (entities.Company, error) {
	if err := validateCompanyFields(c, false); err != nil {
		return entities.Company{}, err
	}

	c.ID = uuid.NewString()
	c.NuvemFiscalID = ""
	c.NuvemFiscalRegisteredAt = nil
	c.CreatedAt = time.Now().UTC()
	return u.repo.Create(ctx, c)
}

func (u *CompanyUseCase) GetByID(ctx context.Context, id string) (entities.Company, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Company{}, ErrInvalidCompanyID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Company{}, err
	}
	if c.ID == "" {
		return entities.Company{}, ErrCompanyNotFound
	}
	return c, nil
}

// RegisterFiscal registers the company at the fiscal provider and persists
// the returned provider id. Field validation happens before any network
// call; a company that already holds a provider id is never re-registered.
func (u *CompanyUseCase) RegisterFiscal(ctx context.Context, companyID string) (entities.Company, error) {
	log.Printf("[company][usecase] fiscal registration start company_id=%s", companyID)

	company, err := u.GetByID(ctx, companyID)
	if err != nil {
		return entities.Company{}, err
	}
	if company.Registered() {
		log.Printf("[company][usecase] already registered company_id=%s", companyID)
		return entities.Company{}, ErrCompanyAlreadyRegistered
	}
	if err := validateCompanyFields(company, true); err != nil {
		return entities.Company{}, err
	}

	providerID, err := u.gateway.RegisterCompany(ctx, company)
	if err != nil {
		log.Printf("[company][usecase] provider registration failed company_id=%s err=%v", companyID, err)
		return entities.Company{}, err
	}

	updated, err := u.repo.SetNuvemFiscalID(ctx, company.ID, providerID, time.Now().UTC())
	if err != nil {
		return entities.Company{}, err
	}
	if updated.ID == "" {
		// A concurrent registration won the conditional write.
		return entities.Company{}, ErrCompanyAlreadyRegistered
	}
	log.Printf("[company][usecase] fiscal registration success company_id=%s nuvem_fiscal_id=%s", companyID, providerID)
	return updated, nil
}

// validateCompanyFields checks the fields required to store a company and,
// for registration, the additional ones the provider demands.
func validateCompanyFields(c entities.Company, forRegistration bool) error {
	required := []struct {
		value, field, label string
	}{
		{c.RazaoSocial, "razao_social", "Razão social"},
		{c.CNPJ, "cnpj", "CNPJ"},
		{c.Municipio, "municipio", "Município"},
		{c.UF, "uf", "UF"},
		{c.Email, "email", "Email"},
		{c.Telefone, "telefone", "Telefone"},
	}
	if forRegistration {
		required = append(required, struct{ value, field, label string }{
			c.InscricaoMunicipal, "inscricao_municipal", "Inscrição municipal",
		})
	}

	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return missingField(f.field, f.label)
		}
	}
	return nil
}
