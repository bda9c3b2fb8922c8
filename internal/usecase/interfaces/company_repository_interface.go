package interfaces

import (
	"context"
	"time"

	"fiscalai/internal/domain/entities"
)

// ICompanyRepository abstracts DynamoDB persistence for Company.
//
// SetNuvemFiscalID is conditional: it only writes when the company has no
// provider id yet, keeping the id immutable once registration succeeded.
type ICompanyRepository interface {
	Create(ctx context.Context, c entities.Company) (entities.Company, error)
	GetByID(ctx context.Context, id string) (entities.Company, error)
	SetNuvemFiscalID(ctx context.Context, id, nuvemFiscalID string, registeredAt time.Time) (entities.Company, error)
}
