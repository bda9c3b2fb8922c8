package interfaces

import (
	"context"

	"fiscalai/internal/domain/entities"
)

// IIntegrationStatusRepository abstracts the per-company connectivity record.
//
// Upsert must be a single atomic write keyed by company id: concurrent checks
// for the same company may interleave but can never produce two rows.
type IIntegrationStatusRepository interface {
	Upsert(ctx context.Context, st entities.FiscalIntegrationStatus) (entities.FiscalIntegrationStatus, error)
	GetByCompanyID(ctx context.Context, companyID string) (entities.FiscalIntegrationStatus, error)
}
