package interfaces

import (
	"context"

	"fiscalai/internal/domain/entities"
)

// INotificationRepository abstracts the append-only notification feed.
type INotificationRepository interface {
	Create(ctx context.Context, n entities.Notification) (entities.Notification, error)
	ListRecent(ctx context.Context, limit int) ([]entities.Notification, error)
}
