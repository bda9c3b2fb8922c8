package usecase

import (
	"context"

	"fiscalai/internal/domain/entities"
	"fiscalai/internal/usecase/interfaces"
)

const defaultNotificationLimit = 20

// INotificationUseCase exposes the read side of the notification feed.
type INotificationUseCase interface {
	ListRecent(ctx context.Context, limit int) ([]entities.Notification, error)
}

type NotificationUseCase struct {
	repo interfaces.INotificationRepository
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(repo interfaces.INotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

func (u *NotificationUseCase) ListRecent(ctx context.Context, limit int) ([]entities.Notification, error) {
	if limit <= 0 {
		limit = defaultNotificationLimit
	}
	return u.repo.ListRecent(ctx, limit)
}
