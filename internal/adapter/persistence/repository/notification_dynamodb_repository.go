package repository

import (
	"context"
	"sort"

	"fiscalai/internal/domain/entities"
	"fiscalai/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultNotificationsTableName = "notifications"

type notificationItem struct {
	ID        string `dynamodbav:"id"`
	Titulo    string `dynamodbav:"titulo"`
	Mensagem  string `dynamodbav:"mensagem"`
	Tipo      string `dynamodbav:"tipo"`
	InvoiceID string `dynamodbav:"invoice_id,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

// NotificationDynamoRepository persists the append-only notification feed.
//
// Table requirements:
//   - PK: id (string)
type NotificationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.INotificationRepository = (*NotificationDynamoRepository)(nil)

func NewNotificationDynamoRepository(ddb *dynamodb.Client) *NotificationDynamoRepository {
	return &NotificationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("NOTIFICATIONS_TABLE", defaultNotificationsTableName),
	}
}

func (r *NotificationDynamoRepository) Create(ctx context.Context, n entities.Notification) (entities.Notification, error) {
	it := notificationItem{
		ID:        n.ID,
		Titulo:    n.Titulo,
		Mensagem:  n.Mensagem,
		Tipo:      string(n.Tipo),
		InvoiceID: n.InvoiceID,
		CreatedAt: formatTime(n.CreatedAt),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Notification{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Notification{}, err
	}
	return n, nil
}

func (r *NotificationDynamoRepository) ListRecent(ctx context.Context, limit int) ([]entities.Notification, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Notification, 0, len(out.Items))
	for _, raw := range out.Items {
		var it notificationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, entities.Notification{
			ID:        it.ID,
			Titulo:    it.Titulo,
			Mensagem:  it.Mensagem,
			Tipo:      entities.NotificationType(it.Tipo),
			InvoiceID: it.InvoiceID,
			CreatedAt: parseTime(it.CreatedAt),
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}
