package repository

import (
	"context"

	"fiscalai/internal/domain/entities"
	"fiscalai/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultIntegrationStatusTableName = "fiscal_integration_status"

type integrationStatusItem struct {
	CompanyID         string `dynamodbav:"company_id"`
	Status            string `dynamodbav:"status"`
	Mensagem          string `dynamodbav:"mensagem"`
	UltimaVerificacao string `dynamodbav:"ultima_verificacao"`
}

// IntegrationStatusDynamoRepository persists the per-company connectivity
// record.
//
// Table requirements:
//   - PK: company_id (string)
//
// Using company_id as the primary key makes the one-row-per-company invariant
// structural, and UpdateItem gives upsert semantics in a single atomic write,
// so concurrent checks can never produce duplicate rows.
type IntegrationStatusDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IIntegrationStatusRepository = (*IntegrationStatusDynamoRepository)(nil)

func NewIntegrationStatusDynamoRepository(ddb *dynamodb.Client) *IntegrationStatusDynamoRepository {
	return &IntegrationStatusDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FISCAL_INTEGRATION_STATUS_TABLE", defaultIntegrationStatusTableName),
	}
}

func (r *IntegrationStatusDynamoRepository) Upsert(ctx context.Context, st entities.FiscalIntegrationStatus) (entities.FiscalIntegrationStatus, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"company_id": &types.AttributeValueMemberS{Value: st.CompanyID},
		},
		UpdateExpression: aws.String("SET #status = :status, #mensagem = :mensagem, #ultima_verificacao = :ultima_verificacao"),
		ExpressionAttributeNames: map[string]string{
			"#status":             "status",
			"#mensagem":           "mensagem",
			"#ultima_verificacao": "ultima_verificacao",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":             &types.AttributeValueMemberS{Value: string(st.Status)},
			":mensagem":           &types.AttributeValueMemberS{Value: st.Mensagem},
			":ultima_verificacao": &types.AttributeValueMemberS{Value: formatTime(st.UltimaVerificacao)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.FiscalIntegrationStatus{}, err
	}

	var it integrationStatusItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.FiscalIntegrationStatus{}, err
	}
	return fromIntegrationStatusItem(it), nil
}

func (r *IntegrationStatusDynamoRepository) GetByCompanyID(ctx context.Context, companyID string) (entities.FiscalIntegrationStatus, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"company_id": &types.AttributeValueMemberS{Value: companyID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.FiscalIntegrationStatus{}, err
	}
	if len(out.Item) == 0 {
		return entities.FiscalIntegrationStatus{}, nil
	}

	var it integrationStatusItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.FiscalIntegrationStatus{}, err
	}
	return fromIntegrationStatusItem(it), nil
}

func fromIntegrationStatusItem(it integrationStatusItem) entities.FiscalIntegrationStatus {
	return entities.FiscalIntegrationStatus{
		CompanyID:         it.CompanyID,
		Status:            entities.ConnectionStatus(it.Status),
		Mensagem:          it.Mensagem,
		UltimaVerificacao: parseTime(it.UltimaVerificacao),
	}
}
