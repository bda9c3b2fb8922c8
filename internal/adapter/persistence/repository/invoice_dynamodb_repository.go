package repository

import (
	"context"
	"errors"
	"sort"

	"fiscalai/internal/domain/entities"
	"fiscalai/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultInvoicesTableName = "invoices"
	invoicesNumeroIndex      = "numero-index"
	defaultListLimit         = 50
)

type invoiceItem struct {
	ID                string `dynamodbav:"id"`
	CompanyID         string `dynamodbav:"company_id"`
	Numero            string `dynamodbav:"numero,omitempty"`
	CodigoVerificacao string `dynamodbav:"codigo_verificacao,omitempty"`
	ClienteNome       string `dynamodbav:"cliente_nome"`
	ClienteDocumento  string `dynamodbav:"cliente_documento"`
	DescricaoServico  string `dynamodbav:"descricao_servico"`
	Valor             string `dynamodbav:"valor"`
	AliquotaISS       string `dynamodbav:"aliquota_iss"`
	ValorISS          string `dynamodbav:"valor_iss"`
	ValorLiquido      string `dynamodbav:"valor_liquido"`
	Status            string `dynamodbav:"status"`
	DataEmissao       string `dynamodbav:"data_emissao,omitempty"`
	PDFURL            string `dynamodbav:"pdf_url,omitempty"`
	XMLURL            string `dynamodbav:"xml_url,omitempty"`
	MotivoRejeicao    string `dynamodbav:"motivo_rejeicao,omitempty"`
	Municipio         string `dynamodbav:"municipio"`
	CreatedAt         string `dynamodbav:"created_at"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: numero-index (PK: numero)
type InvoiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
	}
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	it := toInvoiceItem(inv)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Invoice{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) GetByNumero(ctx context.Context, numero string) (entities.Invoice, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(invoicesNumeroIndex),
		KeyConditionExpression: aws.String("numero = :numero"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":numero": &types.AttributeValueMemberS{Value: numero},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Items) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

// UpdateFiscalData applies the outcome of a provider status poll. Only
// non-empty fields are written; status is always written.
func (r *InvoiceDynamoRepository) UpdateFiscalData(ctx context.Context, id string, upd interfaces.InvoiceFiscalUpdate) (entities.Invoice, error) {
	expr := "SET #status = :status"
	names := map[string]string{"#status": "status"}
	values := map[string]types.AttributeValue{
		":status": &types.AttributeValueMemberS{Value: string(upd.Status)},
	}

	optional := []struct {
		attr, value string
	}{
		{"numero", upd.Numero},
		{"codigo_verificacao", upd.CodigoVerificacao},
		{"pdf_url", upd.PDFURL},
		{"xml_url", upd.XMLURL},
		{"motivo_rejeicao", upd.MotivoRejeicao},
	}
	for _, f := range optional {
		if f.value == "" {
			continue
		}
		expr += ", #" + f.attr + " = :" + f.attr
		names["#"+f.attr] = f.attr
		values[":"+f.attr] = &types.AttributeValueMemberS{Value: f.value}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Invoice{}, nil
		}
		return entities.Invoice{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

// List scans with an optional company/status filter and pages in memory,
// newest first. total counts every match before limit/offset are applied.
func (r *InvoiceDynamoRepository) List(ctx context.Context, filter interfaces.InvoiceFilter) ([]entities.Invoice, int, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}

	filterExpr := ""
	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	if filter.CompanyID != "" {
		filterExpr = "#company_id = :company_id"
		names["#company_id"] = "company_id"
		values[":company_id"] = &types.AttributeValueMemberS{Value: filter.CompanyID}
	}
	if filter.Status != "" {
		if filterExpr != "" {
			filterExpr += " AND "
		}
		filterExpr += "#status = :status"
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(filter.Status)}
	}
	if filterExpr != "" {
		input.FilterExpression = aws.String(filterExpr)
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = values
	}

	var all []entities.Invoice
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, 0, err
		}
		for _, raw := range page.Items {
			var it invoiceItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, 0, err
			}
			all = append(all, fromInvoiceItem(it))
		}
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	total := len(all)
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	offset := filter.Offset
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	return invoiceItem{
		ID:                inv.ID,
		CompanyID:         inv.CompanyID,
		Numero:            inv.Numero,
		CodigoVerificacao: inv.CodigoVerificacao,
		ClienteNome:       inv.ClienteNome,
		ClienteDocumento:  inv.ClienteDocumento,
		DescricaoServico:  inv.DescricaoServico,
		Valor:             decimalToString(inv.Valor),
		AliquotaISS:       decimalToString(inv.AliquotaISS),
		ValorISS:          decimalToString(inv.ValorISS),
		ValorLiquido:      decimalToString(inv.ValorLiquido),
		Status:            string(inv.Status),
		DataEmissao:       inv.DataEmissao,
		PDFURL:            inv.PDFURL,
		XMLURL:            inv.XMLURL,
		MotivoRejeicao:    inv.MotivoRejeicao,
		Municipio:         inv.Municipio,
		CreatedAt:         formatTime(inv.CreatedAt),
	}
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	return entities.Invoice{
		ID:                it.ID,
		CompanyID:         it.CompanyID,
		Numero:            it.Numero,
		CodigoVerificacao: it.CodigoVerificacao,
		ClienteNome:       it.ClienteNome,
		ClienteDocumento:  it.ClienteDocumento,
		DescricaoServico:  it.DescricaoServico,
		Valor:             decimalFromString(it.Valor),
		AliquotaISS:       decimalFromString(it.AliquotaISS),
		ValorISS:          decimalFromString(it.ValorISS),
		ValorLiquido:      decimalFromString(it.ValorLiquido),
		Status:            entities.InvoiceStatus(it.Status),
		DataEmissao:       it.DataEmissao,
		PDFURL:            it.PDFURL,
		XMLURL:            it.XMLURL,
		MotivoRejeicao:    it.MotivoRejeicao,
		Municipio:         it.Municipio,
		CreatedAt:         parseTime(it.CreatedAt),
	}
}
