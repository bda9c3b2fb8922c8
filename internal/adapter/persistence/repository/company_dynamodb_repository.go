package repository

import (
	"context"
	"errors"
	"time"

	"fiscalai/internal/domain/entities"
	"fiscalai/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCompaniesTableName = "companies"

type companyItem struct {
	ID                 string `dynamodbav:"id"`
	RazaoSocial        string `dynamodbav:"razao_social"`
	NomeFantasia       string `dynamodbav:"nome_fantasia,omitempty"`
	CNPJ               string `dynamodbav:"cnpj"`
	InscricaoMunicipal string `dynamodbav:"inscricao_municipal,omitempty"`
	InscricaoEstadual  string `dynamodbav:"inscricao_estadual,omitempty"`
	Logradouro         string `dynamodbav:"logradouro,omitempty"`
	Numero             string `dynamodbav:"numero,omitempty"`
	Complemento        string `dynamodbav:"complemento,omitempty"`
	Bairro             string `dynamodbav:"bairro,omitempty"`
	CodigoMunicipio    string `dynamodbav:"codigo_municipio,omitempty"`
	Municipio          string `dynamodbav:"municipio"`
	UF                 string `dynamodbav:"uf"`
	CEP                string `dynamodbav:"cep,omitempty"`
	Email              string `dynamodbav:"email"`
	Telefone           string `dynamodbav:"telefone"`
	CNAEPrincipal      string `dynamodbav:"cnae_principal,omitempty"`
	NuvemFiscalID      string `dynamodbav:"nuvem_fiscal_id,omitempty"`
	NuvemFiscalRegAt   string `dynamodbav:"nuvem_fiscal_registered_at,omitempty"`
	CreatedAt          string `dynamodbav:"created_at"`
}

// CompanyDynamoRepository persists Company entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type CompanyDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICompanyRepository = (*CompanyDynamoRepository)(nil)

func NewCompanyDynamoRepository(ddb *dynamodb.Client) *CompanyDynamoRepository {
	return &CompanyDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COMPANIES_TABLE", defaultCompaniesTableName),
	}
}

func (r *CompanyDynamoRepository) Create(ctx context.Context, c entities.Company) (entities.Company, error) {
	it := toCompanyItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Company{}, err
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
		return entities.Company{}, err
	}
	return c, nil
}

func (r *CompanyDynamoRepository) GetByID(ctx context.Context, id string) (entities.Company, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Company{}, err
	}
	if len(out.Item) == 0 {
		return entities.Company{}, nil
	}

	var it companyItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Company{}, err
	}
	return fromCompanyItem(it), nil
}

// SetNuvemFiscalID stamps the provider id once. The condition keeps the id
// immutable: a company that is already registered is returned unchanged with
// a zero-value result so the caller can detect the conflict.
func (r *CompanyDynamoRepository) SetNuvemFiscalID(ctx context.Context, id, nuvemFiscalID string, registeredAt time.Time) (entities.Company, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(#nfid)"),
		UpdateExpression:    aws.String("SET #nfid = :nfid, #regat = :regat"),
		ExpressionAttributeNames: map[string]string{
			"#id":    "id",
			"#nfid":  "nuvem_fiscal_id",
			"#regat": "nuvem_fiscal_registered_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":nfid":  &types.AttributeValueMemberS{Value: nuvemFiscalID},
			":regat": &types.AttributeValueMemberS{Value: formatTime(registeredAt)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Company{}, nil
		}
		return entities.Company{}, err
	}

	var it companyItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Company{}, err
	}
	return fromCompanyItem(it), nil
}

func toCompanyItem(c entities.Company) companyItem {
	regAt := ""
	if c.NuvemFiscalRegisteredAt != nil {
		regAt = formatTime(*c.NuvemFiscalRegisteredAt)
	}
	return companyItem{
		ID:                 c.ID,
		RazaoSocial:        c.RazaoSocial,
		NomeFantasia:       c.NomeFantasia,
		CNPJ:               c.CNPJ,
		InscricaoMunicipal: c.InscricaoMunicipal,
		InscricaoEstadual:  c.InscricaoEstadual,
		Logradouro:         c.Logradouro,
		Numero:             c.Numero,
		Complemento:        c.Complemento,
		Bairro:             c.Bairro,
		CodigoMunicipio:    c.CodigoMunicipio,
		Municipio:          c.Municipio,
		UF:                 c.UF,
		CEP:                c.CEP,
		Email:              c.Email,
		Telefone:           c.Telefone,
		CNAEPrincipal:      c.CNAEPrincipal,
		NuvemFiscalID:      c.NuvemFiscalID,
		NuvemFiscalRegAt:   regAt,
		CreatedAt:          formatTime(c.CreatedAt),
	}
}

func fromCompanyItem(it companyItem) entities.Company {
	var regAt *time.Time
	if it.NuvemFiscalRegAt != "" {
		t := parseTime(it.NuvemFiscalRegAt)
		regAt = &t
	}
	return entities.Company{
		ID:                      it.ID,
		RazaoSocial:             it.RazaoSocial,
		NomeFantasia:            it.NomeFantasia,
		CNPJ:                    it.CNPJ,
		InscricaoMunicipal:      it.InscricaoMunicipal,
		InscricaoEstadual:       it.InscricaoEstadual,
		Logradouro:              it.Logradouro,
		Numero:                  it.Numero,
		Complemento:             it.Complemento,
		Bairro:                  it.Bairro,
		CodigoMunicipio:         it.CodigoMunicipio,
		Municipio:               it.Municipio,
		UF:                      it.UF,
		CEP:                     it.CEP,
		Email:                   it.Email,
		Telefone:                it.Telefone,
		CNAEPrincipal:           it.CNAEPrincipal,
		NuvemFiscalID:           it.NuvemFiscalID,
		NuvemFiscalRegisteredAt: regAt,
		CreatedAt:               parseTime(it.CreatedAt),
	}
}
