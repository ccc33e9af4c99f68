package repository

import (
	"context"
	"strconv"

	"github.com/925PRESSUREGLASS/webapp-sub000/internal/domain/entities"
	"github.com/925PRESSUREGLASS/webapp-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSettingsTableName = "settings"
	numberingSettingsKey     = "invoice-numbering"
)

type numberingItem struct {
	ID                string `dynamodbav:"id"`
	InvoicePrefix     string `dynamodbav:"invoice_prefix"`
	NextInvoiceNumber int64  `dynamodbav:"next_invoice_number"`
	PaymentTermsDays  int    `dynamodbav:"payment_terms_days"`
}

// NumberingDynamoRepository persists the invoice numbering settings as a
// single item.
//
// Table requirements:
//   - PK: id (string)
//
// Next allocates via an atomic ADD so concurrent invoice creation never hands
// out the same number twice. Update carries a condition expression that keeps
// the counter monotonic even under racing writers.
type NumberingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.INumberingRepository = (*NumberingDynamoRepository)(nil)

func NewNumberingDynamoRepository(ddb *dynamodb.Client) *NumberingDynamoRepository {
	return &NumberingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SETTINGS_TABLE", defaultSettingsTableName),
	}
}

func (r *NumberingDynamoRepository) Next(ctx context.Context) (entities.NumberingSettings, error) {
	if err := r.ensureSeeded(ctx); err != nil {
		return entities.NumberingSettings{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: numberingSettingsKey},
		},
		UpdateExpression: aws.String("ADD #n :one"),
		ExpressionAttributeNames: map[string]string{
			"#n": "next_invoice_number",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return entities.NumberingSettings{}, err
	}

	var it numberingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.NumberingSettings{}, err
	}
	return fromNumberingItem(it), nil
}

func (r *NumberingDynamoRepository) Get(ctx context.Context) (entities.NumberingSettings, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: numberingSettingsKey},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.NumberingSettings{}, err
	}
	if len(out.Item) == 0 {
		return entities.DefaultNumberingSettings(), nil
	}

	var it numberingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.NumberingSettings{}, err
	}
	return fromNumberingItem(it), nil
}

func (r *NumberingDynamoRepository) Update(ctx context.Context, s entities.NumberingSettings) (entities.NumberingSettings, error) {
	if err := r.ensureSeeded(ctx); err != nil {
		return entities.NumberingSettings{}, err
	}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: numberingSettingsKey},
		},
		UpdateExpression:    aws.String("SET #prefix = :prefix, #n = :n, #terms = :terms"),
		ConditionExpression: aws.String("#n <= :n"),
		ExpressionAttributeNames: map[string]string{
			"#prefix": "invoice_prefix",
			"#n":      "next_invoice_number",
			"#terms":  "payment_terms_days",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":prefix": &types.AttributeValueMemberS{Value: s.InvoicePrefix},
			":n":      &types.AttributeValueMemberN{Value: strconv.FormatInt(s.NextInvoiceNumber, 10)},
			":terms":  &types.AttributeValueMemberN{Value: strconv.Itoa(s.PaymentTermsDays)},
		},
	})
	if err != nil {
		return entities.NumberingSettings{}, err
	}
	return s, nil
}

// ensureSeeded writes the default settings item if none exists yet. A lost
// race against another seeder is fine.
func (r *NumberingDynamoRepository) ensureSeeded(ctx context.Context) error {
	defaults := entities.DefaultNumberingSettings()
	av, err := attributevalue.MarshalMap(numberingItem{
		ID:                numberingSettingsKey,
		InvoicePrefix:     defaults.InvoicePrefix,
		NextInvoiceNumber: defaults.NextInvoiceNumber,
		PaymentTermsDays:  defaults.PaymentTermsDays,
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil && !isConditionalCheckFailed(err) {
		return err
	}
	return nil
}

func fromNumberingItem(it numberingItem) entities.NumberingSettings {
	return entities.NumberingSettings{
		InvoicePrefix:     it.InvoicePrefix,
		NextInvoiceNumber: it.NextInvoiceNumber,
		PaymentTermsDays:  it.PaymentTermsDays,
	}
}
