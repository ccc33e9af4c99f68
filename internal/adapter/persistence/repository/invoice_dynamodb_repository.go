package repository

import (
	"context"
	"time"

	"github.com/925PRESSUREGLASS/webapp-sub000/internal/domain/entities"
	"github.com/925PRESSUREGLASS/webapp-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultInvoicesTableName = "invoices"

type paymentItem struct {
	ID        string  `dynamodbav:"id"`
	Amount    float64 `dynamodbav:"amount"`
	Method    string  `dynamodbav:"method"`
	Reference string  `dynamodbav:"reference,omitempty"`
	Date      string  `dynamodbav:"date"`
}

type statusEntryItem struct {
	Status    string `dynamodbav:"status"`
	Note      string `dynamodbav:"note"`
	Timestamp string `dynamodbav:"timestamp"`
}

type invoiceLineItem struct {
	ID          string  `dynamodbav:"id"`
	Kind        string  `dynamodbav:"kind"`
	Description string  `dynamodbav:"description"`
	Amount      float64 `dynamodbav:"amount"`
	Minutes     float64 `dynamodbav:"minutes"`
}

type invoiceItem struct {
	ID             string            `dynamodbav:"id"`
	InvoiceNumber  string            `dynamodbav:"invoice_number"`
	QuoteID        string            `dynamodbav:"quote_id"`
	ClientName     string            `dynamodbav:"client_name"`
	ClientLocation string            `dynamodbav:"client_location"`
	Lines          []invoiceLineItem `dynamodbav:"lines,omitempty"`
	Subtotal       float64           `dynamodbav:"subtotal"`
	GST            float64           `dynamodbav:"gst"`
	Total          float64           `dynamodbav:"total"`
	AmountPaid     float64           `dynamodbav:"amount_paid"`
	Balance        float64           `dynamodbav:"balance"`
	Status         string            `dynamodbav:"status"`
	Payments       []paymentItem     `dynamodbav:"payments,omitempty"`
	StatusHistory  []statusEntryItem `dynamodbav:"status_history,omitempty"`
	InvoiceDate    string            `dynamodbav:"invoice_date"`
	DueDate        string            `dynamodbav:"due_date"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Payments and status history are embedded in the invoice document; updates
// rewrite the whole item under an attribute_exists condition.
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

func (r *InvoiceDynamoRepository) Update(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	it := toInvoiceItem(inv)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Invoice{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Invoice{}, nil
		}
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) List(ctx context.Context) ([]entities.Invoice, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	invoices := make([]entities.Invoice, 0, len(out.Items))
	for _, raw := range out.Items {
		var it invoiceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		invoices = append(invoices, fromInvoiceItem(it))
	}
	return invoices, nil
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	lines := make([]invoiceLineItem, 0, len(inv.Lines))
	for _, l := range inv.Lines {
		lines = append(lines, invoiceLineItem{
			ID:          l.ID,
			Kind:        l.Kind,
			Description: l.Description,
			Amount:      l.Amount,
			Minutes:     l.Minutes,
		})
	}

	payments := make([]paymentItem, 0, len(inv.Payments))
	for _, p := range inv.Payments {
		payments = append(payments, paymentItem{
			ID:        p.ID,
			Amount:    p.Amount,
			Method:    p.Method,
			Reference: p.Reference,
			Date:      p.Date.UTC().Format(time.RFC3339Nano),
		})
	}

	history := make([]statusEntryItem, 0, len(inv.StatusHistory))
	for _, h := range inv.StatusHistory {
		history = append(history, statusEntryItem{
			Status:    string(h.Status),
			Note:      h.Note,
			Timestamp: h.Timestamp.UTC().Format(time.RFC3339Nano),
		})
	}

	return invoiceItem{
		ID:             inv.ID,
		InvoiceNumber:  inv.InvoiceNumber,
		QuoteID:        inv.QuoteID,
		ClientName:     inv.ClientName,
		ClientLocation: inv.ClientLocation,
		Lines:          lines,
		Subtotal:       inv.Subtotal,
		GST:            inv.GST,
		Total:          inv.Total,
		AmountPaid:     inv.AmountPaid,
		Balance:        inv.Balance,
		Status:         string(inv.Status),
		Payments:       payments,
		StatusHistory:  history,
		InvoiceDate:    inv.InvoiceDate.UTC().Format(time.RFC3339Nano),
		DueDate:        inv.DueDate.UTC().Format(time.RFC3339Nano),
	}
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	invoiceDate, _ := time.Parse(time.RFC3339Nano, it.InvoiceDate)
	dueDate, _ := time.Parse(time.RFC3339Nano, it.DueDate)

	lines := make([]entities.InvoiceLine, 0, len(it.Lines))
	for _, l := range it.Lines {
		lines = append(lines, entities.InvoiceLine{
			ID:          l.ID,
			Kind:        l.Kind,
			Description: l.Description,
			Amount:      l.Amount,
			Minutes:     l.Minutes,
		})
	}

	payments := make([]entities.Payment, 0, len(it.Payments))
	for _, p := range it.Payments {
		dt, _ := time.Parse(time.RFC3339Nano, p.Date)
		payments = append(payments, entities.Payment{
			ID:        p.ID,
			Amount:    p.Amount,
			Method:    p.Method,
			Reference: p.Reference,
			Date:      dt,
		})
	}

	history := make([]entities.StatusEntry, 0, len(it.StatusHistory))
	for _, h := range it.StatusHistory {
		ts, _ := time.Parse(time.RFC3339Nano, h.Timestamp)
		history = append(history, entities.StatusEntry{
			Status:    entities.InvoiceStatus(h.Status),
			Note:      h.Note,
			Timestamp: ts,
		})
	}

	return entities.Invoice{
		ID:             it.ID,
		InvoiceNumber:  it.InvoiceNumber,
		QuoteID:        it.QuoteID,
		ClientName:     it.ClientName,
		ClientLocation: it.ClientLocation,
		Lines:          lines,
		Subtotal:       it.Subtotal,
		GST:            it.GST,
		Total:          it.Total,
		AmountPaid:     it.AmountPaid,
		Balance:        it.Balance,
		Status:         entities.InvoiceStatus(it.Status),
		Payments:       payments,
		StatusHistory:  history,
		InvoiceDate:    invoiceDate,
		DueDate:        dueDate,
	}
}
