package repository

import (
	"context"
	"fmt"
	"sort"

	"gardenroom-billing/internal/domain/entities"
	"gardenroom-billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "payment_history"
	paymentsQuoteIDIndex     = "quote_id-index"
)

type paymentHistoryItemRecord struct {
	ID                string `dynamodbav:"id"`
	QuoteID           string `dynamodbav:"quote_id"`
	PaymentType       string `dynamodbav:"payment_type"`
	Amount            string `dynamodbav:"amount"`
	InstallmentNumber *int   `dynamodbav:"installment_number,omitempty"`
	Note              string `dynamodbav:"note,omitempty"`
	RecordedBy        string `dynamodbav:"recorded_by,omitempty"`
	RecordedAt        string `dynamodbav:"recorded_at"`
}

// PaymentHistoryDynamoRepository persists ledger entries in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quote_id-index (PK: quote_id)
//
// The condition expression on insert makes entries write-once; there is no
// update or delete path by design.

type PaymentHistoryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentHistoryRepository = (*PaymentHistoryDynamoRepository)(nil)

func NewPaymentHistoryDynamoRepository(ddb *dynamodb.Client) *PaymentHistoryDynamoRepository {
	return &PaymentHistoryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_HISTORY_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentHistoryDynamoRepository) Create(ctx context.Context, p entities.PaymentHistoryItem) (entities.PaymentHistoryItem, error) {
	it := toPaymentRecord(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PaymentHistoryItem{}, err
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
		return entities.PaymentHistoryItem{}, fmt.Errorf("dynamodb put payment: %w", err)
	}
	return p, nil
}

func (r *PaymentHistoryDynamoRepository) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.PaymentHistoryItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsQuoteIDIndex),
		KeyConditionExpression: aws.String("quote_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quoteID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("dynamodb query payments: %w", err)
	}

	items := make([]entities.PaymentHistoryItem, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentHistoryItemRecord
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentRecord(it))
	}

	// The GSI has no sort key; order newest first here.
	sort.Slice(items, func(i, j int) bool {
		return items[i].RecordedAt.After(items[j].RecordedAt)
	})
	return items, nil
}

func toPaymentRecord(p entities.PaymentHistoryItem) paymentHistoryItemRecord {
	return paymentHistoryItemRecord{
		ID:                p.ID,
		QuoteID:           p.QuoteID,
		PaymentType:       string(p.PaymentType),
		Amount:            floatToString(p.Amount),
		InstallmentNumber: p.InstallmentNumber,
		Note:              p.Note,
		RecordedBy:        p.RecordedBy,
		RecordedAt:        formatTime(p.RecordedAt),
	}
}

func fromPaymentRecord(it paymentHistoryItemRecord) entities.PaymentHistoryItem {
	return entities.PaymentHistoryItem{
		ID:                it.ID,
		QuoteID:           it.QuoteID,
		PaymentType:       entities.PaymentType(it.PaymentType),
		Amount:            stringToFloat(it.Amount),
		InstallmentNumber: it.InstallmentNumber,
		Note:              it.Note,
		RecordedBy:        it.RecordedBy,
		RecordedAt:        parseTime(it.RecordedAt),
	}
}
