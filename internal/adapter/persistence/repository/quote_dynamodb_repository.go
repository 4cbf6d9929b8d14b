package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"gardenroom-billing/internal/domain/entities"
	"gardenroom-billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "quotes"
	quotesNumberIndex      = "quote_number-index"
)

type quoteItem struct {
	ID              string `dynamodbav:"id"`
	QuoteNumber     string `dynamodbav:"quote_number"`
	CustomerName    string `dynamodbav:"customer_name"`
	CustomerEmail   string `dynamodbav:"customer_email"`
	CustomerPhone   string `dynamodbav:"customer_phone,omitempty"`
	CustomerAddress string `dynamodbav:"customer_address,omitempty"`

	// Configuration and breakdown are stored as JSON snapshots so the
	// document round-trips losslessly regardless of attribute depth.
	Configuration string `dynamodbav:"configuration"`
	Breakdown     string `dynamodbav:"breakdown"`

	PaymentStatus        string `dynamodbav:"payment_status"`
	TotalPaid            string `dynamodbav:"total_paid"`
	ExpectedInstallments *int   `dynamodbav:"expected_installments,omitempty"`
	LastPaymentAt        string `dynamodbav:"last_payment_at,omitempty"`

	ExpiresAt string `dynamodbav:"expires_at"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quote_number-index (PK: quote_number)

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	it, err := toQuoteItem(q)
	if err != nil {
		return entities.Quote{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, fmt.Errorf("dynamodb put quote: %w", err)
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, fmt.Errorf("dynamodb get quote: %w", err)
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it)
}

func (r *QuoteDynamoRepository) GetByQuoteNumber(ctx context.Context, number string) (entities.Quote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesNumberIndex),
		KeyConditionExpression: aws.String("quote_number = :n"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":n": &types.AttributeValueMemberS{Value: number},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Quote{}, fmt.Errorf("dynamodb query quote by number: %w", err)
	}
	if len(out.Items) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it)
}

// List scans the quotes table with an optional status filter and pages
// client-side. Quote volume is back-office scale; a scan stays well within
// a single page of results.
func (r *QuoteDynamoRepository) List(ctx context.Context, filter interfaces.QuoteFilter) ([]entities.Quote, error) {
	in := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	if filter.Status != "" {
		in.FilterExpression = aws.String("payment_status = :s")
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":s": &types.AttributeValueMemberS{Value: string(filter.Status)},
		}
	}

	var quotes []entities.Quote
	paginator := dynamodb.NewScanPaginator(r.ddb, in)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("dynamodb scan quotes: %w", err)
		}
		for _, raw := range page.Items {
			var it quoteItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			q, err := fromQuoteItem(it)
			if err != nil {
				return nil, err
			}
			quotes = append(quotes, q)
		}
	}

	sort.Slice(quotes, func(i, j int) bool {
		return quotes[i].CreatedAt.After(quotes[j].CreatedAt)
	})

	start := (filter.Page - 1) * filter.PageSize
	if start >= len(quotes) {
		return []entities.Quote{}, nil
	}
	end := start + filter.PageSize
	if end > len(quotes) {
		end = len(quotes)
	}
	return quotes[start:end], nil
}

func (r *QuoteDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.Quote, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #payment_status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#payment_status": "payment_status",
			"#updated_at":     "updated_at",
		}
		return expr, vals, names
	})
}

func (r *QuoteDynamoRepository) UpdatePaymentSummary(ctx context.Context, id string, summary interfaces.PaymentSummary) (entities.Quote, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #total_paid = :total_paid, #payment_status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":total_paid": &types.AttributeValueMemberS{Value: floatToString(summary.TotalPaid)},
			":status":     &types.AttributeValueMemberS{Value: string(summary.Status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#total_paid":     "total_paid",
			"#payment_status": "payment_status",
			"#updated_at":     "updated_at",
		}
		if !summary.LastPaymentAt.IsZero() {
			expr += ", #last_payment_at = :last_payment_at"
			vals[":last_payment_at"] = &types.AttributeValueMemberS{Value: formatTime(summary.LastPaymentAt)}
			names["#last_payment_at"] = "last_payment_at"
		}
		return expr, vals, names
	})
}

func (r *QuoteDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Quote, error) {
	now := formatTime(time.Now())
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, fmt.Errorf("dynamodb update quote: %w", err)
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}
	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it)
}

func toQuoteItem(q entities.Quote) (quoteItem, error) {
	cfg, err := json.Marshal(q.Configuration)
	if err != nil {
		return quoteItem{}, err
	}
	bd, err := json.Marshal(q.Breakdown)
	if err != nil {
		return quoteItem{}, err
	}

	it := quoteItem{
		ID:                   q.ID,
		QuoteNumber:          q.QuoteNumber,
		CustomerName:         q.Customer.Name,
		CustomerEmail:        q.Customer.Email,
		CustomerPhone:        q.Customer.Phone,
		CustomerAddress:      q.Customer.Address,
		Configuration:        string(cfg),
		Breakdown:            string(bd),
		PaymentStatus:        string(q.PaymentStatus),
		TotalPaid:            floatToString(q.TotalPaid),
		ExpectedInstallments: q.ExpectedInstallments,
		ExpiresAt:            formatTime(q.ExpiresAt),
		CreatedAt:            formatTime(q.CreatedAt),
		UpdatedAt:            formatTime(q.UpdatedAt),
	}
	if q.LastPaymentAt != nil {
		it.LastPaymentAt = formatTime(*q.LastPaymentAt)
	}
	return it, nil
}

func fromQuoteItem(it quoteItem) (entities.Quote, error) {
	var cfg entities.BuildingConfiguration
	if err := json.Unmarshal([]byte(it.Configuration), &cfg); err != nil {
		return entities.Quote{}, fmt.Errorf("unmarshal quote configuration: %w", err)
	}
	var bd entities.PriceBreakdown
	if err := json.Unmarshal([]byte(it.Breakdown), &bd); err != nil {
		return entities.Quote{}, fmt.Errorf("unmarshal quote breakdown: %w", err)
	}

	q := entities.Quote{
		ID:          it.ID,
		QuoteNumber: it.QuoteNumber,
		Customer: entities.CustomerContact{
			Name:    it.CustomerName,
			Email:   it.CustomerEmail,
			Phone:   it.CustomerPhone,
			Address: it.CustomerAddress,
		},
		Configuration:        cfg,
		Breakdown:            bd,
		PaymentStatus:        entities.PaymentStatus(it.PaymentStatus),
		TotalPaid:            stringToFloat(it.TotalPaid),
		ExpectedInstallments: it.ExpectedInstallments,
		ExpiresAt:            parseTime(it.ExpiresAt),
		CreatedAt:            parseTime(it.CreatedAt),
		UpdatedAt:            parseTime(it.UpdatedAt),
	}
	if it.LastPaymentAt != "" {
		t := parseTime(it.LastPaymentAt)
		q.LastPaymentAt = &t
	}
	return q, nil
}
