package repository

import (
	"context"
	"time"

	"translation_backoffice/internal/domain/entities"
	"translation_backoffice/internal/usecase/interfaces"
)

type paymentItem struct {
	ID                 string         `dynamodbav:"id"`
	QuoteID            string         `dynamodbav:"quote_id"`
	Amount             string         `dynamodbav:"amount"`
	Date               string         `dynamodbav:"date"`
	Status             string         `dynamodbav:"status"`
	ProviderPayload    map[string]any `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string         `dynamodbav:"provider_payload_raw,omitempty"`
}

// PaymentDynamoRepository persists checkout payments in DynamoDB.
//
// Table requirements:
//   - PK: quote_id (string)
//   - SK: id (string)
type PaymentDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb DynamoDBAPI, tableName string) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	if err := putItem(ctx, r.ddb, r.tableName, toPaymentItem(p), "attribute_not_exists(#id)"); err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, quoteID, id string) (entities.Payment, error) {
	var it paymentItem
	found, err := getItem(ctx, r.ddb, r.tableName, childKey(quoteID, id), &it)
	if err != nil || !found {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.Payment, error) {
	raw, err := queryByQuoteID[paymentItem](ctx, r.ddb, r.tableName, quoteID)
	if err != nil {
		return nil, err
	}
	payments := make([]entities.Payment, 0, len(raw))
	for _, it := range raw {
		payments = append(payments, fromPaymentItem(it))
	}
	sortByCreatedAt(payments, func(p entities.Payment) time.Time { return p.Date })
	return payments, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:                 p.ID,
		QuoteID:            p.QuoteID,
		Amount:             floatToString(p.Amount),
		Date:               formatTime(p.Date),
		Status:             string(p.Status),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	return entities.Payment{
		ID:                 it.ID,
		QuoteID:            it.QuoteID,
		Amount:             parseFloat(it.Amount),
		Date:               parseTime(it.Date),
		Status:             entities.PaymentStatus(it.Status),
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: []byte(it.ProviderPayloadRaw),
	}
}
