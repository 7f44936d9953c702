package repository

import (
	"context"
	"time"

	"translation_backoffice/internal/domain/entities"
	"translation_backoffice/internal/usecase/interfaces"
)

type adjustmentItem struct {
	ID          string `dynamodbav:"id"`
	QuoteID     string `dynamodbav:"quote_id"`
	Type        string `dynamodbav:"type"`
	Kind        string `dynamodbav:"kind,omitempty"`
	Description string `dynamodbav:"description"`
	Quantity    string `dynamodbav:"quantity"`
	UnitAmount  string `dynamodbav:"unit_amount"`
	Value       string `dynamodbav:"value"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// AdjustmentDynamoRepository persists quote adjustments in DynamoDB.
//
// Table requirements:
//   - PK: quote_id (string)
//   - SK: id (string)
type AdjustmentDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IAdjustmentRepository = (*AdjustmentDynamoRepository)(nil)

func NewAdjustmentDynamoRepository(ddb DynamoDBAPI, tableName string) *AdjustmentDynamoRepository {
	return &AdjustmentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *AdjustmentDynamoRepository) Create(ctx context.Context, a entities.Adjustment) (entities.Adjustment, error) {
	if err := putItem(ctx, r.ddb, r.tableName, toAdjustmentItem(a), "attribute_not_exists(#id)"); err != nil {
		return entities.Adjustment{}, err
	}
	return a, nil
}

func (r *AdjustmentDynamoRepository) GetByID(ctx context.Context, quoteID, id string) (entities.Adjustment, error) {
	var it adjustmentItem
	found, err := getItem(ctx, r.ddb, r.tableName, childKey(quoteID, id), &it)
	if err != nil || !found {
		return entities.Adjustment{}, err
	}
	return fromAdjustmentItem(it), nil
}

func (r *AdjustmentDynamoRepository) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.Adjustment, error) {
	raw, err := queryByQuoteID[adjustmentItem](ctx, r.ddb, r.tableName, quoteID)
	if err != nil {
		return nil, err
	}
	adjs := make([]entities.Adjustment, 0, len(raw))
	for _, it := range raw {
		adjs = append(adjs, fromAdjustmentItem(it))
	}
	sortByCreatedAt(adjs, func(a entities.Adjustment) time.Time { return a.CreatedAt })
	return adjs, nil
}

func (r *AdjustmentDynamoRepository) Update(ctx context.Context, a entities.Adjustment) (entities.Adjustment, error) {
	if err := putItem(ctx, r.ddb, r.tableName, toAdjustmentItem(a), "attribute_exists(#id)"); err != nil {
		if isConditionFailed(err) {
			return entities.Adjustment{}, nil
		}
		return entities.Adjustment{}, err
	}
	return a, nil
}

func (r *AdjustmentDynamoRepository) Delete(ctx context.Context, quoteID, id string) error {
	return deleteItem(ctx, r.ddb, r.tableName, childKey(quoteID, id))
}

func toAdjustmentItem(a entities.Adjustment) adjustmentItem {
	return adjustmentItem{
		ID:          a.ID,
		QuoteID:     a.QuoteID,
		Type:        string(a.Type),
		Kind:        string(a.Kind),
		Description: a.Description,
		Quantity:    floatToString(a.Quantity),
		UnitAmount:  floatToString(a.UnitAmount),
		Value:       floatToString(a.Value),
		CreatedAt:   formatTime(a.CreatedAt),
		UpdatedAt:   formatTime(a.UpdatedAt),
	}
}

func fromAdjustmentItem(it adjustmentItem) entities.Adjustment {
	return entities.Adjustment{
		ID:          it.ID,
		QuoteID:     it.QuoteID,
		Type:        entities.AdjustmentType(it.Type),
		Kind:        entities.AdjustmentKind(it.Kind),
		Description: it.Description,
		Quantity:    parseFloat(it.Quantity),
		UnitAmount:  parseFloat(it.UnitAmount),
		Value:       parseFloat(it.Value),
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
