package repository

import (
	"context"
	"time"

	"translation_backoffice/internal/domain/entities"
	"translation_backoffice/internal/usecase/interfaces"
)

type lineItemItem struct {
	ID                  string  `dynamodbav:"id"`
	QuoteID             string  `dynamodbav:"quote_id"`
	FileID              string  `dynamodbav:"file_id,omitempty"`
	DocumentName        string  `dynamodbav:"document_name"`
	RunID               string  `dynamodbav:"run_id,omitempty"`
	Source              string  `dynamodbav:"source"`
	BillablePages       string  `dynamodbav:"billable_pages"`
	BaseRate            string  `dynamodbav:"base_rate"`
	OverrideRate        *string `dynamodbav:"override_rate,omitempty"`
	OverrideReason      string  `dynamodbav:"override_reason,omitempty"`
	CertificationAmount string  `dynamodbav:"certification_amount"`
	CreatedAt           string  `dynamodbav:"created_at"`
	UpdatedAt           string  `dynamodbav:"updated_at"`
}

// LineItemDynamoRepository persists quote line items in DynamoDB.
//
// Table requirements:
//   - PK: quote_id (string)
//   - SK: id (string)
type LineItemDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ILineItemRepository = (*LineItemDynamoRepository)(nil)

func NewLineItemDynamoRepository(ddb DynamoDBAPI, tableName string) *LineItemDynamoRepository {
	return &LineItemDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *LineItemDynamoRepository) Create(ctx context.Context, li entities.LineItem) (entities.LineItem, error) {
	if err := putItem(ctx, r.ddb, r.tableName, toLineItemItem(li), "attribute_not_exists(#id)"); err != nil {
		return entities.LineItem{}, err
	}
	return li, nil
}

func (r *LineItemDynamoRepository) GetByID(ctx context.Context, quoteID, id string) (entities.LineItem, error) {
	var it lineItemItem
	found, err := getItem(ctx, r.ddb, r.tableName, childKey(quoteID, id), &it)
	if err != nil || !found {
		return entities.LineItem{}, err
	}
	return fromLineItemItem(it), nil
}

func (r *LineItemDynamoRepository) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.LineItem, error) {
	raw, err := queryByQuoteID[lineItemItem](ctx, r.ddb, r.tableName, quoteID)
	if err != nil {
		return nil, err
	}
	items := make([]entities.LineItem, 0, len(raw))
	for _, it := range raw {
		items = append(items, fromLineItemItem(it))
	}
	sortByCreatedAt(items, func(li entities.LineItem) time.Time { return li.CreatedAt })
	return items, nil
}

// Update replaces the stored item; a missing item yields a zero LineItem and nil error.
func (r *LineItemDynamoRepository) Update(ctx context.Context, li entities.LineItem) (entities.LineItem, error) {
	if err := putItem(ctx, r.ddb, r.tableName, toLineItemItem(li), "attribute_exists(#id)"); err != nil {
		if isConditionFailed(err) {
			return entities.LineItem{}, nil
		}
		return entities.LineItem{}, err
	}
	return li, nil
}

func (r *LineItemDynamoRepository) Delete(ctx context.Context, quoteID, id string) error {
	return deleteItem(ctx, r.ddb, r.tableName, childKey(quoteID, id))
}

func toLineItemItem(li entities.LineItem) lineItemItem {
	return lineItemItem{
		ID:                  li.ID,
		QuoteID:             li.QuoteID,
		FileID:              li.FileID,
		DocumentName:        li.DocumentName,
		RunID:               li.RunID,
		Source:              string(li.Source),
		BillablePages:       floatToString(li.BillablePages),
		BaseRate:            floatToString(li.BaseRate),
		OverrideRate:        optionalFloatToString(li.OverrideRate),
		OverrideReason:      li.OverrideReason,
		CertificationAmount: floatToString(li.CertificationAmount),
		CreatedAt:           formatTime(li.CreatedAt),
		UpdatedAt:           formatTime(li.UpdatedAt),
	}
}

func fromLineItemItem(it lineItemItem) entities.LineItem {
	return entities.LineItem{
		ID:                  it.ID,
		QuoteID:             it.QuoteID,
		FileID:              it.FileID,
		DocumentName:        it.DocumentName,
		RunID:               it.RunID,
		Source:              entities.LineItemSource(it.Source),
		BillablePages:       parseFloat(it.BillablePages),
		BaseRate:            parseFloat(it.BaseRate),
		OverrideRate:        parseOptionalFloat(it.OverrideRate),
		OverrideReason:      it.OverrideReason,
		CertificationAmount: parseFloat(it.CertificationAmount),
		CreatedAt:           parseTime(it.CreatedAt),
		UpdatedAt:           parseTime(it.UpdatedAt),
	}
}
