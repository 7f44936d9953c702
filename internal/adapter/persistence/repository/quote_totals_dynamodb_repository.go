package repository

import (
	"context"
	"strconv"

	"translation_backoffice/internal/domain/entities"
	"translation_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type breakdownItem struct {
	Translation           string `dynamodbav:"translation"`
	Certification         string `dynamodbav:"certification"`
	AdditionalItems       string `dynamodbav:"additional_items"`
	DiscountsOrSurcharges string `dynamodbav:"discounts_or_surcharges"`
	TaxRate               string `dynamodbav:"tax_rate"`
}

type quoteTotalsItem struct {
	QuoteID      string        `dynamodbav:"quote_id"`
	Scope        string        `dynamodbav:"scope"`
	RunID        string        `dynamodbav:"run_id,omitempty"`
	Subtotal     string        `dynamodbav:"subtotal"`
	Tax          string        `dynamodbav:"tax"`
	Total        string        `dynamodbav:"total"`
	Breakdown    breakdownItem `dynamodbav:"breakdown"`
	Version      int64         `dynamodbav:"version"`
	CalculatedAt string        `dynamodbav:"calculated_at"`
}

// QuoteTotalsDynamoRepository persists one totals row per quote in DynamoDB.
//
// Table requirements:
//   - PK: quote_id (string)
type QuoteTotalsDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IQuoteTotalsRepository = (*QuoteTotalsDynamoRepository)(nil)

func NewQuoteTotalsDynamoRepository(ddb DynamoDBAPI, tableName string) *QuoteTotalsDynamoRepository {
	return &QuoteTotalsDynamoRepository{ddb: ddb, tableName: tableName}
}

// GetByQuoteID returns a zero QuoteTotals (Version 0) when the quote was never priced.
func (r *QuoteTotalsDynamoRepository) GetByQuoteID(ctx context.Context, quoteID string) (entities.QuoteTotals, error) {
	var it quoteTotalsItem
	found, err := getItem(ctx, r.ddb, r.tableName, map[string]types.AttributeValue{
		"quote_id": &types.AttributeValueMemberS{Value: quoteID},
	}, &it)
	if err != nil || !found {
		return entities.QuoteTotals{}, err
	}
	return fromQuoteTotalsItem(it), nil
}

func (r *QuoteTotalsDynamoRepository) Upsert(ctx context.Context, t entities.QuoteTotals, expectedVersion int64) (entities.QuoteTotals, error) {
	t.Version = expectedVersion + 1
	av, err := attributevalue.MarshalMap(toQuoteTotalsItem(t))
	if err != nil {
		return entities.QuoteTotals{}, err
	}

	in := &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
		ExpressionAttributeNames: map[string]string{
			"#quote_id": "quote_id",
		},
	}
	if expectedVersion == 0 {
		in.ConditionExpression = aws.String("attribute_not_exists(#quote_id)")
	} else {
		in.ConditionExpression = aws.String("attribute_exists(#quote_id) AND #version = :expected")
		in.ExpressionAttributeNames["#version"] = "version"
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
		}
	}

	if _, err := r.ddb.PutItem(ctx, in); err != nil {
		if isConditionFailed(err) {
			return entities.QuoteTotals{}, interfaces.ErrTotalsVersionConflict
		}
		return entities.QuoteTotals{}, err
	}
	return t, nil
}

func toQuoteTotalsItem(t entities.QuoteTotals) quoteTotalsItem {
	b := t.Breakdown
	return quoteTotalsItem{
		QuoteID:  t.QuoteID,
		Scope:    t.Scope,
		RunID:    t.RunID,
		Subtotal: floatToString(b.Subtotal),
		Tax:      floatToString(b.Tax),
		Total:    floatToString(b.Total),
		Breakdown: breakdownItem{
			Translation:           floatToString(b.Translation),
			Certification:         floatToString(b.Certification),
			AdditionalItems:       floatToString(b.AdditionalItems),
			DiscountsOrSurcharges: floatToString(b.DiscountsOrSurcharges),
			TaxRate:               floatToString(b.TaxRate),
		},
		Version:      t.Version,
		CalculatedAt: formatTime(t.CalculatedAt),
	}
}

func fromQuoteTotalsItem(it quoteTotalsItem) entities.QuoteTotals {
	return entities.QuoteTotals{
		QuoteID: it.QuoteID,
		Scope:   it.Scope,
		RunID:   it.RunID,
		Breakdown: entities.TotalsBreakdown{
			Translation:           parseFloat(it.Breakdown.Translation),
			Certification:         parseFloat(it.Breakdown.Certification),
			AdditionalItems:       parseFloat(it.Breakdown.AdditionalItems),
			DiscountsOrSurcharges: parseFloat(it.Breakdown.DiscountsOrSurcharges),
			Subtotal:              parseFloat(it.Subtotal),
			Tax:                   parseFloat(it.Tax),
			Total:                 parseFloat(it.Total),
			TaxRate:               parseFloat(it.Breakdown.TaxRate),
		},
		Version:      it.Version,
		CalculatedAt: parseTime(it.CalculatedAt),
	}
}
