package repository

import (
	"context"
	"sort"
	"strconv"
	"time"

	"translation_backoffice/internal/domain/entities"
	"translation_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type quoteItem struct {
	ID            string `dynamodbav:"id"`
	QuoteNumber   string `dynamodbav:"quote_number"`
	CustomerName  string `dynamodbav:"customer_name"`
	CustomerEmail string `dynamodbav:"customer_email"`
	SourceLang    string `dynamodbav:"source_language"`
	TargetLang    string `dynamodbav:"target_language"`
	Status        string `dynamodbav:"status"`
	Workflow      string `dynamodbav:"workflow"`
	ActiveRunID   string `dynamodbav:"active_run_id,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type QuoteDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb DynamoDBAPI, tableName string) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	if err := putItem(ctx, r.ddb, r.tableName, toQuoteItem(q), "attribute_not_exists(#id)"); err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	var it quoteItem
	found, err := getItem(ctx, r.ddb, r.tableName, idKey(id), &it)
	if err != nil || !found {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

// List scans the table, optionally filtered by status, newest first.
func (r *QuoteDynamoRepository) List(ctx context.Context, status entities.QuoteStatus) ([]entities.Quote, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if status != "" {
		in.FilterExpression = aws.String("#status = :status")
		in.ExpressionAttributeNames = map[string]string{"#status": "status"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		}
	}

	quotes := make([]entities.Quote, 0)
	p := dynamodb.NewScanPaginator(r.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it quoteItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			quotes = append(quotes, fromQuoteItem(it))
		}
	}
	sort.SliceStable(quotes, func(i, j int) bool {
		return quotes[i].CreatedAt.After(quotes[j].CreatedAt)
	})
	return quotes, nil
}

func (r *QuoteDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *QuoteDynamoRepository) UpdateActiveRun(ctx context.Context, id string, runID string) (entities.Quote, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		names := map[string]string{
			"#active_run_id": "active_run_id",
			"#updated_at":    "updated_at",
		}
		vals := map[string]types.AttributeValue{
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		if runID == "" {
			return "SET #updated_at = :updated_at REMOVE #active_run_id", vals, names
		}
		vals[":run_id"] = &types.AttributeValueMemberS{Value: runID}
		return "SET #active_run_id = :run_id, #updated_at = :updated_at", vals, names
	})
}

// ClaimForPayment sets payment_claim on a sent or accepted quote unless a live claim exists.
// The claim expiry is stored as unix milliseconds.
func (r *QuoteDynamoRepository) ClaimForPayment(ctx context.Context, id, claimID string, now, until time.Time) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(r.tableName),
		Key:              idKey(id),
		UpdateExpression: aws.String("SET #claim = :claim, #claim_until = :until, #updated_at = :updated_at"),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status IN (:sent, :accepted) AND " +
			"(attribute_not_exists(#claim) OR #claim_until < :now)"),
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#status":      "status",
			"#claim":       "payment_claim",
			"#claim_until": "payment_claim_until",
			"#updated_at":  "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":claim":      &types.AttributeValueMemberS{Value: claimID},
			":until":      &types.AttributeValueMemberN{Value: strconv.FormatInt(until.UnixMilli(), 10)},
			":now":        &types.AttributeValueMemberN{Value: strconv.FormatInt(now.UnixMilli(), 10)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(now)},
			":sent":       &types.AttributeValueMemberS{Value: string(entities.QuoteStatusSent)},
			":accepted":   &types.AttributeValueMemberS{Value: string(entities.QuoteStatusAccepted)},
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *QuoteDynamoRepository) ReleasePaymentClaim(ctx context.Context, id, claimID string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		UpdateExpression:    aws.String("REMOVE #claim, #claim_until"),
		ConditionExpression: aws.String("#claim = :claim"),
		ExpressionAttributeNames: map[string]string{
			"#claim":       "payment_claim",
			"#claim_until": "payment_claim_until",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":claim": &types.AttributeValueMemberS{Value: claimID},
		},
	})
	if err != nil && !isConditionFailed(err) {
		return err
	}
	return nil
}

// update applies the expression built by build; a missing quote yields a zero Quote and nil error.
func (r *QuoteDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Quote, error) {
	updateExpr, values, names := build(formatTime(time.Now()))

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey(id),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}
	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		ID:            q.ID,
		QuoteNumber:   q.QuoteNumber,
		CustomerName:  q.CustomerName,
		CustomerEmail: q.CustomerEmail,
		SourceLang:    q.SourceLang,
		TargetLang:    q.TargetLang,
		Status:        string(q.Status),
		Workflow:      string(q.Workflow),
		ActiveRunID:   q.ActiveRunID,
		CreatedAt:     formatTime(q.CreatedAt),
		UpdatedAt:     formatTime(q.UpdatedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	return entities.Quote{
		ID:            it.ID,
		QuoteNumber:   it.QuoteNumber,
		CustomerName:  it.CustomerName,
		CustomerEmail: it.CustomerEmail,
		SourceLang:    it.SourceLang,
		TargetLang:    it.TargetLang,
		Status:        entities.QuoteStatus(it.Status),
		Workflow:      entities.QuoteWorkflow(it.Workflow),
		ActiveRunID:   it.ActiveRunID,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
