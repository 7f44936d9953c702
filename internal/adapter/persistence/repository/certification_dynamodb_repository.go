package repository

import (
	"context"
	"time"

	"translation_backoffice/internal/domain/entities"
	"translation_backoffice/internal/usecase/interfaces"
)

type certificationItem struct {
	ID           string  `dynamodbav:"id"`
	QuoteID      string  `dynamodbav:"quote_id"`
	LineItemID   string  `dynamodbav:"line_item_id,omitempty"`
	TypeCode     string  `dynamodbav:"type_code"`
	Name         string  `dynamodbav:"name"`
	DefaultRate  string  `dynamodbav:"default_rate"`
	OverrideRate *string `dynamodbav:"override_rate,omitempty"`
	CreatedAt    string  `dynamodbav:"created_at"`
	UpdatedAt    string  `dynamodbav:"updated_at"`
}

// CertificationDynamoRepository persists quote certifications in DynamoDB.
//
// Table requirements:
//   - PK: quote_id (string)
//   - SK: id (string)
type CertificationDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ICertificationRepository = (*CertificationDynamoRepository)(nil)

func NewCertificationDynamoRepository(ddb DynamoDBAPI, tableName string) *CertificationDynamoRepository {
	return &CertificationDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CertificationDynamoRepository) Create(ctx context.Context, c entities.Certification) (entities.Certification, error) {
	if err := putItem(ctx, r.ddb, r.tableName, toCertificationItem(c), "attribute_not_exists(#id)"); err != nil {
		return entities.Certification{}, err
	}
	return c, nil
}

func (r *CertificationDynamoRepository) GetByID(ctx context.Context, quoteID, id string) (entities.Certification, error) {
	var it certificationItem
	found, err := getItem(ctx, r.ddb, r.tableName, childKey(quoteID, id), &it)
	if err != nil || !found {
		return entities.Certification{}, err
	}
	return fromCertificationItem(it), nil
}

func (r *CertificationDynamoRepository) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.Certification, error) {
	raw, err := queryByQuoteID[certificationItem](ctx, r.ddb, r.tableName, quoteID)
	if err != nil {
		return nil, err
	}
	certs := make([]entities.Certification, 0, len(raw))
	for _, it := range raw {
		certs = append(certs, fromCertificationItem(it))
	}
	sortByCreatedAt(certs, func(c entities.Certification) time.Time { return c.CreatedAt })
	return certs, nil
}

func (r *CertificationDynamoRepository) Update(ctx context.Context, c entities.Certification) (entities.Certification, error) {
	if err := putItem(ctx, r.ddb, r.tableName, toCertificationItem(c), "attribute_exists(#id)"); err != nil {
		if isConditionFailed(err) {
			return entities.Certification{}, nil
		}
		return entities.Certification{}, err
	}
	return c, nil
}

func (r *CertificationDynamoRepository) Delete(ctx context.Context, quoteID, id string) error {
	return deleteItem(ctx, r.ddb, r.tableName, childKey(quoteID, id))
}

func toCertificationItem(c entities.Certification) certificationItem {
	return certificationItem{
		ID:           c.ID,
		QuoteID:      c.QuoteID,
		LineItemID:   c.LineItemID,
		TypeCode:     c.TypeCode,
		Name:         c.Name,
		DefaultRate:  floatToString(c.DefaultRate),
		OverrideRate: optionalFloatToString(c.OverrideRate),
		CreatedAt:    formatTime(c.CreatedAt),
		UpdatedAt:    formatTime(c.UpdatedAt),
	}
}

func fromCertificationItem(it certificationItem) entities.Certification {
	return entities.Certification{
		ID:           it.ID,
		QuoteID:      it.QuoteID,
		LineItemID:   it.LineItemID,
		TypeCode:     it.TypeCode,
		Name:         it.Name,
		DefaultRate:  parseFloat(it.DefaultRate),
		OverrideRate: parseOptionalFloat(it.OverrideRate),
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
