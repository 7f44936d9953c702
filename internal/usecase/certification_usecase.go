package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"translation_backoffice/internal/domain/entities"
	"translation_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidCertification  = errors.New("invalid certification")
	ErrCertificationNotFound = errors.New("certification not found")
)

type CertificationInput struct {
	LineItemID   string
	TypeCode     string
	Name         string
	DefaultRate  float64
	OverrideRate *float64
}

type ICertificationUseCase interface {
	List(ctx context.Context, quoteID string) ([]entities.Certification, error)
	Create(ctx context.Context, actor entities.Actor, quoteID string, in CertificationInput) (entities.Certification, entities.QuoteTotals, error)
	Update(ctx context.Context, actor entities.Actor, quoteID, certificationID string, in CertificationInput) (entities.Certification, entities.QuoteTotals, error)
	Delete(ctx context.Context, actor entities.Actor, quoteID, certificationID string) (entities.QuoteTotals, error)
}

type CertificationUseCase struct {
	repo      interfaces.ICertificationRepository
	quotes    interfaces.IQuoteRepository
	lineItems interfaces.ILineItemRepository
	totals    interfaces.IQuoteTotalsRecalculator
	activity  interfaces.IActivityLogger
	now       func() time.Time
}

var _ ICertificationUseCase = (*CertificationUseCase)(nil)

func NewCertificationUseCase(
	repo interfaces.ICertificationRepository,
	quotes interfaces.IQuoteRepository,
	lineItems interfaces.ILineItemRepository,
	totals interfaces.IQuoteTotalsRecalculator,
	activity interfaces.IActivityLogger,
) *CertificationUseCase {
	return &CertificationUseCase{
		repo:      repo,
		quotes:    quotes,
		lineItems: lineItems,
		totals:    totals,
		activity:  activity,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *CertificationUseCase) List(ctx context.Context, quoteID string) ([]entities.Certification, error) {
	q, err := loadQuote(ctx, u.quotes, quoteID)
	if err != nil {
		return nil, err
	}
	return u.repo.ListByQuoteID(ctx, q.ID)
}

func (u *CertificationUseCase) Create(ctx context.Context, actor entities.Actor, quoteID string, in CertificationInput) (entities.Certification, entities.QuoteTotals, error) {
	in, err := normalizeCertificationInput(in)
	if err != nil {
		return entities.Certification{}, entities.QuoteTotals{}, err
	}
	q, err := loadWritableQuote(ctx, u.quotes, quoteID)
	if err != nil {
		return entities.Certification{}, entities.QuoteTotals{}, err
	}
	if err := u.checkLineItem(ctx, q.ID, in.LineItemID); err != nil {
		return entities.Certification{}, entities.QuoteTotals{}, err
	}

	now := u.now()
	c := applyCertificationInput(entities.Certification{
		ID:        uuid.NewString(),
		QuoteID:   q.ID,
		CreatedAt: now,
	}, in, now)

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		return entities.Certification{}, entities.QuoteTotals{}, err
	}
	totals, err := u.totals.Recalculate(ctx, q.ID, "")
	if err != nil {
		return entities.Certification{}, entities.QuoteTotals{}, err
	}

	logActivity(ctx, u.activity, actor.Entry("certification_created", created.ID, map[string]any{
		"quote_id":  q.ID,
		"type_code": created.TypeCode,
		"amount":    created.EffectiveAmount(),
	}))
	return created, totals, nil
}

func (u *CertificationUseCase) Update(ctx context.Context, actor entities.Actor, quoteID, certificationID string, in CertificationInput) (entities.Certification, entities.QuoteTotals, error) {
	in, err := normalizeCertificationInput(in)
	if err != nil {
		return entities.Certification{}, entities.QuoteTotals{}, err
	}
	q, err := loadWritableQuote(ctx, u.quotes, quoteID)
	if err != nil {
		return entities.Certification{}, entities.QuoteTotals{}, err
	}
	current, err := u.get(ctx, q.ID, certificationID)
	if err != nil {
		return entities.Certification{}, entities.QuoteTotals{}, err
	}
	if err := u.checkLineItem(ctx, q.ID, in.LineItemID); err != nil {
		return entities.Certification{}, entities.QuoteTotals{}, err
	}

	updated, err := u.repo.Update(ctx, applyCertificationInput(current, in, u.now()))
	if err != nil {
		return entities.Certification{}, entities.QuoteTotals{}, err
	}
	if updated.ID == "" {
		return entities.Certification{}, entities.QuoteTotals{}, ErrCertificationNotFound
	}
	totals, err := u.totals.Recalculate(ctx, q.ID, "")
	if err != nil {
		return entities.Certification{}, entities.QuoteTotals{}, err
	}

	logActivity(ctx, u.activity, actor.Entry("certification_updated", updated.ID, map[string]any{
		"quote_id": q.ID,
		"amount":   updated.EffectiveAmount(),
	}))
	return updated, totals, nil
}

func (u *CertificationUseCase) Delete(ctx context.Context, actor entities.Actor, quoteID, certificationID string) (entities.QuoteTotals, error) {
	q, err := loadWritableQuote(ctx, u.quotes, quoteID)
	if err != nil {
		return entities.QuoteTotals{}, err
	}
	current, err := u.get(ctx, q.ID, certificationID)
	if err != nil {
		return entities.QuoteTotals{}, err
	}
	if err := u.repo.Delete(ctx, q.ID, current.ID); err != nil {
		return entities.QuoteTotals{}, err
	}
	totals, err := u.totals.Recalculate(ctx, q.ID, "")
	if err != nil {
		return entities.QuoteTotals{}, err
	}

	logActivity(ctx, u.activity, actor.Entry("certification_deleted", current.ID, map[string]any{
		"quote_id":  q.ID,
		"type_code": current.TypeCode,
	}))
	return totals, nil
}

func (u *CertificationUseCase) get(ctx context.Context, quoteID, certificationID string) (entities.Certification, error) {
	certificationID = strings.TrimSpace(certificationID)
	if certificationID == "" {
		return entities.Certification{}, ErrCertificationNotFound
	}
	c, err := u.repo.GetByID(ctx, quoteID, certificationID)
	if err != nil {
		return entities.Certification{}, err
	}
	if c.ID == "" || c.QuoteID != quoteID {
		return entities.Certification{}, ErrCertificationNotFound
	}
	return c, nil
}

// checkLineItem verifies an optional line item reference points into the same quote.
func (u *CertificationUseCase) checkLineItem(ctx context.Context, quoteID, lineItemID string) error {
	if lineItemID == "" {
		return nil
	}
	li, err := u.lineItems.GetByID(ctx, quoteID, lineItemID)
	if err != nil {
		return err
	}
	if li.ID == "" || li.QuoteID != quoteID {
		return fmt.Errorf("%w: line_item_id does not belong to the quote", ErrInvalidCertification)
	}
	return nil
}

func normalizeCertificationInput(in CertificationInput) (CertificationInput, error) {
	in.LineItemID = strings.TrimSpace(in.LineItemID)
	in.TypeCode = strings.ToLower(strings.TrimSpace(in.TypeCode))
	in.Name = strings.TrimSpace(in.Name)

	switch {
	case in.TypeCode == "":
		return in, fmt.Errorf("%w: type_code is required", ErrInvalidCertification)
	case !finiteNonNegative(in.DefaultRate):
		return in, fmt.Errorf("%w: default_rate must be >= 0", ErrInvalidCertification)
	case in.OverrideRate != nil && !finiteNonNegative(*in.OverrideRate):
		return in, fmt.Errorf("%w: override_rate must be >= 0", ErrInvalidCertification)
	}
	if in.Name == "" {
		in.Name = in.TypeCode
	}
	return in, nil
}

func applyCertificationInput(c entities.Certification, in CertificationInput, now time.Time) entities.Certification {
	c.LineItemID = in.LineItemID
	c.TypeCode = in.TypeCode
	c.Name = in.Name
	c.DefaultRate = in.DefaultRate
	c.OverrideRate = in.OverrideRate
	c.UpdatedAt = now
	return c
}
