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

const maxPercentageAdjustment = 100.0

var (
	ErrInvalidAdjustment   = errors.New("invalid adjustment")
	ErrAdjustmentNotFound  = errors.New("adjustment not found")
	ErrAdjustmentsDisabled = errors.New("adjustments are not available for hitl quotes")
)

type AdjustmentInput struct {
	Type        entities.AdjustmentType
	Kind        entities.AdjustmentKind
	Description string
	Quantity    float64
	UnitAmount  float64
	Value       float64
}

type IAdjustmentUseCase interface {
	List(ctx context.Context, quoteID string) ([]entities.Adjustment, error)
	Create(ctx context.Context, actor entities.Actor, quoteID string, in AdjustmentInput) (entities.Adjustment, entities.QuoteTotals, error)
	Update(ctx context.Context, actor entities.Actor, quoteID, adjustmentID string, in AdjustmentInput) (entities.Adjustment, entities.QuoteTotals, error)
	Delete(ctx context.Context, actor entities.Actor, quoteID, adjustmentID string) (entities.QuoteTotals, error)
}

type AdjustmentUseCase struct {
	repo     interfaces.IAdjustmentRepository
	quotes   interfaces.IQuoteRepository
	totals   interfaces.IQuoteTotalsRecalculator
	activity interfaces.IActivityLogger
	now      func() time.Time
}

var _ IAdjustmentUseCase = (*AdjustmentUseCase)(nil)

func NewAdjustmentUseCase(
	repo interfaces.IAdjustmentRepository,
	quotes interfaces.IQuoteRepository,
	totals interfaces.IQuoteTotalsRecalculator,
	activity interfaces.IActivityLogger,
) *AdjustmentUseCase {
	return &AdjustmentUseCase{
		repo:     repo,
		quotes:   quotes,
		totals:   totals,
		activity: activity,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *AdjustmentUseCase) List(ctx context.Context, quoteID string) ([]entities.Adjustment, error) {
	q, err := loadQuote(ctx, u.quotes, quoteID)
	if err != nil {
		return nil, err
	}
	return u.repo.ListByQuoteID(ctx, q.ID)
}

func (u *AdjustmentUseCase) Create(ctx context.Context, actor entities.Actor, quoteID string, in AdjustmentInput) (entities.Adjustment, entities.QuoteTotals, error) {
	in, err := normalizeAdjustmentInput(in)
	if err != nil {
		return entities.Adjustment{}, entities.QuoteTotals{}, err
	}
	q, err := u.loadAdjustableQuote(ctx, quoteID)
	if err != nil {
		return entities.Adjustment{}, entities.QuoteTotals{}, err
	}

	now := u.now()
	a := applyAdjustmentInput(entities.Adjustment{
		ID:        uuid.NewString(),
		QuoteID:   q.ID,
		CreatedAt: now,
	}, in, now)

	created, err := u.repo.Create(ctx, a)
	if err != nil {
		return entities.Adjustment{}, entities.QuoteTotals{}, err
	}
	totals, err := u.totals.Recalculate(ctx, q.ID, "")
	if err != nil {
		return entities.Adjustment{}, entities.QuoteTotals{}, err
	}

	logActivity(ctx, u.activity, actor.Entry("adjustment_created", created.ID, adjustmentDetails(q.ID, created)))
	return created, totals, nil
}

func (u *AdjustmentUseCase) Update(ctx context.Context, actor entities.Actor, quoteID, adjustmentID string, in AdjustmentInput) (entities.Adjustment, entities.QuoteTotals, error) {
	in, err := normalizeAdjustmentInput(in)
	if err != nil {
		return entities.Adjustment{}, entities.QuoteTotals{}, err
	}
	q, err := u.loadAdjustableQuote(ctx, quoteID)
	if err != nil {
		return entities.Adjustment{}, entities.QuoteTotals{}, err
	}
	current, err := u.get(ctx, q.ID, adjustmentID)
	if err != nil {
		return entities.Adjustment{}, entities.QuoteTotals{}, err
	}

	updated, err := u.repo.Update(ctx, applyAdjustmentInput(current, in, u.now()))
	if err != nil {
		return entities.Adjustment{}, entities.QuoteTotals{}, err
	}
	if updated.ID == "" {
		return entities.Adjustment{}, entities.QuoteTotals{}, ErrAdjustmentNotFound
	}
	totals, err := u.totals.Recalculate(ctx, q.ID, "")
	if err != nil {
		return entities.Adjustment{}, entities.QuoteTotals{}, err
	}

	logActivity(ctx, u.activity, actor.Entry("adjustment_updated", updated.ID, adjustmentDetails(q.ID, updated)))
	return updated, totals, nil
}

func (u *AdjustmentUseCase) Delete(ctx context.Context, actor entities.Actor, quoteID, adjustmentID string) (entities.QuoteTotals, error) {
	q, err := u.loadAdjustableQuote(ctx, quoteID)
	if err != nil {
		return entities.QuoteTotals{}, err
	}
	current, err := u.get(ctx, q.ID, adjustmentID)
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

	logActivity(ctx, u.activity, actor.Entry("adjustment_deleted", current.ID, adjustmentDetails(q.ID, current)))
	return totals, nil
}

func (u *AdjustmentUseCase) loadAdjustableQuote(ctx context.Context, quoteID string) (entities.Quote, error) {
	q, err := loadWritableQuote(ctx, u.quotes, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.Workflow == entities.QuoteWorkflowHITL {
		return entities.Quote{}, ErrAdjustmentsDisabled
	}
	return q, nil
}

func (u *AdjustmentUseCase) get(ctx context.Context, quoteID, adjustmentID string) (entities.Adjustment, error) {
	adjustmentID = strings.TrimSpace(adjustmentID)
	if adjustmentID == "" {
		return entities.Adjustment{}, ErrAdjustmentNotFound
	}
	a, err := u.repo.GetByID(ctx, quoteID, adjustmentID)
	if err != nil {
		return entities.Adjustment{}, err
	}
	if a.ID == "" || a.QuoteID != quoteID {
		return entities.Adjustment{}, ErrAdjustmentNotFound
	}
	return a, nil
}

// normalizeAdjustmentInput validates the type/kind combination and clears the fields
// the type does not use.
func normalizeAdjustmentInput(in AdjustmentInput) (AdjustmentInput, error) {
	in.Type = entities.AdjustmentType(strings.ToLower(strings.TrimSpace(string(in.Type))))
	in.Kind = entities.AdjustmentKind(strings.ToLower(strings.TrimSpace(string(in.Kind))))
	in.Description = strings.TrimSpace(in.Description)

	if !in.Type.Valid() {
		return in, fmt.Errorf("%w: unknown type %q", ErrInvalidAdjustment, in.Type)
	}

	if in.Type == entities.AdjustmentTypeAdditionalItem {
		switch {
		case in.Description == "":
			return in, fmt.Errorf("%w: description is required for additional items", ErrInvalidAdjustment)
		case !finiteNonNegative(in.Quantity) || in.Quantity == 0:
			return in, fmt.Errorf("%w: quantity must be > 0", ErrInvalidAdjustment)
		case !finiteNonNegative(in.UnitAmount):
			return in, fmt.Errorf("%w: unit_amount must be >= 0", ErrInvalidAdjustment)
		}
		in.Kind = ""
		in.Value = 0
		return in, nil
	}

	switch {
	case !in.Kind.Valid():
		return in, fmt.Errorf("%w: kind must be fixed or percentage", ErrInvalidAdjustment)
	case !finiteNonNegative(in.Value):
		return in, fmt.Errorf("%w: value must be >= 0", ErrInvalidAdjustment)
	case in.Kind == entities.AdjustmentKindPercentage && in.Value > maxPercentageAdjustment:
		return in, fmt.Errorf("%w: percentage must be between 0 and 100", ErrInvalidAdjustment)
	}
	in.Quantity = 0
	in.UnitAmount = 0
	return in, nil
}

func applyAdjustmentInput(a entities.Adjustment, in AdjustmentInput, now time.Time) entities.Adjustment {
	a.Type = in.Type
	a.Kind = in.Kind
	a.Description = in.Description
	a.Quantity = in.Quantity
	a.UnitAmount = in.UnitAmount
	a.Value = in.Value
	a.UpdatedAt = now
	return a
}

func adjustmentDetails(quoteID string, a entities.Adjustment) map[string]any {
	d := map[string]any{
		"quote_id": quoteID,
		"type":     string(a.Type),
	}
	if a.Type == entities.AdjustmentTypeAdditionalItem {
		d["quantity"] = a.Quantity
		d["unit_amount"] = a.UnitAmount
	} else {
		d["kind"] = string(a.Kind)
		d["value"] = a.Value
	}
	return d
}
