package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"translation_backoffice/internal/domain/entities"
	"translation_backoffice/internal/domain/pricing"
	"translation_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidLineItem  = errors.New("invalid line item")
	ErrLineItemNotFound = errors.New("line item not found")
)

type LineItemInput struct {
	FileID              string
	DocumentName        string
	RunID               string
	Source              entities.LineItemSource
	BillablePages       float64
	BaseRate            float64
	OverrideRate        *float64
	OverrideReason      string
	CertificationAmount float64
}

// ILineItemUseCase manages quote line items. Every write recalculates the quote totals
// and returns them alongside the written item.
type ILineItemUseCase interface {
	List(ctx context.Context, quoteID string) ([]entities.LineItem, error)
	Create(ctx context.Context, actor entities.Actor, quoteID string, in LineItemInput) (entities.LineItem, entities.QuoteTotals, error)
	Update(ctx context.Context, actor entities.Actor, quoteID, lineItemID string, in LineItemInput) (entities.LineItem, entities.QuoteTotals, error)
	Delete(ctx context.Context, actor entities.Actor, quoteID, lineItemID string) (entities.QuoteTotals, error)
}

type LineItemUseCase struct {
	repo     interfaces.ILineItemRepository
	quotes   interfaces.IQuoteRepository
	totals   interfaces.IQuoteTotalsRecalculator
	activity interfaces.IActivityLogger
	now      func() time.Time
	log      zerolog.Logger
}

var _ ILineItemUseCase = (*LineItemUseCase)(nil)

func NewLineItemUseCase(
	repo interfaces.ILineItemRepository,
	quotes interfaces.IQuoteRepository,
	totals interfaces.IQuoteTotalsRecalculator,
	activity interfaces.IActivityLogger,
) *LineItemUseCase {
	return &LineItemUseCase{
		repo:     repo,
		quotes:   quotes,
		totals:   totals,
		activity: activity,
		now:      func() time.Time { return time.Now().UTC() },
		log:      log.With().Str("component", "line_item").Str("layer", "usecase").Logger(),
	}
}

func (u *LineItemUseCase) List(ctx context.Context, quoteID string) ([]entities.LineItem, error) {
	q, err := loadQuote(ctx, u.quotes, quoteID)
	if err != nil {
		return nil, err
	}
	return u.repo.ListByQuoteID(ctx, q.ID)
}

func (u *LineItemUseCase) Create(ctx context.Context, actor entities.Actor, quoteID string, in LineItemInput) (entities.LineItem, entities.QuoteTotals, error) {
	in, err := normalizeLineItemInput(in)
	if err != nil {
		return entities.LineItem{}, entities.QuoteTotals{}, err
	}
	q, err := loadWritableQuote(ctx, u.quotes, quoteID)
	if err != nil {
		return entities.LineItem{}, entities.QuoteTotals{}, err
	}

	now := u.now()
	li := applyLineItemInput(entities.LineItem{
		ID:        uuid.NewString(),
		QuoteID:   q.ID,
		CreatedAt: now,
	}, in, now)

	created, err := u.repo.Create(ctx, li)
	if err != nil {
		return entities.LineItem{}, entities.QuoteTotals{}, err
	}
	totals, err := u.totals.Recalculate(ctx, q.ID, "")
	if err != nil {
		return entities.LineItem{}, entities.QuoteTotals{}, err
	}

	details := map[string]any{
		"quote_id":       q.ID,
		"billable_pages": created.BillablePages,
		"rate":           created.EffectiveRate(),
	}
	u.flagUnpriced(created, totals, details)
	logActivity(ctx, u.activity, actor.Entry("line_item_created", created.ID, details))
	return created, totals, nil
}

func (u *LineItemUseCase) Update(ctx context.Context, actor entities.Actor, quoteID, lineItemID string, in LineItemInput) (entities.LineItem, entities.QuoteTotals, error) {
	in, err := normalizeLineItemInput(in)
	if err != nil {
		return entities.LineItem{}, entities.QuoteTotals{}, err
	}
	q, err := loadWritableQuote(ctx, u.quotes, quoteID)
	if err != nil {
		return entities.LineItem{}, entities.QuoteTotals{}, err
	}
	current, err := u.get(ctx, q.ID, lineItemID)
	if err != nil {
		return entities.LineItem{}, entities.QuoteTotals{}, err
	}

	updated, err := u.repo.Update(ctx, applyLineItemInput(current, in, u.now()))
	if err != nil {
		return entities.LineItem{}, entities.QuoteTotals{}, err
	}
	if updated.ID == "" {
		return entities.LineItem{}, entities.QuoteTotals{}, ErrLineItemNotFound
	}
	totals, err := u.totals.Recalculate(ctx, q.ID, "")
	if err != nil {
		return entities.LineItem{}, entities.QuoteTotals{}, err
	}

	details := map[string]any{"quote_id": q.ID}
	if updated.OverrideRate != nil {
		details["override_rate"] = *updated.OverrideRate
		details["override_reason"] = updated.OverrideReason
	}
	u.flagUnpriced(updated, totals, details)
	logActivity(ctx, u.activity, actor.Entry("line_item_updated", updated.ID, details))
	return updated, totals, nil
}

func (u *LineItemUseCase) Delete(ctx context.Context, actor entities.Actor, quoteID, lineItemID string) (entities.QuoteTotals, error) {
	q, err := loadWritableQuote(ctx, u.quotes, quoteID)
	if err != nil {
		return entities.QuoteTotals{}, err
	}
	current, err := u.get(ctx, q.ID, lineItemID)
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

	logActivity(ctx, u.activity, actor.Entry("line_item_deleted", current.ID, map[string]any{
		"quote_id":      q.ID,
		"document_name": current.DocumentName,
	}))
	return totals, nil
}

// flagUnpriced warns when li is not part of the scope the totals were priced with,
// e.g. a manual item on a quote priced from an analysis run.
func (u *LineItemUseCase) flagUnpriced(li entities.LineItem, t entities.QuoteTotals, details map[string]any) {
	if pricedInScope(li, t) {
		return
	}
	details["excluded_from_pricing"] = true
	details["pricing_scope"] = t.Scope
	u.log.Warn().
		Str("quote_id", li.QuoteID).
		Str("line_item_id", li.ID).
		Str("scope", t.Scope).
		Msg("line item is outside the pricing scope")
}

func pricedInScope(li entities.LineItem, t entities.QuoteTotals) bool {
	if t.RunID != "" {
		return strings.TrimSpace(li.RunID) == t.RunID
	}
	if t.Scope == string(pricing.ScopeManualOnly) {
		return li.IsManual()
	}
	return true
}

// get loads a line item and checks it belongs to quoteID.
func (u *LineItemUseCase) get(ctx context.Context, quoteID, lineItemID string) (entities.LineItem, error) {
	lineItemID = strings.TrimSpace(lineItemID)
	if lineItemID == "" {
		return entities.LineItem{}, ErrLineItemNotFound
	}
	li, err := u.repo.GetByID(ctx, quoteID, lineItemID)
	if err != nil {
		return entities.LineItem{}, err
	}
	if li.ID == "" || li.QuoteID != quoteID {
		return entities.LineItem{}, ErrLineItemNotFound
	}
	return li, nil
}

func normalizeLineItemInput(in LineItemInput) (LineItemInput, error) {
	in.DocumentName = strings.TrimSpace(in.DocumentName)
	in.FileID = strings.TrimSpace(in.FileID)
	in.RunID = strings.TrimSpace(in.RunID)
	in.OverrideReason = strings.TrimSpace(in.OverrideReason)
	if in.Source == "" {
		in.Source = entities.LineItemSourceManual
	}

	switch {
	case in.Source != entities.LineItemSourceManual && in.Source != entities.LineItemSourceAnalysis:
		return in, fmt.Errorf("%w: unknown source %q", ErrInvalidLineItem, in.Source)
	case in.Source == entities.LineItemSourceAnalysis && in.RunID == "":
		return in, fmt.Errorf("%w: analysis items require run_id", ErrInvalidLineItem)
	case !finiteNonNegative(in.BillablePages):
		return in, fmt.Errorf("%w: billable_pages must be >= 0", ErrInvalidLineItem)
	case !finiteNonNegative(in.BaseRate):
		return in, fmt.Errorf("%w: base_rate must be >= 0", ErrInvalidLineItem)
	case !finiteNonNegative(in.CertificationAmount):
		return in, fmt.Errorf("%w: certification_amount must be >= 0", ErrInvalidLineItem)
	case in.OverrideRate != nil && !finiteNonNegative(*in.OverrideRate):
		return in, fmt.Errorf("%w: override_rate must be >= 0", ErrInvalidLineItem)
	case in.OverrideRate != nil && in.OverrideReason == "":
		return in, fmt.Errorf("%w: override_reason is required with override_rate", ErrInvalidLineItem)
	}
	if in.OverrideRate == nil {
		in.OverrideReason = ""
	}
	return in, nil
}

func applyLineItemInput(li entities.LineItem, in LineItemInput, now time.Time) entities.LineItem {
	li.FileID = in.FileID
	li.DocumentName = in.DocumentName
	li.RunID = in.RunID
	li.Source = in.Source
	li.BillablePages = in.BillablePages
	li.BaseRate = in.BaseRate
	li.OverrideRate = in.OverrideRate
	li.OverrideReason = in.OverrideReason
	li.CertificationAmount = in.CertificationAmount
	li.UpdatedAt = now
	return li
}

func finiteNonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
