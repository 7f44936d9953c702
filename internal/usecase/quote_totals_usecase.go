package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"translation_backoffice/internal/domain/entities"
	"translation_backoffice/internal/domain/pricing"
	"translation_backoffice/internal/infrastructure/metrics"
	"translation_backoffice/internal/usecase/interfaces"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const defaultMaxAttempts = 3

var (
	ErrInvalidQuoteID = errors.New("invalid quote_id")
	ErrQuoteNotFound  = errors.New("quote not found")
	ErrTotalsNotFound = errors.New("quote totals not calculated yet")
	ErrTotalsConflict = errors.New("quote totals changed concurrently")
	errNilCalculator  = errors.New("pricing calculator not configured")
)

// IQuoteTotalsUseCase prices a quote from its line items, certifications and adjustments.
//
// Recalculate is called after every write to one of those collections; there is no
// standalone "recalculate" endpoint.
type IQuoteTotalsUseCase interface {
	interfaces.IQuoteTotalsRecalculator
	Get(ctx context.Context, quoteID string) (entities.QuoteTotals, error)
}

type QuoteTotalsUseCase struct {
	quotes         interfaces.IQuoteRepository
	lineItems      interfaces.ILineItemRepository
	certifications interfaces.ICertificationRepository
	adjustments    interfaces.IAdjustmentRepository
	totals         interfaces.IQuoteTotalsRepository
	cache          interfaces.ITotalsCache
	calc           *pricing.Calculator
	maxAttempts    int
	now            func() time.Time
	log            zerolog.Logger
}

var _ IQuoteTotalsUseCase = (*QuoteTotalsUseCase)(nil)

// NewQuoteTotalsUseCase wires the totals use case. cache may be nil; maxAttempts < 1 uses the default.
func NewQuoteTotalsUseCase(
	quotes interfaces.IQuoteRepository,
	lineItems interfaces.ILineItemRepository,
	certifications interfaces.ICertificationRepository,
	adjustments interfaces.IAdjustmentRepository,
	totals interfaces.IQuoteTotalsRepository,
	cache interfaces.ITotalsCache,
	calc *pricing.Calculator,
	maxAttempts int,
) *QuoteTotalsUseCase {
	if maxAttempts < 1 {
		maxAttempts = defaultMaxAttempts
	}
	return &QuoteTotalsUseCase{
		quotes:         quotes,
		lineItems:      lineItems,
		certifications: certifications,
		adjustments:    adjustments,
		totals:         totals,
		cache:          cache,
		calc:           calc,
		maxAttempts:    maxAttempts,
		now:            func() time.Time { return time.Now().UTC() },
		log:            log.With().Str("component", "totals").Str("layer", "usecase").Logger(),
	}
}

// Recalculate resolves the pricing scope, computes the breakdown and upserts it.
//
// The upsert is conditional on the totals version read at the start of the attempt; when
// another recalculation wins, the whole read-compute-write is retried up to maxAttempts.
func (u *QuoteTotalsUseCase) Recalculate(ctx context.Context, quoteID string, runID string) (entities.QuoteTotals, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.QuoteTotals{}, ErrInvalidQuoteID
	}
	if u.calc == nil {
		return entities.QuoteTotals{}, errNilCalculator
	}

	start := time.Now()
	defer func() {
		metrics.TotalsRecalculationSeconds.Observe(time.Since(start).Seconds())
	}()

	for attempt := 1; ; attempt++ {
		t, workflow, err := u.recalculateOnce(ctx, quoteID, strings.TrimSpace(runID))
		switch {
		case err == nil:
			metrics.TotalsRecalculations.WithLabelValues(string(workflow), "ok").Inc()
			u.storeInCache(ctx, t)
			u.log.Info().
				Str("quote_id", quoteID).
				Str("scope", t.Scope).
				Int64("version", t.Version).
				Float64("total", t.Breakdown.Total).
				Msg("totals recalculated")
			return t, nil

		case errors.Is(err, interfaces.ErrTotalsVersionConflict):
			metrics.TotalsVersionConflicts.Inc()
			if attempt < u.maxAttempts {
				u.log.Debug().Str("quote_id", quoteID).Int("attempt", attempt).Msg("totals version conflict, retrying")
				continue
			}
			metrics.TotalsRecalculations.WithLabelValues(string(workflow), "conflict").Inc()
			u.log.Warn().Str("quote_id", quoteID).Int("attempts", attempt).Msg("totals version conflict, giving up")
			return entities.QuoteTotals{}, ErrTotalsConflict

		default:
			if !errors.Is(err, ErrQuoteNotFound) {
				metrics.TotalsRecalculations.WithLabelValues(string(workflow), "error").Inc()
				u.log.Error().Err(err).Str("quote_id", quoteID).Msg("totals recalculation failed")
			}
			return entities.QuoteTotals{}, err
		}
	}
}

func (u *QuoteTotalsUseCase) recalculateOnce(ctx context.Context, quoteID, runID string) (entities.QuoteTotals, entities.QuoteWorkflow, error) {
	quote, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return entities.QuoteTotals{}, "", fmt.Errorf("load quote: %w", err)
	}
	if quote.ID == "" {
		return entities.QuoteTotals{}, "", ErrQuoteNotFound
	}
	workflow := quote.Workflow
	if workflow == "" {
		workflow = entities.QuoteWorkflowSelfServe
	}

	current, err := u.totals.GetByQuoteID(ctx, quoteID)
	if err != nil {
		return entities.QuoteTotals{}, workflow, fmt.Errorf("load totals: %w", err)
	}

	opts := pricing.OptionsFor(workflow)
	var in pricing.Input

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := u.lineItems.ListByQuoteID(gctx, quoteID)
		if err != nil {
			return fmt.Errorf("list line items: %w", err)
		}
		in.LineItems = items
		return nil
	})
	if opts.QuoteCertifications {
		g.Go(func() error {
			certs, err := u.certifications.ListByQuoteID(gctx, quoteID)
			if err != nil {
				return fmt.Errorf("list certifications: %w", err)
			}
			in.Certifications = certs
			return nil
		})
	}
	if opts.AdjustmentsEnabled {
		g.Go(func() error {
			adjs, err := u.adjustments.ListByQuoteID(gctx, quoteID)
			if err != nil {
				return fmt.Errorf("list adjustments: %w", err)
			}
			in.Adjustments = adjs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return entities.QuoteTotals{}, workflow, err
	}

	scope := pricing.AllItems()
	if workflow != entities.QuoteWorkflowHITL {
		scope = pricing.ResolveScope(quote, in.LineItems, runID)
	}
	in.LineItems = scope.Filter(in.LineItems)

	next := entities.QuoteTotals{
		QuoteID:      quoteID,
		Scope:        scope.String(),
		RunID:        scope.RunID,
		Breakdown:    u.calc.Calculate(in, opts),
		CalculatedAt: u.now(),
	}
	saved, err := u.totals.Upsert(ctx, next, current.Version)
	if err != nil {
		if errors.Is(err, interfaces.ErrTotalsVersionConflict) {
			return entities.QuoteTotals{}, workflow, err
		}
		return entities.QuoteTotals{}, workflow, fmt.Errorf("upsert totals: %w", err)
	}
	return saved, workflow, nil
}

// Get returns the stored totals, through the read cache when one is configured.
func (u *QuoteTotalsUseCase) Get(ctx context.Context, quoteID string) (entities.QuoteTotals, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.QuoteTotals{}, ErrInvalidQuoteID
	}

	if u.cache != nil {
		cached, ok, err := u.cache.Get(ctx, quoteID)
		if err != nil {
			u.log.Warn().Err(err).Str("quote_id", quoteID).Msg("totals cache read failed")
		} else if ok {
			return cached, nil
		}
	}

	t, err := u.totals.GetByQuoteID(ctx, quoteID)
	if err != nil {
		return entities.QuoteTotals{}, err
	}
	if t.QuoteID == "" {
		return entities.QuoteTotals{}, ErrTotalsNotFound
	}

	if u.cache != nil {
		if err := u.cache.Set(ctx, t); err != nil {
			u.log.Warn().Err(err).Str("quote_id", quoteID).Msg("totals cache write failed")
		}
	}
	return t, nil
}

// storeInCache writes freshly saved totals through to the cache. The cache keeps the highest
// version it has seen, so a concurrent Get filling in an older row cannot replace them. When the
// write fails the entry is dropped instead.
func (u *QuoteTotalsUseCase) storeInCache(ctx context.Context, t entities.QuoteTotals) {
	if u.cache == nil {
		return
	}
	err := u.cache.Set(ctx, t)
	if err == nil {
		return
	}
	u.log.Warn().Err(err).Str("quote_id", t.QuoteID).Msg("totals cache write failed")
	if err := u.cache.Invalidate(ctx, t.QuoteID); err != nil {
		u.log.Warn().Err(err).Str("quote_id", t.QuoteID).Msg("totals cache invalidation failed")
	}
}
