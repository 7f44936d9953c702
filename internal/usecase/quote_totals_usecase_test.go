package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"translation_backoffice/internal/domain/entities"
	"translation_backoffice/internal/domain/pricing"
	"translation_backoffice/internal/usecase/interfaces"
	mock_interfaces "translation_backoffice/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type totalsMocks struct {
	quotes         *mock_interfaces.MockIQuoteRepository
	lineItems      *mock_interfaces.MockILineItemRepository
	certifications *mock_interfaces.MockICertificationRepository
	adjustments    *mock_interfaces.MockIAdjustmentRepository
	totals         *mock_interfaces.MockIQuoteTotalsRepository
	cache          *mock_interfaces.MockITotalsCache
}

func newTotalsUseCase(t *testing.T, maxAttempts int) (*QuoteTotalsUseCase, totalsMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := totalsMocks{
		quotes:         mock_interfaces.NewMockIQuoteRepository(ctrl),
		lineItems:      mock_interfaces.NewMockILineItemRepository(ctrl),
		certifications: mock_interfaces.NewMockICertificationRepository(ctrl),
		adjustments:    mock_interfaces.NewMockIAdjustmentRepository(ctrl),
		totals:         mock_interfaces.NewMockIQuoteTotalsRepository(ctrl),
		cache:          mock_interfaces.NewMockITotalsCache(ctrl),
	}
	calc, err := pricing.NewCalculator(pricing.DefaultTaxRate)
	if err != nil {
		t.Fatalf("calculator: %v", err)
	}
	uc := NewQuoteTotalsUseCase(m.quotes, m.lineItems, m.certifications, m.adjustments, m.totals, m.cache, calc, maxAttempts)
	fixed := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return fixed }
	return uc, m
}

func echoUpsert(t *testing.T, wantVersion int64, check func(entities.QuoteTotals)) func(context.Context, entities.QuoteTotals, int64) (entities.QuoteTotals, error) {
	return func(_ context.Context, next entities.QuoteTotals, expected int64) (entities.QuoteTotals, error) {
		if expected != wantVersion {
			t.Fatalf("expected version %d, got %d", wantVersion, expected)
		}
		if check != nil {
			check(next)
		}
		next.Version = expected + 1
		return next, nil
	}
}

func TestQuoteTotalsUseCase_Recalculate_SelfServe(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	override := 30.0

	t.Run("active run with certifications and adjustments", func(t *testing.T) {
		uc, m := newTotalsUseCase(t, 0)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{
			ID: "q-1", Status: entities.QuoteStatusDraft, Workflow: entities.QuoteWorkflowSelfServe, ActiveRunID: "run-a",
		}, nil)
		m.totals.EXPECT().GetByQuoteID(gomock.Any(), "q-1").Return(entities.QuoteTotals{QuoteID: "q-1", Version: 4}, nil)
		m.lineItems.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return([]entities.LineItem{
			{ID: "li-1", RunID: "run-a", Source: entities.LineItemSourceAnalysis, BillablePages: 10, BaseRate: 25, CreatedAt: base},
			{ID: "li-2", RunID: "run-a", Source: entities.LineItemSourceAnalysis, BillablePages: 2.5, BaseRate: 25, OverrideRate: &override, CertificationAmount: 15, CreatedAt: base},
			{ID: "li-3", RunID: "run-b", Source: entities.LineItemSourceAnalysis, BillablePages: 100, BaseRate: 25, CreatedAt: base.Add(time.Hour)},
		}, nil)
		m.certifications.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return([]entities.Certification{
			{ID: "c-1", DefaultRate: 50},
		}, nil)
		m.adjustments.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return([]entities.Adjustment{
			{Type: entities.AdjustmentTypeAdditionalItem, Quantity: 2, UnitAmount: 12.5},
			{Type: entities.AdjustmentTypeDiscount, Kind: entities.AdjustmentKindPercentage, Value: 10},
			{Type: entities.AdjustmentTypeSurcharge, Kind: entities.AdjustmentKindFixed, Value: 20},
		}, nil)
		m.totals.EXPECT().Upsert(gomock.Any(), gomock.Any(), int64(4)).DoAndReturn(echoUpsert(t, 4, nil))
		m.cache.EXPECT().Set(gomock.Any(), gomock.AssignableToTypeOf(entities.QuoteTotals{})).DoAndReturn(
			func(_ context.Context, cached entities.QuoteTotals) error {
				if cached.Version != 5 || cached.Breakdown.Total != 415.8 {
					t.Fatalf("expected the saved totals to be written through, got %+v", cached)
				}
				return nil
			},
		)

		res, err := uc.Recalculate(context.Background(), " q-1 ", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// translation 10*25 + 2.5*30 = 325; certification 15 + 50 = 65; base 390
		// additional 25; net -39 + 20 = -19; subtotal 396; tax 19.8; total 415.8
		want := entities.TotalsBreakdown{
			Translation: 325, Certification: 65, AdditionalItems: 25, DiscountsOrSurcharges: -19,
			Subtotal: 396, Tax: 19.8, Total: 415.8, TaxRate: 0.05,
		}
		if res.Breakdown != want {
			t.Fatalf("unexpected breakdown: %+v", res.Breakdown)
		}
		if res.Scope != "active_run:run-a" || res.RunID != "run-a" || res.Version != 5 {
			t.Fatalf("unexpected totals: %+v", res)
		}
	})

	t.Run("explicit run wins over active run", func(t *testing.T) {
		uc, m := newTotalsUseCase(t, 0)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", ActiveRunID: "run-a"}, nil)
		m.totals.EXPECT().GetByQuoteID(gomock.Any(), "q-1").Return(entities.QuoteTotals{}, nil)
		m.lineItems.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return([]entities.LineItem{
			{RunID: "run-a", BillablePages: 1, BaseRate: 10},
			{RunID: "run-b", BillablePages: 2, BaseRate: 10},
		}, nil)
		m.certifications.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return(nil, nil)
		m.adjustments.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return(nil, nil)
		m.totals.EXPECT().Upsert(gomock.Any(), gomock.Any(), int64(0)).DoAndReturn(echoUpsert(t, 0, func(next entities.QuoteTotals) {
			if next.Breakdown.Translation != 20 || next.Scope != "explicit_run:run-b" {
				t.Fatalf("expected run-b only, got %+v", next)
			}
			if !next.CalculatedAt.Equal(time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)) {
				t.Fatalf("calculated_at not set from clock")
			}
		}))
		m.cache.EXPECT().Set(gomock.Any(), gomock.AssignableToTypeOf(entities.QuoteTotals{})).Return(nil)

		if _, err := uc.Recalculate(context.Background(), "q-1", "run-b"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("no runs prices manual items only", func(t *testing.T) {
		uc, m := newTotalsUseCase(t, 0)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1"}, nil)
		m.totals.EXPECT().GetByQuoteID(gomock.Any(), "q-1").Return(entities.QuoteTotals{}, nil)
		m.lineItems.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return([]entities.LineItem{
			{Source: entities.LineItemSourceManual, BillablePages: 3, BaseRate: 33.333},
		}, nil)
		m.certifications.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return(nil, nil)
		m.adjustments.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return(nil, nil)
		m.totals.EXPECT().Upsert(gomock.Any(), gomock.Any(), int64(0)).DoAndReturn(echoUpsert(t, 0, func(next entities.QuoteTotals) {
			if next.Scope != "manual_only" || next.Breakdown.Translation != 100 || next.Breakdown.Total != 105 {
				t.Fatalf("unexpected manual totals: %+v", next)
			}
		}))
		m.cache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
		m.cache.EXPECT().Invalidate(gomock.Any(), "q-1").Return(errors.New("redis down"))

		if _, err := uc.Recalculate(context.Background(), "q-1", ""); err != nil {
			t.Fatalf("cache failures must not fail the recalculation: %v", err)
		}
	})
}

func TestQuoteTotalsUseCase_Recalculate_HITL(t *testing.T) {
	uc, m := newTotalsUseCase(t, 0)
	m.quotes.EXPECT().GetByID(gomock.Any(), "q-h").Return(entities.Quote{
		ID: "q-h", Workflow: entities.QuoteWorkflowHITL, ActiveRunID: "run-a",
	}, nil)
	m.totals.EXPECT().GetByQuoteID(gomock.Any(), "q-h").Return(entities.QuoteTotals{}, nil)
	m.lineItems.EXPECT().ListByQuoteID(gomock.Any(), "q-h").Return([]entities.LineItem{
		{RunID: "run-a", BillablePages: 4, BaseRate: 20, CertificationAmount: 10},
		{RunID: "run-b", BillablePages: 1, BaseRate: 20},
		{Source: entities.LineItemSourceManual, BillablePages: 1, BaseRate: 20},
	}, nil)
	m.totals.EXPECT().Upsert(gomock.Any(), gomock.Any(), int64(0)).DoAndReturn(echoUpsert(t, 0, func(next entities.QuoteTotals) {
		want := entities.TotalsBreakdown{Translation: 120, Certification: 10, Subtotal: 130, Tax: 6.5, Total: 136.5, TaxRate: 0.05}
		if next.Breakdown != want || next.Scope != "all_items" {
			t.Fatalf("unexpected hitl totals: %+v", next)
		}
	}))
	m.cache.EXPECT().Set(gomock.Any(), gomock.AssignableToTypeOf(entities.QuoteTotals{})).Return(nil)

	if _, err := uc.Recalculate(context.Background(), "q-h", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestQuoteTotalsUseCase_Recalculate_Errors(t *testing.T) {
	t.Run("blank quote id", func(t *testing.T) {
		uc, _ := newTotalsUseCase(t, 0)
		if _, err := uc.Recalculate(context.Background(), "  ", ""); !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("nil calculator", func(t *testing.T) {
		uc := NewQuoteTotalsUseCase(nil, nil, nil, nil, nil, nil, nil, 0)
		if _, err := uc.Recalculate(context.Background(), "q-1", ""); !errors.Is(err, errNilCalculator) {
			t.Fatalf("expected errNilCalculator, got %v", err)
		}
	})

	t.Run("quote not found", func(t *testing.T) {
		uc, m := newTotalsUseCase(t, 0)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-x").Return(entities.Quote{}, nil)
		if _, err := uc.Recalculate(context.Background(), "q-x", ""); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("list error aborts before upsert", func(t *testing.T) {
		uc, m := newTotalsUseCase(t, 0)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1"}, nil)
		m.totals.EXPECT().GetByQuoteID(gomock.Any(), "q-1").Return(entities.QuoteTotals{}, nil)
		m.lineItems.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return(nil, errors.New("dynamo"))
		m.certifications.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return(nil, nil).AnyTimes()
		m.adjustments.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return(nil, nil).AnyTimes()

		_, err := uc.Recalculate(context.Background(), "q-1", "")
		if err == nil || errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected list error, got %v", err)
		}
	})
}

func TestQuoteTotalsUseCase_Recalculate_VersionConflict(t *testing.T) {
	expectRound := func(m totalsMocks, version int64) {
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1"}, nil)
		m.totals.EXPECT().GetByQuoteID(gomock.Any(), "q-1").Return(entities.QuoteTotals{QuoteID: "q-1", Version: version}, nil)
		m.lineItems.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return(nil, nil)
		m.certifications.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return(nil, nil)
		m.adjustments.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return(nil, nil)
	}

	t.Run("retries with the fresh version", func(t *testing.T) {
		uc, m := newTotalsUseCase(t, 3)
		gomock.InOrder(
			m.totals.EXPECT().Upsert(gomock.Any(), gomock.Any(), int64(1)).Return(entities.QuoteTotals{}, interfaces.ErrTotalsVersionConflict),
			m.totals.EXPECT().Upsert(gomock.Any(), gomock.Any(), int64(2)).DoAndReturn(echoUpsert(t, 2, nil)),
		)
		expectRound(m, 1)
		expectRound(m, 2)
		m.cache.EXPECT().Set(gomock.Any(), gomock.AssignableToTypeOf(entities.QuoteTotals{})).Return(nil)

		res, err := uc.Recalculate(context.Background(), "q-1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Version != 3 {
			t.Fatalf("expected version 3, got %d", res.Version)
		}
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		uc, m := newTotalsUseCase(t, 2)
		expectRound(m, 1)
		expectRound(m, 1)
		m.totals.EXPECT().Upsert(gomock.Any(), gomock.Any(), int64(1)).Return(entities.QuoteTotals{}, interfaces.ErrTotalsVersionConflict).Times(2)

		if _, err := uc.Recalculate(context.Background(), "q-1", ""); !errors.Is(err, ErrTotalsConflict) {
			t.Fatalf("expected ErrTotalsConflict, got %v", err)
		}
	})
}

func TestQuoteTotalsUseCase_Get(t *testing.T) {
	stored := entities.QuoteTotals{QuoteID: "q-1", Version: 2, Breakdown: entities.TotalsBreakdown{Total: 10.5}}

	t.Run("cache hit", func(t *testing.T) {
		uc, m := newTotalsUseCase(t, 0)
		m.cache.EXPECT().Get(gomock.Any(), "q-1").Return(stored, true, nil)

		res, err := uc.Get(context.Background(), "q-1")
		if err != nil || res.Version != 2 {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})

	t.Run("cache miss fills the cache", func(t *testing.T) {
		uc, m := newTotalsUseCase(t, 0)
		m.cache.EXPECT().Get(gomock.Any(), "q-1").Return(entities.QuoteTotals{}, false, nil)
		m.totals.EXPECT().GetByQuoteID(gomock.Any(), "q-1").Return(stored, nil)
		m.cache.EXPECT().Set(gomock.Any(), stored).Return(nil)

		res, err := uc.Get(context.Background(), "q-1")
		if err != nil || res.Breakdown.Total != 10.5 {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})

	t.Run("cache error falls back to the store", func(t *testing.T) {
		uc, m := newTotalsUseCase(t, 0)
		m.cache.EXPECT().Get(gomock.Any(), "q-1").Return(entities.QuoteTotals{}, false, errors.New("redis"))
		m.totals.EXPECT().GetByQuoteID(gomock.Any(), "q-1").Return(stored, nil)
		m.cache.EXPECT().Set(gomock.Any(), stored).Return(errors.New("redis"))

		if _, err := uc.Get(context.Background(), "q-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not calculated yet", func(t *testing.T) {
		uc, m := newTotalsUseCase(t, 0)
		m.cache.EXPECT().Get(gomock.Any(), "q-1").Return(entities.QuoteTotals{}, false, nil)
		m.totals.EXPECT().GetByQuoteID(gomock.Any(), "q-1").Return(entities.QuoteTotals{}, nil)

		if _, err := uc.Get(context.Background(), "q-1"); !errors.Is(err, ErrTotalsNotFound) {
			t.Fatalf("expected ErrTotalsNotFound, got %v", err)
		}
	})
}

// versionedCache keeps the highest version written per quote, like TotalsRedisCache.
type versionedCache struct {
	mu      sync.Mutex
	entries map[string]entities.QuoteTotals
}

func (c *versionedCache) Get(_ context.Context, quoteID string) (entities.QuoteTotals, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	t, ok := c.entries[quoteID]
	return t, ok, nil
}

func (c *versionedCache) Set(_ context.Context, t entities.QuoteTotals) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cur, ok := c.entries[t.QuoteID]; ok && cur.Version >= t.Version {
		return nil
	}
	c.entries[t.QuoteID] = t
	return nil
}

func (c *versionedCache) Invalidate(_ context.Context, quoteID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, quoteID)
	return nil
}

// totalsStore is a one-row totals table; afterRead runs once, after the next read has
// taken its snapshot.
type totalsStore struct {
	row       entities.QuoteTotals
	afterRead func()
}

func (s *totalsStore) GetByQuoteID(_ context.Context, _ string) (entities.QuoteTotals, error) {
	row := s.row
	if hook := s.afterRead; hook != nil {
		s.afterRead = nil
		hook()
	}
	return row, nil
}

func (s *totalsStore) Upsert(_ context.Context, t entities.QuoteTotals, expectedVersion int64) (entities.QuoteTotals, error) {
	if s.row.Version != expectedVersion {
		return entities.QuoteTotals{}, interfaces.ErrTotalsVersionConflict
	}
	t.Version = expectedVersion + 1
	s.row = t
	return t, nil
}

func TestQuoteTotalsUseCase_GetDoesNotResurrectOldTotals(t *testing.T) {
	ctrl := gomock.NewController(t)
	quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
	lineItems := mock_interfaces.NewMockILineItemRepository(ctrl)
	certifications := mock_interfaces.NewMockICertificationRepository(ctrl)
	adjustments := mock_interfaces.NewMockIAdjustmentRepository(ctrl)
	calc, err := pricing.NewCalculator(pricing.DefaultTaxRate)
	if err != nil {
		t.Fatalf("calculator: %v", err)
	}

	store := &totalsStore{row: entities.QuoteTotals{QuoteID: "q-1", Version: 1, Breakdown: entities.TotalsBreakdown{Total: 100}}}
	cache := &versionedCache{entries: map[string]entities.QuoteTotals{}}
	uc := NewQuoteTotalsUseCase(quotes, lineItems, certifications, adjustments, store, cache, calc, 0)

	quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1"}, nil)
	lineItems.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return([]entities.LineItem{
		{Source: entities.LineItemSourceManual, BillablePages: 26, BaseRate: 25},
	}, nil)
	certifications.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return(nil, nil)
	adjustments.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return(nil, nil)

	// A reader misses the cache and reads v1; a recalculation saves v2 before the reader
	// gets to fill the cache.
	store.afterRead = func() {
		if _, err := uc.Recalculate(context.Background(), "q-1", ""); err != nil {
			t.Fatalf("recalculate: %v", err)
		}
	}
	first, err := uc.Get(context.Background(), "q-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Version != 1 {
		t.Fatalf("the racing read should see the row it loaded, got v%d", first.Version)
	}

	second, err := uc.Get(context.Background(), "q-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Version != 2 || second.Breakdown.Total != 682.5 {
		t.Fatalf("stale totals served from cache: got v%d total=%v, store has v%d total=%v",
			second.Version, second.Breakdown.Total, store.row.Version, store.row.Breakdown.Total)
	}
}
