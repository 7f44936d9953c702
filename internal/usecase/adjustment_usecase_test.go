package usecase

import (
	"context"
	"errors"
	"testing"

	"translation_backoffice/internal/domain/entities"
	mock_interfaces "translation_backoffice/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestNormalizeAdjustmentInput(t *testing.T) {
	invalid := map[string]AdjustmentInput{
		"unknown type":             {Type: "rebate", Kind: "fixed", Value: 1},
		"additional without desc":  {Type: entities.AdjustmentTypeAdditionalItem, Quantity: 1, UnitAmount: 5},
		"additional zero quantity": {Type: entities.AdjustmentTypeAdditionalItem, Description: "Courier"},
		"additional negative unit": {Type: entities.AdjustmentTypeAdditionalItem, Description: "Courier", Quantity: 1, UnitAmount: -1},
		"discount without kind":    {Type: entities.AdjustmentTypeDiscount, Value: 5},
		"surcharge negative value": {Type: entities.AdjustmentTypeSurcharge, Kind: entities.AdjustmentKindFixed, Value: -5},
		"percentage over 100":      {Type: entities.AdjustmentTypeDiscount, Kind: entities.AdjustmentKindPercentage, Value: 100.5},
	}
	for name, in := range invalid {
		t.Run(name, func(t *testing.T) {
			if _, err := normalizeAdjustmentInput(in); !errors.Is(err, ErrInvalidAdjustment) {
				t.Fatalf("expected ErrInvalidAdjustment, got %v", err)
			}
		})
	}

	t.Run("clears unused fields", func(t *testing.T) {
		in, err := normalizeAdjustmentInput(AdjustmentInput{Type: " Discount ", Kind: "PERCENTAGE", Value: 100, Quantity: 3, UnitAmount: 4})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if in.Type != entities.AdjustmentTypeDiscount || in.Kind != entities.AdjustmentKindPercentage || in.Quantity != 0 || in.UnitAmount != 0 {
			t.Fatalf("unexpected normalized input: %+v", in)
		}

		in, err = normalizeAdjustmentInput(AdjustmentInput{Type: entities.AdjustmentTypeAdditionalItem, Kind: "fixed", Value: 9, Description: "Courier", Quantity: 1, UnitAmount: 20})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if in.Kind != "" || in.Value != 0 {
			t.Fatalf("kind and value must be cleared: %+v", in)
		}
	})
}

func TestAdjustmentUseCase(t *testing.T) {
	setup := func(t *testing.T) (*AdjustmentUseCase, *mock_interfaces.MockIAdjustmentRepository, *mock_interfaces.MockIQuoteRepository, *mock_interfaces.MockIQuoteTotalsRecalculator, *mock_interfaces.MockIActivityLogger) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIAdjustmentRepository(ctrl)
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		totals := mock_interfaces.NewMockIQuoteTotalsRecalculator(ctrl)
		activity := mock_interfaces.NewMockIActivityLogger(ctrl)
		return NewAdjustmentUseCase(repo, quotes, totals, activity), repo, quotes, totals, activity
	}
	discount := AdjustmentInput{Type: entities.AdjustmentTypeDiscount, Kind: entities.AdjustmentKindPercentage, Value: 10, Description: "Returning customer"}

	t.Run("hitl quotes reject adjustments", func(t *testing.T) {
		uc, _, quotes, _, _ := setup(t)
		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusDraft, Workflow: entities.QuoteWorkflowHITL}, nil)

		if _, _, err := uc.Create(context.Background(), testActor, "q-1", discount); !errors.Is(err, ErrAdjustmentsDisabled) {
			t.Fatalf("expected ErrAdjustmentsDisabled, got %v", err)
		}
	})

	t.Run("create logs the adjustment", func(t *testing.T) {
		uc, repo, quotes, totals, activity := setup(t)
		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(draftQuote(), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Adjustment) (entities.Adjustment, error) { return a, nil },
		)
		totals.EXPECT().Recalculate(gomock.Any(), "q-1", "").Return(entities.QuoteTotals{QuoteID: "q-1", Breakdown: entities.TotalsBreakdown{DiscountsOrSurcharges: -39}}, nil)
		activity.EXPECT().Log(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.ActivityLogEntry) bool {
				if e.ActionType != "adjustment_created" || e.Details["kind"] != "percentage" || e.Details["value"] != 10.0 {
					t.Fatalf("unexpected entry: %+v", e)
				}
				return true
			},
		)

		a, res, err := uc.Create(context.Background(), testActor, "q-1", discount)
		if err != nil || a.QuoteID != "q-1" || res.Breakdown.DiscountsOrSurcharges != -39 {
			t.Fatalf("unexpected result err=%v a=%+v totals=%+v", err, a, res)
		}
	})

	t.Run("update of another quote's adjustment", func(t *testing.T) {
		uc, repo, quotes, _, _ := setup(t)
		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(draftQuote(), nil)
		repo.EXPECT().GetByID(gomock.Any(), "q-1", "a-1").Return(entities.Adjustment{}, nil)

		if _, _, err := uc.Update(context.Background(), testActor, "q-1", "a-1", discount); !errors.Is(err, ErrAdjustmentNotFound) {
			t.Fatalf("expected ErrAdjustmentNotFound, got %v", err)
		}
	})

	t.Run("delete on a converted quote", func(t *testing.T) {
		uc, _, quotes, _, _ := setup(t)
		q := draftQuote()
		q.Status = entities.QuoteStatusConverted
		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)

		if _, err := uc.Delete(context.Background(), testActor, "q-1", "a-1"); !errors.Is(err, ErrQuoteLocked) {
			t.Fatalf("expected ErrQuoteLocked, got %v", err)
		}
	})
}
