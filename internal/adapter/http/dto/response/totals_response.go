package response

import (
	"time"

	"translation_backoffice/internal/domain/entities"
)

// TotalsResponse is the breakdown embedded under "totals" in every pricing write response.
type TotalsResponse struct {
	Translation           float64 `json:"translation"`
	Certification         float64 `json:"certification"`
	AdditionalItems       float64 `json:"additional_items"`
	DiscountsOrSurcharges float64 `json:"discounts_or_surcharges"`
	Subtotal              float64 `json:"subtotal"`
	Tax                   float64 `json:"tax"`
	Total                 float64 `json:"total"`
	TaxRate               float64 `json:"taxRate"`
}

func FromBreakdown(b entities.TotalsBreakdown) TotalsResponse {
	return TotalsResponse{
		Translation:           b.Translation,
		Certification:         b.Certification,
		AdditionalItems:       b.AdditionalItems,
		DiscountsOrSurcharges: b.DiscountsOrSurcharges,
		Subtotal:              b.Subtotal,
		Tax:                   b.Tax,
		Total:                 b.Total,
		TaxRate:               b.TaxRate,
	}
}

// QuoteTotalsResponse is the stored totals row returned by GET /quotes/:quote_id/totals.
type QuoteTotalsResponse struct {
	QuoteID      string         `json:"quote_id"`
	Scope        string         `json:"scope"`
	RunID        string         `json:"run_id,omitempty"`
	Version      int64          `json:"version"`
	CalculatedAt time.Time      `json:"calculated_at"`
	Totals       TotalsResponse `json:"totals"`
}

func FromQuoteTotals(t entities.QuoteTotals) QuoteTotalsResponse {
	return QuoteTotalsResponse{
		QuoteID:      t.QuoteID,
		Scope:        t.Scope,
		RunID:        t.RunID,
		Version:      t.Version,
		CalculatedAt: t.CalculatedAt,
		Totals:       FromBreakdown(t.Breakdown),
	}
}

// DeleteResponse answers pricing deletes.
type DeleteResponse struct {
	Success bool           `json:"success"`
	Totals  TotalsResponse `json:"totals"`
}

func Deleted(t entities.QuoteTotals) DeleteResponse {
	return DeleteResponse{Success: true, Totals: FromBreakdown(t.Breakdown)}
}
