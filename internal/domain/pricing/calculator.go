// Package pricing computes quote totals from line items, certifications and adjustments.
//
// Every intermediate amount (translation, certification, base, adjustment pools, subtotal, tax,
// total) is rounded to cents, half away from zero, before it is combined with the next term.
package pricing

import (
	"errors"
	"math"

	"translation_backoffice/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// DefaultTaxRate is the GST rate applied to every quote.
const DefaultTaxRate = 0.05

var ErrInvalidTaxRate = errors.New("invalid tax rate")

var hundred = decimal.NewFromInt(100)

// Input is the data one calculation runs over. LineItems must already be filtered to the scope.
type Input struct {
	LineItems      []entities.LineItem
	Certifications []entities.Certification
	Adjustments    []entities.Adjustment
}

// Options selects the pricing variant.
//
// The self-serve variant enables adjustments and quote-level certifications. The HITL variant
// prices line items plus their flat certification amounts only.
type Options struct {
	AdjustmentsEnabled  bool
	QuoteCertifications bool
}

func SelfServeOptions() Options {
	return Options{AdjustmentsEnabled: true, QuoteCertifications: true}
}

func HITLOptions() Options {
	return Options{}
}

// OptionsFor returns the variant used by a quote workflow.
func OptionsFor(w entities.QuoteWorkflow) Options {
	if w == entities.QuoteWorkflowHITL {
		return HITLOptions()
	}
	return SelfServeOptions()
}

type Calculator struct {
	taxRate decimal.Decimal
}

func NewCalculator(taxRate float64) (*Calculator, error) {
	if math.IsNaN(taxRate) || taxRate < 0 || taxRate >= 1 {
		return nil, ErrInvalidTaxRate
	}
	return &Calculator{taxRate: decimal.NewFromFloat(taxRate)}, nil
}

func (c *Calculator) TaxRate() float64 {
	return c.taxRate.InexactFloat64()
}

// Calculate is a pure function of its input; it never fails.
func (c *Calculator) Calculate(in Input, opts Options) entities.TotalsBreakdown {
	translation := decimal.Zero
	lineCertification := decimal.Zero
	for _, li := range in.LineItems {
		translation = translation.Add(num(li.BillablePages).Mul(num(li.EffectiveRate())))
		lineCertification = lineCertification.Add(num(li.CertificationAmount))
	}
	translation = round2(translation)

	certification := lineCertification
	if opts.QuoteCertifications {
		for _, cert := range in.Certifications {
			certification = certification.Add(num(cert.EffectiveAmount()))
		}
	}
	certification = round2(certification)

	base := round2(translation.Add(certification))

	additional := decimal.Zero
	net := decimal.Zero
	if opts.AdjustmentsEnabled {
		additional, net = adjustmentPools(in.Adjustments, base)
	}

	subtotal := round2(base.Add(additional).Add(net))
	tax := round2(subtotal.Mul(c.taxRate))
	total := round2(subtotal.Add(tax))

	return entities.TotalsBreakdown{
		Translation:           translation.InexactFloat64(),
		Certification:         certification.InexactFloat64(),
		AdditionalItems:       additional.InexactFloat64(),
		DiscountsOrSurcharges: net.InexactFloat64(),
		Subtotal:              subtotal.InexactFloat64(),
		Tax:                   tax.InexactFloat64(),
		Total:                 total.InexactFloat64(),
		TaxRate:               c.taxRate.InexactFloat64(),
	}
}

// adjustmentPools returns the additional items total and the signed discount/surcharge total.
// Percentages apply to base (translation + certification).
func adjustmentPools(adjs []entities.Adjustment, base decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	additional := decimal.Zero
	net := decimal.Zero
	for _, a := range adjs {
		switch a.Type {
		case entities.AdjustmentTypeAdditionalItem:
			additional = additional.Add(num(a.Quantity).Mul(num(a.UnitAmount)))
		case entities.AdjustmentTypeDiscount, entities.AdjustmentTypeSurcharge:
			amount := num(a.Value)
			if a.Kind == entities.AdjustmentKindPercentage {
				amount = base.Mul(amount).Div(hundred)
			}
			if a.Type == entities.AdjustmentTypeDiscount {
				amount = amount.Neg()
			}
			net = net.Add(amount)
		}
	}
	return round2(additional), round2(net)
}

// round2 rounds to cents, half away from zero.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// num coerces a stored number; NaN and infinities count as zero.
func num(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

// Round2 exposes the cent rounding used by the calculator for callers that
// compare stored amounts (checkout, reports).
func Round2(v float64) float64 {
	return round2(num(v)).InexactFloat64()
}
