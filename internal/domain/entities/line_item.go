package entities

import "time"

// LineItemSource tells whether a line item came from an analysis run or was typed in by an admin.
type LineItemSource string

const (
	LineItemSourceManual   LineItemSource = "manual"
	LineItemSourceAnalysis LineItemSource = "analysis"
)

// LineItem is one billable unit (usually one source document) of a quote.
//
// Storage model (DynamoDB):
//   - PK: quote_id
//   - SK: id
//
// Monetary representation:
//   - BaseRate and OverrideRate are per billable page.
//   - CertificationAmount is a flat amount attached to this line.
type LineItem struct {
	ID                  string         `json:"id"`
	QuoteID             string         `json:"quote_id"`
	FileID              string         `json:"file_id,omitempty"`
	DocumentName        string         `json:"document_name"`
	RunID               string         `json:"run_id,omitempty"`
	Source              LineItemSource `json:"source"`
	BillablePages       float64        `json:"billable_pages"`
	BaseRate            float64        `json:"base_rate"`
	OverrideRate        *float64       `json:"override_rate,omitempty"`
	OverrideReason      string         `json:"override_reason,omitempty"`
	CertificationAmount float64        `json:"certification_amount"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

// EffectiveRate is the override when present, else the base rate.
func (li LineItem) EffectiveRate() float64 {
	if li.OverrideRate != nil {
		return *li.OverrideRate
	}
	return li.BaseRate
}

// IsManual reports whether the item was entered by hand rather than produced by a run.
func (li LineItem) IsManual() bool {
	return li.Source == LineItemSourceManual
}
