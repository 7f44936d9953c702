package response

import (
	"time"

	"translation_backoffice/internal/domain/entities"
)

type LineItemResponse struct {
	ID                  string    `json:"id"`
	QuoteID             string    `json:"quote_id"`
	FileID              string    `json:"file_id,omitempty"`
	DocumentName        string    `json:"document_name"`
	RunID               string    `json:"run_id,omitempty"`
	Source              string    `json:"source"`
	BillablePages       float64   `json:"billable_pages"`
	BaseRate            float64   `json:"base_rate"`
	OverrideRate        *float64  `json:"override_rate,omitempty"`
	OverrideReason      string    `json:"override_reason,omitempty"`
	EffectiveRate       float64   `json:"effective_rate"`
	CertificationAmount float64   `json:"certification_amount"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func FromLineItem(li entities.LineItem) LineItemResponse {
	return LineItemResponse{
		ID:                  li.ID,
		QuoteID:             li.QuoteID,
		FileID:              li.FileID,
		DocumentName:        li.DocumentName,
		RunID:               li.RunID,
		Source:              string(li.Source),
		BillablePages:       li.BillablePages,
		BaseRate:            li.BaseRate,
		OverrideRate:        li.OverrideRate,
		OverrideReason:      li.OverrideReason,
		EffectiveRate:       li.EffectiveRate(),
		CertificationAmount: li.CertificationAmount,
		CreatedAt:           li.CreatedAt,
		UpdatedAt:           li.UpdatedAt,
	}
}

func FromLineItems(items []entities.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, li := range items {
		out = append(out, FromLineItem(li))
	}
	return out
}

type LineItemWriteResponse struct {
	LineItem LineItemResponse `json:"line_item"`
	Totals   TotalsResponse   `json:"totals"`
}

type CertificationResponse struct {
	ID           string    `json:"id"`
	QuoteID      string    `json:"quote_id"`
	LineItemID   string    `json:"line_item_id,omitempty"`
	TypeCode     string    `json:"type_code"`
	Name         string    `json:"name"`
	DefaultRate  float64   `json:"default_rate"`
	OverrideRate *float64  `json:"override_rate,omitempty"`
	Amount       float64   `json:"amount"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromCertification(c entities.Certification) CertificationResponse {
	return CertificationResponse{
		ID:           c.ID,
		QuoteID:      c.QuoteID,
		LineItemID:   c.LineItemID,
		TypeCode:     c.TypeCode,
		Name:         c.Name,
		DefaultRate:  c.DefaultRate,
		OverrideRate: c.OverrideRate,
		Amount:       c.EffectiveAmount(),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func FromCertifications(cs []entities.Certification) []CertificationResponse {
	out := make([]CertificationResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromCertification(c))
	}
	return out
}

type CertificationWriteResponse struct {
	Certification CertificationResponse `json:"certification"`
	Totals        TotalsResponse        `json:"totals"`
}

type AdjustmentResponse struct {
	ID          string    `json:"id"`
	QuoteID     string    `json:"quote_id"`
	Type        string    `json:"type"`
	Kind        string    `json:"kind,omitempty"`
	Description string    `json:"description"`
	Quantity    float64   `json:"quantity,omitempty"`
	UnitAmount  float64   `json:"unit_amount,omitempty"`
	Value       float64   `json:"value,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromAdjustment(a entities.Adjustment) AdjustmentResponse {
	return AdjustmentResponse{
		ID:          a.ID,
		QuoteID:     a.QuoteID,
		Type:        string(a.Type),
		Kind:        string(a.Kind),
		Description: a.Description,
		Quantity:    a.Quantity,
		UnitAmount:  a.UnitAmount,
		Value:       a.Value,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func FromAdjustments(as []entities.Adjustment) []AdjustmentResponse {
	out := make([]AdjustmentResponse, 0, len(as))
	for _, a := range as {
		out = append(out, FromAdjustment(a))
	}
	return out
}

type AdjustmentWriteResponse struct {
	Adjustment AdjustmentResponse `json:"adjustment"`
	Totals     TotalsResponse     `json:"totals"`
}
