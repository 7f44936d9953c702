package request

import (
	"translation_backoffice/internal/domain/entities"
	"translation_backoffice/internal/usecase"
)

// Numeric fields are pointers so a missing value can be told apart from zero; missing
// numbers count as 0.

type LineItemRequest struct {
	FileID              string   `json:"file_id"`
	DocumentName        string   `json:"document_name"`
	RunID               string   `json:"run_id"`
	Source              string   `json:"source"`
	BillablePages       *float64 `json:"billable_pages"`
	BaseRate            *float64 `json:"base_rate"`
	OverrideRate        *float64 `json:"override_rate"`
	OverrideReason      string   `json:"override_reason"`
	CertificationAmount *float64 `json:"certification_amount"`
}

func (r LineItemRequest) ToInput() usecase.LineItemInput {
	return usecase.LineItemInput{
		FileID:              r.FileID,
		DocumentName:        r.DocumentName,
		RunID:               r.RunID,
		Source:              entities.LineItemSource(r.Source),
		BillablePages:       valueOrZero(r.BillablePages),
		BaseRate:            valueOrZero(r.BaseRate),
		OverrideRate:        r.OverrideRate,
		OverrideReason:      r.OverrideReason,
		CertificationAmount: valueOrZero(r.CertificationAmount),
	}
}

type CertificationRequest struct {
	LineItemID   string   `json:"line_item_id"`
	TypeCode     string   `json:"type_code" binding:"required"`
	Name         string   `json:"name"`
	DefaultRate  *float64 `json:"default_rate"`
	OverrideRate *float64 `json:"override_rate"`
}

func (r CertificationRequest) ToInput() usecase.CertificationInput {
	return usecase.CertificationInput{
		LineItemID:   r.LineItemID,
		TypeCode:     r.TypeCode,
		Name:         r.Name,
		DefaultRate:  valueOrZero(r.DefaultRate),
		OverrideRate: r.OverrideRate,
	}
}

type AdjustmentRequest struct {
	Type        string   `json:"type" binding:"required"`
	Kind        string   `json:"kind"`
	Description string   `json:"description"`
	Quantity    *float64 `json:"quantity"`
	UnitAmount  *float64 `json:"unit_amount"`
	Value       *float64 `json:"value"`
}

func (r AdjustmentRequest) ToInput() usecase.AdjustmentInput {
	return usecase.AdjustmentInput{
		Type:        entities.AdjustmentType(r.Type),
		Kind:        entities.AdjustmentKind(r.Kind),
		Description: r.Description,
		Quantity:    valueOrZero(r.Quantity),
		UnitAmount:  valueOrZero(r.UnitAmount),
		Value:       valueOrZero(r.Value),
	}
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
