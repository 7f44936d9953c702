package entities

import "time"

type AdjustmentType string

const (
	AdjustmentTypeAdditionalItem AdjustmentType = "additional_item"
	AdjustmentTypeDiscount       AdjustmentType = "discount"
	AdjustmentTypeSurcharge      AdjustmentType = "surcharge"
)

func (t AdjustmentType) Valid() bool {
	switch t {
	case AdjustmentTypeAdditionalItem, AdjustmentTypeDiscount, AdjustmentTypeSurcharge:
		return true
	}
	return false
}

type AdjustmentKind string

const (
	AdjustmentKindFixed      AdjustmentKind = "fixed"
	AdjustmentKindPercentage AdjustmentKind = "percentage"
)

func (k AdjustmentKind) Valid() bool {
	return k == AdjustmentKindFixed || k == AdjustmentKindPercentage
}

// Adjustment is a manual modification of a quote price.
//
//   - additional_item: Quantity x UnitAmount, Kind and Value unused.
//   - discount/surcharge: Kind fixed (Value is an amount) or percentage (Value is 0-100 of the base).
type Adjustment struct {
	ID          string         `json:"id"`
	QuoteID     string         `json:"quote_id"`
	Type        AdjustmentType `json:"type"`
	Kind        AdjustmentKind `json:"kind,omitempty"`
	Description string         `json:"description"`
	Quantity    float64        `json:"quantity,omitempty"`
	UnitAmount  float64        `json:"unit_amount,omitempty"`
	Value       float64        `json:"value,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
