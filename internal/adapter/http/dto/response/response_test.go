package response

import (
	"encoding/json"
	"testing"
	"time"

	"translation_backoffice/internal/domain/entities"
)

func TestFromBreakdown_JSONShape(t *testing.T) {
	b := entities.TotalsBreakdown{
		Translation: 325, Certification: 65, AdditionalItems: 25, DiscountsOrSurcharges: -19,
		Subtotal: 396, Tax: 19.8, Total: 415.8, TaxRate: 0.05,
	}
	raw, err := json.Marshal(LineItemWriteResponse{Totals: FromBreakdown(b)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var body map[string]map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	totals := body["totals"]
	for _, key := range []string{"translation", "certification", "additional_items", "discounts_or_surcharges", "subtotal", "tax", "total", "taxRate"} {
		if _, ok := totals[key]; !ok {
			t.Fatalf("missing %q in totals: %s", key, raw)
		}
	}
	if totals["taxRate"] != 0.05 || totals["total"] != 415.8 {
		t.Fatalf("unexpected totals: %v", totals)
	}
}

func TestFromPayment(t *testing.T) {
	now := time.Now().UTC()
	p := entities.Payment{
		ID:                 "pay-1",
		QuoteID:            "q-1",
		Amount:             105,
		Date:               now,
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: json.RawMessage(`{"id":123}`),
		ProviderPayload:    map[string]any{"a": "b"},
	}

	res := FromPayment(p)
	if res.PaymentID != "pay-1" || res.QuoteID != "q-1" || res.Status != "approved" || res.Amount != 105 {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if !res.Date.Equal(now) || res.ProviderPayloadRaw != `{"id":123}` || res.ProviderPayload["a"] != "b" {
		t.Fatalf("unexpected payload fields: %+v", res)
	}
}

func TestFromLineItem_EffectiveRate(t *testing.T) {
	override := 22.0
	res := FromLineItem(entities.LineItem{ID: "li-1", BaseRate: 30, OverrideRate: &override, Source: entities.LineItemSourceManual})
	if res.EffectiveRate != 22 || res.Source != "manual" {
		t.Fatalf("unexpected response: %+v", res)
	}
}
