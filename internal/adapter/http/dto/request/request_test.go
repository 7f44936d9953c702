package request

import (
	"testing"

	"translation_backoffice/internal/domain/entities"
)

func TestLineItemRequest_ToInput(t *testing.T) {
	pages := 3.0
	override := 28.5
	r := LineItemRequest{DocumentName: "a.pdf", Source: "analysis", RunID: "run-1", BillablePages: &pages, OverrideRate: &override}

	in := r.ToInput()
	if in.BillablePages != 3 || in.BaseRate != 0 || in.CertificationAmount != 0 {
		t.Fatalf("missing numbers must be zero: %+v", in)
	}
	if in.OverrideRate == nil || *in.OverrideRate != 28.5 || in.Source != entities.LineItemSourceAnalysis {
		t.Fatalf("unexpected input: %+v", in)
	}
}

func TestAdjustmentRequest_ToInput(t *testing.T) {
	v := 10.0
	in := AdjustmentRequest{Type: "discount", Kind: "percentage", Value: &v}.ToInput()
	if in.Type != entities.AdjustmentTypeDiscount || in.Kind != entities.AdjustmentKindPercentage || in.Value != 10 || in.Quantity != 0 {
		t.Fatalf("unexpected input: %+v", in)
	}
}

func TestCreateQuoteRequest_ToInput(t *testing.T) {
	in := CreateQuoteRequest{CustomerName: "Ana", CustomerEmail: "ana@example.com", Workflow: " HITL "}.ToInput()
	if in.Workflow != entities.QuoteWorkflowHITL {
		t.Fatalf("expected hitl workflow, got %q", in.Workflow)
	}
}

func TestSetActiveRunRequest_ResolveRunID(t *testing.T) {
	if got := (SetActiveRunRequest{}).ResolveRunID(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
	id := " run-7 "
	if got := (SetActiveRunRequest{RunID: &id}).ResolveRunID(); got != "run-7" {
		t.Fatalf("expected run-7, got %q", got)
	}
}
