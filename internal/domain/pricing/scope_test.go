package pricing

import (
	"testing"
	"time"

	"translation_backoffice/internal/domain/entities"
)

func TestResolveScope(t *testing.T) {
	now := time.Now().UTC()
	items := []entities.LineItem{
		{ID: "a", RunID: "run-1", Source: entities.LineItemSourceAnalysis, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "b", RunID: "run-2", Source: entities.LineItemSourceAnalysis, CreatedAt: now.Add(-time.Hour)},
		{ID: "c", Source: entities.LineItemSourceManual, CreatedAt: now},
	}

	cases := []struct {
		name     string
		quote    entities.Quote
		items    []entities.LineItem
		explicit string
		want     Scope
	}{
		{name: "explicit wins", quote: entities.Quote{ActiveRunID: "run-1"}, items: items, explicit: " run-9 ", want: ExplicitRun("run-9")},
		{name: "active run", quote: entities.Quote{ActiveRunID: "run-1"}, items: items, want: ActiveRun("run-1")},
		{name: "latest run tag", items: items, want: LatestRun("run-2")},
		{name: "manual only", items: items[2:], want: ManualOnly()},
		{name: "no items", want: ManualOnly()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveScope(tc.quote, tc.items, tc.explicit); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestScope_Filter(t *testing.T) {
	items := []entities.LineItem{
		{ID: "a", RunID: "run-1", Source: entities.LineItemSourceAnalysis},
		{ID: "b", RunID: "run-2", Source: entities.LineItemSourceAnalysis},
		{ID: "c", Source: entities.LineItemSourceManual},
	}

	if got := ActiveRun("run-1").Filter(items); len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("unexpected run filter result: %+v", got)
	}
	if got := ManualOnly().Filter(items); len(got) != 1 || got[0].ID != "c" {
		t.Fatalf("unexpected manual filter result: %+v", got)
	}
	if got := AllItems().Filter(items); len(got) != 3 {
		t.Fatalf("expected all items, got %d", len(got))
	}
	if got := LatestRun("missing").Filter(items); len(got) != 0 {
		t.Fatalf("expected nothing for unknown run, got %+v", got)
	}
}

func TestScope_String(t *testing.T) {
	if ManualOnly().String() != "manual_only" || ActiveRun("r1").String() != "active_run:r1" {
		t.Fatalf("unexpected scope strings")
	}
}
