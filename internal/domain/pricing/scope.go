package pricing

import (
	"strings"

	"translation_backoffice/internal/domain/entities"
)

// ScopeKind identifies which line items of a quote take part in pricing.
type ScopeKind string

const (
	// ScopeExplicitRun prices the run requested by the caller.
	ScopeExplicitRun ScopeKind = "explicit_run"
	// ScopeActiveRun prices the run pinned on the quote.
	ScopeActiveRun ScopeKind = "active_run"
	// ScopeLatestRun prices the run of the most recently created line item.
	ScopeLatestRun ScopeKind = "latest_run"
	// ScopeManualOnly prices only hand-entered line items.
	ScopeManualOnly ScopeKind = "manual_only"
	// ScopeAllItems prices every line item (HITL workflow).
	ScopeAllItems ScopeKind = "all_items"
)

// Scope is the resolved line item selection for one calculation.
type Scope struct {
	Kind  ScopeKind
	RunID string
}

func ExplicitRun(runID string) Scope { return Scope{Kind: ScopeExplicitRun, RunID: runID} }
func ActiveRun(runID string) Scope { return Scope{Kind: ScopeActiveRun, RunID: runID} }
func LatestRun(runID string) Scope { return Scope{Kind: ScopeLatestRun, RunID: runID} }
func ManualOnly() Scope { return Scope{Kind: ScopeManualOnly} }
func AllItems() Scope { return Scope{Kind: ScopeAllItems} }

// ResolveScope picks the line item selection once per calculation:
// explicit run, else the quote's active run, else the run of the newest run-tagged item,
// else manual items only.
func ResolveScope(quote entities.Quote, items []entities.LineItem, explicitRunID string) Scope {
	if id := strings.TrimSpace(explicitRunID); id != "" {
		return ExplicitRun(id)
	}
	if id := strings.TrimSpace(quote.ActiveRunID); id != "" {
		return ActiveRun(id)
	}
	if id := latestRunID(items); id != "" {
		return LatestRun(id)
	}
	return ManualOnly()
}

func latestRunID(items []entities.LineItem) string {
	var latest *entities.LineItem
	for i := range items {
		it := &items[i]
		if strings.TrimSpace(it.RunID) == "" {
			continue
		}
		if latest == nil || it.CreatedAt.After(latest.CreatedAt) {
			latest = it
		}
	}
	if latest == nil {
		return ""
	}
	return strings.TrimSpace(latest.RunID)
}

// Filter returns the items that belong to the scope, preserving order.
func (s Scope) Filter(items []entities.LineItem) []entities.LineItem {
	out := make([]entities.LineItem, 0, len(items))
	for _, it := range items {
		if s.Includes(it) {
			out = append(out, it)
		}
	}
	return out
}

func (s Scope) Includes(it entities.LineItem) bool {
	switch s.Kind {
	case ScopeAllItems:
		return true
	case ScopeManualOnly:
		return it.IsManual()
	default:
		return strings.TrimSpace(it.RunID) == s.RunID
	}
}

func (s Scope) String() string {
	if s.RunID == "" {
		return string(s.Kind)
	}
	return string(s.Kind) + ":" + s.RunID
}
