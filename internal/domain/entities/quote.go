package entities

import "time"

// QuoteStatus represents the lifecycle of a translation quote.
//
// Happy path: draft -> under_review -> sent -> accepted -> converted.
// Any non-terminal quote may be abandoned or expire.
type QuoteStatus string

const (
	QuoteStatusDraft       QuoteStatus = "draft"
	QuoteStatusUnderReview QuoteStatus = "under_review"
	QuoteStatusSent        QuoteStatus = "sent"
	QuoteStatusAccepted    QuoteStatus = "accepted"
	QuoteStatusConverted   QuoteStatus = "converted"
	QuoteStatusAbandoned   QuoteStatus = "abandoned"
	QuoteStatusExpired     QuoteStatus = "expired"
)

var quoteTransitions = map[QuoteStatus][]QuoteStatus{
	QuoteStatusDraft:       {QuoteStatusUnderReview, QuoteStatusSent},
	QuoteStatusUnderReview: {QuoteStatusDraft, QuoteStatusSent},
	QuoteStatusSent:        {QuoteStatusUnderReview, QuoteStatusAccepted},
	QuoteStatusAccepted:    {QuoteStatusConverted},
}

func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteStatusDraft, QuoteStatusUnderReview, QuoteStatusSent, QuoteStatusAccepted,
		QuoteStatusConverted, QuoteStatusAbandoned, QuoteStatusExpired:
		return true
	}
	return false
}

// Terminal reports whether no further transitions (and no pricing writes) are allowed.
func (s QuoteStatus) Terminal() bool {
	return s == QuoteStatusConverted || s == QuoteStatusAbandoned || s == QuoteStatusExpired
}

// QuoteWorkflow selects the pricing variant used for a quote.
type QuoteWorkflow string

const (
	// QuoteWorkflowSelfServe quotes are priced from analysis runs plus manual adjustments.
	QuoteWorkflowSelfServe QuoteWorkflow = "self_serve"
	// QuoteWorkflowHITL quotes are completed by an admin (human in the loop); no adjustments.
	QuoteWorkflowHITL QuoteWorkflow = "hitl"
)

func (w QuoteWorkflow) Valid() bool {
	return w == QuoteWorkflowSelfServe || w == QuoteWorkflowHITL
}

// Quote is a priced estimate for a translation job, prior to becoming a paid order.
//
// Storage model (DynamoDB):
//   - PK: id
//
// ActiveRunID pins the analysis run used for pricing; empty means "resolve at calculation time".
type Quote struct {
	ID            string        `json:"id"`
	QuoteNumber   string        `json:"quote_number"`
	CustomerName  string        `json:"customer_name"`
	CustomerEmail string        `json:"customer_email"`
	SourceLang    string        `json:"source_language"`
	TargetLang    string        `json:"target_language"`
	Status        QuoteStatus   `json:"status"`
	Workflow      QuoteWorkflow `json:"workflow"`
	ActiveRunID   string        `json:"active_run_id,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// CanTransitionTo reports whether the quote may move to next.
func (q Quote) CanTransitionTo(next QuoteStatus) bool {
	if !next.Valid() || q.Status.Terminal() || q.Status == next {
		return false
	}
	if next == QuoteStatusAbandoned || next == QuoteStatusExpired {
		return true
	}
	for _, allowed := range quoteTransitions[q.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}
