package request

import (
	"strings"

	"translation_backoffice/internal/domain/entities"
	"translation_backoffice/internal/usecase"
)

type CreateQuoteRequest struct {
	CustomerName   string `json:"customer_name" binding:"required"`
	CustomerEmail  string `json:"customer_email" binding:"required,email"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
	Workflow       string `json:"workflow"`
}

func (r CreateQuoteRequest) ToInput() usecase.CreateQuoteInput {
	return usecase.CreateQuoteInput{
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		SourceLang:    r.SourceLanguage,
		TargetLang:    r.TargetLanguage,
		Workflow:      entities.QuoteWorkflow(strings.ToLower(strings.TrimSpace(r.Workflow))),
	}
}

type UpdateQuoteStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SetActiveRunRequest pins a run; a null or empty run_id goes back to automatic resolution.
type SetActiveRunRequest struct {
	RunID *string `json:"run_id"`
}

func (r SetActiveRunRequest) ResolveRunID() string {
	if r.RunID == nil {
		return ""
	}
	return strings.TrimSpace(*r.RunID)
}
