package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"translation_backoffice/internal/domain/entities"
	"translation_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidQuoteInput       = errors.New("invalid quote input")
	ErrInvalidQuoteStatus      = errors.New("invalid quote status")
	ErrInvalidStatusTransition = errors.New("invalid quote status transition")
)

type CreateQuoteInput struct {
	CustomerName  string
	CustomerEmail string
	SourceLang    string
	TargetLang    string
	Workflow      entities.QuoteWorkflow
}

type IQuoteUseCase interface {
	Create(ctx context.Context, actor entities.Actor, in CreateQuoteInput) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context, status string) ([]entities.Quote, error)
	UpdateStatus(ctx context.Context, actor entities.Actor, id string, status string) (entities.Quote, error)
	SetActiveRun(ctx context.Context, actor entities.Actor, id string, runID string) (entities.Quote, entities.QuoteTotals, error)
}

type QuoteUseCase struct {
	repo     interfaces.IQuoteRepository
	totals   interfaces.IQuoteTotalsRecalculator
	activity interfaces.IActivityLogger
	now      func() time.Time
	log      zerolog.Logger
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, totals interfaces.IQuoteTotalsRecalculator, activity interfaces.IActivityLogger) *QuoteUseCase {
	return &QuoteUseCase{
		repo:     repo,
		totals:   totals,
		activity: activity,
		now:      func() time.Time { return time.Now().UTC() },
		log:      log.With().Str("component", "quote").Str("layer", "usecase").Logger(),
	}
}

func (u *QuoteUseCase) Create(ctx context.Context, actor entities.Actor, in CreateQuoteInput) (entities.Quote, error) {
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.CustomerEmail = strings.ToLower(strings.TrimSpace(in.CustomerEmail))
	if in.CustomerName == "" || in.CustomerEmail == "" {
		return entities.Quote{}, fmt.Errorf("%w: customer name and email are required", ErrInvalidQuoteInput)
	}
	if in.Workflow == "" {
		in.Workflow = entities.QuoteWorkflowSelfServe
	}
	if !in.Workflow.Valid() {
		return entities.Quote{}, fmt.Errorf("%w: unknown workflow %q", ErrInvalidQuoteInput, in.Workflow)
	}

	now := u.now()
	q := entities.Quote{
		ID:            uuid.NewString(),
		QuoteNumber:   newQuoteNumber(now),
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		SourceLang:    strings.TrimSpace(in.SourceLang),
		TargetLang:    strings.TrimSpace(in.TargetLang),
		Status:        entities.QuoteStatusDraft,
		Workflow:      in.Workflow,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	created, err := u.repo.Create(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}

	u.log.Info().Str("quote_id", created.ID).Str("quote_number", created.QuoteNumber).Msg("quote created")
	logActivity(ctx, u.activity, actor.Entry("quote_created", created.ID, map[string]any{
		"quote_number": created.QuoteNumber,
		"workflow":     string(created.Workflow),
	}))
	return created, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	return loadQuote(ctx, u.repo, id)
}

func (u *QuoteUseCase) List(ctx context.Context, status string) ([]entities.Quote, error) {
	s := entities.QuoteStatus(strings.ToLower(strings.TrimSpace(status)))
	if s != "" && !s.Valid() {
		return nil, ErrInvalidQuoteStatus
	}
	return u.repo.List(ctx, s)
}

func (u *QuoteUseCase) UpdateStatus(ctx context.Context, actor entities.Actor, id string, status string) (entities.Quote, error) {
	next := entities.QuoteStatus(strings.ToLower(strings.TrimSpace(status)))
	if !next.Valid() {
		return entities.Quote{}, ErrInvalidQuoteStatus
	}
	q, err := loadQuote(ctx, u.repo, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if !q.CanTransitionTo(next) {
		return entities.Quote{}, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, q.Status, next)
	}

	updated, err := u.repo.UpdateStatus(ctx, q.ID, next)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	u.log.Info().Str("quote_id", q.ID).Str("from", string(q.Status)).Str("to", string(next)).Msg("quote status changed")
	logActivity(ctx, u.activity, actor.Entry("quote_status_changed", q.ID, map[string]any{
		"from": string(q.Status),
		"to":   string(next),
	}))
	return updated, nil
}

// SetActiveRun pins (or clears, with an empty runID) the analysis run used for pricing
// and recalculates the totals.
func (u *QuoteUseCase) SetActiveRun(ctx context.Context, actor entities.Actor, id string, runID string) (entities.Quote, entities.QuoteTotals, error) {
	q, err := loadWritableQuote(ctx, u.repo, id)
	if err != nil {
		return entities.Quote{}, entities.QuoteTotals{}, err
	}
	runID = strings.TrimSpace(runID)

	updated, err := u.repo.UpdateActiveRun(ctx, q.ID, runID)
	if err != nil {
		return entities.Quote{}, entities.QuoteTotals{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, entities.QuoteTotals{}, ErrQuoteNotFound
	}

	totals, err := u.totals.Recalculate(ctx, q.ID, "")
	if err != nil {
		return entities.Quote{}, entities.QuoteTotals{}, err
	}

	logActivity(ctx, u.activity, actor.Entry("quote_active_run_changed", q.ID, map[string]any{
		"previous_run_id": q.ActiveRunID,
		"run_id":          runID,
		"total":           totals.Breakdown.Total,
	}))
	return updated, totals, nil
}

// newQuoteNumber formats Q-YYYYMMDD-XXXXXX with six random hex characters.
func newQuoteNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("Q-%s-%s", now.Format("20060102"), suffix)
}
