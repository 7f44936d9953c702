package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"time"

	"translation_backoffice/internal/domain/entities"
	"translation_backoffice/internal/infrastructure/metrics"
	"translation_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

const (
	maxActivityListLimit   = 500
	maxActivityExportLimit = 10000
	activitySheetName      = "activity"
)

var ErrInvalidActivityFilter = errors.New("invalid activity log filter")

// targetTypePrefixes maps action type prefixes to the target type recorded with the entry.
// Longer prefixes must come first.
var targetTypePrefixes = []struct {
	prefix     string
	targetType string
}{
	{"certification_", "certification"},
	{"adjustment_", "adjustment"},
	{"line_item_", "line_item"},
	{"customer_", "customer"},
	{"message_", "message"},
	{"payment_", "payment"},
	{"admin_", "admin"},
	{"order_", "order"},
	{"quote_", "quote"},
}

// InferTargetType derives the target type from the action type prefix ("order_created" -> "order").
// Unknown prefixes map to "system".
func InferTargetType(actionType string) string {
	a := strings.ToLower(strings.TrimSpace(actionType))
	for _, p := range targetTypePrefixes {
		if strings.HasPrefix(a, p.prefix) {
			return p.targetType
		}
	}
	return "system"
}

type IActivityLogUseCase interface {
	interfaces.IActivityLogger
	List(ctx context.Context, f entities.ActivityLogFilter) ([]entities.ActivityLogEntry, error)
	Export(ctx context.Context, f entities.ActivityLogFilter, w io.Writer) error
}

type ActivityLogUseCase struct {
	repo interfaces.IActivityLogRepository
	now  func() time.Time
	log  zerolog.Logger
}

var _ IActivityLogUseCase = (*ActivityLogUseCase)(nil)

func NewActivityLogUseCase(repo interfaces.IActivityLogRepository) *ActivityLogUseCase {
	return &ActivityLogUseCase{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
		log:  log.With().Str("component", "activity").Str("layer", "usecase").Logger(),
	}
}

// Log writes e to the activity log, falling back once to the legacy table.
// Failures are logged and reported as false; they never reach the caller.
func (u *ActivityLogUseCase) Log(ctx context.Context, e entities.ActivityLogEntry) bool {
	e.AdminID = strings.TrimSpace(e.AdminID)
	e.ActionType = strings.TrimSpace(e.ActionType)
	if e.ActionType == "" || u.repo == nil {
		metrics.ActivityLogWrites.WithLabelValues("dropped").Inc()
		u.log.Warn().Str("admin_id", e.AdminID).Msg("activity entry dropped: missing action type or repository")
		return false
	}
	if strings.TrimSpace(e.TargetType) == "" {
		e.TargetType = InferTargetType(e.ActionType)
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = u.now()
	}

	err := u.repo.Insert(ctx, e)
	if err == nil {
		metrics.ActivityLogWrites.WithLabelValues("primary").Inc()
		return true
	}
	u.log.Warn().Err(err).Str("action_type", e.ActionType).Msg("activity insert failed, trying legacy table")

	if err := u.repo.InsertLegacy(ctx, e); err != nil {
		metrics.ActivityLogWrites.WithLabelValues("dropped").Inc()
		u.log.Error().Err(err).Str("action_type", e.ActionType).Str("admin_id", e.AdminID).Msg("activity entry dropped")
		return false
	}
	metrics.ActivityLogWrites.WithLabelValues("fallback").Inc()
	return true
}

func (u *ActivityLogUseCase) List(ctx context.Context, f entities.ActivityLogFilter) ([]entities.ActivityLogEntry, error) {
	if f.Limit < 0 || f.Limit > maxActivityListLimit {
		return nil, ErrInvalidActivityFilter
	}
	return u.repo.List(ctx, normalizeActivityFilter(f))
}

// Export writes the filtered activity log as an XLSX workbook with one row per entry.
func (u *ActivityLogUseCase) Export(ctx context.Context, f entities.ActivityLogFilter, w io.Writer) error {
	f = normalizeActivityFilter(f)
	if f.Limit <= 0 || f.Limit > maxActivityExportLimit {
		f.Limit = maxActivityExportLimit
	}
	entries, err := u.repo.List(ctx, f)
	if err != nil {
		return err
	}

	x := excelize.NewFile()
	defer func() { _ = x.Close() }()

	if err := x.SetSheetName(x.GetSheetName(x.GetActiveSheetIndex()), activitySheetName); err != nil {
		return err
	}
	header := []any{"created_at", "admin_id", "action_type", "target_type", "target_id", "ip_address", "details"}
	if err := x.SetSheetRow(activitySheetName, "A1", &header); err != nil {
		return err
	}

	for i, e := range entries {
		details := ""
		if len(e.Details) > 0 {
			if b, err := json.Marshal(e.Details); err == nil {
				details = string(b)
			}
		}
		row := []any{
			e.CreatedAt.UTC().Format(time.RFC3339),
			e.AdminID,
			e.ActionType,
			e.TargetType,
			e.TargetID,
			e.IPAddress,
			details,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := x.SetSheetRow(activitySheetName, cell, &row); err != nil {
			return err
		}
	}
	if err := x.SetColWidth(activitySheetName, "A", "E", 22); err != nil {
		return err
	}

	u.log.Info().Int("rows", len(entries)).Msg("activity log exported")
	return x.Write(w)
}

func normalizeActivityFilter(f entities.ActivityLogFilter) entities.ActivityLogFilter {
	f.AdminID = strings.TrimSpace(f.AdminID)
	f.TargetType = strings.ToLower(strings.TrimSpace(f.TargetType))
	f.TargetID = strings.TrimSpace(f.TargetID)
	return f
}
