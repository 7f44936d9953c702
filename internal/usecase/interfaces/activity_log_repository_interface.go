package interfaces

import (
	"context"
	"translation_backoffice/internal/domain/entities"
)

// IActivityLogRepository abstracts the relational activity log.
//
// InsertLegacy writes to the older admin_activity_log table shape and is only used
// when Insert fails.
type IActivityLogRepository interface {
	Insert(ctx context.Context, e entities.ActivityLogEntry) error
	InsertLegacy(ctx context.Context, e entities.ActivityLogEntry) error
	List(ctx context.Context, f entities.ActivityLogFilter) ([]entities.ActivityLogEntry, error)
}
