package interfaces

import (
	"context"
	"translation_backoffice/internal/domain/entities"
)

// IActivityLogger records admin actions on a best-effort basis. Log reports whether the
// entry was stored and never returns an error to the caller.
type IActivityLogger interface {
	Log(ctx context.Context, e entities.ActivityLogEntry) bool
}
