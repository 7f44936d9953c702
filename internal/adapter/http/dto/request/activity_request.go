package request

import (
	"time"

	"translation_backoffice/internal/domain/entities"
)

// ActivityQuery is bound from the query string of the activity log endpoints.
type ActivityQuery struct {
	AdminID    string    `form:"admin_id"`
	TargetType string    `form:"target_type"`
	TargetID   string    `form:"target_id"`
	Since      time.Time `form:"since" time_format:"2006-01-02T15:04:05Z07:00"`
	Limit      int       `form:"limit"`
}

func (q ActivityQuery) ToFilter() entities.ActivityLogFilter {
	return entities.ActivityLogFilter{
		AdminID:    q.AdminID,
		TargetType: q.TargetType,
		TargetID:   q.TargetID,
		Since:      q.Since,
		Limit:      q.Limit,
	}
}
