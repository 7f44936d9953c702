package response

import (
	"time"

	"translation_backoffice/internal/domain/entities"
)

type ActivityResponse struct {
	ID         string         `json:"id"`
	AdminID    string         `json:"admin_id"`
	ActionType string         `json:"action_type"`
	TargetType string         `json:"target_type"`
	TargetID   string         `json:"target_id,omitempty"`
	Details    map[string]any `json:"details,omitempty"`
	IPAddress  string         `json:"ip_address,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

func FromActivity(es []entities.ActivityLogEntry) []ActivityResponse {
	out := make([]ActivityResponse, 0, len(es))
	for _, e := range es {
		out = append(out, ActivityResponse{
			ID:         e.ID,
			AdminID:    e.AdminID,
			ActionType: e.ActionType,
			TargetType: e.TargetType,
			TargetID:   e.TargetID,
			Details:    e.Details,
			IPAddress:  e.IPAddress,
			CreatedAt:  e.CreatedAt,
		})
	}
	return out
}

// PermissionsResponse is the permission matrix of the calling admin.
type PermissionsResponse struct {
	Role        string              `json:"role"`
	Permissions map[string][]string `json:"permissions"`
}
