package entities

import "time"

// ActivityLogEntry records an admin action in the back office.
type ActivityLogEntry struct {
	ID         string         `json:"id"`
	AdminID    string         `json:"admin_id"`
	ActionType string         `json:"action_type"`
	TargetType string         `json:"target_type"`
	TargetID   string         `json:"target_id,omitempty"`
	Details    map[string]any `json:"details,omitempty"`
	IPAddress  string         `json:"ip_address,omitempty"`
	UserAgent  string         `json:"user_agent,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

// ActivityLogFilter narrows activity log listings. Zero values mean "any".
type ActivityLogFilter struct {
	AdminID    string
	TargetType string
	TargetID   string
	Since      time.Time
	Limit      int
}
