package entities

// Actor identifies who performs a back office write; it feeds the activity log.
type Actor struct {
	AdminID   string
	Role      string
	IPAddress string
	UserAgent string
}

// Entry builds an activity log entry attributed to the actor.
func (a Actor) Entry(actionType, targetID string, details map[string]any) ActivityLogEntry {
	return ActivityLogEntry{
		AdminID:    a.AdminID,
		ActionType: actionType,
		TargetID:   targetID,
		Details:    details,
		IPAddress:  a.IPAddress,
		UserAgent:  a.UserAgent,
	}
}
