package models

import "time"

// Action names an auditable account action.
type Action string

const (
	ActionLogin        Action = "login"
	ActionLogout       Action = "logout"
	ActionSearch       Action = "search"
	ActionAddedBlock   Action = "added_block"
	ActionRemovedBlock Action = "removed_block"
)

// Activity is a single entry of the account activity log.
type Activity struct {
	ActivityID int64     `json:"id"`
	Username   string    `json:"username"`
	Action     Action    `json:"action"`
	CivilID    string    `json:"civil_id,omitempty"`
	CreatedAt  time.Time `json:"timestamp"`
}

// TableName returns the name of the database table
// associated with the Activity model.
func (a Activity) TableName() string {
	return "account_activity"
}

// ActivityFilter narrows an activity listing.
type ActivityFilter struct {
	// Query is matched as a case-insensitive substring against the
	// username, civil id and action of each entry. Empty matches all.
	Query string

	// Limit caps the number of returned entries. Zero means no limit.
	Limit uint64
}
