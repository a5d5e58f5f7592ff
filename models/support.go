package models

import "time"

// MessageStatus tracks whether support staff has handled a message.
type MessageStatus string

const (
	StatusUnread  MessageStatus = "unread"
	StatusRead    MessageStatus = "read"
	StatusReplied MessageStatus = "replied"
)

// Priority is the urgency a sender assigned to a support message.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// MessageSource tells guest messages apart from messages sent by logged-in accounts.
type MessageSource string

const (
	SourceGuest   MessageSource = "guest"
	SourceAccount MessageSource = "account"
)

// SupportMessage is a message left in the support inbox, either by an
// anonymous guest or by an authenticated account.
type SupportMessage struct {
	MessageID int64         `json:"id"`
	Source    MessageSource `json:"source"`

	// AccountID is set only for SourceAccount messages.
	AccountID *int64 `json:"account_id,omitempty"`

	Name     string        `json:"name"`
	Email    string        `json:"email,omitempty"`
	Phone    string        `json:"phone,omitempty"`
	Message  string        `json:"message"`
	Priority Priority      `json:"priority"`
	Status   MessageStatus `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the SupportMessage model.
func (m SupportMessage) TableName() string {
	return "support_messages"
}

// SupportFilter narrows a support inbox listing. Empty fields match all.
type SupportFilter struct {
	Status   MessageStatus
	Priority Priority
}

// AutoResponseType classifies the automatic reply sent for a support message.
type AutoResponseType string

const (
	AutoResponseGreeting   AutoResponseType = "greeting"
	AutoResponseHelp       AutoResponseType = "help"
	AutoResponseEscalation AutoResponseType = "escalation"
)

// AutoResponse is the automatic reply returned to the sender of a support message.
type AutoResponse struct {
	Type    AutoResponseType `json:"type"`
	Message string           `json:"message"`
}
