package models

import "time"

// Role distinguishes administrators from regular rental-company accounts.
type Role string

const (
	// RoleAdmin accounts manage other accounts and the blocklist and are not
	// subject to a search quota.
	RoleAdmin Role = "admin"

	// RoleUser accounts search the blocklist against a per-account quota.
	RoleUser Role = "user"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Account represents a user or admin profile.
// Sensitive fields must never be exposed outside trusted boundaries.
type Account struct {
	// AccountID is the internal unique identifier of the account.
	AccountID int64 `json:"id"`

	// Username is the unique login of the account.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the account password.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// Role is either RoleAdmin or RoleUser.
	Role Role `json:"role"`

	// SearchLimit is the quota ceiling assigned at creation.
	// Nil for admin accounts.
	SearchLimit *int64 `json:"search_limit"`

	// RemainingSearches is the number of blocklist lookups the account may
	// still perform. Nil means unbounded.
	RemainingSearches *int64 `json:"remaining_searches"`

	// PhoneNumber is an optional contact number.
	PhoneNumber string `json:"phone_number,omitempty"`

	// CompanyName is the optional rental company the account belongs to.
	CompanyName string `json:"company_name,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last change to the account record.
	UpdatedAt time.Time `json:"updated_at"`
}

// IsAdmin reports whether the account has the admin role.
func (a Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}

// Int64Ptr returns a pointer to v.
func Int64Ptr(v int64) *int64 {
	return &v
}
