package models

// RegisterRequest is the body of POST /api/user/register.
type RegisterRequest struct {
	Username    string `json:"username" validate:"required,notblank,min=3,max=64"`
	Password    string `json:"password" validate:"required,min=4,max=128"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=32"`
	CompanyName string `json:"company_name" validate:"omitempty,max=128"`
}

// LoginRequest is the body of POST /api/user/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required,notblank"`
	Password string `json:"password" validate:"required"`
}

// CreateAccountRequest is the body of POST /api/admin/accounts.
type CreateAccountRequest struct {
	Username    string `json:"username" validate:"required,notblank,min=3,max=64"`
	Password    string `json:"password" validate:"required,min=4,max=128"`
	Role        Role   `json:"role" validate:"required,oneof=admin user"`
	SearchLimit *int64 `json:"search_limit" validate:"omitempty,min=0"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=32"`
	CompanyName string `json:"company_name" validate:"omitempty,max=128"`
}

// SetSearchesRequest is the body of PUT /api/admin/accounts/{id}/searches.
type SetSearchesRequest struct {
	RemainingSearches int64 `json:"remaining_searches" validate:"min=0"`
}

// UpdateCredentialsRequest is the body of PUT /api/admin/credentials.
// The current password is re-verified before the change is applied.
type UpdateCredentialsRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewUsername     string `json:"new_username" validate:"required,notblank,min=3,max=64"`
	NewPassword     string `json:"new_password" validate:"required,min=4,max=128"`
}

// SearchRequest is the body of POST /api/blocklist/search.
type SearchRequest struct {
	CivilID string `json:"civil_id"`
}

// SearchResponse is returned by a successful blocklist search.
type SearchResponse struct {
	SearchResult

	// RemainingSearches is the caller's counter after the search.
	// Nil for unbounded accounts.
	RemainingSearches *int64 `json:"remaining_searches"`
}

// AddBlockRequest is the body of POST /api/blocklist.
type AddBlockRequest struct {
	CivilID string `json:"civil_id"`
	Name    string `json:"name" validate:"required,notblank,max=256"`
	Reason  string `json:"reason" validate:"required,notblank,max=2048"`
}

// AddBlockResponse is returned after a block record was added.
type AddBlockResponse struct {
	Record BlockRecord `json:"record"`

	// RemainingSearches is the caller's counter after the contribution bonus.
	RemainingSearches *int64 `json:"remaining_searches"`

	// Bonus is the number of searches credited for the contribution.
	Bonus int64 `json:"bonus"`
}

// GuestMessageRequest is the body of POST /api/support/guest.
type GuestMessageRequest struct {
	Name    string `json:"name" validate:"required,notblank,max=128"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,max=32"`
	Message string `json:"message" validate:"required,notblank,max=4096"`
}

// SupportMessageRequest is the body of POST /api/support/messages.
type SupportMessageRequest struct {
	Message  string   `json:"message" validate:"required,notblank,max=4096"`
	Priority Priority `json:"priority" validate:"omitempty,oneof=low normal high urgent"`
}

// SupportMessageResponse is returned after an account sent a support message.
type SupportMessageResponse struct {
	Message      SupportMessage `json:"message"`
	AutoResponse AutoResponse   `json:"auto_response"`
}

// StatusUpdateRequest is the body of PUT /api/admin/support/messages/{id}/status.
type StatusUpdateRequest struct {
	Status MessageStatus `json:"status" validate:"required,oneof=unread read replied"`
}

// ErrorResponse is the JSON body written for every failed request.
type ErrorResponse struct {
	// Error is a human-readable description of the failure.
	Error string `json:"error"`

	// Code is a stable machine-readable error code (e.g. "too_young").
	Code string `json:"code"`
}

// BlockKey identifies a block record in admin operations.
// Only the shape of the identifier is checked, so records of customers who
// have since become ineligible can still be removed.
type BlockKey struct {
	CivilID string `json:"civil_id" validate:"required,civilid"`
}
