package models

import "time"

// BlockRecord marks a civil identifier as blocked.
// At most one BlockRecord exists per CivilID.
type BlockRecord struct {
	// BlockID is the internal unique identifier of the record.
	BlockID int64 `json:"id"`

	// CivilID is the 12-digit civil identifier of the blocked customer.
	CivilID string `json:"civil_id"`

	// Name is the display name of the blocked customer.
	Name string `json:"name"`

	// Reason is a free-text explanation of why the customer was blocked.
	Reason string `json:"reason"`

	// CreatedBy is the username of the account that added the record.
	CreatedBy string `json:"created_by"`

	// CreatedAt is the timestamp when the record was added.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the BlockRecord model.
func (b BlockRecord) TableName() string {
	return "blocked_civil_ids"
}

// SearchResult is the outcome of a blocklist lookup: either Found with the
// matching record, or NotFound.
type SearchResult struct {
	Found  bool         `json:"found"`
	Record *BlockRecord `json:"record,omitempty"`
}

// Found builds a SearchResult for a matching record.
func Found(record BlockRecord) SearchResult {
	return SearchResult{Found: true, Record: &record}
}

// NotFound builds a SearchResult for an identifier that is not blocked.
func NotFound() SearchResult {
	return SearchResult{}
}
