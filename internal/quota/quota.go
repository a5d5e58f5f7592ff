// Package quota implements the per-account search quota rules.
//
// All functions are pure: they compute the new remaining-search counter and
// leave persistence to the caller. A nil counter means the account is
// unbounded (admins) and every operation on it succeeds without change.
package quota

import (
	"errors"

	"github.com/MKhiriev/rental-blocklist/models"
)

// DefaultContributionBonus is the number of searches credited for adding a
// new block record.
const DefaultContributionBonus int64 = 5

var ErrQuotaExceeded = errors.New("no remaining searches")

// TrySearch returns the counter after one more search.
// It fails with ErrQuotaExceeded when *remaining <= 0; remaining is never modified.
func TrySearch(remaining *int64) (*int64, error) {
	if remaining == nil {
		return nil, nil
	}
	if *remaining <= 0 {
		return remaining, ErrQuotaExceeded
	}

	next := *remaining - 1
	return &next, nil
}

// CreditForContribution returns remaining + bonus. There is no upper bound.
func CreditForContribution(remaining *int64, bonus int64) *int64 {
	if remaining == nil {
		return nil
	}

	next := *remaining + bonus
	return &next
}

// Manager applies the quota rules to accounts.
// Admin accounts are always treated as unbounded.
type Manager struct {
	bonus int64
}

// NewManager returns a Manager crediting bonus searches per contribution.
// A non-positive bonus falls back to DefaultContributionBonus.
func NewManager(bonus int64) *Manager {
	if bonus <= 0 {
		bonus = DefaultContributionBonus
	}
	return &Manager{bonus: bonus}
}

// Bonus returns the number of searches credited per contribution.
func (m *Manager) Bonus() int64 {
	return m.bonus
}

// TrySearch returns the account's counter after one more search, or
// ErrQuotaExceeded.
func (m *Manager) TrySearch(account models.Account) (*int64, error) {
	if account.IsAdmin() {
		return nil, nil
	}
	return TrySearch(account.RemainingSearches)
}

// CreditForContribution returns the account's counter after the contribution bonus.
func (m *Manager) CreditForContribution(account models.Account) *int64 {
	if account.IsAdmin() {
		return nil
	}
	return CreditForContribution(account.RemainingSearches, m.bonus)
}

// Unbounded reports whether searches by account are not counted.
func (m *Manager) Unbounded(account models.Account) bool {
	return account.IsAdmin() || account.RemainingSearches == nil
}
