package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/rental-blocklist/internal/quota"
	"github.com/MKhiriev/rental-blocklist/models"
)

// MemoryAccountRepository is an in-process [AccountRepository]. Every method
// holds the mutex for its whole read-modify-write, which gives it the same
// atomicity as the conditional SQL updates.
type MemoryAccountRepository struct {
	mu       sync.Mutex
	nextID   int64
	accounts map[int64]models.Account
	now      func() time.Time
}

func NewMemoryAccountRepository() *MemoryAccountRepository {
	return &MemoryAccountRepository{
		accounts: make(map[int64]models.Account),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (m *MemoryAccountRepository) CreateAccount(_ context.Context, account models.Account) (models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byUsername(account.Username); ok {
		return models.Account{}, ErrLoginAlreadyExists
	}

	m.nextID++
	now := m.now()
	account.AccountID = m.nextID
	account.CreatedAt, account.UpdatedAt = now, now
	account.SearchLimit = clonePtr(account.SearchLimit)
	account.RemainingSearches = clonePtr(account.RemainingSearches)
	m.accounts[account.AccountID] = account

	return cloneAccount(account), nil
}

func (m *MemoryAccountRepository) FindByID(_ context.Context, accountID int64) (models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	account, ok := m.accounts[accountID]
	if !ok {
		return models.Account{}, ErrNoAccountWasFound
	}

	return cloneAccount(account), nil
}

func (m *MemoryAccountRepository) FindByUsername(_ context.Context, username string) (models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	account, ok := m.byUsername(username)
	if !ok {
		return models.Account{}, ErrNoAccountWasFound
	}

	return cloneAccount(account), nil
}

func (m *MemoryAccountRepository) ListAccounts(_ context.Context) ([]models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	accounts := make([]models.Account, 0, len(m.accounts))
	for _, account := range m.accounts {
		accounts = append(accounts, cloneAccount(account))
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].AccountID < accounts[j].AccountID })

	return accounts, nil
}

func (m *MemoryAccountRepository) DeleteAccount(_ context.Context, accountID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.accounts[accountID]; !ok {
		return ErrNoAccountWasFound
	}
	delete(m.accounts, accountID)

	return nil
}

func (m *MemoryAccountRepository) UpdateRemaining(_ context.Context, accountID int64, remaining *int64) (models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	account, ok := m.accounts[accountID]
	if !ok {
		return models.Account{}, ErrNoAccountWasFound
	}
	account.RemainingSearches = clonePtr(remaining)
	account.UpdatedAt = m.now()
	m.accounts[accountID] = account

	return cloneAccount(account), nil
}

func (m *MemoryAccountRepository) UpdateCredentials(_ context.Context, accountID int64, username, passwordHash string) (models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	account, ok := m.accounts[accountID]
	if !ok {
		return models.Account{}, ErrNoAccountWasFound
	}
	if other, taken := m.byUsername(username); taken && other.AccountID != accountID {
		return models.Account{}, ErrLoginAlreadyExists
	}
	account.Username = username
	account.PasswordHash = passwordHash
	account.UpdatedAt = m.now()
	m.accounts[accountID] = account

	return cloneAccount(account), nil
}

func (m *MemoryAccountRepository) DecrementRemainingIfPositive(_ context.Context, accountID int64) (*int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	account, ok := m.accounts[accountID]
	if !ok {
		return nil, ErrNoAccountWasFound
	}

	remaining, err := quota.TrySearch(account.RemainingSearches)
	if err != nil {
		return clonePtr(remaining), err
	}
	account.RemainingSearches = remaining
	account.UpdatedAt = m.now()
	m.accounts[accountID] = account

	return clonePtr(remaining), nil
}

func (m *MemoryAccountRepository) CreditRemaining(_ context.Context, accountID int64, bonus int64) (*int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	account, ok := m.accounts[accountID]
	if !ok {
		return nil, ErrNoAccountWasFound
	}
	account.RemainingSearches = quota.CreditForContribution(account.RemainingSearches, bonus)
	account.UpdatedAt = m.now()
	m.accounts[accountID] = account

	return clonePtr(account.RemainingSearches), nil
}

func (m *MemoryAccountRepository) byUsername(username string) (models.Account, bool) {
	for _, account := range m.accounts {
		if account.Username == username {
			return account, true
		}
	}
	return models.Account{}, false
}

// MemoryBlocklistRepository is an in-process [BlocklistRepository].
type MemoryBlocklistRepository struct {
	mu      sync.RWMutex
	nextID  int64
	records map[string]models.BlockRecord
	now     func() time.Time
}

func NewMemoryBlocklistRepository() *MemoryBlocklistRepository {
	return &MemoryBlocklistRepository{
		records: make(map[string]models.BlockRecord),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (m *MemoryBlocklistRepository) FindByIdentifier(_ context.Context, civilID string) (models.SearchResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.records[civilID]
	if !ok {
		return models.NotFound(), nil
	}

	return models.Found(record), nil
}

func (m *MemoryBlocklistRepository) Insert(_ context.Context, record models.BlockRecord) (models.BlockRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[record.CivilID]; ok {
		return models.BlockRecord{}, ErrDuplicateBlock
	}

	m.nextID++
	record.BlockID = m.nextID
	if record.CreatedAt.IsZero() {
		record.CreatedAt = m.now()
	}
	m.records[record.CivilID] = record

	return record, nil
}

func (m *MemoryBlocklistRepository) Delete(_ context.Context, civilID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[civilID]; !ok {
		return ErrBlockNotFound
	}
	delete(m.records, civilID)

	return nil
}

func (m *MemoryBlocklistRepository) List(_ context.Context) ([]models.BlockRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]models.BlockRecord, 0, len(m.records))
	for _, record := range m.records {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool {
		if !records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].CreatedAt.After(records[j].CreatedAt)
		}
		return records[i].BlockID > records[j].BlockID
	})

	return records, nil
}

// MemoryActivityRepository is an in-process [ActivityRepository].
type MemoryActivityRepository struct {
	mu         sync.RWMutex
	nextID     int64
	activities []models.Activity
	now        func() time.Time
}

func NewMemoryActivityRepository() *MemoryActivityRepository {
	return &MemoryActivityRepository{
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (m *MemoryActivityRepository) Record(_ context.Context, activity models.Activity) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	activity.ActivityID = m.nextID
	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = m.now()
	}
	m.activities = append(m.activities, activity)

	return nil
}

func (m *MemoryActivityRepository) List(_ context.Context, filter models.ActivityFilter) ([]models.Activity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(filter.Query))
	result := make([]models.Activity, 0)
	for i := len(m.activities) - 1; i >= 0; i-- {
		activity := m.activities[i]
		if q != "" &&
			!strings.Contains(strings.ToLower(activity.Username), q) &&
			!strings.Contains(strings.ToLower(activity.CivilID), q) &&
			!strings.Contains(strings.ToLower(string(activity.Action)), q) {
			continue
		}
		result = append(result, activity)
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })

	if filter.Limit > 0 && uint64(len(result)) > filter.Limit {
		result = result[:filter.Limit]
	}

	return result, nil
}

func (m *MemoryActivityRepository) PruneBefore(_ context.Context, before time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.activities[:0]
	var pruned int64
	for _, activity := range m.activities {
		if activity.CreatedAt.Before(before) {
			pruned++
			continue
		}
		kept = append(kept, activity)
	}
	m.activities = kept

	return pruned, nil
}

// MemorySupportRepository is an in-process [SupportRepository].
type MemorySupportRepository struct {
	mu       sync.RWMutex
	nextID   int64
	messages map[int64]models.SupportMessage
	now      func() time.Time
}

func NewMemorySupportRepository() *MemorySupportRepository {
	return &MemorySupportRepository{
		messages: make(map[int64]models.SupportMessage),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (m *MemorySupportRepository) CreateMessage(_ context.Context, message models.SupportMessage) (models.SupportMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	now := m.now()
	message.MessageID = m.nextID
	message.CreatedAt, message.UpdatedAt = now, now
	message.AccountID = clonePtr(message.AccountID)
	m.messages[message.MessageID] = message

	return message, nil
}

func (m *MemorySupportRepository) ListMessages(_ context.Context, filter models.SupportFilter) ([]models.SupportMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	messages := make([]models.SupportMessage, 0)
	for _, message := range m.messages {
		if filter.Status != "" && message.Status != filter.Status {
			continue
		}
		if filter.Priority != "" && message.Priority != filter.Priority {
			continue
		}
		messages = append(messages, message)
	}
	sort.Slice(messages, func(i, j int) bool { return messages[i].MessageID > messages[j].MessageID })

	return messages, nil
}

func (m *MemorySupportRepository) UpdateStatus(_ context.Context, messageID int64, status models.MessageStatus) (models.SupportMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	message, ok := m.messages[messageID]
	if !ok {
		return models.SupportMessage{}, ErrMessageNotFound
	}
	message.Status = status
	message.UpdatedAt = m.now()
	m.messages[messageID] = message

	return message, nil
}

func clonePtr(v *int64) *int64 {
	if v == nil {
		return nil
	}
	return models.Int64Ptr(*v)
}

func cloneAccount(a models.Account) models.Account {
	a.SearchLimit = clonePtr(a.SearchLimit)
	a.RemainingSearches = clonePtr(a.RemainingSearches)
	return a
}
