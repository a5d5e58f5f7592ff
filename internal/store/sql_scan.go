package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/rental-blocklist/models"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// timestamp scans time columns from both drivers. go-sqlite3 only converts
// columns with a declared DATETIME type, RETURNING columns arrive as text.
type timestamp struct {
	t *time.Time
}

func (ts timestamp) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*ts.t = v.UTC()
		return nil
	case string:
		return ts.parse(v)
	case []byte:
		return ts.parse(string(v))
	case nil:
		*ts.t = time.Time{}
		return nil
	default:
		return fmt.Errorf("unsupported timestamp type %T", src)
	}
}

func (ts timestamp) parse(s string) error {
	s = strings.TrimSuffix(s, "Z")
	for _, layout := range sqlite3.SQLiteTimestampFormats {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			*ts.t = t.UTC()
			return nil
		}
	}

	return fmt.Errorf("cannot parse timestamp %q", s)
}

func int64Ptr(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	return models.Int64Ptr(n.Int64)
}

func scanAccount(row rowScanner) (models.Account, error) {
	var (
		account               models.Account
		role                  string
		searchLimit, remained sql.NullInt64
	)

	err := row.Scan(
		&account.AccountID,
		&account.Username,
		&account.PasswordHash,
		&role,
		&searchLimit,
		&remained,
		&account.PhoneNumber,
		&account.CompanyName,
		timestamp{&account.CreatedAt},
		timestamp{&account.UpdatedAt},
	)
	if err != nil {
		return models.Account{}, err
	}

	account.Role = models.Role(role)
	account.SearchLimit = int64Ptr(searchLimit)
	account.RemainingSearches = int64Ptr(remained)

	return account, nil
}

func scanBlock(row rowScanner) (models.BlockRecord, error) {
	var record models.BlockRecord

	err := row.Scan(
		&record.BlockID,
		&record.CivilID,
		&record.Name,
		&record.Reason,
		&record.CreatedBy,
		timestamp{&record.CreatedAt},
	)

	return record, err
}

func scanActivity(row rowScanner) (models.Activity, error) {
	var (
		activity models.Activity
		action   string
	)

	err := row.Scan(
		&activity.ActivityID,
		&activity.Username,
		&action,
		&activity.CivilID,
		timestamp{&activity.CreatedAt},
	)
	activity.Action = models.Action(action)

	return activity, err
}

func scanSupportMessage(row rowScanner) (models.SupportMessage, error) {
	var (
		message                  models.SupportMessage
		source, priority, status string
		accountID                sql.NullInt64
	)

	err := row.Scan(
		&message.MessageID,
		&source,
		&accountID,
		&message.Name,
		&message.Email,
		&message.Phone,
		&message.Message,
		&priority,
		&status,
		timestamp{&message.CreatedAt},
		timestamp{&message.UpdatedAt},
	)
	if err != nil {
		return models.SupportMessage{}, err
	}

	message.Source = models.MessageSource(source)
	message.AccountID = int64Ptr(accountID)
	message.Priority = models.Priority(priority)
	message.Status = models.MessageStatus(status)

	return message, nil
}
