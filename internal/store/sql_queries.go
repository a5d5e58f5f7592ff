package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/rental-blocklist/models"
)

const (
	accountsTable  = "accounts"
	blocksTable    = "blocked_civil_ids"
	activityTable  = "account_activity"
	supportTable   = "support_messages"
	returningStart = "RETURNING "
)

var (
	accountColumns = []string{
		"account_id", "username", "password_hash", "role", "search_limit",
		"remaining_searches", "phone_number", "company_name", "created_at", "updated_at",
	}
	blockColumns    = []string{"block_id", "civil_id", "name", "reason", "created_by", "created_at"}
	activityColumns = []string{"activity_id", "username", "action", "civil_id", "created_at"}
	supportColumns  = []string{
		"message_id", "source", "account_id", "name", "email", "phone",
		"message", "priority", "status", "created_at", "updated_at",
	}
)

func returning(columns []string) string {
	return returningStart + strings.Join(columns, ", ")
}

// accounts

func buildInsertAccountQuery(sb sq.StatementBuilderType, a models.Account) (string, []any, error) {
	return sb.Insert(accountsTable).
		Columns(accountColumns[1:]...).
		Values(a.Username, a.PasswordHash, string(a.Role), a.SearchLimit, a.RemainingSearches,
			a.PhoneNumber, a.CompanyName, a.CreatedAt, a.UpdatedAt).
		Suffix(returning(accountColumns)).
		ToSql()
}

func buildSelectAccountQuery(sb sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return sb.Select(accountColumns...).
		From(accountsTable).
		Where(where).
		ToSql()
}

func buildListAccountsQuery(sb sq.StatementBuilderType) (string, []any, error) {
	return sb.Select(accountColumns...).
		From(accountsTable).
		OrderBy("account_id").
		ToSql()
}

func buildDeleteAccountQuery(sb sq.StatementBuilderType, accountID int64) (string, []any, error) {
	return sb.Delete(accountsTable).
		Where(sq.Eq{"account_id": accountID}).
		ToSql()
}

func buildUpdateRemainingQuery(sb sq.StatementBuilderType, accountID int64, remaining *int64, now time.Time) (string, []any, error) {
	return sb.Update(accountsTable).
		Set("remaining_searches", remaining).
		Set("updated_at", now).
		Where(sq.Eq{"account_id": accountID}).
		Suffix(returning(accountColumns)).
		ToSql()
}

func buildUpdateCredentialsQuery(sb sq.StatementBuilderType, accountID int64, username, passwordHash string, now time.Time) (string, []any, error) {
	return sb.Update(accountsTable).
		Set("username", username).
		Set("password_hash", passwordHash).
		Set("updated_at", now).
		Where(sq.Eq{"account_id": accountID}).
		Suffix(returning(accountColumns)).
		ToSql()
}

// buildDecrementRemainingQuery consumes one search only while the counter is
// positive, so concurrent searches can never drive it below zero.
func buildDecrementRemainingQuery(sb sq.StatementBuilderType, accountID int64, now time.Time) (string, []any, error) {
	return sb.Update(accountsTable).
		Set("remaining_searches", sq.Expr("remaining_searches - 1")).
		Set("updated_at", now).
		Where(sq.Eq{"account_id": accountID}).
		Where(sq.Gt{"remaining_searches": 0}).
		Suffix(returning([]string{"remaining_searches"})).
		ToSql()
}

// buildCreditRemainingQuery adds bonus searches. NULL + n stays NULL, so
// unbounded accounts are left unbounded.
func buildCreditRemainingQuery(sb sq.StatementBuilderType, accountID int64, bonus int64, now time.Time) (string, []any, error) {
	return sb.Update(accountsTable).
		Set("remaining_searches", sq.Expr("remaining_searches + ?", bonus)).
		Set("updated_at", now).
		Where(sq.Eq{"account_id": accountID}).
		Suffix(returning([]string{"remaining_searches"})).
		ToSql()
}

// blocklist

func buildFindBlockQuery(sb sq.StatementBuilderType, civilID string) (string, []any, error) {
	return sb.Select(blockColumns...).
		From(blocksTable).
		Where(sq.Eq{"civil_id": civilID}).
		ToSql()
}

func buildInsertBlockQuery(sb sq.StatementBuilderType, b models.BlockRecord) (string, []any, error) {
	return sb.Insert(blocksTable).
		Columns(blockColumns[1:]...).
		Values(b.CivilID, b.Name, b.Reason, b.CreatedBy, b.CreatedAt).
		Suffix(returning(blockColumns)).
		ToSql()
}

func buildDeleteBlockQuery(sb sq.StatementBuilderType, civilID string) (string, []any, error) {
	return sb.Delete(blocksTable).
		Where(sq.Eq{"civil_id": civilID}).
		ToSql()
}

func buildListBlocksQuery(sb sq.StatementBuilderType) (string, []any, error) {
	return sb.Select(blockColumns...).
		From(blocksTable).
		OrderBy("created_at DESC", "block_id DESC").
		ToSql()
}

// activity

func buildInsertActivityQuery(sb sq.StatementBuilderType, a models.Activity) (string, []any, error) {
	return sb.Insert(activityTable).
		Columns(activityColumns[1:]...).
		Values(a.Username, string(a.Action), a.CivilID, a.CreatedAt).
		ToSql()
}

func buildListActivityQuery(sb sq.StatementBuilderType, filter models.ActivityFilter) (string, []any, error) {
	query := sb.Select(activityColumns...).
		From(activityTable).
		OrderBy("created_at DESC", "activity_id DESC")

	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		query = query.Where(sq.Or{
			sq.Like{"LOWER(username)": pattern},
			sq.Like{"LOWER(civil_id)": pattern},
			sq.Like{"LOWER(action)": pattern},
		})
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	return query.ToSql()
}

func buildPruneActivityQuery(sb sq.StatementBuilderType, before time.Time) (string, []any, error) {
	return sb.Delete(activityTable).
		Where(sq.Lt{"created_at": before}).
		ToSql()
}

// support

func buildInsertSupportMessageQuery(sb sq.StatementBuilderType, m models.SupportMessage) (string, []any, error) {
	return sb.Insert(supportTable).
		Columns(supportColumns[1:]...).
		Values(string(m.Source), m.AccountID, m.Name, m.Email, m.Phone, m.Message,
			string(m.Priority), string(m.Status), m.CreatedAt, m.UpdatedAt).
		Suffix(returning(supportColumns)).
		ToSql()
}

func buildListSupportMessagesQuery(sb sq.StatementBuilderType, filter models.SupportFilter) (string, []any, error) {
	query := sb.Select(supportColumns...).
		From(supportTable).
		OrderBy("created_at DESC", "message_id DESC")

	if filter.Status != "" {
		query = query.Where(sq.Eq{"status": string(filter.Status)})
	}
	if filter.Priority != "" {
		query = query.Where(sq.Eq{"priority": string(filter.Priority)})
	}

	return query.ToSql()
}

func buildUpdateSupportStatusQuery(sb sq.StatementBuilderType, messageID int64, status models.MessageStatus, now time.Time) (string, []any, error) {
	return sb.Update(supportTable).
		Set("status", string(status)).
		Set("updated_at", now).
		Where(sq.Eq{"message_id": messageID}).
		Suffix(returning(supportColumns)).
		ToSql()
}
