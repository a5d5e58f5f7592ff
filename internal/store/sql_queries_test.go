package store

import (
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/rental-blocklist/models"
)

var (
	dollar   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	question = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func TestBuildDecrementRemainingQuery(t *testing.T) {
	now := time.Now()

	query, args, err := buildDecrementRemainingQuery(dollar, 9, now)
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE accounts SET remaining_searches = remaining_searches - 1, updated_at = $1 "+
			"WHERE account_id = $2 AND remaining_searches > $3 RETURNING remaining_searches",
		query)
	assert.Equal(t, []any{now, int64(9), 0}, args)
}

func TestBuildCreditRemainingQuery(t *testing.T) {
	now := time.Now()

	query, args, err := buildCreditRemainingQuery(question, 9, 5, now)
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE accounts SET remaining_searches = remaining_searches + ?, updated_at = ? "+
			"WHERE account_id = ? RETURNING remaining_searches",
		query)
	assert.Equal(t, []any{int64(5), now, int64(9)}, args)
}

func TestBuildListActivityQuery(t *testing.T) {
	tests := []struct {
		name     string
		filter   models.ActivityFilter
		contains []string
		args     []any
	}{
		{
			name:     "no filter",
			filter:   models.ActivityFilter{},
			contains: []string{"FROM account_activity ORDER BY created_at DESC, activity_id DESC"},
			args:     nil,
		},
		{
			name:   "query and limit",
			filter: models.ActivityFilter{Query: "  Alice ", Limit: 20},
			contains: []string{
				"WHERE (LOWER(username) LIKE $1 OR LOWER(civil_id) LIKE $2 OR LOWER(action) LIKE $3)",
				"LIMIT 20",
			},
			args: []any{"%alice%", "%alice%", "%alice%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListActivityQuery(dollar, tt.filter)
			require.NoError(t, err)
			for _, fragment := range tt.contains {
				assert.Contains(t, query, fragment)
			}
			if tt.args == nil {
				assert.Empty(t, args)
				return
			}
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestBuildListSupportMessagesQuery(t *testing.T) {
	query, args, err := buildListSupportMessagesQuery(dollar, models.SupportFilter{
		Status:   models.StatusUnread,
		Priority: models.PriorityUrgent,
	})
	require.NoError(t, err)

	assert.Contains(t, query, "WHERE status = $1 AND priority = $2")
	assert.Equal(t, []any{"unread", "urgent"}, args)
}

func TestBuildInsertAccountQuery_Returning(t *testing.T) {
	query, args, err := buildInsertAccountQuery(question, models.Account{Username: "alice", Role: models.RoleUser})
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO accounts (username,password_hash,role,")
	assert.Contains(t, query, "RETURNING account_id, username, password_hash")
	assert.Len(t, args, len(accountColumns)-1)
}
