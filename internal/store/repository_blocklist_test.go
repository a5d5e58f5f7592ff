package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/rental-blocklist/internal/logger"
	"github.com/MKhiriev/rental-blocklist/models"
)

func newTestBlocklistRepo(t *testing.T) (*blocklistRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &blocklistRepository{
		db:     db,
		logger: logger.Nop(),
		now:    func() time.Time { return fixedNow },
	}, mock
}

func TestBlocklist_FindByIdentifier(t *testing.T) {
	repo, mock := newTestBlocklistRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM blocked_civil_ids WHERE civil_id = $1")).
		WithArgs("290010112345").
		WillReturnRows(sqlmock.NewRows(blockColumns).
			AddRow(3, "290010112345", "John", "unpaid damage", "alice", fixedNow))
	mock.ExpectQuery(regexp.QuoteMeta("FROM blocked_civil_ids WHERE civil_id = $1")).
		WithArgs("300010112345").
		WillReturnRows(sqlmock.NewRows(blockColumns))

	found, err := repo.FindByIdentifier(context.Background(), "290010112345")
	require.NoError(t, err)
	assert.True(t, found.Found)
	require.NotNil(t, found.Record)
	assert.Equal(t, "unpaid damage", found.Record.Reason)

	missing, err := repo.FindByIdentifier(context.Background(), "300010112345")
	require.NoError(t, err)
	assert.Equal(t, models.NotFound(), missing)
}

func TestBlocklist_Insert(t *testing.T) {
	repo, mock := newTestBlocklistRepo(t)

	record := models.BlockRecord{CivilID: "290010112345", Name: "John", Reason: "fraud", CreatedBy: "alice"}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO blocked_civil_ids (civil_id,name,reason,created_by,created_at)")).
		WithArgs("290010112345", "John", "fraud", "alice", fixedNow).
		WillReturnRows(sqlmock.NewRows(blockColumns).
			AddRow(1, "290010112345", "John", "fraud", "alice", fixedNow))

	created, err := repo.Insert(context.Background(), record)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.BlockID)
	assert.Equal(t, fixedNow, created.CreatedAt)
}

func TestBlocklist_InsertDuplicate(t *testing.T) {
	repo, mock := newTestBlocklistRepo(t)

	mock.ExpectQuery("INSERT INTO blocked_civil_ids").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.Insert(context.Background(), models.BlockRecord{CivilID: "290010112345"})
	assert.ErrorIs(t, err, ErrDuplicateBlock)
}

func TestBlocklist_Delete(t *testing.T) {
	repo, mock := newTestBlocklistRepo(t)

	mock.ExpectExec("DELETE FROM blocked_civil_ids").
		WithArgs("290010112345").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM blocked_civil_ids").
		WithArgs("290010112345").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Delete(context.Background(), "290010112345"))
	assert.ErrorIs(t, repo.Delete(context.Background(), "290010112345"), ErrBlockNotFound)
}

func TestBlocklist_ListNewestFirst(t *testing.T) {
	repo, mock := newTestBlocklistRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC, block_id DESC")).
		WillReturnRows(sqlmock.NewRows(blockColumns).
			AddRow(2, "300010112345", "B", "r", "alice", fixedNow).
			AddRow(1, "290010112345", "A", "r", "alice", fixedNow.Add(-time.Hour)))

	records, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, int64(2), records[0].BlockID)
}
