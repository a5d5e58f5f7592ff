package service

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/rental-blocklist/internal/civilid"
	"github.com/MKhiriev/rental-blocklist/internal/logger"
	"github.com/MKhiriev/rental-blocklist/internal/metrics"
	"github.com/MKhiriev/rental-blocklist/internal/quota"
	"github.com/MKhiriev/rental-blocklist/internal/store"
	"github.com/MKhiriev/rental-blocklist/internal/validators"
	"github.com/MKhiriev/rental-blocklist/models"
)

type blocklistFixture struct {
	svc        *blocklistService
	accounts   *store.MemoryAccountRepository
	blocks     *store.MemoryBlocklistRepository
	activities *store.MemoryActivityRepository
	metrics    *metrics.Metrics
}

func newTestBlocklistSvc(t *testing.T) blocklistFixture {
	t.Helper()

	f := blocklistFixture{
		accounts:   store.NewMemoryAccountRepository(),
		blocks:     store.NewMemoryBlocklistRepository(),
		activities: store.NewMemoryActivityRepository(),
		metrics:    metrics.New(prometheus.NewRegistry()),
	}
	activity := NewActivityService(f.activities, f.metrics, logger.Nop())
	f.svc = NewBlocklistService(f.accounts, f.blocks, activity, validators.NewRequestValidator(),
		quota.NewManager(quota.DefaultContributionBonus), f.metrics, logger.Nop()).(*blocklistService)
	f.svc.now = func() time.Time { return fixedNow }

	return f
}

func (f blocklistFixture) createAccount(t *testing.T, username string, role models.Role, remaining *int64) models.Account {
	t.Helper()
	account, err := f.accounts.CreateAccount(context.Background(), models.Account{
		Username:          username,
		Role:              role,
		RemainingSearches: remaining,
	})
	require.NoError(t, err)
	return account
}

func TestAddBlock_CreditsContributor(t *testing.T) {
	f := newTestBlocklistSvc(t)
	ctx := context.Background()
	alice := f.createAccount(t, "alice", models.RoleUser, models.Int64Ptr(2))

	resp, err := f.svc.AddBlock(ctx, alice.AccountID, models.AddBlockRequest{
		CivilID: adultID,
		Name:    "John Doe",
		Reason:  "unpaid damage",
	})
	require.NoError(t, err)

	assert.Equal(t, adultID, resp.Record.CivilID)
	assert.Equal(t, "alice", resp.Record.CreatedBy)
	assert.Equal(t, quota.DefaultContributionBonus, resp.Bonus)
	require.NotNil(t, resp.RemainingSearches)
	assert.Equal(t, int64(7), *resp.RemainingSearches)

	stored, err := f.accounts.FindByID(ctx, alice.AccountID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), *stored.RemainingSearches)

	entries, err := f.activities.List(ctx, models.ActivityFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.ActionAddedBlock, entries[0].Action)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Contributions))
}

func TestAddBlock_AdminGetsNoBonus(t *testing.T) {
	f := newTestBlocklistSvc(t)
	root := f.createAccount(t, "root", models.RoleAdmin, nil)

	resp, err := f.svc.AddBlock(context.Background(), root.AccountID, models.AddBlockRequest{
		CivilID: adultID, Name: "John", Reason: "fraud",
	})
	require.NoError(t, err)
	assert.Zero(t, resp.Bonus)
	assert.Nil(t, resp.RemainingSearches)
}

func TestAddBlock_Duplicate(t *testing.T) {
	f := newTestBlocklistSvc(t)
	ctx := context.Background()
	alice := f.createAccount(t, "alice", models.RoleUser, models.Int64Ptr(2))
	req := models.AddBlockRequest{CivilID: adultID, Name: "John", Reason: "fraud"}

	_, err := f.svc.AddBlock(ctx, alice.AccountID, req)
	require.NoError(t, err)

	_, err = f.svc.AddBlock(ctx, alice.AccountID, req)
	assert.ErrorIs(t, err, store.ErrDuplicateBlock)

	stored, err := f.accounts.FindByID(ctx, alice.AccountID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), *stored.RemainingSearches, "a rejected duplicate earns no bonus")
}

func TestAddBlock_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		req     models.AddBlockRequest
		wantErr error
	}{
		{
			name:    "blank name",
			req:     models.AddBlockRequest{CivilID: adultID, Name: "   ", Reason: "fraud"},
			wantErr: validators.ErrInvalidRequest,
		},
		{
			name:    "missing reason",
			req:     models.AddBlockRequest{CivilID: adultID, Name: "John"},
			wantErr: validators.ErrInvalidRequest,
		},
		{
			name:    "impossible date",
			req:     models.AddBlockRequest{CivilID: "295023000000", Name: "John", Reason: "fraud"},
			wantErr: civilid.ErrCalendar,
		},
		{
			name:    "minor",
			req:     models.AddBlockRequest{CivilID: minorID, Name: "John", Reason: "fraud"},
			wantErr: civilid.ErrTooYoung,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestBlocklistSvc(t)
			alice := f.createAccount(t, "alice", models.RoleUser, models.Int64Ptr(2))

			_, err := f.svc.AddBlock(context.Background(), alice.AccountID, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)

			records, err := f.blocks.List(context.Background())
			require.NoError(t, err)
			assert.Empty(t, records)
		})
	}
}

func TestRemoveBlock(t *testing.T) {
	f := newTestBlocklistSvc(t)
	ctx := context.Background()
	root := f.createAccount(t, "root", models.RoleAdmin, nil)

	// stored before the customer aged out: the shape is valid, the age is not
	agedOut := "219010100000"
	_, err := f.blocks.Insert(ctx, models.BlockRecord{CivilID: agedOut, Name: "Old", Reason: "r"})
	require.NoError(t, err)

	require.NoError(t, f.svc.RemoveBlock(ctx, root.AccountID, agedOut))
	assert.ErrorIs(t, f.svc.RemoveBlock(ctx, root.AccountID, agedOut), store.ErrBlockNotFound)
	assert.ErrorIs(t, f.svc.RemoveBlock(ctx, root.AccountID, "12"), validators.ErrInvalidRequest)

	entries, err := f.activities.List(ctx, models.ActivityFilter{Query: "removed"})
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
