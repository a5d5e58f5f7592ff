package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/rental-blocklist/internal/config"
	"github.com/MKhiriev/rental-blocklist/internal/logger"
	"github.com/MKhiriev/rental-blocklist/internal/mock"
	"github.com/MKhiriev/rental-blocklist/internal/store"
	"github.com/MKhiriev/rental-blocklist/internal/validators"
	"github.com/MKhiriev/rental-blocklist/models"
)

var testAppConfig = config.App{
	TokenSignKey:       "test-sign-key",
	TokenIssuer:        "rental-blocklist-test",
	TokenDuration:      time.Hour,
	Version:            "test",
	DefaultSearchLimit: 1000,
	ContributionBonus:  5,
}

func newTestAuthSvc(t *testing.T) (AuthService, *store.MemoryAccountRepository, *store.MemoryActivityRepository) {
	t.Helper()
	accounts := store.NewMemoryAccountRepository()
	activities := store.NewMemoryActivityRepository()
	activity := NewActivityService(activities, nil, logger.Nop())

	return NewAuthService(accounts, activity, validators.NewRequestValidator(), testAppConfig, logger.Nop()), accounts, activities
}

func TestRegister_DefaultQuota(t *testing.T) {
	svc, _, _ := newTestAuthSvc(t)

	account, err := svc.Register(context.Background(), models.RegisterRequest{
		Username:    "alice",
		Password:    "secret",
		CompanyName: "Acme Rent",
	})
	require.NoError(t, err)

	assert.Equal(t, models.RoleUser, account.Role)
	assert.Equal(t, int64(1000), *account.SearchLimit)
	assert.Equal(t, int64(1000), *account.RemainingSearches)
	assert.NotEqual(t, "secret", account.PasswordHash)
}

func TestRegister_Rejections(t *testing.T) {
	svc, _, _ := newTestAuthSvc(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, models.RegisterRequest{Username: "al", Password: "secret"})
	assert.ErrorIs(t, err, validators.ErrInvalidRequest)

	_, err = svc.Register(ctx, models.RegisterRequest{Username: "alice", Password: "secret"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, models.RegisterRequest{Username: "alice", Password: "other"})
	assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

func TestLogin(t *testing.T) {
	svc, _, activities := newTestAuthSvc(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, models.RegisterRequest{Username: "alice", Password: "secret"})
	require.NoError(t, err)

	account, err := svc.Login(ctx, models.LoginRequest{Username: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, registered.AccountID, account.AccountID)

	_, err = svc.Login(ctx, models.LoginRequest{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrWrongPassword)

	_, err = svc.Login(ctx, models.LoginRequest{Username: "nobody", Password: "secret"})
	assert.ErrorIs(t, err, ErrWrongPassword)

	entries, err := activities.List(ctx, models.ActivityFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 1, "only the successful login is recorded")
	assert.Equal(t, models.ActionLogin, entries[0].Action)

	require.NoError(t, svc.Logout(ctx, account.AccountID))
	entries, err = activities.List(ctx, models.ActivityFilter{Query: "logout"})
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestTokenRoundTrip(t *testing.T) {
	svc, _, _ := newTestAuthSvc(t)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.Account{AccountID: 42, Role: models.RoleAdmin})
	require.NoError(t, err)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
	assert.Equal(t, models.RoleAdmin, parsed.Role)

	_, err = svc.ParseToken(ctx, token.SignedString+"x")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestEnsureAdmin(t *testing.T) {
	svc, accounts, _ := newTestAuthSvc(t)
	ctx := context.Background()

	require.NoError(t, svc.EnsureAdmin(ctx, "", ""))

	require.NoError(t, svc.EnsureAdmin(ctx, "root", "toor"))
	require.NoError(t, svc.EnsureAdmin(ctx, "root", "toor"))

	all, err := accounts.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, all[0].IsAdmin())
	assert.Nil(t, all[0].RemainingSearches)

	_, err = svc.Register(ctx, models.RegisterRequest{Username: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.ErrorIs(t, svc.EnsureAdmin(ctx, "alice", "secret"), ErrNotAnAdmin)
}

func TestEnsureAdmin_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	accounts := mock.NewMockAccountRepository(ctrl)
	svc := NewAuthService(accounts, nil, validators.NewRequestValidator(), testAppConfig, logger.Nop())
	ctx := context.Background()

	accounts.EXPECT().FindByUsername(ctx, "root").Return(models.Account{}, assert.AnError)

	err := svc.EnsureAdmin(ctx, "root", "toor")
	assert.ErrorIs(t, err, assert.AnError)
}
