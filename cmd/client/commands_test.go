package main

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/rental-blocklist/internal/adapter"
	"github.com/MKhiriev/rental-blocklist/internal/mock"
	"github.com/MKhiriev/rental-blocklist/models"
)

func newTestCommandLine(t *testing.T) (*commandLine, *mock.MockBlocklistClient, *bytes.Buffer) {
	t.Helper()

	client := mock.NewMockBlocklistClient(gomock.NewController(t))
	out := &bytes.Buffer{}

	return &commandLine{
		client:   client,
		username: "rentco",
		password: func() (string, error) { return "secret", nil },
		out:      out,
	}, client, out
}

func expectSession(client *mock.MockBlocklistClient) {
	client.EXPECT().Login(gomock.Any(), "rentco", "secret").Return(models.Account{Username: "rentco"}, nil)
	client.EXPECT().Logout(gomock.Any()).Return(nil)
}

func TestRun_Search(t *testing.T) {
	cli, client, out := newTestCommandLine(t)
	expectSession(client)

	client.EXPECT().Search(gomock.Any(), "290010112345").Return(models.SearchResponse{
		SearchResult: models.Found(models.BlockRecord{
			CivilID: "290010112345", Name: "Ahmad", Reason: "unpaid", CreatedBy: "fleet",
			CreatedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		}),
		RemainingSearches: models.Int64Ptr(9),
	}, nil)

	require.NoError(t, cli.run(context.Background(), []string{"search", "290010112345"}))
	assert.Contains(t, out.String(), "BLOCKED: 290010112345")
	assert.Contains(t, out.String(), "added by: fleet on 2026-03-01")
	assert.Contains(t, out.String(), "remaining searches: 9")
}

func TestRun_AddJoinsReason(t *testing.T) {
	cli, client, out := newTestCommandLine(t)
	expectSession(client)

	client.EXPECT().
		AddBlock(gomock.Any(), models.AddBlockRequest{CivilID: "290010112345", Name: "Ahmad", Reason: "returned car damaged"}).
		Return(models.AddBlockResponse{
			Record:            models.BlockRecord{CivilID: "290010112345", Name: "Ahmad"},
			RemainingSearches: models.Int64Ptr(12),
			Bonus:             5,
		}, nil)

	require.NoError(t, cli.run(context.Background(), []string{"add", "290010112345", "Ahmad", "returned", "car", "damaged"}))
	assert.Contains(t, out.String(), "+5 searches, remaining searches: 12")
}

func TestRun_MeUnlimited(t *testing.T) {
	cli, client, out := newTestCommandLine(t)
	expectSession(client)

	client.EXPECT().Me(gomock.Any()).Return(models.Account{Username: "admin", Role: models.RoleAdmin}, nil)

	require.NoError(t, cli.run(context.Background(), []string{"me"}))
	assert.Contains(t, out.String(), "remaining searches: unlimited")
}

func TestRun_VersionNeedsNoLogin(t *testing.T) {
	cli, client, out := newTestCommandLine(t)
	client.EXPECT().Version(gomock.Any()).Return("1.2.3", nil)

	require.NoError(t, cli.run(context.Background(), []string{"version"}))
	assert.Contains(t, out.String(), "Server version: 1.2.3")
}

func TestRun_LoginFailureSkipsAction(t *testing.T) {
	cli, client, _ := newTestCommandLine(t)
	loginErr := &adapter.APIError{Status: 401, Code: "wrong_credentials", Message: "wrong username or password"}
	client.EXPECT().Login(gomock.Any(), "rentco", "secret").Return(models.Account{}, loginErr)

	err := cli.run(context.Background(), []string{"search", "290010112345"})
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Equal(t, "wrong username or password", describeError(err))
}

func TestRun_Usage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no command", args: nil},
		{name: "unknown command", args: []string{"delete"}},
		{name: "search without id", args: []string{"search"}},
		{name: "add without reason", args: []string{"add", "290010112345", "Ahmad"}},
		{name: "empty support message", args: []string{"support"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, _, _ := newTestCommandLine(t)
			assert.ErrorIs(t, cli.run(context.Background(), tt.args), errUsage)
		})
	}
}

func TestRun_MissingUsername(t *testing.T) {
	cli, _, _ := newTestCommandLine(t)
	cli.username = ""

	assert.ErrorIs(t, cli.run(context.Background(), []string{"me"}), errUsage)
}

func TestDescribeError(t *testing.T) {
	quotaErr := &adapter.APIError{Status: 429, Code: "quota_exceeded", Message: "no remaining searches"}
	assert.Contains(t, describeError(quotaErr), "no remaining searches")

	civilErr := &adapter.APIError{Status: 422, Code: "too_young", Message: "customer is younger than 18"}
	assert.Equal(t, "invalid civil id (too_young): customer is younger than 18", describeError(civilErr))

	assert.Equal(t, "boom", describeError(errors.New("boom")))
}
