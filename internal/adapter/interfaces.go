// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the blocklist REST API, used by the
// CLI in cmd/client.
//
// Failed responses are returned as *APIError, which unwraps to one of the
// sentinel errors in errors.go chosen by status code, so callers match with
// [errors.Is] (e.g. [ErrQuotaExceeded] for 429).
package adapter

import (
	"context"

	"github.com/MKhiriev/rental-blocklist/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// BlocklistClient talks to the blocklist server on behalf of one account.
type BlocklistClient interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, empty before Login.
	Token() string

	// Login authenticates and stores the returned bearer token.
	Login(ctx context.Context, username, password string) (models.Account, error)

	// Logout records the logout on the server and forgets the token.
	Logout(ctx context.Context) error

	// Me returns the profile of the logged-in account.
	Me(ctx context.Context) (models.Account, error)

	// Search looks up a civil id, consuming one search of the quota.
	Search(ctx context.Context, civilID string) (models.SearchResponse, error)

	// AddBlock reports a customer and returns the credited quota.
	AddBlock(ctx context.Context, req models.AddBlockRequest) (models.AddBlockResponse, error)

	// SendSupportMessage leaves a message in the support inbox.
	SendSupportMessage(ctx context.Context, req models.SupportMessageRequest) (models.SupportMessageResponse, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
