// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides helpers shared across the service: typed context
// keys, JWT issuing and parsing, password hashing, JSON responses and the
// HTTP client used by the adapter.
package utils

import (
	"context"

	"github.com/MKhiriev/rental-blocklist/models"
)

// contextKey is a private type for context keys, preventing collisions with
// keys defined by other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey stores the authenticated account ID (int64).
	UserIDCtxKey = contextKey("userID")

	// RoleCtxKey stores the authenticated account role (models.Role).
	RoleCtxKey = contextKey("role")
)

// WithUser returns a copy of ctx carrying the account ID and role taken
// from a verified token.
func WithUser(ctx context.Context, userID int64, role models.Role) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, userID)
	return context.WithValue(ctx, RoleCtxKey, role)
}

// GetUserIDFromContext returns the account ID stored in ctx.
// ok is false when the value is missing or has an unexpected type.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetRoleFromContext returns the account role stored in ctx.
func GetRoleFromContext(ctx context.Context) (models.Role, bool) {
	role, ok := ctx.Value(RoleCtxKey).(models.Role)
	return role, ok
}
