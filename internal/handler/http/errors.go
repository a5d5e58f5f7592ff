// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Errors produced while authenticating and decoding a request.
var (
	// ErrEmptyAuthorizationHeader is returned when the request carries no
	// "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is not of
	// the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrAdminOnly is returned when a non-admin token reaches an admin route.
	ErrAdminOnly = errors.New("admin role required")

	// ErrInvalidPathParam is returned when a numeric path parameter cannot be parsed.
	ErrInvalidPathParam = errors.New("invalid path parameter")

	// ErrInvalidQueryParam is returned when a query parameter has an unexpected value.
	ErrInvalidQueryParam = errors.New("invalid query parameter")
)
