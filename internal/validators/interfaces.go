// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators validates request DTOs before they reach the services.
//
// Rules are declared with `validate` struct tags (go-playground/validator)
// on the types in the models package. Failures are reported as a
// *RequestError naming each offending field by its JSON name.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally restricts
	// validation to the named fields.
	Validate(context.Context, any, ...string) error
}
