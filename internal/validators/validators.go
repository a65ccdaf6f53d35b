// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Procurio

// Package validators provides abstractions for input validation and
// enforcement of schema rules across the application.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//
// Usage patterns:
//  1. Declare request structs with `validate` tags.
//  2. Inject a Validator into handlers or services.
//  3. Call Validate with context, value, and optional field names.
//
// A failed validation reports every violating field (not just the first),
// each with a stable machine-readable reason code, so clients can highlight
// all problems in one round trip.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally restricts
	// validation to specific named struct fields. On failure it returns a
	// *models.Failure of kind validation listing all violations; any other
	// returned error is an internal fault (e.g. a non-struct input).
	Validate(context.Context, any, ...string) error
}
