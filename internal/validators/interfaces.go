// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks vault input before it reaches the store:
// account forms, stored accounts and categories.
//
// A Validator is injected into the validating service wrappers. Passing
// field names to Validate restricts the check to those fields; with none,
// every required field of the given type is checked. Required text must be
// non-blank after trimming white space.
package validators

import "context"

// Validator validates obj and returns the first rule it breaks as one of
// the Err* sentinels of this package.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
