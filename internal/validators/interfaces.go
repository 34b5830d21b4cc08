// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inbound user payloads before they reach the
// store.
//
// [NewUserValidator] returns the [Validator] for [models.UserRequest]. It
// enforces the name, email and password rules and reports every failure at
// once as [ValidationErrors], keyed by JSON field name. Passing field names to
// Validate restricts the check to those fields, which is how partial updates
// are validated.
//
// Email uniqueness needs the store and is checked by the user service.
package validators

import "context"

// Validator validates an input value. Unsupported types yield
// [ErrUnsupportedType].
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
