// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"net/mail"
	"unicode/utf8"

	"github.com/MKhiriev/go-user-gateway/models"
)

// Field names accepted by [UserValidator.Validate]. They double as the keys
// of [ValidationErrors].
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
)

const (
	maxNameLength     = 255
	maxEmailLength    = 255
	minPasswordLength = 8
	// bcrypt ignores everything past 72 bytes.
	maxPasswordLength = 72
)

// MessageEmailTaken is reported on the email field when another user already
// owns the address.
const MessageEmailTaken = "The email has already been taken."

// UserValidator validates [models.UserRequest] payloads.
//
// Every field passed to Validate is required: a nil value is reported as
// missing. Callers validating a partial update pass only the fields present
// in the request. With no fields, all of them are validated.
type UserValidator struct{}

// NewUserValidator constructs a UserValidator and returns it as the
// Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate returns [ValidationErrors] describing every rule the request
// breaks, [ErrUnsupportedType] for anything other than a user request, or
// nil.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UserRequest:
		return v.validateUserRequest(ctx, value, fields...)
	case *models.UserRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateUserRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUserRequest(ctx context.Context, req models.UserRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword}
	}

	errs := ValidationErrors{}
	for _, f := range fields {
		switch f {
		case FieldName:
			validateName(errs, req.Name)
		case FieldEmail:
			validateEmail(errs, req.Email)
		case FieldPassword:
			validatePassword(errs, req.Password, req.PasswordConfirmation)
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	if errs.Any() {
		return errs
	}
	return nil
}

func validateName(errs ValidationErrors, name *string) {
	if name == nil || *name == "" {
		errs.Add(FieldName, required(FieldName))
		return
	}
	if utf8.RuneCountInString(*name) > maxNameLength {
		errs.Add(FieldName, tooLong(FieldName, maxNameLength))
	}
}

func validateEmail(errs ValidationErrors, email *string) {
	if email == nil || *email == "" {
		errs.Add(FieldEmail, required(FieldEmail))
		return
	}
	if !isEmail(*email) {
		errs.Add(FieldEmail, "The email field must be a valid email address.")
	}
	if utf8.RuneCountInString(*email) > maxEmailLength {
		errs.Add(FieldEmail, tooLong(FieldEmail, maxEmailLength))
	}
}

func validatePassword(errs ValidationErrors, password, confirmation *string) {
	if password == nil || *password == "" {
		errs.Add(FieldPassword, required(FieldPassword))
		return
	}
	if confirmation == nil || *confirmation != *password {
		errs.Add(FieldPassword, "The password field confirmation does not match.")
	}
	switch n := utf8.RuneCountInString(*password); {
	case n < minPasswordLength:
		errs.Add(FieldPassword, fmt.Sprintf("The password field must be at least %d characters.", minPasswordLength))
	case len(*password) > maxPasswordLength:
		errs.Add(FieldPassword, tooLong(FieldPassword, maxPasswordLength))
	}
}

// isEmail accepts a bare RFC 5322 address. Display names and angle brackets
// are rejected.
func isEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

func required(field string) string {
	return fmt.Sprintf("The %s field is required.", field)
}

func tooLong(field string, limit int) string {
	return fmt.Sprintf("The %s field must not be greater than %d characters.", field, limit)
}
