// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents a registered account in the user registry.
// Password holds the bcrypt hash and is never serialized.
type User struct {
	// ID is the server-assigned unique identifier of the user.
	ID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique e-mail address of the user.
	Email string `json:"email"`

	// Password is the bcrypt hash of the user's password.
	Password string `json:"-"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time `json:"-"`

	// UpdatedAt is the timestamp of the last modification.
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserRequest is the inbound payload of the create and update user
// endpoints. Nil fields are treated as "not provided": on create they fail
// validation, on update they are left unchanged.
type UserRequest struct {
	Name                 *string `json:"name,omitempty"`
	Email                *string `json:"email,omitempty"`
	Password             *string `json:"password,omitempty"`
	PasswordConfirmation *string `json:"password_confirmation,omitempty"`
}

// UserUpdate is a partial update of a stored user. Only non-nil fields are
// written; Password, when set, must already be hashed.
type UserUpdate struct {
	ID       int64
	Name     *string
	Email    *string
	Password *string
}

// IsEmpty reports whether the update carries no fields to change.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.Password == nil
}
