// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrInvalidUserID is returned when the {id} path segment of a user route is
// not a positive integer. Such requests are answered with 404, the same as
// an unknown ID.
var ErrInvalidUserID = errors.New("invalid user id")
