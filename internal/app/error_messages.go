// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// user gateway HTTP handlers.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries, so the wording stays the same across
// the API.
package app

const (
	// MsgInvalidJSON is returned when a request body is not a JSON object
	// that can be decoded into the expected payload.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgConnectionFailure is returned when the upstream microservice could
	// not be reached or did not answer in time.
	MsgConnectionFailure = "Failed to connect to the microservice"

	// MsgUnexpectedError is returned for every other upstream failure.
	MsgUnexpectedError = "An unexpected error occurred"

	// MsgHealthy is the body of the health endpoint.
	MsgHealthy = "ok"
)
