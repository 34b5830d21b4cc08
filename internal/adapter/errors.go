// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
)

// ErrInvalidClientConfig is returned by [NewRetryingHTTPClient] when the
// timeout is not positive or the retry count or delay is negative.
var ErrInvalidClientConfig = errors.New("invalid http client config")

// ErrorKind classifies a failed upstream call. The zero value is
// [KindUnknown].
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindConnectionFailure
	KindTimeout
	KindMalformedResponse
)

func (k ErrorKind) String() string {
	switch k {
	case KindConnectionFailure:
		return "connection_failure"
	case KindTimeout:
		return "timeout"
	case KindMalformedResponse:
		return "malformed_response"
	default:
		return "unknown"
	}
}

// CallError is the single failure type of an upstream call.
type CallError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// NewCallError builds a [*CallError] of the given kind.
func NewCallError(kind ErrorKind, message string, err error) *CallError {
	return &CallError{Kind: kind, Message: message, Err: err}
}

func (e *CallError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *CallError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first [*CallError] in err's chain, or
// [KindUnknown] when there is none.
func KindOf(err error) ErrorKind {
	var callErr *CallError
	if errors.As(err, &callErr) {
		return callErr.Kind
	}
	return KindUnknown
}
