// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound transport used to call the upstream
// microservice.
//
// The primary abstraction is [HTTPClient], which decouples the gateway
// service from the underlying protocol. The package ships a retrying
// resty-based implementation ([NewRetryingHTTPClient]) that issues GET
// requests with a per-attempt timeout and a bounded number of fixed-delay
// retries.
//
// Every failure is returned as a [*CallError] whose [ErrorKind] tells the
// caller whether the upstream could not be reached, did not answer in time,
// or failed in some other way. Callers use [KindOf] or [errors.As] to
// inspect it.
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/http_client_mock.go -package=mock

// HTTPClient defines the outbound GET capability consumed by the gateway
// service.
type HTTPClient interface {
	// Get issues a GET request to url with query appended in order. Any
	// HTTP response, whatever its status code, is returned as a
	// [RawResponse]. Transport failures are returned as [*CallError].
	Get(ctx context.Context, url string, query Query) (RawResponse, error)
}
