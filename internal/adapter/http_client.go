// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/MKhiriev/go-user-gateway/internal/logger"
	"github.com/MKhiriev/go-user-gateway/internal/metrics"
	"github.com/MKhiriev/go-user-gateway/internal/utils"
	"github.com/go-resty/resty/v2"
	"github.com/sethvargo/go-retry"
)

// TraceIDHeader carries the inbound request's trace id to the upstream.
const TraceIDHeader = "X-Trace-ID"

// HTTPClientConfig holds the retry policy of a [RetryingHTTPClient].
type HTTPClientConfig struct {
	// Timeout bounds every single attempt. Must be positive.
	Timeout time.Duration
	// Retries is the number of additional attempts after a connection
	// failure or timeout.
	Retries int
	// RetryDelay is the fixed wait between two attempts.
	RetryDelay time.Duration
}

// RawResponse is an upstream answer before any decoding.
type RawResponse struct {
	Body       []byte
	StatusCode int
	Attempts   int
}

// RetryingHTTPClient is the resty-backed [HTTPClient]. It is safe for
// concurrent use.
type RetryingHTTPClient struct {
	client     *utils.HTTPClient
	timeout    time.Duration
	retries    int
	retryDelay time.Duration
	metrics    *metrics.Metrics
}

// NewRetryingHTTPClient validates cfg and builds a client. m may be nil.
func NewRetryingHTTPClient(cfg HTTPClientConfig, m *metrics.Metrics) (*RetryingHTTPClient, error) {
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("%w: timeout must be positive, got %s", ErrInvalidClientConfig, cfg.Timeout)
	}
	if cfg.Retries < 0 {
		return nil, fmt.Errorf("%w: negative retries %d", ErrInvalidClientConfig, cfg.Retries)
	}
	if cfg.RetryDelay < 0 {
		return nil, fmt.Errorf("%w: negative retry delay %s", ErrInvalidClientConfig, cfg.RetryDelay)
	}

	client := utils.NewHTTPClient()
	client.
		SetTimeout(cfg.Timeout).
		SetLogger(restyLogger{}).
		SetHeader("Accept", "application/json")

	return &RetryingHTTPClient{
		client:     client,
		timeout:    cfg.Timeout,
		retries:    cfg.Retries,
		retryDelay: cfg.RetryDelay,
		metrics:    m,
	}, nil
}

// Get implements [HTTPClient].
func (c *RetryingHTTPClient) Get(ctx context.Context, rawURL string, query Query) (RawResponse, error) {
	log := logger.FromContext(ctx)

	target, err := appendQuery(rawURL, query)
	if err != nil {
		c.metrics.IncUpstreamCall(KindUnknown.String())
		return RawResponse{}, NewCallError(KindUnknown, fmt.Sprintf("invalid upstream url %q: %v", rawURL, err), err)
	}
	if u, _ := url.Parse(target); !u.IsAbs() || u.Host == "" {
		c.metrics.IncUpstreamCall(KindUnknown.String())
		return RawResponse{}, NewCallError(KindUnknown, fmt.Sprintf("upstream url %q is not absolute", rawURL), nil)
	}

	var (
		resp        *resty.Response
		attempts    int
		onlyTimeout = true
		lastErr     error
		lastKind    ErrorKind
	)

	err = retry.Do(ctx, c.backoff(), func(ctx context.Context) error {
		attempts++
		started := time.Now()

		r, attemptErr := c.request(ctx).Get(target)
		if attemptErr == nil {
			c.metrics.ObserveUpstreamAttempt("response", time.Since(started))
			resp = r
			return nil
		}

		kind := classifyAttemptError(ctx, attemptErr)
		c.metrics.ObserveUpstreamAttempt(kind.String(), time.Since(started))
		log.Warn().Err(attemptErr).
			Str("url", target).
			Int("attempt", attempts).
			Str("kind", kind.String()).
			Msg("upstream attempt failed")

		lastErr, lastKind = attemptErr, kind
		if kind != KindTimeout {
			onlyTimeout = false
		}
		if !isRetryable(kind) || ctx.Err() != nil {
			return attemptErr
		}
		return retry.RetryableError(attemptErr)
	})

	if err == nil {
		c.metrics.IncUpstreamCall("success")
		log.Debug().Str("url", target).
			Int("status", resp.StatusCode()).
			Int("attempts", attempts).
			Msg("upstream responded")
		return RawResponse{Body: resp.Body(), StatusCode: resp.StatusCode(), Attempts: attempts}, nil
	}

	callErr := c.failure(ctx, target, attempts, onlyTimeout, lastKind, lastErr, err)
	c.metrics.IncUpstreamCall(callErr.Kind.String())
	log.Error().Err(callErr.Err).
		Str("url", target).
		Int("attempts", attempts).
		Str("kind", callErr.Kind.String()).
		Msg("upstream call failed")

	return RawResponse{Attempts: attempts}, callErr
}

func (c *RetryingHTTPClient) request(ctx context.Context) *resty.Request {
	req := c.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(TraceIDHeader, traceID)
	}
	return req
}

// backoff returns a fresh constant backoff; go-retry backoffs are stateful.
func (c *RetryingHTTPClient) backoff() retry.Backoff {
	delay := c.retryDelay
	constant := retry.BackoffFunc(func() (time.Duration, bool) {
		return delay, false
	})
	return retry.WithMaxRetries(uint64(c.retries), constant)
}

// failure builds the final error once the retry loop gave up. doErr is what
// retry.Do returned: the last attempt error, or the context error when the
// caller gave up during a delay.
func (c *RetryingHTTPClient) failure(ctx context.Context, target string, attempts int, onlyTimeout bool, lastKind ErrorKind, lastErr, doErr error) *CallError {
	if ctxErr := ctx.Err(); lastErr == nil || (ctxErr != nil && errors.Is(doErr, ctxErr)) {
		kind := classifyAttemptError(ctx, doErr)
		return NewCallError(kind, fmt.Sprintf("upstream call to %s aborted after %d attempt(s): %v", target, attempts, doErr), doErr)
	}

	switch {
	case !isRetryable(lastKind):
		return NewCallError(lastKind, fmt.Sprintf("upstream call to %s failed: %v", target, lastErr), lastErr)
	case onlyTimeout:
		return NewCallError(KindTimeout, fmt.Sprintf("upstream %s did not respond within %s after %d attempt(s)", target, c.timeout, attempts), lastErr)
	default:
		return NewCallError(KindConnectionFailure, fmt.Sprintf("could not connect to upstream %s after %d attempt(s): %v", target, attempts, lastErr), lastErr)
	}
}

// restyLogger routes resty's internal messages to the default zerolog
// context logger.
type restyLogger struct{}

func (restyLogger) Errorf(format string, v ...any) {
	logger.FromContext(context.Background()).Debug().Msgf("resty: "+format, v...)
}

func (restyLogger) Warnf(format string, v ...any) {
	logger.FromContext(context.Background()).Debug().Msgf("resty: "+format, v...)
}

func (restyLogger) Debugf(format string, v ...any) {
	logger.FromContext(context.Background()).Debug().Msgf("resty: "+format, v...)
}
