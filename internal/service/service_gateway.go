// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-user-gateway/internal/adapter"
	"github.com/MKhiriev/go-user-gateway/internal/config"
	"github.com/MKhiriev/go-user-gateway/internal/logger"
	"github.com/MKhiriev/go-user-gateway/models"
)

var (
	// errEmptyBody replaces io.EOF, which says nothing to the caller.
	errEmptyBody    = errors.New("unexpected end of JSON input")
	errTrailingData = errors.New("invalid character after top-level value")
)

// gatewayService is the default [GatewayService]. It owns no mutable state
// and is safe for concurrent use.
type gatewayService struct {
	// baseURL is the absolute upstream URL every endpoint is joined to.
	baseURL string

	// client performs the GET with the configured timeout and retry policy.
	client adapter.HTTPClient

	logger *logger.Logger
}

// NewGatewayService builds a [GatewayService] for cfg.BaseURL. The client is
// expected to be configured with cfg's timeout, retries and retry delay; see
// [NewServices].
//
// Returns [ErrInvalidBaseURL] when the base URL is not an absolute http or
// https URL.
func NewGatewayService(cfg config.Gateway, client adapter.HTTPClient, logger *logger.Logger) (GatewayService, error) {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, cfg.BaseURL)
	}

	logger.Debug().Str("base_url", cfg.BaseURL).Msg("creating gateway service")
	return &gatewayService{
		baseURL: cfg.BaseURL,
		client:  client,
		logger:  logger,
	}, nil
}

// Fetch implements [GatewayService].
//
// Any response with a body that parses as a single JSON value is a success,
// whatever its status code. A body that does not parse yields a
// [adapter.KindMalformedResponse] error carrying the parser message.
func (s *gatewayService) Fetch(ctx context.Context, endpoint string, query adapter.Query) (models.UpstreamResponse, error) {
	log := logger.FromContext(ctx)
	target := JoinURL(s.baseURL, endpoint)

	raw, err := s.client.Get(ctx, target, query)
	if err != nil {
		var callErr *adapter.CallError
		if errors.As(err, &callErr) {
			return models.UpstreamResponse{Attempts: raw.Attempts}, err
		}
		return models.UpstreamResponse{Attempts: raw.Attempts}, adapter.NewCallError(adapter.KindUnknown, err.Error(), err)
	}

	payload, err := decodeJSON(raw.Body)
	if err != nil {
		log.Warn().Err(err).
			Str("url", target).
			Int("status", raw.StatusCode).
			Msg("upstream returned malformed JSON")
		return models.UpstreamResponse{StatusCode: raw.StatusCode, Attempts: raw.Attempts},
			adapter.NewCallError(adapter.KindMalformedResponse, err.Error(), err)
	}

	return models.UpstreamResponse{
		StatusCode: raw.StatusCode,
		Payload:    payload,
		Attempts:   raw.Attempts,
	}, nil
}

// JoinURL joins base and endpoint with exactly one slash. An empty endpoint
// addresses the root of base.
func JoinURL(base, endpoint string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(endpoint, "/")
}

// decodeJSON parses body as exactly one JSON value. Numbers are kept as
// [json.Number] so large integers survive the round trip.
func decodeJSON(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errEmptyBody
		}
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errTrailingData
	}
	return v, nil
}
