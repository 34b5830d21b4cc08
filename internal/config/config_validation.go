// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net/url"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. All violations are
// reported together, each wrapping one of the ErrInvalid* sentinels.
func (cfg *StructuredConfig) validate() error {
	return errors.Join(
		cfg.Server.validate(),
		cfg.Storage.validate(),
		cfg.Gateway.validate(),
	)
}

func (s Server) validate() error {
	if s.HTTPAddress == "" && s.GRPCAddress == "" {
		return fmt.Errorf("%w: no HTTP or gRPC address", ErrInvalidServerConfigs)
	}
	if s.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}
	return nil
}

func (s Storage) validate() error {
	if s.DB.DSN == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}
	if s.DB.MaxOpenConns < 0 {
		return fmt.Errorf("%w: negative max open connections", ErrInvalidStorageConfigs)
	}
	return nil
}

func (g Gateway) validate() error {
	var errs []error

	if g.BaseURL == "" {
		errs = append(errs, fmt.Errorf("%w: base url is required", ErrInvalidGatewayConfigs))
	} else if u, err := url.Parse(g.BaseURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("%w: base url %q is not an absolute http(s) URL", ErrInvalidGatewayConfigs, g.BaseURL))
	}

	if g.RetryCount() < 0 {
		errs = append(errs, fmt.Errorf("%w: negative retries", ErrInvalidGatewayConfigs))
	}
	if g.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("%w: timeout must be positive", ErrInvalidGatewayConfigs))
	}
	if g.RetryWait() < 0 {
		errs = append(errs, fmt.Errorf("%w: negative retry delay", ErrInvalidGatewayConfigs))
	}

	return errors.Join(errs...)
}
