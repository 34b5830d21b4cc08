// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Default values applied before any other configuration source.
const (
	DefaultHTTPAddress      = ":8080"
	DefaultRequestTimeout   = 60 * time.Second
	DefaultGatewayRetries   = 3
	DefaultGatewayTimeout   = 10 * time.Second
	DefaultGatewayRetryWait = 100 * time.Millisecond
	DefaultDBMaxOpenConns   = 10
)

// StructuredConfig is the top-level configuration container for the
// go-user-gateway application. It aggregates all sub-configurations and is
// populated by merging defaults, environment variables, command-line flags,
// and an optional JSON or YAML file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the log level.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational user store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Gateway holds the upstream microservice settings used by the
	// pass-through proxy.
	Gateway Gateway `envPrefix:"GATEWAY_"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LogLevel is the zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the Data Source Name used to open the database connection.
	// A "postgres://" or "postgresql://" DSN selects PostgreSQL (pgx);
	// a "file:" DSN or a path ending in ".db"/".sqlite" selects SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// MaxOpenConns caps the size of the database/sql connection pool.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address on which the gRPC health server
	// listens, in "host:port" format (e.g. "0.0.0.0:9090").
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m"). It bounds
	// the whole upstream retry loop of the proxy endpoints.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Gateway holds the settings of the upstream microservice called by the
// pass-through proxy. Retries and RetryDelay are pointers because zero is a
// meaningful value for both and must survive merging.
type Gateway struct {
	// BaseURL is the absolute URL of the upstream microservice.
	// Env: GATEWAY_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Retries is the number of additional attempts after a connection
	// failure or timeout.
	// Env: GATEWAY_RETRIES
	Retries *int `env:"RETRIES"`

	// Timeout bounds every single upstream attempt.
	// Env: GATEWAY_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// RetryDelay is the fixed wait between consecutive attempts.
	// Env: GATEWAY_RETRY_DELAY
	RetryDelay *time.Duration `env:"RETRY_DELAY"`
}

// RetryCount returns the configured retry count, or [DefaultGatewayRetries]
// when none was provided.
func (g Gateway) RetryCount() int {
	if g.Retries == nil {
		return DefaultGatewayRetries
	}
	return *g.Retries
}

// RetryWait returns the configured retry delay, or [DefaultGatewayRetryWait]
// when none was provided.
func (g Gateway) RetryWait() time.Duration {
	if g.RetryDelay == nil {
		return DefaultGatewayRetryWait
	}
	return *g.RetryDelay
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON or YAML file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withFile().
		build()
}

func defaultConfig() *StructuredConfig {
	retries := DefaultGatewayRetries
	retryDelay := DefaultGatewayRetryWait

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{MaxOpenConns: DefaultDBMaxOpenConns},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Gateway: Gateway{
			Retries:    &retries,
			Timeout:    DefaultGatewayTimeout,
			RetryDelay: &retryDelay,
		},
	}
}
