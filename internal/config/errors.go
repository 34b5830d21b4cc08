package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid transport settings
	// (for example, neither an HTTP nor a gRPC address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidGatewayConfigs indicates invalid upstream settings
	// (for example, missing or relative base URL, non-positive timeout).
	ErrInvalidGatewayConfigs = errors.New("invalid gateway configuration")
)
