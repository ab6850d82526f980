package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidOTMConfigs indicates invalid OTM connectivity settings
	// (for example, missing base URL or non-positive request timeout).
	ErrInvalidOTMConfigs = errors.New("invalid OTM configuration")
	// ErrInvalidOTMCredentials indicates missing OTM basic-auth credentials.
	ErrInvalidOTMCredentials = errors.New("missing OTM credentials")
	// ErrInvalidServerConfigs indicates invalid inbound server settings
	// (for example, empty listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
