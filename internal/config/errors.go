package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are incomplete or invalid.
var (
	// ErrMissingTokenSignKey indicates that no JWT signing secret was
	// supplied by any configuration source. Startup-fatal.
	ErrMissingTokenSignKey = errors.New("token sign key is required")
	// ErrMissingDatabaseDSN indicates that no database connection string
	// was supplied by any configuration source. Startup-fatal.
	ErrMissingDatabaseDSN = errors.New("database DSN is required")
	// ErrInvalidOTPConfigs indicates invalid one-time-passcode settings
	// (for example, a non-positive attempt cap).
	ErrInvalidOTPConfigs = errors.New("invalid OTP configuration")
)
