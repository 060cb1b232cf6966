// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults applied after merging when the corresponding field was not set
// by any source.
const (
	defaultHTTPAddress        = ":8000"
	defaultTokenIssuer        = "go-influo"
	defaultTokenDuration      = 24 * time.Hour
	defaultRequestTimeout     = 30 * time.Second
	defaultOTPTTL             = 10 * time.Minute
	defaultOTPMaxAttempts     = 5
	defaultMailerTimeout      = 15 * time.Second
	defaultResetPurgeInterval = time.Hour
)

// applyDefaults fills zero-valued optional fields with their defaults.
// Required fields (token sign key, DSN) are left untouched so that
// validation can reject their absence.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = defaultTokenIssuer
	}
	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = defaultTokenDuration
	}
	if cfg.OTP.TTL == 0 {
		cfg.OTP.TTL = defaultOTPTTL
	}
	if cfg.OTP.MaxAttempts == 0 {
		cfg.OTP.MaxAttempts = defaultOTPMaxAttempts
	}
	if cfg.Mailer.Timeout == 0 {
		cfg.Mailer.Timeout = defaultMailerTimeout
	}
	if cfg.Workers.ResetPurgeInterval == 0 {
		cfg.Workers.ResetPurgeInterval = defaultResetPurgeInterval
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The token signing key and database DSN have no usable defaults: their
// absence makes the server unable to issue credentials or persist accounts,
// so both are startup-fatal.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrMissingDatabaseDSN
	}

	if cfg.OTP.MaxAttempts < 1 {
		return ErrInvalidOTPConfigs
	}

	return nil
}
