package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrEmptyUsername    = errors.New("username is required")
	ErrEmptyEmail       = errors.New("email is required")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrEmptyFullName    = errors.New("full name is required")
	ErrEmptyPassword    = errors.New("password is required")
	ErrWeakPassword     = errors.New("password must be at least 6 characters and contain a lowercase letter, an uppercase letter, a digit and a special character (!@#$%^&*)")
	ErrEmptyOTPCode     = errors.New("otp code is required")
	ErrInvalidOTPCode   = errors.New("otp code must be 6 digits")
	ErrEmptyGoogleToken = errors.New("google credential is required")
)
