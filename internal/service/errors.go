package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongPassword covers every credential failure on login: unknown
	// email, wrong password, and password login against a federated-only
	// account. One error keeps the API from leaking which case occurred.
	ErrWrongPassword = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// Reset-flow state errors. Each reset step re-derives the flow state
	// from the stored ticket and fails with one of these when the step is
	// taken out of order or too late.
	ErrOTPMismatch        = errors.New("wrong otp code")
	ErrOTPExpired         = errors.New("otp code is expired")
	ErrTooManyOTPAttempts = errors.New("too many wrong otp attempts")
	ErrResetNotValidated  = errors.New("otp code was not validated")

	// ErrSelfFollow is returned when an account tries to follow itself.
	ErrSelfFollow = errors.New("cannot follow yourself")
)
