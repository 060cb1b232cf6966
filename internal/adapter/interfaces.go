// Package adapter contains clients for external services the server talks
// to over HTTP. The only adapter today is the transactional mailer that
// delivers one-time reset codes.
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Mailer delivers transactional email through an external provider.
type Mailer interface {
	// SendOTP delivers the one-time reset code to the address. The code is
	// never logged; delivery failures surface as [ErrMailerUnavailable] or
	// [ErrMailRejected].
	SendOTP(ctx context.Context, toEmail, code string) error
}
