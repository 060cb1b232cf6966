package adapter

import "errors"

var (
	// ErrMailRejected is returned when the mail provider rejects the
	// message (4xx response).
	ErrMailRejected = errors.New("mail provider rejected the message")

	// ErrMailerUnavailable is returned when the mail provider cannot be
	// reached or fails with a 5xx response.
	ErrMailerUnavailable = errors.New("mail provider unavailable")
)
