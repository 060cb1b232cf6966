package models

import "time"

// PasswordReset is the durable form of a password-reset ticket. One row
// exists per email while a reset is in flight; the row itself is the only
// server-side record of progress — handlers re-derive the flow state from
// it on every step instead of trusting client-supplied flags.
type PasswordReset struct {
	// Email identifies the account the reset was requested for.
	Email string `json:"email"`

	// Code is the one-time passcode delivered to the user.
	// Never exposed via JSON.
	Code string `json:"-"`

	// ExpiresAt is the moment after which the code is no longer accepted.
	ExpiresAt time.Time `json:"expires_at"`

	// Attempts counts failed validation submissions for this ticket.
	Attempts int `json:"-"`

	// Validated is set once the user has submitted the correct code.
	// A new password is accepted only while this flag holds.
	Validated bool `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the PasswordReset model.
func (p PasswordReset) TableName() string {
	return "password_resets"
}

// Expired reports whether the ticket's code has passed its deadline
// relative to now.
func (p PasswordReset) Expired(now time.Time) bool {
	return !now.Before(p.ExpiresAt)
}
