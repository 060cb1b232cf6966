// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the credential primitives of the server: bcrypt
// password hashing and one-time-code generation for the reset flow.
package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned by [PasswordHasher.Compare] when the
// password does not match the stored digest, or when the account has no
// digest at all. Callers must not distinguish the two cases.
var ErrPasswordMismatch = errors.New("password does not match")

// bcryptHasher is the private implementation of [PasswordHasher].
type bcryptHasher struct {
	cost int
}

// NewPasswordHasher constructs a [PasswordHasher] using bcrypt with the
// library's default cost (10).
func NewPasswordHasher() PasswordHasher {
	return &bcryptHasher{cost: bcrypt.DefaultCost}
}

// Hash implements [PasswordHasher]. bcrypt salts internally, so equal
// passwords produce distinct digests.
func (h *bcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(digest), nil
}

// Compare implements [PasswordHasher]. The empty-digest check keeps
// federated-only accounts closed to password login.
func (h *bcryptHasher) Compare(digest, password string) error {
	if digest == "" {
		return ErrPasswordMismatch
	}
	if err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}
