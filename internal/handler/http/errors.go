// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while admitting a request into the API. Callers
// can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when
	// the incoming request does not include an "Authorization" header at
	// all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrProviderAuthCancelled is reported when the account holder backs
	// out of the Google consent screen and the provider redirects with an
	// "access_denied" error.
	ErrProviderAuthCancelled = errors.New("google sign-in was cancelled")

	// ErrProviderAuthFailed covers every other failure of the server-side
	// code flow: a state mismatch aside, that is a failed code exchange or
	// an unreachable userinfo endpoint.
	ErrProviderAuthFailed = errors.New("google sign-in failed")
)
