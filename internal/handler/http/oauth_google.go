// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-influo/internal/logger"
	"github.com/MKhiriev/go-influo/internal/utils"
)

const (
	oauthStateCookie = "oauth_state"
	oauthStateTTL    = 10 * time.Minute
)

// googleAuthStart begins the server-side Google OAuth 2.0 code flow. The
// anti-forgery state travels both in the consent URL and in a short-lived
// cookie so that the callback can match the two.
func (h *Handler) googleAuthStart(w http.ResponseWriter, r *http.Request) {
	state := utils.NewUUIDGenerator().Generate()

	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Path:     "/auth/google",
		MaxAge:   int(oauthStateTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, h.google.AuthCodeURL(state), http.StatusTemporaryRedirect)
}

// googleAuthCallback finishes the code flow: it checks the state, exchanges
// the code for the provider-verified identity and hands over to the same
// lookup-or-create path the body-based /googlelogin endpoint uses.
func (h *Handler) googleAuthCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	// the cookie is single-use regardless of the outcome
	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    "",
		Path:     "/auth/google",
		MaxAge:   -1,
		HttpOnly: true,
	})

	query := r.URL.Query()
	if providerErr := query.Get("error"); providerErr != "" {
		if providerErr == "access_denied" {
			h.respondError(w, r, ErrProviderAuthCancelled, "consent screen was dismissed")
			return
		}
		log.Error().Str("provider_error", providerErr).Msg("google redirected with an error")
		h.respondError(w, r, ErrProviderAuthFailed, "google redirected with an error")
		return
	}

	stateCookie, err := r.Cookie(oauthStateCookie)
	if err != nil || stateCookie.Value == "" || stateCookie.Value != query.Get("state") {
		log.Error().Msg("oauth state mismatch")
		utils.WriteError(w, "oauth state mismatch", http.StatusBadRequest)
		return
	}

	code := query.Get("code")
	if code == "" {
		utils.WriteError(w, "missing authorization code", http.StatusBadRequest)
		return
	}

	identity, err := h.google.FetchIdentity(ctx, code)
	if err != nil {
		log.Err(err).Msg("identity fetch from google failed")
		h.respondError(w, r, ErrProviderAuthFailed, "identity fetch from google failed")
		return
	}

	h.finishFederatedLogin(w, r, identity)
}
