// Package oauth implements the server-side Google authorization-code flow:
// redirect the browser to the consent screen, then exchange the returned
// code for a provider-verified identity.
package oauth

import (
	"context"

	"github.com/MKhiriev/go-influo/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/oauth_mock.go -package=mock

// Provider abstracts an OAuth2 identity provider for the code flow.
type Provider interface {
	// AuthCodeURL returns the consent-screen URL the browser is redirected
	// to. The state value is echoed back on the callback and must be
	// verified against the state cookie.
	AuthCodeURL(state string) string

	// FetchIdentity exchanges the callback code for tokens and retrieves
	// the provider-verified identity attributes.
	FetchIdentity(ctx context.Context, code string) (models.GoogleLoginRequest, error)
}
