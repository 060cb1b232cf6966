package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-influo/internal/config"
	"github.com/MKhiriev/go-influo/internal/logger"
	"github.com/MKhiriev/go-influo/models"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// googleUserInfoURL is the endpoint the access token is spent on.
const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// ErrIdentityUnverified is returned when Google reports the email as not
// verified. Unverified emails must not mint credentials.
var ErrIdentityUnverified = errors.New("google identity is not verified")

// googleUserInfo is the subset of the userinfo response the server needs.
type googleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
}

// GoogleProvider implements [Provider] against Google's OAuth2 endpoints.
type GoogleProvider struct {
	oauthConfig oauth2.Config

	// userInfoURL is overridable in tests.
	userInfoURL string

	logger *logger.Logger
}

// NewGoogleProvider constructs a [GoogleProvider] from the OAuth section of
// the configuration.
func NewGoogleProvider(cfg config.OAuth, logger *logger.Logger) *GoogleProvider {
	return &GoogleProvider{
		oauthConfig: oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleCallbackURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
		userInfoURL: googleUserInfoURL,
		logger:      logger,
	}
}

// AuthCodeURL implements [Provider].
func (p *GoogleProvider) AuthCodeURL(state string) string {
	return p.oauthConfig.AuthCodeURL(state)
}

// FetchIdentity implements [Provider]. The exchange and the userinfo fetch
// both run under the request context, so an abandoned callback does not
// leak an outbound call.
func (p *GoogleProvider) FetchIdentity(ctx context.Context, code string) (models.GoogleLoginRequest, error) {
	log := logger.FromContext(ctx)

	token, err := p.oauthConfig.Exchange(ctx, code)
	if err != nil {
		log.Err(err).Str("func", "*GoogleProvider.FetchIdentity").Msg("code exchange failed")
		return models.GoogleLoginRequest{}, fmt.Errorf("exchanging authorization code: %w", err)
	}

	info, err := p.fetchUserInfo(ctx, token)
	if err != nil {
		log.Err(err).Str("func", "*GoogleProvider.FetchIdentity").Msg("userinfo fetch failed")
		return models.GoogleLoginRequest{}, err
	}

	if !info.VerifiedEmail {
		return models.GoogleLoginRequest{}, ErrIdentityUnverified
	}

	return models.GoogleLoginRequest{
		Email:    info.Email,
		FullName: info.Name,
		GoogleID: info.ID,
	}, nil
}

func (p *GoogleProvider) fetchUserInfo(ctx context.Context, token *oauth2.Token) (googleUserInfo, error) {
	client := p.oauthConfig.Client(ctx, token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userInfoURL, nil)
	if err != nil {
		return googleUserInfo{}, fmt.Errorf("building userinfo request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return googleUserInfo{}, fmt.Errorf("fetching userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return googleUserInfo{}, fmt.Errorf("userinfo returned http %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return googleUserInfo{}, fmt.Errorf("reading userinfo response: %w", err)
	}

	var info googleUserInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return googleUserInfo{}, fmt.Errorf("decoding userinfo response: %w", err)
	}

	return info, nil
}
