// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-influo/internal/config"
	"github.com/MKhiriev/go-influo/internal/crypto"
	"github.com/MKhiriev/go-influo/internal/logger"
	"github.com/MKhiriev/go-influo/internal/store"
	"github.com/MKhiriev/go-influo/internal/utils"
	"github.com/MKhiriev/go-influo/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification, federated
// Google sign-in, and the JWT token lifecycle, using a UserRepository for
// persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher produces and verifies bcrypt password digests.
	hasher crypto.PasswordHasher

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new account from a validated signup request.
//
// The plaintext password is hashed before the repository is touched and is
// never persisted or logged. An advisory existence check rejects an already
// taken email or username before the password is hashed; the unique
// constraints on the INSERT stay the authoritative guard, so two concurrent
// registrations of the same email can not both succeed.
func (a *authService) Register(ctx context.Context, req models.SignUpRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Username == "" || req.Password == "" {
		log.Error().Str("email", req.Email).Msg("invalid signup data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	// Advisory only: a failed lookup falls through to the INSERT, whose
	// unique constraints remain the source of truth.
	exists, err := a.userRepository.Exists(ctx, req.Email, req.Username)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("registration existence check failed")
	} else if exists {
		log.Info().Str("email", req.Email).Msg("account already registered")
		return models.User{}, store.ErrAccountAlreadyExists
	}

	digest, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     req.Username,
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: digest,
	})
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing account by email and password.
//
// Unknown email, wrong password, and a federated-only account without a
// local digest all collapse into ErrWrongPassword so the response does not
// reveal whether the email is registered.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Password == "" {
		log.Error().Str("email", req.Email).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrWrongPassword
		}
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := a.hasher.Compare(foundUser.PasswordHash, req.Password); err != nil {
		log.Warn().Int64("id", foundUser.UserID).Str("email", foundUser.Email).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// GoogleLogin signs in a provider-verified Google identity.
//
// Three cases:
//   - Account exists with the Google subject linked: plain sign-in.
//   - Account exists without a linked subject: link it, then sign in. The
//     email match is trusted because the provider verified the address.
//   - No account: create one with the email as the username and no local
//     password. If a concurrent request creates the account first, the
//     unique-violation from the INSERT is resolved by re-fetching.
func (a *authService) GoogleLogin(ctx context.Context, identity models.GoogleLoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if identity.Email == "" || identity.GoogleID == "" {
		log.Error().Str("email", identity.Email).Msg("invalid google identity provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, identity.Email)
	if err == nil {
		if foundUser.GoogleID == "" {
			if err := a.userRepository.LinkGoogleID(ctx, foundUser.UserID, identity.GoogleID); err != nil {
				log.Err(err).Int64("id", foundUser.UserID).Msg("linking google identity failed")
				return models.User{}, fmt.Errorf("linking google identity failed: %w", err)
			}
			foundUser.GoogleID = identity.GoogleID
		}
		return foundUser, nil
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Str("email", identity.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	createdUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username: identity.Email,
		Email:    identity.Email,
		FullName: identity.FullName,
		GoogleID: identity.GoogleID,
	})
	if err == nil {
		return createdUser, nil
	}
	if !errors.Is(err, store.ErrAccountAlreadyExists) {
		log.Err(err).Str("email", identity.Email).Msg("federated user creation ended with error")
		return models.User{}, fmt.Errorf("federated user creation ended with error: %w", err)
	}

	// lost the race to a concurrent sign-in for the same email
	foundUser, err = a.userRepository.FindUserByEmail(ctx, identity.Email)
	if err != nil {
		log.Err(err).Str("email", identity.Email).Msg("re-fetch after conflict failed")
		return models.User{}, fmt.Errorf("re-fetch after conflict failed: %w", err)
	}

	return foundUser, nil
}

// CheckUser reports whether an account matching the email or username is
// already registered.
func (a *authService) CheckUser(ctx context.Context, req models.CheckUserRequest) (bool, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" && req.Username == "" {
		return false, ErrInvalidDataProvided
	}

	exists, err := a.userRepository.Exists(ctx, req.Email, req.Username)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user existence check failed")
		return false, fmt.Errorf("user existence check failed: %w", err)
	}

	return exists, nil
}

// CreateToken issues a signed JWT for the given account.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim and the account email as a
// private claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, user.Email, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature
// and the issuer claim. Expiry is surfaced as ErrTokenIsExpired so the
// middleware can report it distinctly; every other validation failure is
// normalised to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
