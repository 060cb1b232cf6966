// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-influo/internal/service"
	"github.com/MKhiriev/go-influo/internal/store"
	"github.com/MKhiriev/go-influo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSignUp_Success verifies that a valid registration request results in
// 201 Created, the success envelope, and an Authorization header with the
// issued Bearer token.
func TestSignUp_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		registerFn: func(_ context.Context, req models.SignUpRequest) (models.User, error) {
			return models.User{UserID: 1, Username: req.Username, Email: req.Email, FullName: req.FullName}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return stubToken(signedToken), nil
		},
	}

	h := newTestHandler(t, &service.Services{AuthService: auth}, nil)
	req := httptest.NewRequest(http.MethodPost, "/signUp", strings.NewReader(jsonBody(t, validSignUp)))
	rec := httptest.NewRecorder()

	h.signUp(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Bearer "+signedToken, rec.Header().Get("Authorization"))

	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)
	assert.Empty(t, envelope.Error)

	users, ok := envelope.Data.([]any)
	require.True(t, ok)
	require.Len(t, users, 1)
}

// TestSignUp_ValidationFailure verifies that a body missing required fields
// is rejected with 400 before the service layer is reached.
func TestSignUp_ValidationFailure(t *testing.T) {
	h := newTestHandler(t, &service.Services{AuthService: &mockAuthService{}}, nil)

	body := jsonBody(t, models.SignUpRequest{Username: "alice", Email: "alice@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/signUp", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.signUp(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	assert.NotEmpty(t, envelope.Error)
}

func TestSignUp_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &service.Services{AuthService: &mockAuthService{}}, nil)

	req := httptest.NewRequest(http.MethodPost, "/signUp", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.signUp(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestSignUp_DuplicateAccount verifies the unique-violation mapping:
// registering an already-taken identity answers 409 Conflict.
func TestSignUp_DuplicateAccount(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, _ models.SignUpRequest) (models.User, error) {
			return models.User{}, store.ErrAccountAlreadyExists
		},
	}

	h := newTestHandler(t, &service.Services{AuthService: auth}, nil)
	req := httptest.NewRequest(http.MethodPost, "/signUp", strings.NewReader(jsonBody(t, validSignUp)))
	rec := httptest.NewRecorder()

	h.signUp(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	assert.Equal(t, store.ErrAccountAlreadyExists.Error(), envelope.Error)
}

func TestLogin_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		loginFn: func(_ context.Context, req models.LoginRequest) (models.User, error) {
			return models.User{UserID: 42, Email: req.Email}, nil
		},
		createTokenFn: func(_ context.Context, u models.User) (models.Token, error) {
			require.Equal(t, int64(42), u.UserID)
			return stubToken(signedToken), nil
		},
	}

	h := newTestHandler(t, &service.Services{AuthService: auth}, nil)
	body := jsonBody(t, models.LoginRequest{Email: "alice@example.com", Password: "whatever"})
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer "+signedToken, rec.Header().Get("Authorization"))
}

// TestLogin_WrongCredentials verifies that every credential failure surfaces
// as the same 401 message, leaking nothing about which part was wrong.
func TestLogin_WrongCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.LoginRequest) (models.User, error) {
			return models.User{}, service.ErrWrongPassword
		},
	}

	h := newTestHandler(t, &service.Services{AuthService: auth}, nil)
	body := jsonBody(t, models.LoginRequest{Email: "alice@example.com", Password: "nope"})
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, service.ErrWrongPassword.Error(), envelope.Error)
}

func TestLogin_MissingFields(t *testing.T) {
	h := newTestHandler(t, &service.Services{AuthService: &mockAuthService{}}, nil)

	body := jsonBody(t, models.LoginRequest{Email: "alice@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGoogleLogin_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	identity := models.GoogleLoginRequest{
		Email:    "alice@example.com",
		FullName: "Alice Smith",
		GoogleID: "google-sub-123",
	}

	auth := &mockAuthService{
		googleLoginFn: func(_ context.Context, got models.GoogleLoginRequest) (models.User, error) {
			assert.Equal(t, identity, got)
			return models.User{UserID: 7, Email: got.Email}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return stubToken(signedToken), nil
		},
	}

	h := newTestHandler(t, &service.Services{AuthService: auth}, nil)
	req := httptest.NewRequest(http.MethodPost, "/googlelogin", strings.NewReader(jsonBody(t, identity)))
	rec := httptest.NewRecorder()

	h.googleLogin(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer "+signedToken, rec.Header().Get("Authorization"))

	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)
}

func TestGoogleLogin_MissingSubject(t *testing.T) {
	h := newTestHandler(t, &service.Services{AuthService: &mockAuthService{}}, nil)

	body := jsonBody(t, models.GoogleLoginRequest{Email: "alice@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/googlelogin", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.googleLogin(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckUser_Exists(t *testing.T) {
	auth := &mockAuthService{
		checkUserFn: func(_ context.Context, req models.CheckUserRequest) (bool, error) {
			return req.Email == "taken@example.com", nil
		},
	}

	h := newTestHandler(t, &service.Services{AuthService: auth}, nil)
	body := jsonBody(t, models.CheckUserRequest{Email: "taken@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/checkUser", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.checkUser(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Success bool                     `json:"success"`
		Data    models.CheckUserResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.True(t, envelope.Data.Exists)
}

func TestCheckUser_StoreFailure(t *testing.T) {
	auth := &mockAuthService{
		checkUserFn: func(_ context.Context, _ models.CheckUserRequest) (bool, error) {
			return false, store.ErrStoreUnavailable
		},
	}

	h := newTestHandler(t, &service.Services{AuthService: auth}, nil)
	body := jsonBody(t, models.CheckUserRequest{Username: "alice"})
	req := httptest.NewRequest(http.MethodPost, "/checkUser", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.checkUser(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	envelope := decodeEnvelope(t, rec)
	// driver details never leak into responses
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), envelope.Error)
}
