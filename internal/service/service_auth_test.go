// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-influo/internal/config"
	"github.com/MKhiriev/go-influo/internal/crypto"
	"github.com/MKhiriev/go-influo/internal/logger"
	"github.com/MKhiriev/go-influo/internal/mock"
	"github.com/MKhiriev/go-influo/internal/store"
	"github.com/MKhiriev/go-influo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (AuthService, *mock.MockUserRepository, *mock.MockPasswordHasher) {
	t.Helper()
	mockUsers := mock.NewMockUserRepository(ctrl)
	mockHasher := mock.NewMockPasswordHasher(ctrl)

	svc := NewAuthService(mockUsers, mockHasher, config.Auth{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "go-influo",
		TokenDuration: time.Hour,
	}, logger.NewLogger("test"))

	return svc, mockUsers, mockHasher
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockHasher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	req := models.SignUpRequest{
		Username: "john",
		Email:    "john@example.com",
		FullName: "John Doe",
		Password: "Secret1!",
	}

	gomock.InOrder(
		mockUsers.EXPECT().Exists(ctx, req.Email, req.Username).Return(false, nil),
		mockHasher.EXPECT().Hash("Secret1!").Return("$2a$10$digest", nil),
		mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				assert.Equal(t, "$2a$10$digest", u.PasswordHash, "the digest must be stored, never the plaintext")
				assert.Equal(t, req.Email, u.Email)
				u.UserID = 1
				return u, nil
			},
		),
	)

	created, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)
}

func TestAuthService_Register_DuplicateAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockHasher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().Exists(ctx, "john@example.com", "john").Return(false, nil)
	mockHasher.EXPECT().Hash(gomock.Any()).Return("$2a$10$digest", nil)
	mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrAccountAlreadyExists)

	_, err := svc.Register(ctx, models.SignUpRequest{
		Username: "john", Email: "john@example.com", Password: "Secret1!",
	})
	require.ErrorIs(t, err, store.ErrAccountAlreadyExists)
}

func TestAuthService_Register_ExistingAccountSkipsHashing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	// a taken email is rejected before any bcrypt work happens
	mockUsers.EXPECT().Exists(ctx, "john@example.com", "john").Return(true, nil)

	_, err := svc.Register(ctx, models.SignUpRequest{
		Username: "john", Email: "john@example.com", Password: "Secret1!",
	})
	require.ErrorIs(t, err, store.ErrAccountAlreadyExists)
}

func TestAuthService_Register_ExistenceCheckFailureFallsThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockHasher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	// the check is advisory: registration proceeds and the INSERT decides
	gomock.InOrder(
		mockUsers.EXPECT().Exists(ctx, "john@example.com", "john").Return(false, assert.AnError),
		mockHasher.EXPECT().Hash("Secret1!").Return("$2a$10$digest", nil),
		mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				u.UserID = 7
				return u, nil
			},
		),
	)

	created, err := svc.Register(ctx, models.SignUpRequest{
		Username: "john", Email: "john@example.com", Password: "Secret1!",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.UserID)
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.Register(context.Background(), models.SignUpRequest{Email: "john@example.com"})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockHasher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	stored := models.User{UserID: 1, Email: "john@example.com", PasswordHash: "$2a$10$digest"}

	gomock.InOrder(
		mockUsers.EXPECT().FindUserByEmail(ctx, "john@example.com").Return(stored, nil),
		mockHasher.EXPECT().Compare("$2a$10$digest", "Secret1!").Return(nil),
	)

	user, err := svc.Login(ctx, models.LoginRequest{Email: "john@example.com", Password: "Secret1!"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
}

func TestAuthService_Login_UnknownEmailIsWrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindUserByEmail(ctx, "nobody@example.com").Return(models.User{}, store.ErrNoUserWasFound)

	// unknown email and wrong password must be indistinguishable
	_, err := svc.Login(ctx, models.LoginRequest{Email: "nobody@example.com", Password: "Secret1!"})
	require.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_FederatedOnlyAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockHasher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	// account created via Google sign-in: empty digest fails closed
	stored := models.User{UserID: 1, Email: "john@example.com", GoogleID: "sub-1"}

	gomock.InOrder(
		mockUsers.EXPECT().FindUserByEmail(ctx, "john@example.com").Return(stored, nil),
		mockHasher.EXPECT().Compare("", "Secret1!").Return(crypto.ErrPasswordMismatch),
	)

	_, err := svc.Login(ctx, models.LoginRequest{Email: "john@example.com", Password: "Secret1!"})
	require.ErrorIs(t, err, ErrWrongPassword)
}

// ── GoogleLogin ──────────────────────────────────────────────────────────────

func TestAuthService_GoogleLogin_ExistingLinkedAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	stored := models.User{UserID: 1, Email: "john@example.com", GoogleID: "sub-1"}
	mockUsers.EXPECT().FindUserByEmail(ctx, "john@example.com").Return(stored, nil)

	user, err := svc.GoogleLogin(ctx, models.GoogleLoginRequest{Email: "john@example.com", GoogleID: "sub-1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
}

func TestAuthService_GoogleLogin_LinksExistingLocalAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	stored := models.User{UserID: 1, Email: "john@example.com", PasswordHash: "$2a$10$digest"}

	gomock.InOrder(
		mockUsers.EXPECT().FindUserByEmail(ctx, "john@example.com").Return(stored, nil),
		mockUsers.EXPECT().LinkGoogleID(ctx, int64(1), "sub-1").Return(nil),
	)

	user, err := svc.GoogleLogin(ctx, models.GoogleLoginRequest{Email: "john@example.com", GoogleID: "sub-1"})
	require.NoError(t, err)
	assert.Equal(t, "sub-1", user.GoogleID)
}

func TestAuthService_GoogleLogin_CreatesAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockUsers.EXPECT().FindUserByEmail(ctx, "john@example.com").Return(models.User{}, store.ErrNoUserWasFound),
		mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				assert.Equal(t, "john@example.com", u.Username, "the email doubles as the username")
				assert.Empty(t, u.PasswordHash, "federated accounts have no local password")
				u.UserID = 2
				return u, nil
			},
		),
	)

	user, err := svc.GoogleLogin(ctx, models.GoogleLoginRequest{
		Email: "john@example.com", FullName: "John Doe", GoogleID: "sub-1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), user.UserID)
}

func TestAuthService_GoogleLogin_LostCreationRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	winner := models.User{UserID: 7, Email: "john@example.com", GoogleID: "sub-1"}

	gomock.InOrder(
		mockUsers.EXPECT().FindUserByEmail(ctx, "john@example.com").Return(models.User{}, store.ErrNoUserWasFound),
		mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrAccountAlreadyExists),
		mockUsers.EXPECT().FindUserByEmail(ctx, "john@example.com").Return(winner, nil),
	)

	user, err := svc.GoogleLogin(ctx, models.GoogleLoginRequest{Email: "john@example.com", GoogleID: "sub-1"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID, "the concurrent winner's account is reused")
}

// ── CheckUser ────────────────────────────────────────────────────────────────

func TestAuthService_CheckUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().Exists(ctx, "john@example.com", "john").Return(true, nil)

	exists, err := svc.CheckUser(ctx, models.CheckUserRequest{Email: "john@example.com", Username: "john"})
	require.NoError(t, err)
	assert.True(t, exists)
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_TokenRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42, Email: "john@example.com"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
	assert.Equal(t, "john@example.com", parsed.Email)
}

func TestAuthService_ParseToken_Garbage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.ParseToken(context.Background(), "not.a.token")
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
