package service

import (
	"context"

	"github.com/MKhiriev/go-influo/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService owns account registration, credential verification and the
// JWT token lifecycle.
type AuthService interface {
	Register(ctx context.Context, req models.SignUpRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// GoogleLogin signs in a provider-verified Google identity, creating
	// the account on first sign-in and linking the Google subject to an
	// existing account on first federated sign-in.
	GoogleLogin(ctx context.Context, identity models.GoogleLoginRequest) (models.User, error)

	// CheckUser reports whether an account with the given email or
	// username is already registered.
	CheckUser(ctx context.Context, req models.CheckUserRequest) (bool, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ResetService drives the three-step password reset flow: request a code,
// validate it, change the password. Flow state lives in the reset ticket;
// each step re-derives it from the store.
type ResetService interface {
	RequestOTP(ctx context.Context, email string) error
	ValidateOTP(ctx context.Context, email, code string) error
	ChangePassword(ctx context.Context, email, newPassword string) error
}

// ProfileService serves public profile projections, partial profile updates
// and the follow graph.
type ProfileService interface {
	GetProfile(ctx context.Context, userID int64) (models.Profile, error)
	GetAllProfiles(ctx context.Context) ([]models.Profile, error)
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) error

	Follow(ctx context.Context, followerID, followingID int64) error
	Unfollow(ctx context.Context, followerID, followingID int64) error
	Followers(ctx context.Context, userID int64) ([]models.FollowerInfo, error)
	Following(ctx context.Context, userID int64) ([]models.FollowerInfo, error)
}

// PostService owns the post lifecycle, the like toggle and the timeline.
type PostService interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	GetPost(ctx context.Context, postID int64) (models.Post, error)
	UpdatePost(ctx context.Context, update models.PostUpdate) error
	DeletePost(ctx context.Context, postID, userID int64) error

	// ToggleLike reports whether the post is liked by the user after the
	// call.
	ToggleLike(ctx context.Context, postID, userID int64) (bool, error)
	Timeline(ctx context.Context, userID int64) ([]models.Post, error)
}
