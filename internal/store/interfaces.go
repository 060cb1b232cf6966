package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-influo/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the data-access contract for account records.
// The users table owns the authoritative uniqueness guarantees on email and
// username; CreateUser surfaces their violation as [ErrAccountAlreadyExists].
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// Exists reports whether an account matching the email or the username
	// is already registered. Used by the /checkUser endpoint and as the
	// advisory fast-path check during registration.
	Exists(ctx context.Context, email, username string) (bool, error)

	// FindProfileByID returns the public projection of an account,
	// including the derived follower count.
	FindProfileByID(ctx context.Context, userID int64) (models.Profile, error)
	GetAllProfiles(ctx context.Context) ([]models.Profile, error)

	// UpdatePassword overwrites the account's password digest.
	UpdatePassword(ctx context.Context, email, passwordHash string) error

	// LinkGoogleID records the federated-identity reference on an existing
	// account (first Google sign-in on a pre-existing local account).
	LinkGoogleID(ctx context.Context, userID int64, googleID string) error

	// UpdateProfile applies a partial profile update; only non-nil fields
	// of the update are written.
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) error
}

// ResetRepository is the data-access contract for password-reset tickets.
// One ticket exists per email; Upsert replaces any previous ticket so that a
// re-requested reset starts with a fresh code, zero attempts, and a cleared
// validated flag.
type ResetRepository interface {
	Upsert(ctx context.Context, reset models.PasswordReset) error
	Find(ctx context.Context, email string) (models.PasswordReset, error)

	// RegisterFailedAttempt increments the ticket's attempt counter and
	// returns the new value.
	RegisterFailedAttempt(ctx context.Context, email string) (int, error)

	// MarkValidated sets the validated flag after a correct code submission.
	MarkValidated(ctx context.Context, email string) error

	// Delete consumes the ticket (after a successful password change or an
	// explicit cancellation).
	Delete(ctx context.Context, email string) error

	// PurgeExpired removes tickets whose codes expired before the cutoff
	// and returns the number of removed rows.
	PurgeExpired(ctx context.Context, cutoff time.Time) (int64, error)
}

// PostRepository is the data-access contract for posts and likes.
type PostRepository interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	FindPostByID(ctx context.Context, postID int64) (models.Post, error)

	// UpdatePost applies a partial update; fails with [ErrNotPostOwner]
	// when the post belongs to a different account.
	UpdatePost(ctx context.Context, update models.PostUpdate) error
	DeletePost(ctx context.Context, postID, userID int64) error

	// ToggleLike inserts or removes the (post, user) like edge and reports
	// whether the post is liked after the call.
	ToggleLike(ctx context.Context, postID, userID int64) (bool, error)

	// Timeline returns the posts of the account and of every account it
	// follows, newest first.
	Timeline(ctx context.Context, userID int64) ([]models.Post, error)
}

// FollowRepository is the data-access contract for the follow graph.
type FollowRepository interface {
	Follow(ctx context.Context, followerID, followingID int64) error
	Unfollow(ctx context.Context, followerID, followingID int64) error
	Followers(ctx context.Context, userID int64) ([]models.FollowerInfo, error)
	Following(ctx context.Context, userID int64) ([]models.FollowerInfo, error)
}
