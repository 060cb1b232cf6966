package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user,
	// assigned by the database on creation and immutable thereafter.
	UserID int64 `json:"id"`

	// Username is the unique public handle of the user.
	Username string `json:"username"`

	// Email is the unique address used as the primary lookup key
	// during authentication and password reset.
	Email string `json:"email"`

	// FullName is the display name of the user.
	FullName string `json:"fullName"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// Empty for accounts created via Google sign-in that never set a
	// local password. Never exposed via JSON.
	PasswordHash string `json:"-"`

	// GoogleID is the subject identifier issued by Google for accounts
	// linked to a Google identity. Empty for local-only accounts.
	GoogleID string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// HasLocalPassword reports whether the account can authenticate with a
// local password. Accounts created through Google sign-in have an empty
// digest and must fail password login closed.
func (u User) HasLocalPassword() bool {
	return u.PasswordHash != ""
}

// Profile is the public projection of an influencer account returned by
// the API. It never carries credential material.
type Profile struct {
	// InfluencerID mirrors the account's UserID under the name the
	// public API uses.
	InfluencerID int64 `json:"InfluencerID"`

	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`

	// SocialMediaPlatform is the platform the influencer is active on.
	SocialMediaPlatform string `json:"socialMediaPlatform"`

	// FollowerCount is the number of accounts following this profile.
	FollowerCount int64 `json:"followerCount"`

	// EngagementRate is the influencer's average engagement percentage.
	EngagementRate float64 `json:"engagementRate"`

	// Niche is the content category the influencer works in.
	Niche string `json:"niche"`

	// Bio is the free-form profile description.
	Bio string `json:"bio"`
}

// ProfileUpdate describes a partial profile update. Only non-nil fields
// are written to the database.
type ProfileUpdate struct {
	// UserID is the account whose profile is updated.
	// Populated from the authenticated identity, never from the body.
	UserID int64 `json:"-"`

	Username            *string  `json:"username,omitempty"`
	FullName            *string  `json:"fullName,omitempty"`
	SocialMediaPlatform *string  `json:"socialMediaPlatform,omitempty"`
	EngagementRate      *float64 `json:"engagementRate,omitempty"`
	Niche               *string  `json:"niche,omitempty"`
	Bio                 *string  `json:"bio,omitempty"`
}

// IsEmpty reports whether the update contains no fields to write.
func (p ProfileUpdate) IsEmpty() bool {
	return p.Username == nil &&
		p.FullName == nil &&
		p.SocialMediaPlatform == nil &&
		p.EngagementRate == nil &&
		p.Niche == nil &&
		p.Bio == nil
}
