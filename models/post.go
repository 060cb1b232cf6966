package models

import "time"

// Post represents a single post published by an account.
type Post struct {
	// PostID is the unique identifier of the post.
	PostID int64 `json:"id"`

	// UserID is the account that owns the post. Only the owner may
	// update or delete it.
	UserID int64 `json:"userId"`

	// Body is the text content of the post.
	Body string `json:"desc"`

	// ImageURL is an optional link to an attached image.
	ImageURL string `json:"image,omitempty"`

	// Likes is the number of accounts that currently like the post.
	Likes int64 `json:"likes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}

// PostUpdate describes a partial update of a post.
// Only non-nil fields will be updated (partial update support).
type PostUpdate struct {
	// PostID is the unique identifier of the post to update. Required.
	PostID int64 `json:"-"`

	// UserID is the owner of the post. Required for ownership checks.
	UserID int64 `json:"-"`

	// Body is the updated text content. If nil, the field is not updated.
	Body *string `json:"desc,omitempty"`

	// ImageURL is the updated image link. If nil, the field is not updated.
	ImageURL *string `json:"image,omitempty"`
}

// IsEmpty reports whether the update contains no fields to write.
func (p PostUpdate) IsEmpty() bool {
	return p.Body == nil && p.ImageURL == nil
}
