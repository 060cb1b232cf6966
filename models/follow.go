package models

// FollowEdge represents a directed follow relation between two accounts.
type FollowEdge struct {
	// FollowerID is the account doing the following.
	FollowerID int64 `json:"followerId"`

	// FollowingID is the account being followed.
	FollowingID int64 `json:"followingId"`
}

// TableName returns the name of the database table
// associated with the FollowEdge model.
func (f FollowEdge) TableName() string {
	return "follows"
}

// FollowerInfo is the lightweight projection returned when listing an
// account's followers or followings.
type FollowerInfo struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
}
