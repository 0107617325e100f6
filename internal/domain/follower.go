package domain

import "time"

// Follower is a directed follow edge between two users: FollowerID follows
// FolloweeID. Each (follower, followee) pair exists at most once.
type Follower struct {
	ID         ID        `json:"id"          gorm:"primaryKey"`
	FollowerID ID        `json:"follower_id" gorm:"uniqueIndex:ux_followers_pair;not null"`
	FolloweeID ID        `json:"followee_id" gorm:"uniqueIndex:ux_followers_pair;not null"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName sets the table name used by the ORM.
func (Follower) TableName() string {
	return "followers"
}
