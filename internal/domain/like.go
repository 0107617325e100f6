package domain

import "time"

// Like records that a user liked a post. A user can like a given post at
// most once, enforced by the composite unique index on (user_id, post_id).
type Like struct {
	ID        ID        `json:"id"         gorm:"primaryKey"`
	UserID    ID        `json:"user_id"    gorm:"uniqueIndex:ux_likes_user_post;not null"`
	PostID    ID        `json:"post_id"    gorm:"uniqueIndex:ux_likes_user_post;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName sets the table name used by the ORM.
func (Like) TableName() string {
	return "likes"
}
