package domain

import "time"

// Comment is a user's reply attached to a post.
type Comment struct {
	ID        ID        `json:"id"         gorm:"primaryKey"`
	UserID    ID        `json:"user_id"    gorm:"index;not null"`
	PostID    ID        `json:"post_id"    gorm:"index;not null"`
	Content   string    `json:"content"    gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName sets the table name used by the ORM.
func (Comment) TableName() string {
	return "comments"
}
