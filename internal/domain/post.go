package domain

import "time"

// Post is a piece of content authored by a user.
type Post struct {
	ID        ID        `json:"id"         gorm:"primaryKey"`
	UserID    ID        `json:"user_id"    gorm:"index;not null"`
	Content   string    `json:"content"    gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName sets the table name used by the ORM.
func (Post) TableName() string {
	return "posts"
}
