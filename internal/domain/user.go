package domain

import "time"

// User represents a registered account. A user owns posts, likes, comments,
// and follower edges in both directions.
type User struct {
	ID             ID        `json:"id"              gorm:"primaryKey"`
	Username       string    `json:"username"        gorm:"uniqueIndex:ux_users_username;size:32;not null"`
	Email          string    `json:"email"           gorm:"uniqueIndex:ux_users_email;size:255;not null"`
	HashedPassword string    `json:"-"               gorm:"column:hashed_password;size:128;not null"` // Never expose the hash in JSON
	CreatedAt      time.Time `json:"created_at"`
}

// TableName sets the table name used by the ORM.
func (User) TableName() string {
	return "users"
}
