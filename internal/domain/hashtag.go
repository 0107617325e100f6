package domain

// Hashtag is a standalone tag identified by its unique name.
type Hashtag struct {
	ID   ID     `json:"id"   gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex:ux_hashtags_name;size:64;not null"`
}

// TableName sets the table name used by the ORM.
func (Hashtag) TableName() string {
	return "hashtags"
}
