package store

// TextCondition is a single case-insensitive substring condition against
// a text column.
type TextCondition struct {
	Column string
	Value  string
}

// Filter narrows a List operation to rows matching a set of text
// conditions. Implementations return one condition per field that is
// actually set; an absent field contributes nothing. A nil Filter (or an
// empty condition list) matches every row.
type Filter interface {
	Conditions() []TextCondition
}

// UserFilter narrows users by username and/or email substring.
type UserFilter struct {
	Username *string
	Email    *string
}

// Conditions implements Filter.
func (f UserFilter) Conditions() []TextCondition {
	var conds []TextCondition
	if f.Username != nil {
		conds = append(conds, TextCondition{Column: "username", Value: *f.Username})
	}
	if f.Email != nil {
		conds = append(conds, TextCondition{Column: "email", Value: *f.Email})
	}
	return conds
}

// PostFilter narrows posts by content substring.
type PostFilter struct {
	Content *string
}

// Conditions implements Filter.
func (f PostFilter) Conditions() []TextCondition {
	if f.Content == nil {
		return nil
	}
	return []TextCondition{{Column: "content", Value: *f.Content}}
}

// CommentFilter narrows comments by content substring.
type CommentFilter struct {
	Content *string
}

// Conditions implements Filter.
func (f CommentFilter) Conditions() []TextCondition {
	if f.Content == nil {
		return nil
	}
	return []TextCondition{{Column: "content", Value: *f.Content}}
}

// HashtagFilter narrows hashtags by name substring.
type HashtagFilter struct {
	Name *string
}

// Conditions implements Filter.
func (f HashtagFilter) Conditions() []TextCondition {
	if f.Name == nil {
		return nil
	}
	return []TextCondition{{Column: "name", Value: *f.Name}}
}
