package postgres

import (
	"sort"
	"strings"

	"github.com/nkarpov/socialite-api/internal/store"
)

// Meta carries the per-entity knowledge the generic store needs: which
// error to return for a missing row, which text column (if any) the search
// endpoint matches on, and how unique-constraint names map back to the
// JSON fields they cover.
type Meta struct {
	// Name is the singular entity name used in log lines ("user", "post").
	Name string

	// NotFound is the store sentinel returned when a targeted row is absent.
	NotFound error

	// SearchColumn is the text column matched by Search. Empty means the
	// entity has no searchable text; Search then returns all rows within
	// the pagination window.
	SearchColumn string

	// SearchPrefix selects prefix matching for Search instead of the
	// default substring matching.
	SearchPrefix bool

	// Constraints maps unique-constraint/index names to the JSON fields
	// they cover, used to populate ConflictError.Fields.
	Constraints map[string][]string
}

// UserMeta describes the users table.
func UserMeta() Meta {
	return Meta{
		Name:         "user",
		NotFound:     store.ErrUserNotFound,
		SearchColumn: "username",
		SearchPrefix: true,
		Constraints: map[string][]string{
			"ux_users_username": {"username"},
			"ux_users_email":    {"email"},
		},
	}
}

// PostMeta describes the posts table.
func PostMeta() Meta {
	return Meta{
		Name:         "post",
		NotFound:     store.ErrPostNotFound,
		SearchColumn: "content",
		Constraints:  map[string][]string{},
	}
}

// LikeMeta describes the likes table. Likes carry no searchable text
// column, so Search returns the unfiltered pagination window.
func LikeMeta() Meta {
	return Meta{
		Name:     "like",
		NotFound: store.ErrLikeNotFound,
		Constraints: map[string][]string{
			"ux_likes_user_post": {"user_id", "post_id"},
		},
	}
}

// CommentMeta describes the comments table.
func CommentMeta() Meta {
	return Meta{
		Name:         "comment",
		NotFound:     store.ErrCommentNotFound,
		SearchColumn: "content",
		Constraints:  map[string][]string{},
	}
}

// FollowerMeta describes the followers table. Follower edges carry no
// searchable text column.
func FollowerMeta() Meta {
	return Meta{
		Name:     "follower",
		NotFound: store.ErrFollowerNotFound,
		Constraints: map[string][]string{
			"ux_followers_pair": {"follower_id", "followee_id"},
		},
	}
}

// HashtagMeta describes the hashtags table.
func HashtagMeta() Meta {
	return Meta{
		Name:         "hashtag",
		NotFound:     store.ErrHashtagNotFound,
		SearchColumn: "name",
		SearchPrefix: true,
		Constraints: map[string][]string{
			"ux_hashtags_name": {"name"},
		},
	}
}

// conflictFields resolves the fields behind a uniqueness violation. The
// constraint name is authoritative when the driver reports one; otherwise
// the error text is scanned for a known constraint or column name (SQLite
// reports "UNIQUE constraint failed: users.username"). As a last resort
// every unique field of the entity is returned.
func (m Meta) conflictFields(constraintName, errText string) []string {
	if fields, ok := m.Constraints[constraintName]; ok {
		return fields
	}

	for name, fields := range m.Constraints {
		if strings.Contains(errText, name) {
			return fields
		}
		for _, f := range fields {
			if strings.Contains(errText, f) {
				return fields
			}
		}
	}

	var all []string
	seen := map[string]bool{}
	for _, fields := range m.Constraints {
		for _, f := range fields {
			if !seen[f] {
				seen[f] = true
				all = append(all, f)
			}
		}
	}
	sort.Strings(all)
	return all
}
