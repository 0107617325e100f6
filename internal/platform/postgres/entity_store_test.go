package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/nkarpov/socialite-api/internal/domain"
	"github.com/nkarpov/socialite-api/internal/store"
)

// newTestDB opens an isolated in-memory database and migrates the full
// schema into it.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Post{},
		&domain.Like{},
		&domain.Comment{},
		&domain.Follower{},
		&domain.Hashtag{},
	))

	return db
}

func newUserStore(t *testing.T, db *gorm.DB) *EntityStore[domain.User] {
	t.Helper()
	return NewEntityStore[domain.User](db, UserMeta(), slog.Default())
}

func seedUser(t *testing.T, s *EntityStore[domain.User], username, email string) domain.User {
	t.Helper()
	u := domain.User{Username: username, Email: email, HashedPassword: "x"}
	require.NoError(t, s.Create(context.Background(), &u))
	return u
}

func TestEntityStoreCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	s := newUserStore(t, db)
	ctx := context.Background()

	created := seedUser(t, s, "ada", "ada@example.com")
	require.NotZero(t, created.ID, "create must populate the identifier")
	assert.False(t, created.CreatedAt.IsZero(), "create must populate the timestamp")

	got, err := s.GetByID(ctx, created.ID.Int64())
	require.NoError(t, err)
	assert.Equal(t, created.Username, got.Username)
	assert.Equal(t, created.Email, got.Email)
}

func TestEntityStoreGetMissing(t *testing.T) {
	db := newTestDB(t)
	s := newUserStore(t, db)

	_, err := s.GetByID(context.Background(), 12345)
	require.ErrorIs(t, err, store.ErrUserNotFound)
	assert.True(t, store.IsNotFoundError(err))
}

func TestEntityStoreDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	s := newUserStore(t, db)
	ctx := context.Background()

	seedUser(t, s, "ada", "ada@example.com")

	err := s.Create(ctx, &domain.User{Username: "ada", Email: "other@example.com", HashedPassword: "x"})
	require.Error(t, err)
	require.True(t, store.IsConflictError(err))

	var conflict *store.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, []string{"username"}, conflict.Fields)
}

func TestEntityStoreDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	s := newUserStore(t, db)

	seedUser(t, s, "ada", "ada@example.com")

	err := s.Create(context.Background(),
		&domain.User{Username: "grace", Email: "ada@example.com", HashedPassword: "x"})
	require.Error(t, err)

	var conflict *store.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, []string{"email"}, conflict.Fields)
}

func TestEntityStoreDuplicateLikePair(t *testing.T) {
	db := newTestDB(t)
	users := newUserStore(t, db)
	posts := NewEntityStore[domain.Post](db, PostMeta(), slog.Default())
	likes := NewEntityStore[domain.Like](db, LikeMeta(), slog.Default())
	ctx := context.Background()

	u := seedUser(t, users, "ada", "ada@example.com")
	p := domain.Post{UserID: u.ID, Content: "hello"}
	require.NoError(t, posts.Create(ctx, &p))

	require.NoError(t, likes.Create(ctx, &domain.Like{UserID: u.ID, PostID: p.ID}))

	err := likes.Create(ctx, &domain.Like{UserID: u.ID, PostID: p.ID})
	require.Error(t, err)

	var conflict *store.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.ElementsMatch(t, []string{"user_id", "post_id"}, conflict.Fields)
}

func TestEntityStoreListPaginationAndTotal(t *testing.T) {
	db := newTestDB(t)
	s := newUserStore(t, db)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		seedUser(t, s, fmt.Sprintf("user%02d", i), fmt.Sprintf("user%02d@example.com", i))
	}

	rows, total, err := s.List(ctx, nil, store.Page{Skip: 20, Take: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	assert.Len(t, rows, 5, "last page holds the remainder")

	rows, total, err = s.List(ctx, nil, store.Page{Skip: 0, Take: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	require.Len(t, rows, 10)
	assert.Equal(t, "user00", rows[0].Username, "rows are ordered by id")
}

func TestEntityStoreListFilterCaseInsensitiveContains(t *testing.T) {
	db := newTestDB(t)
	s := newUserStore(t, db)
	ctx := context.Background()

	seedUser(t, s, "AdaLovelace", "ada@example.com")
	seedUser(t, s, "GraceHopper", "grace@example.com")
	seedUser(t, s, "adjacent", "adj@example.com")

	needle := "lovelace"
	rows, total, err := s.List(ctx, store.UserFilter{Username: &needle}, store.Page{Skip: 0, Take: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	assert.Equal(t, "AdaLovelace", rows[0].Username)
}

func TestEntityStoreListFilterEscapesWildcards(t *testing.T) {
	db := newTestDB(t)
	s := newUserStore(t, db)
	ctx := context.Background()

	seedUser(t, s, "percent%sign", "p@example.com")
	seedUser(t, s, "percentXsign", "x@example.com")

	needle := "percent%"
	rows, total, err := s.List(ctx, store.UserFilter{Username: &needle}, store.Page{Skip: 0, Take: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total, "%% must match literally, not as a wildcard")
	require.Len(t, rows, 1)
	assert.Equal(t, "percent%sign", rows[0].Username)
}

func TestEntityStoreSearchPrefix(t *testing.T) {
	db := newTestDB(t)
	s := newUserStore(t, db)
	ctx := context.Background()

	seedUser(t, s, "ada", "ada@example.com")
	seedUser(t, s, "adam", "adam@example.com")
	seedUser(t, s, "nada", "nada@example.com")

	rows, total, err := s.Search(ctx, "AD", store.Page{Skip: 0, Take: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total, "user search matches username prefixes, case-insensitively")
	require.Len(t, rows, 2)
	for _, u := range rows {
		assert.NotEqual(t, "nada", u.Username)
	}
}

func TestEntityStoreSearchContains(t *testing.T) {
	db := newTestDB(t)
	users := newUserStore(t, db)
	posts := NewEntityStore[domain.Post](db, PostMeta(), slog.Default())
	ctx := context.Background()

	u := seedUser(t, users, "ada", "ada@example.com")
	for _, content := range []string{"Compilers are fun", "I like trains", "my compiler broke"} {
		require.NoError(t, posts.Create(ctx, &domain.Post{UserID: u.ID, Content: content}))
	}

	rows, total, err := posts.Search(ctx, "compil", store.Page{Skip: 0, Take: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total, "post search matches anywhere in the content")
	assert.Len(t, rows, 2)
}

func TestEntityStoreSearchWithoutTextColumn(t *testing.T) {
	db := newTestDB(t)
	users := newUserStore(t, db)
	posts := NewEntityStore[domain.Post](db, PostMeta(), slog.Default())
	likes := NewEntityStore[domain.Like](db, LikeMeta(), slog.Default())
	ctx := context.Background()

	u := seedUser(t, users, "ada", "ada@example.com")
	for i := 0; i < 3; i++ {
		p := domain.Post{UserID: u.ID, Content: fmt.Sprintf("post %d", i)}
		require.NoError(t, posts.Create(ctx, &p))
		require.NoError(t, likes.Create(ctx, &domain.Like{UserID: u.ID, PostID: p.ID}))
	}

	// Likes have no searchable text column: the query is ignored and the
	// pagination window over all rows comes back.
	rows, total, err := likes.Search(ctx, "anything", store.Page{Skip: 0, Take: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, rows, 2)
}

func TestEntityStoreUpdate(t *testing.T) {
	db := newTestDB(t)
	s := newUserStore(t, db)
	ctx := context.Background()

	u := seedUser(t, s, "ada", "ada@example.com")

	updated, err := s.Update(ctx, u.ID.Int64(), map[string]any{"email": "countess@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "countess@example.com", updated.Email)
	assert.Equal(t, "ada", updated.Username, "untouched columns survive")

	got, err := s.GetByID(ctx, u.ID.Int64())
	require.NoError(t, err)
	assert.Equal(t, "countess@example.com", got.Email)
}

func TestEntityStoreUpdateMissing(t *testing.T) {
	db := newTestDB(t)
	s := newUserStore(t, db)

	_, err := s.Update(context.Background(), 4242, map[string]any{"email": "x@example.com"})
	require.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestEntityStoreUpdateEmptyChanges(t *testing.T) {
	db := newTestDB(t)
	s := newUserStore(t, db)
	ctx := context.Background()

	u := seedUser(t, s, "ada", "ada@example.com")

	got, err := s.Update(ctx, u.ID.Int64(), map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "ada", got.Username)

	_, err = s.Update(ctx, 4242, map[string]any{})
	require.ErrorIs(t, err, store.ErrUserNotFound, "empty changes still report missing rows")
}

func TestEntityStoreUpdateConflict(t *testing.T) {
	db := newTestDB(t)
	s := newUserStore(t, db)
	ctx := context.Background()

	seedUser(t, s, "ada", "ada@example.com")
	other := seedUser(t, s, "grace", "grace@example.com")

	_, err := s.Update(ctx, other.ID.Int64(), map[string]any{"username": "ada"})
	require.Error(t, err)
	assert.True(t, store.IsConflictError(err))
}

func TestEntityStoreDelete(t *testing.T) {
	db := newTestDB(t)
	s := newUserStore(t, db)
	ctx := context.Background()

	u := seedUser(t, s, "ada", "ada@example.com")

	require.NoError(t, s.Delete(ctx, u.ID.Int64()))

	_, err := s.GetByID(ctx, u.ID.Int64())
	require.ErrorIs(t, err, store.ErrUserNotFound)

	require.ErrorIs(t, s.Delete(ctx, u.ID.Int64()), store.ErrUserNotFound)
}

func TestEntityStoreListEmptyReturnsEmptySlice(t *testing.T) {
	db := newTestDB(t)
	s := newUserStore(t, db)

	rows, total, err := s.List(context.Background(), nil, store.Page{Skip: 0, Take: 10})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.NotNil(t, rows, "an empty page still serializes as [], not null")
	assert.Empty(t, rows)
}
