package dao

import (
	"context"
	"testing"
	"time"

	"Scribe/models"
	"Scribe/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	u := &models.User{Name: username + " name", Username: username, Password: "x"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedBlog(t *testing.T, db *gorm.DB, authorID int64, title string, createdAt time.Time) *models.Blog {
	t.Helper()
	b := &models.Blog{Title: title, Content: title + " body", AuthorID: authorID, CreatedAt: createdAt}
	require.NoError(t, db.Create(b).Error)
	return b
}

func TestBlogDAO_ListAndGet(t *testing.T) {
	ctx := context.Background()
	db := database.NewTestDB(t)
	d := NewBlogDAO(db)

	alice := seedUser(t, db, "alice")
	now := time.Now()
	old := seedBlog(t, db, alice.ID, "old", now.Add(-time.Hour))
	newer := seedBlog(t, db, alice.ID, "new", now)

	blogs, err := d.List(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, blogs, 2)
	assert.Equal(t, newer.ID, blogs[0].ID)
	assert.Equal(t, old.ID, blogs[1].ID)
	require.NotNil(t, blogs[0].Author)
	assert.Equal(t, "alice", blogs[0].Author.Username)

	page, err := d.List(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, old.ID, page[0].ID)

	got, err := d.Get(ctx, old.ID)
	require.NoError(t, err)
	assert.Equal(t, "old", got.Title)
	assert.Equal(t, alice.ID, got.Author.ID)

	_, err = d.Get(ctx, 9999)
	assert.True(t, IsNotFound(err))
}

func TestBlogDAO_TopPicks(t *testing.T) {
	ctx := context.Background()
	db := database.NewTestDB(t)
	d := NewBlogDAO(db)

	alice := seedUser(t, db, "alice")
	base := time.Now()
	for i := 0; i < 7; i++ {
		seedBlog(t, db, alice.ID, "t", base.Add(time.Duration(i)*time.Minute))
	}

	picks, err := d.TopPicks(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, picks, 5)
	assert.Empty(t, picks[0].Content)
}

func TestBlogDAO_OwnedWrites(t *testing.T) {
	ctx := context.Background()
	db := database.NewTestDB(t)
	d := NewBlogDAO(db)

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	blog := seedBlog(t, db, alice.ID, "draft", time.Now())

	_, err := d.UpdateOwned(ctx, blog.ID, bob.ID, "hijack", "x")
	assert.True(t, IsNotFound(err))

	updated, err := d.UpdateOwned(ctx, blog.ID, alice.ID, "final", "done")
	require.NoError(t, err)
	assert.Equal(t, "final", updated.Title)
	assert.Equal(t, alice.ID, updated.AuthorID)
	assert.Equal(t, "alice", updated.Author.Username)

	n, err := d.DeleteOwned(ctx, blog.ID, bob.ID)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = d.DeleteOwned(ctx, blog.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	exist, err := d.Exists(ctx, blog.ID)
	require.NoError(t, err)
	assert.False(t, exist)
}

func TestRecommendationDAO_Idempotent(t *testing.T) {
	ctx := context.Background()
	db := database.NewTestDB(t)
	d := NewRecommendationDAO(db)

	alice := seedUser(t, db, "alice")
	blog := seedBlog(t, db, alice.ID, "post", time.Now())

	created, err := d.Insert(ctx, alice.ID, blog.ID)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = d.Insert(ctx, alice.ID, blog.ID)
	require.NoError(t, err)
	assert.False(t, created)

	n, err := d.CountByBlog(ctx, blog.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	removed, err := d.Remove(ctx, alice.ID, blog.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = d.Remove(ctx, alice.ID, blog.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestRecommendationCascadesOnBlogDelete(t *testing.T) {
	ctx := context.Background()
	db := database.NewTestDB(t)
	rec := NewRecommendationDAO(db)
	blogs := NewBlogDAO(db)

	alice := seedUser(t, db, "alice")
	blog := seedBlog(t, db, alice.ID, "post", time.Now())
	_, err := rec.Insert(ctx, alice.ID, blog.ID)
	require.NoError(t, err)

	_, err = blogs.DeleteOwned(ctx, blog.ID, alice.ID)
	require.NoError(t, err)

	n, err := rec.CountByBlog(ctx, blog.ID)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestFollowAndMuteDAO(t *testing.T) {
	ctx := context.Background()
	db := database.NewTestDB(t)
	follows := NewFollowDAO(db)
	mutes := NewMuteDAO(db)

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	created, err := follows.Insert(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, created)
	created, err = follows.Insert(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, created)

	n, err := follows.GetFollowerCount(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, follows.Remove(ctx, alice.ID, bob.ID))
	require.NoError(t, follows.Remove(ctx, alice.ID, bob.ID))
	ok, err := follows.IsFollowing(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, mutes.Insert(ctx, bob.ID, alice.ID))
	require.NoError(t, mutes.Insert(ctx, bob.ID, alice.ID))
	ok, err = mutes.IsMuted(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, mutes.Remove(ctx, bob.ID, alice.ID))
	ok, err = mutes.IsMuted(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNotificationDAO(t *testing.T) {
	ctx := context.Background()
	db := database.NewTestDB(t)
	d := NewNotificationDAO(db)

	base := time.Now()
	first := &models.Notification{ReceiverID: 1, ActorID: 2, Type: models.NotificationFollow, Message: "a", CreatedAt: base.Add(-time.Minute)}
	second := &models.Notification{ReceiverID: 1, ActorID: 3, Type: models.NotificationFollow, Message: "b", CreatedAt: base}
	other := &models.Notification{ReceiverID: 9, Type: models.NotificationSystem, Message: "c", CreatedAt: base}
	for _, n := range []*models.Notification{first, second, other} {
		require.NoError(t, d.Create(ctx, n))
		assert.NotZero(t, n.ID)
	}

	items, err := d.ListByReceiver(ctx, 1, 0, 0)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "b", items[0].Message)
	assert.Equal(t, "a", items[1].Message)

	unread, err := d.CountUnread(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), unread)

	n, err := d.MarkRead(ctx, other.ID, 1)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = d.MarkRead(ctx, first.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	unread, err = d.CountUnread(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)

	require.NoError(t, d.MarkAllRead(ctx, 1))
	unread, err = d.CountUnread(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, unread)
}
