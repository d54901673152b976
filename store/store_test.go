package store_test

import (
	"bloggo/domain"
	"bloggo/store/storetest"
	"context"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateUpTwice(t *testing.T) {
	s := storetest.New(t)
	assert.ErrorIs(t, s.MigrateUp(), migrate.ErrNoChange)
}

func TestCreateUser(t *testing.T) {
	s := storetest.New(t)
	ctx := context.Background()

	u, err := s.CreateUser(ctx, "alice", "hash")
	require.NoError(t, err)
	assert.NotZero(t, u.ID)

	_, err = s.CreateUser(ctx, "alice", "other")
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)

	got, err := s.UserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, "hash", got.Password)

	_, err = s.UserByID(ctx, u.ID+100)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPostLifecycle(t *testing.T) {
	s := storetest.New(t)
	ctx := context.Background()
	u, err := s.CreateUser(ctx, "alice", "hash")
	require.NoError(t, err)

	p, err := s.CreatePost(ctx, u.ID, "Hello", "World")
	require.NoError(t, err)

	got, err := s.GetPost(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello", got.Title)
	assert.Equal(t, "World", got.Body)
	assert.Equal(t, "alice", got.Author)
	assert.Equal(t, u.ID, got.UserID)
	assert.False(t, got.CreatedAt.IsZero())

	require.NoError(t, s.UpdatePost(ctx, p.ID, "Hi", "There"))
	got, err = s.GetPost(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hi", got.Title)

	posts, err := s.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "alice", posts[0].Author)

	assert.ErrorIs(t, s.UpdatePost(ctx, p.ID+1, "x", "y"), domain.ErrNotFound)
	assert.ErrorIs(t, s.DeletePost(ctx, p.ID+1), domain.ErrNotFound)
}

func TestListPostsNewestFirst(t *testing.T) {
	s := storetest.New(t)
	ctx := context.Background()
	u, err := s.CreateUser(ctx, "alice", "hash")
	require.NoError(t, err)

	first, err := s.CreatePost(ctx, u.ID, "first", "a")
	require.NoError(t, err)
	second, err := s.CreatePost(ctx, u.ID, "second", "b")
	require.NoError(t, err)

	posts, err := s.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, second.ID, posts[0].ID)
	assert.Equal(t, first.ID, posts[1].ID)
}

func TestDeletePostRemovesComments(t *testing.T) {
	s := storetest.New(t)
	ctx := context.Background()
	alice, err := s.CreateUser(ctx, "alice", "hash")
	require.NoError(t, err)
	bob, err := s.CreateUser(ctx, "bob", "hash")
	require.NoError(t, err)

	p, err := s.CreatePost(ctx, alice.ID, "Hello", "World")
	require.NoError(t, err)
	other, err := s.CreatePost(ctx, alice.ID, "Other", "Post")
	require.NoError(t, err)

	c1, err := s.CreateComment(ctx, p.ID, bob.ID, "Nice post")
	require.NoError(t, err)
	_, err = s.CreateComment(ctx, p.ID, alice.ID, "Thanks")
	require.NoError(t, err)
	kept, err := s.CreateComment(ctx, other.ID, bob.ID, "Still here")
	require.NoError(t, err)

	require.NoError(t, s.DeletePost(ctx, p.ID))

	_, err = s.GetPost(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = s.GetComment(ctx, c1.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	comments, err := s.CommentsForPost(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)

	got, err := s.GetComment(ctx, kept.ID)
	require.NoError(t, err)
	assert.Equal(t, other.ID, got.PostID)
}

func TestCommentLifecycle(t *testing.T) {
	s := storetest.New(t)
	ctx := context.Background()
	u, err := s.CreateUser(ctx, "alice", "hash")
	require.NoError(t, err)
	p, err := s.CreatePost(ctx, u.ID, "Hello", "World")
	require.NoError(t, err)

	c, err := s.CreateComment(ctx, p.ID, u.ID, "Nice post")
	require.NoError(t, err)

	comments, err := s.CommentsForPost(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "Nice post", comments[0].Body)
	assert.Equal(t, "alice", comments[0].Author)

	require.NoError(t, s.DeleteComment(ctx, c.ID))
	assert.ErrorIs(t, s.DeleteComment(ctx, c.ID), domain.ErrNotFound)
}

func TestCommentRequiresExistingPost(t *testing.T) {
	s := storetest.New(t)
	ctx := context.Background()
	u, err := s.CreateUser(ctx, "alice", "hash")
	require.NoError(t, err)

	_, err = s.CreateComment(ctx, 9999, u.ID, "orphan")
	assert.Error(t, err)
}

func TestEmptyTitleRejectedBySchema(t *testing.T) {
	s := storetest.New(t)
	ctx := context.Background()
	u, err := s.CreateUser(ctx, "alice", "hash")
	require.NoError(t, err)

	_, err = s.CreatePost(ctx, u.ID, "", "body")
	assert.Error(t, err)

	posts, err := s.ListPosts(ctx)
	require.NoError(t, err)
	assert.Empty(t, posts)
}
