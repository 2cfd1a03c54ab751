package service

import (
	"context"
	"fmt"
	"testing"

	"onemore-backend/internal/dto"
	"onemore-backend/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPostsSeedsFeed(t *testing.T) {
	ctx := context.Background()
	svc := NewSocialService(newTestStore(t))
	user := testUser("u1", "Ana")

	res, err := svc.ListPosts(ctx, user)
	require.NoError(t, err)
	require.Len(t, res.Posts, 1)
	assert.Equal(t, "Marcus Chen", res.Posts[0].AuthorName)
	assert.Equal(t, 3, res.Posts[0].LikeCount)
	assert.Equal(t, 1, res.Posts[0].CommentsCount)
	assert.False(t, res.Posts[0].LikedByMe)
}

func TestCreatePostAndOrdering(t *testing.T) {
	ctx := context.Background()
	svc := NewSocialService(newTestStore(t))
	user := testUser("u1", "Ana")

	_, err := svc.CreatePost(ctx, user, &dto.CreatePostRequest{Content: "  "})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperror.From(err).Code)

	created, err := svc.CreatePost(ctx, user, &dto.CreatePostRequest{Content: "First session done"})
	require.NoError(t, err)
	assert.Equal(t, "First session done", created.Post.Content)
	assert.NotEmpty(t, created.Post.AuthorAvatar)

	// Newest post leads the feed, ahead of the seeded one.
	res, err := svc.ListPosts(ctx, user)
	require.NoError(t, err)
	require.Len(t, res.Posts, 2)
	assert.Equal(t, created.Post.Id, res.Posts[0].Id)
}

func TestToggleLike(t *testing.T) {
	ctx := context.Background()
	svc := NewSocialService(newTestStore(t))
	user := testUser("u1", "Ana")

	created, err := svc.CreatePost(ctx, user, &dto.CreatePostRequest{Content: "Like me"})
	require.NoError(t, err)

	liked, err := svc.ToggleLike(ctx, user, created.Post.Id)
	require.NoError(t, err)
	assert.Equal(t, 1, liked.Post.LikeCount)
	assert.True(t, liked.Post.LikedByMe)

	unliked, err := svc.ToggleLike(ctx, user, created.Post.Id)
	require.NoError(t, err)
	assert.Equal(t, 0, unliked.Post.LikeCount)
	assert.False(t, unliked.Post.LikedByMe)

	_, err = svc.ToggleLike(ctx, user, "missing-post")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperror.From(err).Code)
}

func TestListCommentsPagination(t *testing.T) {
	ctx := context.Background()
	svc := NewSocialService(newTestStore(t))
	user := testUser("u1", "Ana")

	created, err := svc.CreatePost(ctx, user, &dto.CreatePostRequest{Content: "Busy thread"})
	require.NoError(t, err)

	for i := 0; i < 7; i++ {
		_, err := svc.CreateComment(ctx, user, created.Post.Id, &dto.CreateCommentRequest{Text: fmt.Sprintf("comment %d", i)})
		require.NoError(t, err)
	}

	// Default page size is 5, newest first.
	page1, err := svc.ListComments(ctx, user, created.Post.Id, 1, 0)
	require.NoError(t, err)
	require.Len(t, page1.Comments, 5)
	assert.Equal(t, "comment 6", page1.Comments[0].Text)
	assert.Equal(t, 7, page1.Pagination.Total)
	assert.True(t, page1.Pagination.HasMore)

	page2, err := svc.ListComments(ctx, user, created.Post.Id, 2, 0)
	require.NoError(t, err)
	require.Len(t, page2.Comments, 2)
	assert.Equal(t, "comment 0", page2.Comments[1].Text)
	assert.False(t, page2.Pagination.HasMore)

	_, err = svc.ListComments(ctx, user, "missing-post", 1, 0)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperror.From(err).Code)
}

func TestDeleteCommentOwnership(t *testing.T) {
	ctx := context.Background()
	svc := NewSocialService(newTestStore(t))
	owner := testUser("u1", "Ana")
	stranger := testUser("u2", "Bob")

	created, err := svc.CreatePost(ctx, owner, &dto.CreatePostRequest{Content: "Thread"})
	require.NoError(t, err)

	withComment, err := svc.CreateComment(ctx, owner, created.Post.Id, &dto.CreateCommentRequest{Text: "mine"})
	require.NoError(t, err)
	require.Len(t, withComment.Post.Comments, 1)
	commentId := withComment.Post.Comments[0].Id

	_, err = svc.DeleteComment(ctx, stranger, created.Post.Id, commentId)
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperror.From(err).Code)

	res, err := svc.DeleteComment(ctx, owner, created.Post.Id, commentId)
	require.NoError(t, err)
	assert.True(t, res.Deleted)
	assert.Equal(t, 0, res.Post.CommentsCount)

	_, err = svc.DeleteComment(ctx, owner, created.Post.Id, commentId)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperror.From(err).Code)
}
