package detail

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/amumal/amumal-cli/internal/client/models"
	"github.com/amumal/amumal-cli/internal/logging"
)

type fakeAPI struct {
	post *models.Post

	likeErr    error
	unlikeErr  error
	commentErr error
	deleteErr  error

	likeCalls    int
	unlikeCalls  int
	createCalls  int
	updateCalls  int
	deleteCalls  int
	deletedPosts int

	lastDeletedComment int64
	lastUpdatedComment int64
	lastContent        string

	nextLikeID int64
}

func (f *fakeAPI) GetPost(ctx context.Context, postID int64) (*models.Post, error) {
	if f.post == nil {
		return nil, errors.New("not found")
	}
	return f.post, nil
}

func (f *fakeAPI) Like(ctx context.Context, postID, userID int64) (int64, error) {
	f.likeCalls++
	if f.likeErr != nil {
		return 0, f.likeErr
	}
	return f.nextLikeID, nil
}

func (f *fakeAPI) Unlike(ctx context.Context, likeID int64) error {
	f.unlikeCalls++
	return f.unlikeErr
}

func (f *fakeAPI) CreateComment(ctx context.Context, postID, userID int64, content string) error {
	f.createCalls++
	f.lastContent = content
	return f.commentErr
}

func (f *fakeAPI) UpdateComment(ctx context.Context, commentID int64, content string) error {
	f.updateCalls++
	f.lastUpdatedComment = commentID
	f.lastContent = content
	return f.commentErr
}

func (f *fakeAPI) DeleteComment(ctx context.Context, commentID int64) error {
	f.deleteCalls++
	f.lastDeletedComment = commentID
	return f.deleteErr
}

func (f *fakeAPI) DeletePost(ctx context.Context, postID int64) error {
	f.deletedPosts++
	return f.deleteErr
}

func viewer(id int64) *models.Session {
	return &models.Session{UserID: id, Nickname: "dana", Email: "dana@example.com"}
}

func testPost() *models.Post {
	return &models.Post{
		PostID:        7,
		Title:         "hello",
		Likes:         3,
		CommentsCount: 2,
		AuthorUserID:  42,
		IsLikedByMe:   false,
		Comments: []models.Comment{
			{CommentID: 100, UserID: 42, Content: "first"},
			{CommentID: 101, UserID: 9, Content: "second"},
		},
	}
}

func TestRefresh_OverwritesLocalState(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{post: testPost()}
	api.post.IsLikedByMe = true
	api.post.LikeID = 55

	c := NewController(api, viewer(42), 7, logging.Discard())
	require.NoError(t, c.Refresh(ctx))

	require.True(t, c.Liked())
	require.Equal(t, int64(3), c.LikeCount())
	require.Equal(t, int64(2), c.TotalComments())
	require.True(t, c.IsOwner())
}

func TestRefresh_IgnoresLikeIDWhenNotLiked(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{post: testPost()}
	// A stale like id alongside is_liked_by_me=false must not be kept.
	api.post.LikeID = 55

	c := NewController(api, viewer(9), 7, logging.Discard())
	require.NoError(t, c.Refresh(ctx))

	require.False(t, c.Liked())
	require.NoError(t, c.ToggleLike(ctx))
	require.Equal(t, 1, api.likeCalls)
	require.Zero(t, api.unlikeCalls)
}

func TestToggleLike_ConfirmationFirst(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{post: testPost(), nextLikeID: 88}
	c := NewController(api, viewer(9), 7, logging.Discard())
	require.NoError(t, c.Refresh(ctx))

	require.NoError(t, c.ToggleLike(ctx))
	require.True(t, c.Liked())
	require.Equal(t, int64(4), c.LikeCount())

	require.NoError(t, c.ToggleLike(ctx))
	require.False(t, c.Liked())
	require.Equal(t, int64(3), c.LikeCount())
}

func TestToggleLike_FailureLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{post: testPost(), likeErr: errors.New("503")}
	c := NewController(api, viewer(9), 7, logging.Discard())
	require.NoError(t, c.Refresh(ctx))

	err := c.ToggleLike(ctx)

	require.Error(t, err)
	require.False(t, c.Liked())
	require.Equal(t, int64(3), c.LikeCount())
}

func TestToggleLike_UnlikeWithoutLikeIDIsNoop(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{post: testPost()}
	c := NewController(api, viewer(9), 7, logging.Discard())
	c.liked = true // no likeID known

	require.NoError(t, c.ToggleLike(ctx))
	require.Zero(t, api.unlikeCalls)
}

func TestSubmitComment_CreateBumpsCounter(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{post: testPost()}
	c := NewController(api, viewer(9), 7, logging.Discard())
	require.NoError(t, c.Refresh(ctx))

	require.NoError(t, c.SubmitComment(ctx, "nice post"))

	require.Equal(t, 1, api.createCalls)
	require.Equal(t, "nice post", api.lastContent)
	// Refresh pulls the server counter back; here the fake still says 2,
	// which models the server having the final word.
	require.Equal(t, int64(2), c.TotalComments())
}

func TestSubmitComment_EditModeUpdatesAndClears(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{post: testPost()}
	c := NewController(api, viewer(42), 7, logging.Discard())
	require.NoError(t, c.Refresh(ctx))

	c.StartCommentEdit(100)
	require.NoError(t, c.SubmitComment(ctx, "edited"))

	require.Equal(t, 1, api.updateCalls)
	require.Zero(t, api.createCalls)
	require.Equal(t, int64(100), api.lastUpdatedComment)
	require.Zero(t, c.EditingCommentID())
}

func TestSubmitComment_FailedUpdateKeepsEditMode(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{post: testPost(), commentErr: errors.New("500")}
	c := NewController(api, viewer(42), 7, logging.Discard())
	require.NoError(t, c.Refresh(ctx))

	c.StartCommentEdit(100)
	require.Error(t, c.SubmitComment(ctx, "edited"))

	// The draft survives so the user can retry.
	require.Equal(t, int64(100), c.EditingCommentID())
}

func TestCommentDelete_TwoPhase(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{post: testPost()}
	c := NewController(api, viewer(42), 7, logging.Discard())
	require.NoError(t, c.Refresh(ctx))

	c.StageCommentDelete(100)
	require.Equal(t, int64(100), c.PendingDeleteCommentID())

	require.NoError(t, c.ConfirmCommentDelete(ctx))
	require.Equal(t, 1, api.deleteCalls)
	require.Equal(t, int64(100), api.lastDeletedComment)
	require.Zero(t, c.PendingDeleteCommentID())
}

func TestCommentDelete_CancelIssuesNoRequest(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{post: testPost()}
	c := NewController(api, viewer(42), 7, logging.Discard())
	require.NoError(t, c.Refresh(ctx))

	// Staging twice keeps only the latest target; cancelling drops it.
	c.StageCommentDelete(100)
	c.StageCommentDelete(101)
	c.CancelCommentDelete()

	require.NoError(t, c.ConfirmCommentDelete(ctx))
	require.Zero(t, api.deleteCalls)
}

func TestCommentDelete_FailureStillClearsStagedID(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{post: testPost(), deleteErr: errors.New("500")}
	c := NewController(api, viewer(42), 7, logging.Discard())
	require.NoError(t, c.Refresh(ctx))

	c.StageCommentDelete(100)
	require.Error(t, c.ConfirmCommentDelete(ctx))
	require.Zero(t, c.PendingDeleteCommentID())
}

func TestPostDelete_TwoPhase(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{post: testPost()}
	c := NewController(api, viewer(42), 7, logging.Discard())
	require.NoError(t, c.Refresh(ctx))

	require.NoError(t, c.ConfirmPostDelete(ctx))
	require.Zero(t, api.deletedPosts)

	c.StagePostDelete()
	require.True(t, c.PendingDeletePost())
	require.NoError(t, c.ConfirmPostDelete(ctx))
	require.Equal(t, 1, api.deletedPosts)
	require.False(t, c.PendingDeletePost())
}

func TestOwnership(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{post: testPost()}
	c := NewController(api, viewer(9), 7, logging.Discard())
	require.NoError(t, c.Refresh(ctx))

	require.False(t, c.IsOwner())
	require.False(t, c.OwnsComment(c.Post().Comments[0]))
	require.True(t, c.OwnsComment(c.Post().Comments[1]))
}
