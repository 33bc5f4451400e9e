// Package detail manages the state of a single opened post: its like toggle,
// comment create/edit/delete, and the staged deletion of the post itself.
package detail

import (
	"context"
	"fmt"

	"github.com/amumal/amumal-cli/internal/client/models"
	"github.com/amumal/amumal-cli/internal/logging"
)

// API is the slice of the backend client the controller needs.
type API interface {
	GetPost(ctx context.Context, postID int64) (*models.Post, error)
	Like(ctx context.Context, postID, userID int64) (int64, error)
	Unlike(ctx context.Context, likeID int64) error
	CreateComment(ctx context.Context, postID, userID int64, content string) error
	UpdateComment(ctx context.Context, commentID int64, content string) error
	DeleteComment(ctx context.Context, commentID int64) error
	DeletePost(ctx context.Context, postID int64) error
}

// Controller holds the mutable view state for one post. Every mutation is
// confirmation-first: the server call happens before any local counter moves,
// so a failed call leaves the state exactly as it was.
type Controller struct {
	api    API
	log    logging.Logger
	viewer *models.Session

	postID int64
	post   *models.Post

	liked         bool
	likeID        int64
	likeCount     int64
	totalComments int64

	editingCommentID       int64
	pendingDeleteCommentID int64
	pendingDeletePost      bool
}

func NewController(api API, viewer *models.Session, postID int64, log logging.Logger) *Controller {
	return &Controller{api: api, viewer: viewer, postID: postID, log: log}
}

// Post returns the last fetched post, or nil before the first Refresh.
func (c *Controller) Post() *models.Post { return c.post }

// Liked reports whether the viewer currently likes the post.
func (c *Controller) Liked() bool { return c.liked }

// LikeCount returns the current like counter.
func (c *Controller) LikeCount() int64 { return c.likeCount }

// TotalComments returns the current comment counter.
func (c *Controller) TotalComments() int64 { return c.totalComments }

// EditingCommentID returns the comment being edited, or 0.
func (c *Controller) EditingCommentID() int64 { return c.editingCommentID }

// PendingDeleteCommentID returns the comment staged for deletion, or 0.
func (c *Controller) PendingDeleteCommentID() int64 { return c.pendingDeleteCommentID }

// PendingDeletePost reports whether post deletion has been staged.
func (c *Controller) PendingDeletePost() bool { return c.pendingDeletePost }

// Refresh re-fetches the post and overwrites all local state from the server
// copy. The server is authoritative after every mutation.
func (c *Controller) Refresh(ctx context.Context) error {
	post, err := c.api.GetPost(ctx, c.postID)
	if err != nil {
		return fmt.Errorf("loading post %d: %w", c.postID, err)
	}

	c.post = post
	c.likeCount = post.Likes.Int64()
	c.totalComments = post.CommentsCount.Int64()
	c.liked = post.IsLikedByMe
	if post.IsLikedByMe {
		c.likeID = post.LikeID.Int64()
	} else {
		c.likeID = 0
	}
	return nil
}

// ToggleLike likes or unlikes the post depending on the current state. The
// counter and flag only move after the server confirms.
func (c *Controller) ToggleLike(ctx context.Context) error {
	if c.liked {
		if c.likeID == 0 {
			// Liked without a known like id; nothing to delete.
			return nil
		}
		if err := c.api.Unlike(ctx, c.likeID); err != nil {
			return err
		}
		c.liked = false
		c.likeID = 0
		if c.likeCount > 0 {
			c.likeCount--
		}
		return nil
	}

	likeID, err := c.api.Like(ctx, c.postID, c.viewer.UserID)
	if err != nil {
		return err
	}
	c.liked = true
	c.likeID = likeID
	c.likeCount++
	return nil
}

// StartCommentEdit loads a comment into edit mode.
func (c *Controller) StartCommentEdit(commentID int64) { c.editingCommentID = commentID }

// CancelCommentEdit leaves edit mode without submitting.
func (c *Controller) CancelCommentEdit() { c.editingCommentID = 0 }

// SubmitComment creates a new comment, or updates the one in edit mode. On
// success the comment list is re-fetched; a create also bumps the counter so
// it is right even if the refresh fails. Edit mode is only cleared on success,
// so a failed update keeps the draft.
func (c *Controller) SubmitComment(ctx context.Context, content string) error {
	if c.editingCommentID != 0 {
		if err := c.api.UpdateComment(ctx, c.editingCommentID, content); err != nil {
			return err
		}
		c.editingCommentID = 0
	} else {
		if err := c.api.CreateComment(ctx, c.postID, c.viewer.UserID, content); err != nil {
			return err
		}
		c.totalComments++
	}
	return c.Refresh(ctx)
}

// StageCommentDelete records which comment a confirmation applies to.
func (c *Controller) StageCommentDelete(commentID int64) { c.pendingDeleteCommentID = commentID }

// CancelCommentDelete dismisses the staged deletion.
func (c *Controller) CancelCommentDelete() { c.pendingDeleteCommentID = 0 }

// ConfirmCommentDelete deletes the staged comment. The staged id is cleared
// whether or not the call succeeds; a stale id must never survive into the
// next confirmation.
func (c *Controller) ConfirmCommentDelete(ctx context.Context) error {
	if c.pendingDeleteCommentID == 0 {
		return nil
	}
	defer func() { c.pendingDeleteCommentID = 0 }()

	if err := c.api.DeleteComment(ctx, c.pendingDeleteCommentID); err != nil {
		return err
	}
	if c.totalComments > 0 {
		c.totalComments--
	}
	return c.Refresh(ctx)
}

// StagePostDelete records that the viewer asked to delete the post.
func (c *Controller) StagePostDelete() { c.pendingDeletePost = true }

// CancelPostDelete dismisses the staged post deletion.
func (c *Controller) CancelPostDelete() { c.pendingDeletePost = false }

// ConfirmPostDelete deletes the post. The caller is expected to leave the
// detail view on success.
func (c *Controller) ConfirmPostDelete(ctx context.Context) error {
	if !c.pendingDeletePost {
		return nil
	}
	defer func() { c.pendingDeletePost = false }()

	return c.api.DeletePost(ctx, c.postID)
}

// IsOwner reports whether the viewer wrote the post.
func (c *Controller) IsOwner() bool {
	return c.post != nil && c.viewer != nil && c.post.AuthorUserID.Int64() == c.viewer.UserID
}

// OwnsComment reports whether the viewer wrote the given comment.
func (c *Controller) OwnsComment(cm models.Comment) bool {
	return c.viewer != nil && cm.UserID.Int64() == c.viewer.UserID
}
