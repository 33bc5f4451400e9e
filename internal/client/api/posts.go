package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/amumal/amumal-cli/internal/client/models"
)

// ListPosts fetches one feed page starting after cursorID. A malformed page
// (missing post_list) is an error; the paginator treats it as terminal.
func (c *Client) ListPosts(ctx context.Context, cursorID int64, count int) (*models.FeedPage, error) {
	r, err := c.do(ctx, http.MethodGet, "/posts", nil, Query{"cursor_id": cursorID, "count": count})
	if err != nil {
		return nil, err
	}
	if r.Status != http.StatusOK {
		return nil, rejected(r)
	}

	var page models.FeedPage
	if err := r.DecodeData(&page); err != nil {
		return nil, fmt.Errorf("decode feed page: %w", err)
	}
	if page.PostList == nil {
		return nil, fmt.Errorf("feed page missing post_list")
	}
	return &page, nil
}

// GetPost fetches the full detail of one post, comments included.
func (c *Client) GetPost(ctx context.Context, postID int64) (*models.Post, error) {
	r, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/posts/%d", postID), nil, nil)
	if err != nil {
		return nil, err
	}
	if !r.OK(http.StatusOK, "post_detail_success") {
		return nil, rejected(r)
	}

	var post models.Post
	if err := r.DecodeData(&post); err != nil {
		return nil, fmt.Errorf("decode post detail: %w", err)
	}
	return &post, nil
}

// PostRequest is the payload for creating or updating a post. ImageURL is a
// server path from a prior upload, or nil for none.
type PostRequest struct {
	UserID   int64   `json:"user_id"`
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	ImageURL *string `json:"image_url"`
}

func (c *Client) CreatePost(ctx context.Context, req PostRequest) error {
	r, err := c.do(ctx, http.MethodPost, "/posts", req, nil)
	if err != nil {
		return err
	}
	if !r.OK(http.StatusCreated, "post_create_success") {
		return rejected(r)
	}
	return nil
}

func (c *Client) UpdatePost(ctx context.Context, postID int64, req PostRequest) error {
	r, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/posts/%d", postID), req, nil)
	if err != nil {
		return err
	}
	if !r.OK(http.StatusOK, "post_update_success") {
		return rejected(r)
	}
	return nil
}

func (c *Client) DeletePost(ctx context.Context, postID int64) error {
	r, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/posts/%d", postID), nil, nil)
	if err != nil {
		return err
	}
	if !r.OK(http.StatusOK, "post_delete_success") {
		return rejected(r)
	}
	return nil
}

type likeRequest struct {
	PostID int64 `json:"post_id"`
	UserID int64 `json:"user_id"`
}

// Like registers a like and returns the like id needed to reverse it.
func (c *Client) Like(ctx context.Context, postID, userID int64) (int64, error) {
	r, err := c.do(ctx, http.MethodPost, "/like", likeRequest{PostID: postID, UserID: userID}, nil)
	if err != nil {
		return 0, err
	}
	if !r.OK(http.StatusCreated, "like_create_success") {
		return 0, rejected(r)
	}

	var data struct {
		LikeID models.Number `json:"like_id"`
	}
	if err := r.DecodeData(&data); err != nil {
		return 0, fmt.Errorf("decode like id: %w", err)
	}
	return data.LikeID.Int64(), nil
}

// Unlike removes a like by the id obtained when it was created.
func (c *Client) Unlike(ctx context.Context, likeID int64) error {
	r, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/like/%d", likeID), nil, nil)
	if err != nil {
		return err
	}
	if !r.OK(http.StatusOK, "like_delete_success") {
		return rejected(r)
	}
	return nil
}

type commentCreateRequest struct {
	PostID  int64  `json:"post_id"`
	UserID  int64  `json:"user_id"`
	Content string `json:"content"`
}

func (c *Client) CreateComment(ctx context.Context, postID, userID int64, content string) error {
	body := commentCreateRequest{PostID: postID, UserID: userID, Content: content}
	r, err := c.do(ctx, http.MethodPost, "/comment", body, nil)
	if err != nil {
		return err
	}
	if !r.OK(http.StatusCreated, "comment_create_success") {
		return rejected(r)
	}
	return nil
}

type commentUpdateRequest struct {
	Content string `json:"content"`
}

func (c *Client) UpdateComment(ctx context.Context, commentID int64, content string) error {
	r, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/comment/%d", commentID), commentUpdateRequest{Content: content}, nil)
	if err != nil {
		return err
	}
	if !r.OK(http.StatusOK, "comment_update_success") {
		return rejected(r)
	}
	return nil
}

func (c *Client) DeleteComment(ctx context.Context, commentID int64) error {
	r, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/comment/%d", commentID), nil, nil)
	if err != nil {
		return err
	}
	if !r.OK(http.StatusOK, "comment_delete_success") {
		return rejected(r)
	}
	return nil
}
