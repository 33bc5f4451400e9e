// Package models defines the data shapes exchanged with the posting backend
// and the locally persisted session record.
package models

// PostSummary is a single card in the paginated feed.
type PostSummary struct {
	PostID             Number `json:"post_id"`
	Title              string `json:"title"`
	Summary            string `json:"summary"`
	Likes              Number `json:"likes"`
	CommentsCount      Number `json:"comments_count"`
	Views              Number `json:"views"`
	CreatedAt          string `json:"created_at"`
	AuthorNickname     string `json:"author_nickname"`
	AuthorProfileImage string `json:"author_profile_image"`
}

// FeedPage is one page of the feed. NextCursor is nil on the last page.
type FeedPage struct {
	PostList   []PostSummary `json:"post_list"`
	NextCursor *int64        `json:"next_cursor"`
}

// Post is the full detail view of a single post.
type Post struct {
	PostID             Number    `json:"post_id"`
	Title              string    `json:"title"`
	Content            string    `json:"content"`
	ImageURL           string    `json:"image_url"`
	Likes              Number    `json:"likes"`
	CommentsCount      Number    `json:"comments_count"`
	Views              Number    `json:"views"`
	CreatedAt          string    `json:"created_at"`
	AuthorUserID       Number    `json:"author_user_id"`
	AuthorNickname     string    `json:"author_nickname"`
	AuthorProfileImage string    `json:"author_profile_image"`
	IsLikedByMe        bool      `json:"is_liked_by_me"`
	LikeID             Number    `json:"like_id"`
	Comments           []Comment `json:"comments"`
}

// Comment is a single comment on a post.
type Comment struct {
	CommentID          Number `json:"comment_id"`
	UserID             Number `json:"user_id"`
	Content            string `json:"content"`
	CreatedAt          string `json:"created_at"`
	AuthorNickname     string `json:"author_nickname"`
	AuthorProfileImage string `json:"author_profile_image"`
}
