package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/amumal/amumal-cli/internal/client/detail"
)

// openPost loads a single post and enters its sub-loop: like toggling,
// comments and the two-phase delete confirmations all live here.
func (a *App) openPost(ctx context.Context, postID int64) {
	if !a.requireLogin() {
		return
	}

	c := detail.NewController(a.posts, a.session, postID, a.log)
	if err := c.Refresh(ctx); err != nil {
		fmt.Fprintln(a.out, "게시글을 불러오지 못했습니다.")
		return
	}
	a.renderDetail(c)

	for {
		line, err := getSimpleText(a.reader,
			"commands: like, comment, editc <id>, delc <id>, edit, delete, refresh, back", a.out)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "like":
			a.toggleLike(ctx, c)
		case "comment":
			a.submitComment(ctx, c)
		case "editc":
			a.editComment(ctx, c, parts[1:])
		case "delc":
			a.deleteComment(ctx, c, parts[1:])
		case "edit":
			if !c.IsOwner() {
				fmt.Fprintln(a.out, "Only the author can edit this post.")
				continue
			}
			a.editPost(ctx, postID)
			if err := c.Refresh(ctx); err == nil {
				a.renderDetail(c)
			}
		case "delete":
			if a.deletePost(ctx, c) {
				return
			}
		case "refresh":
			if err := c.Refresh(ctx); err != nil {
				fmt.Fprintln(a.out, "게시글을 불러오지 못했습니다.")
				continue
			}
			a.renderDetail(c)
		case "back":
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", parts[0])
		}
	}
}

func (a *App) renderDetail(c *detail.Controller) {
	renderPost(a.out, c.Post(), c.LikeCount(), c.TotalComments(), c.Liked())
}

func (a *App) toggleLike(ctx context.Context, c *detail.Controller) {
	if err := c.ToggleLike(ctx); err != nil {
		fmt.Fprintln(a.out, "요청을 처리하지 못했습니다.")
		return
	}
	fmt.Fprintf(a.out, "likes %s\n", FormatCount(c.LikeCount()))
}

func (a *App) submitComment(ctx context.Context, c *detail.Controller) {
	content, err := getMultiline(a.reader, "댓글을 남겨주세요!", a.out)
	if err != nil || content == "" {
		return
	}
	if err := c.SubmitComment(ctx, content); err != nil {
		fmt.Fprintln(a.out, "댓글을 등록하지 못했습니다.")
		return
	}
	a.renderDetail(c)
}

func (a *App) editComment(ctx context.Context, c *detail.Controller, args []string) {
	id, ok := a.parseCommentID(c, args, "editc <id>")
	if !ok {
		return
	}

	c.StartCommentEdit(id)
	content, err := getMultiline(a.reader, "댓글을 수정하세요", a.out)
	if err != nil || content == "" {
		c.CancelCommentEdit()
		return
	}
	if err := c.SubmitComment(ctx, content); err != nil {
		fmt.Fprintln(a.out, "댓글을 수정하지 못했습니다.")
		c.CancelCommentEdit()
		return
	}
	a.renderDetail(c)
}

func (a *App) deleteComment(ctx context.Context, c *detail.Controller, args []string) {
	id, ok := a.parseCommentID(c, args, "delc <id>")
	if !ok {
		return
	}

	c.StageCommentDelete(id)
	if !confirm(a.reader, "댓글을 삭제하시겠습니까?", a.out) {
		c.CancelCommentDelete()
		return
	}
	if err := c.ConfirmCommentDelete(ctx); err != nil {
		fmt.Fprintln(a.out, "댓글을 삭제하지 못했습니다.")
		return
	}
	a.renderDetail(c)
}

// deletePost runs the staged post deletion. Returns true when the post is
// gone and the sub-loop should exit.
func (a *App) deletePost(ctx context.Context, c *detail.Controller) bool {
	if !c.IsOwner() {
		fmt.Fprintln(a.out, "Only the author can delete this post.")
		return false
	}

	c.StagePostDelete()
	if !confirm(a.reader, "게시글을 삭제하시겠습니까?", a.out) {
		c.CancelPostDelete()
		return false
	}
	if err := c.ConfirmPostDelete(ctx); err != nil {
		fmt.Fprintln(a.out, "게시글을 삭제하지 못했습니다.")
		return false
	}
	fmt.Fprintln(a.out, "게시글이 삭제되었습니다.")
	return true
}

// parseCommentID parses and authorizes a comment id argument. Only the
// comment's author may edit or delete it.
func (a *App) parseCommentID(c *detail.Controller, args []string, usage string) (int64, bool) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage:", usage)
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Invalid id:", args[0])
		return 0, false
	}

	for _, cm := range c.Post().Comments {
		if cm.CommentID.Int64() == id {
			if !c.OwnsComment(cm) {
				fmt.Fprintln(a.out, "Only the author can change this comment.")
				return 0, false
			}
			return id, true
		}
	}
	fmt.Fprintln(a.out, "No such comment:", args[0])
	return 0, false
}
