package cli

import (
	"context"
	"fmt"

	"github.com/amumal/amumal-cli/internal/client/api"
	"github.com/amumal/amumal-cli/internal/client/forms"
)

// writePost runs the compose form and creates a new post.
func (a *App) writePost(ctx context.Context) {
	if !a.requireLogin() {
		return
	}

	f := forms.NewCompose()
	req, ok := a.fillCompose(ctx, f, "", "")
	if !ok {
		return
	}

	if err := a.posts.CreatePost(ctx, req); err != nil {
		fmt.Fprintln(a.out, "게시글을 등록하지 못했습니다.")
		return
	}
	fmt.Fprintln(a.out, "게시글이 등록되었습니다.")
	a.feed = nil
}

// editPost loads the current content as defaults and submits an update.
// Pressing Enter on a field keeps its previous value.
func (a *App) editPost(ctx context.Context, postID int64) {
	if !a.requireLogin() {
		return
	}

	post, err := a.posts.GetPost(ctx, postID)
	if err != nil {
		fmt.Fprintln(a.out, "게시글을 불러오지 못했습니다.")
		return
	}
	if post.AuthorUserID.Int64() != a.session.UserID {
		fmt.Fprintln(a.out, "Only the author can edit this post.")
		return
	}

	f := forms.NewCompose()
	req, ok := a.fillCompose(ctx, f, post.Title, post.Content)
	if !ok {
		return
	}

	if err := a.posts.UpdatePost(ctx, postID, req); err != nil {
		fmt.Fprintln(a.out, "게시글을 수정하지 못했습니다.")
		return
	}
	fmt.Fprintln(a.out, "게시글이 수정되었습니다.")
	a.feed = nil
}

// fillCompose gathers title, content and the optional image. Blank input
// falls back to the provided defaults (empty on a fresh compose).
func (a *App) fillCompose(ctx context.Context, f *forms.Form, defaultTitle, defaultContent string) (api.PostRequest, bool) {
	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return api.PostRequest{}, false
	}
	if title == "" {
		title = defaultTitle
	}
	f.SetValue(forms.FieldTitle, title)

	content, err := getMultiline(a.reader, "Content", a.out)
	if err != nil {
		return api.PostRequest{}, false
	}
	if content == "" {
		content = defaultContent
	}
	f.SetValue(forms.FieldContent, content)

	if !f.CanSubmit() {
		fmt.Fprintln(a.out, f.FormHelper().Text)
		return api.PostRequest{}, false
	}

	image := a.promptImageUpload(ctx, "Image file")

	return api.PostRequest{
		UserID:   a.session.UserID,
		Title:    f.Value(forms.FieldTitle),
		Content:  f.Value(forms.FieldContent),
		ImageURL: image,
	}, true
}
