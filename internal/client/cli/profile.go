package cli

import (
	"context"
	"fmt"

	"github.com/amumal/amumal-cli/internal/client/forms"
)

// editProfile changes nickname and/or profile image. The stored session is
// rewritten wholesale with the values the server settled on.
func (a *App) editProfile(ctx context.Context) {
	if !a.requireLogin() {
		return
	}

	fmt.Fprintf(a.out, "Current nickname: %s\n", a.session.Nickname)

	input, err := getSimpleText(a.reader, "New nickname (blank keeps current)", a.out)
	if err != nil {
		return
	}

	f := forms.NewProfileEdit(a.session.Nickname, a.accounts.CheckNickname)
	if input != "" {
		f.SetValue(forms.FieldNickname, input)
		f.Blur(ctx, forms.FieldNickname)
		if h := f.Helper(forms.FieldNickname); h.Text != "" {
			fmt.Fprintln(a.out, h.Text)
		}
		if !f.CanSubmit() {
			return
		}
	}
	nickname := f.Value(forms.FieldNickname)

	image := a.promptImageUpload(ctx, "Profile image file")

	upd, err := a.accounts.UpdateProfile(ctx, a.session.UserID, nickname, image)
	if err != nil {
		fmt.Fprintln(a.out, "프로필을 수정하지 못했습니다.")
		return
	}

	a.session.Nickname = upd.Nickname
	if upd.ProfileImage != "" {
		a.session.ProfileImage = upd.ProfileImage
	}
	if err := a.sessions.Put(ctx, a.session); err != nil {
		a.log.Error(ctx, "saving session", "error", err)
	}
	fmt.Fprintln(a.out, "수정완료")
}
