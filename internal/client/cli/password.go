package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/amumal/amumal-cli/internal/client/api"
	"github.com/amumal/amumal-cli/internal/client/forms"
)

// editPassword runs the password-change form. The server is the authority on
// the current password; a rejection lands on the current-password field.
func (a *App) editPassword(ctx context.Context) {
	if !a.requireLogin() {
		return
	}

	f := forms.NewPasswordEdit()
	if !a.fillField(ctx, f, forms.FieldCurrentPassword, "Current password", true) {
		return
	}
	if !a.fillField(ctx, f, forms.FieldNewPassword, "New password", true) {
		return
	}
	if !a.fillField(ctx, f, forms.FieldPasswordConfirm, "Confirm new password", true) {
		return
	}
	if !f.CanSubmit() {
		return
	}

	err := a.accounts.UpdatePassword(ctx, a.session.UserID,
		f.Value(forms.FieldCurrentPassword), f.Value(forms.FieldNewPassword))
	if err != nil {
		if errors.Is(err, api.ErrInvalidPassword) {
			fmt.Fprintln(a.out, forms.MsgCurrentPwdWrong)
		} else {
			fmt.Fprintln(a.out, "비밀번호를 수정하지 못했습니다.")
		}
		return
	}
	fmt.Fprintln(a.out, "수정완료")
}
