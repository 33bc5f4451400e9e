package cli

import (
	"context"
	"fmt"
)

// logout tells the server best-effort and always discards the local session.
func (a *App) logout(ctx context.Context) {
	if !a.requireLogin() {
		return
	}

	if err := a.accounts.Logout(ctx, a.session.UserID); err != nil {
		a.log.Warn(ctx, "server logout failed", "error", err)
	}
	if err := a.sessions.Clear(ctx); err != nil {
		a.log.Error(ctx, "clearing session", "error", err)
	}
	a.session = nil
	a.feed = nil
	fmt.Fprintln(a.out, "Logged out.")
}

// unregister deletes the account after an explicit confirmation, then clears
// the local session the same way logout does.
func (a *App) unregister(ctx context.Context) {
	if !a.requireLogin() {
		return
	}

	if !confirm(a.reader, "회원탈퇴 하시겠습니까?", a.out) {
		return
	}

	if err := a.accounts.DeleteAccount(ctx, a.session.UserID); err != nil {
		fmt.Fprintln(a.out, "회원탈퇴에 실패했습니다.")
		return
	}
	if err := a.sessions.Clear(ctx); err != nil {
		a.log.Error(ctx, "clearing session", "error", err)
	}
	a.session = nil
	a.feed = nil
	fmt.Fprintln(a.out, "회원탈퇴가 완료되었습니다.")
}
