package cli

import (
	"context"
	"fmt"

	"github.com/amumal/amumal-cli/internal/client/forms"
	"github.com/amumal/amumal-cli/internal/client/models"
)

// submitLogin runs the login form and, on success, persists the session
// record. Every submit failure, wrong credentials and unreachable server
// alike, surfaces as the same form-level helper under the password field.
func (a *App) submitLogin(ctx context.Context) {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Already logged in as", a.session.Nickname)
		return
	}

	f := forms.NewLogin()
	if !a.fillField(ctx, f, forms.FieldEmail, "Enter email", false) {
		return
	}
	if !a.fillField(ctx, f, forms.FieldPassword, "Enter password", true) {
		return
	}
	if !f.CanSubmit() {
		return
	}

	email := f.Value(forms.FieldEmail)
	profile, err := a.accounts.Login(ctx, email, f.Value(forms.FieldPassword))
	if err != nil {
		f.SetFormHelper(forms.Helper{Text: forms.MsgLoginFailed, Kind: forms.HelperError})
		fmt.Fprintln(a.out, f.FormHelper().Text)
		return
	}

	if err := a.sessions.Save(ctx, *profile, email); err != nil {
		a.log.Error(ctx, "saving session", "error", err)
	}
	a.session = &models.Session{
		UserID:       profile.UserID.Int64(),
		Nickname:     profile.Nickname,
		ProfileImage: profile.ProfileImage,
		Email:        email,
	}
	fmt.Fprintf(a.out, "Welcome, %s!\n", a.session.Nickname)
}
