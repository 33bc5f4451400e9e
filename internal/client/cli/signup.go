package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/amumal/amumal-cli/internal/client/api"
	"github.com/amumal/amumal-cli/internal/client/forms"
)

// submitSignup runs the signup form, uploads an optional profile image and
// creates the account. The user still logs in afterwards; signup never starts
// a session by itself.
func (a *App) submitSignup(ctx context.Context) {
	f := forms.NewSignup(a.accounts.CheckEmail, a.accounts.CheckNickname)

	if !a.fillField(ctx, f, forms.FieldEmail, "Enter email", false) {
		return
	}
	if !a.fillField(ctx, f, forms.FieldPassword, "Enter password", true) {
		return
	}
	if !a.fillField(ctx, f, forms.FieldPasswordConfirm, "Confirm password", true) {
		return
	}
	if !a.fillField(ctx, f, forms.FieldNickname, "Enter nickname", false) {
		return
	}
	if !f.CanSubmit() {
		return
	}

	image := a.promptImageUpload(ctx, "Profile image file")

	err := a.accounts.Signup(ctx, api.SignupRequest{
		Email:        f.Value(forms.FieldEmail),
		Password:     f.Value(forms.FieldPassword),
		Nickname:     f.Value(forms.FieldNickname),
		ProfileImage: image,
	})
	if err != nil {
		fmt.Fprintln(a.out, "Signup failed:", err)
		return
	}
	fmt.Fprintln(a.out, "Account created. Please login.")
}

// promptImageUpload asks for a local file path, uploads it and returns the
// server-side path. A blank answer or any failure means no image.
func (a *App) promptImageUpload(ctx context.Context, label string) *string {
	path, err := getSimpleText(a.reader, label+" (blank to skip)", a.out)
	if err != nil || path == "" {
		return nil
	}

	file, err := os.Open(path)
	if err != nil {
		fmt.Fprintln(a.out, "Cannot open file:", err)
		return nil
	}
	defer file.Close()

	serverPath, err := a.accounts.UploadImage(ctx, filepath.Base(path), file)
	if err != nil {
		fmt.Fprintln(a.out, "Image upload failed, continuing without one.")
		return nil
	}
	return &serverPath
}
