package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/amumal/amumal-cli/internal/client/api"
	"github.com/amumal/amumal-cli/internal/client/config"
	"github.com/amumal/amumal-cli/internal/client/models"
	"github.com/amumal/amumal-cli/internal/logging"
)

// fakeAccounts implements AccountAPI with canned responses.
type fakeAccounts struct {
	loginProfile *models.Profile
	loginErr     error
	loginEmail   string
	loginPass    string

	logoutCalled bool
	logoutErr    error

	deleteCalled bool
	deleteErr    error

	updatePasswordErr  error
	updatePasswordCur  string
	updatePasswordNext string
}

func (f *fakeAccounts) Login(_ context.Context, email, password string) (*models.Profile, error) {
	f.loginEmail, f.loginPass = email, password
	return f.loginProfile, f.loginErr
}

func (f *fakeAccounts) Logout(context.Context, int64) error {
	f.logoutCalled = true
	return f.logoutErr
}

func (f *fakeAccounts) Signup(context.Context, api.SignupRequest) error { return nil }

func (f *fakeAccounts) CheckEmail(context.Context, string) api.CheckStatus {
	return api.CheckAvailable
}

func (f *fakeAccounts) CheckNickname(context.Context, string) api.CheckStatus {
	return api.CheckAvailable
}

func (f *fakeAccounts) UpdateProfile(_ context.Context, _ int64, nickname string, _ *string) (*models.ProfileUpdate, error) {
	return &models.ProfileUpdate{Nickname: nickname}, nil
}

func (f *fakeAccounts) UpdatePassword(_ context.Context, _ int64, current, next string) error {
	f.updatePasswordCur, f.updatePasswordNext = current, next
	return f.updatePasswordErr
}

func (f *fakeAccounts) DeleteAccount(context.Context, int64) error {
	f.deleteCalled = true
	return f.deleteErr
}

func (f *fakeAccounts) UploadImage(context.Context, string, io.Reader) (string, error) {
	return "", nil
}

// fakeSessions implements SessionStore in memory.
type fakeSessions struct {
	saved   *models.Session
	cleared bool
}

func (f *fakeSessions) Save(_ context.Context, profile models.Profile, email string) error {
	f.saved = &models.Session{
		UserID:       profile.UserID.Int64(),
		Nickname:     profile.Nickname,
		ProfileImage: profile.ProfileImage,
		Email:        email,
	}
	return nil
}

func (f *fakeSessions) Put(_ context.Context, sess *models.Session) error {
	f.saved = sess
	return nil
}

func (f *fakeSessions) Load(context.Context) (*models.Session, error) {
	return f.saved, nil
}

func (f *fakeSessions) Clear(context.Context) error {
	f.cleared = true
	f.saved = nil
	return nil
}

// stubInputs replaces the interactive input seams with canned answers,
// consumed in order. Restores the originals via the returned func.
func stubInputs(t *testing.T, texts []string, passwords []string) func() {
	t.Helper()
	origST, origGP := getSimpleText, getPassword

	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(texts) == 0 {
			return "", io.EOF
		}
		v := texts[0]
		texts = texts[1:]
		return v, nil
	}
	getPassword = func(_ string, _ io.Writer) (string, error) {
		if len(passwords) == 0 {
			return "", io.EOF
		}
		v := passwords[0]
		passwords = passwords[1:]
		return v, nil
	}

	return func() {
		getSimpleText = origST
		getPassword = origGP
	}
}

func stubConfirm(t *testing.T, answer bool) func() {
	t.Helper()
	orig := confirm
	confirm = func(_ *bufio.Reader, _ string, _ io.Writer) bool { return answer }
	return func() { confirm = orig }
}

func newTestApp(accounts *fakeAccounts, sessions *fakeSessions) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	cfg := &config.Config{}
	cfg.LoadDefaults()
	return &App{
		config:   cfg,
		accounts: accounts,
		sessions: sessions,
		log:      logging.Discard(),
		out:      &out,
	}, &out
}
