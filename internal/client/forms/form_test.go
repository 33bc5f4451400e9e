package forms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/amumal/amumal-cli/internal/client/api"
)

func staticCheck(status api.CheckStatus) CheckFunc {
	return func(context.Context, string) api.CheckStatus { return status }
}

func countingCheck(status api.CheckStatus, calls *int) CheckFunc {
	return func(context.Context, string) api.CheckStatus {
		*calls++
		return status
	}
}

func TestLogin_SubmitEnablement(t *testing.T) {
	ctx := context.Background()
	f := NewLogin()
	require.False(t, f.CanSubmit())

	f.SetValue(FieldEmail, "a@b.com")
	f.Blur(ctx, FieldEmail)
	require.False(t, f.CanSubmit())

	f.SetValue(FieldPassword, "Aa1!aaaa")
	f.Blur(ctx, FieldPassword)
	require.True(t, f.CanSubmit())
}

func TestLogin_BadEmailHelper(t *testing.T) {
	ctx := context.Background()
	f := NewLogin()

	f.SetValue(FieldEmail, "not-an-email")
	f.Blur(ctx, FieldEmail)

	h := f.Helper(FieldEmail)
	require.Equal(t, HelperError, h.Kind)
	require.Equal(t, MsgEmailFormat, h.Text)
	require.False(t, f.CanSubmit())
}

func TestLogin_EmptyPasswordUsesRequiredMessage(t *testing.T) {
	ctx := context.Background()
	f := NewLogin()

	f.Blur(ctx, FieldPassword)
	require.Equal(t, MsgPasswordRequired, f.Helper(FieldPassword).Text)

	f.SetValue(FieldPassword, "short")
	f.Blur(ctx, FieldPassword)
	require.Equal(t, MsgPasswordFormat, f.Helper(FieldPassword).Text)
}

func TestLogin_TypingClearsFormHelper(t *testing.T) {
	f := NewLogin()
	f.SetFormHelper(Helper{Text: MsgLoginFailed, Kind: HelperError})

	f.SetValue(FieldPassword, "Aa1!aaaa2")
	require.Empty(t, f.FormHelper().Text)
}

func TestSignup_UniqueEmailOutcomes(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		status     api.CheckStatus
		wantHelper string
		wantKind   HelperKind
		canPass    bool
	}{
		{"available", api.CheckAvailable, MsgEmailAvailable, HelperSuccess, true},
		{"taken", api.CheckTaken, MsgEmailTaken, HelperError, false},
		{"rejected downgrades valid", api.CheckRejected, MsgEmailFormat, HelperError, false},
		{"transient failure", api.CheckFailed, MsgEmailCheckFailed, HelperError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewSignup(staticCheck(tt.status), staticCheck(api.CheckAvailable))

			f.SetValue(FieldEmail, "x@y.com")
			f.Blur(ctx, FieldEmail)

			h := f.Helper(FieldEmail)
			require.Equal(t, tt.wantHelper, h.Text)
			require.Equal(t, tt.wantKind, h.Kind)

			// Fill the rest so the email flags alone decide submit.
			f.SetValue(FieldPassword, "Aa1!aaaa")
			f.Blur(ctx, FieldPassword)
			f.SetValue(FieldPasswordConfirm, "Aa1!aaaa")
			f.Blur(ctx, FieldPasswordConfirm)
			f.SetValue(FieldNickname, "dana")
			f.Blur(ctx, FieldNickname)

			require.Equal(t, tt.canPass, f.CanSubmit())
		})
	}
}

func TestSignup_EditInvalidatesAvailability(t *testing.T) {
	ctx := context.Background()
	f := NewSignup(staticCheck(api.CheckAvailable), staticCheck(api.CheckAvailable))

	f.SetValue(FieldEmail, "x@y.com")
	f.Blur(ctx, FieldEmail)
	f.SetValue(FieldPassword, "Aa1!aaaa")
	f.Blur(ctx, FieldPassword)
	f.SetValue(FieldPasswordConfirm, "Aa1!aaaa")
	f.Blur(ctx, FieldPasswordConfirm)
	f.SetValue(FieldNickname, "dana")
	f.Blur(ctx, FieldNickname)
	require.True(t, f.CanSubmit())

	// Editing the email retracts its availability until the next blur.
	f.SetValue(FieldEmail, "x2@y.com")
	require.False(t, f.CanSubmit())

	f.Blur(ctx, FieldEmail)
	require.True(t, f.CanSubmit())
}

func TestSignup_ConfirmTracksPasswordChanges(t *testing.T) {
	ctx := context.Background()
	f := NewSignup(staticCheck(api.CheckAvailable), staticCheck(api.CheckAvailable))

	f.SetValue(FieldPassword, "Aa1!aaaa")
	f.Blur(ctx, FieldPassword)
	f.SetValue(FieldPasswordConfirm, "Aa1!aaaa")
	f.Blur(ctx, FieldPasswordConfirm)
	require.Empty(t, f.Helper(FieldPasswordConfirm).Text)

	// Changing the primary password invalidates the confirmation.
	f.SetValue(FieldPassword, "Bb2@bbbb")
	require.Equal(t, MsgPasswordMismatch, f.Helper(FieldPasswordConfirm).Text)
	require.False(t, f.CanSubmit())

	f.SetValue(FieldPasswordConfirm, "Bb2@bbbb")
	require.Empty(t, f.Helper(FieldPasswordConfirm).Text)
}

func TestProfileEdit_UnchangedNicknameSkipsRoundTrip(t *testing.T) {
	ctx := context.Background()
	calls := 0
	f := NewProfileEdit("dana", countingCheck(api.CheckTaken, &calls))

	f.SetValue(FieldNickname, "dana")
	f.Blur(ctx, FieldNickname)

	require.Zero(t, calls)
	require.True(t, f.CanSubmit())
	require.Empty(t, f.Helper(FieldNickname).Text)
}

func TestProfileEdit_ChangedNicknameIsChecked(t *testing.T) {
	ctx := context.Background()
	calls := 0
	f := NewProfileEdit("dana", countingCheck(api.CheckTaken, &calls))

	f.SetValue(FieldNickname, "notdana")
	f.Blur(ctx, FieldNickname)

	require.Equal(t, 1, calls)
	require.False(t, f.CanSubmit())
	require.Equal(t, MsgNicknameTaken, f.Helper(FieldNickname).Text)
}

func TestPasswordEdit_Flow(t *testing.T) {
	ctx := context.Background()
	f := NewPasswordEdit()

	f.Blur(ctx, FieldCurrentPassword)
	require.Equal(t, MsgPasswordRequired, f.Helper(FieldCurrentPassword).Text)

	f.SetValue(FieldCurrentPassword, "whatever-old")
	f.Blur(ctx, FieldCurrentPassword)
	require.Empty(t, f.Helper(FieldCurrentPassword).Text)

	f.SetValue(FieldNewPassword, "Aa1!aaaa")
	f.Blur(ctx, FieldNewPassword)
	f.SetValue(FieldPasswordConfirm, "Aa1!bbbb")
	f.Blur(ctx, FieldPasswordConfirm)
	require.Equal(t, MsgPasswordMismatch, f.Helper(FieldPasswordConfirm).Text)
	require.False(t, f.CanSubmit())

	f.SetValue(FieldPasswordConfirm, "Aa1!aaaa")
	require.True(t, f.CanSubmit())
}

func TestCompose_RequiredHintAndTruncation(t *testing.T) {
	f := NewCompose()
	require.Equal(t, MsgComposeRequired, f.FormHelper().Text)
	require.False(t, f.CanSubmit())

	f.SetValue(FieldTitle, "hello")
	require.Equal(t, MsgComposeRequired, f.FormHelper().Text)

	f.SetValue(FieldContent, "body text")
	require.Empty(t, f.FormHelper().Text)
	require.True(t, f.CanSubmit())

	long := "이 제목은 아주 아주 아주 아주 아주 아주 깁니다 정말로요"
	f.SetValue(FieldTitle, long)
	require.LessOrEqual(t, len([]rune(f.Value(FieldTitle))), TitleMaxLen)

	// Blank content (whitespace only) does not count as filled.
	f.SetValue(FieldContent, "   ")
	require.False(t, f.CanSubmit())
	require.Equal(t, MsgComposeRequired, f.FormHelper().Text)
}
