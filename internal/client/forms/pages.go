package forms

import "github.com/amumal/amumal-cli/internal/validate"

// Field names shared by the page constructors.
const (
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldPasswordConfirm = "password_confirm"
	FieldNickname        = "nickname"
	FieldCurrentPassword = "current_password"
	FieldNewPassword     = "new_password"
	FieldTitle           = "title"
	FieldContent         = "content"
)

// TitleMaxLen caps post titles; longer input is truncated as it is typed.
const TitleMaxLen = 26

func nonEmpty(s string) bool { return s != "" }

// NewLogin builds the login form: email and password, both format-checked
// on blur. Submit failures land in the form-level helper.
func NewLogin() *Form {
	f := newForm()
	f.addField(FieldEmail, &field{
		kind:     FieldFormat,
		validate: validate.Email,
		trim:     true,
		messages: Messages{Format: MsgEmailFormat},
	})
	f.addField(FieldPassword, &field{
		kind:     FieldFormat,
		validate: validate.Password,
		messages: Messages{Required: MsgPasswordRequired, Format: MsgPasswordFormat},
	})
	return f
}

// NewSignup builds the signup form. Email and nickname are uniqueness-checked
// against the server; the password confirmation tracks the password field.
func NewSignup(checkEmail, checkNickname CheckFunc) *Form {
	f := newForm()
	f.addField(FieldEmail, &field{
		kind:     FieldUnique,
		validate: validate.Email,
		check:    checkEmail,
		trim:     true,
		messages: Messages{
			Format:      MsgEmailFormat,
			Taken:       MsgEmailTaken,
			CheckFailed: MsgEmailCheckFailed,
			Available:   MsgEmailAvailable,
		},
	})
	f.addField(FieldPassword, &field{
		kind:     FieldFormat,
		validate: validate.Password,
		messages: Messages{Required: MsgPasswordRequired, Format: MsgPasswordFormat},
	})
	f.addField(FieldPasswordConfirm, &field{
		kind:     FieldConfirm,
		matches:  FieldPassword,
		messages: Messages{Required: MsgPasswordRequired, Format: MsgPasswordMismatch},
	})
	f.addField(FieldNickname, &field{
		kind:     FieldUnique,
		validate: validate.Nickname,
		check:    checkNickname,
		trim:     true,
		messages: Messages{
			Required:    MsgNicknameRequired,
			Format:      MsgNicknameFormat,
			Taken:       MsgNicknameTaken,
			CheckFailed: MsgNicknameCheckFailed,
			Available:   MsgNicknameAvailable,
		},
	})
	return f
}

// NewProfileEdit builds the profile-edit form. A nickname left at its
// originally loaded value skips the availability round-trip.
func NewProfileEdit(initialNickname string, checkNickname CheckFunc) *Form {
	f := newForm()
	f.addField(FieldNickname, &field{
		kind:      FieldUnique,
		validate:  validate.Nickname,
		check:     checkNickname,
		trim:      true,
		initial:   initialNickname,
		isEdit:    true,
		value:     initialNickname,
		valid:     true,
		available: true,
		messages: Messages{
			Required:    MsgNicknameRequired,
			Format:      MsgNicknameFormat,
			Taken:       MsgNicknameTaken,
			CheckFailed: MsgNicknameCheckFailed,
			Available:   MsgNicknameAvailable,
		},
	})
	return f
}

// NewPasswordEdit builds the password-change form. The current password only
// needs to be present; the server is the authority on whether it is right.
func NewPasswordEdit() *Form {
	f := newForm()
	f.addField(FieldCurrentPassword, &field{
		kind:     FieldFormat,
		validate: nonEmpty,
		messages: Messages{Required: MsgPasswordRequired, Format: MsgPasswordRequired},
	})
	f.addField(FieldNewPassword, &field{
		kind:     FieldFormat,
		validate: validate.Password,
		messages: Messages{Required: MsgPasswordRequired, Format: MsgPasswordFormat},
	})
	f.addField(FieldPasswordConfirm, &field{
		kind:     FieldConfirm,
		matches:  FieldNewPassword,
		messages: Messages{Required: MsgPasswordRequired, Format: MsgPasswordMismatch},
	})
	return f
}

// NewCompose builds the post create/edit form: title and content are both
// required, title capped while typing.
func NewCompose() *Form {
	f := newForm()
	f.requiredHint = MsgComposeRequired
	f.addField(FieldTitle, &field{
		kind:   FieldRequired,
		maxLen: TitleMaxLen,
		trim:   true,
	})
	f.addField(FieldContent, &field{
		kind: FieldRequired,
		trim: true,
	})
	f.formHelper = errorHelper(MsgComposeRequired)
	return f
}
