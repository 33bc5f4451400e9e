package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/amumal/amumal-cli/internal/client/models"
)

// CheckStatus is the outcome of a uniqueness check for email or nickname.
type CheckStatus int

const (
	// CheckFailed: transport error or unexpected response; not trustworthy.
	CheckFailed CheckStatus = iota
	// CheckAvailable: the server confirmed the value is free.
	CheckAvailable
	// CheckTaken: the server confirmed the value is already in use.
	CheckTaken
	// CheckRejected: the server rejected the value's format outright (400).
	CheckRejected
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates and returns the user's profile. The session credential
// lands in the cookie jar as a side effect.
func (c *Client) Login(ctx context.Context, email, password string) (*models.Profile, error) {
	r, err := c.do(ctx, http.MethodPost, "/user/login", loginRequest{Email: email, Password: password}, nil)
	if err != nil {
		return nil, err
	}
	if !r.OK(http.StatusOK, "login_success") {
		return nil, rejected(r)
	}

	var profile models.Profile
	if err := r.DecodeData(&profile); err != nil {
		return nil, fmt.Errorf("decode login profile: %w", err)
	}
	return &profile, nil
}

// Logout is best-effort: any reply counts, and callers clear the local
// session regardless of the outcome.
func (c *Client) Logout(ctx context.Context, userID int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/user/logout/%d", userID), nil, nil)
	return err
}

// SignupRequest is the payload for account creation. ProfileImage is the
// server path returned by a prior image upload, or nil for none.
type SignupRequest struct {
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	Nickname     string  `json:"nickname"`
	ProfileImage *string `json:"profile_image,omitempty"`
}

func (c *Client) Signup(ctx context.Context, req SignupRequest) error {
	r, err := c.do(ctx, http.MethodPost, "/user/signup", req, nil)
	if err != nil {
		return err
	}
	if !r.OK(http.StatusCreated, "register_success") {
		return rejected(r)
	}
	return nil
}

// CheckEmail asks the server whether the email is free to register.
func (c *Client) CheckEmail(ctx context.Context, email string) CheckStatus {
	return c.check(ctx, "/user/check-email", Query{"email": email})
}

// CheckNickname asks the server whether the nickname is free to register.
func (c *Client) CheckNickname(ctx context.Context, nickname string) CheckStatus {
	return c.check(ctx, "/user/check-nickname", Query{"nickname": nickname})
}

func (c *Client) check(ctx context.Context, path string, query Query) CheckStatus {
	r, err := c.do(ctx, http.MethodGet, path, nil, query)
	if err != nil {
		c.log.Error(ctx, "availability check failed", "path", path, "error", err)
		return CheckFailed
	}

	switch r.Status {
	case http.StatusOK:
		var data struct {
			Possible bool `json:"possible"`
		}
		if err := r.DecodeData(&data); err != nil {
			return CheckFailed
		}
		if data.Possible {
			return CheckAvailable
		}
		return CheckTaken
	case http.StatusBadRequest:
		return CheckRejected
	default:
		return CheckFailed
	}
}

type profileUpdateRequest struct {
	Nickname     string  `json:"nickname"`
	ProfileImage *string `json:"profile_image"`
}

// UpdateProfile changes nickname and/or profile image and returns the values
// the server settled on.
func (c *Client) UpdateProfile(ctx context.Context, userID int64, nickname string, profileImage *string) (*models.ProfileUpdate, error) {
	body := profileUpdateRequest{Nickname: nickname, ProfileImage: profileImage}
	r, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/user/update-me/%d", userID), body, nil)
	if err != nil {
		return nil, err
	}
	if !r.OK(http.StatusOK, "profile_update_success") {
		return nil, rejected(r)
	}

	var upd models.ProfileUpdate
	if err := r.DecodeData(&upd); err != nil {
		return nil, fmt.Errorf("decode profile update: %w", err)
	}
	return &upd, nil
}

type passwordUpdateRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// UpdatePassword changes the password. A 400 with detail=invalid_password is
// the distinguished wrong-current-password failure.
func (c *Client) UpdatePassword(ctx context.Context, userID int64, current, next string) error {
	body := passwordUpdateRequest{CurrentPassword: current, NewPassword: next}
	r, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/user/update-password/%d", userID), body, nil)
	if err != nil {
		return err
	}
	if r.OK(http.StatusOK, "password_update_success") {
		return nil
	}
	if r.Status == http.StatusBadRequest && r.Detail == "invalid_password" {
		return ErrInvalidPassword
	}
	return rejected(r)
}

// DeleteAccount removes the user's account.
func (c *Client) DeleteAccount(ctx context.Context, userID int64) error {
	r, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/user/%d", userID), nil, nil)
	if err != nil {
		return err
	}
	if r.Status != http.StatusOK {
		return rejected(r)
	}
	return nil
}
